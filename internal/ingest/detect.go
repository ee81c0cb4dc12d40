package ingest

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Role is the logical meaning of a column in a statement.
type Role int

const (
	RoleDate Role = iota
	RoleDescription
	RoleAmount
	RoleDebit
	RoleCredit
	RoleBalance
	numRoles
)

func (r Role) String() string {
	switch r {
	case RoleDate:
		return "date"
	case RoleDescription:
		return "description"
	case RoleAmount:
		return "amount"
	case RoleDebit:
		return "debit"
	case RoleCredit:
		return "credit"
	case RoleBalance:
		return "balance"
	}
	return "unknown"
}

// ColumnMap maps logical roles to zero-based column indices. It is produced
// fresh per file and never persisted.
type ColumnMap struct {
	indices [numRoles]int
}

// NewColumnMap returns a map with every role unassigned.
func NewColumnMap() ColumnMap {
	var m ColumnMap
	for i := range m.indices {
		m.indices[i] = -1
	}
	return m
}

// Index returns the column index for a role and whether it is assigned.
func (m ColumnMap) Index(r Role) (int, bool) {
	i := m.indices[r]
	return i, i >= 0
}

func (m *ColumnMap) assign(r Role, idx int) {
	if m.indices[r] < 0 {
		m.indices[r] = idx
	}
}

// Has reports whether a role has been assigned a column.
func (m ColumnMap) Has(r Role) bool { return m.indices[r] >= 0 }

// HasAmount reports whether the map carries any amount-bearing role.
func (m ColumnMap) HasAmount() bool {
	return m.Has(RoleAmount) || m.Has(RoleDebit) || m.Has(RoleCredit)
}

// Usable reports whether the map is sufficient for the record builder:
// a date role plus at least one amount-bearing role.
func (m ColumnMap) Usable() bool { return m.Has(RoleDate) && m.HasAmount() }

// Empty reports whether no role at all was assigned.
func (m ColumnMap) Empty() bool {
	for _, i := range m.indices {
		if i >= 0 {
			return false
		}
	}
	return true
}

// stripMarks removes diacritics: decompose, drop combining marks, recompose.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics, and collapses whitespace. All
// header comparison goes through it.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(s), " ")
}

// headerKeywords is the multilingual vocabulary used to recognize a header
// row (Spanish, English, Catalan, diacritics already stripped).
var headerKeywords = []string{
	"fecha", "date", "data",
	"descripcion", "concepto", "description", "literal", "movimiento", "operacion",
	"importe", "amount", "import", "euros", "cargo", "abono",
	"saldo", "balance",
}

const (
	headerSearchRows   = 25
	headerFallbackRows = 15
)

// FindHeaderRow locates the header row: first row within the top 25 whose
// normalized text matches at least 2 distinct vocabulary keywords; failing
// that, the first of the top 15 with 3+ non-empty cells; failing that, row 0.
func FindHeaderRow(rows [][]Cell) int {
	limit := len(rows)
	if limit > headerSearchRows {
		limit = headerSearchRows
	}
	for i := 0; i < limit; i++ {
		if len(rows[i]) == 0 {
			continue
		}
		parts := make([]string, len(rows[i]))
		for j, c := range rows[i] {
			parts[j] = Normalize(c.String())
		}
		rowText := strings.Join(parts, "|")

		matches := 0
		for _, kw := range headerKeywords {
			if strings.Contains(rowText, kw) {
				matches++
			}
		}
		if matches >= 2 {
			return i
		}
	}

	limit = len(rows)
	if limit > headerFallbackRows {
		limit = headerFallbackRows
	}
	for i := 0; i < limit; i++ {
		nonEmpty := 0
		for _, c := range rows[i] {
			if !c.IsEmpty() {
				nonEmpty++
			}
		}
		if nonEmpty >= 3 {
			return i
		}
	}

	return 0
}

// roleVariants lists, per role, the header spellings seen across Spanish
// banks (Santander, BBVA, CaixaBank, Sabadell, Bankinter, Unicaja,
// Openbank), neobanks (ING, Revolut, N26) and CaixaBank's Catalan exports.
var roleVariants = [numRoles][]string{
	RoleDate: {
		"fecha", "fecha operacion", "fecha valor", "fecha contable",
		"f.valor", "f.operacion", "f. valor", "f. operacion", "f operacion",
		"fec.", "fecha mov", "fecha mvto", "fecha movimiento",
		"fecha de operacion", "fecha de la operacion",
		"fecha op.", "fecha op", "fecha oper.", "f.contable", "f contable",
		"date", "operation date", "value date", "transaction date",
		"completed date", "started date",
		"data", "data operacio", "data valor",
	},
	RoleDescription: {
		"descripcion", "concepto", "detalle", "movimiento", "operacion",
		"observaciones", "desc.", "desc", "concepto/movimiento", "concepto movimiento",
		"texto", "informacion", "literal",
		"descripcion del movimiento", "descripcion de la operacion",
		"descripcio del moviment", "movimientos", "tipo de movimiento",
		"description", "details", "transaction details", "narrative", "payee",
		"payment reference", "transaction type",
		"descripcio", "concepte",
	},
	RoleAmount: {
		"importe", "cantidad", "monto", "cargo/abono", "debe/haber",
		"imp.", "import.", "importe €", "importe eur", "importe (eur)",
		"importe operacion", "imp. operacion",
		"total", "valor", "importe en euros", "euros", "eur",
		"importe euros",
		"amount", "amount (eur)", "amount eur", "value",
		"import", "import (eur)",
	},
	RoleDebit: {
		"debe", "cargo", "cargos", "debit", "salida", "gasto",
	},
	RoleCredit: {
		"haber", "abono", "abonos", "credit", "entrada", "ingreso",
	},
	RoleBalance: {
		"saldo", "saldo final", "saldo disponible", "saldo actual", "saldo contable",
		"sdo.", "disponible",
		"saldo disponible despues de la operacion",
		"saldo disponible despres de l'operacio",
		"saldo despues", "saldo (eur)",
		"balance", "balance (eur)", "available balance", "current balance",
	},
}

var datePattern = regexp.MustCompile(`\d{1,2}[/\-.]\d{1,2}`)
var bareNumber = regexp.MustCompile(`^\d+[,.]?\d*$`)

// MapColumns assigns column roles from a header row. Exact matches beat
// substring matches, substring matches are length-gated to avoid short
// false positives, columns are scanned left to right, and an assigned role
// is never overwritten. Deterministic for identical input.
func MapColumns(header []Cell) ColumnMap {
	cols := NewColumnMap()

	raw := make([]string, len(header))
	normalized := make([]string, len(header))
	for i, c := range header {
		raw[i] = strings.TrimSpace(c.String())
		normalized[i] = Normalize(c.String())
	}

	// Exact matches first so "cargo" binds the debit role before the
	// substring pass can hand it to "cargo/abono" (amount).
	consumed := make([]bool, len(header))
	for idx, h := range normalized {
		for role := Role(0); role < numRoles; role++ {
			if exactRole(h, roleVariants[role]) {
				cols.assign(role, idx)
				consumed[idx] = true
				break
			}
		}
	}
	for idx, h := range normalized {
		if consumed[idx] {
			continue
		}
		for role := Role(0); role < numRoles; role++ {
			if partialRole(h, roleVariants[role]) {
				cols.assign(role, idx)
				break
			}
		}
	}

	// Fallback heuristics for still-unassigned required roles.
	if !cols.Has(RoleDate) {
		for i, h := range raw {
			if datePattern.MatchString(h) || strings.Contains(strings.ToLower(h), "20") {
				cols.assign(RoleDate, i)
				break
			}
		}
	}

	if !cols.HasAmount() {
		for i, h := range normalized {
			if strings.ContainsAny(h, "€$") || strings.Contains(h, "eur") ||
				bareNumber.MatchString(h) || h == "" {
				cols.assign(RoleAmount, i)
				break
			}
		}
	}

	if !cols.Has(RoleDescription) {
		best, bestLen := -1, 3
		for i, h := range raw {
			if cols.indices[RoleDate] == i || cols.indices[RoleAmount] == i || cols.indices[RoleBalance] == i {
				continue
			}
			if len(h) > bestLen {
				best, bestLen = i, len(h)
			}
		}
		if best >= 0 {
			cols.assign(RoleDescription, best)
		}
	}

	return cols
}

func exactRole(header string, variants []string) bool {
	if header == "" {
		return false
	}
	for _, v := range variants {
		if header == Normalize(v) {
			return true
		}
	}
	return false
}

// partialRole length-gates substring matches so 1-3 character fragments
// cannot bind a role.
func partialRole(header string, variants []string) bool {
	if header == "" {
		return false
	}
	for _, raw := range variants {
		v := Normalize(raw)
		if (len(v) > 3 && strings.Contains(header, v)) ||
			(len(header) > 3 && strings.Contains(v, header)) {
			return true
		}
	}
	return false
}
