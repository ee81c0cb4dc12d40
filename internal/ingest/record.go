package ingest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yadira-sys/finanzas-personales/internal/catalog"
	"github.com/yadira-sys/finanzas-personales/internal/model"
)

// placeholderDescription substitutes a blank or missing description cell.
const placeholderDescription = "Movimiento bancario"

// metadataMarkers flag statement summary rows that must never reach the
// record builder.
var metadataMarkers = []string{
	"total", "saldo inicial", "saldo final", "resumen", "subtotal", "suma",
}

// IsMetadataRow reports whether the first few cells identify the row as a
// totals/summary line rather than a movement.
func IsMetadataRow(row []Cell) bool {
	limit := len(row)
	if limit > 3 {
		limit = 3
	}
	var b strings.Builder
	for _, c := range row[:limit] {
		b.WriteString(c.String())
	}
	text := strings.ToLower(b.String())
	for _, marker := range metadataMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

var (
	intCellRe  = regexp.MustCompile(`^-?\d+$`)
	fracCellRe = regexp.MustCompile(`^\d{1,2}$`)
)

// RepairSplitDecimals rejoins comma-decimal amounts that an unquoted CSV
// split across two cells ("-45,30" arrives as ["-45","30"]). Only rows wider
// than the header are touched, and only at amount-bearing columns.
func RepairSplitDecimals(row []Cell, headerLen int, cols ColumnMap) []Cell {
	extra := len(row) - headerLen
	if extra <= 0 {
		return row
	}

	var candidates []int
	for _, role := range []Role{RoleAmount, RoleDebit, RoleCredit, RoleBalance} {
		if idx, ok := cols.Index(role); ok {
			candidates = append(candidates, idx)
		}
	}
	sort.Ints(candidates)

	out := row
	for _, idx := range candidates {
		if extra == 0 || idx+1 >= len(out) {
			break
		}
		if intCellRe.MatchString(out[idx].String()) && fracCellRe.MatchString(out[idx+1].String()) {
			merged := NewCell(out[idx].String() + "," + out[idx+1].String())
			out = append(out[:idx], append([]Cell{merged}, out[idx+2:]...)...)
			extra--
		}
	}
	return out
}

// BuildRecord assembles a Transaction from one raw row using the detected
// column map. The row is rejected (error return) when the date is missing or
// unparseable, or when no non-zero amount can be resolved.
func BuildRecord(row []Cell, cols ColumnMap) (model.Transaction, error) {
	dateIdx, ok := cols.Index(RoleDate)
	if !ok || dateIdx >= len(row) {
		return model.Transaction{}, ErrNoDate
	}
	date, err := ParseDate(row[dateIdx])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := resolveAmount(row, cols)
	if err != nil {
		return model.Transaction{}, err
	}
	if amount.IsZero() {
		return model.Transaction{}, fmt.Errorf("%w: zero amount", ErrBadAmount)
	}

	description := placeholderDescription
	if idx, ok := cols.Index(RoleDescription); ok && idx < len(row) {
		if s := strings.TrimSpace(row[idx].String()); s != "" {
			description = s
		}
	}

	category := catalog.Categorize(description)
	txType := catalog.TypeOf(amount, category)

	t := model.Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		Type:        txType,
	}
	if txType == model.TypeIncome {
		t.IncomeSource = catalog.IncomeSource(description)
	}
	if idx, ok := cols.Index(RoleBalance); ok && idx < len(row) {
		if b, err := ParseAmount(row[idx]); err == nil {
			t.Balance = &b
		}
	}
	return t, nil
}

// resolveAmount reads the single amount column when present, otherwise
// combines separate debit/credit columns: debit forces negative, credit
// forces positive, and a non-zero debit wins. A row should not legitimately
// populate both; when one does, the credit is ignored.
func resolveAmount(row []Cell, cols ColumnMap) (decimal.Decimal, error) {
	if idx, ok := cols.Index(RoleAmount); ok {
		if idx >= len(row) {
			return decimal.Zero, ErrBadAmount
		}
		return ParseAmount(row[idx])
	}

	var debit, credit decimal.Decimal
	if idx, ok := cols.Index(RoleDebit); ok && idx < len(row) {
		if d, err := ParseAmount(row[idx]); err == nil {
			debit = d
		}
	}
	if idx, ok := cols.Index(RoleCredit); ok && idx < len(row) {
		if c, err := ParseAmount(row[idx]); err == nil {
			credit = c
		}
	}

	switch {
	case !debit.IsZero():
		return debit.Abs().Neg(), nil
	case !credit.IsZero():
		return credit.Abs(), nil
	default:
		return decimal.Zero, ErrBadAmount
	}
}
