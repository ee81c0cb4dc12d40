// Package export renders the transaction list as a CSV for download.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/yadira-sys/finanzas-personales/internal/model"
)

// Header is the CSV header line of an export file. Export quotes every
// field, header included.
const Header = `"Fecha","Descripción","Categoría","Importe","Tipo"`

const (
	numFields  = 5
	dateFormat = "02/01/2006"
	colDate    = 0
	colDesc    = 1
	colCat     = 2
	colAmount  = 3
	colType    = 4
)

// typeLabel localizes the transaction type for export.
func typeLabel(t model.TransactionType) string {
	if t == model.TypeIncome {
		return "Ingreso"
	}
	return "Gasto"
}

// MarshalTransaction converts a Transaction to an export CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = t.Date.Format(dateFormat)
	row[colDesc] = t.Description
	row[colCat] = t.Category
	row[colAmount] = t.Amount.StringFixed(2)
	row[colType] = typeLabel(t.Type)
	return row
}

// quoteField wraps a field in double quotes, doubling embedded quotes per
// RFC 4180.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Write renders transactions as CSV: one header line, comma-separated,
// every field quoted, dates as DD/MM/YYYY, amounts with fixed 2 decimals.
func Write(w io.Writer, txns []model.Transaction) error {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')

	for _, t := range txns {
		row := MarshalTransaction(t)
		for i, f := range row {
			row[i] = quoteField(f)
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
