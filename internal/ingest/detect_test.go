package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cells(values ...string) []Cell {
	row := make([]Cell, len(values))
	for i, v := range values {
		row[i] = NewCell(v)
	}
	return row
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name string
		line string
		want rune
	}{
		{"comma", "Fecha,Concepto,Importe", ','},
		{"semicolon", "Fecha;Concepto;Importe;Saldo", ';'},
		{"pipe", "Fecha|Concepto|Importe", '|'},
		{"tab", "Fecha\tConcepto\tImporte", '\t'},
		{"no delimiter defaults to comma", "Fecha", ','},
		{"tie keeps comma", "a,b;c", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDelimiter(tt.line))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "fecha operacion", Normalize("  Fecha   Operación "))
	assert.Equal(t, "descripcio del moviment", Normalize("Descripció del Moviment"))
	assert.Equal(t, "", Normalize("   "))
}

func TestFindHeaderRow_KeywordMatch(t *testing.T) {
	rows := [][]Cell{
		cells("Banco Ejemplo S.A."),
		cells("Extracto de cuenta", ""),
		cells("Fecha", "Concepto", "Importe", "Saldo"),
		cells("01/03/2024", "MERCADONA", "-45,30", "954,70"),
	}
	assert.Equal(t, 2, FindHeaderRow(rows))
}

func TestFindHeaderRow_FallbackNonEmptyCells(t *testing.T) {
	rows := [][]Cell{
		cells("solo una celda"),
		cells("a", "b", "c", "d"),
		cells("1", "2", "3", "4"),
	}
	// No keyword row; first row with 3+ non-empty cells wins.
	assert.Equal(t, 1, FindHeaderRow(rows))
}

func TestFindHeaderRow_FallbackRowZero(t *testing.T) {
	rows := [][]Cell{
		cells("x", "y"),
		cells("1", "2"),
	}
	assert.Equal(t, 0, FindHeaderRow(rows))
}

func TestMapColumns_SpanishBankHeader(t *testing.T) {
	cols := MapColumns(cells("Fecha Operación", "Concepto", "Importe (EUR)", "Saldo"))

	idx, ok := cols.Index(RoleDate)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = cols.Index(RoleDescription)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = cols.Index(RoleAmount)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	idx, ok = cols.Index(RoleBalance)
	require.True(t, ok)
	assert.Equal(t, 3, idx)

	assert.True(t, cols.Usable())
}

func TestMapColumns_SeparateDebitCredit(t *testing.T) {
	cols := MapColumns(cells("Fecha", "Concepto", "Cargo", "Abono", "Saldo"))

	assert.False(t, cols.Has(RoleAmount))

	idx, ok := cols.Index(RoleDebit)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	idx, ok = cols.Index(RoleCredit)
	require.True(t, ok)
	assert.Equal(t, 3, idx)

	assert.True(t, cols.Usable())
}

func TestMapColumns_EnglishNeobank(t *testing.T) {
	cols := MapColumns(cells("Completed Date", "Description", "Amount", "Balance"))

	assert.True(t, cols.Has(RoleDate))
	assert.True(t, cols.Has(RoleDescription))
	assert.True(t, cols.Has(RoleAmount))
	assert.True(t, cols.Has(RoleBalance))
	assert.True(t, cols.Usable())
}

func TestMapColumns_FirstAssignmentWins(t *testing.T) {
	cols := MapColumns(cells("Fecha Operación", "Fecha Valor", "Concepto", "Importe"))

	idx, ok := cols.Index(RoleDate)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestMapColumns_DateFallbackByPattern(t *testing.T) {
	// No date keyword anywhere; the date-like header is picked up by pattern.
	cols := MapColumns(cells("01/02", "Concepto", "Importe"))

	idx, ok := cols.Index(RoleDate)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestMapColumns_AmountFallbackByCurrency(t *testing.T) {
	cols := MapColumns(cells("Fecha", "Concepto", "€"))

	idx, ok := cols.Index(RoleAmount)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestMapColumns_DescriptionFallbackLongestText(t *testing.T) {
	cols := MapColumns(cells("Fecha", "Movimientos realizados", "Importe"))

	idx, ok := cols.Index(RoleDescription)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestMapColumns_NothingIdentifiable(t *testing.T) {
	cols := MapColumns(cells("a", "b"))
	assert.False(t, cols.Usable())
}

func TestMapColumns_Deterministic(t *testing.T) {
	header := cells("Fecha", "Concepto", "Importe", "Saldo")
	first := MapColumns(header)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MapColumns(header))
	}
}
