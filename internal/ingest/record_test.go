package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yadira-sys/finanzas-personales/internal/model"
)

func spanishColumns(t *testing.T) ColumnMap {
	t.Helper()
	cols := MapColumns(cells("Fecha", "Concepto", "Importe", "Saldo"))
	require.True(t, cols.Usable())
	return cols
}

func TestIsMetadataRow(t *testing.T) {
	assert.True(t, IsMetadataRow(cells("TOTAL", "", "1.234,56")))
	assert.True(t, IsMetadataRow(cells("Saldo inicial", "954,70")))
	assert.True(t, IsMetadataRow(cells("", "Resumen del periodo")))
	assert.False(t, IsMetadataRow(cells("01/03/2024", "MERCADONA", "-45,30")))
	// Markers past the third cell do not count.
	assert.False(t, IsMetadataRow(cells("01/03/2024", "COMPRA", "-10,00", "total")))
}

func TestRepairSplitDecimals(t *testing.T) {
	cols := spanishColumns(t)

	// "-45,30" split by an unquoted comma into two cells.
	row := cells("01/03/2024", "MERCADONA", "-45", "30", "954,70")
	repaired := RepairSplitDecimals(row, 4, cols)
	require.Len(t, repaired, 4)
	assert.Equal(t, "-45,30", repaired[2].String())
	assert.Equal(t, "954,70", repaired[3].String())
}

func TestRepairSplitDecimals_BothAmountAndBalanceSplit(t *testing.T) {
	cols := spanishColumns(t)

	row := cells("01/03/2024", "MERCADONA", "-45", "30", "954", "70")
	repaired := RepairSplitDecimals(row, 4, cols)
	require.Len(t, repaired, 4)
	assert.Equal(t, "-45,30", repaired[2].String())
	assert.Equal(t, "954,70", repaired[3].String())
}

func TestRepairSplitDecimals_RowMatchingHeaderUntouched(t *testing.T) {
	cols := spanishColumns(t)

	row := cells("01/03/2024", "MERCADONA", "-45,30", "954,70")
	assert.Equal(t, row, RepairSplitDecimals(row, 4, cols))
}

func TestBuildRecord_Expense(t *testing.T) {
	cols := spanishColumns(t)

	tx, err := BuildRecord(cells("01/03/2024", "Pago en MERCADONA", "-45,30", "954,70"), cols)
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, date(2024, 3, 1), tx.Date)
	assert.Equal(t, "Pago en MERCADONA", tx.Description)
	assert.Equal(t, "-45.30", tx.Amount.StringFixed(2))
	assert.Equal(t, "Supermercado", tx.Category)
	assert.Equal(t, model.TypeExpense, tx.Type)
	assert.Empty(t, tx.IncomeSource)
	require.NotNil(t, tx.Balance)
	assert.Equal(t, "954.70", tx.Balance.StringFixed(2))
}

func TestBuildRecord_IncomeGetsSource(t *testing.T) {
	cols := spanishColumns(t)

	tx, err := BuildRecord(cells("28/02/2024", "NOMINA EMPRESA SL", "1.850,00", "2.804,70"), cols)
	require.NoError(t, err)

	assert.Equal(t, model.TypeIncome, tx.Type)
	assert.Equal(t, "Nómina", tx.IncomeSource)
	assert.Equal(t, "1850.00", tx.Amount.StringFixed(2))
}

func TestBuildRecord_PlaceholderDescription(t *testing.T) {
	cols := spanishColumns(t)

	tx, err := BuildRecord(cells("01/03/2024", "   ", "-10,00", ""), cols)
	require.NoError(t, err)
	assert.Equal(t, "Movimiento bancario", tx.Description)
}

func TestBuildRecord_RejectsZeroAmount(t *testing.T) {
	cols := spanishColumns(t)

	_, err := BuildRecord(cells("01/03/2024", "AJUSTE", "0,00", ""), cols)
	assert.ErrorIs(t, err, ErrBadAmount)
}

func TestBuildRecord_RejectsMissingDate(t *testing.T) {
	cols := spanishColumns(t)

	_, err := BuildRecord(cells("", "MERCADONA", "-45,30", ""), cols)
	assert.Error(t, err)
}

func TestBuildRecord_ShortRow(t *testing.T) {
	cols := spanishColumns(t)

	_, err := BuildRecord(cells("01/03/2024"), cols)
	assert.ErrorIs(t, err, ErrBadAmount)
}

func TestBuildRecord_DebitCreditColumns(t *testing.T) {
	cols := MapColumns(cells("Fecha", "Concepto", "Cargo", "Abono"))
	require.True(t, cols.Usable())

	tx, err := BuildRecord(cells("01/03/2024", "RECIBO LUZ", "62,75", ""), cols)
	require.NoError(t, err)
	assert.Equal(t, "-62.75", tx.Amount.StringFixed(2))
	assert.Equal(t, model.TypeExpense, tx.Type)

	tx, err = BuildRecord(cells("02/03/2024", "TRANSFERENCIA RECIBIDA", "", "200,00"), cols)
	require.NoError(t, err)
	assert.Equal(t, "200.00", tx.Amount.StringFixed(2))
	assert.Equal(t, model.TypeIncome, tx.Type)

	// A debit stored with an explicit minus still comes out negative.
	tx, err = BuildRecord(cells("03/03/2024", "COMISION", "-2,50", ""), cols)
	require.NoError(t, err)
	assert.Equal(t, "-2.50", tx.Amount.StringFixed(2))

	// Both populated: the debit wins and the credit is ignored.
	tx, err = BuildRecord(cells("04/03/2024", "MOVIMIENTO RARO", "10,00", "5,00"), cols)
	require.NoError(t, err)
	assert.Equal(t, "-10.00", tx.Amount.StringFixed(2))

	_, err = BuildRecord(cells("05/03/2024", "SIN IMPORTE", "", ""), cols)
	assert.ErrorIs(t, err, ErrBadAmount)
}
