package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yadira-sys/finanzas-personales/internal/model"
)

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Description: "Pago en MERCADONA",
			Category:    "Supermercado",
			Amount:      decimal.RequireFromString("-45.3"),
			Type:        model.TypeExpense,
		},
		{
			Date:        time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			Description: "NOMINA EMPRESA SL",
			Category:    "Nómina",
			Amount:      decimal.RequireFromString("1850"),
			Type:        model.TypeIncome,
		},
	}
}

func TestMarshalTransaction(t *testing.T) {
	row := MarshalTransaction(sampleTransactions()[0])
	assert.Equal(t, []string{"01/03/2024", "Pago en MERCADONA", "Supermercado", "-45.30", "Gasto"}, row)
}

func TestWrite_QuotesEveryField(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTransactions()))

	want := Header + "\n" +
		`"01/03/2024","Pago en MERCADONA","Supermercado","-45.30","Gasto"` + "\n" +
		`"28/02/2024","NOMINA EMPRESA SL","Nómina","1850.00","Ingreso"` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_EmbeddedCommasAndQuotes(t *testing.T) {
	txns := []model.Transaction{{
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: `RESTAURANTE "EL PATIO", MENU DEL DIA`,
		Category:    "Restaurantes",
		Amount:      decimal.RequireFromString("-12.50"),
		Type:        model.TypeExpense,
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, txns))
	assert.Contains(t, buf.String(), `"RESTAURANTE ""EL PATIO"", MENU DEL DIA"`)
}

func TestWrite_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, Header+"\n", buf.String())
}
