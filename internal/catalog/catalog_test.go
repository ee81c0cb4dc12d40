package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/yadira-sys/finanzas-personales/internal/model"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"Pago en MERCADONA MADRID", "Supermercado"},
		{"COMPRA CARREFOUR EXPRESS", "Supermercado"},
		{"RECIBO IBERDROLA LUZ", "Suministros"},
		{"NETFLIX.COM", "Streaming"},
		{"FARMACIA GARCIA", "Farmacia"},
		{"NOMINA EMPRESA SL", "Nómina"},
		{"BIZUM DE JUAN", "Transferencia"},
		{"RETIRADA CAJERO BBVA", "Cajero"},
		{"COMISION MANTENIMIENTO", "Comisiones"},
		{"ALGO IRRECONOCIBLE XYZ", "Otros"},
		{"", "Otros"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.desc))
		})
	}
}

func TestCategorize_FirstMatchWins(t *testing.T) {
	// "glovo" belongs to Comida Rápida, but "restaurante" appears earlier in
	// the catalog and takes precedence.
	assert.Equal(t, "Restaurantes", Categorize("GLOVO RESTAURANTE CASA PEPE"))
}

func TestCategoriesOrderIsStable(t *testing.T) {
	names := Names()
	assert.Equal(t, "Supermercado", names[0])
	assert.Equal(t, Other, names[len(names)-1])
	assert.Equal(t, names, Names())
}

func TestFind(t *testing.T) {
	c := Find("Supermercado")
	assert.Equal(t, "Supermercado", c.Name)
	assert.Contains(t, c.Keywords, "mercadona")

	unknown := Find("No Existe")
	assert.Equal(t, Other, unknown.Name)
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, model.TypeIncome, TypeOf(decimal.NewFromInt(100), "Otros"))
	assert.Equal(t, model.TypeExpense, TypeOf(decimal.NewFromInt(-100), "Nómina"))
	assert.Equal(t, model.TypeIncome, TypeOf(decimal.Zero, "Nómina"))
	assert.Equal(t, model.TypeExpense, TypeOf(decimal.Zero, "Otros"))
}

func TestIncomeSource(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"NOMINA EMPRESA SL", "Nómina"},
		{"TRANSFERENCIA DE MARIA", "Transferencias"},
		{"BIZUM DE JUAN", "Transferencias Bizum"},
		{"PAGO BIZUM TIENDA", "PAGO BIZUM TIENDA"}, // outgoing bizum is not a bizum source
		{"VENTA WALLAPOP", "Ventas"},
		{"DEVOLUCION COMPRA", "Devoluciones"},
		{"ABONO INTERESES CUENTA", "Intereses"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, IncomeSource(tt.desc))
		})
	}
}

func TestIncomeSource_FallsBackToCleanedDescription(t *testing.T) {
	assert.Equal(t, "ABONO RECIBIDO", IncomeSource("ABONO RECIBIDO 12345"))

	long := strings.Repeat("A", 80)
	assert.Len(t, IncomeSource(long), 50)

	assert.Equal(t, "Otros Ingresos", IncomeSource("123 456"))
}
