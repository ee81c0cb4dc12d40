// Package catalog holds the fixed category catalog and the
// description-keyword classification that hangs off it.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yadira-sys/finanzas-personales/internal/model"
)

// Other is the sentinel category for descriptions no keyword matches.
const Other = "Otros"

// Category is one entry of the fixed catalog. Keywords are lowercase
// substrings matched against transaction descriptions.
type Category struct {
	Name     string
	Icon     string
	Color    string
	Keywords []string
}

// Categories returns the full catalog in its fixed iteration order.
// Classification walks this slice in order and the first keyword hit wins,
// so the declared order is part of the contract.
func Categories() []Category {
	return defaultCatalog
}

var defaultCatalog = []Category{
	{Name: "Supermercado", Icon: "fa-shopping-cart", Color: "#48bb78",
		Keywords: []string{"mercadona", "carrefour", "dia", "lidl", "aldi", "eroski", "alcampo", "hipercor", "supermercado", "super", "consum"}},
	{Name: "Restaurantes", Icon: "fa-utensils", Color: "#ed8936",
		Keywords: []string{"restaurante", "bar ", "cafeteria", "mcdonalds", "burger", "pizza", "telepizza", "dominos", "kfc", "vips", "ginos"}},
	{Name: "Comida Rápida", Icon: "fa-hamburger", Color: "#f56565",
		Keywords: []string{"just eat", "glovo", "uber eats", "deliveroo", "mcdonalds", "burger king", "kebab"}},
	{Name: "Transporte Público", Icon: "fa-bus", Color: "#4299e1",
		Keywords: []string{"metro", "renfe", "cercanias", "bus", "emt", "tmb", "abono transporte", "tarjeta transporte"}},
	{Name: "Gasolina", Icon: "fa-gas-pump", Color: "#38b2ac",
		Keywords: []string{"repsol", "cepsa", "galp", "bp", "shell", "gasolinera", "combustible", "gasolina"}},
	{Name: "Taxi", Icon: "fa-taxi", Color: "#ecc94b",
		Keywords: []string{"taxi", "cabify", "uber", "free now"}},
	{Name: "Parking", Icon: "fa-parking", Color: "#a0aec0",
		Keywords: []string{"parking", "aparcamiento", "parkia", "saba"}},
	{Name: "Alquiler", Icon: "fa-home", Color: "#667eea",
		Keywords: []string{"alquiler", "renta", "arrendamiento", "inmobiliaria"}},
	{Name: "Hipoteca", Icon: "fa-university", Color: "#805ad5",
		Keywords: []string{"hipoteca", "prestamo hipotecario", "cuota hipoteca"}},
	{Name: "Suministros", Icon: "fa-bolt", Color: "#ed64a6",
		Keywords: []string{"iberdrola", "endesa", "naturgy", "luz", "gas", "agua", "electricidad", "suministro"}},
	{Name: "Internet y Teléfono", Icon: "fa-wifi", Color: "#4299e1",
		Keywords: []string{"movistar", "vodafone", "orange", "jazztel", "yoigo", "masmovil", "fibra", "adsl", "telefono", "movil"}},
	{Name: "Comunidad", Icon: "fa-building", Color: "#718096",
		Keywords: []string{"comunidad", "gastos comunes", "administrador", "finca"}},
	{Name: "Ropa y Calzado", Icon: "fa-tshirt", Color: "#ed8936",
		Keywords: []string{"zara", "h&m", "mango", "pull&bear", "bershka", "stradivarius", "massimo dutti", "primark", "decathlon", "nike", "adidas", "ropa", "calzado"}},
	{Name: "Hogar y Muebles", Icon: "fa-couch", Color: "#9f7aea",
		Keywords: []string{"ikea", "leroy merlin", "aki", "bricomart", "brico depot", "muebles", "hogar", "decoracion"}},
	{Name: "Tecnología", Icon: "fa-laptop", Color: "#4299e1",
		Keywords: []string{"amazon", "fnac", "mediamarkt", "pccomponentes", "apple", "samsung", "tecnologia", "electronica"}},
	{Name: "Farmacia", Icon: "fa-pills", Color: "#48bb78",
		Keywords: []string{"farmacia", "parafarmacia", "medicamento"}},
	{Name: "Salud", Icon: "fa-heartbeat", Color: "#f56565",
		Keywords: []string{"medico", "hospital", "clinica", "dentista", "odontologo", "seguro medico", "sanitas", "adeslas", "asisa"}},
	{Name: "Gimnasio", Icon: "fa-dumbbell", Color: "#ed8936",
		Keywords: []string{"gimnasio", "gym", "fitness", "sport", "deportivo", "piscina"}},
	{Name: "Peluquería", Icon: "fa-cut", Color: "#9f7aea",
		Keywords: []string{"peluqueria", "barberia", "salon", "estetica"}},
	{Name: "Ocio", Icon: "fa-film", Color: "#f687b3",
		Keywords: []string{"cine", "teatro", "museo", "concierto", "entrada", "ocio"}},
	{Name: "Streaming", Icon: "fa-play-circle", Color: "#e53e3e",
		Keywords: []string{"netflix", "hbo", "amazon prime", "disney", "spotify", "youtube premium", "dazn", "movistar+"}},
	{Name: "Viajes", Icon: "fa-plane", Color: "#38b2ac",
		Keywords: []string{"hotel", "booking", "airbnb", "vuelo", "ryanair", "vueling", "iberia", "viaje", "hostal"}},
	{Name: "Libros", Icon: "fa-book", Color: "#805ad5",
		Keywords: []string{"libreria", "casa del libro", "libro", "fnac"}},
	{Name: "Seguros", Icon: "fa-shield-alt", Color: "#4299e1",
		Keywords: []string{"seguro", "mapfre", "mutua", "axa", "allianz", "generali", "santalucia"}},
	{Name: "Seguro Coche", Icon: "fa-car", Color: "#4299e1",
		Keywords: []string{"seguro coche", "seguro vehiculo", "seguro auto"}},
	{Name: "Educación", Icon: "fa-graduation-cap", Color: "#9f7aea",
		Keywords: []string{"colegio", "universidad", "academia", "curso", "formacion", "matricula", "educacion"}},
	{Name: "Mascotas", Icon: "fa-paw", Color: "#ed8936",
		Keywords: []string{"veterinario", "mascota", "kiwoko", "tiendanimal", "pienso", "perro", "gato"}},
	{Name: "Impuestos", Icon: "fa-file-invoice-dollar", Color: "#e53e3e",
		Keywords: []string{"hacienda", "agencia tributaria", "impuesto", "iva", "irpf", "tasa", "multa"}},
	{Name: "Ahorro", Icon: "fa-piggy-bank", Color: "#48bb78",
		Keywords: []string{"ahorro", "deposito", "inversion", "fondo"}},
	{Name: "Transferencia", Icon: "fa-exchange-alt", Color: "#4299e1",
		Keywords: []string{"transferencia", "bizum", "traspaso"}},
	{Name: "Nómina", Icon: "fa-money-bill-wave", Color: "#48bb78",
		Keywords: []string{"nomina", "salario", "sueldo", "paga"}},
	{Name: "Venta", Icon: "fa-hand-holding-usd", Color: "#38b2ac",
		Keywords: []string{"venta", "ingreso venta", "wallapop", "vinted"}},
	{Name: "Reembolso", Icon: "fa-undo", Color: "#4299e1",
		Keywords: []string{"devolucion", "reembolso", "reintegro"}},
	{Name: "Préstamos", Icon: "fa-hand-holding-usd", Color: "#ed8936",
		Keywords: []string{"prestamo", "credito", "financiacion"}},
	{Name: "Donaciones", Icon: "fa-donate", Color: "#ed64a6",
		Keywords: []string{"donacion", "caridad", "ong", "unicef", "cruz roja"}},
	{Name: "Suscripciones", Icon: "fa-sync-alt", Color: "#9f7aea",
		Keywords: []string{"suscripcion", "mensualidad", "cuota"}},
	{Name: "Cajero", Icon: "fa-credit-card", Color: "#718096",
		Keywords: []string{"cajero", "retirada", "efectivo"}},
	{Name: "Comisiones", Icon: "fa-percent", Color: "#e53e3e",
		Keywords: []string{"comision", "cargo", "mantenimiento cuenta"}},
	{Name: Other, Icon: "fa-question-circle", Color: "#a0aec0",
		Keywords: nil},
}

// Categorize classifies a description by case-insensitive keyword substring
// search over the catalog, first match wins. Returns Other when nothing hits.
func Categorize(description string) string {
	desc := strings.ToLower(description)
	for _, c := range defaultCatalog {
		for _, kw := range c.Keywords {
			if strings.Contains(desc, kw) {
				return c.Name
			}
		}
	}
	return Other
}

// Find returns the catalog entry for name, or the Other entry when the name
// is unknown.
func Find(name string) Category {
	for _, c := range defaultCatalog {
		if c.Name == name {
			return c
		}
	}
	return defaultCatalog[len(defaultCatalog)-1]
}

// Names returns all category names in catalog order.
func Names() []string {
	names := make([]string, len(defaultCatalog))
	for i, c := range defaultCatalog {
		names[i] = c.Name
	}
	return names
}

// incomeCategories are the categories that imply income when the amount sign
// cannot decide.
var incomeCategories = map[string]bool{
	"Nómina":    true,
	"Venta":     true,
	"Reembolso": true,
	"Ahorro":    true,
}

// TypeOf derives the transaction type from the amount sign. A zero amount
// falls back to the category, though the pipeline discards zero-amount rows
// before this can matter.
func TypeOf(amount decimal.Decimal, category string) model.TransactionType {
	switch {
	case amount.IsPositive():
		return model.TypeIncome
	case amount.IsNegative():
		return model.TypeExpense
	default:
		if incomeCategories[category] {
			return model.TypeIncome
		}
		return model.TypeExpense
	}
}

// incomeSourceFallback is returned when a cleaned description has nothing
// left in it.
const incomeSourceFallback = "Otros Ingresos"

// IncomeSource derives a short label describing where an income transaction
// came from.
func IncomeSource(description string) string {
	desc := strings.ToLower(description)

	switch {
	case strings.Contains(desc, "nomina") || strings.Contains(desc, "salario"):
		return "Nómina"
	case strings.Contains(desc, "bizum") && !strings.Contains(desc, "pago"):
		return "Transferencias Bizum"
	case strings.Contains(desc, "transferencia"):
		return "Transferencias"
	case strings.Contains(desc, "venta"):
		return "Ventas"
	case strings.Contains(desc, "devolucion") || strings.Contains(desc, "reembolso"):
		return "Devoluciones"
	case strings.Contains(desc, "intereses"):
		return "Intereses"
	}

	// No known source: use a cleaned version of the description itself.
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, description)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if r := []rune(cleaned); len(r) > 50 {
		cleaned = string(r[:50])
	}
	if cleaned == "" {
		return incomeSourceFallback
	}
	return cleaned
}
