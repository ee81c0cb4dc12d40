// Package report computes the aggregate figures the dashboard shows:
// income/expense totals and per-category breakdowns, overall or for one
// month.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yadira-sys/finanzas-personales/internal/model"
)

// CategoryTotal is one category's accumulated expense or income.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// Summary aggregates a set of transactions.
type Summary struct {
	Income     decimal.Decimal
	Expenses   decimal.Decimal // positive magnitude
	Balance    decimal.Decimal
	Count      int
	ByCategory []CategoryTotal // expenses only, largest first
	BySource   []CategoryTotal // income by source, largest first
}

// Build computes a Summary over all transactions.
func Build(txns []model.Transaction) Summary {
	s := Summary{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Balance:  decimal.Zero,
	}
	byCat := make(map[string]*CategoryTotal)
	bySrc := make(map[string]*CategoryTotal)

	for _, t := range txns {
		s.Count++
		if t.Type == model.TypeIncome {
			s.Income = s.Income.Add(t.Amount)
			src := t.IncomeSource
			if src == "" {
				src = t.Category
			}
			accumulate(bySrc, src, t.Amount)
			continue
		}
		s.Expenses = s.Expenses.Add(t.Amount.Abs())
		accumulate(byCat, t.Category, t.Amount.Abs())
	}

	s.Balance = s.Income.Sub(s.Expenses)
	s.ByCategory = sortTotals(byCat)
	s.BySource = sortTotals(bySrc)
	return s
}

// BuildMonth computes a Summary restricted to one calendar month.
func BuildMonth(txns []model.Transaction, year int, month time.Month) Summary {
	var filtered []model.Transaction
	for _, t := range txns {
		if t.Date.Year() == year && t.Date.Month() == month {
			filtered = append(filtered, t)
		}
	}
	return Build(filtered)
}

func accumulate(m map[string]*CategoryTotal, key string, amount decimal.Decimal) {
	ct, ok := m[key]
	if !ok {
		ct = &CategoryTotal{Category: key, Total: decimal.Zero}
		m[key] = ct
	}
	ct.Total = ct.Total.Add(amount)
	ct.Count++
}

func sortTotals(m map[string]*CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(m))
	for _, ct := range m {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
