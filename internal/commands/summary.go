package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yadira-sys/finanzas-personales/internal/report"
)

func newSummaryCommand(configPath *string) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income/expense totals and category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(*configPath, month)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "restrict to one month (YYYY-MM)")

	return cmd
}

func runSummary(configPath, month string) error {
	a, err := openApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	txns, err := a.store.LoadTransactions()
	if err != nil {
		return err
	}

	var s report.Summary
	if month != "" {
		m, err := time.Parse("2006-01", month)
		if err != nil {
			return fmt.Errorf("invalid month %q, want YYYY-MM", month)
		}
		s = report.BuildMonth(txns, m.Year(), m.Month())
		fmt.Printf("Resumen de %s\n", month)
	} else {
		s = report.Build(txns)
		fmt.Println("Resumen total")
	}

	fmt.Printf("Transacciones: %d\n", s.Count)
	fmt.Printf("Ingresos:  %10s €\n", s.Income.StringFixed(2))
	fmt.Printf("Gastos:    %10s €\n", s.Expenses.StringFixed(2))
	fmt.Printf("Balance:   %10s €\n", s.Balance.StringFixed(2))

	if len(s.ByCategory) > 0 {
		fmt.Println("\nGastos por categoría:")
		for _, ct := range s.ByCategory {
			fmt.Printf("  %-25s %10s €  (%d)\n", ct.Category, ct.Total.StringFixed(2), ct.Count)
		}
	}
	if len(s.BySource) > 0 {
		fmt.Println("\nIngresos por fuente:")
		for _, ct := range s.BySource {
			fmt.Printf("  %-25s %10s €  (%d)\n", ct.Category, ct.Total.StringFixed(2), ct.Count)
		}
	}
	return nil
}
