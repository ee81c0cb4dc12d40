package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yadira-sys/finanzas-personales/internal/catalog"
	"github.com/yadira-sys/finanzas-personales/internal/model"
)

func newRecategorizeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "recategorize <transaction-id> <category>",
		Short: "Assign a category to a transaction and learn a rule from it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecategorize(*configPath, args[0], args[1])
		},
	}
}

func runRecategorize(configPath, txID, category string) error {
	a, err := openApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	if catalog.Find(category).Name != category {
		return fmt.Errorf("categoría desconocida: %q", category)
	}

	txns, err := a.store.LoadTransactions()
	if err != nil {
		return err
	}

	idx := -1
	for i := range txns {
		if txns[i].ID == txID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("transacción no encontrada: %s", txID)
	}

	txns[idx].Category = category
	// Category is the only mutable field; type stays derived from the amount.
	txns[idx].Type = catalog.TypeOf(txns[idx].Amount, category)
	if txns[idx].Type == model.TypeIncome && txns[idx].IncomeSource == "" {
		txns[idx].IncomeSource = catalog.IncomeSource(txns[idx].Description)
	}

	rule := a.engine.RecordCorrection(txns[idx], category)
	fmt.Printf("Regla %q → %s (%d aplicaciones)\n", rule.Pattern, rule.Category, rule.Applications)

	if err := a.store.SaveTransactions(txns); err != nil {
		fmt.Fprintln(os.Stderr, "aviso: no se pudieron guardar las transacciones:", err)
		a.log.Error().Err(err).Msg("saving transactions")
	}
	a.saveRules()
	return nil
}
