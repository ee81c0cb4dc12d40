package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRulesCommand(configPath *string) *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage learned categorization rules",
	}
	rulesCmd.AddCommand(newRulesListCommand(configPath))
	rulesCmd.AddCommand(newRulesApplyCommand(configPath))
	rulesCmd.AddCommand(newRulesDeleteCommand(configPath))
	rulesCmd.AddCommand(newRulesClearCommand(configPath))
	rulesCmd.AddCommand(newRulesMergeCommand(configPath))
	rulesCmd.AddCommand(newRulesPruneCommand(configPath))
	rulesCmd.AddCommand(newRulesStatsCommand(configPath))
	rulesCmd.AddCommand(newRulesExportCommand(configPath))
	rulesCmd.AddCommand(newRulesImportCommand(configPath))
	return rulesCmd
}

func newRulesListCommand(configPath *string) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rules, most used first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			list := a.engine.Rules()
			if search != "" {
				list = a.engine.Search(search)
			}
			if len(list) == 0 {
				fmt.Println("Sin reglas")
				return nil
			}
			for _, r := range list {
				fmt.Printf("%s  %-30q → %-20s (%d usos, actualizada %s)\n",
					r.ID, r.Pattern, r.Category, r.Applications,
					r.UpdatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by pattern or category substring")

	return cmd
}

func newRulesApplyCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Re-apply every rule to the stored transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			txns, err := a.store.LoadTransactions()
			if err != nil {
				return err
			}

			stats := a.engine.ApplyToBatch(txns)
			fmt.Printf("Aplicadas: %d, sin cambio: %d, total: %d\n",
				stats.Applied, stats.Skipped, stats.Total)

			if stats.Applied > 0 {
				if err := a.store.SaveTransactions(txns); err != nil {
					fmt.Fprintln(os.Stderr, "aviso: no se pudieron guardar las transacciones:", err)
					a.log.Error().Err(err).Msg("saving transactions")
				}
			}
			return nil
		},
	}
}

func newRulesDeleteCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <rule-id>",
		Short: "Delete one rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			if !a.engine.Delete(args[0]) {
				return fmt.Errorf("regla no encontrada: %s", args[0])
			}
			a.saveRules()
			fmt.Println("Regla eliminada")
			return nil
		},
	}
}

func newRulesClearCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			n := a.engine.ClearAll()
			a.saveRules()
			fmt.Printf("Eliminadas %d reglas\n", n)
			return nil
		},
	}
}

func newRulesMergeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Merge rules that share an identical pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			n := a.engine.MergeDuplicates()
			if n > 0 {
				a.saveRules()
			}
			fmt.Printf("Fusionadas %d reglas duplicadas\n", n)
			return nil
		},
	}
}

func newRulesPruneCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Delete rules that never fired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			n := a.engine.PruneUnused()
			if n > 0 {
				a.saveRules()
			}
			fmt.Printf("Eliminadas %d reglas sin uso\n", n)
			return nil
		},
	}
}

func newRulesStatsCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show rule table statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			s := a.engine.Stats()
			fmt.Printf("Reglas: %d\n", s.TotalRules)
			fmt.Printf("Aplicaciones totales: %d\n", s.TotalApplications)
			if !s.LastUpdate.IsZero() {
				fmt.Printf("Última actualización: %s\n", s.LastUpdate.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newRulesExportCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the rule table as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			data, err := a.engine.ExportJSON()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}

func newRulesImportCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Replace the rule table from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			if err := a.engine.ImportJSON(data); err != nil {
				return err
			}
			a.saveRules()
			fmt.Printf("Importadas %d reglas\n", a.engine.Stats().TotalRules)
			return nil
		},
	}
}
