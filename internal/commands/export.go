package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yadira-sys/finanzas-personales/internal/export"
)

func newExportCommand(configPath *string) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all transactions to CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(*configPath, outFile)
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default from config, \"-\" for stdout)")

	return cmd
}

func runExport(configPath, outFile string) error {
	a, err := openApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	txns, err := a.store.LoadTransactions()
	if err != nil {
		return err
	}

	if outFile == "" {
		outFile = a.cfg.Export.OutFile
	}
	if outFile == "-" {
		return export.Write(os.Stdout, txns)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outFile, err)
	}
	defer f.Close()

	if err := export.Write(f, txns); err != nil {
		return err
	}
	fmt.Printf("Exportadas %d transacciones a %s\n", len(txns), outFile)
	return nil
}
