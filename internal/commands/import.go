package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yadira-sys/finanzas-personales/internal/auditlog"
	"github.com/yadira-sys/finanzas-personales/internal/ingest"
)

func newImportCommand(configPath *string) *cobra.Command {
	var applyRules bool

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Ingest bank statement files (.csv, .xlsx, .xls)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(*configPath, args, applyRules)
		},
	}

	cmd.Flags().BoolVar(&applyRules, "apply-rules", true, "apply learned categorization rules to new transactions")

	return cmd
}

func runImport(configPath string, paths []string, applyRules bool) error {
	a, err := openApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	existing, err := a.store.LoadTransactions()
	if err != nil {
		return err
	}

	pipeline := ingest.New(a.log)
	batch := pipeline.ProcessBatch(paths, existing)

	if applyRules && len(batch.Unique) > 0 {
		stats := a.engine.ApplyToBatch(batch.Unique)
		if stats.Applied > 0 {
			fmt.Printf("Reglas aplicadas a %d de %d transacciones\n", stats.Applied, stats.Total)
		}
	}

	// Report per file and log the batch for audit.
	var entries []auditlog.Entry
	now := time.Now()
	for _, f := range batch.Files {
		e := auditlog.Entry{Timestamp: now, File: f.File, Status: "ok"}
		if f.Err != nil {
			e.Status = ingest.Reason(f.Err)
			fmt.Fprintf(os.Stderr, "%s: %s\n", f.File, e.Status)
		} else {
			e.Parsed = len(f.Result.Transactions)
			e.Duplicates = f.Duplicates
			e.Skipped = f.Result.Skipped
			e.Errored = f.Result.Errored
			fmt.Printf("%s: %d nuevas, %d duplicadas, %d omitidas, %d con errores\n",
				f.File, len(f.Unique), f.Duplicates, f.Result.Skipped, f.Result.Errored)
		}
		entries = append(entries, e)
	}
	if err := auditlog.Append(a.cfg.Data.Dir, entries); err != nil {
		a.log.Warn().Err(err).Msg("writing import log")
	}

	if len(batch.Unique) == 0 {
		fmt.Println("Ninguna transacción nueva")
		return nil
	}

	merged := append(existing, batch.Unique...)
	if err := a.store.SaveTransactions(merged); err != nil {
		// The in-memory result was already reported; do not roll back.
		fmt.Fprintln(os.Stderr, "aviso: no se pudieron guardar las transacciones:", err)
		a.log.Error().Err(err).Msg("saving transactions")
		return nil
	}

	fmt.Printf("Total: %d transacciones nuevas (%d duplicadas ignoradas)\n",
		len(batch.Unique), batch.Duplicates())
	return nil
}
