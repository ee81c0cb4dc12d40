// Package commands wires the ingestion pipeline, rule engine and store into
// the CLI surface the UI layer would otherwise call.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yadira-sys/finanzas-personales/internal/buildinfo"
	"github.com/yadira-sys/finanzas-personales/internal/config"
	"github.com/yadira-sys/finanzas-personales/internal/logger"
	"github.com/yadira-sys/finanzas-personales/internal/rules"
	"github.com/yadira-sys/finanzas-personales/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "finanzas",
		Short:   "Personal finance tracker: ingest bank statements, categorize, report",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "config file path")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand(&configPath))
	rootCmd.AddCommand(newExportCommand(&configPath))
	rootCmd.AddCommand(newRecategorizeCommand(&configPath))
	rootCmd.AddCommand(newRulesCommand(&configPath))
	rootCmd.AddCommand(newSummaryCommand(&configPath))

	return rootCmd
}

// app bundles the per-invocation collaborators.
type app struct {
	cfg    *config.Config
	store  *store.Store
	engine *rules.Engine
	log    zerolog.Logger
}

// openApp loads the config (falling back to defaults when no file exists),
// opens the store, and loads the rule table.
func openApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default(".")
	}

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	st, err := store.Open(cfg.StorePath())
	if err != nil {
		return nil, err
	}

	engine := rules.New()
	stored, err := st.LoadRules()
	if err != nil {
		st.Close()
		return nil, err
	}
	engine.Load(stored)

	return &app{
		cfg:    cfg,
		store:  st,
		engine: engine,
		log:    logger.New(cfg.Logging.Level),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Error().Err(err).Msg("closing store")
	}
}

// saveRules persists the rule table; a failure is reported but does not
// revert the in-memory mutation.
func (a *app) saveRules() {
	if err := a.store.SaveRules(a.engine.Snapshot()); err != nil {
		a.log.Error().Err(err).Msg("saving rules")
		fmt.Fprintln(os.Stderr, "aviso: no se pudieron guardar las reglas:", err)
	}
}
