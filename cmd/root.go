// Package cmd implements the planrec command-line interface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"planrec/internal/catalog"
	"planrec/internal/config"
	"planrec/internal/logging"
	"planrec/internal/store"
)

var (
	flagPlans string
	flagDB    string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "planrec",
	Short: "Mobile plan recommender",
	Long:  "Compare mobile phone plans against your monthly usage and find the cheapest eligible plan.",
	RunE:  runInteractive,
}

// Execute is the main entry point called from main.go.
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		logging.Error("command failed", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPlans, "plans", "p", "", "Plan source file (JSON or YAML, overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Usage database file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress load warnings")
}

// env is the shared state every command operates on: config, the loaded
// plan catalog, and the usage store.
type env struct {
	cfg config.Config
	cat *catalog.Catalog
	st  *store.Store
}

// loadEnv is the shared setup path used by all commands. Catalog problems
// are logged and tolerated; a store that cannot be initialized is fatal.
func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if flagQuiet {
		level = "error"
	}
	logging.Initialize(level, cfg.Logging.Format)

	plansPath := cfg.General.PlansFile
	if flagPlans != "" {
		plansPath = flagPlans
	}
	res := catalog.Load(plansPath)
	for _, w := range res.Warnings {
		logging.Warn("plan catalog", zap.String("warning", w.String()))
	}
	for _, note := range res.Notes {
		logging.Info("plan catalog", zap.String("note", note))
	}

	dbPath := cfg.General.DBFile
	if flagDB != "" {
		dbPath = flagDB
	}
	st := store.New(dbPath)
	if err := st.Init(); err != nil {
		return nil, err
	}

	return &env{cfg: cfg, cat: res.Catalog, st: st}, nil
}
