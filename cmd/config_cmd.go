package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planrec/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Config file: %s", config.ConfigPath())
	if !config.Exists() {
		fmt.Print(" (not present, using defaults)")
	}
	fmt.Println()
	fmt.Printf("  plans_file = %s\n", cfg.General.PlansFile)
	fmt.Printf("  db_file    = %s\n", cfg.General.DBFile)
	fmt.Printf("  currency   = %s\n", cfg.General.Currency)
	fmt.Printf("  log level  = %s, format = %s\n", cfg.Logging.Level, cfg.Logging.Format)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if config.Exists() {
		return fmt.Errorf("config already exists at %s", config.ConfigPath())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", config.ConfigPath())
	return nil
}
