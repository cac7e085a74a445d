package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planrec/internal/cli"
	"planrec/internal/model"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Save, recall, and summarize usage profiles",
}

var usageSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Append a usage profile to the history",
	RunE:  runUsageSave,
}

var usageLatestCmd = &cobra.Command{
	Use:   "latest <name>",
	Short: "Show the most recently saved usage for a person",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsageLatest,
}

var usageStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over all saved usage",
	RunE:  runUsageStats,
}

func init() {
	usageSaveCmd.Flags().StringVar(&flagPerson, "person", "", "Person name (blank saves as "+model.AnonymousName+")")
	usageSaveCmd.Flags().Int64Var(&flagMinutes, "minutes", 0, "Monthly call minutes")
	usageSaveCmd.Flags().Float64Var(&flagDataGB, "data-gb", 0, "Monthly data usage in GB")
	usageSaveCmd.Flags().BoolVar(&flagRoaming, "roaming", false, "International roaming required")

	usageCmd.AddCommand(usageSaveCmd, usageLatestCmd, usageStatsCmd)
	rootCmd.AddCommand(usageCmd)
}

func runUsageSave(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	if flagMinutes < 0 {
		return fmt.Errorf("--minutes must be >= 0")
	}
	if flagDataGB < 0 {
		return fmt.Errorf("--data-gb must be >= 0")
	}

	profile := model.NewUsageProfile(flagPerson, flagMinutes, flagDataGB, flagRoaming)
	if err := e.st.Append(profile); err != nil {
		return err
	}
	fmt.Printf("Saved usage for %s.\n", profile.PersonName)
	return nil
}

func runUsageLatest(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	rec, found, err := e.st.Latest(args[0])
	if err != nil {
		return err
	}
	if !found {
		fmt.Println(cli.MutedStyle.Render("No saved usage found for that name."))
		return nil
	}

	printProfile(rec.Profile())
	fmt.Printf("  Saved at: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05 UTC"))
	return nil
}

func runUsageStats(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	stats, err := e.st.Stats()
	if err != nil {
		return err
	}
	printStats(stats)
	return nil
}

func printProfile(p model.UsageProfile) {
	fmt.Println("Current usage:")
	fmt.Printf("  Person: %s\n", p.PersonName)
	fmt.Printf("  Minutes per month: %d\n", p.Minutes)
	fmt.Printf("  Data per month: %s\n", cli.FormatData(p.DataGB))
	fmt.Printf("  International roaming required: %s\n", cli.FormatYesNo(p.RoamingRequired))
}

func printStats(stats model.UsageStats) {
	if stats.Count == 0 {
		fmt.Println(cli.MutedStyle.Render("No saved usage yet."))
		return
	}

	t := cli.Table{
		Title:   "Saved Usage Statistics",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total records", fmt.Sprintf("%d", stats.Count)},
			{"Average minutes", fmt.Sprintf("%.1f", stats.AvgMinutes)},
			{"Average data", cli.FormatData(stats.AvgDataGB)},
			{"Minutes range", fmt.Sprintf("%d - %d", stats.MinMinutes, stats.MaxMinutes)},
			{"Data range", fmt.Sprintf("%.2f - %.2f GB", stats.MinDataGB, stats.MaxDataGB)},
			{"Roaming required", cli.FormatPercent(stats.RoamingPct)},
		},
	}
	fmt.Println(cli.RenderTable(t))
}
