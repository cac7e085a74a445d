package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planrec/internal/cli"
	"planrec/internal/model"
	"planrec/internal/pricing"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the cheapest eligible plan for a usage profile",
	RunE:  runRecommend,
}

func init() {
	addProfileFlags(recommendCmd)
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	profile, err := resolveProfile(e, cmd)
	if err != nil {
		return err
	}

	printRecommendation(e, profile)
	return nil
}

func printRecommendation(e *env, profile model.UsageProfile) {
	if e.cat.Len() == 0 {
		fmt.Println(cli.MutedStyle.Render("No plans loaded."))
		return
	}

	rec, ok := pricing.Recommend(e.cat, profile)
	if !ok {
		fmt.Println(cli.WarnStyle.Render("No plan meets the requirement for international roaming."))
		return
	}

	symbol := e.cfg.General.Currency
	fmt.Println(cli.RenderTitle("Recommended Plan"))
	fmt.Printf("  %s (code: %s)\n", rec.Plan.FullName(), rec.Code)
	fmt.Printf("  Estimated monthly cost: %s\n", cli.GoodStyle.Render(cli.FormatMoney(symbol, rec.Cost)))
	fmt.Printf("  Includes roaming: %s\n", cli.FormatYesNo(rec.Plan.RoamingIncluded))
}
