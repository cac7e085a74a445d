package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planrec/internal/cli"
	"planrec/internal/model"
	"planrec/internal/pricing"
)

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "Show the monthly cost of every plan for a usage profile",
	RunE:  runCosts,
}

func init() {
	addProfileFlags(costsCmd)
	rootCmd.AddCommand(costsCmd)
}

func runCosts(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	profile, err := resolveProfile(e, cmd)
	if err != nil {
		return err
	}

	printCostTable(e, profile)
	return nil
}

func printCostTable(e *env, profile model.UsageProfile) {
	if e.cat.Len() == 0 {
		fmt.Println(cli.MutedStyle.Render("No plans loaded."))
		return
	}

	symbol := e.cfg.General.Currency
	t := cli.Table{
		Title:   fmt.Sprintf("Plan Costs (%s)", profileSummary(profile)),
		Headers: []string{"Code", "Plan", "Monthly", "Eligible"},
	}
	for _, row := range pricing.CostTable(e.cat, profile) {
		eligible := cli.GoodStyle.Render("yes")
		if !row.Eligible {
			eligible = cli.WarnStyle.Render("no roaming")
		}
		t.Rows = append(t.Rows, []string{
			row.Code,
			row.Plan.FullName(),
			cli.FormatMoney(symbol, row.Cost),
			eligible,
		})
	}
	fmt.Println(cli.RenderTable(t))
}

func profileSummary(p model.UsageProfile) string {
	return fmt.Sprintf("%s: %s, %s, roaming %s",
		p.PersonName,
		cli.FormatMinutes(p.Minutes),
		cli.FormatData(p.DataGB),
		cli.FormatYesNo(p.RoamingRequired))
}
