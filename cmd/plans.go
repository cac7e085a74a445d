package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planrec/internal/cli"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List the loaded plan catalog",
	RunE:  runPlans,
}

func init() {
	rootCmd.AddCommand(plansCmd)
}

func runPlans(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	if e.cat.Len() == 0 {
		fmt.Println(cli.MutedStyle.Render("No plans loaded."))
		return nil
	}

	symbol := e.cfg.General.Currency
	t := cli.Table{
		Title:   "Plan Catalog",
		Headers: []string{"Code", "Plan", "Base", "Minutes", "Data", "Per Min", "Per GB", "Roaming"},
	}
	for _, p := range e.cat.Plans() {
		t.Rows = append(t.Rows, []string{
			p.PlanCode,
			p.FullName(),
			cli.FormatMoney(symbol, p.BaseCost),
			cli.FormatMinutes(p.IncludedMinutes),
			cli.FormatData(p.IncludedDataGB),
			cli.FormatMoney(symbol, p.CostPerMinute),
			cli.FormatMoney(symbol, p.CostPerGB),
			cli.FormatYesNo(p.RoamingIncluded),
		})
	}
	fmt.Println(cli.RenderTable(t))
	return nil
}
