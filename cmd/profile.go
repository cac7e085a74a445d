package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planrec/internal/model"
)

// Usage-profile flags shared by costs, recommend, and report.
var (
	flagPerson  string
	flagMinutes int64
	flagDataGB  float64
	flagRoaming bool
)

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPerson, "person", "", "Use the latest saved usage for this person")
	cmd.Flags().Int64Var(&flagMinutes, "minutes", 0, "Monthly call minutes")
	cmd.Flags().Float64Var(&flagDataGB, "data-gb", 0, "Monthly data usage in GB")
	cmd.Flags().BoolVar(&flagRoaming, "roaming", false, "International roaming required")
}

// resolveProfile builds the usage profile for a command run: either the
// latest saved record for --person, or the ad-hoc --minutes/--data-gb/
// --roaming flags. Negative inputs are rejected here, before they reach
// the cost engine.
func resolveProfile(e *env, cmd *cobra.Command) (model.UsageProfile, error) {
	if flagPerson != "" {
		rec, found, err := e.st.Latest(flagPerson)
		if err != nil {
			return model.UsageProfile{}, err
		}
		if !found {
			return model.UsageProfile{}, fmt.Errorf("no saved usage for %q", flagPerson)
		}
		return rec.Profile(), nil
	}

	if !cmd.Flags().Changed("minutes") && !cmd.Flags().Changed("data-gb") {
		return model.UsageProfile{}, fmt.Errorf("provide --person or --minutes/--data-gb")
	}
	if flagMinutes < 0 {
		return model.UsageProfile{}, fmt.Errorf("--minutes must be >= 0")
	}
	if flagDataGB < 0 {
		return model.UsageProfile{}, fmt.Errorf("--data-gb must be >= 0")
	}

	return model.NewUsageProfile("", flagMinutes, flagDataGB, flagRoaming), nil
}
