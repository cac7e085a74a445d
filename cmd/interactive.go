package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"planrec/internal/cli"
	"planrec/internal/model"
)

// runInteractive drives the menu loop. The single current profile lives
// here, replaced wholesale when the user enters or loads usage.
func runInteractive(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderTitle("Mobile Plan Recommender"))

	var current *model.UsageProfile
	for {
		choice, err := menuSelect(current)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "enter":
			profile, err := enterProfile()
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			if err != nil {
				return err
			}
			current = &profile
			fmt.Println("Saved current usage details.")

		case "show":
			if current == nil {
				fmt.Println(cli.MutedStyle.Render("Current usage: (not set yet)"))
				continue
			}
			printProfile(*current)

		case "costs":
			if current == nil {
				fmt.Println(cli.MutedStyle.Render("Please enter usage details first."))
				continue
			}
			printCostTable(e, *current)

		case "recommend":
			if current == nil {
				fmt.Println(cli.MutedStyle.Render("Please enter usage details first."))
				continue
			}
			printRecommendation(e, *current)

		case "save":
			if current == nil {
				fmt.Println(cli.MutedStyle.Render("Please enter usage details first."))
				continue
			}
			if err := e.st.Append(*current); err != nil {
				return err
			}
			fmt.Printf("Usage details saved for %s.\n", current.PersonName)

		case "load":
			profile, ok, err := loadProfileByName(e)
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(cli.MutedStyle.Render("No saved usage found for that name."))
				continue
			}
			current = &profile
			fmt.Println("Loaded usage details into current profile.")

		case "stats":
			stats, err := e.st.Stats()
			if err != nil {
				return err
			}
			printStats(stats)

		case "exit":
			fmt.Println("Thank you for using planrec. Goodbye!")
			return nil
		}
	}
}

func menuSelect(current *model.UsageProfile) (string, error) {
	desc := "Current usage: (not set yet)"
	if current != nil {
		desc = "Current usage: " + profileSummary(*current)
	}

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("What would you like to do?").
			Description(desc).
			Options(
				huh.NewOption("Enter usage details", "enter"),
				huh.NewOption("Display current usage details", "show"),
				huh.NewOption("Display plan costs", "costs"),
				huh.NewOption("Recommend best plan", "recommend"),
				huh.NewOption("Save current usage", "save"),
				huh.NewOption("Load usage for a person", "load"),
				huh.NewOption("Show usage statistics", "stats"),
				huh.NewOption("Exit", "exit"),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// enterProfile collects a full usage profile. Numeric validation happens
// here so the cost engine only ever sees non-negative inputs.
func enterProfile() (model.UsageProfile, error) {
	var (
		name       string
		minutesStr string
		dataStr    string
		roaming    bool
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Person's name").
			Description("Used when saving; leave blank for "+model.AnonymousName).
			Value(&name),
		huh.NewInput().
			Title("Typical monthly call minutes").
			Validate(validateNonNegativeInt).
			Value(&minutesStr),
		huh.NewInput().
			Title("Typical monthly data usage (GB)").
			Validate(validateNonNegativeFloat).
			Value(&dataStr),
		huh.NewConfirm().
			Title("Require international roaming?").
			Value(&roaming),
	))
	if err := form.Run(); err != nil {
		return model.UsageProfile{}, err
	}

	minutes, _ := strconv.ParseInt(strings.TrimSpace(minutesStr), 10, 64)
	dataGB, _ := strconv.ParseFloat(strings.TrimSpace(dataStr), 64)
	return model.NewUsageProfile(name, minutes, dataGB, roaming), nil
}

func loadProfileByName(e *env) (model.UsageProfile, bool, error) {
	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Load usage for which person name?").
			Value(&name),
	))
	if err := form.Run(); err != nil {
		return model.UsageProfile{}, false, err
	}

	rec, found, err := e.st.Latest(strings.TrimSpace(name))
	if err != nil || !found {
		return model.UsageProfile{}, false, err
	}
	return rec.Profile(), true, nil
}

func validateNonNegativeInt(s string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if v < 0 {
		return fmt.Errorf("enter a number >= 0")
	}
	return nil
}

func validateNonNegativeFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("enter a number >= 0")
	}
	return nil
}
