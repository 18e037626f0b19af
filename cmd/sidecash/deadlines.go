package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sidecash/sidecash/internal/cli"
	"github.com/sidecash/sidecash/internal/tax"
)

func deadlinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadlines",
		Short: "Show the quarterly estimated-payment schedule",
		RunE:  runDeadlines,
	}

	cmd.Flags().Int("year", time.Now().Year(), "tax year")
	cmd.Flags().Float64("quarterly", 0, "quarterly payment amount")

	return cmd
}

func runDeadlines(cmd *cobra.Command, _ []string) error {
	year, _ := cmd.Flags().GetInt("year")
	quarterly, _ := cmd.Flags().GetFloat64("quarterly")

	// The schedule's calendar anchors don't depend on a year's tax
	// constants, so any engine config serves here.
	engine := tax.NewEngine(tax.Year2025())
	fmt.Println(cli.RenderDeadlines(engine.QuarterlyDeadlines(year, quarterly, time.Now())))

	return nil
}
