package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidecash/sidecash/internal/aggregate"
	"github.com/sidecash/sidecash/internal/cli"
	"github.com/sidecash/sidecash/internal/stability"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score the stability of classified gig income",
		RunE:  runScore,
	}

	cmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "end date (YYYY-MM-DD)")

	return cmd
}

func runScore(cmd *cobra.Command, _ []string) error {
	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	rs, err := loadRuleSet()
	if err != nil {
		return err
	}

	store, err := openStorage(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	txns, err := store.GetTransactions(cmd.Context(), filter)
	if err != nil {
		return err
	}

	income, _, err := aggregate.New(rs).Aggregate(cmd.Context(), txns)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderStabilityReport(stability.Score(income.Items)))

	return nil
}
