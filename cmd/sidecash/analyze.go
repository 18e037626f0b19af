package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/sidecash/sidecash/internal/aggregate"
	"github.com/sidecash/sidecash/internal/cli"
	"github.com/sidecash/sidecash/internal/service"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Classify stored transactions and report income and deductions",
		RunE:  runAnalyze,
	}

	cmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().Int("workers", runtime.NumCPU(), "parallel classification workers for large batches")
	cmd.Flags().Float64("marginal-rate", aggregate.DefaultAssumedMarginalRate, "assumed marginal rate for the savings estimate")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
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

	workers, _ := cmd.Flags().GetInt("workers")
	marginalRate, _ := cmd.Flags().GetFloat64("marginal-rate")

	agg := aggregate.New(rs,
		aggregate.WithWorkers(workers),
		aggregate.WithAssumedMarginalRate(marginalRate))

	income, expense, err := agg.Aggregate(cmd.Context(), txns)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderIncomeReport(&income))
	fmt.Println(cli.RenderExpenseReport(&expense))

	return nil
}

func filterFromFlags(cmd *cobra.Command) (service.TransactionFilter, error) {
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")

	from, err := parseDateFlag(fromStr)
	if err != nil {
		return service.TransactionFilter{}, fmt.Errorf("--from: %w", err)
	}
	to, err := parseDateFlag(toStr)
	if err != nil {
		return service.TransactionFilter{}, fmt.Errorf("--to: %w", err)
	}

	return service.TransactionFilter{StartDate: from, EndDate: to}, nil
}
