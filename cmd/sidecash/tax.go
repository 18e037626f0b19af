package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sidecash/sidecash/internal/aggregate"
	"github.com/sidecash/sidecash/internal/cli"
	"github.com/sidecash/sidecash/internal/model"
	"github.com/sidecash/sidecash/internal/tax"
)

func taxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Project self-employment, federal, and state tax",
		Long: `Project the annual tax liability from classified income and deductions.

With --income and --deductions the projection uses those figures directly.
Without them, stored transactions in the --from/--to window are classified
first; add --annualize to scale a partial-year window to a full year.

State tax is a flat-rate approximation, not a full state bracket model.`,
		RunE: runTax,
	}

	cmd.Flags().Float64("income", -1, "annual gross income (skips classification)")
	cmd.Flags().Float64("deductions", 0, "annual business deductions")
	cmd.Flags().Float64("state-rate", -1, "flat state tax rate (default from tax tables)")
	cmd.Flags().Int("year", time.Now().Year(), "tax year")
	cmd.Flags().String("table", "", "path to a YAML tax table file")
	cmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().Bool("annualize", false, "scale the observed window to a full year")
	cmd.Flags().Bool("schedule", false, "also print the quarterly payment schedule")

	return cmd
}

func runTax(cmd *cobra.Command, _ []string) error {
	year, _ := cmd.Flags().GetInt("year")
	tablePath, _ := cmd.Flags().GetString("table")

	cfg, err := loadTaxConfig(year, tablePath)
	if err != nil {
		return err
	}
	engine := tax.NewEngine(cfg)

	stateRate, _ := cmd.Flags().GetFloat64("state-rate")
	if stateRate < 0 {
		stateRate = cfg.DefaultStateRate
	}

	projection, err := projectTax(cmd, engine, stateRate)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderTaxReport(projection))

	if schedule, _ := cmd.Flags().GetBool("schedule"); schedule {
		deadlines := engine.QuarterlyDeadlines(year, projection.QuarterlyPayment, time.Now())
		fmt.Println(cli.RenderDeadlines(deadlines))
	}

	return nil
}

// projectTax runs the engine either on explicit figures or on classified
// stored transactions.
func projectTax(cmd *cobra.Command, engine *tax.Engine, stateRate float64) (model.TaxCalculation, error) {
	income, _ := cmd.Flags().GetFloat64("income")
	deductions, _ := cmd.Flags().GetFloat64("deductions")

	if income >= 0 {
		return engine.Calculate(income, deductions, stateRate)
	}

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return model.TaxCalculation{}, err
	}

	rs, err := loadRuleSet()
	if err != nil {
		return model.TaxCalculation{}, err
	}

	store, err := openStorage(cmd)
	if err != nil {
		return model.TaxCalculation{}, err
	}
	defer func() { _ = store.Close() }()

	txns, err := store.GetTransactions(cmd.Context(), filter)
	if err != nil {
		return model.TaxCalculation{}, err
	}

	incomeAgg, expenseAgg, err := aggregate.New(rs).Aggregate(cmd.Context(), txns)
	if err != nil {
		return model.TaxCalculation{}, err
	}

	if annualize, _ := cmd.Flags().GetBool("annualize"); annualize {
		start, end := observedWindow(incomeAgg, expenseAgg)
		return engine.CalculateAnnualized(
			incomeAgg.TotalIncome, expenseAgg.TotalDeductions, start, end, stateRate)
	}

	return engine.Calculate(incomeAgg.TotalIncome, expenseAgg.TotalDeductions, stateRate)
}

// observedWindow returns the union of the two aggregates' periods.
func observedWindow(income model.IncomeAggregate, expense model.ExpenseAggregate) (time.Time, time.Time) {
	start := income.PeriodStart
	if start.IsZero() || (!expense.PeriodStart.IsZero() && expense.PeriodStart.Before(start)) {
		start = expense.PeriodStart
	}

	end := income.PeriodEnd
	if expense.PeriodEnd.After(end) {
		end = expense.PeriodEnd
	}

	return start, end
}
