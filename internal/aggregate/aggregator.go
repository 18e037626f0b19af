// Package aggregate runs the classifiers over transaction batches and
// partitions the results by platform and expense category.
package aggregate

import (
	"context"
	"fmt"
	"sync"

	"github.com/sidecash/sidecash/internal/classify"
	"github.com/sidecash/sidecash/internal/common"
	"github.com/sidecash/sidecash/internal/model"
	"github.com/sidecash/sidecash/internal/rules"
)

// DefaultAssumedMarginalRate is used to estimate potential tax savings from
// deductions when the caller does not supply a rate.
const DefaultAssumedMarginalRate = 0.30

// parallelThreshold is the batch size below which the parallel path is not
// worth the goroutine overhead.
const parallelThreshold = 64

// Aggregator classifies whole transaction batches. Results are independent
// of input order and of whether the sequential or parallel path ran.
type Aggregator struct {
	income              *classify.IncomeClassifier
	expense             *classify.ExpenseClassifier
	assumedMarginalRate float64
	workers             int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithWorkers enables parallel classification for large batches.
func WithWorkers(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithAssumedMarginalRate overrides the marginal rate used for the
// potential-tax-savings estimate.
func WithAssumedMarginalRate(rate float64) Option {
	return func(a *Aggregator) {
		a.assumedMarginalRate = rate
	}
}

// New creates an aggregator bound to one rule set.
func New(rs *rules.RuleSet, opts ...Option) *Aggregator {
	a := &Aggregator{
		income:              classify.NewIncomeClassifier(rs),
		expense:             classify.NewExpenseClassifier(rs),
		assumedMarginalRate: DefaultAssumedMarginalRate,
		workers:             1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// result holds the classification outcome for a single transaction, indexed
// so the parallel path folds in the same order as the sequential one.
type result struct {
	income     model.ClassifiedIncome
	expense    model.ClassifiedExpense
	hasIncome  bool
	hasExpense bool
}

// Aggregate classifies every transaction and builds both aggregates.
//
// Invalid transactions are rejected before any classification happens, so a
// batch either produces complete aggregates or no aggregates at all. An
// empty batch and a batch where nothing classifies both produce zero-valued
// aggregates, not errors.
func (a *Aggregator) Aggregate(ctx context.Context, txns []model.Transaction) (model.IncomeAggregate, model.ExpenseAggregate, error) {
	income := model.IncomeAggregate{ByPlatform: make(map[string][]model.ClassifiedIncome)}
	expense := model.ExpenseAggregate{ByCategory: make(map[model.ExpenseCategory][]model.ClassifiedExpense)}

	for i, txn := range txns {
		if err := txn.Validate(); err != nil {
			return model.IncomeAggregate{}, model.ExpenseAggregate{},
				common.NewValidationError(fmt.Sprintf("transactions[%d]", i), "%v", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return model.IncomeAggregate{}, model.ExpenseAggregate{}, err
	}

	var results []result
	if a.workers > 1 && len(txns) >= parallelThreshold {
		results = a.classifyParallel(txns)
	} else {
		results = a.classifySequential(txns)
	}

	for _, r := range results {
		if r.hasIncome {
			income.Items = append(income.Items, r.income)
			income.ByPlatform[r.income.Platform] = append(income.ByPlatform[r.income.Platform], r.income)
			income.TotalIncome += r.income.Amount
			if income.PeriodStart.IsZero() || r.income.Date.Before(income.PeriodStart) {
				income.PeriodStart = r.income.Date
			}
			if r.income.Date.After(income.PeriodEnd) {
				income.PeriodEnd = r.income.Date
			}
		}
		if r.hasExpense {
			expense.Items = append(expense.Items, r.expense)
			expense.ByCategory[r.expense.Category] = append(expense.ByCategory[r.expense.Category], r.expense)
			expense.TotalExpenses += r.expense.Amount
			expense.TotalDeductions += r.expense.DeductibleAmount
			if expense.PeriodStart.IsZero() || r.expense.Date.Before(expense.PeriodStart) {
				expense.PeriodStart = r.expense.Date
			}
			if r.expense.Date.After(expense.PeriodEnd) {
				expense.PeriodEnd = r.expense.Date
			}
		}
	}

	expense.PotentialTaxSavings = expense.TotalDeductions * a.assumedMarginalRate

	return income, expense, nil
}

func (a *Aggregator) classifySequential(txns []model.Transaction) []result {
	results := make([]result, len(txns))
	for i, txn := range txns {
		results[i] = a.classifyOne(txn)
	}
	return results
}

// classifyParallel splits the batch across workers. Per-transaction
// classification is stateless, and every result lands at its transaction's
// index, so the fold over results is identical to the sequential path.
func (a *Aggregator) classifyParallel(txns []model.Transaction) []result {
	results := make([]result, len(txns))

	chunk := (len(txns) + a.workers - 1) / a.workers
	var wg sync.WaitGroup

	for start := 0; start < len(txns); start += chunk {
		end := start + chunk
		if end > len(txns) {
			end = len(txns)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = a.classifyOne(txns[i])
			}
		}(start, end)
	}

	wg.Wait()
	return results
}

func (a *Aggregator) classifyOne(txn model.Transaction) result {
	var r result
	r.income, r.hasIncome = a.income.Classify(txn)
	r.expense, r.hasExpense = a.expense.Classify(txn)
	return r
}
