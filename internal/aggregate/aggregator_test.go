package aggregate

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidecash/sidecash/internal/common"
	"github.com/sidecash/sidecash/internal/model"
	"github.com/sidecash/sidecash/internal/rules"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func sampleBatch() []model.Transaction {
	return []model.Transaction{
		{ID: "t1", Date: day(2), Description: "UBER BV WEEKLY EARNINGS", Amount: 520.50, Direction: model.DirectionCredit},
		{ID: "t2", Date: day(5), Description: "LYFT INC PAYMENTS", Amount: 210.00, Direction: model.DirectionCredit},
		{ID: "t3", Date: day(9), Description: "DOORDASH DIRECT DEP", Amount: 145.25, Direction: model.DirectionCredit},
		{ID: "t4", Date: day(12), Description: "PAYROLL MEGACORP INC", Amount: 3000.00, Direction: model.DirectionCredit},
		{ID: "t5", Date: day(3), Description: "CHEVRON 0094821", Amount: 48.00, Direction: model.DirectionDebit},
		{ID: "t6", Date: day(7), Description: "COMCAST CABLE COMM", Amount: 90.00, Direction: model.DirectionDebit},
		{ID: "t7", Date: day(11), Description: "GROCERY STORE", Amount: 120.50, Direction: model.DirectionDebit},
		{ID: "t8", Date: day(20), Description: "UBER BV WEEKLY EARNINGS", Amount: 480.00, Direction: model.DirectionCredit},
	}
}

func TestAggregator_Aggregate(t *testing.T) {
	agg := New(rules.DefaultRuleSet())

	income, expense, err := agg.Aggregate(context.Background(), sampleBatch())
	require.NoError(t, err)

	// Income: both Uber payments, Lyft, DoorDash. Payroll drops.
	require.Len(t, income.Items, 4)
	assert.InDelta(t, 1355.75, income.TotalIncome, 0.001)
	assert.Len(t, income.ByPlatform["Uber"], 2)
	assert.Len(t, income.ByPlatform["Lyft"], 1)
	assert.Len(t, income.ByPlatform["DoorDash"], 1)
	assert.Equal(t, day(2), income.PeriodStart)
	assert.Equal(t, day(20), income.PeriodEnd)
	assert.InDelta(t, 1000.50, income.PlatformTotal("Uber"), 0.001)

	// Expenses: fuel at 100%, internet at 50%. Groceries drop.
	require.Len(t, expense.Items, 2)
	assert.InDelta(t, 138.00, expense.TotalExpenses, 0.001)
	assert.InDelta(t, 48.00+45.00, expense.TotalDeductions, 0.001)
	assert.InDelta(t, 93.00*DefaultAssumedMarginalRate, expense.PotentialTaxSavings, 0.001)
	assert.Equal(t, day(3), expense.PeriodStart)
	assert.Equal(t, day(7), expense.PeriodEnd)
}

func TestAggregator_Conservation(t *testing.T) {
	agg := New(rules.DefaultRuleSet())

	income, expense, err := agg.Aggregate(context.Background(), sampleBatch())
	require.NoError(t, err)

	var itemSum float64
	for _, item := range income.Items {
		itemSum += item.Amount
	}
	assert.InDelta(t, income.TotalIncome, itemSum, 1e-9)

	var grouped int
	for _, items := range income.ByPlatform {
		grouped += len(items)
	}
	assert.Equal(t, len(income.Items), grouped)

	var deductionSum float64
	for _, item := range expense.Items {
		deductionSum += item.DeductibleAmount
	}
	assert.InDelta(t, expense.TotalDeductions, deductionSum, 1e-9)
}

func TestAggregator_OrderIndependence(t *testing.T) {
	agg := New(rules.DefaultRuleSet())
	base := sampleBatch()

	baseIncome, baseExpense, err := agg.Aggregate(context.Background(), base)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]model.Transaction, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		income, expense, err := agg.Aggregate(context.Background(), shuffled)
		require.NoError(t, err)

		assert.InDelta(t, baseIncome.TotalIncome, income.TotalIncome, 1e-9)
		assert.InDelta(t, baseExpense.TotalExpenses, expense.TotalExpenses, 1e-9)
		assert.InDelta(t, baseExpense.TotalDeductions, expense.TotalDeductions, 1e-9)
		assert.Equal(t, baseIncome.PeriodStart, income.PeriodStart)
		assert.Equal(t, baseIncome.PeriodEnd, income.PeriodEnd)

		for platform, items := range baseIncome.ByPlatform {
			assert.Len(t, income.ByPlatform[platform], len(items))
			assert.InDelta(t, baseIncome.PlatformTotal(platform), income.PlatformTotal(platform), 1e-9)
		}
	}
}

func TestAggregator_EmptyInput(t *testing.T) {
	agg := New(rules.DefaultRuleSet())

	income, expense, err := agg.Aggregate(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, income.Items)
	assert.Empty(t, income.ByPlatform)
	assert.Zero(t, income.TotalIncome)
	assert.True(t, income.PeriodStart.IsZero())
	assert.Empty(t, expense.Items)
	assert.Zero(t, expense.TotalDeductions)
	assert.Zero(t, expense.PotentialTaxSavings)
}

func TestAggregator_NothingClassifies(t *testing.T) {
	agg := New(rules.DefaultRuleSet())

	txns := []model.Transaction{
		{ID: "t1", Date: day(1), Description: "PAYROLL MEGACORP INC", Amount: 3000, Direction: model.DirectionCredit},
		{ID: "t2", Date: day(2), Description: "GROCERY STORE", Amount: 80, Direction: model.DirectionDebit},
	}

	income, expense, err := agg.Aggregate(context.Background(), txns)
	require.NoError(t, err)
	assert.Empty(t, income.Items)
	assert.Empty(t, expense.Items)
}

func TestAggregator_InvalidTransactionRejected(t *testing.T) {
	agg := New(rules.DefaultRuleSet())

	txns := []model.Transaction{
		{ID: "t1", Date: day(1), Description: "UBER BV", Amount: 100, Direction: model.DirectionCredit},
		{ID: "t2", Date: day(2), Description: "LYFT", Amount: -5, Direction: model.DirectionCredit},
	}

	_, _, err := agg.Aggregate(context.Background(), txns)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Contains(t, err.Error(), "transactions[1]")
}

func TestAggregator_ParallelMatchesSequential(t *testing.T) {
	// A batch large enough to cross the parallel threshold.
	var txns []model.Transaction
	descriptions := []string{
		"UBER BV WEEKLY EARNINGS",
		"LYFT INC PAYMENTS",
		"DOORDASH DIRECT DEP",
		"CHEVRON 0094821",
		"COMCAST CABLE COMM",
		"GROCERY STORE",
	}
	for i := 0; i < 300; i++ {
		direction := model.DirectionCredit
		if i%2 == 0 {
			direction = model.DirectionDebit
		}
		txns = append(txns, model.Transaction{
			ID:          fmt.Sprintf("t%d", i),
			Date:        day(1 + i%28),
			Description: descriptions[i%len(descriptions)],
			Amount:      float64(10 + i%90),
			Direction:   direction,
		})
	}

	sequential := New(rules.DefaultRuleSet())
	parallel := New(rules.DefaultRuleSet(), WithWorkers(8))

	seqIncome, seqExpense, err := sequential.Aggregate(context.Background(), txns)
	require.NoError(t, err)
	parIncome, parExpense, err := parallel.Aggregate(context.Background(), txns)
	require.NoError(t, err)

	assert.Equal(t, seqIncome, parIncome)
	assert.Equal(t, seqExpense, parExpense)
}
