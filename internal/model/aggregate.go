package model

import "time"

// IncomeAggregate is the result of classifying a batch of transactions on the
// income side. PeriodStart and PeriodEnd are the min/max dates among the
// classified items, not among all input transactions.
type IncomeAggregate struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	ByPlatform  map[string][]ClassifiedIncome
	Items       []ClassifiedIncome
	TotalIncome float64
}

// Platforms returns the distinct platform names represented in the aggregate.
func (a *IncomeAggregate) Platforms() []string {
	platforms := make([]string, 0, len(a.ByPlatform))
	for name := range a.ByPlatform {
		platforms = append(platforms, name)
	}
	return platforms
}

// PlatformTotal returns the summed income for a single platform.
func (a *IncomeAggregate) PlatformTotal(platform string) float64 {
	var total float64
	for _, item := range a.ByPlatform[platform] {
		total += item.Amount
	}
	return total
}

// ExpenseAggregate is the result of classifying a batch of transactions on
// the expense side. TotalExpenses sums raw amounts; TotalDeductions sums the
// rate-scaled deductible amounts.
type ExpenseAggregate struct {
	PeriodStart         time.Time
	PeriodEnd           time.Time
	ByCategory          map[ExpenseCategory][]ClassifiedExpense
	Items               []ClassifiedExpense
	TotalExpenses       float64
	TotalDeductions     float64
	PotentialTaxSavings float64
}

// CategoryDeductions returns the summed deductible amount for one category.
func (a *ExpenseAggregate) CategoryDeductions(category ExpenseCategory) float64 {
	var total float64
	for _, item := range a.ByCategory[category] {
		total += item.DeductibleAmount
	}
	return total
}
