// Package rules defines the versioned classification rule tables.
//
// Rules are plain data records, evaluated strictly in table order with a
// first-match-wins policy. A rule set is immutable once constructed and is
// passed explicitly to the classifiers, so multiple tax years can be
// evaluated side by side without cross-contamination.
package rules

import (
	"github.com/sidecash/sidecash/internal/common"
	"github.com/sidecash/sidecash/internal/model"
)

// PlatformRule matches credit transactions to an income-producing platform.
// Matchers are alternatives: any one matching the description qualifies.
type PlatformRule struct {
	Platform string                 `mapstructure:"platform" yaml:"platform"`
	Category model.PlatformCategory `mapstructure:"category" yaml:"category"`
	Matchers []string               `mapstructure:"matchers" yaml:"matchers"`
}

// ExpenseRule matches debit transactions to a deductible expense
// subcategory. DeductionRatePercent ranges from 50 for mixed-use costs
// (home internet, phone) to 100 for wholly business costs (tolls,
// vehicle maintenance). An empty ApplicableWorkTypes set means the rule
// applies to every kind of gig work.
type ExpenseRule struct {
	Subcategory          string                `mapstructure:"subcategory" yaml:"subcategory"`
	Category             model.ExpenseCategory `mapstructure:"category" yaml:"category"`
	Matchers             []string              `mapstructure:"matchers" yaml:"matchers"`
	ApplicableWorkTypes  []string              `mapstructure:"applicable_work_types" yaml:"applicable_work_types"`
	DeductionRatePercent float64               `mapstructure:"deduction_rate_percent" yaml:"deduction_rate_percent"`
}

// RuleSet is one versioned edition of the classification tables, typically
// one per tax year.
type RuleSet struct {
	Version             string         `mapstructure:"version" yaml:"version"`
	PlatformRules       []PlatformRule `mapstructure:"platform_rules" yaml:"platform_rules"`
	ExpenseRules        []ExpenseRule  `mapstructure:"expense_rules" yaml:"expense_rules"`
	GigFallbackPatterns []string       `mapstructure:"gig_fallback_patterns" yaml:"gig_fallback_patterns"`
	TaxYear             int            `mapstructure:"tax_year" yaml:"tax_year"`
}

var validPlatformCategories = map[model.PlatformCategory]bool{
	model.PlatformRideshare: true,
	model.PlatformDelivery:  true,
	model.PlatformFreelance: true,
	model.PlatformCreator:   true,
	model.PlatformRental:    true,
	model.PlatformOther:     true,
}

var validExpenseCategories = map[model.ExpenseCategory]bool{
	model.ExpenseVehicle:    true,
	model.ExpenseEquipment:  true,
	model.ExpenseSupplies:   true,
	model.ExpenseSoftware:   true,
	model.ExpensePhone:      true,
	model.ExpenseHomeOffice: true,
	model.ExpenseOther:      true,
}

// Validate ensures every rule in the set has usable data.
func (rs *RuleSet) Validate() error {
	if rs.TaxYear < 2000 || rs.TaxYear > 2100 {
		return common.NewValidationError("tax_year", "must be a plausible tax year, got %d", rs.TaxYear)
	}

	for i, rule := range rs.PlatformRules {
		if rule.Platform == "" {
			return common.NewValidationError("platform_rules", "rule %d has no platform name", i)
		}
		if !validPlatformCategories[rule.Category] {
			return common.NewValidationError("platform_rules", "rule %q has unknown category %q", rule.Platform, rule.Category)
		}
		if len(rule.Matchers) == 0 {
			return common.NewValidationError("platform_rules", "rule %q has no matchers", rule.Platform)
		}
	}

	for i, rule := range rs.ExpenseRules {
		if rule.Subcategory == "" {
			return common.NewValidationError("expense_rules", "rule %d has no subcategory", i)
		}
		if !validExpenseCategories[rule.Category] {
			return common.NewValidationError("expense_rules", "rule %q has unknown category %q", rule.Subcategory, rule.Category)
		}
		if len(rule.Matchers) == 0 {
			return common.NewValidationError("expense_rules", "rule %q has no matchers", rule.Subcategory)
		}
		if rule.DeductionRatePercent < 0 || rule.DeductionRatePercent > 100 {
			return common.NewValidationError("expense_rules", "rule %q deduction rate %.1f outside [0,100]", rule.Subcategory, rule.DeductionRatePercent)
		}
	}

	return nil
}
