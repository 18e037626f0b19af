package tax

import (
	"math"
	"time"

	"github.com/sidecash/sidecash/internal/common"
	"github.com/sidecash/sidecash/internal/model"
)

// Engine projects annual tax liability from gross income and business
// deductions. All methods are pure functions of the inputs and the year
// config the engine was built with.
type Engine struct {
	cfg YearConfig
}

// NewEngine creates an engine bound to one tax year's constants.
func NewEngine(cfg YearConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the year config the engine was built with.
func (e *Engine) Config() YearConfig {
	return e.cfg
}

// Calculate projects the full-year liability.
//
// Negative income or deductions are rejected rather than clamped; silent
// clamping would mask caller bugs. A deduction total exceeding income is
// legal and nets to zero earnings.
func (e *Engine) Calculate(grossIncome, businessDeductions, stateRate float64) (model.TaxCalculation, error) {
	if grossIncome < 0 {
		return model.TaxCalculation{}, common.NewValidationError("grossIncome", "must be non-negative, got %.2f", grossIncome)
	}
	if businessDeductions < 0 {
		return model.TaxCalculation{}, common.NewValidationError("businessDeductions", "must be non-negative, got %.2f", businessDeductions)
	}
	if stateRate < 0 || stateRate >= 1 {
		return model.TaxCalculation{}, common.NewValidationError("stateRate", "must be in [0,1), got %.4f", stateRate)
	}

	netEarnings := math.Max(0, grossIncome-businessDeductions)

	// Self-employment tax: 92.35% of net earnings is subject, Social
	// Security capped at the wage base, Medicare uncapped with the
	// additional rate above the threshold.
	subjectToSE := netEarnings * e.cfg.SETaxableShare
	socialSecurity := math.Min(subjectToSE, e.cfg.SSWageBase) * e.cfg.SSRate
	medicare := subjectToSE * e.cfg.MedicareRate
	additionalMedicare := math.Max(0, subjectToSE-e.cfg.AdditionalMedicareThreshold) * e.cfg.AdditionalMedicareRate
	selfEmploymentTax := socialSecurity + medicare + additionalMedicare

	// Half of SE tax is deductible from gross earnings.
	agi := netEarnings - 0.5*selfEmploymentTax

	taxableIncome := math.Max(0, agi-e.cfg.StandardDeduction)
	federalIncomeTax := e.federalTax(taxableIncome)

	// Flat-rate state approximation, not a full state bracket model.
	stateTax := math.Max(0, agi-e.cfg.StandardDeduction) * stateRate

	total := federalIncomeTax + selfEmploymentTax + stateTax

	effectiveRate := 0.0
	if grossIncome > 0 {
		effectiveRate = total / grossIncome
	}

	return model.TaxCalculation{
		GrossIncome:         grossIncome,
		AdjustedGrossIncome: agi,
		FederalIncomeTax:    federalIncomeTax,
		SelfEmploymentTax:   selfEmploymentTax,
		StateTax:            stateTax,
		TotalTaxLiability:   total,
		EffectiveTaxRate:    effectiveRate,
		QuarterlyPayment:    total / 4,
		Breakdown: model.TaxBreakdown{
			SocialSecurity:     socialSecurity,
			Medicare:           medicare,
			AdditionalMedicare: additionalMedicare,
			FederalIncome:      federalIncomeTax,
			State:              stateTax,
		},
	}, nil
}

// CalculateAnnualized projects the full year from a partial-year window by
// scaling income and expenses to date by 365 over the window length in days.
func (e *Engine) CalculateAnnualized(incomeToDate, expensesToDate float64, periodStart, periodEnd time.Time, stateRate float64) (model.TaxCalculation, error) {
	days := periodEnd.Sub(periodStart).Hours() / 24
	if days <= 0 {
		return model.TaxCalculation{}, common.NewValidationError("period", "annualization window must have positive length")
	}

	factor := 365 / days
	return e.Calculate(incomeToDate*factor, expensesToDate*factor, stateRate)
}

// federalTax applies the standard marginal-bracket algorithm: each
// bracket's rate times the portion of taxable income inside that bracket.
func (e *Engine) federalTax(taxableIncome float64) float64 {
	var tax float64

	for i, bracket := range e.cfg.Brackets {
		if taxableIncome <= bracket.Lower {
			break
		}

		upper := math.Inf(1)
		if i+1 < len(e.cfg.Brackets) {
			upper = e.cfg.Brackets[i+1].Lower
		}

		portion := math.Min(taxableIncome, upper) - bracket.Lower
		tax += portion * bracket.Rate
	}

	return tax
}

// QuarterlyDeadlines returns the four estimated-payment entries for a tax
// year, each carrying an equal share of the annual liability. IsPast
// compares against the supplied clock time.
func (e *Engine) QuarterlyDeadlines(year int, quarterlyPayment float64, now time.Time) []model.QuarterlyDeadline {
	entries := []model.QuarterlyDeadline{
		{Label: "Q1", PeriodDescription: "January 1 - March 31", DueDate: time.Date(year, time.April, 15, 0, 0, 0, 0, time.UTC)},
		{Label: "Q2", PeriodDescription: "April 1 - May 31", DueDate: time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{Label: "Q3", PeriodDescription: "June 1 - August 31", DueDate: time.Date(year, time.September, 15, 0, 0, 0, 0, time.UTC)},
		{Label: "Q4", PeriodDescription: "September 1 - December 31", DueDate: time.Date(year+1, time.January, 15, 0, 0, 0, 0, time.UTC)},
	}

	for i := range entries {
		entries[i].AmountDue = quarterlyPayment
		entries[i].IsPast = entries[i].DueDate.Before(now)
	}

	return entries
}
