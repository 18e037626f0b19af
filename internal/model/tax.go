package model

import "time"

// TaxBreakdown itemizes the components of a projected tax liability.
// SocialSecurity + Medicare + AdditionalMedicare always equals the
// self-employment tax in the enclosing calculation.
type TaxBreakdown struct {
	SocialSecurity     float64
	Medicare           float64
	AdditionalMedicare float64
	FederalIncome      float64
	State              float64
}

// TaxCalculation is a full projection for one tax year. All figures are
// annual; annualized partial-year projections are scaled before this struct
// is built.
type TaxCalculation struct {
	Breakdown           TaxBreakdown
	GrossIncome         float64
	AdjustedGrossIncome float64
	FederalIncomeTax    float64
	SelfEmploymentTax   float64
	StateTax            float64
	TotalTaxLiability   float64
	EffectiveTaxRate    float64
	QuarterlyPayment    float64
}

// QuarterlyDeadline is one of the four estimated-tax payment dates for a tax
// year, carrying an equal share of the annual liability.
type QuarterlyDeadline struct {
	DueDate           time.Time
	Label             string
	PeriodDescription string
	AmountDue         float64
	IsPast            bool
}
