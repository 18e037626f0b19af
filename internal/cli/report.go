package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sidecash/sidecash/internal/model"
)

const dateFormat = "2006-01-02"

// RenderIncomeReport formats an income aggregate for terminal display.
func RenderIncomeReport(agg *model.IncomeAggregate) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Gig Income"))
	b.WriteString("\n")

	if len(agg.Items) == 0 {
		b.WriteString(SubtleStyle.Render("No gig income found in this batch."))
		b.WriteString("\n")
		return b.String()
	}

	platforms := agg.Platforms()
	sort.Strings(platforms)

	for _, platform := range platforms {
		items := agg.ByPlatform[platform]
		b.WriteString(fmt.Sprintf("  %-20s %4d payments  %s\n",
			platform, len(items), BoldStyle.Render(fmt.Sprintf("$%.2f", agg.PlatformTotal(platform)))))
	}

	b.WriteString(SubtleStyle.Render(fmt.Sprintf("  %s to %s",
		agg.PeriodStart.Format(dateFormat), agg.PeriodEnd.Format(dateFormat))))
	b.WriteString("\n")
	b.WriteString(BoldStyle.Render(fmt.Sprintf("  Total: $%.2f", agg.TotalIncome)))
	b.WriteString("\n")

	return b.String()
}

// RenderExpenseReport formats an expense aggregate for terminal display.
func RenderExpenseReport(agg *model.ExpenseAggregate) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Deductible Expenses"))
	b.WriteString("\n")

	if len(agg.Items) == 0 {
		b.WriteString(SubtleStyle.Render("No deductible expenses found in this batch."))
		b.WriteString("\n")
		return b.String()
	}

	categories := make([]string, 0, len(agg.ByCategory))
	for category := range agg.ByCategory {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)

	for _, name := range categories {
		category := model.ExpenseCategory(name)
		items := agg.ByCategory[category]
		b.WriteString(fmt.Sprintf("  %-14s %4d items  deductible %s\n",
			name, len(items), BoldStyle.Render(fmt.Sprintf("$%.2f", agg.CategoryDeductions(category)))))
	}

	b.WriteString(fmt.Sprintf("  Spent $%.2f, deductible %s, est. savings %s\n",
		agg.TotalExpenses,
		BoldStyle.Render(fmt.Sprintf("$%.2f", agg.TotalDeductions)),
		SuccessStyle.Render(fmt.Sprintf("$%.2f", agg.PotentialTaxSavings))))

	return b.String()
}

// RenderStabilityReport formats a stability score for terminal display.
func RenderStabilityReport(score model.StabilityScore) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Income Stability"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Score: %s (%s)\n",
		BoldStyle.Render(fmt.Sprintf("%d/100", score.Score)),
		ratingStyle(score.Rating).Render(string(score.Rating))))
	b.WriteString(fmt.Sprintf("  Diversification: %d/40\n", score.DiversificationPoints))
	b.WriteString(fmt.Sprintf("  Consistency:     %d/30\n", score.ConsistencyPoints))
	b.WriteString(fmt.Sprintf("  Frequency:       %d/30\n", score.FrequencyPoints))

	return b.String()
}

// RenderTaxReport formats a tax calculation for terminal display.
func RenderTaxReport(calc model.TaxCalculation) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Tax Projection"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Gross income:        $%.2f\n", calc.GrossIncome))
	b.WriteString(fmt.Sprintf("  Adjusted gross:      $%.2f\n", calc.AdjustedGrossIncome))
	b.WriteString(fmt.Sprintf("  Self-employment tax: $%.2f\n", calc.SelfEmploymentTax))
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("    Social Security $%.2f · Medicare $%.2f · Additional $%.2f",
		calc.Breakdown.SocialSecurity, calc.Breakdown.Medicare, calc.Breakdown.AdditionalMedicare)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Federal income tax:  $%.2f\n", calc.FederalIncomeTax))
	b.WriteString(fmt.Sprintf("  State tax (approx):  $%.2f\n", calc.StateTax))
	b.WriteString(BoldStyle.Render(fmt.Sprintf("  Total liability:     $%.2f (%.1f%% effective)",
		calc.TotalTaxLiability, calc.EffectiveTaxRate*100)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Quarterly payment:   $%.2f\n", calc.QuarterlyPayment))

	return b.String()
}

// RenderDeadlines formats the quarterly payment schedule.
func RenderDeadlines(deadlines []model.QuarterlyDeadline) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Estimated Payment Schedule"))
	b.WriteString("\n")

	for _, d := range deadlines {
		line := fmt.Sprintf("  %s  %s  $%.2f  (%s)",
			d.Label, d.DueDate.Format(dateFormat), d.AmountDue, d.PeriodDescription)
		if d.IsPast {
			line += "  " + SubtleStyle.Render("past")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func ratingStyle(rating model.StabilityRating) lipgloss.Style {
	switch rating {
	case model.RatingExcellent, model.RatingGood:
		return SuccessStyle
	case model.RatingFair:
		return WarningStyle
	default:
		return ErrorStyle
	}
}
