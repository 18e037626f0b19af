package classify

import (
	"strings"

	"github.com/sidecash/sidecash/internal/model"
	"github.com/sidecash/sidecash/internal/rules"
)

type compiledExpenseRule struct {
	subcategory string
	category    model.ExpenseCategory
	matchers    []string
	rate        float64
}

// ExpenseClassifier assigns deduction categories to debit transactions.
// Evaluation order and tie-breaking match IncomeClassifier: the table is
// walked in order and the first matching rule wins.
type ExpenseClassifier struct {
	rules []compiledExpenseRule
}

// NewExpenseClassifier compiles the expense rules of a rule set.
func NewExpenseClassifier(rs *rules.RuleSet) *ExpenseClassifier {
	c := &ExpenseClassifier{
		rules: make([]compiledExpenseRule, 0, len(rs.ExpenseRules)),
	}

	for _, rule := range rs.ExpenseRules {
		c.rules = append(c.rules, compiledExpenseRule{
			subcategory: rule.Subcategory,
			category:    rule.Category,
			matchers:    lowerAll(rule.Matchers),
			rate:        rule.DeductionRatePercent,
		})
	}

	return c
}

// Classify returns the classified expense for a transaction, or ok=false if
// it matches no deduction rule. Non-debit and zero-amount transactions
// never classify; an unmatched debit is simply not deductible.
func (c *ExpenseClassifier) Classify(txn model.Transaction) (model.ClassifiedExpense, bool) {
	if txn.Direction != model.DirectionDebit || txn.Amount <= 0 {
		return model.ClassifiedExpense{}, false
	}

	desc := strings.ToLower(txn.Description)

	for _, rule := range c.rules {
		if matchesAny(desc, rule.matchers) {
			return model.ClassifiedExpense{
				Category:          rule.category,
				Subcategory:       rule.subcategory,
				Amount:            txn.Amount,
				DeductibleAmount:  txn.Amount * rule.rate / 100,
				Date:              txn.Date,
				SourceDescription: txn.Description,
			}, true
		}
	}

	return model.ClassifiedExpense{}, false
}
