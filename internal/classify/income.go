// Package classify matches individual transactions against rule tables.
//
// Both classifiers are pure: the same transaction and rule set always
// produce the same result, and a transaction that matches nothing is a
// normal outcome, not an error.
package classify

import (
	"strings"

	"github.com/sidecash/sidecash/internal/model"
	"github.com/sidecash/sidecash/internal/rules"
)

// compiledPlatformRule carries a platform rule with its matchers pre-lowered
// so per-transaction matching never re-normalizes pattern text.
type compiledPlatformRule struct {
	platform string
	category model.PlatformCategory
	matchers []string
}

// IncomeClassifier assigns gig platforms to credit transactions using an
// ordered rule table. The first rule with a matching pattern wins; there is
// no best-match scoring.
type IncomeClassifier struct {
	rules    []compiledPlatformRule
	fallback []string
}

// NewIncomeClassifier compiles the platform rules of a rule set.
func NewIncomeClassifier(rs *rules.RuleSet) *IncomeClassifier {
	c := &IncomeClassifier{
		rules:    make([]compiledPlatformRule, 0, len(rs.PlatformRules)),
		fallback: lowerAll(rs.GigFallbackPatterns),
	}

	for _, rule := range rs.PlatformRules {
		c.rules = append(c.rules, compiledPlatformRule{
			platform: rule.Platform,
			category: rule.Category,
			matchers: lowerAll(rule.Matchers),
		})
	}

	return c
}

// Classify returns the classified income for a transaction, or ok=false if
// the transaction is not gig income. Non-credit and zero-amount
// transactions never classify.
func (c *IncomeClassifier) Classify(txn model.Transaction) (model.ClassifiedIncome, bool) {
	if txn.Direction != model.DirectionCredit || txn.Amount <= 0 {
		return model.ClassifiedIncome{}, false
	}

	desc := strings.ToLower(txn.Description)

	for _, rule := range c.rules {
		if matchesAny(desc, rule.matchers) {
			return model.ClassifiedIncome{
				Platform:          rule.platform,
				Category:          rule.category,
				Amount:            txn.Amount,
				Date:              txn.Date,
				SourceDescription: txn.Description,
				Confidence:        model.ConfidenceHigh,
			}, true
		}
	}

	// Generic gig-keyword fallback, reported at medium confidence.
	if matchesAny(desc, c.fallback) {
		return model.ClassifiedIncome{
			Platform:          model.FallbackPlatform,
			Category:          model.PlatformOther,
			Amount:            txn.Amount,
			Date:              txn.Date,
			SourceDescription: txn.Description,
			Confidence:        model.ConfidenceMedium,
		}, true
	}

	return model.ClassifiedIncome{}, false
}

// matchesAny reports whether the lowered description contains any of the
// lowered patterns (case-insensitive substring match).
func matchesAny(desc string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(desc, p) {
			return true
		}
	}
	return false
}

func lowerAll(patterns []string) []string {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}
	return lowered
}
