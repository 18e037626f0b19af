// Package stability scores how stable a worker's gig income is.
package stability

import (
	"sort"
	"time"

	"github.com/sidecash/sidecash/internal/model"
)

// defaultMeanGapDays is assumed when fewer than two payments exist, so a
// single payment scores the same consistency as a monthly cadence.
const defaultMeanGapDays = 30.0

// Score computes a 0-100 stability score from classified income items.
//
// Diversification rewards crossing the multi-platform threshold rather than
// marginal platform count: it is a step function, deliberately not linear.
// An empty item list scores zero with a poor rating; that is a normal
// result, not an error.
func Score(items []model.ClassifiedIncome) model.StabilityScore {
	if len(items) == 0 {
		return model.StabilityScore{Rating: model.RatingPoor}
	}

	s := model.StabilityScore{
		DiversificationPoints: diversificationPoints(items),
		ConsistencyPoints:     consistencyPoints(items),
		FrequencyPoints:       frequencyPoints(len(items)),
	}
	s.Score = s.DiversificationPoints + s.ConsistencyPoints + s.FrequencyPoints
	s.Rating = ratingFor(s.Score)

	return s
}

// diversificationPoints steps with the count of distinct platforms: 0-40.
func diversificationPoints(items []model.ClassifiedIncome) int {
	platforms := make(map[string]bool)
	for _, item := range items {
		platforms[item.Platform] = true
	}

	switch {
	case len(platforms) >= 3:
		return 40
	case len(platforms) == 2:
		return 25
	default:
		return 10
	}
}

// consistencyPoints maps the mean gap in days between consecutive payments
// to 0-30 points.
func consistencyPoints(items []model.ClassifiedIncome) int {
	meanGap := defaultMeanGapDays

	if len(items) >= 2 {
		dates := make([]time.Time, len(items))
		for i, item := range items {
			dates[i] = item.Date
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		var totalGap float64
		for i := 1; i < len(dates); i++ {
			totalGap += dates[i].Sub(dates[i-1]).Hours() / 24
		}
		meanGap = totalGap / float64(len(dates)-1)
	}

	switch {
	case meanGap <= 3:
		return 30
	case meanGap <= 7:
		return 25
	case meanGap <= 14:
		return 20
	case meanGap <= 30:
		return 15
	default:
		return 10
	}
}

// frequencyPoints maps total payment count to 0-30 points.
func frequencyPoints(count int) int {
	switch {
	case count >= 20:
		return 30
	case count >= 10:
		return 20
	case count >= 5:
		return 15
	default:
		return 10
	}
}

func ratingFor(score int) model.StabilityRating {
	switch {
	case score >= 80:
		return model.RatingExcellent
	case score >= 60:
		return model.RatingGood
	case score >= 40:
		return model.RatingFair
	default:
		return model.RatingPoor
	}
}
