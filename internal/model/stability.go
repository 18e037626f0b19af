package model

// StabilityRating buckets a stability score for display.
type StabilityRating string

// Stability rating constants.
const (
	RatingExcellent StabilityRating = "excellent"
	RatingGood      StabilityRating = "good"
	RatingFair      StabilityRating = "fair"
	RatingPoor      StabilityRating = "poor"
)

// StabilityScore is a 0-100 composite measure of how stable a worker's gig
// income is. It is recomputed on demand from an income aggregate and never
// persisted by the engine.
type StabilityScore struct {
	Rating                StabilityRating
	Score                 int
	DiversificationPoints int // 0-40, distinct platforms
	ConsistencyPoints     int // 0-30, mean gap between payments
	FrequencyPoints       int // 0-30, payment count
}
