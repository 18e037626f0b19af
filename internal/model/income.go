// Package model defines the core domain models used throughout the application.
package model

import "time"

// PlatformCategory groups gig platforms by the kind of work they pay for.
type PlatformCategory string

// Platform category constants.
const (
	PlatformRideshare PlatformCategory = "rideshare"
	PlatformDelivery  PlatformCategory = "delivery"
	PlatformFreelance PlatformCategory = "freelance"
	PlatformCreator   PlatformCategory = "creator"
	PlatformRental    PlatformCategory = "rental"
	PlatformOther     PlatformCategory = "other"
)

// Confidence indicates how a credit transaction was matched to a platform.
type Confidence string

// Classification confidence constants. High means an explicit platform rule
// matched; medium means only the generic gig-keyword fallback fired.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)

// FallbackPlatform is the synthetic platform name assigned when a credit
// transaction matches no platform rule but does match a generic gig keyword.
const FallbackPlatform = "Other Gig Work"

// ClassifiedIncome represents a credit transaction attributed to a gig
// platform. Created by the income classifier and never mutated afterwards.
type ClassifiedIncome struct {
	Date              time.Time
	Platform          string
	SourceDescription string
	Category          PlatformCategory
	Confidence        Confidence
	Amount            float64
}
