package rules

import "github.com/sidecash/sidecash/internal/model"

// DefaultRuleSet returns the built-in rule tables for the 2025 tax year.
//
// Table order is load-bearing: the first rule whose matcher fires wins, so
// more specific platforms (Uber Eats) must appear before broader ones
// (Uber). Callers that need a different year's tables should load them from
// a versioned rules file instead of editing these.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Version: "2025.1",
		TaxYear: 2025,
		PlatformRules: []PlatformRule{
			// Delivery before rideshare: "uber eats" must win over "uber".
			{Platform: "Uber Eats", Category: model.PlatformDelivery, Matchers: []string{"uber eats", "ubereats", "uber* eats"}},
			{Platform: "DoorDash", Category: model.PlatformDelivery, Matchers: []string{"doordash", "door dash", "dd *doordash"}},
			{Platform: "Grubhub", Category: model.PlatformDelivery, Matchers: []string{"grubhub", "grub hub"}},
			{Platform: "Instacart", Category: model.PlatformDelivery, Matchers: []string{"instacart", "insta cart"}},
			{Platform: "Amazon Flex", Category: model.PlatformDelivery, Matchers: []string{"amazon flex", "amzn flex", "amazon.com flex"}},
			{Platform: "Shipt", Category: model.PlatformDelivery, Matchers: []string{"shipt"}},
			{Platform: "Uber", Category: model.PlatformRideshare, Matchers: []string{"uber bv", "uber trip", "uber "}},
			{Platform: "Lyft", Category: model.PlatformRideshare, Matchers: []string{"lyft"}},
			{Platform: "Upwork", Category: model.PlatformFreelance, Matchers: []string{"upwork"}},
			{Platform: "Fiverr", Category: model.PlatformFreelance, Matchers: []string{"fiverr"}},
			{Platform: "Freelancer.com", Category: model.PlatformFreelance, Matchers: []string{"freelancer.com", "freelancer intl"}},
			{Platform: "TaskRabbit", Category: model.PlatformFreelance, Matchers: []string{"taskrabbit", "task rabbit"}},
			{Platform: "YouTube", Category: model.PlatformCreator, Matchers: []string{"youtube", "google adsense", "adsense"}},
			{Platform: "Twitch", Category: model.PlatformCreator, Matchers: []string{"twitch"}},
			{Platform: "Patreon", Category: model.PlatformCreator, Matchers: []string{"patreon"}},
			{Platform: "Substack", Category: model.PlatformCreator, Matchers: []string{"substack"}},
			{Platform: "Etsy", Category: model.PlatformCreator, Matchers: []string{"etsy"}},
			{Platform: "Airbnb", Category: model.PlatformRental, Matchers: []string{"airbnb", "air bnb"}},
			{Platform: "Vrbo", Category: model.PlatformRental, Matchers: []string{"vrbo", "homeaway"}},
			{Platform: "Turo", Category: model.PlatformRental, Matchers: []string{"turo"}},
			{Platform: "Rover", Category: model.PlatformOther, Matchers: []string{"rover.com", "a place for rover"}},
		},
		ExpenseRules: []ExpenseRule{
			{Subcategory: "Fuel", Category: model.ExpenseVehicle, DeductionRatePercent: 100,
				Matchers:            []string{"shell oil", "chevron", "exxon", "mobil", "bp#", "arco", "76 -", "fuel", "gas station"},
				ApplicableWorkTypes: []string{"rideshare", "delivery"}},
			{Subcategory: "Vehicle Maintenance", Category: model.ExpenseVehicle, DeductionRatePercent: 100,
				Matchers:            []string{"jiffy lube", "valvoline", "autozone", "o'reilly", "firestone", "midas", "oil change", "car wash"},
				ApplicableWorkTypes: []string{"rideshare", "delivery"}},
			{Subcategory: "Tolls", Category: model.ExpenseVehicle, DeductionRatePercent: 100,
				Matchers:            []string{"fastrak", "e-zpass", "ezpass", "toll"},
				ApplicableWorkTypes: []string{"rideshare", "delivery"}},
			{Subcategory: "Parking", Category: model.ExpenseVehicle, DeductionRatePercent: 100,
				Matchers:            []string{"parking", "parkmobile", "spothero"},
				ApplicableWorkTypes: []string{"rideshare", "delivery"}},
			{Subcategory: "Phone Plan", Category: model.ExpensePhone, DeductionRatePercent: 50,
				Matchers: []string{"verizon", "t-mobile", "tmobile", "at&t", "att wireless", "mint mobile", "visible"}},
			{Subcategory: "Home Internet", Category: model.ExpenseHomeOffice, DeductionRatePercent: 50,
				Matchers:            []string{"comcast", "xfinity", "spectrum", "centurylink", "frontier comm", "internet"},
				ApplicableWorkTypes: []string{"freelance", "creator"}},
			{Subcategory: "Software Subscriptions", Category: model.ExpenseSoftware, DeductionRatePercent: 100,
				Matchers:            []string{"adobe", "canva", "figma", "github", "dropbox", "notion", "zoom.us", "quickbooks"},
				ApplicableWorkTypes: []string{"freelance", "creator"}},
			{Subcategory: "Mileage Tracking", Category: model.ExpenseSoftware, DeductionRatePercent: 100,
				Matchers:            []string{"everlance", "stride health", "hurdlr", "mileiq"},
				ApplicableWorkTypes: []string{"rideshare", "delivery"}},
			{Subcategory: "Equipment", Category: model.ExpenseEquipment, DeductionRatePercent: 100,
				Matchers: []string{"best buy", "b&h photo", "micro center", "newegg"}},
			{Subcategory: "Office Supplies", Category: model.ExpenseSupplies, DeductionRatePercent: 100,
				Matchers: []string{"office depot", "officemax", "staples"}},
		},
		// Acknowledged approximation: generic keywords that suggest gig
		// income when no platform rule matches. Matches are reported at
		// medium confidence under the "Other Gig Work" platform.
		GigFallbackPatterns: []string{
			"contractor payment",
			"freelance payment",
			"1099 payment",
			"1099-nec",
			"gig payment",
			"independent contractor",
		},
	}
}
