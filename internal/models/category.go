package models

// Benefit categories in their canonical display order. Grouped views
// preserve this order, not the order benefits were discovered in.
const (
	CategoryCashback  = "cashback"
	CategoryTravel    = "travel"
	CategoryDining    = "dining"
	CategoryShopping  = "shopping"
	CategoryInsurance = "insurance"
	CategoryLounge    = "lounge"
	CategoryOther     = "other"
)

// BenefitCategories is the canonical ordering of categories.
var BenefitCategories = []string{
	CategoryCashback,
	CategoryTravel,
	CategoryDining,
	CategoryShopping,
	CategoryInsurance,
	CategoryLounge,
	CategoryOther,
}

// Benefit types describe how often a benefit resets.
const (
	BenefitTypeOngoing = "ongoing"
	BenefitTypeAnnual  = "annual"
	BenefitTypeMonthly = "monthly"
	BenefitTypeLimited = "limited"
)

// CardColors are the gradient colors a user card may be assigned.
var CardColors = []string{
	"#10B981", // emerald
	"#3B82F6", // blue
	"#8B5CF6", // purple
	"#F59E0B", // amber
	"#EF4444", // red
	"#EC4899", // pink
	"#14B8A6", // teal
	"#1F2937", // slate
}

// IsValidCategory reports whether the category is one of the known values.
func IsValidCategory(category string) bool {
	for _, c := range BenefitCategories {
		if c == category {
			return true
		}
	}
	return false
}

// NormalizeCategory maps unknown categories to "other".
func NormalizeCategory(category string) string {
	if IsValidCategory(category) {
		return category
	}
	return CategoryOther
}
