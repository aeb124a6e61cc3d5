package benefit

import "credlytics/internal/models"

// FilterOptions narrows a benefit list for display. A zero CardID or
// an empty/"all" Category means no filtering on that axis.
type FilterOptions struct {
	Category string
	CardID   uint
	ShowUsed bool
}

// CategoryGroup is one category's benefits in a grouped view.
type CategoryGroup struct {
	Category string                   `json:"category"`
	Benefits []models.UserBenefitView `json:"benefits"`
}

// Filter applies the category, card and used filters to an in-memory
// benefit list. A benefit passes when it matches the category filter
// AND the card filter AND (ShowUsed OR it is unused).
func Filter(benefits []models.UserBenefitView, opts FilterOptions) []models.UserBenefitView {
	filtered := make([]models.UserBenefitView, 0, len(benefits))
	for _, b := range benefits {
		if opts.Category != "" && opts.Category != "all" && b.Category != opts.Category {
			continue
		}
		if opts.CardID != 0 && b.UserCardID != opts.CardID {
			continue
		}
		if !opts.ShowUsed && b.Used {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}

// GroupByCategory groups benefits in the canonical category order,
// not the order they appear in. Categories with no benefits are
// omitted from the result.
func GroupByCategory(benefits []models.UserBenefitView) []CategoryGroup {
	byCategory := make(map[string][]models.UserBenefitView)
	for _, b := range benefits {
		category := models.NormalizeCategory(b.Category)
		byCategory[category] = append(byCategory[category], b)
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for _, category := range models.BenefitCategories {
		if members, ok := byCategory[category]; ok {
			groups = append(groups, CategoryGroup{Category: category, Benefits: members})
		}
	}
	return groups
}
