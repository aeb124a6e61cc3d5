package benefit

import (
	"testing"

	"credlytics/internal/models"

	"github.com/stretchr/testify/assert"
)

func view(id, cardID uint, category string, used bool) models.UserBenefitView {
	return models.UserBenefitView{
		UserBenefit: models.UserBenefit{
			ID:         id,
			UserCardID: cardID,
			Category:   category,
			Used:       used,
		},
	}
}

func TestFilter(t *testing.T) {
	benefits := []models.UserBenefitView{
		view(1, 10, models.CategoryTravel, false),
		view(2, 10, models.CategoryDining, false),
		view(3, 20, models.CategoryDining, true),
		view(4, 20, models.CategoryCashback, false),
	}

	tests := []struct {
		name    string
		opts    FilterOptions
		wantIDs []uint
	}{
		{
			name:    "all filters open",
			opts:    FilterOptions{Category: "all", ShowUsed: true},
			wantIDs: []uint{1, 2, 3, 4},
		},
		{
			name:    "category filter hides other categories",
			opts:    FilterOptions{Category: models.CategoryDining, ShowUsed: true},
			wantIDs: []uint{2, 3},
		},
		{
			name:    "hiding used excludes the used dining benefit",
			opts:    FilterOptions{Category: models.CategoryDining, ShowUsed: false},
			wantIDs: []uint{2},
		},
		{
			name:    "card filter",
			opts:    FilterOptions{Category: "all", CardID: 20, ShowUsed: true},
			wantIDs: []uint{3, 4},
		},
		{
			name:    "card and category combined",
			opts:    FilterOptions{Category: models.CategoryDining, CardID: 10, ShowUsed: false},
			wantIDs: []uint{2},
		},
		{
			name:    "empty category behaves like all",
			opts:    FilterOptions{ShowUsed: true},
			wantIDs: []uint{1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(benefits, tt.opts)
			ids := make([]uint, 0, len(got))
			for _, b := range got {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGroupByCategory(t *testing.T) {
	t.Run("groups follow canonical category order", func(t *testing.T) {
		benefits := []models.UserBenefitView{
			view(1, 10, models.CategoryLounge, false),
			view(2, 10, models.CategoryCashback, false),
			view(3, 20, models.CategoryTravel, false),
			view(4, 20, models.CategoryCashback, false),
		}

		groups := GroupByCategory(benefits)

		assert.Len(t, groups, 3)
		assert.Equal(t, models.CategoryCashback, groups[0].Category)
		assert.Equal(t, models.CategoryTravel, groups[1].Category)
		assert.Equal(t, models.CategoryLounge, groups[2].Category)
		assert.Len(t, groups[0].Benefits, 2)
	})

	t.Run("empty categories are omitted", func(t *testing.T) {
		groups := GroupByCategory([]models.UserBenefitView{
			view(1, 10, models.CategoryDining, false),
		})

		assert.Len(t, groups, 1)
		assert.Equal(t, models.CategoryDining, groups[0].Category)
	})

	t.Run("unknown category lands in other", func(t *testing.T) {
		groups := GroupByCategory([]models.UserBenefitView{
			view(1, 10, "mystery", false),
		})

		assert.Len(t, groups, 1)
		assert.Equal(t, models.CategoryOther, groups[0].Category)
	})

	t.Run("no benefits yields no groups", func(t *testing.T) {
		assert.Empty(t, GroupByCategory(nil))
	})
}
