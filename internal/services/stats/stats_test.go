package stats

import (
	"testing"

	"credlytics/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParseValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "plain dollar amount", value: "$250 annual credit", want: 250},
		{name: "bare number", value: "100", want: 100},
		{name: "thousands separator", value: "$1,000 in credits", want: 1000},
		{name: "number inside text", value: "Up to $450 back", want: 450},
		{name: "only first token counts", value: "$100 + 5000 points", want: 100},
		{name: "percentage reads the number", value: "3% back on groceries", want: 3},
		{name: "no numeric token", value: "no stated value", want: 0},
		{name: "empty string", value: "", want: 0},
		{name: "currency symbol only", value: "$", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseValue(tt.value))
		})
	}
}

func TestCompute(t *testing.T) {
	t.Run("sums unused parseable values only", func(t *testing.T) {
		benefits := []models.UserBenefit{
			{Value: strPtr("$250 credit")},
			{Value: strPtr("100")},
			{Value: strPtr("no stated value")},
			{Value: nil},
		}

		summary := Compute(2, benefits)

		assert.Equal(t, 2, summary.TotalCards)
		assert.Equal(t, 4, summary.TotalBenefits)
		assert.Equal(t, 0, summary.UsedBenefits)
		assert.Equal(t, 350, summary.PotentialSavings)
		assert.Equal(t, "$350+", summary.SavingsDisplay)
	})

	t.Run("used benefits do not count toward savings", func(t *testing.T) {
		benefits := []models.UserBenefit{
			{Value: strPtr("$250 credit"), Used: true},
			{Value: strPtr("$100 credit")},
		}

		summary := Compute(1, benefits)

		assert.Equal(t, 2, summary.TotalBenefits)
		assert.Equal(t, 1, summary.UsedBenefits)
		assert.Equal(t, 100, summary.PotentialSavings)
	})

	t.Run("empty benefit set", func(t *testing.T) {
		summary := Compute(0, nil)

		assert.Equal(t, 0, summary.TotalBenefits)
		assert.Equal(t, 0, summary.UsedBenefits)
		assert.Equal(t, 0, summary.PotentialSavings)
		assert.Equal(t, "$0", summary.SavingsDisplay)
	})
}

func TestFormatSavings(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "$0"},
		{-10, "$0"},
		{350, "$350+"},
		{1000, "$1,000+"},
		{1234567, "$1,234,567+"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSavings(tt.amount))
	}
}
