package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastFourDigits(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"four digits", "1234", true},
		{"empty", "", true},
		{"fewer than four", "12", true},
		{"too long", "12345", false},
		{"letters", "12ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.LastFourDigits("last_four_digits", tt.value)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestCardColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"uppercase hex", "#10B981", true},
		{"lowercase hex", "#3b82f6", true},
		{"missing hash", "10B981", false},
		{"too short", "#FFF", false},
		{"non-hex", "#ZZZZZZ", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.CardColor("color", tt.value)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestHasSpecialChar(t *testing.T) {
	assert.True(t, HasSpecialChar("hunter2!"))
	assert.True(t, HasSpecialChar("pass word"))
	assert.False(t, HasSpecialChar("hunter2"))
	assert.False(t, HasSpecialChar(""))
}
