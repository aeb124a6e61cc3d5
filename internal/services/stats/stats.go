// Package stats derives summary counts and a potential-savings
// estimate from a user's benefit set.
package stats

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"credlytics/internal/models"
)

// Summary holds the derived counters shown on the dashboard.
type Summary struct {
	TotalCards       int    `json:"total_cards"`
	TotalBenefits    int    `json:"total_benefits"`
	UsedBenefits     int    `json:"used_benefits"`
	PotentialSavings int    `json:"potential_savings"`
	SavingsDisplay   string `json:"savings_display"`
}

// valuePattern extracts the first run of digits and commas from a
// benefit value string, optionally preceded by a dollar sign.
// "$250 annual credit" -> 250, "1,000 points" -> 1000.
var valuePattern = regexp.MustCompile(`\$?([\d,]+)`)

// ParseValue extracts a currency-like integer from a benefit value
// string. Only the first numeric token is considered, so multi-value
// strings like "$100 + 5000 points" yield 100. Strings with no
// numeric token yield 0. This is a best-effort heuristic, not an
// exact financial computation.
func ParseValue(value string) int {
	match := valuePattern.FindStringSubmatch(value)
	if match == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// Compute aggregates the unfiltered benefit set. PotentialSavings sums
// the parsed value of unused benefits only; used benefits no longer
// count toward what the user could still claim.
func Compute(totalCards int, benefits []models.UserBenefit) Summary {
	s := Summary{
		TotalCards:    totalCards,
		TotalBenefits: len(benefits),
	}
	for _, b := range benefits {
		if b.Used {
			s.UsedBenefits++
			continue
		}
		if b.Value != nil {
			s.PotentialSavings += ParseValue(*b.Value)
		}
	}
	s.SavingsDisplay = FormatSavings(s.PotentialSavings)
	return s
}

// FormatSavings renders the savings estimate the way the dashboard
// shows it: "$1,234+" for a positive amount, "$0" otherwise.
func FormatSavings(amount int) string {
	if amount <= 0 {
		return "$0"
	}
	return fmt.Sprintf("$%s+", groupThousands(amount))
}

func groupThousands(n int) string {
	digits := strconv.Itoa(n)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
