package validation

import (
	"regexp"

	"credlytics/internal/models"
)

var (
	digitsRegex   = regexp.MustCompile(`^[0-9]*$`)
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// LastFourDigits allows an empty string or up to four digit characters.
func (v *Validator) LastFourDigits(field, value string) {
	v.Check(len(value) <= MaxLastFourLength, field, "must be at most 4 digits")
	v.Check(digitsRegex.MatchString(value), field, "must contain only digits")
}

// CardColor requires a six-digit hex color.
func (v *Validator) CardColor(field, value string) {
	v.Check(hexColorRegex.MatchString(value), field, "must be a hex color like #10B981")
}

// UserRegistration validates the registration input.
func (v *Validator) UserRegistration(input *models.CreateUserInput) {
	v.Required("name", input.Name)
	v.Required("email", input.Email)
	v.Email("email", input.Email)
	v.Check(len(input.Password) >= MinPasswordLength, "password", "must be at least 8 characters")
	v.Check(len(input.Password) <= MaxPasswordLength, "password", "must be at most 72 characters")
	v.Check(HasSpecialChar(input.Password), "password", "must contain a special character")
}
