package validation

const (
	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MaxNicknameLength = 100
	MaxLastFourLength = 4
)
