package formflow

import (
	"regexp"
	"strings"
)

var (
	rePhoneChars = regexp.MustCompile(`^[\d\s\-\(\)\+\.]+$`)
	reNonDigit   = regexp.MustCompile(`\D`)
)

// StripPhoneDigits removes every non-digit character from input.
func StripPhoneDigits(input string) string {
	return reNonDigit.ReplaceAllString(input, "")
}

// IsValidPhoneNumber applies the loose intake rule: only phone punctuation
// characters allowed, and at least 10 digits once punctuation is stripped.
// An empty or whitespace-only value is not valid; optional fields must check
// for emptiness before calling.
func IsValidPhoneNumber(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false
	}
	if !rePhoneChars.MatchString(trimmed) {
		return false
	}
	return len(StripPhoneDigits(trimmed)) >= 10
}

// FormatPhoneNumber renders digits as (123)123-1234, truncating past ten
// digits, mirroring the as-you-type formatting of the intake UI.
func FormatPhoneNumber(input string) string {
	digits := StripPhoneDigits(input)
	switch {
	case len(digits) == 0:
		return ""
	case len(digits) <= 3:
		return "(" + digits
	case len(digits) <= 6:
		return "(" + digits[:3] + ")" + digits[3:]
	default:
		if len(digits) > 10 {
			digits = digits[:10]
		}
		return "(" + digits[:3] + ")" + digits[3:6] + "-" + digits[6:]
	}
}
