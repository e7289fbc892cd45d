package validation

import "regexp"

// Whitelist patterns for all user-supplied fields. These are intentionally
// strict: anything outside the pattern is rejected before it reaches storage.
var (
	fullNamePattern      = regexp.MustCompile(`^[A-Za-z ]{1,50}$`)
	idNumberPattern      = regexp.MustCompile(`^[0-9]{6,20}$`)
	accountNumberPattern = regexp.MustCompile(`^[0-9]{6,20}$`)
	usernamePattern      = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	amountPattern        = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
	currencyPattern      = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Providers is the fixed set of accepted payment providers
var Providers = []string{"SWIFT", "PayPal", "Stripe"}

// IsValidFullName reports whether s is 1-50 letters and spaces
func IsValidFullName(s string) bool {
	return fullNamePattern.MatchString(s)
}

// IsValidIDNumber reports whether s is a 6-20 digit national id number
func IsValidIDNumber(s string) bool {
	return idNumberPattern.MatchString(s)
}

// IsValidAccountNumber reports whether s is a 6-20 digit account number
func IsValidAccountNumber(s string) bool {
	return accountNumberPattern.MatchString(s)
}

// IsValidUsername reports whether s is 3-20 word characters
func IsValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// IsValidAmount reports whether s is a decimal amount with at most two
// fractional digits
func IsValidAmount(s string) bool {
	return amountPattern.MatchString(s)
}

// IsValidCurrency reports whether s is a 3-letter uppercase currency code
func IsValidCurrency(s string) bool {
	return currencyPattern.MatchString(s)
}

// IsValidProvider reports whether s is one of the accepted providers
func IsValidProvider(s string) bool {
	for _, p := range Providers {
		if s == p {
			return true
		}
	}
	return false
}
