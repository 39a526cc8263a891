// Package contact normalizes lead and seller contact details.
package contact

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the region assumed for numbers without a country code.
const DefaultRegion = "AE"

// NormalizePhone formats a phone number as E.164 using DefaultRegion.
func NormalizePhone(input string) string {
	return NormalizePhoneIn(input, DefaultRegion)
}

// NormalizePhoneIn formats a phone number as E.164, assuming region for
// numbers written without a country code. Input that does not parse as a
// valid number is returned trimmed but otherwise unchanged.
func NormalizePhoneIn(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return trimmed
	}
	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

// WhatsAppLink returns a wa.me link for the number, or "" when the number
// does not normalize to E.164.
func WhatsAppLink(input string) string {
	n := NormalizePhone(input)
	if !strings.HasPrefix(n, "+") {
		return ""
	}
	return "https://wa.me/" + strings.TrimPrefix(n, "+")
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
