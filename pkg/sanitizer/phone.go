package sanitizer

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

const phoneFormatting = " -()."

// NormalizePhone strips formatting characters from an international number.
// Anything else (letters, extensions, numbers without a leading '+') is
// returned trimmed but otherwise untouched so validation can reject it.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	rest, international := strings.CutPrefix(phone, "+")
	if !international {
		return phone
	}

	for _, r := range rest {
		if !unicode.IsDigit(r) && !strings.ContainsRune(phoneFormatting, r) {
			return phone
		}
	}
	return "+" + phonenumbers.NormalizeDigitsOnly(rest)
}
