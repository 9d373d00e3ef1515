package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// e164Pattern matches a leading plus, a non-zero first digit, and up to 15
// digits total.
var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

// ValidatePhone cleans a phone number and checks it against E.164. Spaces
// and dashes are stripped and a missing leading plus is added, so "1 555
// 123-4567" normalizes to "+15551234567".
func ValidatePhone(phone string) (bool, string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.TrimSpace(stripped)

	if stripped == "" {
		return false, "", fmt.Errorf("phone number is required")
	}

	if !strings.HasPrefix(stripped, "+") {
		stripped = "+" + stripped
	}

	if !e164Pattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid phone number format, include country code (e.g. +1 for US)")
	}

	return true, stripped, nil
}
