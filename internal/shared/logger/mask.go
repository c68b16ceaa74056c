package logger

import (
	"strings"
	"unicode/utf8"
)

// MaskEmail keeps the first character of the local part.
// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	username, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***@***"
	}

	if username == "" {
		return "***@" + domain
	}

	_, size := utf8.DecodeRuneInString(username)
	return username[:size] + "***@" + domain
}
