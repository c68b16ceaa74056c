package validator

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// ValidateMaxBytes bounds the UTF-8 byte length of a string (maxbytes=72).
// max counts runes, which lets multibyte passwords past bcrypt's 72-byte limit.
func ValidateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
