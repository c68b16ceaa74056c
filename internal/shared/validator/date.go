package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var minBirthday = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// ValidatePastDate accepts dates between 1900-01-01 and now
func ValidatePastDate(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !date.Before(minBirthday) && date.Before(time.Now())
}
