package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Korean mobile numbers, either fully hyphenated or digits only. Mixed forms
// such as 010-12345678 are rejected so stored numbers stay in one of two shapes.
var (
	hyphenatedPhone = regexp.MustCompile(`^01[016789]-[0-9]{3,4}-[0-9]{4}$`)
	compactPhone    = regexp.MustCompile(`^01[016789][0-9]{7,8}$`)
)

func ValidatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return hyphenatedPhone.MatchString(phone) || compactPhone.MatchString(phone)
}
