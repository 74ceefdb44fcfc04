// Package validation checks user supplied fields.
package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return isStrong(fl.Field().String())
	})
	return v
}

// Required reports whether every value is non-blank.
func Required(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Email reports whether email is a syntactically valid address.
func Email(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// Phone accepts 10 to 15 digits, without sign or decimal point.
func Phone(phone string) bool {
	return validate.Var(phone, "required,number,min=10,max=15") == nil
}

// StrongPassword requires at least 8 characters with a lowercase letter, an
// uppercase letter, a digit and a symbol.
func StrongPassword(password string) bool {
	return validate.Var(password, "required,min=8,strongpassword") == nil
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isStrong(s string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
