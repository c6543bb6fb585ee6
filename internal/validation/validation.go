package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsEmail проверяет синтаксическую корректность email
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MinLength - непустая строка длиной не меньше min (в рунах)
func MinLength(s string, min int) bool {
	return !IsEmpty(s) && len([]rune(s)) >= min
}
