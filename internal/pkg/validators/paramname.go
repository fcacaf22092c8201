package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ParamNameValidation validates namespace and parameter name segments.
// Overrides are persisted under "<namespace>.<name>", so a segment must not
// contain the separator itself or any whitespace.
func ParamNameValidation(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return false
	}

	return !strings.ContainsAny(name, ". \t\r\n")
}
