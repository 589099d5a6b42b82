package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"gtefield": "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"max":      "{field} must be less than or equal to {param}",
	"len":      "{field} must be {param} characters long",
	"oneof":    "{field} must be one of {param}",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"e164":     "{field} must be a phone number in international format",
	"numeric":  "{field} must contain digits only",
	"enum":     "{field} has an unsupported value",
}

// message renders every field error, in declaration order, joined by "; ".
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrors))

	for _, fieldErr := range fieldErrors {
		field := fieldErr.Field()
		if field == "" {
			field = "value"
		}

		tmpl, ok := messages[fieldErr.Tag()]
		if !ok {
			parts = append(parts, field+" is invalid")

			continue
		}

		parts = append(parts, strings.NewReplacer("{field}", field, "{param}", fieldErr.Param()).Replace(tmpl))
	}

	return strings.Join(parts, "; ")
}
