package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels.
var FieldLabels = map[string]string{
	"Name":        "Name",
	"Email":       "Email",
	"Age":         "Age",
	"Description": "Description",
}

// FormatValidationErrors converts validator.ValidationErrors into a
// single stable, human-readable message.
func FormatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return strings.Join(messages, "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := FieldLabels[e.Field()]
	if label == "" {
		label = e.Field()
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be no longer than %s characters", label, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
