package controllers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationMessages flattens a binding error into human-readable messages.
func validationMessages(err error) []string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		messages := make([]string, 0, len(errs))
		for _, fe := range errs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("Please add a %s", field))
			case "max":
				messages = append(messages, fmt.Sprintf("%s cannot be more than %s characters", field, fe.Param()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
			case "email":
				messages = append(messages, "Please add a valid email")
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", field))
			}
		}
		return messages
	}
	return []string{err.Error()}
}
