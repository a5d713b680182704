package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Collect validates a request struct and returns one human-readable
// message per violated field. A nil result means the payload is valid.
func Collect(v any) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, messageFor(fe))
	}
	return msgs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		return "Please provide a title."
	case "Description":
		return "Please provide a description."
	case "FirstName":
		return "Please provide a first name."
	case "LastName":
		return "Please provide a last name."
	case "EmailAddress":
		if fe.Tag() == "email" {
			return "Please provide a valid email address."
		}
		return "Please provide an email address."
	case "Password":
		return "Please provide a password."
	}
	return fmt.Sprintf("Invalid value for %s.", fe.Field())
}
