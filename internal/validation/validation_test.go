package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type coursePayload struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
}

type userPayload struct {
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	EmailAddress string `validate:"required,email"`
	Password     string `validate:"required"`
}

func TestCollect_Course(t *testing.T) {
	tests := []struct {
		name     string
		payload  coursePayload
		expected []string
	}{
		{
			name:     "valid",
			payload:  coursePayload{Title: "Go", Description: "Learn Go"},
			expected: nil,
		},
		{
			name:     "missing title",
			payload:  coursePayload{Description: "Learn Go"},
			expected: []string{"Please provide a title."},
		},
		{
			name:    "missing title and description",
			payload: coursePayload{},
			expected: []string{
				"Please provide a title.",
				"Please provide a description.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Collect(tt.payload))
		})
	}
}

func TestCollect_User(t *testing.T) {
	tests := []struct {
		name     string
		payload  userPayload
		expected []string
	}{
		{
			name: "valid",
			payload: userPayload{
				FirstName:    "Joe",
				LastName:     "Smith",
				EmailAddress: "joe@smith.com",
				Password:     "joepassword",
			},
			expected: nil,
		},
		{
			name:    "all fields missing",
			payload: userPayload{},
			expected: []string{
				"Please provide a first name.",
				"Please provide a last name.",
				"Please provide an email address.",
				"Please provide a password.",
			},
		},
		{
			name: "invalid email",
			payload: userPayload{
				FirstName:    "Joe",
				LastName:     "Smith",
				EmailAddress: "not-an-email",
				Password:     "joepassword",
			},
			expected: []string{"Please provide a valid email address."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Collect(tt.payload))
		})
	}
}
