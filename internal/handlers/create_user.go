package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkova/courses-api/internal/logger"
	"github.com/avolkova/courses-api/internal/services"
	"github.com/avolkova/courses-api/internal/validation"
)

// UserRegisterer defines the interface that the service must implement.
type UserRegisterer interface {
	Register(ctx context.Context, firstName, lastName, email, password string) error
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// First name
	// required: true
	// default: Joe
	FirstName string `json:"firstName" validate:"required"`

	// Last name
	// required: true
	// default: Smith
	LastName string `json:"lastName" validate:"required"`

	// Email address, used as the login name
	// required: true
	// default: joe@smith.com
	EmailAddress string `json:"emailAddress" validate:"required,email"`

	// Password, hashed before it reaches the store
	// required: true
	// default: joepassword
	Password string `json:"password" validate:"required"`
}

// NewCreateUserHandler returns an HTTP handler for user registration.
// @Summary Create user
// @Description Creates a new user account. The email address must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "User payload"
// @Success 201 "Created, Location header set to /"
// @Failure 400 {object} handlers.ValidationErrorsResponse "Validation messages"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Invalid request body"})
			return
		}

		if msgs := validation.Collect(req); len(msgs) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ValidationErrorsResponse{Errors: msgs})
			return
		}

		if err := svc.Register(r.Context(), req.FirstName, req.LastName, req.EmailAddress, req.Password); err != nil {
			var ve *services.ValidationError
			if errors.As(err, &ve) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ValidationErrorsResponse{Errors: ve.Messages})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Internal server error"})
			return
		}

		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusCreated)
	}
}
