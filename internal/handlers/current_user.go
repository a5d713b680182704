package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avolkova/courses-api/internal/middlewares"
)

// CurrentUserResponse is the public projection of the authenticated user
// swagger:model CurrentUserResponse
type CurrentUserResponse struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// NewCurrentUserHandler returns an HTTP handler that returns the
// authenticated user. The password hash is never included.
// @Summary Get current user
// @Description Returns the currently authenticated user's public attributes.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.CurrentUserResponse "Authenticated user"
// @Failure 401 {object} handlers.MessageResponse "Access Denied"
// @Router /api/users [get]
// @Security BasicAuth
func NewCurrentUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Access Denied"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CurrentUserResponse{
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			EmailAddress: user.EmailAddress,
		})
	}
}
