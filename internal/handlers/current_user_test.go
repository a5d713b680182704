package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avolkova/courses-api/internal/middlewares"
	"github.com/avolkova/courses-api/internal/models"
)

func TestCurrentUserHandler(t *testing.T) {
	handler := NewCurrentUserHandler()

	t.Run("returns public attributes only", func(t *testing.T) {
		user := &models.UserDB{
			UserID:       uuid.New(),
			FirstName:    "Joe",
			LastName:     "Smith",
			EmailAddress: "joe@smith.com",
			PasswordHash: "$2a$10$secret",
		}

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, map[string]string{
			"firstName":    "Joe",
			"lastName":     "Smith",
			"emailAddress": "joe@smith.com",
		}, resp)
	})

	t.Run("no user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
