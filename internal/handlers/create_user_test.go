package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avolkova/courses-api/internal/services"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		body             any
		rawBody          string
		mockSetup        func(m *MockUserRegisterer)
		expectedCode     int
		expectedLocation string
		expectedErrors   []string
	}{
		{
			name: "success",
			body: CreateUserRequest{
				FirstName:    "Joe",
				LastName:     "Smith",
				EmailAddress: "joe@smith.com",
				Password:     "joepassword",
			},
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Joe", "Smith", "joe@smith.com", "joepassword").
					Return(nil)
			},
			expectedCode:     http.StatusCreated,
			expectedLocation: "/",
		},
		{
			name: "missing fields collects every message",
			body: CreateUserRequest{FirstName: "Joe"},
			expectedCode: http.StatusBadRequest,
			expectedErrors: []string{
				"Please provide a last name.",
				"Please provide an email address.",
				"Please provide a password.",
			},
		},
		{
			name: "email already exists",
			body: CreateUserRequest{
				FirstName:    "Joe",
				LastName:     "Smith",
				EmailAddress: "joe@smith.com",
				Password:     "joepassword",
			},
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Joe", "Smith", "joe@smith.com", "joepassword").
					Return(&services.ValidationError{Messages: []string{"The email address you entered already exists."}})
			},
			expectedCode:   http.StatusBadRequest,
			expectedErrors: []string{"The email address you entered already exists."},
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal server error",
			body: CreateUserRequest{
				FirstName:    "Joe",
				LastName:     "Smith",
				EmailAddress: "joe@smith.com",
				Password:     "joepassword",
			},
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Joe", "Smith", "joe@smith.com", "joepassword").
					Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateUserHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
				assert.Empty(t, rr.Body.String())
			}

			if tt.expectedErrors != nil {
				var resp ValidationErrorsResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErrors, resp.Errors)
			}
		})
	}
}
