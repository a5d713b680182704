package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avolkova/courses-api/internal/middlewares"
	"github.com/avolkova/courses-api/internal/models"
	"github.com/avolkova/courses-api/internal/services"
)

func TestUpdateCourseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := &models.UserDB{
		UserID:       uuid.New(),
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
	}
	courseID := uuid.New()

	validBody := UpdateCourseRequest{
		Title:       "New Title",
		Description: "New Description",
	}

	tests := []struct {
		name            string
		withUser        bool
		id              string
		body            any
		rawBody         string
		mockSetup       func(m *MockCourseUpdater)
		expectedCode    int
		expectedMessage string
		expectedErrors  []string
	}{
		{
			name:     "success",
			withUser: true,
			id:       courseID.String(),
			body:     validBody,
			mockSetup: func(m *MockCourseUpdater) {
				m.EXPECT().
					Update(gomock.Any(), courseID, owner.UserID, "New Title", "New Description", nil, nil).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "missing title and description",
			withUser:     true,
			id:           courseID.String(),
			body:         UpdateCourseRequest{},
			expectedCode: http.StatusBadRequest,
			expectedErrors: []string{
				"Please provide a title.",
				"Please provide a description.",
			},
		},
		{
			name:            "malformed id",
			withUser:        true,
			id:              "not-a-uuid",
			body:            validBody,
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Unable to update course.",
		},
		{
			name:     "course not found",
			withUser: true,
			id:       courseID.String(),
			body:     validBody,
			mockSetup: func(m *MockCourseUpdater) {
				m.EXPECT().
					Update(gomock.Any(), courseID, owner.UserID, "New Title", "New Description", nil, nil).
					Return(services.ErrCourseNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Unable to update course.",
		},
		{
			name:     "not the owner",
			withUser: true,
			id:       courseID.String(),
			body:     validBody,
			mockSetup: func(m *MockCourseUpdater) {
				m.EXPECT().
					Update(gomock.Any(), courseID, owner.UserID, "New Title", "New Description", nil, nil).
					Return(services.ErrNotCourseOwner)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "invalid json",
			withUser:     true,
			id:           courseID.String(),
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no authenticated user",
			id:           courseID.String(),
			body:         validBody,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:     "internal server error",
			withUser: true,
			id:       courseID.String(),
			body:     validBody,
			mockSetup: func(m *MockCourseUpdater) {
				m.EXPECT().
					Update(gomock.Any(), courseID, owner.UserID, "New Title", "New Description", nil, nil).
					Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCourseUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUpdateCourseHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPut, "/api/courses/"+tt.id, bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPut, "/api/courses/"+tt.id, bytes.NewBuffer(bodyBytes))
			}

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			if tt.withUser {
				req = req.WithContext(middlewares.SetUserToContext(req.Context(), owner))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedMessage != "" {
				var resp MessageResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}

			if tt.expectedErrors != nil {
				var resp ValidationErrorsResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErrors, resp.Errors)
			}

			if tt.expectedCode == http.StatusForbidden || tt.expectedCode == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
