package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avolkova/courses-api/internal/middlewares"
	"github.com/avolkova/courses-api/internal/models"
)

func TestCreateCourseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := &models.UserDB{
		UserID:       uuid.New(),
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
	}
	courseID := uuid.New()
	estimatedTime := "12 hours"

	tests := []struct {
		name             string
		withUser         bool
		body             any
		rawBody          string
		mockSetup        func(m *MockCourseCreator)
		expectedCode     int
		expectedLocation string
		expectedErrors   []string
	}{
		{
			name:     "success",
			withUser: true,
			body: CreateCourseRequest{
				Title:         "Build a Basic Bookcase",
				Description:   "High-end furniture projects are great to dream about.",
				EstimatedTime: &estimatedTime,
			},
			mockSetup: func(m *MockCourseCreator) {
				m.EXPECT().
					Create(gomock.Any(), owner.UserID, "Build a Basic Bookcase", "High-end furniture projects are great to dream about.", &estimatedTime, nil).
					Return(courseID, nil)
			},
			expectedCode:     http.StatusCreated,
			expectedLocation: "/api/courses/" + courseID.String(),
		},
		{
			name:         "missing title and description",
			withUser:     true,
			body:         CreateCourseRequest{},
			expectedCode: http.StatusBadRequest,
			expectedErrors: []string{
				"Please provide a title.",
				"Please provide a description.",
			},
		},
		{
			name:         "invalid json",
			withUser:     true,
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "no authenticated user",
			body: CreateCourseRequest{
				Title:       "Build a Basic Bookcase",
				Description: "Description",
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:     "internal server error",
			withUser: true,
			body: CreateCourseRequest{
				Title:       "Build a Basic Bookcase",
				Description: "Description",
			},
			mockSetup: func(m *MockCourseCreator) {
				m.EXPECT().
					Create(gomock.Any(), owner.UserID, "Build a Basic Bookcase", "Description", nil, nil).
					Return(uuid.Nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCourseCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateCourseHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewBuffer(bodyBytes))
			}
			if tt.withUser {
				req = req.WithContext(middlewares.SetUserToContext(req.Context(), owner))
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
