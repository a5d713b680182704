package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkova/courses-api/internal/logger"
	"github.com/avolkova/courses-api/internal/middlewares"
	"github.com/avolkova/courses-api/internal/services"
	"github.com/avolkova/courses-api/internal/validation"
)

// CourseCreator defines the interface that the service must implement.
type CourseCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, title, description string, estimatedTime, materialsNeeded *string) (uuid.UUID, error)
}

// CreateCourseRequest represents the JSON body for creating a course.
// The owner is always the authenticated user; a client-supplied owner is ignored.
// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	// Title
	// required: true
	// default: Build a Basic Bookcase
	Title string `json:"title" validate:"required"`

	// Description
	// required: true
	// default: High-end furniture projects are great to dream about.
	Description string `json:"description" validate:"required"`

	// Estimated time
	// default: 12 hours
	EstimatedTime *string `json:"estimatedTime"`

	// Materials needed
	// default: * 1/2 x 3/4 inch parting strip
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// NewCreateCourseHandler returns an HTTP handler creating a course owned by
// the authenticated user.
// @Summary Create course
// @Description Creates a new course. The authenticated user becomes the owner.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body handlers.CreateCourseRequest true "Course payload"
// @Success 201 "Created, Location header points at the new course"
// @Failure 400 {object} handlers.ValidationErrorsResponse "Validation messages"
// @Failure 401 {object} handlers.MessageResponse "Access Denied"
// @Router /api/courses [post]
// @Security BasicAuth
func NewCreateCourseHandler(svc CourseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Access Denied"})
			return
		}

		var req CreateCourseRequest
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

		courseID, err := svc.Create(r.Context(), user.UserID, req.Title, req.Description, req.EstimatedTime, req.MaterialsNeeded)
		if err != nil {
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

		w.Header().Set("Location", "/api/courses/"+courseID.String())
		w.WriteHeader(http.StatusCreated)
	}
}
