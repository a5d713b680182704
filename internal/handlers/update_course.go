package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avolkova/courses-api/internal/logger"
	"github.com/avolkova/courses-api/internal/middlewares"
	"github.com/avolkova/courses-api/internal/services"
	"github.com/avolkova/courses-api/internal/validation"
)

// CourseUpdater defines the interface that the service must implement.
type CourseUpdater interface {
	Update(ctx context.Context, courseID, userID uuid.UUID, title, description string, estimatedTime, materialsNeeded *string) error
}

// UpdateCourseRequest represents the JSON body for updating a course
// swagger:model UpdateCourseRequest
type UpdateCourseRequest struct {
	// Title
	// required: true
	Title string `json:"title" validate:"required"`

	// Description
	// required: true
	Description string `json:"description" validate:"required"`

	// Estimated time
	EstimatedTime *string `json:"estimatedTime"`

	// Materials needed
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// NewUpdateCourseHandler returns an HTTP handler updating a course.
// Only the owning user may update a course.
// @Summary Update course
// @Description Updates a course's attributes. Owner-only.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body handlers.UpdateCourseRequest true "Course payload"
// @Success 204 "Updated"
// @Failure 400 {object} handlers.ValidationErrorsResponse "Validation messages"
// @Failure 401 {object} handlers.MessageResponse "Access Denied"
// @Failure 403 "Not the course owner"
// @Failure 404 {object} handlers.MessageResponse "Unable to update course"
// @Router /api/courses/{id} [put]
// @Security BasicAuth
func NewUpdateCourseHandler(svc CourseUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Access Denied"})
			return
		}

		var req UpdateCourseRequest
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

		courseID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Unable to update course."})
			return
		}

		err = svc.Update(r.Context(), courseID, user.UserID, req.Title, req.Description, req.EstimatedTime, req.MaterialsNeeded)
		if err != nil {
			var ve *services.ValidationError
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Unable to update course."})
			case errors.Is(err, services.ErrNotCourseOwner):
				w.WriteHeader(http.StatusForbidden)
			case errors.As(err, &ve):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ValidationErrorsResponse{Errors: ve.Messages})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
