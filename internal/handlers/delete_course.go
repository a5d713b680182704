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
)

// CourseDeleter defines the interface that the service must implement.
type CourseDeleter interface {
	Delete(ctx context.Context, courseID, userID uuid.UUID) error
}

// NewDeleteCourseHandler returns an HTTP handler deleting a course.
// Only the owning user may delete a course.
// @Summary Delete course
// @Description Deletes a course. Owner-only.
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.MessageResponse "Access Denied"
// @Failure 403 "Not the course owner"
// @Failure 404 {object} handlers.MessageResponse "Couldn't delete this course"
// @Router /api/courses/{id} [delete]
// @Security BasicAuth
func NewDeleteCourseHandler(svc CourseDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Access Denied"})
			return
		}

		courseID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Couldn't delete this course"})
			return
		}

		err = svc.Delete(r.Context(), courseID, user.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Couldn't delete this course"})
			case errors.Is(err, services.ErrNotCourseOwner):
				w.WriteHeader(http.StatusForbidden)
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
