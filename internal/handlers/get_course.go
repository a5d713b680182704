package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avolkova/courses-api/internal/logger"
	"github.com/avolkova/courses-api/internal/models"
	"github.com/avolkova/courses-api/internal/services"
)

// CourseGetter defines the interface that the service must implement.
type CourseGetter interface {
	Get(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error)
}

// NewGetCourseHandler returns an HTTP handler fetching a single course by id.
// @Summary Get course
// @Description Returns a single course with its owner projection.
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} handlers.CourseResponse "Course found"
// @Failure 404 {object} handlers.MessageResponse "No course has been found"
// @Router /api/courses/{id} [get]
func NewGetCourseHandler(svc CourseGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MessageResponse{Message: "No course has been found!"})
			return
		}

		course, err := svc.Get(r.Context(), courseID)
		if err != nil {
			if errors.Is(err, services.ErrCourseNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Message: "No course has been found!"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newCourseResponse(*course))
	}
}
