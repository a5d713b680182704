package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avolkova/courses-api/internal/logger"
	"github.com/avolkova/courses-api/internal/models"
)

// CourseLister defines the interface that the service must implement.
type CourseLister interface {
	List(ctx context.Context) ([]models.CourseWithOwner, error)
}

// NewListCoursesHandler returns an HTTP handler listing all courses.
// @Summary List courses
// @Description Returns all courses with each course's owner projection.
// @Tags courses
// @Produce json
// @Success 200 {array} handlers.CourseResponse "All courses"
// @Failure 404 {object} handlers.MessageResponse "No courses were found"
// @Router /api/courses [get]
func NewListCoursesHandler(svc CourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Internal server error"})
			return
		}

		if courses == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MessageResponse{Message: "No courses were found."})
			return
		}

		resp := make([]CourseResponse, 0, len(courses))
		for _, course := range courses {
			resp = append(resp, newCourseResponse(course))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
