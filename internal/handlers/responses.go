package handlers

import (
	"github.com/google/uuid"

	"github.com/avolkova/courses-api/internal/models"
)

// MessageResponse carries a single human-readable message
// swagger:model MessageResponse
type MessageResponse struct {
	// Message text
	// default: Access Denied
	Message string `json:"message"`
}

// ValidationErrorsResponse carries one message per violated validation rule
// swagger:model ValidationErrorsResponse
type ValidationErrorsResponse struct {
	// Validation messages
	Errors []string `json:"errors"`
}

// CourseOwnerResponse is the public projection of a course's owner
// swagger:model CourseOwnerResponse
type CourseOwnerResponse struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	EmailAddress string    `json:"emailAddress"`
}

// CourseResponse is the course projection returned by list and get
// swagger:model CourseResponse
type CourseResponse struct {
	ID              uuid.UUID           `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	EstimatedTime   *string             `json:"estimatedTime"`
	MaterialsNeeded *string             `json:"materialsNeeded"`
	Owner           CourseOwnerResponse `json:"owner"`
}

func newCourseResponse(course models.CourseWithOwner) CourseResponse {
	return CourseResponse{
		ID:              course.CourseID,
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		Owner: CourseOwnerResponse{
			ID:           course.Owner.UserID,
			FirstName:    course.Owner.FirstName,
			LastName:     course.Owner.LastName,
			EmailAddress: course.Owner.EmailAddress,
		},
	}
}
