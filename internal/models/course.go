package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseDB represents a course record in the database.
// UserID is the owning user and is never reassigned after creation.
type CourseDB struct {
	CourseID        uuid.UUID `json:"id" db:"course_id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	EstimatedTime   *string   `json:"estimatedTime" db:"estimated_time"`
	MaterialsNeeded *string   `json:"materialsNeeded" db:"materials_needed"`
	UserID          uuid.UUID `json:"userId" db:"user_id"`
	CreatedAt       time.Time `json:"-" db:"created_at"`
	UpdatedAt       time.Time `json:"-" db:"updated_at"`
}

// CourseOwner is the public projection of a course's owning user.
type CourseOwner struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	EmailAddress string    `json:"emailAddress" db:"email"`
}

// CourseWithOwner is a course joined with its owner's public attributes.
type CourseWithOwner struct {
	CourseID        uuid.UUID   `json:"id" db:"course_id"`
	Title           string      `json:"title" db:"title"`
	Description     string      `json:"description" db:"description"`
	EstimatedTime   *string     `json:"estimatedTime" db:"estimated_time"`
	MaterialsNeeded *string     `json:"materialsNeeded" db:"materials_needed"`
	Owner           CourseOwner `json:"owner" db:"owner"`
}
