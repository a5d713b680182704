package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avolkova/courses-api/internal/logger"
	"github.com/avolkova/courses-api/internal/models"
)

// courseColumns selects a course row joined with its owner's public attributes.
// The owner's password hash is deliberately not part of the projection.
const courseColumns = `
	c.course_id, c.title, c.description, c.estimated_time, c.materials_needed,
	u.user_id AS "owner.user_id",
	u.first_name AS "owner.first_name",
	u.last_name AS "owner.last_name",
	u.email AS "owner.email"
`

// CourseReadRepository provides read access to course records.
type CourseReadRepository struct {
	db *sqlx.DB
}

func NewCourseReadRepository(db *sqlx.DB) *CourseReadRepository {
	return &CourseReadRepository{db: db}
}

// List returns all courses with their owners. The result is never nil.
func (r *CourseReadRepository) List(ctx context.Context) ([]models.CourseWithOwner, error) {
	const query = `
		SELECT ` + courseColumns + `
		FROM courses c
		JOIN users u ON u.user_id = c.user_id
		ORDER BY c.created_at
	`

	courses := make([]models.CourseWithOwner, 0)
	err := r.db.SelectContext(ctx, &courses, query)

	logger.Log.Debugw("course list query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(courses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID returns the course with the given id and its owner,
// or (nil, nil) when no such course exists.
func (r *CourseReadRepository) GetByID(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error) {
	const query = `
		SELECT ` + courseColumns + `
		FROM courses c
		JOIN users u ON u.user_id = c.user_id
		WHERE c.course_id = $1
	`

	var course models.CourseWithOwner
	err := r.db.GetContext(ctx, &course, query, courseID)

	logger.Log.Debugw("course query",
		"query", strings.Join(strings.Fields(query), " "),
		"course_id", courseID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &course, nil
}

// CourseWriteRepository provides write access to course records.
type CourseWriteRepository struct {
	db *sqlx.DB
}

func NewCourseWriteRepository(db *sqlx.DB) *CourseWriteRepository {
	return &CourseWriteRepository{db: db}
}

// Save inserts a new course record.
func (r *CourseWriteRepository) Save(ctx context.Context, course models.CourseDB) error {
	const query = `
		INSERT INTO courses (course_id, title, description, estimated_time, materials_needed, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	args := []any{course.CourseID, course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.UserID}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Debugw("course insert",
		"query", strings.Join(strings.Fields(query), " "),
		"course_id", course.CourseID,
		"user_id", course.UserID,
		"error", err,
	)

	return err
}

// Update rewrites the mutable attributes of a course. The owner is not touched.
func (r *CourseWriteRepository) Update(ctx context.Context, courseID uuid.UUID, title, description string, estimatedTime, materialsNeeded *string) error {
	const query = `
		UPDATE courses
		SET title = $2, description = $3, estimated_time = $4, materials_needed = $5, updated_at = NOW()
		WHERE course_id = $1
	`
	args := []any{courseID, title, description, estimatedTime, materialsNeeded}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("course update",
		"query", strings.Join(strings.Fields(query), " "),
		"course_id", courseID,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a course record.
func (r *CourseWriteRepository) Delete(ctx context.Context, courseID uuid.UUID) error {
	const query = `DELETE FROM courses WHERE course_id = $1`

	res, err := r.db.ExecContext(ctx, query, courseID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("course delete",
		"query", query,
		"course_id", courseID,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}
