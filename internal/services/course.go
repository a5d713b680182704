package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/avolkova/courses-api/internal/logger"
	"github.com/avolkova/courses-api/internal/models"
)

// CourseReader defines read operations for courses.
type CourseReader interface {
	List(ctx context.Context) ([]models.CourseWithOwner, error)
	GetByID(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error)
}

// CourseWriter defines write operations for courses.
type CourseWriter interface {
	Save(ctx context.Context, course models.CourseDB) error
	Update(ctx context.Context, courseID uuid.UUID, title, description string, estimatedTime, materialsNeeded *string) error
	Delete(ctx context.Context, courseID uuid.UUID) error
}

// CourseCache caches course detail projections.
type CourseCache interface {
	Get(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error)
	Set(ctx context.Context, course *models.CourseWithOwner) error
	Delete(ctx context.Context, courseID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// CourseService handles course CRUD, ownership checks, caching and event publishing.
type CourseService struct {
	reader      CourseReader
	writer      CourseWriter
	cache       CourseCache
	kafkaWriter KafkaWriter
}

// NewCourseService creates a new CourseService. Cache and Kafka writer are
// optional; a nil value disables the corresponding concern.
func NewCourseService(reader CourseReader, writer CourseWriter, cache CourseCache, kafkaWriter KafkaWriter) *CourseService {
	return &CourseService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all courses with their owners.
func (s *CourseService) List(ctx context.Context) ([]models.CourseWithOwner, error) {
	courses, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list courses", "error", err)
		return nil, err
	}
	return courses, nil
}

// Get returns a single course by id, reading through the cache.
// Returns ErrCourseNotFound when no such course exists.
func (s *CourseService) Get(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, courseID)
		if err != nil {
			logger.Log.Warnw("course cache read failed", "course_id", courseID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	course, err := s.reader.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", courseID, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, course); err != nil {
			logger.Log.Warnw("course cache write failed", "course_id", courseID, "error", err)
		}
	}

	return course, nil
}

// Create persists a new course owned by ownerID and returns the new course id.
// The owner always comes from the authenticated user, never from the payload.
func (s *CourseService) Create(ctx context.Context, ownerID uuid.UUID, title, description string, estimatedTime, materialsNeeded *string) (uuid.UUID, error) {
	course := models.CourseDB{
		CourseID:        uuid.New(),
		Title:           title,
		Description:     description,
		EstimatedTime:   estimatedTime,
		MaterialsNeeded: materialsNeeded,
		UserID:          ownerID,
	}

	if err := s.writer.Save(ctx, course); err != nil {
		logger.Log.Errorw("failed to save course", "user_id", ownerID, "error", err)
		return uuid.Nil, err
	}

	s.publishEvent(ctx, models.CourseEventCreated, course.CourseID, ownerID)

	return course.CourseID, nil
}

// Update rewrites a course's attributes after checking that userID owns it.
func (s *CourseService) Update(ctx context.Context, courseID, userID uuid.UUID, title, description string, estimatedTime, materialsNeeded *string) error {
	course, err := s.reader.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course for update", "course_id", courseID, "error", err)
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}
	if course.Owner.UserID != userID {
		return ErrNotCourseOwner
	}

	if err := s.writer.Update(ctx, courseID, title, description, estimatedTime, materialsNeeded); err != nil {
		logger.Log.Errorw("failed to update course", "course_id", courseID, "error", err)
		return err
	}

	s.invalidate(ctx, courseID)
	s.publishEvent(ctx, models.CourseEventUpdated, courseID, userID)

	return nil
}

// Delete removes a course after checking that userID owns it.
func (s *CourseService) Delete(ctx context.Context, courseID, userID uuid.UUID) error {
	course, err := s.reader.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course for delete", "course_id", courseID, "error", err)
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}
	if course.Owner.UserID != userID {
		return ErrNotCourseOwner
	}

	if err := s.writer.Delete(ctx, courseID); err != nil {
		logger.Log.Errorw("failed to delete course", "course_id", courseID, "error", err)
		return err
	}

	s.invalidate(ctx, courseID)
	s.publishEvent(ctx, models.CourseEventDeleted, courseID, userID)

	return nil
}

func (s *CourseService) invalidate(ctx context.Context, courseID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, courseID); err != nil {
		logger.Log.Warnw("course cache invalidation failed", "course_id", courseID, "error", err)
	}
}

// publishEvent publishes a course event to Kafka. Publishing is best-effort:
// a nil writer or a publish error never fails the request.
func (s *CourseService) publishEvent(ctx context.Context, eventType string, courseID, userID uuid.UUID) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.CourseEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		CourseID:  courseID.String(),
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal course event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.CourseID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish course event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("course event published", "event_id", event.EventID, "type", eventType, "course_id", event.CourseID)
	}
}
