package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/avolkova/courses-api/internal/logger"
	"github.com/avolkova/courses-api/internal/models"
)

// CourseCacheRepository caches course detail projections in Redis.
type CourseCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached courses
}

// NewCourseCacheRepository creates a cache repository with the given TTL.
func NewCourseCacheRepository(client *redis.Client, expiration time.Duration) *CourseCacheRepository {
	return &CourseCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func courseKey(courseID uuid.UUID) string {
	return fmt.Sprintf("course:%s", courseID)
}

// Get returns the cached course, or (nil, nil) on a cache miss.
func (r *CourseCacheRepository) Get(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error) {
	key := courseKey(courseID)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Debugw("course cache get", "key", key, "error", err)
		return nil, err
	}

	var course models.CourseWithOwner
	if err := json.Unmarshal(val, &course); err != nil {
		logger.Log.Debugw("course cache decode", "key", key, "error", err)
		return nil, err
	}

	return &course, nil
}

// Set caches a course projection with the configured expiration.
func (r *CourseCacheRepository) Set(ctx context.Context, course *models.CourseWithOwner) error {
	key := courseKey(course.CourseID)

	data, err := json.Marshal(course)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw("course cache set", "key", key, "error", err)

	return err
}

// Delete evicts a course from the cache.
func (r *CourseCacheRepository) Delete(ctx context.Context, courseID uuid.UUID) error {
	key := courseKey(courseID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("course cache delete", "key", key, "error", err)

	return err
}
