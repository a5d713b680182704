package models

// Course event types published after successful mutations.
const (
	CourseEventCreated = "created"
	CourseEventUpdated = "updated"
	CourseEventDeleted = "deleted"
)

// CourseEvent is published to Kafka after a course mutation.
type CourseEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	CourseID  string `json:"course_id"`
	UserID    string `json:"user_id"`
	Timestamp int64  `json:"timestamp"`
}
