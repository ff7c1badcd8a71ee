package models

// SessionStatus represents the lifecycle state of a booked session
type SessionStatus string

const (
	StatusRequested SessionStatus = "requested"
	StatusScheduled SessionStatus = "scheduled"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)

// Session represents a requested coaching slot (distinct from an auth token).
// Date and time are free text, not validated as calendar values.
type Session struct {
	ID         string        `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     string        `bson:"user_id" json:"user_id"`
	Topic      string        `bson:"topic" json:"topic"`
	Date       string        `bson:"date" json:"date"`
	Time       string        `bson:"time" json:"time"`
	Feedback   *string       `bson:"feedback,omitempty" json:"feedback,omitempty"`
	SpatialURL *string       `bson:"spatial_url,omitempty" json:"spatial_url,omitempty"`
	Status     SessionStatus `bson:"status" json:"status"`
}
