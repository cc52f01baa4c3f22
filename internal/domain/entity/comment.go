package entity

import "time"

// CommentStatus is the moderation state of a comment.
type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
)

// FieldServiceID is the soft reference from a comment to its service.
const FieldServiceID = "service_id"

// Valid reports whether s is one of the moderation states.
func (s CommentStatus) Valid() bool {
	switch s {
	case CommentPending, CommentApproved, CommentRejected:
		return true
	default:
		return false
	}
}

// Comment is a public review of a service. ServiceID is checked at creation
// time only; deleting the service leaves its comments in place.
type Comment struct {
	ID          string        `json:"id" bson:"id"`
	ServiceID   string        `json:"service_id" bson:"service_id"`
	UserName    string        `json:"user_name" bson:"user_name"`
	UserEmail   string        `json:"user_email" bson:"user_email"`
	CommentText string        `json:"comment_text" bson:"comment_text"`
	Rating      int           `json:"rating" bson:"rating"`
	Status      CommentStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
}

func (c *Comment) DocumentID() string { return c.ID }

// Assign sets identity and creation time and forces the pending status.
func (c *Comment) Assign(id string, now time.Time) {
	c.ID = id
	c.CreatedAt = now
	c.Status = CommentPending
}
