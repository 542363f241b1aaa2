package entity

import (
	"time"

	"github.com/google/uuid"
)

// Analytics event types recorded by the usecase layer.
const (
	EventNewsletterGenerated = "newsletter_generated"
	EventNewsletterDeleted   = "newsletter_deleted"
	EventSubscriberJoined    = "subscriber_joined"
	EventSubscriberLeft      = "subscriber_left"
)

// AnalyticsEvent is an append-only record of a notable action. Recording is
// best-effort: a failed write is logged and never fails the request.
type AnalyticsEvent struct {
	ID        uuid.UUID `json:"id"`
	EventType string    `json:"event_type"`
	Payload   string    `json:"payload,omitempty"` // JSON-encoded detail
	CreatedAt time.Time `json:"created_at"`
}
