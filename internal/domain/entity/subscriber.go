package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber represents a newsletter subscriber. Sending is a downstream
// concern; the core only stores subscription state.
type Subscriber struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name,omitempty"`
	Region           Region     `json:"region"`
	IsVerified       bool       `json:"is_verified"`
	IsSubscribed     bool       `json:"is_subscribed"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	SubscribedAt     time.Time  `json:"subscribed_at"`
	UnsubscribedAt   *time.Time `json:"unsubscribed_at,omitempty"`
	UnsubscribeToken string     `json:"-"`
}
