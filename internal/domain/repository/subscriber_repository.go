package repository

import (
	"context"

	"dealdigest/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for subscriber persistence.
var (
	// ErrSubscriberNotFound is returned when a subscriber is not found.
	ErrSubscriberNotFound = errors.New("subscriber not found")
	// ErrDuplicateSubscriber is returned when the email is already registered.
	ErrDuplicateSubscriber = errors.New("subscriber already exists")
)

// SubscriberRepository defines the interface for subscriber-related database
// operations. Sending newsletters is out of scope; only subscription state
// is managed here.
type SubscriberRepository interface {
	// Create persists a new subscriber, assigning its ID.
	// Returns ErrDuplicateSubscriber when the email is taken.
	Create(ctx context.Context, subscriber *entity.Subscriber) error

	// FindByEmail retrieves a subscriber by email.
	FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error)

	// FindByToken retrieves a subscriber by unsubscribe token.
	FindByToken(ctx context.Context, token string) (*entity.Subscriber, error)

	// Unsubscribe marks the subscriber as unsubscribed with a timestamp.
	Unsubscribe(ctx context.Context, token string) error

	// Reactivate re-subscribes a previously unsubscribed email.
	Reactivate(ctx context.Context, email string) error
}
