package usecase

import (
	"context"

	"dealdigest/internal/domain/entity"
)

// SubscribeInput carries a new subscription request.
type SubscribeInput struct {
	Email  string
	Name   string
	Region string
}

// SubscriberUsecase defines the subscriber management use cases. Sending
// newsletters to subscribers is a downstream concern and not part of the core.
type SubscriberUsecase interface {
	// Subscribe registers an email address, or reactivates a previously
	// unsubscribed one.
	Subscribe(ctx context.Context, input SubscribeInput) (*entity.Subscriber, error)

	// Unsubscribe deactivates the subscription for the given token.
	// Already-unsubscribed tokens succeed (idempotent).
	Unsubscribe(ctx context.Context, token string) error

	// SubscribeQR returns a PNG QR code for the public subscribe page.
	SubscribeQR(ctx context.Context) ([]byte, error)
}
