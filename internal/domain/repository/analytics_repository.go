package repository

import (
	"context"

	"dealdigest/internal/domain/entity"
)

// AnalyticsRepository records append-only analytics events.
type AnalyticsRepository interface {
	// Record persists an event, assigning its ID and timestamp.
	Record(ctx context.Context, event *entity.AnalyticsEvent) error
}
