package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// ActivityRecorder accepts audit events for asynchronous persistence.
// Recording is fire-and-forget: a full queue or slow store must never
// fail the mutation that produced the event.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ActivityService processes queued activity events.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
}

// ActivityRepository persists activity events to the audit collection.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
}
