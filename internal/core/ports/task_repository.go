package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// ListTasksFilter carries query parameters for listing tasks.
type ListTasksFilter struct {
	UserID     string // non-empty: tasks created by this user
	ProviderID string // non-empty: tasks assigned to this provider
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	// SetCompleted flips the completion flag without touching other fields.
	SetCompleted(ctx context.Context, id string, completed bool) error
}
