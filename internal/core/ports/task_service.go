package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// TaskInput carries the validated form draft for creating or updating a task.
type TaskInput struct {
	ID                   string // empty on create
	TaskName             string
	Description          string
	ExpectedStartDate    string
	ExpectedWorkingHours int
	HourlyRate           float64
	RateCurrency         string
	Category             string
	ProviderID           string
	SkillID              string
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	Create(ctx context.Context, actor Actor, input TaskInput) (*domain.Task, error)
	// List returns the caller's tasks: created-by for users, assigned-to
	// for providers.
	List(ctx context.Context, actor Actor) ([]*domain.Task, error)
	Update(ctx context.Context, actor Actor, input TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, actor Actor, id string) error
	// ToggleComplete flips the completion flag and returns the new value.
	ToggleComplete(ctx context.Context, actor Actor, id string) (bool, error)
}
