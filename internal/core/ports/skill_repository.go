package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// ListSkillsFilter carries the query parameters for listing skills.
// Visibility scoping is decided by the service layer, not the caller.
type ListSkillsFilter struct {
	OwnerID  string               // non-empty: only skills owned by this actor
	Statuses []domain.SkillStatus // non-empty: only skills in one of these states
	Category string               // optional
}

// SkillRepository defines persistence operations for skills.
type SkillRepository interface {
	Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	List(ctx context.Context, filter ListSkillsFilter) ([]*domain.Skill, error)
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id string) error
}
