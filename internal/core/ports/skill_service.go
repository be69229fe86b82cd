package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// Actor identifies the authenticated caller of a use-case operation.
// Role and ID come from the verified token claims, never from the payload.
type Actor struct {
	ID   string
	Role string
}

// SkillInput carries the validated form draft for creating or updating a skill.
type SkillInput struct {
	ID           string // empty on create
	Category     string
	Experience   int
	NatureOfWork string
	HourlyRate   float64
}

// SkillService defines use-case operations for skill listings.
type SkillService interface {
	Create(ctx context.Context, actor Actor, input SkillInput) (*domain.Skill, error)
	// List returns the role-appropriate collection: owners see all their
	// skills, non-owners only see listings open for offers.
	List(ctx context.Context, actor Actor) ([]*domain.Skill, error)
	Update(ctx context.Context, actor Actor, input SkillInput) (*domain.Skill, error)
	Delete(ctx context.Context, actor Actor, id string) error
	// PostOffer advances the skill's offer state machine. When next is
	// StatusNone the default forward transition is applied.
	PostOffer(ctx context.Context, actor Actor, id string, next domain.SkillStatus) (*domain.Skill, error)
}
