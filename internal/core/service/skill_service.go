package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// SubmitGuard abstracts the double-submission store (Redis). A submission
// seen within the guard window is a replay of an in-flight or just-finished
// form submit and must be rejected.
type SubmitGuard interface {
	Seen(ctx context.Context, actorID, fingerprint string) (bool, error)
	Mark(ctx context.Context, actorID, fingerprint string) error
}

var ErrDuplicateSubmission = fmt.Errorf("duplicate submission")

type SkillService struct {
	repo     ports.SkillRepository
	guard    SubmitGuard
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewSkillService(repo ports.SkillRepository, guard SubmitGuard, activity ports.ActivityRecorder, logger zerolog.Logger) *SkillService {
	return &SkillService{repo: repo, guard: guard, activity: activity, logger: logger}
}

func (s *SkillService) Create(ctx context.Context, actor ports.Actor, input ports.SkillInput) (*domain.Skill, error) {
	if err := s.checkReplay(ctx, actor.ID, "skill.create", input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	skill := &domain.Skill{
		Category:     input.Category,
		Experience:   input.Experience,
		NatureOfWork: input.NatureOfWork,
		HourlyRate:   input.HourlyRate,
		Status:       domain.StatusNone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	switch actor.Role {
	case domain.RoleProvider:
		skill.ProviderID = actor.ID
	default:
		skill.UserID = actor.ID
	}

	created, err := s.repo.Create(ctx, skill)
	if err != nil {
		s.logger.Error().Err(err).Str("actor", actor.ID).Msg("failed to create skill")
		return nil, err
	}

	s.logger.Info().Str("skill_id", created.ID).Str("actor", actor.ID).Msg("skill created")
	s.record(actor, "skill.create", created.ID)
	return created, nil
}

// List returns the role-appropriate collection. Owners see all of their own
// skills regardless of status; everything else is restricted to listings
// that are open for offers or already approved.
func (s *SkillService) List(ctx context.Context, actor ports.Actor) ([]*domain.Skill, error) {
	own, err := s.repo.List(ctx, ports.ListSkillsFilter{OwnerID: actor.ID})
	if err != nil {
		return nil, err
	}

	open, err := s.repo.List(ctx, ports.ListSkillsFilter{
		Statuses: []domain.SkillStatus{domain.StatusOpen, domain.StatusAccepted},
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(own))
	out := make([]*domain.Skill, 0, len(own)+len(open))
	for _, sk := range own {
		seen[sk.ID] = struct{}{}
		out = append(out, sk)
	}
	for _, sk := range open {
		if _, dup := seen[sk.ID]; !dup {
			out = append(out, sk)
		}
	}
	return out, nil
}

func (s *SkillService) Update(ctx context.Context, actor ports.Actor, input ports.SkillInput) (*domain.Skill, error) {
	skill, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !skill.OwnedBy(actor.ID) {
		return nil, domain.ErrForbidden
	}

	skill.Category = input.Category
	skill.Experience = input.Experience
	skill.NatureOfWork = input.NatureOfWork
	skill.HourlyRate = input.HourlyRate
	skill.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, skill); err != nil {
		s.logger.Error().Err(err).Str("skill_id", skill.ID).Msg("failed to update skill")
		return nil, err
	}

	s.record(actor, "skill.update", skill.ID)
	return skill, nil
}

func (s *SkillService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !skill.OwnedBy(actor.ID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("skill_id", id).Msg("failed to delete skill")
		return err
	}

	s.record(actor, "skill.delete", id)
	return nil
}

// PostOffer advances the offer state machine. The transition table is the
// guard: callers may request any target state but only valid moves commit.
func (s *SkillService) PostOffer(ctx context.Context, actor ports.Actor, id string, next domain.SkillStatus) (*domain.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if next == domain.StatusNone {
		next = skill.Status.NextStatus()
	}
	if !skill.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %q to %q)", domain.ErrInvalidTransition, skill.Status, next)
	}

	skill.Status = next
	skill.Completed = next == domain.StatusCompleted
	skill.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, skill); err != nil {
		s.logger.Error().Err(err).Str("skill_id", id).Msg("failed to transition skill")
		return nil, err
	}

	s.logger.Info().Str("skill_id", id).Str("status", string(next)).Msg("skill status changed")
	s.record(actor, "skill.postoffer", id)
	return skill, nil
}

// checkReplay rejects a create submitted twice within the guard window.
// Guard failures are logged and ignored: losing the guard must not lose
// the submission.
func (s *SkillService) checkReplay(ctx context.Context, actorID, action string, input ports.SkillInput) error {
	if s.guard == nil {
		return nil
	}

	fp := fingerprint(action, input)
	seen, err := s.guard.Seen(ctx, actorID, fp)
	if err != nil {
		s.logger.Warn().Err(err).Str("actor", actorID).Msg("submit guard check failed, processing anyway")
		return nil
	}
	if seen {
		s.logger.Debug().Str("actor", actorID).Str("action", action).Msg("duplicate submission rejected")
		return ErrDuplicateSubmission
	}
	if err := s.guard.Mark(ctx, actorID, fp); err != nil {
		s.logger.Warn().Err(err).Str("actor", actorID).Msg("failed to set submit guard key")
	}
	return nil
}

func (s *SkillService) record(actor ports.Actor, action, entityID string) {
	if s.activity != nil {
		s.activity.Record(domain.ActivityEvent{
			ActorID:   actor.ID,
			Role:      actor.Role,
			Action:    action,
			EntityID:  entityID,
			Timestamp: time.Now().UTC(),
		})
	}
}

// fingerprint hashes the submitted payload so identical back-to-back form
// submissions collide in the guard while distinct drafts never do.
func fingerprint(action string, input any) string {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%s|%+v", action, input)
	return fmt.Sprintf("%016x", h.Sum64())
}
