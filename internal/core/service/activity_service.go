package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists audit events.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single activity event to the audit trail.
func (s *activityService) Process(ctx context.Context, event domain.ActivityEvent) error {
	if event.Action == "" || event.ActorID == "" {
		s.log.Debug().Str("action", event.Action).Msg("dropping malformed activity event")
		return nil
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}

	s.log.Debug().
		Str("actor", event.ActorID).
		Str("action", event.Action).
		Str("entity", event.EntityID).
		Msg("activity recorded")
	return nil
}
