package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

type TaskService struct {
	repo     ports.TaskRepository
	guard    SubmitGuard
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, guard SubmitGuard, activity ports.ActivityRecorder, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, guard: guard, activity: activity, logger: logger}
}

func (s *TaskService) Create(ctx context.Context, actor ports.Actor, input ports.TaskInput) (*domain.Task, error) {
	if s.guard != nil {
		fp := fingerprint("task.create", input)
		seen, err := s.guard.Seen(ctx, actor.ID, fp)
		if err != nil {
			s.logger.Warn().Err(err).Str("actor", actor.ID).Msg("submit guard check failed, processing anyway")
		} else if seen {
			s.logger.Debug().Str("actor", actor.ID).Msg("duplicate task submission rejected")
			return nil, ErrDuplicateSubmission
		} else if err := s.guard.Mark(ctx, actor.ID, fp); err != nil {
			s.logger.Warn().Err(err).Str("actor", actor.ID).Msg("failed to set submit guard key")
		}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		TaskName:             input.TaskName,
		Description:          input.Description,
		ExpectedStartDate:    input.ExpectedStartDate,
		ExpectedWorkingHours: input.ExpectedWorkingHours,
		HourlyRate:           input.HourlyRate,
		RateCurrency:         input.RateCurrency,
		Category:             input.Category,
		CreatedBy:            actor.ID,
		UserID:               actor.ID,
		ProviderID:           input.ProviderID,
		SkillID:              input.SkillID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("actor", actor.ID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("actor", actor.ID).Msg("task created")
	s.record(actor, "task.create", created.ID)
	return created, nil
}

// List returns the caller's tasks: created-by for users, assigned-to for providers.
func (s *TaskService) List(ctx context.Context, actor ports.Actor) ([]*domain.Task, error) {
	filter := ports.ListTasksFilter{}
	if actor.Role == domain.RoleProvider {
		filter.ProviderID = actor.ID
	} else {
		filter.UserID = actor.ID
	}
	return s.repo.List(ctx, filter)
}

func (s *TaskService) Update(ctx context.Context, actor ports.Actor, input ports.TaskInput) (*domain.Task, error) {
	task, err := s.findOwned(ctx, actor, input.ID)
	if err != nil {
		return nil, err
	}

	task.TaskName = input.TaskName
	task.Description = input.Description
	task.ExpectedStartDate = input.ExpectedStartDate
	task.ExpectedWorkingHours = input.ExpectedWorkingHours
	task.HourlyRate = input.HourlyRate
	task.RateCurrency = input.RateCurrency
	task.Category = input.Category
	if input.ProviderID != "" {
		task.ProviderID = input.ProviderID
	}
	if input.SkillID != "" {
		task.SkillID = input.SkillID
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("task_id", task.ID).Msg("failed to update task")
		return nil, err
	}

	s.record(actor, "task.update", task.ID)
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if _, err := s.findOwned(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("task_id", id).Msg("failed to delete task")
		return err
	}

	s.record(actor, "task.delete", id)
	return nil
}

func (s *TaskService) ToggleComplete(ctx context.Context, actor ports.Actor, id string) (bool, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	// The owning user and the assigned provider may both mark completion.
	if task.UserID != actor.ID && task.ProviderID != actor.ID {
		return false, domain.ErrForbidden
	}

	next := !task.TaskCompleted
	if err := s.repo.SetCompleted(ctx, id, next); err != nil {
		s.logger.Error().Err(err).Str("task_id", id).Msg("failed to toggle task completion")
		return false, err
	}

	s.record(actor, "task.complete", id)
	return next, nil
}

func (s *TaskService) findOwned(ctx context.Context, actor ports.Actor, id string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

func (s *TaskService) record(actor ports.Actor, action, entityID string) {
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
