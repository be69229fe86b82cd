package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

type stubTaskRepo struct {
	byID      map[string]*domain.Task
	nextID    int
	deleteErr error
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{byID: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	r.nextID++
	clone := *t
	clone.ID = fmt.Sprintf("task_%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) List(_ context.Context, f ports.ListTasksFilter) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.byID {
		if f.UserID != "" && t.UserID != f.UserID {
			continue
		}
		if f.ProviderID != "" && t.ProviderID != f.ProviderID {
			continue
		}
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, t *domain.Task) error {
	if _, ok := r.byID[t.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	clone := *t
	r.byID[t.ID] = &clone
	return nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubTaskRepo) SetCompleted(_ context.Context, id string, completed bool) error {
	t, ok := r.byID[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.TaskCompleted = completed
	return nil
}

func taskInput() ports.TaskInput {
	return ports.TaskInput{
		TaskName:             "Fix kitchen sink",
		Description:          "Leaking trap under the sink",
		ExpectedStartDate:    "2026-09-15",
		ExpectedWorkingHours: 3,
		HourlyRate:           50,
		RateCurrency:         "USD",
		Category:             "plumbing",
	}
}

func TestTaskService_Create_SetsOwnership(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, nil, nil, zerolog.Nop())

	in := taskInput()
	in.ProviderID = provider.ID
	created, err := svc.Create(context.Background(), enduser, in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.UserID != enduser.ID || created.CreatedBy != enduser.ID {
		t.Fatalf("expected user ownership, got %+v", created)
	}
	if created.ProviderID != provider.ID {
		t.Fatalf("provider assignment lost: %+v", created)
	}
	if created.TaskCompleted {
		t.Fatalf("new task must not be completed")
	}
}

func TestTaskService_List_ByRole(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, nil, nil, zerolog.Nop())

	in := taskInput()
	in.ProviderID = provider.ID
	_, _ = svc.Create(context.Background(), enduser, in)
	_, _ = svc.Create(context.Background(), ports.Actor{ID: "user_2", Role: domain.RoleUser}, taskInput())

	tasks, err := svc.List(context.Background(), enduser)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].UserID != enduser.ID {
		t.Fatalf("expected only own tasks, got %d", len(tasks))
	}

	tasks, err = svc.List(context.Background(), provider)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ProviderID != provider.ID {
		t.Fatalf("expected only assigned tasks, got %d", len(tasks))
	}
}

func TestTaskService_Update_OwnerOnly(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, nil, nil, zerolog.Nop())

	created, _ := svc.Create(context.Background(), enduser, taskInput())

	in := taskInput()
	in.ID = created.ID
	in.TaskName = "Fix bathroom sink"
	updated, err := svc.Update(context.Background(), enduser, in)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.TaskName != "Fix bathroom sink" {
		t.Fatalf("name not updated: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), ports.Actor{ID: "user_2", Role: domain.RoleUser}, in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTaskService_Delete_ServerRejection(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, nil, nil, zerolog.Nop())

	created, _ := svc.Create(context.Background(), enduser, taskInput())
	repo.deleteErr = errors.New("write conflict")

	if err := svc.Delete(context.Background(), enduser, created.ID); err == nil {
		t.Fatalf("expected delete error to propagate")
	}
	// The record is untouched after a failed delete.
	if _, err := repo.FindByID(context.Background(), created.ID); err != nil {
		t.Fatalf("task should still exist: %v", err)
	}
}

func TestTaskService_ToggleComplete(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, nil, nil, zerolog.Nop())

	in := taskInput()
	in.ProviderID = provider.ID
	created, _ := svc.Create(context.Background(), enduser, in)

	done, err := svc.ToggleComplete(context.Background(), enduser, created.ID)
	if err != nil || !done {
		t.Fatalf("expected toggle to true, got %v %v", done, err)
	}

	// The assigned provider may toggle it back.
	done, err = svc.ToggleComplete(context.Background(), provider, created.ID)
	if err != nil || done {
		t.Fatalf("expected toggle to false, got %v %v", done, err)
	}

	if _, err := svc.ToggleComplete(context.Background(), ports.Actor{ID: "stranger", Role: domain.RoleUser}, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}
}

func TestTaskService_Create_DuplicateSubmissionRejected(t *testing.T) {
	repo := newStubTaskRepo()
	guard := newStubGuard()
	svc := NewTaskService(repo, guard, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), enduser, taskInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), enduser, taskInput()); !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}
}
