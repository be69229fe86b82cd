package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

type stubTaskService struct {
	createFn func(ctx context.Context, actor ports.Actor, input ports.TaskInput) (*domain.Task, error)
	listFn   func(ctx context.Context, actor ports.Actor) ([]*domain.Task, error)
	updateFn func(ctx context.Context, actor ports.Actor, input ports.TaskInput) (*domain.Task, error)
	deleteFn func(ctx context.Context, actor ports.Actor, id string) error
	toggleFn func(ctx context.Context, actor ports.Actor, id string) (bool, error)
}

func (s *stubTaskService) Create(ctx context.Context, actor ports.Actor, input ports.TaskInput) (*domain.Task, error) {
	return s.createFn(ctx, actor, input)
}

func (s *stubTaskService) List(ctx context.Context, actor ports.Actor) ([]*domain.Task, error) {
	return s.listFn(ctx, actor)
}

func (s *stubTaskService) Update(ctx context.Context, actor ports.Actor, input ports.TaskInput) (*domain.Task, error) {
	return s.updateFn(ctx, actor, input)
}

func (s *stubTaskService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func (s *stubTaskService) ToggleComplete(ctx context.Context, actor ports.Actor, id string) (bool, error) {
	return s.toggleFn(ctx, actor, id)
}

const validTaskDraft = `{
	"task_name": "Fix leaking tap",
	"description": "Kitchen tap drips constantly",
	"expected_start_date": "2026-09-15",
	"expected_working_hours": 2,
	"hourly_rate": 60,
	"rate_currency": "AUD",
	"category": "plumbing"
}`

func TestTaskHandler_Create_Success(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, actor ports.Actor, input ports.TaskInput) (*domain.Task, error) {
			if input.TaskName != "Fix leaking tap" || input.RateCurrency != "AUD" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Task{ID: "t1", TaskName: input.TaskName, UserID: actor.ID}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/task/create", validTaskDraft)
	withClaims(c, "user_1", "user")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestTaskHandler_Create_RejectsBadStartDate(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, actor ports.Actor, input ports.TaskInput) (*domain.Task, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTaskHandler(stub)

	body := `{
		"task_name": "Fix leaking tap",
		"description": "Kitchen tap drips constantly",
		"expected_start_date": "15/09/2026",
		"expected_working_hours": 2,
		"hourly_rate": 60,
		"rate_currency": "AUD",
		"category": "plumbing"
	}`
	c, rec := newTestContext(t, http.MethodPost, "/task/create", body)
	withClaims(c, "user_1", "user")

	_ = h.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTaskHandler_List_WrapsCollection(t *testing.T) {
	stub := &stubTaskService{
		listFn: func(ctx context.Context, actor ports.Actor) ([]*domain.Task, error) {
			return []*domain.Task{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/task/get", "")
	withClaims(c, "user_1", "user")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp["tasks"]) != 3 {
		t.Fatalf("expected tasks envelope with 3 items, got %+v", resp)
	}
}

func TestTaskHandler_Update_RequiresID(t *testing.T) {
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, actor ports.Actor, input ports.TaskInput) (*domain.Task, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/task/update", validTaskDraft)
	withClaims(c, "user_1", "user")

	_ = h.Update(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTaskHandler_Delete_NoContent(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, actor ports.Actor, id string) error {
			if id != "t1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/task/delete/t1", "")
	c.SetParamNames("id")
	c.SetParamValues("t1")
	withClaims(c, "user_1", "user")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestTaskHandler_ToggleComplete_EchoesFlag(t *testing.T) {
	stub := &stubTaskService{
		toggleFn: func(ctx context.Context, actor ports.Actor, id string) (bool, error) {
			return true, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/task/mark_task_complete/t1", "")
	c.SetParamNames("id")
	c.SetParamValues("t1")
	withClaims(c, "prov_1", "provider")

	if err := h.ToggleComplete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp toggleCompleteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "t1" || !resp.TaskCompleted {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTaskHandler_ToggleComplete_PropagatesServiceError(t *testing.T) {
	stub := &stubTaskService{
		toggleFn: func(ctx context.Context, actor ports.Actor, id string) (bool, error) {
			return false, domain.ErrTaskNotFound
		},
	}
	h := NewTaskHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/task/mark_task_complete/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	withClaims(c, "user_1", "user")

	if err := h.ToggleComplete(c); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
