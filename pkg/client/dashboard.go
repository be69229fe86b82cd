package client

import (
	"context"
	"net/http"
	"time"
)

// Skill is the wire shape of a skill listing.
type Skill struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"providerId,omitempty"`
	UserID       string    `json:"userId,omitempty"`
	Category     string    `json:"category"`
	Experience   int       `json:"experience"`
	NatureOfWork string    `json:"nature_of_work"`
	HourlyRate   float64   `json:"hourly_rate"`
	Status       string    `json:"status,omitempty"`
	Completed    bool      `json:"completed"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Task is the wire shape of a task record.
type Task struct {
	ID                   string    `json:"id"`
	TaskName             string    `json:"task_name"`
	Description          string    `json:"description"`
	ExpectedStartDate    string    `json:"expected_start_date"`
	ExpectedWorkingHours int       `json:"expected_working_hours"`
	HourlyRate           float64   `json:"hourly_rate"`
	RateCurrency         string    `json:"rate_currency"`
	Category             string    `json:"category"`
	TaskCompleted        bool      `json:"task_completed"`
	UserID               string    `json:"userId,omitempty"`
	ProviderID           string    `json:"providerId,omitempty"`
	SkillID              string    `json:"skillId,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// SkillInput is the payload for skill create and update calls.
type SkillInput struct {
	ID           string  `json:"id,omitempty"`
	Category     string  `json:"category"`
	Experience   int     `json:"experience"`
	NatureOfWork string  `json:"nature_of_work"`
	HourlyRate   float64 `json:"hourly_rate"`
}

// TaskInput is the payload for task create and update calls.
type TaskInput struct {
	ID                   string  `json:"id,omitempty"`
	TaskName             string  `json:"task_name"`
	Description          string  `json:"description"`
	ExpectedStartDate    string  `json:"expected_start_date"`
	ExpectedWorkingHours int     `json:"expected_working_hours"`
	HourlyRate           float64 `json:"hourly_rate"`
	RateCurrency         string  `json:"rate_currency"`
	Category             string  `json:"category"`
	ProviderID           string  `json:"providerId,omitempty"`
	SkillID              string  `json:"skillId,omitempty"`
}

type skillList struct {
	Skills []Skill `json:"skills"`
}

type taskList struct {
	Tasks []Task `json:"tasks"`
}

// Dashboard orchestrates the list views. Lists are only as fresh as the
// last fetch: every successful mutation triggers a re-fetch of the
// affected collection, and a failed mutation leaves the list exactly as
// it was.
type Dashboard struct {
	client *Client
	roles  *RoleResolver

	skills []Skill
	tasks  []Task
}

// NewDashboard creates a dashboard over the given client.
func NewDashboard(c *Client, roles *RoleResolver) *Dashboard {
	return &Dashboard{client: c, roles: roles}
}

// Skills returns the skills from the last successful fetch.
func (d *Dashboard) Skills() []Skill {
	return d.skills
}

// Tasks returns the tasks from the last successful fetch.
func (d *Dashboard) Tasks() []Task {
	return d.tasks
}

// Refresh fetches the role-appropriate collections: skills for everyone,
// tasks only for the user role.
func (d *Dashboard) Refresh(ctx context.Context) error {
	if err := d.refreshSkills(ctx); err != nil {
		return err
	}
	if d.roles.Role() == "user" {
		return d.refreshTasks(ctx)
	}
	return nil
}

func (d *Dashboard) refreshSkills(ctx context.Context) error {
	var list skillList
	if err := d.client.do(ctx, http.MethodGet, "/skill/get", nil, &list); err != nil {
		d.client.log.Error().Err(err).Msg("skill fetch failed")
		return err
	}
	d.skills = list.Skills
	return nil
}

func (d *Dashboard) refreshTasks(ctx context.Context) error {
	var list taskList
	if err := d.client.do(ctx, http.MethodGet, "/task/get", nil, &list); err != nil {
		d.client.log.Error().Err(err).Msg("task fetch failed")
		return err
	}
	d.tasks = list.Tasks
	return nil
}

// CreateSkill creates a skill and re-fetches the skill list.
func (d *Dashboard) CreateSkill(ctx context.Context, input SkillInput) error {
	return d.skillMutation(ctx, http.MethodPost, "/skill/create", input)
}

// UpdateSkill updates a skill and re-fetches the skill list.
func (d *Dashboard) UpdateSkill(ctx context.Context, input SkillInput) error {
	return d.skillMutation(ctx, http.MethodPut, "/skill/update", input)
}

// DeleteSkill deletes a skill and re-fetches the skill list.
func (d *Dashboard) DeleteSkill(ctx context.Context, id string) error {
	return d.skillMutation(ctx, http.MethodDelete, "/skill/delete/"+id, nil)
}

// PostOffer advances a skill's offer status and re-fetches the skill list.
func (d *Dashboard) PostOffer(ctx context.Context, id string) error {
	return d.skillMutation(ctx, http.MethodPatch, "/skill/postoffer/"+id, nil)
}

// CreateTask creates a task and re-fetches the task list.
func (d *Dashboard) CreateTask(ctx context.Context, input TaskInput) error {
	return d.taskMutation(ctx, http.MethodPost, "/task/create", input)
}

// UpdateTask updates a task and re-fetches the task list.
func (d *Dashboard) UpdateTask(ctx context.Context, input TaskInput) error {
	return d.taskMutation(ctx, http.MethodPut, "/task/update", input)
}

// DeleteTask deletes a task and re-fetches the task list.
func (d *Dashboard) DeleteTask(ctx context.Context, id string) error {
	return d.taskMutation(ctx, http.MethodDelete, "/task/delete/"+id, nil)
}

// ToggleTaskComplete flips a task's completion flag and re-fetches the
// task list.
func (d *Dashboard) ToggleTaskComplete(ctx context.Context, id string) error {
	return d.taskMutation(ctx, http.MethodPatch, "/task/mark_task_complete/"+id, nil)
}

func (d *Dashboard) skillMutation(ctx context.Context, method, path string, body any) error {
	if err := d.client.do(ctx, method, path, body, nil); err != nil {
		d.client.log.Error().Err(err).Str("path", path).Msg("skill mutation failed")
		return err
	}
	return d.refreshSkills(ctx)
}

func (d *Dashboard) taskMutation(ctx context.Context, method, path string, body any) error {
	if err := d.client.do(ctx, method, path, body, nil); err != nil {
		d.client.log.Error().Err(err).Str("path", path).Msg("task mutation failed")
		return err
	}
	return d.refreshTasks(ctx)
}
