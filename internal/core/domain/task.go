package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is a unit of work posted by a user, optionally tied to a provider's skill.
type Task struct {
	ID                   string    `json:"id" bson:"_id,omitempty"`
	TaskName             string    `json:"task_name" bson:"task_name"`
	Description          string    `json:"description" bson:"description"`
	ExpectedStartDate    string    `json:"expected_start_date" bson:"expected_start_date"`
	ExpectedWorkingHours int       `json:"expected_working_hours" bson:"expected_working_hours"`
	HourlyRate           float64   `json:"hourly_rate" bson:"hourly_rate"`
	RateCurrency         string    `json:"rate_currency" bson:"rate_currency"`
	Category             string    `json:"category" bson:"category"`
	TaskCompleted        bool      `json:"task_completed" bson:"task_completed"`
	CreatedBy            string    `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	UserID               string    `json:"userId,omitempty" bson:"user_id,omitempty"`
	ProviderID           string    `json:"providerId,omitempty" bson:"provider_id,omitempty"`
	SkillID              string    `json:"skillId,omitempty" bson:"skill_id,omitempty"`
	CreatedAt            time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" bson:"updated_at"`
}
