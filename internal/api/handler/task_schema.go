package handler

import (
	"time"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

type taskRequest struct {
	ID                   string  `json:"id"`
	TaskName             string  `json:"task_name"              validate:"required"`
	Description          string  `json:"description"            validate:"required"`
	ExpectedStartDate    string  `json:"expected_start_date"    validate:"required,datetime=2006-01-02"`
	ExpectedWorkingHours int     `json:"expected_working_hours" validate:"required,min=1"`
	HourlyRate           float64 `json:"hourly_rate"            validate:"required,gt=0"`
	RateCurrency         string  `json:"rate_currency"          validate:"required,len=3"`
	Category             string  `json:"category"               validate:"required"`
	ProviderID           string  `json:"providerId"`
	SkillID              string  `json:"skillId"`
}

type taskResponse struct {
	ID                   string    `json:"id"`
	TaskName             string    `json:"task_name"`
	Description          string    `json:"description"`
	ExpectedStartDate    string    `json:"expected_start_date"`
	ExpectedWorkingHours int       `json:"expected_working_hours"`
	HourlyRate           float64   `json:"hourly_rate"`
	RateCurrency         string    `json:"rate_currency"`
	Category             string    `json:"category"`
	TaskCompleted        bool      `json:"task_completed"`
	CreatedBy            string    `json:"createdBy,omitempty"`
	UserID               string    `json:"userId,omitempty"`
	ProviderID           string    `json:"providerId,omitempty"`
	SkillID              string    `json:"skillId,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type listTasksResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

type toggleCompleteResponse struct {
	ID            string `json:"id"`
	TaskCompleted bool   `json:"task_completed"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:                   t.ID,
		TaskName:             t.TaskName,
		Description:          t.Description,
		ExpectedStartDate:    t.ExpectedStartDate,
		ExpectedWorkingHours: t.ExpectedWorkingHours,
		HourlyRate:           t.HourlyRate,
		RateCurrency:         t.RateCurrency,
		Category:             t.Category,
		TaskCompleted:        t.TaskCompleted,
		CreatedBy:            t.CreatedBy,
		UserID:               t.UserID,
		ProviderID:           t.ProviderID,
		SkillID:              t.SkillID,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}
