package handler

import (
	"time"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

type skillRequest struct {
	ID           string  `json:"id"`
	Category     string  `json:"category"       validate:"required"`
	Experience   int     `json:"experience"     validate:"gte=0"`
	NatureOfWork string  `json:"nature_of_work" validate:"required,oneof=onsite online"`
	HourlyRate   float64 `json:"hourly_rate"    validate:"required,gt=0"`
}

// postOfferRequest optionally names the target status; when omitted the
// default forward transition is applied.
type postOfferRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=open accepted completed rejected"`
}

// Response types are owned by the transport layer so the JSON contract is
// not coupled to internal service changes.

type skillResponse struct {
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

type listSkillsResponse struct {
	Skills []skillResponse `json:"skills"`
}

func toSkillResponse(s *domain.Skill) skillResponse {
	return skillResponse{
		ID:           s.ID,
		ProviderID:   s.ProviderID,
		UserID:       s.UserID,
		Category:     s.Category,
		Experience:   s.Experience,
		NatureOfWork: s.NatureOfWork,
		HourlyRate:   s.HourlyRate,
		Status:       string(s.Status),
		Completed:    s.Completed,
		Approved:     s.Approved,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
