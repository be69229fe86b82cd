package domain

import (
	"errors"
	"time"
)

// SkillStatus represents the offer lifecycle state of a skill listing.
// A freshly created skill has no status until its owner opens it for offers.
type SkillStatus string

const (
	StatusNone      SkillStatus = ""
	StatusOpen      SkillStatus = "open"
	StatusAccepted  SkillStatus = "accepted"
	StatusCompleted SkillStatus = "completed"
	StatusRejected  SkillStatus = "rejected"
)

// validTransitions defines the allowed offer state machine transitions.
var validTransitions = map[SkillStatus][]SkillStatus{
	StatusNone:     {StatusOpen},
	StatusOpen:     {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusCompleted, StatusRejected},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrSkillNotFound = errors.New("skill not found")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s SkillStatus) CanTransitionTo(next SkillStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatus returns the default forward transition for s, or StatusNone
// when the lifecycle has no natural next step (terminal states).
func (s SkillStatus) NextStatus() SkillStatus {
	switch s {
	case StatusNone:
		return StatusOpen
	case StatusOpen:
		return StatusAccepted
	case StatusAccepted:
		return StatusCompleted
	default:
		return StatusNone
	}
}

const (
	WorkModeOnsite = "onsite"
	WorkModeOnline = "online"
)

// Skill is a provider's (or user's) listed capability.
type Skill struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	ProviderID   string      `json:"providerId,omitempty" bson:"provider_id,omitempty"`
	UserID       string      `json:"userId,omitempty" bson:"user_id,omitempty"`
	Category     string      `json:"category" bson:"category"`
	Experience   int         `json:"experience" bson:"experience"`
	NatureOfWork string      `json:"nature_of_work" bson:"nature_of_work"`
	HourlyRate   float64     `json:"hourly_rate" bson:"hourly_rate"`
	Status       SkillStatus `json:"status,omitempty" bson:"status,omitempty"`
	Completed    bool        `json:"completed" bson:"completed"`
	Approved     bool        `json:"approved" bson:"approved"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}

// OwnedBy reports whether the given actor created this skill.
func (s *Skill) OwnedBy(actorID string) bool {
	return s.ProviderID == actorID || s.UserID == actorID
}
