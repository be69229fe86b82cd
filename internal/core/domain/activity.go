package domain

import "time"

// ActivityEvent is an audit record of a completed mutation. Events are
// enqueued after the mutation commits and persisted asynchronously.
type ActivityEvent struct {
	ActorID   string
	Role      string
	Action    string // e.g. "skill.create", "task.complete", "auth.register"
	EntityID  string
	Timestamp time.Time
}
