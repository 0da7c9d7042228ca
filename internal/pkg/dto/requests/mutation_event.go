package requests

import "time"

// MutationEvent is published after a gateway write succeeded against the HMS backend.
type MutationEvent struct {
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ID         int       `json:"id,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
