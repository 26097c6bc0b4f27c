package domain

import "time"

// SessionState is the persistable snapshot of one session's navigation
// position. Selected is empty when the session is at root.
type SessionState struct {
	Selected  ID        `json:"selected,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSessionState creates a state at root.
func NewSessionState() *SessionState {
	return &SessionState{UpdatedAt: time.Now().UTC()}
}
