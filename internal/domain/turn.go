package domain

// Role identifies which side of the conversation produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single utterance within a session. Turns are immutable once
// created and belong to exactly one session.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SessionCollection maps session id to its ordered turns; a session is
// exactly one entry of the map. It is the unit of persistence for the
// file-backed store: a write replaces the whole collection at once.
type SessionCollection map[string][]Turn
