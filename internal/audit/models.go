package audit

import "time"

// Event is an immutable, append-only audit record of one tool invocation
// that may have caused provider side effects.
//
// Invariants:
// - Events are never updated or deleted.
// - subject is required; anonymous invocations are not audited.
// - arguments are never recorded, they may hold SIP passwords.
type Event struct {
	ID   string    `json:"id"`
	Type EventType `json:"type"`

	Subject string `json:"subject"`
	Role    string `json:"role,omitempty"`

	// IPAddress is the resolved client IP as seen by the HTTP surface.
	IPAddress string `json:"ip_address,omitempty"`

	Tool    string `json:"tool"`
	Outcome string `json:"outcome"`

	CreatedAt time.Time `json:"created_at"`
}

type EventType string

const EventTypeToolInvocation EventType = "tool_invocation"
