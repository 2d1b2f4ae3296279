package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Repository is the sink contract for audit events. It is append-only.
type Repository interface {
	Append(ctx context.Context, e Event) error
}

// Service records who invoked which side-effecting tool.
// Callers should treat audit logging as best-effort.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

var ErrInvalidEvent = errors.New("audit: invalid event")

func (s *Service) Append(ctx context.Context, e Event) error {
	if s == nil || s.repo == nil {
		return errors.New("audit: repository not configured")
	}
	if e.Subject == "" || e.Type == "" || e.Tool == "" {
		return ErrInvalidEvent
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.clock().UTC()
	}
	return s.repo.Append(ctx, e)
}

// LogToolInvocation records one invocation and its outcome.
func (s *Service) LogToolInvocation(ctx context.Context, subject, role, ip, tool, outcome string) error {
	return s.Append(ctx, Event{
		Type:      EventTypeToolInvocation,
		Subject:   subject,
		Role:      role,
		IPAddress: ip,
		Tool:      tool,
		Outcome:   outcome,
	})
}
