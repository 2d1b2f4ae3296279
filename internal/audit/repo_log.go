package audit

import (
	"context"
	"log/slog"
)

// LogRepo writes each event as one structured log line on a dedicated logger.
type LogRepo struct {
	log *slog.Logger
}

func NewLogRepo(l *slog.Logger) *LogRepo {
	if l == nil {
		l = slog.Default()
	}
	return &LogRepo{log: l.With("component", "audit")}
}

func (r *LogRepo) Append(ctx context.Context, e Event) error {
	r.log.LogAttrs(ctx, slog.LevelInfo, "audit event",
		slog.String("audit_id", e.ID),
		slog.String("type", string(e.Type)),
		slog.String("subject", e.Subject),
		slog.String("role", e.Role),
		slog.String("ip", e.IPAddress),
		slog.String("tool", e.Tool),
		slog.String("outcome", e.Outcome),
		slog.Time("created_at", e.CreatedAt),
	)
	return nil
}
