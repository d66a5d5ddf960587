package notify

import (
	"context"
	"log/slog"
)

// LogSender stands in for the external notification service: it writes the
// notification to the structured log. Swapping in a real push/SMS sender is
// a matter of providing another Sender.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, job Job) error {
	attrs := []any{
		slog.String("user_id", job.UserID.String()),
		slog.String("kind", string(job.Kind)),
		slog.String("title", job.Title),
		slog.String("message", job.Message),
	}
	if job.RelatedID != nil {
		attrs = append(attrs, slog.String("related_id", job.RelatedID.String()))
	}
	s.logger.Info("notification delivered", attrs...)
	return nil
}
