package service

import (
	"io"
	"log/slog"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/guard"
)

// slogReceiptLogger writes finished receipts as structured log lines.
// Implements guard.ReceiptLogger.
type slogReceiptLogger struct {
	logger *slog.Logger
}

// NewSlogReceiptLogger creates a receipt logger writing to w.
func NewSlogReceiptLogger(w io.Writer) guard.ReceiptLogger {
	return &slogReceiptLogger{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (l *slogReceiptLogger) LogReceipt(r domain.Receipt) {
	l.logger.Info("receipt",
		"id", r.ID,
		"session_id", r.SessionID,
		"task_type", string(r.TaskType),
		"verdict", string(r.Verdict),
		"violations", len(r.Violations),
		"injected_keys", len(r.InjectedKeys),
		"repair_attempted", r.RepairAttempted,
		"duration_ms", r.Duration.Milliseconds(),
	)
}
