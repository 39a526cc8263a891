package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded digests. It is used
// when Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards digests with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendDigest logs and discards a digest.
func (n *NoOpNotifier) SendDigest(_ context.Context, digest *Digest) error {
	n.log.Debug("digest discarded (no backend configured)",
		"focus", len(digest.Focus),
		"hot_deals", len(digest.HotDeals),
		"aging", len(digest.Aging),
		"ignored", len(digest.Ignored),
	)
	return nil
}
