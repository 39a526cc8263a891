package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier_SendDigest(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, n.SendDigest(context.Background(), testDigest()))
	require.NoError(t, n.SendDigest(context.Background(), &Digest{}))
}

func TestDigest_Empty(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Digest{Date: digestDate}).Empty())
	assert.False(t, testDigest().Empty())
}

// compile-time interface checks.
var (
	_ Notifier = (*NoOpNotifier)(nil)
	_ Notifier = (*DiscordNotifier)(nil)
)
