package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier_NotifyUnknownStores(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	err := n.NotifyUnknownStores(context.Background(), UnknownStores{
		Domains:   []string{"noon.com", "opensooq.com"},
		ItemTitle: "Electric Kettle",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "stores to onboard")
	assert.Contains(t, buf.String(), "opensooq.com")
}

func TestNoOpNotifier_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, n.NotifyUnknownStores(context.Background(), UnknownStores{}))
	assert.Empty(t, buf.String())
}

// compile-time interface checks.
var (
	_ Notifier = (*NoOpNotifier)(nil)
	_ Notifier = (*DiscordNotifier)(nil)
	_ Notifier = (*CooldownNotifier)(nil)
)
