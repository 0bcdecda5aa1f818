package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	changes := make(chan Config)
	loader := NewLoader()
	loader.changes = changes
	loader.done = ctx.Done()

	cancel()

	published := make(chan bool, 1)
	go func() { published <- loader.publish(Config{ApplicationID: "late"}) }()

	select {
	case ok := <-published:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("publish blocked after the watch context was done")
	}
}

func TestPublishDelivers(t *testing.T) {
	changes := make(chan Config, 1)
	loader := NewLoader()
	loader.changes = changes
	loader.done = t.Context().Done()

	require.True(t, loader.publish(Config{ApplicationID: "live"}))
	require.Equal(t, "live", (<-changes).ApplicationID)
}
