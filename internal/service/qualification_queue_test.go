package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInProcessDispatcherRunsHandler(t *testing.T) {
	done := make(chan string, 1)
	d := NewInProcessDispatcher(func(ctx context.Context, taskID string) error {
		done <- taskID
		return nil
	})

	require.NoError(t, d.Dispatch(context.Background(), "task-1"))
	select {
	case got := <-done:
		assert.Equal(t, "task-1", got)
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}
}
