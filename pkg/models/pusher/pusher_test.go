package pusher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushAllBatches(t *testing.T) {
	var got []string
	p := NewPusher(WithPushLogic(func(messages ...string) error {
		got = append(got, messages...)
		return nil
	}))

	require.NoError(t, p.PushAll(), "empty buffer pushes nothing")
	assert.Empty(t, got)

	p.AddMessages("a", "b")
	p.AddMessages("c")
	require.NoError(t, p.PushAll())
	assert.Equal(t, []string{"a", "b", "c"}, got)

	require.NoError(t, p.PushAll())
	assert.Len(t, got, 3, "buffer drains after a push")
}

func TestStopFlushes(t *testing.T) {
	var got []int
	p := NewPusher(
		WithPushInterval[int](time.Hour),
		WithPushLogic(func(messages ...int) error {
			got = append(got, messages...)
			return nil
		}),
	)

	p.AddMessages(1, 2, 3)
	p.Stop()
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestErrorHandler(t *testing.T) {
	var handled error
	p := NewPusher(
		WithPushLogic(func(...string) error { return assert.AnError }),
		WithErrorHandler[string](func(err error) { handled = err }),
	)

	p.AddMessages("x")
	p.Stop()
	assert.ErrorIs(t, handled, assert.AnError)
}
