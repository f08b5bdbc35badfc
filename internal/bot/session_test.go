package bot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionsGetCreates(t *testing.T) {
	store := newSessions()

	sess := store.Get(42)
	require.NotNil(t, sess)
	require.Equal(t, stepNone, sess.step)

	sess.step = stepEventName
	require.Same(t, sess, store.Get(42))
	require.Equal(t, stepEventName, store.Get(42).step)
}

func TestSessionsReset(t *testing.T) {
	store := newSessions()
	store.Get(42).step = stepBroadcastMessage

	store.Reset(42)
	require.Equal(t, stepNone, store.Get(42).step)
}

func TestSessionsActive(t *testing.T) {
	store := newSessions()
	require.False(t, store.Active(42))

	store.Get(42)
	require.False(t, store.Active(42))

	store.Get(42).step = stepAnswerQuestion
	require.True(t, store.Active(42))

	store.Reset(42)
	require.False(t, store.Active(42))

	store.Get(42).pick = pickCancelEvent
	require.True(t, store.Active(42))
}
