package widget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRegistryAcquireReusesBoard(t *testing.T) {
	reg := NewRegistry(time.Minute, func() *Board { return newTestBoard(newStubForecaster()) })

	id, first := reg.Acquire("")
	require.NotEqual(t, uuid.Nil, id)

	sameID, second := reg.Acquire(id.String())
	require.Equal(t, id, sameID)
	require.Same(t, first, second)
	require.Equal(t, 1, reg.Len())
}

func TestRegistryAcquireMalformedViewer(t *testing.T) {
	reg := NewRegistry(time.Minute, func() *Board { return newTestBoard(newStubForecaster()) })

	id, _ := reg.Acquire("not-a-uuid")
	require.NotEqual(t, uuid.Nil, id)
	require.Equal(t, 1, reg.Len())
}

func TestRegistryDropsIdleBoards(t *testing.T) {
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	reg := NewRegistry(time.Minute, func() *Board { return newTestBoard(newStubForecaster()) })
	reg.now = func() time.Time { return now }

	stale, _ := reg.Acquire("")
	now = now.Add(2 * time.Minute)
	fresh, _ := reg.Acquire("")

	require.Equal(t, 1, reg.Len())
	_, board := reg.Acquire(fresh.String())
	require.NotNil(t, board)

	again, _ := reg.Acquire(stale.String())
	require.Equal(t, stale, again, "an expired viewer id is re-registered with a fresh board")
	require.Equal(t, 2, reg.Len())
}

func TestNewRegistryDefaultTTL(t *testing.T) {
	reg := NewRegistry(0, nil)
	require.Equal(t, defaultIdleTTL, reg.ttl)
}
