package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/chatd/internal/chat/player"
	"github.com/cory-johannsen/chatd/internal/storage/postgres"
	"github.com/cory-johannsen/chatd/internal/testutil"
)

func TestActivityLogRepository_AppendAndQuery(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewActivityLogRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, 42, player.ActivityLoggedIn, 1200))
	require.NoError(t, repo.Append(ctx, 42, player.ActivityLoggedOut, 1200))
	require.NoError(t, repo.Append(ctx, 7, player.ActivityLoggedIn, 1100))

	events, err := repo.EventsForPlayer(ctx, 42, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, player.ActivityLoggedOut, events[0].Kind)
	assert.Equal(t, player.ActivityLoggedIn, events[1].Kind)
	for _, ev := range events {
		assert.Equal(t, player.ID(42), ev.PlayerID)
		assert.Equal(t, player.ZoneID(1200), ev.ZoneID)
		assert.False(t, ev.OccurredAt.IsZero())
	}
}

func TestActivityLogRepository_LimitCapsResults(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewActivityLogRepository(pool)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		kind := player.ActivityLoggedIn
		if i%2 == 1 {
			kind = player.ActivityLoggedOut
		}
		require.NoError(t, repo.Append(ctx, 9, kind, 1000))
	}

	events, err := repo.EventsForPlayer(ctx, 9, 3)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestActivityLogRepository_UnknownPlayerEmpty(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewActivityLogRepository(pool)

	events, err := repo.EventsForPlayer(context.Background(), 999999, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
