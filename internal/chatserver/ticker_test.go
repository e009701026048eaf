package chatserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/chatd/internal/chat/player"
	"github.com/cory-johannsen/chatd/internal/chat/team"
)

func TestTicker_RemovesExpiredPlayers(t *testing.T) {
	logger := zap.NewNop()
	notifier := NewStreamNotifier(8, logger)
	activity := &memActivityLog{}

	cfg := testConfig()
	cfg.LogoutGracePeriod = 30 * time.Millisecond

	players := player.NewRegistry(cfg, notifier, activity, logger)
	teams := team.NewRegistry(cfg, players, notifier, logger)
	players.SetTeams(teams)
	notifier.SetDirectory(players)
	svc := NewService(players, teams, logger)

	insertPlayers(t, svc, "w1", 1)
	svc.ScheduleRemovePlayer(1)

	ticker := NewTicker(svc, 10*time.Millisecond, logger)
	done := make(chan error, 1)
	go func() { done <- ticker.Start() }()

	assert.Eventually(t, func() bool {
		return svc.OnlineCount() == 0
	}, time.Second, 5*time.Millisecond)

	ticker.Stop()
	require.NoError(t, <-done)
}

func TestTicker_StopIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ticker := NewTicker(svc, 10*time.Millisecond, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- ticker.Start() }()

	ticker.Stop()
	ticker.Stop()
	require.NoError(t, <-done)
}
