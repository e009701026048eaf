package chatserver

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/chatd/internal/chat/player"
	"github.com/cory-johannsen/chatd/internal/chat/team"
	chatv1 "github.com/cory-johannsen/chatd/internal/chatserver/chatv1"
	"github.com/cory-johannsen/chatd/internal/config"
)

type memActivityLog struct {
	records []player.ActivityKind
}

func (m *memActivityLog) Append(_ context.Context, _ player.ID, kind player.ActivityKind, _ player.ZoneID) error {
	m.records = append(m.records, kind)
	return nil
}

func testConfig() config.ChatConfig {
	return config.ChatConfig{
		MaxNameBytes:      32,
		LogoutGracePeriod: 20 * time.Second,
		TickInterval:      time.Second,
		DefaultLootShared: true,
		MaxFriends:        50,
		MaxBestFriends:    5,
	}
}

// newTestService wires a full service: real registries, a StreamNotifier,
// and an in-memory activity log.
func newTestService(t *testing.T) (*Service, *StreamNotifier, *memActivityLog) {
	t.Helper()
	logger := zap.NewNop()
	notifier := NewStreamNotifier(64, logger)
	activity := &memActivityLog{}

	players := player.NewRegistry(testConfig(), notifier, activity, logger)
	teams := team.NewRegistry(testConfig(), players, notifier, logger)
	players.SetTeams(teams)
	notifier.SetDirectory(players)

	return NewService(players, teams, logger), notifier, activity
}

// drain empties every message currently queued on a link channel.
func drain(ch <-chan *chatv1.ChatMessage) []*chatv1.ChatMessage {
	var out []*chatv1.ChatMessage
	for {
		select {
		case msg := <-ch:
			out = append(out, msg)
		default:
			return out
		}
	}
}

func insertPlayers(t *testing.T, svc *Service, linkID string, ids ...player.ID) {
	t.Helper()
	for _, id := range ids {
		_, err := svc.InsertPlayer(context.Background(), linkID, id,
			fmt.Sprintf("Player%d", id), 1000, time.Time{}, 0)
		require.NoError(t, err)
	}
}

func TestService_InsertPlayer(t *testing.T) {
	svc, _, _ := newTestService(t)

	first, err := svc.InsertPlayer(context.Background(), "w1", 1, "Alice", 1000, time.Time{}, 0)
	require.NoError(t, err)
	assert.True(t, first)
	assert.Equal(t, 1, svc.OnlineCount())

	first, err = svc.InsertPlayer(context.Background(), "w1", 1, "Alice", 1000, time.Time{}, 0)
	require.NoError(t, err)
	assert.False(t, first)
}

func TestService_MuteUpdateBroadcastsToAllLinks(t *testing.T) {
	svc, notifier, _ := newTestService(t)
	w1 := notifier.Register("w1")
	w2 := notifier.Register("w2")

	insertPlayers(t, svc, "w1", 1)
	drain(w1)
	drain(w2)

	expiry := time.Unix(1900000000, 0)
	require.NoError(t, svc.MuteUpdate(1, expiry))

	for _, ch := range []<-chan *chatv1.ChatMessage{w1, w2} {
		msgs := drain(ch)
		require.Len(t, msgs, 1)
		mute := msgs[0].GetMuteBroadcast()
		require.NotNil(t, mute, "mute updates reach every world server")
		assert.Equal(t, uint64(1), mute.PlayerId)
		assert.Equal(t, expiry.Unix(), mute.MuteExpiryUnix)
	}
}

func TestService_CreateTeam(t *testing.T) {
	svc, notifier, _ := newTestService(t)
	w1 := notifier.Register("w1")

	insertPlayers(t, svc, "w1", 1, 2, 3)
	drain(w1)

	require.NoError(t, svc.CreateTeam(1, []player.ID{2, 3}, 1200))

	var rosters []*chatv1.TeamRosterBroadcast
	for _, msg := range drain(w1) {
		if r := msg.GetTeamRoster(); r != nil {
			rosters = append(rosters, r)
		}
	}
	require.NotEmpty(t, rosters)
	final := rosters[len(rosters)-1]
	assert.False(t, final.Deleted)
	assert.True(t, final.LootShared)
	assert.Equal(t, []uint64{1, 2, 3}, final.MemberIds)
}

func TestService_CreateTeam_TooManyMembers(t *testing.T) {
	svc, _, _ := newTestService(t)
	insertPlayers(t, svc, "w1", 1, 2, 3, 4, 5)

	err := svc.CreateTeam(1, []player.ID{2, 3, 4, 5}, 1200)
	assert.ErrorIs(t, err, ErrTooManyMembers)
	assert.ErrorIs(t, svc.TeamLeave(1), team.ErrNotMember, "no team was formed")
}

func TestService_TeamLeaveWithoutTeam(t *testing.T) {
	svc, _, _ := newTestService(t)
	insertPlayers(t, svc, "w1", 1)
	assert.ErrorIs(t, svc.TeamLeave(1), team.ErrNotMember)
}

func TestService_TeamKickRequiresLeader(t *testing.T) {
	svc, _, _ := newTestService(t)
	insertPlayers(t, svc, "w1", 1, 2, 3)
	require.NoError(t, svc.CreateTeam(1, []player.ID{2, 3}, 1200))

	assert.ErrorIs(t, svc.TeamKick(2, 3), ErrNotLeader)
	require.NoError(t, svc.TeamKick(1, 3))
	assert.ErrorIs(t, svc.TeamLeave(3), team.ErrNotMember)
}

func TestService_TeamPromote(t *testing.T) {
	svc, _, _ := newTestService(t)
	insertPlayers(t, svc, "w1", 1, 2, 3)
	require.NoError(t, svc.CreateTeam(1, []player.ID{2, 3}, 1200))

	assert.ErrorIs(t, svc.TeamPromote(2, 3), ErrNotLeader)
	assert.ErrorIs(t, svc.TeamPromote(1, 9), team.ErrNotMember)
	require.NoError(t, svc.TeamPromote(1, 3))

	// The new leader can now kick.
	require.NoError(t, svc.TeamKick(3, 2))
}

func TestService_TeamLootToggle(t *testing.T) {
	svc, notifier, _ := newTestService(t)
	w1 := notifier.Register("w1")

	insertPlayers(t, svc, "w1", 1, 2)
	require.NoError(t, svc.CreateTeam(1, []player.ID{2}, 1200))
	drain(w1)

	require.NoError(t, svc.TeamLootToggle(1, false))

	var roster *chatv1.TeamRosterBroadcast
	for _, msg := range drain(w1) {
		if r := msg.GetTeamRoster(); r != nil {
			roster = r
		}
	}
	require.NotNil(t, roster)
	assert.False(t, roster.LootShared)
}

func TestService_LinkDownSchedulesRemovals(t *testing.T) {
	svc, _, activity := newTestService(t)
	insertPlayers(t, svc, "w1", 1, 2)
	insertPlayers(t, svc, "w2", 3)

	svc.LinkDown("w1")
	assert.Equal(t, 3, svc.OnlineCount(), "grace period keeps sessions alive")

	svc.Tick(context.Background(), time.Minute)
	assert.Equal(t, 1, svc.OnlineCount(), "only the dropped link's players leave")

	logouts := 0
	for _, kind := range activity.records {
		if kind == player.ActivityLoggedOut {
			logouts++
		}
	}
	assert.Equal(t, 2, logouts)
}

func TestService_ReinsertDuringGraceKeepsPlayer(t *testing.T) {
	svc, _, _ := newTestService(t)
	insertPlayers(t, svc, "w1", 1)

	svc.ScheduleRemovePlayer(1)
	insertPlayers(t, svc, "w2", 1) // reconnect through another world server

	svc.Tick(context.Background(), time.Minute)
	assert.Equal(t, 1, svc.OnlineCount())
}

func TestService_ScheduleRemoveIgnoresSentinel(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.ScheduleRemovePlayer(player.EmptyID)
	svc.Tick(context.Background(), time.Minute)
	assert.Equal(t, 0, svc.OnlineCount())
}

func TestService_Shutdown(t *testing.T) {
	svc, _, activity := newTestService(t)
	insertPlayers(t, svc, "w1", 1, 2, 3)
	require.NoError(t, svc.CreateTeam(1, []player.ID{2, 3}, 1200))

	svc.Shutdown(context.Background())

	assert.Equal(t, 0, svc.OnlineCount())
	assert.ErrorIs(t, svc.TeamLeave(1), team.ErrNotMember, "teams are released")

	logouts := 0
	for _, kind := range activity.records {
		if kind == player.ActivityLoggedOut {
			logouts++
		}
	}
	assert.Equal(t, 3, logouts)
}
