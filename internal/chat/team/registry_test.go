package team

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/chatd/internal/chat/player"
	"github.com/cory-johannsen/chatd/internal/config"
)

// nopPresenceNotifier satisfies the session registry's port; team tests do
// not care about presence notices.
type nopPresenceNotifier struct{}

func (nopPresenceNotifier) SendFriendStatus(player.ID, player.ID, string, bool, bool) {}
func (nopPresenceNotifier) SendTeamOffWorldFlag(player.ID, player.ID)                 {}
func (nopPresenceNotifier) BroadcastMuteUpdate(player.ID, time.Time)                  {}

type nopActivityLog struct{}

func (nopActivityLog) Append(context.Context, player.ID, player.ActivityKind, player.ZoneID) error {
	return nil
}

type systemMessage struct {
	target  player.ID
	message string
}

type inviteConfirm struct {
	target     player.ID
	invite     bool
	leaderID   player.ID
	leaderZone player.ZoneID
	lootShared bool
	leaderName string
}

type setLeaderNotice struct {
	target   player.ID
	leaderID player.ID
}

type addNotice struct {
	target     player.ID
	local      bool
	memberID   player.ID
	memberName string
	memberZone player.ZoneID
}

type removeNotice struct {
	target      player.ID
	disband     bool
	kicked      bool
	leaving     bool
	local       bool
	newLeaderID player.ID
	causingID   player.ID
	causingName string
}

type statusNotice struct {
	target     player.ID
	leaderID   player.ID
	leaderZone player.ZoneID
	lootShared bool
	leaderName string
}

type rosterBroadcast struct {
	teamID  uint32
	deleted bool
	loot    bool
	members []player.ID
}

// fakeTeamNotifier records every team notice in arrival order.
type fakeTeamNotifier struct {
	system     []systemMessage
	invites    []inviteConfirm
	setLeaders []setLeaderNotice
	adds       []addNotice
	removes    []removeNotice
	statuses   []statusNotice
	rosters    []rosterBroadcast
}

func (f *fakeTeamNotifier) SendSystemMessage(target player.ID, message string) {
	f.system = append(f.system, systemMessage{target, message})
}

func (f *fakeTeamNotifier) SendTeamInviteConfirm(target player.ID, invite bool, leaderID player.ID, leaderZone player.ZoneID, lootShared bool, leaderName string) {
	f.invites = append(f.invites, inviteConfirm{target, invite, leaderID, leaderZone, lootShared, leaderName})
}

func (f *fakeTeamNotifier) SendTeamSetLeader(target player.ID, leaderID player.ID) {
	f.setLeaders = append(f.setLeaders, setLeaderNotice{target, leaderID})
}

func (f *fakeTeamNotifier) SendTeamAddPlayer(target player.ID, _, local, _ bool, memberID player.ID, memberName string, memberZone player.ZoneID) {
	f.adds = append(f.adds, addNotice{target, local, memberID, memberName, memberZone})
}

func (f *fakeTeamNotifier) SendTeamRemovePlayer(target player.ID, disband, kicked, leaving, local bool, newLeaderID, causingID player.ID, causingName string) {
	f.removes = append(f.removes, removeNotice{target, disband, kicked, leaving, local, newLeaderID, causingID, causingName})
}

func (f *fakeTeamNotifier) SendTeamStatus(target player.ID, leaderID player.ID, leaderZone player.ZoneID, lootShared bool, leaderName string) {
	f.statuses = append(f.statuses, statusNotice{target, leaderID, leaderZone, lootShared, leaderName})
}

func (f *fakeTeamNotifier) BroadcastTeamRoster(teamID uint32, deleted bool, lootShared bool, members []player.ID) {
	f.rosters = append(f.rosters, rosterBroadcast{teamID, deleted, lootShared, members})
}

func (f *fakeTeamNotifier) reset() {
	*f = fakeTeamNotifier{}
}

func (f *fakeTeamNotifier) lastRoster(t *testing.T) rosterBroadcast {
	t.Helper()
	require.NotEmpty(t, f.rosters)
	return f.rosters[len(f.rosters)-1]
}

func testChatConfig() config.ChatConfig {
	return config.ChatConfig{
		MaxNameBytes:      32,
		LogoutGracePeriod: 20 * time.Second,
		TickInterval:      time.Second,
		DefaultLootShared: true,
		MaxFriends:        50,
		MaxBestFriends:    5,
	}
}

// newTestRegistries builds a session registry with the given players online
// (player i is named "Player<i>" in zone 1000+i) and a team registry on top.
func newTestRegistries(t *testing.T, online ...player.ID) (*Registry, *player.Registry, *fakeTeamNotifier) {
	t.Helper()
	players := player.NewRegistry(testChatConfig(), nopPresenceNotifier{}, nopActivityLog{}, zap.NewNop())
	for _, id := range online {
		_, err := players.InsertOrUpdate(context.Background(), id,
			fmt.Sprintf("Player%d", id), player.ZoneID(1000+uint32(id)), time.Time{}, 0, "link-1")
		require.NoError(t, err)
	}
	notifier := &fakeTeamNotifier{}
	reg := NewRegistry(testChatConfig(), players, notifier, zap.NewNop())
	return reg, players, notifier
}

func TestCreate(t *testing.T) {
	reg, _, _ := newTestRegistries(t, 1)

	team := reg.Create(1, true)
	require.NotNil(t, team)
	assert.Equal(t, uint32(1), team.ID)
	assert.Equal(t, player.ID(1), team.LeaderID)
	assert.Equal(t, []player.ID{1}, team.Members)
	assert.True(t, team.Local)
	assert.True(t, team.LootShared, "default loot flag comes from config")

	found, ok := reg.FindTeamOf(1)
	require.True(t, ok)
	assert.Same(t, team, found)
}

func TestCreate_TeamIDsNeverReused(t *testing.T) {
	reg, _, _ := newTestRegistries(t, 1, 2, 3, 4)

	a := reg.Create(1, true)
	_ = reg.Add(a, 2)
	b := reg.Create(3, true)
	_ = reg.Add(b, 4)
	reg.Disband(b, 3, "Player3")

	c := reg.Create(3, true)
	assert.Greater(t, c.ID, b.ID)
}

func TestAdd_FanOut(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2)

	team := reg.Create(1, false)
	notifier.reset()

	require.NoError(t, reg.Add(team, 2))
	assert.Equal(t, []player.ID{1, 2}, team.Members)

	// Newcomer gets an invite confirmation naming the leader.
	require.Len(t, notifier.invites, 1)
	inv := notifier.invites[0]
	assert.Equal(t, player.ID(2), inv.target)
	assert.False(t, inv.invite)
	assert.Equal(t, player.ID(1), inv.leaderID)
	assert.Equal(t, "Player1", inv.leaderName)

	// Non-local team: the set-leader notice names the real leader.
	require.Len(t, notifier.setLeaders, 1)
	assert.Equal(t, setLeaderNotice{target: 2, leaderID: 1}, notifier.setLeaders[0])

	// Roster broadcast to all world servers.
	roster := notifier.lastRoster(t)
	assert.Equal(t, team.ID, roster.teamID)
	assert.False(t, roster.deleted)
	assert.Equal(t, []player.ID{1, 2}, roster.members)

	// Mutual player-added notices pairing newcomer and existing member.
	require.Len(t, notifier.adds, 2)
	assert.Equal(t, player.ID(2), notifier.adds[0].target)
	assert.Equal(t, player.ID(1), notifier.adds[0].memberID)
	assert.Equal(t, "Player1", notifier.adds[0].memberName)
	assert.Equal(t, player.ID(1), notifier.adds[1].target)
	assert.Equal(t, player.ID(2), notifier.adds[1].memberID)
	assert.Equal(t, "Player2", notifier.adds[1].memberName)
}

func TestAdd_LocalTeamLeaderIsHidden(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2)

	team := reg.Create(1, true)
	notifier.reset()

	require.NoError(t, reg.Add(team, 2))
	require.Len(t, notifier.setLeaders, 1)
	assert.Equal(t, player.EmptyID, notifier.setLeaders[0].leaderID,
		"local teams expose the empty sentinel instead of a leader")
}

func TestAdd_DuplicateIsNoop(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2)

	team := reg.Create(1, true)
	require.NoError(t, reg.Add(team, 2))
	notifier.reset()

	require.NoError(t, reg.Add(team, 2))
	assert.Equal(t, []player.ID{1, 2}, team.Members)
	assert.Empty(t, notifier.invites)
	assert.Empty(t, notifier.rosters)
}

func TestAdd_CapacityHardCap(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2, 3, 4, 5)

	team := reg.Create(1, true)
	for _, id := range []player.ID{2, 3, 4} {
		require.NoError(t, reg.Add(team, id))
	}
	require.Len(t, team.Members, MaxMembers)
	notifier.reset()

	err := reg.Add(team, 5)
	assert.ErrorIs(t, err, ErrTeamFull)
	assert.Len(t, team.Members, MaxMembers, "fifth join leaves the roster unchanged")

	// The would-be joiner is told directly.
	require.Len(t, notifier.system, 1)
	assert.Equal(t, player.ID(5), notifier.system[0].target)
	assert.Empty(t, notifier.rosters, "rejected join broadcasts nothing")
}

func TestRemove_TwoMemberTeamDisbands(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2)

	team := reg.Create(1, true)
	require.NoError(t, reg.Add(team, 2))
	notifier.reset()

	require.NoError(t, reg.Remove(team, 2, CauseLeaving))

	_, ok := reg.FindTeamOf(1)
	assert.False(t, ok)
	_, ok = reg.FindTeamOf(2)
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Count())

	roster := notifier.lastRoster(t)
	assert.True(t, roster.deleted)
	assert.Equal(t, team.ID, roster.teamID)
}

func TestRemove_LeaderPromotionByRosterOrder(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2, 3)

	team := reg.Create(1, false)
	require.NoError(t, reg.Add(team, 2))
	require.NoError(t, reg.Add(team, 3))
	notifier.reset()

	require.NoError(t, reg.Remove(team, 1, CauseLeaving))

	assert.Equal(t, player.ID(2), team.LeaderID, "first remaining member leads")
	assert.Equal(t, []player.ID{2, 3}, team.Members)

	// The removed leader hears about their own departure with no leader set.
	require.Len(t, notifier.removes, 3)
	assert.Equal(t, player.ID(1), notifier.removes[0].target)
	assert.Equal(t, player.EmptyID, notifier.removes[0].newLeaderID)
	assert.True(t, notifier.removes[0].leaving)

	// Remaining members see the promoted leader.
	for _, n := range notifier.removes[1:] {
		assert.Equal(t, player.ID(2), n.newLeaderID)
		assert.Equal(t, player.ID(1), n.causingID)
		assert.Equal(t, "Player1", n.causingName)
	}

	roster := notifier.lastRoster(t)
	assert.False(t, roster.deleted)
	assert.Equal(t, []player.ID{2, 3}, roster.members)
}

func TestRemove_KickedFlag(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2, 3)

	team := reg.Create(1, false)
	require.NoError(t, reg.Add(team, 2))
	require.NoError(t, reg.Add(team, 3))
	notifier.reset()

	require.NoError(t, reg.Remove(team, 3, CauseKicked))
	require.NotEmpty(t, notifier.removes)
	for _, n := range notifier.removes {
		assert.True(t, n.kicked)
		assert.False(t, n.leaving)
		assert.False(t, n.disband)
	}
}

func TestRemove_NonMemberIsNoop(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2)

	team := reg.Create(1, true)
	require.NoError(t, reg.Add(team, 2))
	notifier.reset()

	err := reg.Remove(team, 9, CauseLeaving)
	assert.ErrorIs(t, err, ErrNotMember)
	assert.Equal(t, []player.ID{1, 2}, team.Members)
	assert.Empty(t, notifier.removes)
}

func TestRemove_SilentSuppressesDepartureNotices(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2, 3)

	team := reg.Create(1, false)
	require.NoError(t, reg.Add(team, 2))
	require.NoError(t, reg.Add(team, 3))
	notifier.reset()

	require.NoError(t, reg.Remove(team, 3, CauseSilentMerge))

	assert.Empty(t, notifier.removes, "silent departure sends no player-removed notices")
	// The roster broadcast is the only signal old teammates get.
	roster := notifier.lastRoster(t)
	assert.Equal(t, []player.ID{1, 2}, roster.members)
}

func TestRemove_OfflineMemberStillLeaves(t *testing.T) {
	reg, players, notifier := newTestRegistries(t, 1, 2, 3)

	team := reg.Create(1, true)
	require.NoError(t, reg.Add(team, 2))
	require.NoError(t, reg.Add(team, 3))

	// Player 3's session is gone, but their roster slot remains until a
	// team-level removal.
	require.NoError(t, players.Remove(context.Background(), 3))
	notifier.reset()

	require.NoError(t, reg.Remove(team, 3, CauseLeaving))
	assert.Equal(t, []player.ID{1, 2}, team.Members)
	for _, n := range notifier.removes {
		assert.NotEqual(t, player.ID(3), n.target, "offline players receive nothing")
		assert.Equal(t, "Player3", n.causingName, "names outlive sessions")
	}
}

func TestPromote(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2, 3)

	team := reg.Create(1, false)
	require.NoError(t, reg.Add(team, 2))
	require.NoError(t, reg.Add(team, 3))
	notifier.reset()

	reg.Promote(team, 3)

	assert.Equal(t, player.ID(3), team.LeaderID)
	require.Len(t, notifier.setLeaders, 3)
	for _, n := range notifier.setLeaders {
		assert.Equal(t, player.ID(3), n.leaderID)
	}
}

func TestDisband_Idempotent(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2)

	team := reg.Create(1, true)
	require.NoError(t, reg.Add(team, 2))
	notifier.reset()

	reg.Disband(team, 1, "Player1")
	assert.Equal(t, 0, reg.Count())

	// Every member got set-leader(empty) plus a disband-flagged removal.
	assert.Len(t, notifier.setLeaders, 2)
	for _, n := range notifier.setLeaders {
		assert.Equal(t, player.EmptyID, n.leaderID)
	}
	assert.Len(t, notifier.removes, 2)
	for _, n := range notifier.removes {
		assert.True(t, n.disband)
	}
	deleted := notifier.lastRoster(t)
	assert.True(t, deleted.deleted)

	// A second disband of the same team is a no-op; no roster broadcast for
	// its id is ever sent again.
	notifier.reset()
	reg.Disband(team, 1, "Player1")
	assert.Empty(t, notifier.rosters)
	assert.Empty(t, notifier.removes)
}

func TestMergeIntoLocalTeam(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2, 3, 4, 5)

	// B (=3) already belongs to another 3-member team.
	prior := reg.Create(3, false)
	require.NoError(t, reg.Add(prior, 4))
	require.NoError(t, reg.Add(prior, 5))
	notifier.reset()

	merged := reg.MergeIntoLocalTeam([]player.ID{1, 3, 2})
	require.NotNil(t, merged)

	assert.Equal(t, []player.ID{1, 3, 2}, merged.Members)
	assert.Equal(t, player.ID(1), merged.LeaderID, "first listed player leads")
	assert.True(t, merged.Local)
	assert.True(t, merged.LootShared, "merge forces shared loot")

	// The prior team lost B but survived with 2 members.
	assert.Equal(t, []player.ID{4, 5}, prior.Members)
	priorTeam, ok := reg.FindTeamOf(4)
	require.True(t, ok)
	assert.Same(t, prior, priorTeam)

	// B's departure from the prior team was silent.
	for _, n := range notifier.removes {
		assert.NotEqual(t, player.ID(3), n.causingID,
			"merge must not emit player-removed notices for the moved player")
	}

	got, ok := reg.FindTeamOf(3)
	require.True(t, ok)
	assert.Same(t, merged, got)
}

func TestMergeIntoLocalTeam_PriorTeamDisbands(t *testing.T) {
	reg, _, _ := newTestRegistries(t, 1, 2, 3, 4)

	prior := reg.Create(3, false)
	require.NoError(t, reg.Add(prior, 4))

	merged := reg.MergeIntoLocalTeam([]player.ID{1, 2, 3})
	require.NotNil(t, merged)

	// The prior two-member team dropped to one and disbanded.
	_, ok := reg.FindTeamOf(4)
	assert.False(t, ok)
	assert.Equal(t, 1, reg.Count())
	assert.Equal(t, []player.ID{1, 2, 3}, merged.Members)
}

func TestMergeIntoLocalTeam_EmptyInput(t *testing.T) {
	reg, _, notifier := newTestRegistries(t)
	assert.Nil(t, reg.MergeIntoLocalTeam(nil))
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, notifier.rosters)
}

func TestStatusBroadcast_NonLocal(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2)

	team := reg.Create(1, false)
	require.NoError(t, reg.Add(team, 2))
	notifier.reset()

	reg.StatusBroadcast(team)

	require.Len(t, notifier.statuses, 2)
	for _, n := range notifier.statuses {
		assert.Equal(t, player.ID(1), n.leaderID)
		assert.Equal(t, "Player1", n.leaderName)
	}
	assert.Len(t, notifier.rosters, 1)
}

func TestStatusBroadcast_LocalSkipsMemberStatus(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2)

	team := reg.Create(1, true)
	require.NoError(t, reg.Add(team, 2))
	notifier.reset()

	reg.StatusBroadcast(team)

	assert.Empty(t, notifier.statuses, "local team status is implicit")
	assert.Len(t, notifier.rosters, 1, "the roster still goes to world servers")
}

func TestStatusBroadcast_OfflineLeaderStillBroadcastsRoster(t *testing.T) {
	reg, players, notifier := newTestRegistries(t, 1, 2)

	team := reg.Create(1, false)
	require.NoError(t, reg.Add(team, 2))
	require.NoError(t, players.Remove(context.Background(), 1))
	notifier.reset()

	reg.StatusBroadcast(team)

	assert.Empty(t, notifier.statuses)
	assert.Len(t, notifier.rosters, 1)
}

func TestStatusBroadcast_UnregisteredTeamIsNoop(t *testing.T) {
	reg, _, notifier := newTestRegistries(t, 1, 2)

	team := reg.Create(1, true)
	require.NoError(t, reg.Add(team, 2))
	reg.Disband(team, 1, "Player1")
	notifier.reset()

	reg.StatusBroadcast(team)
	assert.Empty(t, notifier.rosters)
}

func TestTeammatesOf(t *testing.T) {
	reg, _, _ := newTestRegistries(t, 1, 2)

	team := reg.Create(1, true)
	require.NoError(t, reg.Add(team, 2))

	mates := reg.TeammatesOf(1)
	assert.Equal(t, []player.ID{1, 2}, mates)
	assert.Nil(t, reg.TeammatesOf(9))

	// The returned roster is a copy.
	mates[0] = 99
	assert.Equal(t, []player.ID{1, 2}, team.Members)
}
