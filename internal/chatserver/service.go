// Package chatserver hosts the session and team registries behind the
// world-server link: it serializes inbound mutations, advances the
// pending-removal schedule, and fans notices back out over the link streams.
package chatserver

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/chatd/internal/chat/player"
	"github.com/cory-johannsen/chatd/internal/chat/team"
)

// ErrTooManyMembers is returned when a create-team request lists four or
// more additional members. The message is malformed and dropped.
var ErrTooManyMembers = errors.New("create team lists too many members")

// ErrNotLeader is returned when a leader-only team operation arrives from a
// player who does not lead their team.
var ErrNotLeader = errors.New("player is not the team leader")

// Service owns the two registries and serializes every mutation behind one
// mutex. Message handling may be spread across stream goroutines, but
// registry cross-references (removal touches teams, team mutation reads
// sessions) make per-registry locking unsafe; a single guard restores the
// single-writer model the registries assume. The periodic Tick takes the
// same guard, so it never interleaves with message processing.
type Service struct {
	mu      sync.Mutex
	players *player.Registry
	teams   *team.Registry
	logger  *zap.Logger
}

// NewService creates the dispatch service over the given registries.
//
// Precondition: players, teams, and logger must be non-nil, and players must
// already have teams injected as its team lookup.
func NewService(players *player.Registry, teams *team.Registry, logger *zap.Logger) *Service {
	return &Service{
		players: players,
		teams:   teams,
		logger:  logger,
	}
}

// InsertPlayer registers a player session reported by a world server.
// Reports whether this is the player's first login (as opposed to a refresh
// of a live session).
func (s *Service) InsertPlayer(ctx context.Context, linkID string, id player.ID, name string, zone player.ZoneID, muteExpiry time.Time, privilegeLevel int32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players.InsertOrUpdate(ctx, id, name, zone, muteExpiry, privilegeLevel, linkID)
}

// ScheduleRemovePlayer starts the logout grace timer for id. The empty
// sentinel id is ignored.
func (s *Service) ScheduleRemovePlayer(id player.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players.ScheduleRemoval(id)
}

// MuteUpdate records a mute-expiry change and broadcasts it.
func (s *Service) MuteUpdate(id player.ID, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players.SetMuteExpiry(id, expiry)
}

// CreateTeam merges the leader and up to three listed members into a new
// local team formed in the given zone, then re-broadcasts its roster.
func (s *Service) CreateTeam(leaderID player.ID, memberIDs []player.ID, zone player.ZoneID) error {
	if len(memberIDs) >= team.MaxMembers {
		s.logger.Warn("rejecting create team with too many members",
			zap.Int("members", len(memberIDs)),
		)
		return ErrTooManyMembers
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := append([]player.ID{leaderID}, memberIDs...)
	t := s.teams.MergeIntoLocalTeam(ids)
	if t == nil {
		return nil
	}
	t.Zone = zone
	s.teams.StatusBroadcast(t)
	return nil
}

// TeamLeave removes a player from their team, if any.
func (s *Service) TeamLeave(id player.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams.FindTeamOf(id)
	if !ok {
		s.logger.Debug("leave from player with no team", zap.Uint64("player_id", uint64(id)))
		return team.ErrNotMember
	}
	return s.teams.Remove(t, id, team.CauseLeaving)
}

// TeamKick ejects targetID from leaderID's team. Leader-only.
func (s *Service) TeamKick(leaderID, targetID player.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams.FindTeamOf(leaderID)
	if !ok || t.LeaderID != leaderID {
		s.logger.Debug("kick from non-leader", zap.Uint64("player_id", uint64(leaderID)))
		return ErrNotLeader
	}
	return s.teams.Remove(t, targetID, team.CauseKicked)
}

// TeamPromote hands leadership of leaderID's team to newLeaderID.
// Leader-only; the new leader must be a current member.
func (s *Service) TeamPromote(leaderID, newLeaderID player.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams.FindTeamOf(leaderID)
	if !ok || t.LeaderID != leaderID {
		s.logger.Debug("promote from non-leader", zap.Uint64("player_id", uint64(leaderID)))
		return ErrNotLeader
	}
	if !t.HasMember(newLeaderID) {
		s.logger.Debug("promote of non-member", zap.Uint64("player_id", uint64(newLeaderID)))
		return team.ErrNotMember
	}
	s.teams.Promote(t, newLeaderID)
	return nil
}

// TeamLootToggle flips the loot-sharing flag on leaderID's team and
// re-broadcasts its status. Leader-only.
func (s *Service) TeamLootToggle(leaderID player.ID, lootShared bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams.FindTeamOf(leaderID)
	if !ok || t.LeaderID != leaderID {
		s.logger.Debug("loot toggle from non-leader", zap.Uint64("player_id", uint64(leaderID)))
		return ErrNotLeader
	}
	t.LootShared = lootShared
	s.teams.StatusBroadcast(t)
	return nil
}

// TeamStatus re-broadcasts the status of id's team, if any.
func (s *Service) TeamStatus(id player.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams.FindTeamOf(id)
	if !ok {
		return team.ErrNotMember
	}
	s.teams.StatusBroadcast(t)
	return nil
}

// LinkDown schedules removal, with the usual grace period, for every player
// owned by the dropped world-server link.
func (s *Service) LinkDown(linkID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.players.IDsOnLink(linkID)
	for _, id := range ids {
		s.players.ScheduleRemoval(id)
	}
	if len(ids) > 0 {
		s.logger.Info("scheduled removals for dropped link",
			zap.String("link_id", linkID),
			zap.Int("players", len(ids)),
		)
	}
}

// Tick advances the pending-removal schedule by delta.
func (s *Service) Tick(ctx context.Context, delta time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players.Tick(ctx, delta)
}

// OnlineCount returns the number of online sessions.
func (s *Service) OnlineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players.Count()
}

// Shutdown flushes logout records for every remaining session and releases
// all teams.
func (s *Service) Shutdown(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players.Shutdown(ctx)
	s.teams.ReleaseAll()
}
