package team

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/chatd/internal/chat/player"
	"github.com/cory-johannsen/chatd/internal/config"
)

// teamFullMessage is the direct notice a would-be fifth member receives.
const teamFullMessage = "The team is full! You have not been added to a team!"

// Registry owns every active team. Teams live in a dense slice addressed by a
// stable team id through an index map, so disband removes by id rather than
// pointer identity.
//
// Like the session registry, Registry is not safe for concurrent use; the
// dispatch layer serializes all mutations.
type Registry struct {
	teams []*Team
	index map[uint32]int
	// nextID is monotonically increasing and never reused.
	nextID uint32

	defaultLootShared bool

	players  PlayerDirectory
	notifier Notifier
	logger   *zap.Logger
}

// NewRegistry creates an empty team registry.
//
// Precondition: players, notifier, and logger must be non-nil.
func NewRegistry(cfg config.ChatConfig, players PlayerDirectory, notifier Notifier, logger *zap.Logger) *Registry {
	return &Registry{
		index:             make(map[uint32]int),
		defaultLootShared: cfg.DefaultLootShared,
		players:           players,
		notifier:          notifier,
		logger:            logger,
	}
}

// Create allocates a new team with leaderID as its sole member. Size 1 is a
// transient state: the caller must either grow the team via Add or abandon it.
//
// Postcondition: The returned team is registered and discoverable by id.
func (r *Registry) Create(leaderID player.ID, local bool) *Team {
	r.nextID++
	t := &Team{
		ID:         r.nextID,
		LeaderID:   leaderID,
		LootShared: r.defaultLootShared,
		Local:      local,
	}
	r.index[t.ID] = len(r.teams)
	r.teams = append(r.teams, t)

	if err := r.Add(t, leaderID); err != nil {
		r.logger.Warn("adding leader to fresh team", zap.Error(err))
	}
	return t
}

// MergeIntoLocalTeam folds the listed players into one new local team. Each
// listed player silently leaves any prior team first (the prior team may
// disband if it drops to one member). The first listed player leads; the loot
// flag is forced to shared; one status broadcast follows the merge.
//
// Postcondition: Returns the new team, or nil (no mutation) for empty input.
func (r *Registry) MergeIntoLocalTeam(memberIDs []player.ID) *Team {
	if len(memberIDs) == 0 {
		return nil
	}

	var merged *Team
	for _, id := range memberIDs {
		if prior, ok := r.FindTeamOf(id); ok {
			if err := r.Remove(prior, id, CauseSilentMerge); err != nil {
				r.logger.Warn("removing player from prior team",
					zap.Uint64("player_id", uint64(id)),
					zap.Error(err),
				)
			}
		}

		if merged == nil {
			merged = r.Create(id, true)
		} else if err := r.Add(merged, id); err != nil {
			r.logger.Warn("folding player into merged team",
				zap.Uint64("player_id", uint64(id)),
				zap.Error(err),
			)
		}
	}

	merged.LootShared = true
	r.StatusBroadcast(merged)

	return merged
}

// Add appends a player to the roster and runs the join fan-out: the newcomer
// gets an invite confirmation naming the leader plus a set-leader notice
// (empty sentinel for local teams), all world servers get the updated roster,
// and each existing member is paired with the newcomer by mutual
// player-added notices.
//
// A full roster rejects the join with ErrTeamFull and tells the would-be
// joiner directly; a player already on the roster is a no-op. The fan-out is
// skipped (the roster keeps the newcomer) when the leader or newcomer has no
// session to read names and zones from.
func (r *Registry) Add(t *Team, id player.ID) error {
	if len(t.Members) >= MaxMembers {
		r.logger.Warn("rejecting join of full team",
			zap.Uint32("team_id", t.ID),
			zap.Uint64("player_id", uint64(id)),
		)
		if _, online := r.players.Lookup(id); online {
			r.notifier.SendSystemMessage(id, teamFullMessage)
		}
		return ErrTeamFull
	}

	if t.HasMember(id) {
		return nil
	}

	t.Members = append(t.Members, id)

	leader, leaderOnline := r.players.Lookup(t.LeaderID)
	member, memberOnline := r.players.Lookup(id)
	if !leaderOnline || !memberOnline {
		return nil
	}

	r.notifier.SendTeamInviteConfirm(id, false, leader.ID, leader.Zone, t.LootShared, leader.Name)

	if t.Local {
		r.notifier.SendTeamSetLeader(id, player.EmptyID)
	} else {
		r.notifier.SendTeamSetLeader(id, leader.ID)
	}

	r.broadcastRoster(t, false)

	for _, otherID := range t.Members {
		if otherID == id {
			continue
		}

		other, otherOnline := r.players.Lookup(otherID)
		var otherZone player.ZoneID
		if otherOnline {
			otherZone = other.Zone
		}

		r.notifier.SendTeamAddPlayer(id, false, t.Local, false, otherID, r.players.Name(otherID), otherZone)

		if otherOnline {
			r.notifier.SendTeamAddPlayer(otherID, false, t.Local, false, id, member.Name, member.Zone)
		}
	}

	return nil
}

// Remove takes a player off the roster. Unless the cause is silent, the
// removed player (if online) and every remaining member receive a
// player-removed notice carrying the cause's reason flags. A roster that
// would drop to one or zero members disbands instead; otherwise a departing
// leader hands leadership to the first remaining member in roster order, and
// the updated roster is broadcast.
//
// Postcondition: Returns ErrNotMember (no-op) if id is not on the roster.
func (r *Registry) Remove(t *Team, id player.ID, cause RemoveCause) error {
	if !t.HasMember(id) {
		r.logger.Debug("removing non-member from team",
			zap.Uint32("team_id", t.ID),
			zap.Uint64("player_id", uint64(id)),
		)
		return ErrNotMember
	}

	r.logger.Debug("player leaving team",
		zap.Uint64("player_id", uint64(id)),
		zap.Uint32("team_id", t.ID),
	)

	members := t.Members[:0]
	for _, m := range t.Members {
		if m != id {
			members = append(members, m)
		}
	}
	t.Members = members

	causingName := r.players.Name(id)
	disband, kicked, leaving := cause.Flags()

	if !cause.Silent() {
		if _, online := r.players.Lookup(id); online {
			r.notifier.SendTeamRemovePlayer(id, disband, kicked, leaving, t.Local, player.EmptyID, id, causingName)
		}
	}

	if len(t.Members) <= 1 {
		r.Disband(t, id, causingName)
		return nil
	}

	if id == t.LeaderID {
		t.LeaderID = t.Members[0]
	}

	if !cause.Silent() {
		for _, memberID := range t.Members {
			if _, online := r.players.Lookup(memberID); !online {
				continue
			}
			r.notifier.SendTeamRemovePlayer(memberID, disband, kicked, leaving, t.Local, t.LeaderID, id, causingName)
		}
	}

	r.broadcastRoster(t, false)
	return nil
}

// Promote makes newLeaderID the leader and tells every online member.
//
// Precondition: newLeaderID must be a current member; the registry does not
// validate this.
func (r *Registry) Promote(t *Team, newLeaderID player.ID) {
	t.LeaderID = newLeaderID

	for _, memberID := range t.Members {
		if _, online := r.players.Lookup(memberID); !online {
			continue
		}
		r.notifier.SendTeamSetLeader(memberID, newLeaderID)
	}
}

// Disband tears the team down: every online member receives a set-leader
// notice carrying the empty sentinel and a disband-flagged removal notice, a
// deletion roster broadcast goes to all world servers, and the team leaves
// the registry. A team already gone is a no-op.
func (r *Registry) Disband(t *Team, causingID player.ID, causingName string) {
	pos, ok := r.index[t.ID]
	if !ok {
		return
	}

	r.logger.Debug("disbanding team", zap.Uint32("team_id", t.ID))

	for _, memberID := range t.Members {
		if _, online := r.players.Lookup(memberID); !online {
			continue
		}
		r.notifier.SendTeamSetLeader(memberID, player.EmptyID)
		r.notifier.SendTeamRemovePlayer(memberID, true, false, false, t.Local, t.LeaderID, causingID, causingName)
	}

	r.broadcastRoster(t, true)

	last := len(r.teams) - 1
	r.teams[pos] = r.teams[last]
	r.index[r.teams[pos].ID] = pos
	r.teams = r.teams[:last]
	delete(r.index, t.ID)
}

// StatusBroadcast re-sends leader/zone/loot status to every online member of
// a non-local team (local teams' status is implicit) and re-broadcasts the
// roster to world servers regardless. A team no longer in the registry is a
// no-op.
func (r *Registry) StatusBroadcast(t *Team) {
	if _, ok := r.index[t.ID]; !ok {
		return
	}

	if !t.Local {
		if leader, ok := r.players.Lookup(t.LeaderID); ok {
			for _, memberID := range t.Members {
				if _, online := r.players.Lookup(memberID); !online {
					continue
				}
				r.notifier.SendTeamStatus(memberID, t.LeaderID, leader.Zone, t.LootShared, leader.Name)
			}
		}
	}

	r.broadcastRoster(t, false)
}

// FindTeamOf returns the team containing id, scanning all rosters.
func (r *Registry) FindTeamOf(id player.ID) (*Team, bool) {
	for _, t := range r.teams {
		if t.HasMember(id) {
			return t, true
		}
	}
	return nil, false
}

// TeammatesOf returns a copy of the roster of the team containing id, or nil.
// It implements the session registry's TeamLookup port.
func (r *Registry) TeammatesOf(id player.ID) []player.ID {
	t, ok := r.FindTeamOf(id)
	if !ok {
		return nil
	}
	members := make([]player.ID, len(t.Members))
	copy(members, t.Members)
	return members
}

// Count returns the number of active teams.
func (r *Registry) Count() int {
	return len(r.teams)
}

// ReleaseAll drops every team without notification. Shutdown only.
func (r *Registry) ReleaseAll() {
	r.teams = nil
	r.index = make(map[uint32]int)
}

func (r *Registry) broadcastRoster(t *Team, deleted bool) {
	var members []player.ID
	if !deleted {
		members = make([]player.ID, len(t.Members))
		copy(members, t.Members)
	}
	r.notifier.BroadcastTeamRoster(t.ID, deleted, t.LootShared, members)
}
