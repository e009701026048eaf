// Package team provides the team registry: ephemeral groups of up to four
// players with leader tracking, membership mutation, and the notification
// fan-out each transition triggers.
package team

import (
	"errors"

	"github.com/cory-johannsen/chatd/internal/chat/player"
)

// MaxMembers is the hard roster cap. There is no queueing beyond it.
const MaxMembers = 4

// ErrTeamFull is returned when a join would push a roster past MaxMembers.
var ErrTeamFull = errors.New("team already has the maximum number of members")

// ErrNotMember is returned when a removal references a player who is not on
// the roster.
var ErrNotMember = errors.New("player is not a team member")

// Team is one ephemeral player group. Teams are owned by the Registry's
// collection; no other component may retain one past disband.
type Team struct {
	// ID is unique for the process lifetime and never reused.
	ID uint32
	// LeaderID is always a current member.
	LeaderID player.ID
	// Members is the ordered roster, size 1-4, no duplicates. Size 1 is a
	// transient pre-Active state; the registry never keeps a team at or
	// below one member after a removal.
	Members []player.ID
	// LootShared is the loot-sharing flag.
	LootShared bool
	// Zone is the zone the team formed in.
	Zone player.ZoneID
	// Local marks a team formed entirely within this server; local teams
	// expose no leader to members (the set-leader notice carries the empty
	// sentinel instead).
	Local bool
}

// HasMember reports whether id is on the roster.
func (t *Team) HasMember(id player.ID) bool {
	for _, m := range t.Members {
		if m == id {
			return true
		}
	}
	return false
}

// RemoveCause enumerates why a member leaves a roster. It replaces the loose
// silent boolean of older designs: the cause governs both the wire reason
// flags and whether departure notices fire at all.
type RemoveCause int

const (
	// CauseLeaving is a voluntary departure.
	CauseLeaving RemoveCause = iota
	// CauseKicked is a leader-initiated ejection.
	CauseKicked
	// CauseDisband marks removal as part of tearing the team down.
	CauseDisband
	// CauseSilentMerge is the merge-into-local-team path: the member moves
	// to a new team without per-departure notices to anyone. Old teammates
	// only learn of the change through the subsequent roster broadcast.
	CauseSilentMerge
)

// Silent reports whether the cause suppresses departure notices.
func (c RemoveCause) Silent() bool {
	return c == CauseSilentMerge
}

// Flags returns the (disband, kicked, leaving) wire reason flags.
func (c RemoveCause) Flags() (disband, kicked, leaving bool) {
	switch c {
	case CauseKicked:
		return false, true, false
	case CauseDisband:
		return true, false, false
	default:
		return false, false, true
	}
}

// PlayerDirectory is the view of the session registry the team registry needs.
type PlayerDirectory interface {
	// Lookup returns the online session for id.
	Lookup(id player.ID) (*player.Session, bool)
	// Name returns the last known display name for id, online or not.
	Name(id player.ID) string
}

// Notifier sends team notices. Direct sends target one player's owning world
// server; BroadcastTeamRoster reaches every world server. Implementations
// must be fire-and-forget.
type Notifier interface {
	// SendSystemMessage delivers a user-facing informational message.
	SendSystemMessage(target player.ID, message string)
	// SendTeamInviteConfirm confirms team entry, naming the leader.
	SendTeamInviteConfirm(target player.ID, invite bool, leaderID player.ID, leaderZone player.ZoneID, lootShared bool, leaderName string)
	// SendTeamSetLeader announces the leader; EmptyID signals a local team
	// with no externally visible leader.
	SendTeamSetLeader(target player.ID, leaderID player.ID)
	// SendTeamAddPlayer pairs target with a (new or existing) teammate.
	SendTeamAddPlayer(target player.ID, invite, local, zoneChange bool, memberID player.ID, memberName string, memberZone player.ZoneID)
	// SendTeamRemovePlayer announces a departure with its reason flags.
	SendTeamRemovePlayer(target player.ID, disband, kicked, leaving, local bool, newLeaderID, causingID player.ID, causingName string)
	// SendTeamStatus re-sends leader/zone/loot status to one member.
	SendTeamStatus(target player.ID, leaderID player.ID, leaderZone player.ZoneID, lootShared bool, leaderName string)
	// BroadcastTeamRoster describes a team's membership, or its deletion,
	// to all world servers.
	BroadcastTeamRoster(teamID uint32, deleted bool, lootShared bool, members []player.ID)
}
