// Package player provides the session registry: the authoritative in-memory
// record of which players are online, where they are, and which world server
// owns their connection. It also owns the pending-removal schedule that grants
// disconnecting players a reconnect grace period.
package player

import (
	"context"
	"time"
)

// ID is a 64-bit player identifier, unique while the session exists.
type ID uint64

// EmptyID is the sentinel "no player" identifier. It never has a real session.
const EmptyID ID = 0

// ZoneID identifies the world zone a player occupies.
type ZoneID uint32

// Friend is one entry in a session's friend list.
type Friend struct {
	// ID is the friend's player identifier.
	ID ID
	// IsBest marks a best-friend relationship.
	IsBest bool
}

// Session is the registry's record of one currently-known player.
type Session struct {
	// ID is the player identifier.
	ID ID
	// Name is the player's display name.
	Name string
	// Zone is the player's current zone.
	Zone ZoneID
	// MuteExpiry is when the player's chat mute lapses; zero means unmuted.
	MuteExpiry time.Time
	// PrivilegeLevel is the player's GM privilege level.
	PrivilegeLevel int32
	// LinkID is the opaque routing token of the owning world-server link.
	LinkID string
	// IsFirstLogin is true only when this session's id had never been seen
	// by this insert; false on reconnect over a live session.
	IsFirstLogin bool
	// Friends is the ordered friend list. It is owned by the session and
	// mutated by the friends subsystem; the registry only reads it during
	// removal fan-out.
	Friends []Friend
}

// Muted reports whether the session is muted at the given instant.
func (s *Session) Muted(now time.Time) bool {
	return !s.MuteExpiry.IsZero() && now.Before(s.MuteExpiry)
}

// ActivityKind is the kind of a persisted login/logout activity record.
type ActivityKind string

// Activity record kinds.
const (
	ActivityLoggedIn  ActivityKind = "logged_in"
	ActivityLoggedOut ActivityKind = "logged_out"
)

// Notifier sends presence-related notices to world servers. Implementations
// must be fire-and-forget: sends never block registry mutation.
type Notifier interface {
	// SendFriendStatus tells target that about went online or offline.
	SendFriendStatus(target ID, about ID, aboutName string, online bool, isBest bool)
	// SendTeamOffWorldFlag tells target that a teammate's world connection
	// went down. Team membership is unchanged; position is zeroed.
	SendTeamOffWorldFlag(target ID, departed ID)
	// BroadcastMuteUpdate announces a mute-expiry change to all world
	// servers, since mute enforcement is distributed.
	BroadcastMuteUpdate(id ID, expiry time.Time)
}

// ActivityLog records login/logout events keyed by player and zone.
type ActivityLog interface {
	Append(ctx context.Context, id ID, kind ActivityKind, zone ZoneID) error
}

// TeamLookup resolves the roster of the team a player belongs to.
// The team registry implements it; it is injected after construction
// because teams also depend on the session registry.
type TeamLookup interface {
	// TeammatesOf returns every member of the team containing id,
	// including id itself, or nil if the player is not in a team.
	TeammatesOf(id ID) []ID
}
