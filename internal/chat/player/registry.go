package player

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/chatd/internal/config"
)

// ErrNameTooLong is returned when an inserted player name exceeds the
// configured byte bound. The message is malformed and must be dropped.
var ErrNameTooLong = errors.New("player name exceeds length bound")

// ErrNotFound is returned when an operation references an unknown player id.
var ErrNotFound = errors.New("player not found")

// Registry is the session registry. It owns the id → session mapping and the
// pending-removal schedule.
//
// Registry is not safe for concurrent use. All mutating operations, and the
// periodic Tick, must run on one logical processing sequence; the chatserver
// dispatch layer serializes them behind a single mutex. Cross-references
// (removal touches team state, team mutation reads sessions) make finer
// locking unsafe.
type Registry struct {
	sessions map[ID]*Session
	// names outlives sessions: departure notices still need the names of
	// players who already logged out.
	names   map[ID]string
	pending map[ID]time.Duration

	maxNameBytes int
	gracePeriod  time.Duration

	notifier Notifier
	activity ActivityLog
	teams    TeamLookup
	logger   *zap.Logger
}

// NewRegistry creates an empty session registry.
//
// Precondition: notifier, activity, and logger must be non-nil; cfg must be validated.
// Postcondition: Returns a registry with no sessions and no pending removals.
func NewRegistry(cfg config.ChatConfig, notifier Notifier, activity ActivityLog, logger *zap.Logger) *Registry {
	return &Registry{
		sessions:     make(map[ID]*Session),
		names:        make(map[ID]string),
		pending:      make(map[ID]time.Duration),
		maxNameBytes: cfg.MaxNameBytes,
		gracePeriod:  cfg.LogoutGracePeriod,
		notifier:     notifier,
		activity:     activity,
		logger:       logger,
	}
}

// SetTeams injects the team lookup used during removal fan-out.
// Called once at wiring time, after the team registry exists.
//
// Precondition: teams must be non-nil.
func (r *Registry) SetTeams(teams TeamLookup) {
	r.teams = teams
}

// InsertOrUpdate registers a session for id, overwriting any prior session
// with fresh data, and cancels any pending removal for the same id.
//
// Postcondition: On success, reports whether this id was previously unknown
// (first login) and a login activity record has been appended. On
// ErrNameTooLong no state is mutated.
func (r *Registry) InsertOrUpdate(ctx context.Context, id ID, name string, zone ZoneID, muteExpiry time.Time, privilegeLevel int32, linkID string) (bool, error) {
	if len(name) > r.maxNameBytes {
		r.logger.Warn("rejecting oversized player name, probably a forged message",
			zap.Uint64("player_id", uint64(id)),
			zap.Int("name_bytes", len(name)),
		)
		return false, ErrNameTooLong
	}

	_, known := r.sessions[id]
	sess := &Session{
		ID:             id,
		Name:           name,
		Zone:           zone,
		MuteExpiry:     muteExpiry,
		PrivilegeLevel: privilegeLevel,
		LinkID:         linkID,
		IsFirstLogin:   !known,
	}
	r.sessions[id] = sess
	r.names[id] = name

	delete(r.pending, id)

	r.logger.Info("added player",
		zap.Uint64("player_id", uint64(id)),
		zap.String("name", name),
		zap.Uint32("zone", uint32(zone)),
		zap.Bool("first_login", sess.IsFirstLogin),
	)

	if err := r.activity.Append(ctx, id, ActivityLoggedIn, zone); err != nil {
		r.logger.Warn("appending login activity record", zap.Error(err))
	}

	return sess.IsFirstLogin, nil
}

// Remove deletes the session for id after fanning out departure notices:
// each online friend learns the player went offline, and every online member
// of the player's team (the departing player included, since their session is
// still present at fan-out time) receives an off-world status change. Team
// membership itself is untouched; this models the world connection going
// down, not the player leaving the team.
//
// Postcondition: The session is gone and a logout activity record has been
// appended, or ErrNotFound if id was unknown (no-op).
func (r *Registry) Remove(ctx context.Context, id ID) error {
	sess, ok := r.sessions[id]
	if !ok {
		r.logger.Warn("removing unknown player", zap.Uint64("player_id", uint64(id)))
		return ErrNotFound
	}

	for _, fr := range sess.Friends {
		if _, online := r.sessions[fr.ID]; online {
			r.notifier.SendFriendStatus(fr.ID, id, sess.Name, false, fr.IsBest)
		}
	}

	if r.teams != nil {
		for _, memberID := range r.teams.TeammatesOf(id) {
			if _, online := r.sessions[memberID]; online {
				r.notifier.SendTeamOffWorldFlag(memberID, id)
			}
		}
	}

	delete(r.sessions, id)
	r.logger.Info("removed player", zap.Uint64("player_id", uint64(id)))

	if err := r.activity.Append(ctx, id, ActivityLoggedOut, sess.Zone); err != nil {
		r.logger.Warn("appending logout activity record", zap.Error(err))
	}
	return nil
}

// SetMuteExpiry updates a session's mute expiry and broadcasts the change to
// all world servers.
//
// Postcondition: Returns ErrNotFound (no-op) if id is unknown.
func (r *Registry) SetMuteExpiry(id ID, expiry time.Time) error {
	sess, ok := r.sessions[id]
	if !ok {
		r.logger.Debug("mute update for unknown player", zap.Uint64("player_id", uint64(id)))
		return ErrNotFound
	}

	sess.MuteExpiry = expiry
	r.notifier.BroadcastMuteUpdate(id, expiry)
	return nil
}

// Lookup returns the session for id. The empty sentinel id never resolves.
func (r *Registry) Lookup(id ID) (*Session, bool) {
	if id == EmptyID {
		return nil, false
	}
	sess, ok := r.sessions[id]
	return sess, ok
}

// LookupByName returns the session whose display name exactly matches name.
// Duplicate names are possible and not an error; the session with the lowest
// player id wins, which keeps the result deterministic.
func (r *Registry) LookupByName(name string) (*Session, bool) {
	var best *Session
	for _, sess := range r.sessions {
		if sess.Name != name {
			continue
		}
		if best == nil || sess.ID < best.ID {
			best = sess
		}
	}
	return best, best != nil
}

// Name returns the last known display name for id, even after the session is
// gone, or "" if the id was never seen.
func (r *Registry) Name(id ID) string {
	return r.names[id]
}

// IDByName returns the id last associated with name, or EmptyID.
// Like LookupByName, the lowest id wins on duplicates.
func (r *Registry) IDByName(name string) ID {
	found := EmptyID
	for id, n := range r.names {
		if n != name {
			continue
		}
		if found == EmptyID || id < found {
			found = id
		}
	}
	return found
}

// IDsOnLink returns every session owned by the given world-server link.
// Used when a link drops to schedule removal for its players.
func (r *Registry) IDsOnLink(linkID string) []ID {
	var ids []ID
	for id, sess := range r.sessions {
		if sess.LinkID == linkID {
			ids = append(ids, id)
		}
	}
	return ids
}

// Count returns the number of online sessions.
func (r *Registry) Count() int {
	return len(r.sessions)
}

// Shutdown flushes a logout activity record for every remaining session and
// empties the registry. Releasing teams is the hosting service's job.
func (r *Registry) Shutdown(ctx context.Context) {
	for id, sess := range r.sessions {
		if err := r.activity.Append(ctx, id, ActivityLoggedOut, sess.Zone); err != nil {
			r.logger.Warn("appending shutdown logout record",
				zap.Uint64("player_id", uint64(id)),
				zap.Error(err),
			)
		}
		delete(r.sessions, id)
	}
	r.logger.Info("session registry shut down")
}
