package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/chatd/internal/chat/player"
)

// ActivityEvent is one recorded login or logout.
type ActivityEvent struct {
	ID         int64
	PlayerID   player.ID
	Kind       player.ActivityKind
	ZoneID     player.ZoneID
	OccurredAt time.Time
}

// ActivityLogRepository persists presence transitions. It satisfies the
// player registry's ActivityLog port.
type ActivityLogRepository struct {
	db *pgxpool.Pool
}

// NewActivityLogRepository creates an ActivityLogRepository backed by the
// given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewActivityLogRepository(db *pgxpool.Pool) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Append records one presence transition for a player.
//
// Postcondition: A row exists in activity_log with OccurredAt set by the
// database, or a non-nil error is returned.
func (r *ActivityLogRepository) Append(ctx context.Context, id player.ID, kind player.ActivityKind, zone player.ZoneID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO activity_log (player_id, kind, zone_id) VALUES ($1, $2, $3)`,
		int64(id), string(kind), int64(zone),
	)
	if err != nil {
		return fmt.Errorf("inserting activity event: %w", err)
	}
	return nil
}

// EventsForPlayer returns a player's most recent presence transitions,
// newest first.
//
// Precondition: limit must be positive.
func (r *ActivityLogRepository) EventsForPlayer(ctx context.Context, id player.ID, limit int) ([]ActivityEvent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, player_id, kind, zone_id, occurred_at
		 FROM activity_log
		 WHERE player_id = $1
		 ORDER BY occurred_at DESC, id DESC
		 LIMIT $2`,
		int64(id), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying activity events: %w", err)
	}
	defer rows.Close()

	var events []ActivityEvent
	for rows.Next() {
		var (
			ev       ActivityEvent
			playerID int64
			kind     string
			zoneID   int64
		)
		if err := rows.Scan(&ev.ID, &playerID, &kind, &zoneID, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("scanning activity event: %w", err)
		}
		ev.PlayerID = player.ID(playerID)
		ev.Kind = player.ActivityKind(kind)
		ev.ZoneID = player.ZoneID(zoneID)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading activity events: %w", err)
	}
	return events, nil
}
