package player

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// ScheduleRemoval starts (or restarts) the logout grace timer for id.
// A reconnect via InsertOrUpdate before the timer elapses cancels it.
// The empty sentinel id is ignored.
func (r *Registry) ScheduleRemoval(id ID) {
	if id == EmptyID {
		return
	}
	r.pending[id] = r.gracePeriod
	r.logger.Debug("scheduled player removal",
		zap.Uint64("player_id", uint64(id)),
		zap.Duration("grace", r.gracePeriod),
	)
}

// CancelRemoval drops any pending removal for id.
func (r *Registry) CancelRemoval(id ID) {
	delete(r.pending, id)
}

// HasPendingRemoval reports whether id is awaiting confirmed disconnection.
func (r *Registry) HasPendingRemoval(id ID) bool {
	_, ok := r.pending[id]
	return ok
}

// PendingRemovalCount returns the number of scheduled removals.
func (r *Registry) PendingRemovalCount() int {
	return len(r.pending)
}

// Tick advances every grace timer by delta. Timers reaching zero trigger
// session removal exactly once and leave the schedule. Iteration order across
// simultaneously-expiring entries is unspecified.
//
// Precondition: delta must be positive. Tick must not run concurrently with
// any other registry operation.
func (r *Registry) Tick(ctx context.Context, delta time.Duration) {
	for id, remaining := range r.pending {
		remaining -= delta
		if remaining > 0 {
			r.pending[id] = remaining
			continue
		}
		delete(r.pending, id)
		if err := r.Remove(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
			r.logger.Warn("removing expired player",
				zap.Uint64("player_id", uint64(id)),
				zap.Error(err),
			)
		}
	}
}
