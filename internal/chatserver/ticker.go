package chatserver

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Ticker advances the service's pending-removal schedule at a fixed
// interval. It implements the server lifecycle Service interface.
type Ticker struct {
	service  *Service
	interval time.Duration
	logger   *zap.Logger
	done     chan struct{}
	once     sync.Once
}

// NewTicker creates a stopped Ticker.
//
// Precondition: service and logger must be non-nil; interval must be positive.
func NewTicker(service *Service, interval time.Duration, logger *zap.Logger) *Ticker {
	return &Ticker{
		service:  service,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start runs the tick loop until Stop is called. It always returns nil.
func (t *Ticker) Start() error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.logger.Info("removal ticker started", zap.Duration("interval", t.interval))
	for {
		select {
		case <-ticker.C:
			t.service.Tick(context.Background(), t.interval)
		case <-t.done:
			return nil
		}
	}
}

// Stop halts the tick loop. Idempotent.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.done) })
}
