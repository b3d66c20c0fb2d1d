package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const tickInterval = 1 * time.Second

// TickManager drives the AI tick for every registered NPC controller on a
// single fixed-rate ticker, shared across the whole monster population
// rather than one goroutine per NPC.
type TickManager struct {
	controllers     sync.Map // objectID -> Controller
	ticker          *time.Ticker
	stopCh          chan struct{}
	controllerCount atomic.Int32 // mirrors len(controllers) without a Range scan
	lastTickNanos   atomic.Int64 // wall-clock duration of the most recent tickAll
}

// NewTickManager creates an empty AI tick manager.
func NewTickManager() *TickManager {
	return &TickManager{
		stopCh: make(chan struct{}),
	}
}

// Register adds an AI controller for objectID and starts it immediately.
func (m *TickManager) Register(objectID uint32, controller Controller) {
	m.controllers.Store(objectID, controller)
	m.controllerCount.Add(1)
	controller.Start()

	slog.Debug("AI controller registered", "objectID", objectID, "intention", controller.CurrentIntention())
}

// Unregister removes and stops the AI controller for objectID, if any.
func (m *TickManager) Unregister(objectID uint32) {
	value, ok := m.controllers.LoadAndDelete(objectID)
	if !ok {
		return
	}
	m.controllerCount.Add(-1)

	value.(Controller).Stop()
	slog.Debug("AI controller unregistered", "objectID", objectID)
}

// Start runs the tick loop until ctx is canceled or Stop is called.
func (m *TickManager) Start(ctx context.Context) error {
	m.ticker = time.NewTicker(tickInterval)
	defer m.ticker.Stop()

	slog.Info("AI tick manager started", "interval", tickInterval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("AI tick manager stopping")
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("AI tick manager stopped")
			return nil

		case <-m.ticker.C:
			m.tickAll()
		}
	}
}

// Stop ends the tick loop; Start returns nil shortly after.
func (m *TickManager) Stop() {
	close(m.stopCh)
}

// tickAll calls Tick on every registered controller and records how long
// the pass took, so a slowing AI population shows up in LastTickDuration
// before it shows up as dropped frames elsewhere.
func (m *TickManager) tickAll() {
	started := time.Now()
	count := 0

	m.controllers.Range(func(_, value any) bool {
		value.(Controller).Tick()
		count++
		return true
	})

	m.lastTickNanos.Store(int64(time.Since(started)))
	if count > 0 && IsDebugEnabled() {
		slog.Debug("AI tick completed", "controllers", count, "duration", time.Since(started))
	}
}

// Count returns the number of registered controllers. Backed by an atomic
// counter so it stays O(1) instead of ranging the underlying sync.Map.
func (m *TickManager) Count() int {
	return int(m.controllerCount.Load())
}

// LastTickDuration reports how long the most recently completed tick pass
// took to run across all registered controllers.
func (m *TickManager) LastTickDuration() time.Duration {
	return time.Duration(m.lastTickNanos.Load())
}

// GetController returns the controller registered for objectID.
func (m *TickManager) GetController(objectID uint32) (Controller, error) {
	value, ok := m.controllers.Load(objectID)
	if !ok {
		return nil, fmt.Errorf("controller not found for objectID %d", objectID)
	}
	return value.(Controller), nil
}
