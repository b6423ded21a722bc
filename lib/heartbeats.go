package lib

import (
	"log/slog"
	"sync"
	"time"
)

// Heartbeats periodically logs that a long running step is still in progress.
type Heartbeats struct {
	log *slog.Logger
	// [initialDelay] - The time to wait before the first heartbeat.
	initialDelay time.Duration
	// [interval] - The time between heartbeats after the first one.
	interval  time.Duration
	operation string
}

func NewHeartbeats(log *slog.Logger, initialDelay, interval time.Duration, operation string) *Heartbeats {
	return &Heartbeats{
		log:          log,
		initialDelay: initialDelay,
		interval:     interval,
		operation:    operation,
	}
}

// Start returns a function that stops the heartbeats, it blocks until the last heartbeat has been logged.
func (h *Heartbeats) Start() func() {
	startTime := time.Now()
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.run(startTime, done)
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}

func (h *Heartbeats) run(startTime time.Time, done <-chan struct{}) {
	timer := time.NewTimer(h.initialDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-done:
		return
	}

	h.beat(startTime)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			h.beat(startTime)
		}
	}
}

func (h *Heartbeats) beat(startTime time.Time) {
	h.log.Info("Still running", slog.String("operation", h.operation), slog.Duration("duration", time.Since(startTime)))
}
