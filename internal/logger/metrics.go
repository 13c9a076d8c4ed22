package logger

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Per-step counters, keyed "backend/step". One backendctl invocation
// runs at most a handful of lifecycle steps; the counters exist so
// apply can report what each step cost.

type stepCounter struct {
	total     atomic.Int64
	failed    atomic.Int64
	latencyNS atomic.Int64
}

type StepStats struct {
	Total        int64
	Failed       int64
	AvgLatencyMs float64
}

var (
	stepMu       sync.Mutex
	stepCounters = make(map[string]*stepCounter)
)

func counterFor(backend, step string) *stepCounter {
	key := backend + "/" + step
	stepMu.Lock()
	defer stepMu.Unlock()
	c, ok := stepCounters[key]
	if !ok {
		c = &stepCounter{}
		stepCounters[key] = c
	}
	return c
}

func RecordStep(backend, step string, err error, duration time.Duration) {
	c := counterFor(backend, step)
	c.total.Add(1)
	c.latencyNS.Add(duration.Nanoseconds())
	if err != nil {
		c.failed.Add(1)
	}
}

func StepMetrics() map[string]StepStats {
	stepMu.Lock()
	defer stepMu.Unlock()

	result := make(map[string]StepStats, len(stepCounters))
	for key, c := range stepCounters {
		stats := StepStats{
			Total:  c.total.Load(),
			Failed: c.failed.Load(),
		}
		if stats.Total > 0 {
			stats.AvgLatencyMs = float64(c.latencyNS.Load()) / float64(stats.Total) / 1e6
		}
		result[key] = stats
	}
	return result
}

// TimedStep runs one lifecycle step, logs its outcome and records the
// step counters. The context logger is expected to already carry the
// backend and step fields (see WithStep).
func TimedStep(ctx context.Context, backend, step string, fn func() error) error {
	start := time.Now()
	log := FromContext(ctx)
	log.Debug("step starting")

	err := fn()
	duration := time.Since(start)

	RecordStep(backend, step, err, duration)

	if err != nil {
		log.Error("step failed", "error", err, "duration", duration)
	} else {
		log.Debug("step completed", "duration", duration)
	}
	return err
}
