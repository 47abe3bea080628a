package metrics

import (
	"sync"
	"time"
)

type fetchStats struct {
	calls           int
	errors          int
	cacheHits       int
	cacheMisses     int
	lastCallLatency time.Duration
}

type refreshStats struct {
	cycles        int
	failures      int
	skipped       int
	lastDuration  time.Duration
	lastFailedFor int
}

// Recorder captures lightweight, in-memory metrics about upstream fetches and refresh cycles.
// When built by Setup it also forwards every observation to OpenTelemetry instruments.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*fetchStats
	refresh refreshStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*fetchStats),
		otel:  otel,
	}
}

// RecordFetch increments counters for an upstream call for one league and stores the last observed latency.
func (r *Recorder) RecordFetch(league, resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(league)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(league, resource, duration, err)
	}
}

// RecordCacheLookup tracks whether a team list was served from the in-memory cache.
func (r *Recorder) RecordCacheLookup(league string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(league)
	if hit {
		stats.cacheHits++
	} else {
		stats.cacheMisses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(league, hit)
	}
}

// RecordRefreshCycle tracks a completed dashboard refresh. failed is the number of leagues that failed.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, failed int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.refresh.cycles++
	r.refresh.lastDuration = duration
	r.refresh.lastFailedFor = failed
	if err != nil {
		r.refresh.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefresh(duration, failed, err)
	}
}

// RecordRefreshSkipped tracks a trigger dropped because a cycle was already running.
func (r *Recorder) RecordRefreshSkipped() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.refresh.skipped++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefreshSkipped()
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// FetchCalls returns the total upstream attempts recorded for a league.
func (r *Recorder) FetchCalls(league string) int {
	return r.Snapshot(league).Calls
}

// FetchErrors returns the total failed upstream attempts recorded for a league.
func (r *Recorder) FetchErrors(league string) int {
	return r.Snapshot(league).Errors
}

// LastCallLatency returns the last recorded latency for a league's upstream call.
func (r *Recorder) LastCallLatency(league string) time.Duration {
	return r.Snapshot(league).LastCallLatency
}

// Snapshot returns a copy of the current stats for the league.
type Snapshot struct {
	Calls           int
	Errors          int
	CacheHits       int
	CacheMisses     int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(league string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[league]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		CacheHits:       stats.cacheHits,
		CacheMisses:     stats.cacheMisses,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RefreshSnapshot summarizes recorded refresh cycles.
type RefreshSnapshot struct {
	Cycles            int
	Failures          int
	Skipped           int
	LastDuration      time.Duration
	LastFailedLeagues int
}

func (r *Recorder) Refresh() RefreshSnapshot {
	if r == nil {
		return RefreshSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return RefreshSnapshot{
		Cycles:            r.refresh.cycles,
		Failures:          r.refresh.failures,
		Skipped:           r.refresh.skipped,
		LastDuration:      r.refresh.lastDuration,
		LastFailedLeagues: r.refresh.lastFailedFor,
	}
}

func (r *Recorder) ensureStatsLocked(league string) *fetchStats {
	stats, ok := r.stats[league]
	if !ok {
		stats = &fetchStats{}
		r.stats[league] = stats
	}
	return stats
}
