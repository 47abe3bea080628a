package testutil

import (
	"testing"

	"sportsbase/internal/metrics"
)

// AssertCacheLookups verifies the team cache hit and miss counts recorded for a league.
func AssertCacheLookups(t *testing.T, rec *metrics.Recorder, league string, hits, misses int) {
	t.Helper()
	snap := rec.Snapshot(league)
	if snap.CacheHits != hits || snap.CacheMisses != misses {
		t.Fatalf("expected %d cache hits and %d misses for %s, got %+v", hits, misses, league, snap)
	}
}
