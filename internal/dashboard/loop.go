package dashboard

import (
	"context"
	"log/slog"
	"time"

	"sportsbase/internal/logging"
)

// StartAutoRefresh starts a ticker-driven refresh loop, replacing any running loop.
// The loop outlives ctx's cancellation but keeps its values; only
// StopAutoRefresh ends it. Nothing starts when no league is selected.
func (e *Engine) StartAutoRefresh(ctx context.Context) {
	e.loopMu.Lock()
	defer e.loopMu.Unlock()

	e.stopLoopLocked()
	if !e.Preferences().HasLeagues() {
		return
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	e.cancel = cancel
	e.loopDone = done

	logging.Info(e.logger, "auto refresh started", slog.Int64(logging.FieldDurationMS, e.interval.Milliseconds()))
	go e.loop(loopCtx, done)
}

// StopAutoRefresh cancels the loop and waits for it to exit, so no tick fires
// after it returns. It is safe to call when nothing is running.
func (e *Engine) StopAutoRefresh() {
	e.loopMu.Lock()
	defer e.loopMu.Unlock()
	e.stopLoopLocked()
}

// AutoRefreshing reports whether the loop is running.
func (e *Engine) AutoRefreshing() bool {
	e.loopMu.Lock()
	defer e.loopMu.Unlock()
	return e.cancel != nil
}

// Stop ends the refresh loop, giving up on the wait when ctx ends first.
// The loop is still canceled in that case and exits once its cycle returns.
func (e *Engine) Stop(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		e.StopAutoRefresh()
		close(stopped)
	}()
	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info(e.logger, "auto refresh stopped")
			return
		case <-ticker.C:
			e.Refresh(ctx)
		}
	}
}

func (e *Engine) stopLoopLocked() {
	if e.cancel == nil {
		return
	}
	e.cancel()
	<-e.loopDone
	e.cancel = nil
	e.loopDone = nil
}
