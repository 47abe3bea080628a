package dashboard

import "time"

const maxConsecutiveFailures = 3

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
	AutoRefresh         bool      `json:"autoRefresh"`
}

// IsReady reports whether the engine is not failing repeatedly.
// An engine that has not refreshed yet is ready to serve the setup flow.
func (s Status) IsReady() bool {
	return s.ConsecutiveFailures < maxConsecutiveFailures
}

func (e *Engine) recordAttempt(at time.Time) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.LastAttempt = at
}

func (e *Engine) recordSuccess(at time.Time) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.ConsecutiveFailures = 0
	e.status.LastError = ""
	e.status.LastSuccess = at
}

func (e *Engine) recordFailure(err error) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.ConsecutiveFailures++
	if err != nil {
		e.status.LastError = err.Error()
	}
}

// Status returns a snapshot of the engine's recent health.
func (e *Engine) Status() Status {
	e.statusMu.RLock()
	s := e.status
	e.statusMu.RUnlock()
	s.AutoRefresh = e.AutoRefreshing()
	return s
}
