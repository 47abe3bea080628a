package server

import (
	"context"

	"sportsbase/internal/dashboard"
	"sportsbase/internal/session"
)

// Refresher is the dashboard engine behavior the server manages across its lifecycle.
type Refresher interface {
	Stop(ctx context.Context) error
	Status() dashboard.Status
}

// Starter hydrates stored preferences and opens the dashboard when any exist.
type Starter interface {
	Start(ctx context.Context) session.SetupView
	Close()
}
