package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
)

// ErrListen is returned by FailingHTTPServer.
var ErrListen = errors.New("listen failure")

// StubHTTPServer satisfies the server package's httpServer seam.
// When Block is set, Shutdown waits for it to close or for ctx to expire.
type StubHTTPServer struct {
	Address     string
	Routes      http.Handler
	ListenErr   error
	ShutdownErr error
	Block       chan struct{}

	listens   atomic.Int32
	shutdowns atomic.Int32
}

// FailingHTTPServer returns a stub whose ListenAndServe fails immediately.
func FailingHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{ListenErr: ErrListen}
}

// ClosedHTTPServer returns a stub that reports a clean close from ListenAndServe.
func ClosedHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{ListenErr: http.ErrServerClosed}
}

// BlockingHTTPServer returns a stub whose Shutdown hangs until unblock closes.
func BlockingHTTPServer(unblock chan struct{}) *StubHTTPServer {
	return &StubHTTPServer{Block: unblock}
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.listens.Add(1)
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdowns.Add(1)
	if s.Block != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Block:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.Address == "" {
		return ":0"
	}
	return s.Address
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.Routes == nil {
		return http.NotFoundHandler()
	}
	return s.Routes
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int { return int(s.listens.Load()) }

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int { return int(s.shutdowns.Load()) }
