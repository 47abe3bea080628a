package server

import (
	"context"
	"log/slog"
	"net/http"

	"sportsbase/internal/catalog"
	"sportsbase/internal/config"
	"sportsbase/internal/dashboard"
	httpserver "sportsbase/internal/http"
	"sportsbase/internal/http/handlers"
	"sportsbase/internal/logging"
	"sportsbase/internal/metrics"
	"sportsbase/internal/preferences"
	"sportsbase/internal/providers"
	"sportsbase/internal/session"
	"sportsbase/internal/storage"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	catalog       *catalog.Catalog
	blobs         storage.BlobStore
	teamCache     *providers.TeamCache
	session       Starter
	engine        Refresher
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider, storage and catalog.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ScoresProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.ScoresProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	cat := buildCatalog(cfg.CatalogFile, logger)
	cache := newProviderFactory(logger, recorder).build(cfg, provider)
	blobs := buildStorage(context.Background(), cfg.Storage, logger)
	store := preferences.NewStore(blobs, cat, cfg.Storage.Prefix, logger)
	engine := dashboard.New(cache, cat, logger, recorder, dashboard.Config{
		Interval: cfg.RefreshInterval,
		Location: cfg.Location(),
	})
	sess := session.New(cat, store, cache, engine, logger)
	httpSrv := buildHTTPServer(cfg, cat, sess, engine, cache, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		catalog:       cat,
		blobs:         blobs,
		teamCache:     cache,
		session:       sess,
		engine:        engine,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, sess Starter, engine Refresher) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		session:    sess,
		engine:     engine,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, cat *catalog.Catalog, sess *session.Session, engine *dashboard.Engine, cache *providers.TeamCache, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(sess, cat, logger, engine.Status)
	var admin *handlers.AdminHandler
	// Admin routes are only mounted when a token is configured.
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(cache, cat, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:     handler,
		Admin:       admin,
		Logger:      logger,
		Recorder:    recorder,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run hydrates the session and starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.session != nil {
		view := s.session.Start(ctx)
		logging.Info(s.logger, "session started", slog.String("step", string(view.Step)))
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.session != nil {
		s.session.Close()
	}
	if s.engine != nil {
		if err := s.engine.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop dashboard refresh", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if err := storage.Close(s.blobs); err != nil {
		logging.Warn(s.logger, "preference storage close failed", "error", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		mux := http.NewServeMux()
		mux.Handle(path, handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Status reports the dashboard refresh health.
func (s *Server) Status() dashboard.Status {
	if s.engine == nil {
		return dashboard.Status{}
	}
	return s.engine.Status()
}
