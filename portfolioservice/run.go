package portfolioservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lionetto/portfolio-server/internal/api"
	"github.com/lionetto/portfolio-server/internal/assistant"
	"github.com/lionetto/portfolio-server/internal/auth"
	"github.com/lionetto/portfolio-server/internal/blob"
	"github.com/lionetto/portfolio-server/internal/config"
	"github.com/lionetto/portfolio-server/internal/events"
	"github.com/lionetto/portfolio-server/internal/factory"
	"github.com/lionetto/portfolio-server/internal/logger"
	"github.com/lionetto/portfolio-server/internal/services"
	storepkg "github.com/lionetto/portfolio-server/internal/store"
)

// Run starts the portfolio HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("portfolio-server")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("store_driver", cfg.StoreDriver).
		Int("http_port", cfg.HTTPPort).
		Str("uploads_dir", cfg.UploadsDir).
		Str("gemini_model", cfg.GeminiModel).
		Msg("Portfolio server starting")

	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("PORTFOLIO_GEMINI_API_KEY not set; assistant replies fall back to the apology message")
	}

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	st, blobs, err := initDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}

	router := buildRouter(st, blobs, cfg, log)

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// initDependencies constructs the store and blob layer, seeding defaults on
// first boot, and enforces fail-fast on missing deps.
func initDependencies(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, blob.Store, error) {
	st, err := factory.NewStore(ctx, cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return nil, nil, err
	}

	if err := factory.EnsureSeeded(ctx, st, log); err != nil {
		log.Error().Stack().Err(err).Msg("Failed to seed default documents")
		return nil, nil, err
	}

	blobs, err := blob.NewDiskStore(cfg.UploadsDir)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Uploads directory unavailable")
		return nil, nil, err
	}
	return st, blobs, nil
}

// buildRouter wires services and handlers onto the HTTP router.
func buildRouter(st storepkg.Store, blobs blob.Store, cfg *config.Config, log zerolog.Logger) http.Handler {
	bus := events.NewBus(cfg.EventBuffer)
	gate := auth.NewStatic(cfg.AdminPassword)

	content := services.NewContentService(st, gate, blobs, bus, log)
	gallery := services.NewGalleryService(st, gate, blobs, bus, log)

	gemini := assistant.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)
	sessions := assistant.NewSessions(gemini)

	return api.NewRouter(content, gallery, gate, sessions, bus, cfg.UploadsDir)
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		// No write deadline: /api/events holds its response open for the
		// lifetime of the subscriber.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
