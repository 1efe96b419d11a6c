// Package app wires configuration, storage, services, and the HTTP
// server into a running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashdeck/internal/adapter/localstore"
	"github.com/heartmarshall/flashdeck/internal/adapter/postgres"
	pgprogress "github.com/heartmarshall/flashdeck/internal/adapter/postgres/progress"
	"github.com/heartmarshall/flashdeck/internal/adapter/provider/sampledeck"
	"github.com/heartmarshall/flashdeck/internal/adapter/speech"
	"github.com/heartmarshall/flashdeck/internal/config"
	"github.com/heartmarshall/flashdeck/internal/domain"
	"github.com/heartmarshall/flashdeck/internal/service/progress"
	"github.com/heartmarshall/flashdeck/internal/service/study"
	"github.com/heartmarshall/flashdeck/internal/transport/middleware"
	"github.com/heartmarshall/flashdeck/internal/transport/rest"
)

// progressRepository is the storage surface the progress service needs,
// satisfied by both the file and postgres adapters.
type progressRepository interface {
	Load(ctx context.Context) (domain.ProgressState, error)
	SaveRating(ctx context.Context, cardID string, rec domain.RatingRecord) error
	SaveVoice(ctx context.Context, voiceURI string) error
	Reset(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, wires
// the storage backend, services, and HTTP transport, and serves until
// the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage_backend", cfg.Storage.Backend),
	)

	// Storage backend.
	var (
		progressRepo progressRepository
		pool         *pgxpool.Pool
	)
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		pool, err = postgres.NewPool(ctx, cfg.Storage.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, cfg.Storage.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		progressRepo = pgprogress.New(pool)
	default:
		progressRepo, err = localstore.NewProgressRepo(cfg.Storage.Dir)
		if err != nil {
			return fmt.Errorf("open progress store: %w", err)
		}
	}

	// Theme preference is always file-backed.
	themeStore, err := localstore.NewThemeStore(cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("open theme store: %w", err)
	}

	// Services.
	progressSvc := progress.NewService(logger, progressRepo)
	if err := progressSvc.Load(ctx); err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	engine := speech.NewEngine(cfg.Speech, logger)
	samples := sampledeck.NewFetcher(cfg.Deck, logger)

	studySvc := study.NewService(logger, progressSvc, engine, samples, cfg.Study.FilterDebounce)
	defer studySvc.Close()

	// HTTP transport.
	mux := http.NewServeMux()

	// A typed nil pool inside the handler's interface would defeat its
	// nil check, so the file backend passes an untyped nil.
	healthHandler := rest.NewHealthHandler(nil, BuildVersion())
	if pool != nil {
		healthHandler = rest.NewHealthHandler(pool, BuildVersion())
	}
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	deckHandler := rest.NewDeckHandler(studySvc, cfg.Deck.MaxImportBytes, logger)
	mux.HandleFunc("POST /api/deck", deckHandler.Import)
	mux.HandleFunc("POST /api/deck/sample", deckHandler.Sample)

	studyHandler := rest.NewStudyHandler(studySvc, logger)
	mux.HandleFunc("GET /api/session", studyHandler.Get)
	mux.HandleFunc("POST /api/session/flip", studyHandler.Flip)
	mux.HandleFunc("POST /api/session/move", studyHandler.Move)
	mux.HandleFunc("POST /api/session/rate", studyHandler.Rate)
	mux.HandleFunc("GET /api/session/options", studyHandler.GetOptions)
	mux.HandleFunc("PUT /api/session/options", studyHandler.SetOptions)
	mux.HandleFunc("GET /api/stats", studyHandler.Stats)

	progressHandler := rest.NewProgressHandler(progressSvc, logger)
	mux.HandleFunc("GET /api/progress/export", progressHandler.Export)
	mux.HandleFunc("POST /api/progress/reset", progressHandler.Reset)

	speechHandler := rest.NewSpeechHandler(engine, progressSvc, studySvc, logger)
	mux.HandleFunc("GET /api/speech/voices", speechHandler.Voices)
	mux.HandleFunc("PUT /api/speech/voice", speechHandler.SetVoice)
	mux.HandleFunc("POST /api/speech/speak", speechHandler.Speak)

	themeHandler := rest.NewThemeHandler(themeStore, logger)
	mux.HandleFunc("GET /api/theme", themeHandler.Get)
	mux.HandleFunc("PUT /api/theme", themeHandler.Set)
	mux.HandleFunc("POST /api/theme/toggle", themeHandler.Toggle)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
