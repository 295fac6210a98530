package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	messagerepo "github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/message"
	syllabusrepo "github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/syllabus"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/syllabus-backend/internal/auth"
	"github.com/heartmarshall/syllabus-backend/internal/config"
	"github.com/heartmarshall/syllabus-backend/internal/schedule"
	"github.com/heartmarshall/syllabus-backend/internal/service/assistant"
	authsvc "github.com/heartmarshall/syllabus-backend/internal/service/auth"
	"github.com/heartmarshall/syllabus-backend/internal/service/syllabus"
	"github.com/heartmarshall/syllabus-backend/internal/transport/middleware"
	"github.com/heartmarshall/syllabus-backend/internal/transport/rest"
	"github.com/heartmarshall/syllabus-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := checkMigrations(ctx, pool, cfg.Database.AutoMigrate, logger); err != nil {
		return err
	}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	syllabi := syllabusrepo.New(pool)
	messages := messagerepo.New(pool)

	// Services.
	compiler := schedule.NewCompiler(logger, schedule.Config{
		Workers:         cfg.Compiler.Workers,
		DetectionWindow: cfg.Compiler.DetectionWindow,
	})
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, jwtMgr, cfg.Auth)
	syllabusService := syllabus.NewService(logger, syllabi, compiler, txm, cfg.Compiler.ReferenceYear)

	var assistantService *assistant.Service
	if cfg.LLM.Enabled() {
		assistantService = assistant.NewService(logger, messages, syllabi, llm.New(cfg.LLM, logger), txm, cfg.LLM)
	} else {
		logger.Warn("llm api key not set, assistant disabled")
		assistantService = assistant.NewService(logger, messages, syllabi, nil, txm, cfg.LLM)
	}
	if !cfg.Auth.AdminLoginEnabled() {
		logger.Warn("admin password hash not set, admin login disabled")
	}

	// HTTP.
	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterConfig{
		Health:    rest.NewHealthHandler(pool, Version, cfg.LLM.Enabled()),
		Schedule:  rest.NewScheduleHandler(compiler, cfg.Compiler.ReferenceYear, cfg.Server.MaxBodyBytes, logger),
		Syllabus:  rest.NewSyllabusHandler(syllabusService, cfg.Compiler.Location(), cfg.Server.MaxBodyBytes, logger),
		Chat:      rest.NewChatHandler(assistantService, logger),
		Auth:      rest.NewAuthHandler(authService, logger),
		Tokens:    authService,
		Limiter:   limiter,
		RateLimit: cfg.RateLimit,
		CORS:      cfg.CORS,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errCh
}

// checkMigrations applies pending migrations when autoMigrate is set and
// refuses to start on a schema that is behind otherwise.
func checkMigrations(ctx context.Context, pool *pgxpool.Pool, autoMigrate bool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}

	if autoMigrate {
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		for _, r := range results {
			logger.Info("migration applied",
				slog.String("source", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
		return nil
	}

	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("check migrations: %w", err)
	}
	if pending {
		return errors.New("database schema is behind: run `migrate up` or set DATABASE_AUTO_MIGRATE=true")
	}
	return nil
}
