package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/syllabus-backend/internal/config"
	"github.com/heartmarshall/syllabus-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// RouterConfig holds everything NewRouter wires together.
type RouterConfig struct {
	Health   *HealthHandler
	Schedule *ScheduleHandler
	Syllabus *SyllabusHandler
	Chat     *ChatHandler
	Auth     *AuthHandler

	Tokens    tokenValidator
	Limiter   *middleware.RateLimiter
	RateLimit config.RateLimitConfig
	CORS      config.CORSConfig
	Logger    *slog.Logger
}

// NewRouter builds the HTTP handler: public routes, rate-limited chat and
// login, and admin routes behind a bearer token.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", cfg.Health.Live)
	mux.HandleFunc("GET /ready", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)

	mux.HandleFunc("POST /api/v1/schedule/compile", cfg.Schedule.Compile)

	mux.HandleFunc("GET /api/v1/syllabi", cfg.Syllabus.List)
	mux.HandleFunc("GET /api/v1/syllabi/{id}", cfg.Syllabus.Get)
	mux.HandleFunc("GET /api/v1/syllabi/{id}/versions", cfg.Syllabus.Versions)
	mux.HandleFunc("GET /api/v1/syllabi/{id}/diff", cfg.Syllabus.Diff)
	mux.HandleFunc("GET /api/v1/syllabi/{id}/calendar.ics", cfg.Syllabus.Calendar)

	chatLimit := cfg.Limiter.Limit("chat", cfg.RateLimit.ChatPerMinute)
	loginLimit := cfg.Limiter.Limit("login", cfg.RateLimit.LoginPerMinute)
	mux.Handle("POST /api/v1/chat/message", chatLimit(http.HandlerFunc(cfg.Chat.Message)))
	mux.Handle("POST /api/v1/admin/login", loginLimit(http.HandlerFunc(cfg.Auth.Login)))

	admin := func(h http.HandlerFunc) http.Handler { return middleware.RequireAdmin(h) }
	mux.Handle("POST /api/v1/admin/syllabi/import", admin(cfg.Syllabus.Import))
	mux.Handle("PUT /api/v1/admin/syllabi/{id}", admin(cfg.Syllabus.Update))
	mux.Handle("GET /api/v1/admin/conversations", admin(cfg.Chat.Sessions))
	mux.Handle("GET /api/v1/admin/conversations/{session}", admin(cfg.Chat.Conversation))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(cfg.Tokens),
	)(mux)
}
