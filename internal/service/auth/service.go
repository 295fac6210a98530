package auth

import (
	"log/slog"
	"time"

	"github.com/heartmarshall/syllabus-backend/internal/config"
)

// jwtManager defines the token operations needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(username string) (string, time.Time, error)
	ValidateAccessToken(token string) (string, error)
}

// Service implements admin authentication.
type Service struct {
	log *slog.Logger
	jwt jwtManager
	cfg config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log: logger.With("service", "auth"),
		jwt: jwt,
		cfg: cfg,
	}
}
