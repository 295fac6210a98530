package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/auth"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Login checks the admin credentials against the configured username and
// bcrypt hash. Returns ErrUnauthorized on any mismatch or when admin login
// is not configured.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !s.cfg.AdminLoginEnabled() {
		s.log.WarnContext(ctx, "admin login attempted but no password hash is configured")
		return nil, domain.ErrUnauthorized
	}

	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.cfg.AdminUsername)) == 1
	passOK := auth.CheckPassword(s.cfg.AdminPasswordHash, input.Password)
	if !userOK || !passOK {
		s.log.InfoContext(ctx, "admin login rejected", slog.String("username", input.Username))
		return nil, domain.ErrUnauthorized
	}

	token, expires, err := s.jwt.GenerateAccessToken(input.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in", slog.String("username", input.Username))

	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   expires,
		Username:    input.Username,
	}, nil
}

// ValidateToken returns the admin username carried by a valid access token.
func (s *Service) ValidateToken(_ context.Context, token string) (string, error) {
	username, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return username, nil
}
