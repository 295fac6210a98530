package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// History returns the messages of one session in chronological order.
func (s *Service) History(ctx context.Context, in HistoryInput) ([]domain.ChatMessage, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	sessionID := strings.TrimSpace(in.SessionID)
	msgs, err := s.messages.ListBySession(ctx, sessionID, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return msgs, nil
}

// ListSessions returns conversation summaries, most recently active first.
func (s *Service) ListSessions(ctx context.Context, in SessionsInput) ([]domain.ChatSession, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	sessions, err := s.messages.ListSessions(ctx, in.Limit, in.Offset)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
