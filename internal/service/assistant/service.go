package assistant

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/syllabus-backend/internal/config"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// ErrDisabled is returned by Ask when no language model is configured.
var ErrDisabled = errors.New("assistant disabled")

type completer interface {
	Complete(ctx context.Context, system string, turns []domain.ChatMessage) (string, error)
}

type messageRepo interface {
	Create(ctx context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error)
	ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error)
	ListSessions(ctx context.Context, limit, offset int) ([]domain.ChatSession, error)
}

type documentSource interface {
	CurrentDocuments(ctx context.Context, courseIDs []string) ([]domain.CourseDocument, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service answers questions about stored syllabi and keeps the conversation log.
type Service struct {
	messages messageRepo
	docs     documentSource
	llm      completer
	tx       txManager
	cfg      config.LLMConfig
	log      *slog.Logger
}

// NewService creates a new assistant service. A nil llm disables Ask while
// the conversation log stays readable.
func NewService(
	log *slog.Logger,
	messages messageRepo,
	docs documentSource,
	llm completer,
	tx txManager,
	cfg config.LLMConfig,
) *Service {
	return &Service{
		messages: messages,
		docs:     docs,
		llm:      llm,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "assistant"),
	}
}
