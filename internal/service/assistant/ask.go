package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Ask answers a question from the current syllabus documents and the recent
// turns of the session, then stores the question and the answer.
func (s *Service) Ask(ctx context.Context, in AskInput) (*AskResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if s.llm == nil {
		return nil, ErrDisabled
	}

	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var courseIDs []string
	if in.CourseID != nil {
		courseIDs = []string{strings.TrimSpace(*in.CourseID)}
	}
	docs, err := s.docs.CurrentDocuments(ctx, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("load syllabi: %w", err)
	}
	if len(courseIDs) > 0 && len(docs) == 0 {
		return nil, fmt.Errorf("syllabus %s: %w", courseIDs[0], domain.ErrNotFound)
	}

	syllabusContext, err := buildContext(docs, s.cfg.ContextChars)
	if err != nil {
		return nil, err
	}

	history, err := s.messages.ListBySession(ctx, sessionID, s.cfg.HistoryMessages)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	question := domain.ChatMessage{
		SessionID: sessionID,
		Role:      domain.MessageRoleUser,
		Content:   in.Message,
		CourseID:  in.CourseID,
	}
	turns := append(history, question)

	answer, err := s.llm.Complete(ctx, systemPrompt(syllabusContext), turns)
	if err != nil {
		return nil, fmt.Errorf("complete: %w", err)
	}

	result := &AskResult{SessionID: sessionID, Answer: answer}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		q, err := s.messages.Create(ctx, &question)
		if err != nil {
			return fmt.Errorf("store question: %w", err)
		}
		r, err := s.messages.Create(ctx, &domain.ChatMessage{
			SessionID: sessionID,
			Role:      domain.MessageRoleAssistant,
			Content:   answer,
			CourseID:  in.CourseID,
		})
		if err != nil {
			return fmt.Errorf("store answer: %w", err)
		}
		result.Question = *q
		result.Reply = *r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question answered",
		slog.String("session_id", sessionID),
		slog.Int("documents", len(docs)),
		slog.Int("history", len(history)),
	)
	return result, nil
}
