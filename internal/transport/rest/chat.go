package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/service/assistant"
)

type assistantService interface {
	Ask(ctx context.Context, input assistant.AskInput) (*assistant.AskResult, error)
	History(ctx context.Context, input assistant.HistoryInput) ([]domain.ChatMessage, error)
	ListSessions(ctx context.Context, input assistant.SessionsInput) ([]domain.ChatSession, error)
}

// ChatHandler serves the public assistant endpoint and the admin
// conversation log.
type ChatHandler struct {
	svc assistantService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc assistantService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type chatRequest struct {
	SessionID string  `json:"session_id"`
	Message   string  `json:"message"`
	CourseID  *string `json:"course_id"`
}

type chatResponse struct {
	SessionID string    `json:"session_id"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CourseID  *string   `json:"course_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	SessionID     string    `json:"session_id"`
	MessageCount  int       `json:"message_count"`
	LastMessageAt time.Time `json:"last_message_at"`
}

// Message handles POST /api/v1/chat/message.
func (h *ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, 64<<10, &req) {
		return
	}

	result, err := h.svc.Ask(r.Context(), assistant.AskInput{
		SessionID: req.SessionID,
		Message:   req.Message,
		CourseID:  req.CourseID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		SessionID: result.SessionID,
		Answer:    result.Answer,
		CreatedAt: result.Reply.CreatedAt,
	})
}

// Sessions handles GET /api/v1/admin/conversations?limit=&offset=.
func (h *ChatHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sessions, err := h.svc.ListSessions(r.Context(), assistant.SessionsInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, sessionResponse{
			SessionID:     s.SessionID,
			MessageCount:  s.MessageCount,
			LastMessageAt: s.LastMessageAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Conversation handles GET /api/v1/admin/conversations/{session}.
func (h *ChatHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msgs, err := h.svc.History(r.Context(), assistant.HistoryInput{
		SessionID: r.PathValue("session"),
		Limit:     limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageResponse{
			ID:        m.ID.String(),
			Role:      m.Role.String(),
			Content:   m.Content,
			CourseID:  m.CourseID,
			CreatedAt: m.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
