// Package message stores assistant conversations in PostgreSQL.
package message

import (
	"context"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

var messageColumns = []string{"id", "session_id", "role", "content", "course_id", "created_at"}

// Repo provides chat message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a message and returns it with its id and timestamp.
func (r *Repo) Create(ctx context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error) {
	q := postgres.Builder.
		Insert("chat_messages").
		Columns("session_id", "role", "content", "course_id").
		Values(m.SessionID, string(m.Role), m.Content, m.CourseID).
		Suffix("RETURNING id, created_at")

	out := *m
	row := postgres.QueryRowBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err := row.Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "chat_message", m.SessionID)
	}
	return &out, nil
}

// ListBySession returns the last limit messages of a session in
// chronological order. A limit of 0 returns the whole session.
func (r *Repo) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	q := postgres.Builder.
		Select(messageColumns...).
		From("chat_messages").
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	result := []domain.ChatMessage{}
	for rows.Next() {
		var (
			m    domain.ChatMessage
			role string
		)
		if err := rows.Scan(&m.ID, &m.SessionID, &role, &m.Content, &m.CourseID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Role = domain.MessageRole(role)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	slices.Reverse(result)
	return result, nil
}

// ListSessions returns one summary per session, most recently active first.
func (r *Repo) ListSessions(ctx context.Context, limit, offset int) ([]domain.ChatSession, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	q := postgres.Builder.
		Select("session_id", "count(*)", "max(created_at)").
		From("chat_messages").
		GroupBy("session_id").
		OrderBy("max(created_at) DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	result := []domain.ChatSession{}
	for rows.Next() {
		var s domain.ChatSession
		if err := rows.Scan(&s.SessionID, &s.MessageCount, &s.LastMessageAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return result, nil
}

// DeleteOlderThan removes messages created before threshold and returns the
// number of deleted rows.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.Builder.
		Delete("chat_messages").
		Where(sq.Lt{"created_at": threshold})

	tag, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return 0, fmt.Errorf("delete old messages: %w", err)
	}
	return tag.RowsAffected(), nil
}
