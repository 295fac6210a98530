package assistant

import "github.com/heartmarshall/syllabus-backend/internal/domain"

// AskResult carries the answer and both stored turns.
type AskResult struct {
	SessionID string
	Answer    string
	Question  domain.ChatMessage
	Reply     domain.ChatMessage
}
