package memory

import (
	"context"
	"strings"

	"ticker-chat-be/internal/entity"
)

// Store keeps conversation turns keyed by conversation id. All
// implementations must be safe for concurrent use; the original design of a
// single unkeyed buffer shared across requests is deliberately not supported.
type Store interface {
	// Load returns the turns recorded for a conversation, oldest first.
	// Unknown conversations yield an empty slice, not an error.
	Load(ctx context.Context, conversationID string) ([]entity.ConversationTurn, error)
	// Append records one completed turn. Callers must only append after a
	// successful generation.
	Append(ctx context.Context, conversationID string, turn entity.ConversationTurn) error
}

// RenderHistory serializes turns into the text block the prompt template
// expects. Growth is unbounded within a conversation's lifetime; that is an
// accepted limitation of the buffer-memory design.
func RenderHistory(turns []entity.ConversationTurn) string {
	if len(turns) == 0 {
		return ""
	}

	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Human: ")
		b.WriteString(turn.Question)
		b.WriteString("\nAI: ")
		b.WriteString(turn.Answer)
	}
	return b.String()
}
