package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DefaultContextWindow is the number of recent messages primed into the
// generation prompt when no explicit window is configured.
const DefaultContextWindow = 6

type ChatMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"size:100;not null;index:idx_chat_memory_session_id;column:session_id" json:"session_id"`
	Role      Role      `gorm:"size:20;not null;column:role" json:"role"`
	Message   string    `gorm:"type:text;not null;column:message" json:"message"`
	Timestamp time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;column:timestamp" json:"timestamp"`
}

func (ChatMessage) TableName() string { return "chat_memory" }

// NewChatMessage validates and builds an unpersisted message, stamping it
// with the current UTC time.
func NewChatMessage(sessionID string, role Role, message string) (*ChatMessage, error) {
	m := &ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChatMessage) Validate() error {
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return &ValidationError{Reason: "role must be 'user' or 'assistant'"}
	}
	if strings.TrimSpace(m.Message) == "" {
		return &ValidationError{Reason: "message cannot be empty"}
	}
	if strings.TrimSpace(m.SessionID) == "" {
		return &ValidationError{Reason: "session_id cannot be empty"}
	}
	return nil
}

func (m *ChatMessage) IsFromUser() bool      { return m.Role == RoleUser }
func (m *ChatMessage) IsFromAssistant() bool { return m.Role == RoleAssistant }

// ChatContext is an ephemeral view over a session's messages, bounded to
// the most recent MaxMessages. Messages must be chronological
// (oldest first); Recent preserves that order.
type ChatContext struct {
	Messages    []*ChatMessage
	MaxMessages int
}

func NewChatContext(messages []*ChatMessage, maxMessages int) *ChatContext {
	if maxMessages <= 0 {
		maxMessages = DefaultContextWindow
	}
	return &ChatContext{Messages: messages, MaxMessages: maxMessages}
}

func (c *ChatContext) Recent() []*ChatMessage {
	if len(c.Messages) <= c.MaxMessages {
		return c.Messages
	}
	return c.Messages[len(c.Messages)-c.MaxMessages:]
}

// roleDisplay maps the internal role enum onto the labels the prompt
// template expects. The labels are Spanish because the instruction
// template the generator embeds this transcript into is Spanish.
func roleDisplay(r Role) string {
	switch r {
	case RoleUser:
		return "Usuario"
	case RoleAssistant:
		return "Asistente"
	default:
		return string(r)
	}
}

// FormatForPrompt renders the recent window as "<Rol>: <message>" lines,
// oldest first, newline joined. An empty context yields an empty string.
// Prompt templates depend on this exact byte layout.
func (c *ChatContext) FormatForPrompt() string {
	recent := c.Recent()
	if len(recent) == 0 {
		return ""
	}
	lines := make([]string, 0, len(recent))
	for _, m := range recent {
		lines = append(lines, roleDisplay(m.Role)+": "+m.Message)
	}
	return strings.Join(lines, "\n")
}
