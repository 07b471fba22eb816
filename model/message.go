// Package model defines qq's provider-agnostic types: conversation
// messages and the Provider interface implemented by the provider package.
package model

import "time"

// Message roles. A conversation starts with exactly one system message,
// followed by alternating user/assistant messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents one turn in a conversation.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Conversation is an append-only ordered sequence of messages. Its
// lifetime is a single qq invocation.
type Conversation []Message

// NewConversation returns a conversation seeded with the system prompt.
func NewConversation(systemPrompt string) Conversation {
	return Conversation{{Role: RoleSystem, Content: systemPrompt, Timestamp: time.Now()}}
}

// AddUser appends a user turn.
func (c *Conversation) AddUser(content string) {
	*c = append(*c, Message{Role: RoleUser, Content: content, Timestamp: time.Now()})
}

// AddAssistant appends an assistant turn.
func (c *Conversation) AddAssistant(content string) {
	*c = append(*c, Message{Role: RoleAssistant, Content: content, Timestamp: time.Now()})
}

// Last returns the most recent message, or a zero Message for an empty
// conversation.
func (c Conversation) Last() Message {
	if len(c) == 0 {
		return Message{}
	}
	return c[len(c)-1]
}
