package models

import (
	"fmt"
	"strings"
)

// Conversation is the ordered, append-only message history for a chat
// session. Messages are appended in submission/arrival order and never
// removed. The only permitted mutation is growing an assistant
// message's text during a reveal animation, via Grow.
type Conversation struct {
	messages []Message
}

// NewConversation returns an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a message and returns its index.
func (c *Conversation) Append(role Role, text string) int {
	c.messages = append(c.messages, Message{Role: role, Text: text})
	return len(c.messages) - 1
}

// Grow replaces the text of the message at idx. The existing text must
// be a prefix of the new text, so a revealed message only ever gains
// characters.
func (c *Conversation) Grow(idx int, text string) error {
	if idx < 0 || idx >= len(c.messages) {
		return fmt.Errorf("message index %d out of range", idx)
	}
	if !strings.HasPrefix(text, c.messages[idx].Text) {
		return fmt.Errorf("text %q does not extend %q", text, c.messages[idx].Text)
	}
	c.messages[idx].Text = text
	return nil
}

// Messages returns the messages in order. The returned slice shares
// storage with the conversation and must not be modified.
func (c *Conversation) Messages() []Message {
	return c.messages
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Last returns the most recent message, or a zero Message when empty.
func (c *Conversation) Last() Message {
	if len(c.messages) == 0 {
		return Message{}
	}
	return c.messages[len(c.messages)-1]
}
