package models

import "fmt"

// Role identifies the origin of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single display record in the conversation.
// A message is never mutated after creation, except for an assistant
// message during the reveal animation, whose text grows monotonically
// until it equals the full response text.
type Message struct {
	Role Role
	Text string
}

// FormatUserMessage combines the selected category and the raw query
// into the display form used for user messages.
func FormatUserMessage(category, query string) string {
	return fmt.Sprintf("%s: %s", category, query)
}
