// Package desk owns the shared conversation state behind the demo UI:
// the transcript, the customer profile, and the runtime that routes panel
// intents to the assist engine and the scripted customer.
package desk

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a message.
type Role string

// Message roles.
const (
	RoleAgent    Role = "agent"
	RoleCustomer Role = "customer"
)

// Message is one transcript entry.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

// Conversation is an append-only transcript. The desk runtime is the sole
// writer; panels receive snapshots.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
}

// NewConversation creates an empty transcript.
func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a message and returns it.
func (c *Conversation) Append(role Role, content string) Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg := Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
	c.messages = append(c.messages, msg)
	return msg
}

// Messages returns a snapshot of the transcript in append order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len reports the number of messages.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// Profile is the static customer record shown in the customer pane.
type Profile struct {
	Name                 string
	Tier                 string
	AccountID            string
	Issue                string
	PreviousInteractions int
}
