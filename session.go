package medassist

import "time"

// Session ties one conversation to the model serving it. Each session
// owns its Conversation instance; there is no shared global state.
type Session struct {
	Conversation *Conversation
	Model        string
	CreatedAt    time.Time
}

// NewSession creates a session with an empty conversation.
func NewSession(model string, maxTurns int) *Session {
	return &Session{
		Conversation: NewConversation(maxTurns),
		Model:        model,
		CreatedAt:    time.Now(),
	}
}
