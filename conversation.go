// Package medassist contains the domain types for a single-user medical
// information chat: the bounded conversation history, the gateway that
// delivers one prompt-plus-history exchange to a text-generation provider,
// and the keyword-based emergency detector.
package medassist

import "time"

// DefaultMaxTurns is the default number of retained exchange pairs.
const DefaultMaxTurns = 20

// Vocabulary maps domain roles to a provider's wire role names.
// Gemini, for example, uses "model" where the domain says assistant.
type Vocabulary struct {
	User      string
	Assistant string
}

// GeminiVocabulary returns the role vocabulary of the Gemini chat API.
func GeminiVocabulary() Vocabulary {
	return Vocabulary{User: "user", Assistant: "model"}
}

// Content is one history entry shaped for transmission to a provider:
// a wire role plus the text wrapped as a single part.
type Content struct {
	Role  string
	Parts []Part
}

// Part is a single content part. Text only; this client sends no media.
type Part struct {
	Text string
}

// Conversation holds the ordered turn history for one session, bounded
// to maxTurns exchange pairs. It owns its turns exclusively; callers get
// copies. Not safe for concurrent use; each session has one caller.
type Conversation struct {
	maxTurns int
	turns    []Turn
}

// NewConversation creates an empty Conversation retaining at most
// maxTurns exchange pairs (2*maxTurns raw turns). Non-positive maxTurns
// falls back to DefaultMaxTurns.
func NewConversation(maxTurns int) *Conversation {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Conversation{maxTurns: maxTurns}
}

// Append adds a turn at the end, then prunes the oldest turns until at
// most 2*maxTurns remain. Pruning is by raw turn count from the front,
// so an odd-length history is possible when roles were appended
// unevenly; the retained suffix keeps its original order.
func (c *Conversation) Append(role Role, content string) {
	c.turns = append(c.turns, Turn{Role: role, Content: content, Timestamp: time.Now()})
	if limit := 2 * c.maxTurns; len(c.turns) > limit {
		c.turns = append(c.turns[:0], c.turns[len(c.turns)-limit:]...)
	}
}

// HistoryView returns every turn except the last, relabeled through
// vocab and shaped for the provider wire format. The last turn is
// excluded because it is the live prompt, sent separately. Returns nil
// for histories of one turn or fewer.
func (c *Conversation) HistoryView(vocab Vocabulary) []Content {
	if len(c.turns) < 2 {
		return nil
	}
	view := make([]Content, 0, len(c.turns)-1)
	for _, t := range c.turns[:len(c.turns)-1] {
		role := vocab.User
		if t.Role == RoleAssistant {
			role = vocab.Assistant
		}
		view = append(view, Content{Role: role, Parts: []Part{{Text: t.Content}}})
	}
	return view
}

// LatestUserMessage returns the content of the most recent user turn,
// scanning backward so trailing assistant turns are skipped. Returns ""
// when no user turn exists.
func (c *Conversation) LatestUserMessage() string {
	for i := len(c.turns) - 1; i >= 0; i-- {
		if c.turns[i].Role == RoleUser {
			return c.turns[i].Content
		}
	}
	return ""
}

// Turns returns a copy of the full turn sequence.
func (c *Conversation) Turns() []Turn {
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Len returns the number of retained turns.
func (c *Conversation) Len() int { return len(c.turns) }

// Clear empties the conversation.
func (c *Conversation) Clear() { c.turns = nil }
