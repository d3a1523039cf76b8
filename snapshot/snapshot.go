// Package snapshot serializes a conversation to a flat JSON document and
// restores it. The storage vocabulary is {user, assistant}, distinct
// from the wire vocabulary sent to the provider.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ramakrishna12999/medassist"
)

// App is the application identifier written into every snapshot.
const App = "MedAssist AI (Gemini)"

// Snapshot is a point-in-time export of a conversation.
type Snapshot struct {
	App     string
	Model   string
	SavedAt time.Time
	Turns   []medassist.Turn
}

// envelope is the wire format for a persisted snapshot.
type envelope struct {
	App      string       `json:"app"`
	Model    string       `json:"model"`
	SavedAt  time.Time    `json:"saved_at"`
	Messages []messageDTO `json:"messages"`
}

type messageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Marshal serializes turns with metadata to indented JSON.
func Marshal(model string, savedAt time.Time, turns []medassist.Turn) ([]byte, error) {
	env := envelope{
		App:      App,
		Model:    model,
		SavedAt:  savedAt,
		Messages: make([]messageDTO, len(turns)),
	}
	for i, turn := range turns {
		switch turn.Role {
		case medassist.RoleUser, medassist.RoleAssistant:
		default:
			return nil, fmt.Errorf("message %d: unknown role %q", i, turn.Role)
		}
		env.Messages[i] = messageDTO{Role: string(turn.Role), Content: turn.Content}
	}
	return json.MarshalIndent(env, "", "  ")
}

// Unmarshal deserializes a Snapshot. Unknown roles are an error.
func Unmarshal(data []byte) (Snapshot, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	turns := make([]medassist.Turn, len(env.Messages))
	for i, msg := range env.Messages {
		role := medassist.Role(msg.Role)
		switch role {
		case medassist.RoleUser, medassist.RoleAssistant:
		default:
			return Snapshot{}, fmt.Errorf("message %d: unknown role %q", i, msg.Role)
		}
		turns[i] = medassist.Turn{Role: role, Content: msg.Content}
	}
	return Snapshot{
		App:     env.App,
		Model:   env.Model,
		SavedAt: env.SavedAt,
		Turns:   turns,
	}, nil
}

// Save writes a snapshot of the session's conversation to a JSON file,
// creating parent directories as needed. The write is atomic: a temp
// file is renamed into place.
func Save(path string, session *medassist.Session) error {
	data, err := Marshal(session.Model, time.Now(), session.Conversation.Turns())
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a snapshot from a JSON file.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read file: %w", err)
	}
	return Unmarshal(data)
}
