package snapshot_test

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramakrishna12999/medassist"
	"github.com/ramakrishna12999/medassist/snapshot"
)

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	turns := []medassist.Turn{
		{Role: medassist.RoleAssistant, Content: "Hello! How can I help?"},
		{Role: medassist.RoleUser, Content: "What causes migraines?"},
		{Role: medassist.RoleAssistant, Content: "Common causes include **stress**."},
	}
	savedAt := time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)

	data, err := snapshot.Marshal("gemini-2.5-flash", savedAt, turns)
	require.NoError(t, err)

	got, err := snapshot.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, snapshot.App, got.App)
	assert.Equal(t, "gemini-2.5-flash", got.Model)
	assert.True(t, got.SavedAt.Equal(savedAt))

	require.Len(t, got.Turns, len(turns))
	for i, turn := range turns {
		assert.Equal(t, turn.Role, got.Turns[i].Role)
		assert.Equal(t, turn.Content, got.Turns[i].Content)
	}
}

func TestMarshal_WireFormat(t *testing.T) {
	t.Parallel()

	turns := []medassist.Turn{{Role: medassist.RoleAssistant, Content: "hi"}}
	data, err := snapshot.Marshal("gemini-2.5-flash", time.Now(), turns)
	require.NoError(t, err)

	// Storage vocabulary keeps "assistant", never the wire role "model".
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, snapshot.App, doc["app"])
	assert.Contains(t, doc, "saved_at")
	msgs, ok := doc["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	first, ok := msgs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "assistant", first["role"])
	assert.Equal(t, "hi", first["content"])
}

func TestMarshal_UnknownRole(t *testing.T) {
	t.Parallel()

	_, err := snapshot.Marshal("m", time.Now(), []medassist.Turn{{Role: "tool", Content: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestUnmarshal_UnknownRole(t *testing.T) {
	t.Parallel()

	_, err := snapshot.Unmarshal([]byte(`{"app":"x","model":"m","messages":[{"role":"system","content":"x"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	session := medassist.NewSession("gemini-2.5-flash", 20)
	for i := 0; i < 3; i++ {
		session.Conversation.Append(medassist.RoleUser, fmt.Sprintf("q%d", i))
		session.Conversation.Append(medassist.RoleAssistant, fmt.Sprintf("a%d", i))
	}

	path := filepath.Join(t.TempDir(), "sessions", "medassist_session.json")
	require.NoError(t, snapshot.Save(path, session))

	got, err := snapshot.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", got.Model)
	require.Len(t, got.Turns, 6)
	assert.Equal(t, "q0", got.Turns[0].Content)
	assert.Equal(t, "a2", got.Turns[5].Content)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := snapshot.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
