package medassist_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramakrishna12999/medassist"
)

func TestConversation_Append_PrunesBeyondWindow(t *testing.T) {
	t.Parallel()

	conv := medassist.NewConversation(2) // window = 4 raw turns
	for i := 0; i < 5; i++ {
		conv.Append(medassist.RoleUser, fmt.Sprintf("q%d", i))
		conv.Append(medassist.RoleAssistant, fmt.Sprintf("a%d", i))
	}

	turns := conv.Turns()
	require.Len(t, turns, 4)
	// Newest turns survive, order preserved.
	assert.Equal(t, "q3", turns[0].Content)
	assert.Equal(t, "a3", turns[1].Content)
	assert.Equal(t, "q4", turns[2].Content)
	assert.Equal(t, "a4", turns[3].Content)
}

func TestConversation_Append_OddHistoryStaysOdd(t *testing.T) {
	t.Parallel()

	// Uneven appends can leave an odd-length window after pruning; the
	// store does not pad or pair-align, it just drops from the front.
	conv := medassist.NewConversation(1) // window = 2 raw turns
	conv.Append(medassist.RoleUser, "q0")
	conv.Append(medassist.RoleUser, "q1")
	conv.Append(medassist.RoleAssistant, "a1")

	turns := conv.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, medassist.RoleUser, turns[0].Role)
	assert.Equal(t, "q1", turns[0].Content)
	assert.Equal(t, medassist.RoleAssistant, turns[1].Role)
}

func TestConversation_Append_NeverExceedsWindow(t *testing.T) {
	t.Parallel()

	conv := medassist.NewConversation(3) // window = 6 raw turns
	for i := 0; i < 50; i++ {
		role := medassist.RoleUser
		if i%2 == 1 {
			role = medassist.RoleAssistant
		}
		conv.Append(role, fmt.Sprintf("m%d", i))
		assert.LessOrEqual(t, conv.Len(), 6)
	}
}

func TestConversation_HistoryView_ExcludesLivePrompt(t *testing.T) {
	t.Parallel()

	conv := medassist.NewConversation(10)
	conv.Append(medassist.RoleUser, "What causes migraines?")
	conv.Append(medassist.RoleAssistant, "Common causes include stress.")
	conv.Append(medassist.RoleUser, "How do I prevent them?")

	view := conv.HistoryView(medassist.GeminiVocabulary())
	require.Len(t, view, conv.Len()-1)

	assert.Equal(t, "user", view[0].Role)
	require.Len(t, view[0].Parts, 1)
	assert.Equal(t, "What causes migraines?", view[0].Parts[0].Text)

	// Assistant relabeled to the wire vocabulary.
	assert.Equal(t, "model", view[1].Role)
	assert.Equal(t, "Common causes include stress.", view[1].Parts[0].Text)
}

func TestConversation_HistoryView_CustomVocabulary(t *testing.T) {
	t.Parallel()

	conv := medassist.NewConversation(10)
	conv.Append(medassist.RoleAssistant, "Hello.")
	conv.Append(medassist.RoleUser, "Hi.")

	view := conv.HistoryView(medassist.Vocabulary{User: "human", Assistant: "bot"})
	require.Len(t, view, 1)
	assert.Equal(t, "bot", view[0].Role)
}

func TestConversation_HistoryView_Empty(t *testing.T) {
	t.Parallel()

	conv := medassist.NewConversation(10)
	assert.Nil(t, conv.HistoryView(medassist.GeminiVocabulary()))

	conv.Append(medassist.RoleUser, "only one turn")
	assert.Nil(t, conv.HistoryView(medassist.GeminiVocabulary()))
}

func TestConversation_LatestUserMessage(t *testing.T) {
	t.Parallel()

	conv := medassist.NewConversation(10)
	assert.Equal(t, "", conv.LatestUserMessage())

	conv.Append(medassist.RoleUser, "A")
	conv.Append(medassist.RoleAssistant, "B")
	conv.Append(medassist.RoleUser, "C")
	assert.Equal(t, "C", conv.LatestUserMessage())

	// A trailing assistant turn must not shadow the newest user turn.
	conv.Append(medassist.RoleAssistant, "D")
	assert.Equal(t, "C", conv.LatestUserMessage())
	// Idempotent.
	assert.Equal(t, "C", conv.LatestUserMessage())
}

func TestConversation_LatestUserMessage_NoUserTurns(t *testing.T) {
	t.Parallel()

	conv := medassist.NewConversation(10)
	conv.Append(medassist.RoleAssistant, "welcome")
	assert.Equal(t, "", conv.LatestUserMessage())
}

func TestConversation_Clear(t *testing.T) {
	t.Parallel()

	conv := medassist.NewConversation(10)
	conv.Append(medassist.RoleUser, "hello")
	conv.Clear()
	assert.Zero(t, conv.Len())
	assert.Empty(t, conv.Turns())
}

func TestConversation_Turns_ReturnsCopy(t *testing.T) {
	t.Parallel()

	conv := medassist.NewConversation(10)
	conv.Append(medassist.RoleUser, "hello")

	turns := conv.Turns()
	turns[0].Content = "mutated"
	assert.Equal(t, "hello", conv.Turns()[0].Content)
}
