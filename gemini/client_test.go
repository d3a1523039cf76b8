package gemini_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramakrishna12999/medassist"
	"github.com/ramakrishna12999/medassist/gemini"
)

func TestConvertHistory(t *testing.T) {
	t.Parallel()

	history := []medassist.Content{
		{Role: "user", Parts: []medassist.Part{{Text: "What causes migraines?"}}},
		{Role: "model", Parts: []medassist.Part{{Text: "Common causes include stress."}}},
	}
	got := gemini.ConvertHistory(history)
	require.Len(t, got, 2)

	assert.Equal(t, "user", got[0].Role)
	require.Len(t, got[0].Parts, 1)
	assert.Equal(t, "What causes migraines?", got[0].Parts[0].Text)

	assert.Equal(t, "model", got[1].Role)
	assert.Equal(t, "Common causes include stress.", got[1].Parts[0].Text)
}

func TestConvertHistory_Empty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, gemini.ConvertHistory(nil))
}

func TestBuildConfig_Defaults(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(medassist.Request{})
	assert.Equal(t, int32(1024), config.MaxOutputTokens)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, float64(*config.Temperature), 1e-6)
	assert.Nil(t, config.SystemInstruction)
}

func TestBuildConfig_Overrides(t *testing.T) {
	t.Parallel()

	temp := 0.9
	config := gemini.BuildConfig(medassist.Request{
		SystemPrompt: "be careful",
		MaxTokens:    2048,
		Temperature:  &temp,
	})
	assert.Equal(t, int32(2048), config.MaxOutputTokens)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.9, float64(*config.Temperature), 1e-6)
	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "be careful", config.SystemInstruction.Parts[0].Text)
}
