package gemini

import (
	"google.golang.org/genai"

	"github.com/ramakrishna12999/medassist"
)

// BuildConfig exports buildConfig for testing.
func BuildConfig(req medassist.Request) *genai.GenerateContentConfig {
	return buildConfig(req)
}
