// Package gemini implements [medassist.Responder] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating the
// provider-agnostic history view into Gemini contents and returning the
// reply as plain text. Calls are synchronous; no streaming.
package gemini

const (
	defaultModel       = "gemini-2.5-flash"
	defaultMaxTokens   = 1024
	defaultTemperature = 0.4
)
