package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/ramakrishna12999/medassist"
)

// Interface compliance check.
var _ medassist.Responder = (*Client)(nil)

// Client implements [medassist.Responder] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-2.5-flash.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client: gc,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Generate sends the replayed history plus the live prompt to the Gemini
// API and returns the reply text.
func (c *Client) Generate(ctx context.Context, req medassist.Request) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	contents := ConvertHistory(req.History)
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: req.Prompt}},
	})

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, buildConfig(req))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response from model %s", model)
	}
	return text, nil
}

func buildConfig(req medassist.Request) *genai.GenerateContentConfig {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	temp := float32(defaultTemperature)
	if req.Temperature != nil {
		temp = float32(*req.Temperature)
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
		Temperature:     &temp,
	}

	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}

	return config
}

// ConvertHistory converts the provider-agnostic history view to genai
// Contents. Roles are already in the Gemini wire vocabulary.
// Exported for testing.
func ConvertHistory(history []medassist.Content) []*genai.Content {
	var result []*genai.Content
	for _, c := range history {
		parts := make([]*genai.Part, len(c.Parts))
		for i, p := range c.Parts {
			parts[i] = &genai.Part{Text: p.Text}
		}
		result = append(result, &genai.Content{Role: c.Role, Parts: parts})
	}
	return result
}
