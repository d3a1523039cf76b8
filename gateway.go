package medassist

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const defaultMaxRetries = 3

// Gateway delivers prompt-plus-history exchanges to a Responder,
// retrying transient failures with linear backoff and normalizing
// permanent failures into the sentinel error taxonomy.
type Gateway struct {
	responder   Responder
	model       string
	system      string
	maxTokens   int
	temperature *float64
	maxRetries  int
	vocab       Vocabulary
	sleep       func(time.Duration)
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithModel sets the model ID passed to the responder.
func WithModel(model string) GatewayOption {
	return func(g *Gateway) { g.model = model }
}

// WithSystemPrompt sets the system instruction sent with every exchange.
func WithSystemPrompt(prompt string) GatewayOption {
	return func(g *Gateway) { g.system = prompt }
}

// WithMaxTokens sets the output-length cap. 0 means provider default.
func WithMaxTokens(n int) GatewayOption {
	return func(g *Gateway) { g.maxTokens = n }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) GatewayOption {
	return func(g *Gateway) { g.temperature = &t }
}

// WithMaxRetries sets the retry ceiling. Default is 3.
func WithMaxRetries(n int) GatewayOption {
	return func(g *Gateway) {
		if n > 0 {
			g.maxRetries = n
		}
	}
}

// WithVocabulary sets the wire role vocabulary used for history replay.
// Default is the Gemini vocabulary.
func WithVocabulary(v Vocabulary) GatewayOption {
	return func(g *Gateway) { g.vocab = v }
}

// WithSleep replaces the backoff sleep function. Tests use this to avoid
// real delays.
func WithSleep(fn func(time.Duration)) GatewayOption {
	return func(g *Gateway) { g.sleep = fn }
}

// NewGateway creates a Gateway around responder.
func NewGateway(responder Responder, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		responder:  responder,
		maxRetries: defaultMaxRetries,
		vocab:      GeminiVocabulary(),
		sleep:      time.Sleep,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Send delivers the conversation's live prompt plus replayed history to
// the responder and returns the reply text. The conversation is read,
// never mutated; the caller appends the reply afterward.
//
// Transient failures are retried up to the ceiling with a blocking
// 2*attempt-second backoff. Rate-limit and authentication failures
// short-circuit immediately regardless of remaining attempts, so at most
// maxRetries provider calls are made per Send and exactly zero after a
// permanent classification.
func (g *Gateway) Send(ctx context.Context, conv *Conversation) (string, error) {
	req := Request{
		Model:        g.model,
		SystemPrompt: g.system,
		History:      conv.HistoryView(g.vocab),
		Prompt:       conv.LatestUserMessage(),
		MaxTokens:    g.maxTokens,
		Temperature:  g.temperature,
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		text, err := g.responder.Generate(ctx, req)
		if err == nil {
			return text, nil
		}
		switch classify(err) {
		case errRateLimited:
			return "", fmt.Errorf("provider rate limit: %v: %w", err, ErrRateLimited)
		case errAuth:
			return "", fmt.Errorf("provider rejected credentials: %v: %w", err, ErrAuthentication)
		}
		lastErr = err
		if attempt < g.maxRetries {
			g.sleep(time.Duration(2*attempt) * time.Second)
		}
	}
	return "", fmt.Errorf("after %d attempts: %v: %w", g.maxRetries, lastErr, ErrRetriesExhausted)
}

type errClass int

const (
	errTransient errClass = iota
	errRateLimited
	errAuth
)

// classify maps a provider error to its class by case-insensitive
// substring match. The provider guarantees no structured error codes, so
// the heuristic matches on message text.
func classify(err error) errClass {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate"):
		return errRateLimited
	case strings.Contains(msg, "api key") || strings.Contains(msg, "authentication") || strings.Contains(msg, "invalid"):
		return errAuth
	default:
		return errTransient
	}
}
