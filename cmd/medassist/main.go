// Command medassist is a terminal medical-information chatbot backed by
// the Google Gemini API.
//
// Usage:
//
//	GEMINI_API_KEY=... medassist [flags]
//
// Flags:
//
//	-model string        Model ID (default gemini-2.5-flash)
//	-api-key string      API key (overrides GEMINI_API_KEY)
//	-session string      Path to the session snapshot (default medassist_session.json)
//	-max-turns int       Retained exchange pairs (default 20)
//	-max-tokens int      Output token cap (default 1024)
//	-temperature float   Sampling temperature (default 0.4)
//	-retries int         Retry ceiling for transient errors (default 3)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ramakrishna12999/medassist"
	bt "github.com/ramakrishna12999/medassist/bubbletea"
	"github.com/ramakrishna12999/medassist/gemini"
	"github.com/ramakrishna12999/medassist/snapshot"
)

const (
	defaultModel       = "gemini-2.5-flash"
	defaultSessionPath = "medassist_session.json"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "medassist: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		model       = flag.String("model", defaultModel, "Model ID")
		apiKey      = flag.String("api-key", "", "API key (overrides GEMINI_API_KEY)")
		sessionPath = flag.String("session", defaultSessionPath, "Path to the session snapshot")
		maxTurns    = flag.Int("max-turns", medassist.DefaultMaxTurns, "Retained exchange pairs")
		maxTokens   = flag.Int("max-tokens", 1024, "Output token cap")
		temperature = flag.Float64("temperature", 0.4, "Sampling temperature")
		retries     = flag.Int("retries", 3, "Retry ceiling for transient errors")
	)
	flag.Parse()

	key := *apiKey
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		return errors.New("no API key: set GEMINI_API_KEY or pass -api-key")
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client, err := gemini.New(ctx, key, gemini.WithModel(*model))
	if err != nil {
		return err
	}

	gateway := medassist.NewGateway(client,
		medassist.WithModel(*model),
		medassist.WithSystemPrompt(medassist.DefaultSystemPrompt),
		medassist.WithMaxTokens(*maxTokens),
		medassist.WithTemperature(*temperature),
		medassist.WithMaxRetries(*retries),
	)

	session, err := loadOrCreateSession(*sessionPath, *model, *maxTurns)
	if err != nil {
		return err
	}

	saveFn := func(s *medassist.Session) (string, error) {
		if err := snapshot.Save(*sessionPath, s); err != nil {
			return "", err
		}
		return *sessionPath, nil
	}

	tui := bt.New(gateway.Send, saveFn, session, medassist.NewEmergencyDetector(), medassist.DefaultTheme())
	if err := bt.Run(ctx, tui); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}

	// Save on exit so the next run resumes where this one left off.
	if session.Conversation.Len() > 1 {
		if err := snapshot.Save(*sessionPath, session); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Session saved to %s\n", *sessionPath)
	}

	return nil
}

// loadOrCreateSession resumes the snapshot at path when one exists,
// otherwise starts a fresh session seeded with the welcome message.
func loadOrCreateSession(path, model string, maxTurns int) (*medassist.Session, error) {
	session := medassist.NewSession(model, maxTurns)

	if _, err := os.Stat(path); err == nil {
		snap, err := snapshot.Load(path)
		if err != nil {
			return nil, fmt.Errorf("resume session: %w", err)
		}
		for _, turn := range snap.Turns {
			session.Conversation.Append(turn.Role, turn.Content)
		}
		return session, nil
	}

	session.Conversation.Append(medassist.RoleAssistant, medassist.WelcomeMessage)
	return session, nil
}
