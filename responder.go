package medassist

import "context"

// Responder is a strategy pattern interface for text-generation providers.
// Generate blocks until the provider returns the full reply text or fails.
type Responder interface {
	Generate(ctx context.Context, req Request) (string, error)
}
