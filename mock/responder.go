// Package mock provides test doubles for medassist interfaces using
// function fields.
package mock

import (
	"context"

	"github.com/ramakrishna12999/medassist"
)

// Interface compliance check.
var _ medassist.Responder = (*Responder)(nil)

// Responder is a test double for medassist.Responder.
// Set GenerateFn before calling Generate.
type Responder struct {
	GenerateFn func(ctx context.Context, req medassist.Request) (string, error)
}

// Generate delegates to GenerateFn.
func (r *Responder) Generate(ctx context.Context, req medassist.Request) (string, error) {
	return r.GenerateFn(ctx, req)
}
