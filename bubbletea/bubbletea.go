// Package bubbletea provides a Bubble Tea chat TUI for MedAssist.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramakrishna12999/medassist"
)

// SendFunc delivers the conversation's live prompt to the provider and
// blocks until the reply text or a terminal error is available.
type SendFunc func(ctx context.Context, conv *medassist.Conversation) (string, error)

// SaveFunc snapshots the session and returns the snapshot location.
type SaveFunc func(session *medassist.Session) (string, error)

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. The context is used for graceful shutdown: when
// cancelled, the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ReplyMsg delivers the outcome of one gateway exchange to the model.
type ReplyMsg struct {
	Text string
	Err  error
}
