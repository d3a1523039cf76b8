package bubbletea

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramakrishna12999/medassist"
)

var _ MessageBlock = (*ErrorBlock)(nil)

// ErrorBlock renders a terminal gateway error with an actionable hint.
// Errors live only in the UI; they are never appended to the
// conversation, so they are never replayed as model context.
type ErrorBlock struct {
	err    error
	styles Styles
}

// NewErrorBlock creates an ErrorBlock.
func NewErrorBlock(err error, styles Styles) *ErrorBlock {
	return &ErrorBlock{err: err, styles: styles}
}

func (b *ErrorBlock) View(width int) string {
	content := b.styles.Error.Render(fmt.Sprintf("Error: %v", b.err))
	if hint := hintFor(b.err); hint != "" {
		content += "\n" + b.styles.Muted.Render(hint)
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, medassist.ErrRateLimited):
		return "Rate limit hit. Please wait a moment and try again."
	case errors.Is(err, medassist.ErrAuthentication):
		return "Invalid API key. Check GEMINI_API_KEY and try again."
	case errors.Is(err, medassist.ErrRetriesExhausted):
		return "The service did not respond. Check your connection and try again."
	default:
		return ""
	}
}
