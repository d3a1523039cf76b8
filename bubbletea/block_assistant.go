package bubbletea

import (
	"github.com/ramakrishna12999/medassist"
	"github.com/ramakrishna12999/medassist/markdown"
)

var _ MessageBlock = (*AssistantBlock)(nil)

// AssistantBlock renders an assistant reply with markdown formatting.
// Replies arrive whole (no streaming), so the render is cached per width.
type AssistantBlock struct {
	text  string
	theme medassist.Theme

	renderedByWidth map[int]string
}

// NewAssistantBlock creates an AssistantBlock for a complete reply.
func NewAssistantBlock(text string, theme medassist.Theme) *AssistantBlock {
	return &AssistantBlock{
		text:            text,
		theme:           theme,
		renderedByWidth: make(map[int]string),
	}
}

func (b *AssistantBlock) View(width int) string {
	if width <= 0 {
		return ""
	}
	if cached, ok := b.renderedByWidth[width]; ok {
		return cached
	}
	rendered := markdown.Render(b.text, width, b.theme)
	b.renderedByWidth[width] = rendered
	return rendered
}
