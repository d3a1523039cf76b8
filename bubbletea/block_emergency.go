package bubbletea

import "github.com/charmbracelet/lipgloss"

var _ MessageBlock = (*EmergencyBlock)(nil)

// EmergencyBanner is the warning shown when the input mentions a medical
// emergency. The banner only warns; the question is still sent.
const EmergencyBanner = "EMERGENCY DETECTED — CALL 911 NOW or GO TO YOUR NEAREST ER IMMEDIATELY. Do not wait."

// EmergencyBlock renders the emergency warning banner.
type EmergencyBlock struct {
	styles Styles
}

// NewEmergencyBlock creates an EmergencyBlock.
func NewEmergencyBlock(styles Styles) *EmergencyBlock {
	return &EmergencyBlock{styles: styles}
}

func (b *EmergencyBlock) View(width int) string {
	content := b.styles.Emergency.Render(EmergencyBanner)
	return lipgloss.NewStyle().Width(width).Render(content)
}
