package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramakrishna12999/medassist"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the MedAssist chat TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	send     SendFunc
	save     SaveFunc
	session  *medassist.Session
	detector *medassist.EmergencyDetector
	theme    medassist.Theme
	styles   Styles

	blocks []MessageBlock

	running   bool
	cancel    context.CancelFunc
	status    string
	questions int
	ready     bool
}

// New creates a TUI Model. The session's existing turns (welcome message,
// resumed snapshot) seed the chat pane.
func New(send SendFunc, save SaveFunc, session *medassist.Session, detector *medassist.EmergencyDetector, theme medassist.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your health question here..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	m := Model{
		Input:    ti,
		send:     send,
		save:     save,
		session:  session,
		detector: detector,
		theme:    theme,
		styles:   NewStyles(theme),
	}
	for _, turn := range session.Conversation.Turns() {
		switch turn.Role {
		case medassist.RoleUser:
			m.blocks = append(m.blocks, NewUserBlock(turn.Content, m.styles))
			m.questions++
		case medassist.RoleAssistant:
			m.blocks = append(m.blocks, NewAssistantBlock(turn.Content, m.theme))
		}
	}
	return m
}

// Running returns whether a gateway call is in flight.
func (m Model) Running() bool { return m.running }

// Questions returns the number of user questions asked so far.
func (m Model) Questions() int { return m.questions }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ReplyMsg:
		return m.handleReply(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	// Viewport always receives messages for scrolling.
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputHeight := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := msg.Height - inputHeight - statusHeight - borderHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submitInput(text)

	case tea.KeyCtrlL:
		if m.running {
			return m, nil
		}
		m.session.Conversation.Clear()
		m.blocks = nil
		m.questions = 0
		m.status = "Chat cleared."
		m.refreshViewport()
		return m, nil

	case tea.KeyCtrlS:
		if m.save == nil {
			return m, nil
		}
		path, err := m.save(m.session)
		if err != nil {
			m.status = m.styles.Error.Render(fmt.Sprintf("Save failed: %v", err))
		} else {
			m.status = m.styles.Success.Render("Saved to " + path)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.running {
		m.Viewport, cmd = m.Viewport.Update(msg)
	} else {
		m.Input, cmd = m.Input.Update(msg)
	}
	return m, cmd
}

// submitInput records the user turn and starts the gateway call. The
// emergency banner, when triggered, precedes the user bubble but never
// blocks the call.
func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")

	if m.detector != nil && m.detector.Detect(text) {
		m.blocks = append(m.blocks, NewEmergencyBlock(m.styles))
	}
	m.blocks = append(m.blocks, NewUserBlock(text, m.styles))
	m.session.Conversation.Append(medassist.RoleUser, text)
	m.questions++

	m.running = true
	m.status = ""
	m.refreshViewport()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	send := m.send
	conv := m.session.Conversation
	return m, func() tea.Msg {
		text, err := send(ctx, conv)
		return ReplyMsg{Text: text, Err: err}
	}
}

func (m Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	m.running = false
	m.cancel = nil

	switch {
	case msg.Err != nil && errors.Is(msg.Err, context.Canceled):
		m.status = "Cancelled."
	case msg.Err != nil:
		m.blocks = append(m.blocks, NewErrorBlock(msg.Err, m.styles))
	default:
		m.session.Conversation.Append(medassist.RoleAssistant, msg.Text)
		m.blocks = append(m.blocks, NewAssistantBlock(msg.Text, m.theme))
		m.status = fmt.Sprintf("Done · %d question(s) asked", m.questions)
	}
	m.refreshViewport()
	return m, m.Input.Focus()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
}

func (m Model) renderContent() string {
	views := make([]string, 0, len(m.blocks))
	for _, block := range m.blocks {
		views = append(views, block.View(m.Viewport.Width))
	}
	return strings.Join(views, "\n\n")
}

func (m Model) statusLine() string {
	if m.running {
		return m.styles.Muted.Render("MedAssist is thinking...")
	}
	if m.status != "" {
		return m.status
	}
	return m.styles.Muted.Render("enter send · ctrl+s save · ctrl+l clear · ctrl+c quit")
}
