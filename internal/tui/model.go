// Package tui provides the terminal front ends for the interpreter: a
// Bubble Tea model for interactive terminals and a plain-text fallback.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/assistant/internal/shell"
)

// Executor runs one input line. Implemented by *shell.Shell.
type Executor interface {
	Execute(line string) shell.Reply
}

// line is one transcript entry. echo marks a line the user typed.
type line struct {
	text string
	echo bool
}

// Model is the Bubble Tea model for the interactive interpreter.
type Model struct {
	exec       Executor
	input      textinput.Model
	help       help.Model
	keys       keyMap
	prompt     string
	transcript []line
	height     int
	done       bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPrompt sets the prompt shown before the input field.
func WithPrompt(p string) ModelOption {
	return func(m *Model) { m.prompt = p }
}

// WithGreeting puts an initial line into the transcript.
func WithGreeting(g string) ModelOption {
	return func(m *Model) {
		if g != "" {
			m.transcript = append(m.transcript, line{text: g})
		}
	}
}

// NewModel creates a Model that sends submitted lines to exec.
func NewModel(exec Executor, opts ...ModelOption) Model {
	m := Model{
		exec:   exec,
		help:   help.New(),
		keys:   defaultKeyMap(),
		prompt: "> ",
	}
	for _, opt := range opts {
		opt(&m)
	}

	ti := textinput.New()
	ti.Prompt = m.prompt
	ti.Focus()
	m.input = ti
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.prompt)-1, 0)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the current input line and appends it and its reply
// to the transcript.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	m.input.Reset()
	m.transcript = append(m.transcript, line{text: m.prompt + text, echo: true})

	reply := m.exec.Execute(text)
	if reply.Text != "" {
		for _, l := range strings.Split(reply.Text, "\n") {
			m.transcript = append(m.transcript, line{text: l})
		}
	}
	if reply.Exit {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the visible tail of the transcript, the input field, and
// the help bar.
func (m Model) View() string {
	lines := m.transcript
	// Two rows are taken by the input and help bar.
	if m.height > 2 && len(lines) > m.height-2 {
		lines = lines[len(lines)-(m.height-2):]
	}

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(renderLine(l))
		sb.WriteString("\n")
	}
	if !m.done {
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
		sb.WriteString(m.help.View(m.keys))
	}
	return sb.String()
}

// Transcript returns the plain text of every transcript line.
func (m Model) Transcript() []string {
	out := make([]string, len(m.transcript))
	for i, l := range m.transcript {
		out[i] = l.text
	}
	return out
}
