package tui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/assistant/internal/shell"
)

// Frontend drives an interpreter session until the user leaves.
type Frontend interface {
	Run(ctx context.Context) error
}

// Options configures frontend creation.
type Options struct {
	In         io.Reader // Input source (default: os.Stdin).
	Out        io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force the plain read loop even on a TTY.
	Prompt     string
	Greeting   string
}

// NewFrontend returns a TUI frontend when both In and Out are terminals,
// or a plain line-based frontend otherwise. ForcePlain overrides TTY
// detection.
func NewFrontend(sh *shell.Shell, opts Options) Frontend {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	plain := &PlainFrontend{
		session: shell.NewSession(sh, shell.SessionOptions{Prompt: opts.Prompt, Greeting: opts.Greeting}),
		in:      opts.In,
		out:     opts.Out,
	}
	if opts.ForcePlain || !isTTY(opts.In) || !isTTY(opts.Out) {
		return plain
	}
	return &TUIFrontend{shell: sh, opts: opts, fallback: plain}
}

// isTTY reports whether v is a file connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainFrontend runs the line-based session over the configured streams.
type PlainFrontend struct {
	session *shell.Session
	in      io.Reader
	out     io.Writer
}

// Run runs the session until exit, end of input, or cancellation.
func (f *PlainFrontend) Run(ctx context.Context) error {
	return f.session.Run(ctx, f.in, f.out)
}

// TUIFrontend runs the interpreter as a Bubble Tea program.
// Falls back to PlainFrontend if the program fails to start.
type TUIFrontend struct {
	shell    *shell.Shell
	opts     Options
	fallback *PlainFrontend
}

// Run starts the Bubble Tea program and blocks until it exits.
func (f *TUIFrontend) Run(ctx context.Context) error {
	m := NewModel(f.shell, WithPrompt(f.opts.Prompt), WithGreeting(f.opts.Greeting))
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(f.opts.In),
		tea.WithOutput(f.opts.Out),
	)

	_, err := p.Run()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return ctx.Err()
	default:
		return f.fallback.Run(ctx)
	}
}
