package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// SessionOptions configures a plain-text Session.
type SessionOptions struct {
	Prompt   string // Printed before each read; may be empty
	Greeting string // Printed once at start; may be empty
}

// Session runs the read-eval-print loop over plain text streams.
type Session struct {
	shell *Shell
	opts  SessionOptions
}

// NewSession creates a Session that executes lines with sh.
func NewSession(sh *Shell, opts SessionOptions) *Session {
	return &Session{shell: sh, opts: opts}
}

// Run reads lines from in until an exit command, end of input, or ctx is
// cancelled. Replies are written to out. It returns ctx.Err() on
// cancellation and the read error if in fails. After cancellation the
// reader goroutine stays blocked in Read until in yields or is closed.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	if s.opts.Greeting != "" {
		_, _ = fmt.Fprintln(out, s.opts.Greeting)
	}
	for {
		_, _ = fmt.Fprint(out, s.opts.Prompt)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				_, _ = fmt.Fprintln(out)
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			reply := s.shell.Execute(line)
			if reply.Text != "" {
				_, _ = fmt.Fprintln(out, reply.Text)
			}
			if reply.Exit {
				return nil
			}
		}
	}
}
