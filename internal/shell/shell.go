// Package shell implements the line-oriented command interpreter on top of
// the address book.
package shell

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smileynet/assistant/internal/contacts"
	"github.com/smileynet/assistant/internal/logger"
)

// Reply is the result of executing one input line.
type Reply struct {
	Text string
	Exit bool // The session should end after Text is shown
}

// Shell executes commands against one address book. It is not safe for
// concurrent use.
type Shell struct {
	book     *contacts.AddressBook
	registry *Registry
	log      *logger.Logger
	now      func() time.Time
	upcoming []contacts.UpcomingOption
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(s *Shell) { s.log = l }
}

// WithClock sets the source of "today" for the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(s *Shell) { s.now = now }
}

// WithUpcomingOptions sets the options passed to the birthday report.
func WithUpcomingOptions(opts ...contacts.UpcomingOption) Option {
	return func(s *Shell) { s.upcoming = opts }
}

// New creates a Shell over book with the built-in commands registered.
func New(book *contacts.AddressBook, opts ...Option) *Shell {
	s := &Shell{
		book:     book,
		registry: NewRegistry(),
		log:      logger.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session", uuid.NewString())
	s.registerBuiltins()
	return s
}

// Book returns the address book the shell operates on.
func (s *Shell) Book() *contacts.AddressBook { return s.book }

// Commands returns the registered commands in help order.
func (s *Shell) Commands() []*Command { return s.registry.Commands() }

// Execute parses and runs one input line. Handler errors and panics are
// converted to reply text here; nothing propagates to the caller.
func (s *Shell) Execute(line string) (reply Reply) {
	name, args := ParseInput(line)
	if name == "" {
		return Reply{}
	}

	cmd, ok := s.registry.Lookup(name)
	if !ok {
		s.log.Debug("unknown command", "command", name)
		return Reply{Text: msgInvalidCommand}
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("command panicked", "command", cmd.Name, "panic", r)
			reply = Reply{Text: fmt.Sprintf("Unexpected error: %v", r)}
		}
	}()

	out, err := cmd.Run(args)
	if err != nil {
		s.log.Warn("command failed", "command", cmd.Name, "args", len(args), "error", err)
		return Reply{Text: Describe(err)}
	}
	s.log.Debug("command executed", "command", cmd.Name, "args", len(args))
	return Reply{Text: out, Exit: cmd.Exit}
}
