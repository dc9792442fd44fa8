package shell

import (
	"fmt"
	"strings"
)

// HandlerFunc runs a command with its arguments and returns the reply.
type HandlerFunc func(args []string) (string, error)

// Command is a named interpreter command.
type Command struct {
	Name    string
	Aliases []string
	Usage   string // Argument synopsis, e.g. "<name> <phone>"
	Help    string
	Exit    bool // End the session after replying
	Run     HandlerFunc
}

// Registry maps command words to commands, keeping registration order for
// help output. It is not safe for concurrent use; registration should
// happen at startup.
type Registry struct {
	commands map[string]*Command
	order    []*Command
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds a command under its name and aliases. Overwrites if a word
// is already taken. Panics if the name is empty or Run is nil (programmer error).
func (r *Registry) Register(c Command) {
	if c.Name == "" {
		panic("shell: Register called with empty name")
	}
	if c.Run == nil {
		panic(fmt.Sprintf("shell: Register called with nil handler for %q", c.Name))
	}
	cmd := &c
	for _, word := range append([]string{c.Name}, c.Aliases...) {
		r.commands[strings.ToLower(word)] = cmd
	}
	r.order = append(r.order, cmd)
}

// Lookup returns the command registered under word.
func (r *Registry) Lookup(word string) (*Command, bool) {
	c, ok := r.commands[word]
	return c, ok
}

// Commands returns registered commands in registration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, len(r.order))
	copy(out, r.order)
	return out
}
