package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/assistant/internal/contacts"
)

// User-facing replies shared by several commands.
const (
	msgInvalidCommand  = "Invalid command."
	msgContactNotFound = "Contact not found."
	msgInvalidDate     = "Invalid date format. Use DD.MM.YYYY."
	msgNeedNamePhone   = "Invalid input. Please provide both name and phone number."
	msgNeedName        = "Please provide a contact name."
	msgNeedNameDate    = "Please provide both the contact name and birthday in the format 'DD.MM.YYYY'."
)

func (s *Shell) registerBuiltins() {
	r := s.registry
	r.Register(Command{Name: "hello", Help: "Say hello.", Run: s.hello})
	r.Register(Command{Name: "add", Usage: "<name> <phone>", Help: "Add a contact, replacing any with the same name.", Run: s.addContact})
	r.Register(Command{Name: "change", Usage: "<name> <phone>", Help: "Replace a contact's first phone.", Run: s.changePhone})
	r.Register(Command{Name: "phone", Usage: "<name>", Help: "Show a contact's first phone.", Run: s.showPhone})
	r.Register(Command{Name: "all", Help: "List all contacts.", Run: s.showAll})
	r.Register(Command{Name: "add-birthday", Usage: "<name> <DD.MM.YYYY>", Help: "Set a contact's birthday.", Run: s.addBirthday})
	r.Register(Command{Name: "show-birthday", Usage: "<name>", Help: "Show a contact's birthday.", Run: s.showBirthday})
	r.Register(Command{Name: "birthdays", Help: "List birthdays in the coming week.", Run: s.birthdays})
	r.Register(Command{Name: "delete", Usage: "<name>", Help: "Delete a contact.", Run: s.deleteContact})
	r.Register(Command{Name: "help", Help: "List commands.", Run: s.help})
	r.Register(Command{Name: "close", Aliases: []string{"exit"}, Help: "Leave the assistant.", Exit: true, Run: s.goodbye})
}

func (s *Shell) hello([]string) (string, error) {
	return "How can I help you?", nil
}

func (s *Shell) goodbye([]string) (string, error) {
	return "Good bye!", nil
}

func (s *Shell) addContact(args []string) (string, error) {
	if len(args) != 2 {
		return "", &ArityError{Command: "add", Got: len(args), Message: msgNeedNamePhone}
	}
	r, err := contacts.NewRecord(FoldName(args[0]))
	if err != nil {
		return "", err
	}
	if err := r.AddPhone(args[1]); err != nil {
		return "", err
	}
	s.book.AddRecord(r)
	return "Contact added.", nil
}

// changePhone replaces the first phone, or adds one if the contact has none.
func (s *Shell) changePhone(args []string) (string, error) {
	if len(args) != 2 {
		return "", &ArityError{Command: "change", Got: len(args), Message: msgNeedNamePhone}
	}
	r, err := s.book.Lookup(FoldName(args[0]))
	if err != nil {
		return "", err
	}
	var old string
	if phones := r.Phones(); len(phones) > 0 {
		old = phones[0].String()
	}
	if err := r.EditPhone(old, args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact for %s updated.", args[0]), nil
}

func (s *Shell) showPhone(args []string) (string, error) {
	if len(args) < 1 {
		return "", &ArityError{Command: "phone", Got: len(args), Message: msgNeedName}
	}
	name := FoldName(args[0])
	r, err := s.book.Lookup(name)
	if err != nil {
		return "", err
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return "", &contacts.NotFoundError{Name: name}
	}
	return phones[0].String(), nil
}

func (s *Shell) showAll([]string) (string, error) {
	records := s.book.Records()
	if len(records) == 0 {
		return "No contacts saved.", nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Shell) addBirthday(args []string) (string, error) {
	if len(args) != 2 {
		return "", &ArityError{Command: "add-birthday", Got: len(args), Message: msgNeedNameDate}
	}
	r, err := s.book.Lookup(FoldName(args[0]))
	if err != nil {
		return "", err
	}
	b, err := contacts.ParseBirthday(args[1])
	if err != nil {
		if errors.Is(err, contacts.ErrInvalidDate) {
			return msgInvalidDate, nil
		}
		return "", err
	}
	if err := r.SetBirthday(b); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (s *Shell) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", &ArityError{Command: "show-birthday", Got: len(args), Message: msgNeedName}
	}
	if r, ok := s.book.Find(FoldName(args[0])); ok {
		if b, ok := r.Birthday(); ok {
			return b.Display(), nil
		}
	}
	return "Birthday not found for this contact.", nil
}

func (s *Shell) birthdays([]string) (string, error) {
	report := s.book.UpcomingBirthdays(s.now(), s.upcoming...)
	if len(report) == 0 {
		return "No birthdays next week.", nil
	}
	return strings.Join(report.Lines(), "\n"), nil
}

func (s *Shell) deleteContact(args []string) (string, error) {
	if len(args) < 1 {
		return "", &ArityError{Command: "delete", Got: len(args), Message: msgNeedName}
	}
	name := FoldName(args[0])
	if _, err := s.book.Lookup(name); err != nil {
		return "", err
	}
	s.book.Delete(name)
	return "Contact deleted.", nil
}

func (s *Shell) help([]string) (string, error) {
	cmds := s.registry.Commands()
	synopses := make([]string, len(cmds))
	width := 0
	for i, c := range cmds {
		words := append([]string{c.Name}, c.Aliases...)
		synopses[i] = strings.Join(words, "/")
		if c.Usage != "" {
			synopses[i] += " " + c.Usage
		}
		width = max(width, len(synopses[i]))
	}

	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = fmt.Sprintf("  %-*s  %s", width, synopses[i], c.Help)
	}
	return "Commands:\n" + strings.Join(lines, "\n"), nil
}
