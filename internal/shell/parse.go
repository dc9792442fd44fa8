package shell

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseInput splits a line on whitespace. The command word is lower-cased;
// arguments are returned unchanged. A blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// FoldName lower-cases a contact name for use as an address book key.
func FoldName(name string) string {
	return cases.Lower(language.Und).String(name)
}
