package tui

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/smileynet/assistant/internal/contacts"
	"github.com/smileynet/assistant/internal/shell"
)

func TestIsTTY_NonFile(t *testing.T) {
	var buf bytes.Buffer
	if isTTY(&buf) {
		t.Error("non-*os.File value should not be a TTY")
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if isTTY(f) {
		t.Error("regular file should not be a TTY")
	}
}

func TestNewFrontend_PlainForNonTTY(t *testing.T) {
	sh := shell.New(contacts.NewAddressBook())
	fe := NewFrontend(sh, Options{In: strings.NewReader(""), Out: &bytes.Buffer{}})

	if _, ok := fe.(*PlainFrontend); !ok {
		t.Errorf("NewFrontend() = %T, want *PlainFrontend", fe)
	}
}

func TestNewFrontend_ForcePlain(t *testing.T) {
	sh := shell.New(contacts.NewAddressBook())
	fe := NewFrontend(sh, Options{In: os.Stdin, Out: os.Stdout, ForcePlain: true})

	if _, ok := fe.(*PlainFrontend); !ok {
		t.Errorf("NewFrontend(ForcePlain) = %T, want *PlainFrontend", fe)
	}
}

func TestPlainFrontend_Run(t *testing.T) {
	// Given a plain frontend fed a short script
	sh := shell.New(contacts.NewAddressBook())
	var out bytes.Buffer
	fe := NewFrontend(sh, Options{
		In:       strings.NewReader("hello\nexit\n"),
		Out:      &out,
		Prompt:   "Enter a command: ",
		Greeting: "Welcome to the assistant bot!",
	})

	// When it runs
	if err := fe.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Then the transcript matches the session contract
	want := "Welcome to the assistant bot!\n" +
		"Enter a command: How can I help you?\n" +
		"Enter a command: Good bye!\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
