package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errExitCalled is a sentinel used to catch kong's os.Exit calls in tests.
var errExitCalled = errors.New("exit called")

// isolateEnv points HOME at an empty directory and clears env overrides so
// the developer's own config cannot leak into a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ASSISTANT_LOG_LEVEL", "")
	t.Setenv("ASSISTANT_LOG_FILE", "")
	t.Setenv("ASSISTANT_BIRTHDAY_WINDOW", "")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCLI_Parse(t *testing.T) {
	t.Run("version flag prints version commit and date", func(t *testing.T) {
		// Given: a CLI parser with version, commit, and date fields
		var cli CLI
		var buf bytes.Buffer
		k, err := kong.New(&cli,
			kong.Vars{"version": "v1.0.0 abc1234 2026-01-01T00:00:00Z"},
			kong.Writers(&buf, &buf),
			kong.Exit(func(int) { panic(errExitCalled) }),
		)
		require.NoError(t, err)

		// When: --version flag is passed
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic from --version flag")
			err, ok := r.(error)
			if !ok || !errors.Is(err, errExitCalled) {
				panic(r)
			}

			// Then: version, commit, and date are all present in output
			for _, want := range []string{"v1.0.0", "abc1234", "2026-01-01T00:00:00Z"} {
				assert.Contains(t, buf.String(), want)
			}
		}()

		k.Parse([]string{"--version"}) //nolint:errcheck // --version triggers panic via Exit hook
	})

	t.Run("no args selects the shell command", func(t *testing.T) {
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		require.NoError(t, err)

		kctx, err := k.Parse([]string{})

		require.NoError(t, err)
		assert.Equal(t, "shell", kctx.Command())
	})

	t.Run("shell flags are accepted without the command word", func(t *testing.T) {
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		require.NoError(t, err)

		_, err = k.Parse([]string{"--no-tui", "--today", "2024-06-10", "--script", "cmds.txt"})

		require.NoError(t, err)
		assert.True(t, cli.Shell.NoTUI)
		assert.Equal(t, "2024-06-10", cli.Shell.Today)
		assert.Equal(t, "cmds.txt", cli.Shell.Script)
	})

	t.Run("config flag is global", func(t *testing.T) {
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		require.NoError(t, err)

		_, err = k.Parse([]string{"--config", "extra.yaml", "shell"})

		require.NoError(t, err)
		assert.Equal(t, "extra.yaml", cli.Config)
	})
}

func TestShellCmd_Run_Script(t *testing.T) {
	// Given: a script that adds a contact with a weekend birthday
	isolateEnv(t)
	script := writeFile(t, "cmds.txt", strings.Join([]string{
		"add John 1234567890",
		"add-birthday John 15.06.1990",
		"birthdays",
		"close",
	}, "\n"))
	cmd := &ShellCmd{Script: script, Today: "2024-06-10"}
	var out bytes.Buffer

	// When: the shell runs the script
	err := cmd.run(context.Background(), "", strings.NewReader(""), &out)

	// Then: the Saturday birthday is reported on Monday
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the assistant bot!\n"+
		"Enter a command: Contact added.\n"+
		"Enter a command: Birthday added.\n"+
		"Enter a command: Monday: john\n"+
		"Enter a command: Good bye!\n", out.String())
}

func TestShellCmd_Run_ConfigAndLog(t *testing.T) {
	// Given: a config file that changes the prompt and enables a log file
	isolateEnv(t)
	logPath := filepath.Join(t.TempDir(), "logs", "assistant.log")
	cfgPath := writeFile(t, "config.yaml", "shell:\n  prompt: \"$ \"\n  greeting: \"\"\nlog:\n  file: "+logPath+"\n")
	cmd := &ShellCmd{NoTUI: true}
	var out bytes.Buffer

	// When: a session runs over non-terminal streams
	err := cmd.run(context.Background(), cfgPath, strings.NewReader("hello\nexit\n"), &out)

	// Then: the configured prompt is used and the session is logged
	require.NoError(t, err)
	assert.Equal(t, "$ How can I help you?\n$ Good bye!\n", out.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
	assert.Contains(t, string(data), "session ended")
}

func TestShellCmd_Run_SetupErrors(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name    string
		cmd     ShellCmd
		config  string
		wantErr string
	}{
		{"bad today", ShellCmd{Today: "10.06.2024"}, "", "invalid --today"},
		{"missing script", ShellCmd{Script: filepath.Join(t.TempDir(), "nope.txt")}, "", "opening script"},
		{"invalid config", ShellCmd{}, "birthdays:\n  window_days: 0\n", "window_days"},
		{"unknown config key", ShellCmd{}, "colour: red\n", "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfgPath string
			if tt.config != "" {
				cfgPath = writeFile(t, "config.yaml", tt.config)
			}

			err := tt.cmd.run(context.Background(), cfgPath, strings.NewReader(""), &bytes.Buffer{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, exitSetup, exitCode(err))
		})
	}
}

func TestShellCmd_Run_EnvOverride(t *testing.T) {
	// Given: a one-day window from the environment
	isolateEnv(t)
	t.Setenv("ASSISTANT_BIRTHDAY_WINDOW", "1")
	script := writeFile(t, "cmds.txt", "add Ann 1234567890\nadd-birthday Ann 12.06.1990\nbirthdays\n")
	cmd := &ShellCmd{Script: script, Today: "2024-06-10"}
	var out bytes.Buffer

	// When: the script runs to end of input
	err := cmd.run(context.Background(), "", nil, &out)

	// Then: a birthday two days out is outside the window
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No birthdays next week.")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitSetup, exitCode(errors.New("boom")))
}
