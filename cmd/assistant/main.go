package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"

	"github.com/smileynet/assistant/internal/config"
	"github.com/smileynet/assistant/internal/contacts"
	"github.com/smileynet/assistant/internal/logger"
	"github.com/smileynet/assistant/internal/shell"
	"github.com/smileynet/assistant/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitSuccess = 0
	exitSetup   = 2
)

// todayLayout is the accepted --today format.
const todayLayout = "2006-01-02"

// CLI is the top-level command structure for assistant.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Config  string           `help:"Extra config file, applied after user and project config." placeholder:"FILE"`
	Shell   ShellCmd         `cmd:"" default:"withargs" help:"Start the contact assistant (default)."`
}

// ShellCmd runs the interactive contact assistant.
type ShellCmd struct {
	NoTUI  bool   `help:"Force the plain line-based interface even on a TTY." default:"false"`
	Script string `help:"Read commands from FILE instead of the terminal." placeholder:"FILE"`
	Today  string `help:"Reference date for birthday reports (YYYY-MM-DD)." placeholder:"DATE"`
}

// Run executes the shell command.
func (s *ShellCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := s.run(ctx, cli.Config, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// run wires config, logging, the shell, and a front end, then blocks until
// the session ends.
func (s *ShellCmd) run(ctx context.Context, configPath string, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	defer log.Sync()

	opts, err := s.shellOptions(cfg, log)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	sh := shell.New(contacts.NewAddressBook(), opts...)

	forcePlain := s.NoTUI
	if s.Script != "" {
		f, err := os.Open(s.Script)
		if err != nil {
			return fmt.Errorf("shell: opening script: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
		forcePlain = true
	}

	log.Info("session started", "version", version, "script", s.Script != "")
	fe := tui.NewFrontend(sh, tui.Options{
		In:         in,
		Out:        out,
		ForcePlain: forcePlain,
		Prompt:     cfg.Shell.Prompt,
		Greeting:   cfg.Shell.Greeting,
	})
	err = fe.Run(ctx)
	log.Info("session ended", "contacts", sh.Book().Len())
	return err
}

// shellOptions maps config and flags onto shell options.
func (s *ShellCmd) shellOptions(cfg *config.Config, log *logger.Logger) ([]shell.Option, error) {
	opts := []shell.Option{
		shell.WithLogger(log),
		shell.WithUpcomingOptions(
			contacts.WithWindow(cfg.Birthdays.WindowDays),
			contacts.WithLeapDayPolicy(contacts.LeapDayPolicy(cfg.Birthdays.LeapDay)),
			contacts.WithWeekendRollForward(cfg.Birthdays.RollWeekends),
		),
	}
	if s.Today != "" {
		today, err := time.Parse(todayLayout, s.Today)
		if err != nil {
			return nil, fmt.Errorf("invalid --today %q, want YYYY-MM-DD: %w", s.Today, err)
		}
		opts = append(opts, shell.WithClock(func() time.Time { return today }))
	}
	return opts, nil
}

// loadConfig loads layered config from user, project, and explicit paths
// with env overrides, then validates it.
func loadConfig(extra string) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/assistant/config.yaml"),
		".assistant/config.yaml",
		extra,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("assistant"),
		kong.Description("A contact book with birthday reminders."),
		kong.Vars{"version": version + " " + commit + " " + date},
		kong.Bind(&cli),
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
