// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package pager hands rendered text to an interactive pager and blocks until
// the user leaves it.
package pager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"opep/internal/logger"
	"opep/internal/ui"
	"opep/internal/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
)

// BuiltinName selects the built-in pager instead of an external command.
const BuiltinName = "builtin"

// fallbackPagers are tried in order when neither a configured pager nor $PAGER is set.
var fallbackPagers = []string{"less", "more"}

// terminateGrace is how long a cancelled pager gets after SIGTERM before it is killed.
const terminateGrace = 2 * time.Second

// Pager displays text to the user.
type Pager interface {
	Page(ctx context.Context, content string) error
}

// Env is the part of the process environment that pager selection depends on.
type Env struct {
	Getenv     func(string) string
	LookPath   func(string) (string, error)
	IsTerminal func() bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// OSEnv returns the environment of the current process.
func OSEnv() Env {
	return Env{
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
		IsTerminal: func() bool {
			return isTerminal(os.Stdin) && isTerminal(os.Stdout)
		},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Options selects the pager.
type Options struct {
	Command string // Pager command line, BuiltinName, or empty for $PAGER and fallbacks
	Title   string // Title shown by the built-in pager
}

// Select picks the pager for the given options and environment.
func Select(opts Options, env Env) (Pager, error) {
	if opts.Command == BuiltinName {
		return &Builtin{Title: opts.Title}, nil
	}
	if !env.IsTerminal() {
		logger.Debug("not attached to a terminal, writing plain text directly")
		return &Direct{Out: env.Stdout, Strip: true}, nil
	}

	line := strings.TrimSpace(opts.Command)
	if line == "" {
		line = strings.TrimSpace(env.Getenv("PAGER"))
	}
	if line != "" {
		argv, err := util.SplitCommand(line)
		if err != nil {
			return nil, fmt.Errorf("invalid pager command: %w", err)
		}
		if len(argv) > 0 {
			return newCommand(argv, env), nil
		}
	}

	for _, name := range fallbackPagers {
		if path, err := env.LookPath(name); err == nil {
			return newCommand([]string{path}, env), nil
		}
	}
	logger.Debug("no pager found, writing directly")
	return &Direct{Out: env.Stdout}, nil
}

// Direct writes the content straight to Out.
type Direct struct {
	Out   io.Writer
	Strip bool // Remove ANSI escape sequences first
}

// Page implements Pager.
func (d *Direct) Page(ctx context.Context, content string) error {
	if d.Strip {
		content = ansi.Strip(content)
	}
	if _, err := io.WriteString(d.Out, content); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Command runs an external pager with the content on its stdin.
type Command struct {
	Argv   []string
	Env    []string // Extra environment entries (KEY=value)
	Stdout io.Writer
	Stderr io.Writer
}

func newCommand(argv []string, env Env) *Command {
	c := &Command{Argv: argv, Stdout: env.Stdout, Stderr: env.Stderr}
	// less needs -R to pass color sequences through; respect a user LESS.
	if strings.TrimSuffix(filepath.Base(argv[0]), ".exe") == "less" && env.Getenv("LESS") == "" {
		c.Env = append(c.Env, "LESS=-R")
	}
	return c
}

// Page implements Pager.
func (c *Command) Page(ctx context.Context, content string) error {
	cmdDesc := strings.Join(c.Argv, " ")
	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	// Cancellation asks the pager to quit so it can restore the terminal.
	cmd.Cancel = func() error { return cmd.Process.Signal(syscall.SIGTERM) }
	cmd.WaitDelay = terminateGrace

	// The terminal delivers ^C to the pager as well; it decides what that means.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	logger.Debug("starting pager", "command", cmdDesc)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return fmt.Errorf("pager %s exited with status %d: %w", cmdDesc, status.ExitStatus(), err)
			}
		}
		return fmt.Errorf("pager %s failed: %w", cmdDesc, err)
	}
	return nil
}

// Builtin shows the content in the Bubble Tea pager from the ui package.
type Builtin struct {
	Title   string
	Options []tea.ProgramOption // Extra program options, mainly for tests
}

// Page implements Pager.
func (b *Builtin) Page(ctx context.Context, content string) error {
	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, b.Options...)

	p := tea.NewProgram(ui.NewPager(b.Title, content), opts...)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("built-in pager failed: %w", err)
	}
	return nil
}
