// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package render turns markdown into styled terminal text held in memory.
// Color output is forced, so the result keeps its styling when it is later
// piped into a pager rather than written to a terminal.
package render

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	// DefaultWidth is used when no width is configured and stdout has no size.
	DefaultWidth = 80

	// AutoStyle picks the dark or light style from the terminal background.
	AutoStyle = "auto"

	// DefaultStyle is used when no style is configured.
	DefaultStyle = styles.DarkStyle
)

// Options configures a Renderer.
type Options struct {
	Style string // glamour standard style name, or "auto"
	Width int    // word-wrap width; 0 means the terminal width
	Plain bool   // strip all styling from the output
}

// Renderer renders markdown documents for the terminal.
type Renderer struct {
	tr    *glamour.TermRenderer
	plain bool
}

// StyleNames lists the accepted style names.
func StyleNames() []string {
	names := []string{AutoStyle}
	for name := range styles.DefaultStyles {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

// ValidStyle reports whether name is an accepted style name.
func ValidStyle(name string) bool {
	if name == AutoStyle {
		return true
	}
	_, ok := styles.DefaultStyles[name]
	return ok
}

// New creates a renderer.
func New(opts Options) (*Renderer, error) {
	style := opts.Style
	if style == "" {
		style = DefaultStyle
	}
	if !ValidStyle(style) {
		return nil, fmt.Errorf("unknown style %q (available: %s)", style, strings.Join(StyleNames(), ", "))
	}
	if style == AutoStyle {
		// glamour's own auto style falls back to notty when stdout is not a
		// terminal, so the background is queried here instead.
		if termenv.HasDarkBackground() {
			style = styles.DarkStyle
		} else {
			style = styles.LightStyle
		}
	}

	profile := termenv.ANSI256
	if opts.Plain {
		style = styles.NoTTYStyle
		profile = termenv.Ascii
	}

	width := opts.Width
	if width <= 0 {
		width = TerminalWidth()
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithColorProfile(profile),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Renderer{tr: tr, plain: opts.Plain}, nil
}

// Render returns the terminal representation of a markdown document.
func (r *Renderer) Render(markdown []byte) ([]byte, error) {
	out, err := r.tr.RenderBytes(markdown)
	if err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	if r.plain {
		out = []byte(ansi.Strip(string(out)))
	}
	return out, nil
}

// TerminalWidth returns the width of the terminal attached to stdout, or
// DefaultWidth when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
