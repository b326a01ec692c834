// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the built-in pager.
// It maps keys to actions and provides descriptions for the help line.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the pager.
// Scrolling keys not listed here are handled by the viewport's own keymap.
type KeyMap struct {
	// Navigation keys
	Up     key.Binding // Scroll up one line
	Down   key.Binding // Scroll down one line
	PgUp   key.Binding // Scroll up one page
	PgDown key.Binding // Scroll down one page
	Home   key.Binding // Jump to top of document
	End    key.Binding // Jump to bottom of document

	// General UI control
	Quit key.Binding // Exit the pager
	Help key.Binding // Toggle the full help
}

// DefaultKeyMap provides the default keybindings, close to less(1).
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "y"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "e", "enter"),
		key.WithHelp("↓/j", "down"),
	),
	PgUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("b/pgup", "page up"),
	),
	PgDown: key.NewBinding(
		key.WithKeys("pgdown", "f", " "),
		key.WithHelp("f/space", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g/home", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G/end", "bottom"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "h"),
		key.WithHelp("?", "help"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.PgDown, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PgUp, k.PgDown},
		{k.Home, k.End},
		{k.Help, k.Quit},
	}
}
