// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the built-in pager: a Bubble Tea program that shows
// pre-rendered text in a scrollable viewport.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model of the pager.
type Model struct {
	title   string
	content string

	viewport viewport.Model
	help     help.Model
	keymap   KeyMap

	ready  bool
	width  int
	height int
}

// NewPager creates a pager model showing content under title.
// The content is displayed as-is, escape sequences included.
func NewPager(title, content string) *Model {
	return &Model{
		title:   title,
		content: content,
		help:    help.New(),
		keymap:  DefaultKeyMap,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, handleWindowSizeMsg(m, msg)
	case tea.KeyMsg:
		if !m.ready {
			if key.Matches(msg, m.keymap.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		return m, handleKeyMsg(m, msg)
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.renderHeader() + "\n" + m.viewport.View() + "\n" + m.renderFooter()
}
