// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Message Handlers ---
// These functions handle specific message types received by the model's Update function.

func handleWindowSizeMsg(m *Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	if !m.ready {
		// The viewport cannot be sized until the first WindowSizeMsg arrives.
		m.viewport = viewport.New(m.width, 1)
		m.viewport.SetContent(m.content)
		m.ready = true
	} else {
		m.viewport.Width = m.width
	}
	m.resizeViewport()
	return nil
}

// resizeViewport fits the viewport between the header and the footer, whose
// height depends on whether the full help is shown.
func (m *Model) resizeViewport() {
	footer := lipgloss.Height(m.renderFooter())
	height := m.height - headerHeight - footer
	if height < 1 {
		height = 1
	}
	m.viewport.Height = height
	// Keep the offset valid after the viewport grew.
	if m.viewport.PastBottom() {
		m.viewport.GotoBottom()
	}
}
