// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- View Helpers ---

func (m *Model) renderHeader() string {
	title := titleStyle.Render(m.title)
	return lipgloss.NewStyle().MaxWidth(m.width).Render(title) + "\n" + m.renderRule()
}

func (m *Model) renderFooter() string {
	percent := footerPercentStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	helpView := m.help.View(m.keymap)

	gap := m.width - lipgloss.Width(helpView) - lipgloss.Width(percent)
	if gap < 1 {
		gap = 1
	}
	line := footerStyle.Render(helpView + strings.Repeat(" ", gap) + percent)
	return m.renderRule() + "\n" + line
}

func (m *Model) renderRule() string {
	width := m.width
	if width < 1 {
		width = 1
	}
	return ruleStyle.Render(strings.Repeat("─", width))
}
