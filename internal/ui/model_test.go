package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(lines, "\n")
}

func sized(t *testing.T, content string) *Model {
	t.Helper()
	m := NewPager("PEP 8", content)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	require.True(t, m.ready)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadingUntilSized(t *testing.T) {
	m := NewPager("PEP 8", "text")
	assert.Equal(t, "Loading...", m.View())

	_, cmd := m.Update(runes("j"))
	assert.Nil(t, cmd)
}

func TestModel_ViewShowsTitleAndContent(t *testing.T) {
	m := sized(t, "hello pager")
	view := m.View()
	assert.Contains(t, view, "PEP 8")
	assert.Contains(t, view, "hello pager")
	assert.Contains(t, view, "quit")
}

func TestModel_ViewportFitsBetweenHeaderAndFooter(t *testing.T) {
	m := sized(t, numberedLines(100))
	assert.Equal(t, 20-headerHeight-footerHeight, m.viewport.Height)
}

func TestModel_Scrolling(t *testing.T) {
	m := sized(t, numberedLines(100))
	assert.Equal(t, 0, m.viewport.YOffset)

	m.Update(runes("j"))
	assert.Equal(t, 1, m.viewport.YOffset)

	m.Update(runes("k"))
	assert.Equal(t, 0, m.viewport.YOffset)

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.True(t, m.viewport.AtBottom())

	m.Update(runes("g"))
	assert.True(t, m.viewport.AtTop())

	m.Update(runes(" "))
	assert.Equal(t, m.viewport.Height, m.viewport.YOffset)
}

func TestModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := sized(t, "text")
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, msg.String())
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_HelpToggleResizesViewport(t *testing.T) {
	m := sized(t, numberedLines(100))
	before := m.viewport.Height

	m.Update(runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.viewport.Height, before)

	m.Update(runes("?"))
	assert.Equal(t, before, m.viewport.Height)
}
