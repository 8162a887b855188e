package tui

import (
	"strings"
	"testing"

	"calcpad/internal/config"
	"calcpad/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T, v theme.Variant) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Variant = v
	return New(cfg)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestKeysDriveCalculator(t *testing.T) {
	m := newModel(t, theme.VariantDark)

	m = send(t, m, runes("5"), runes("+"), runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "8", m.Display())
	assert.Contains(t, m.View(), "8")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "0", m.Display())

	m = send(t, m, runes("9"), runes("/"), runes("0"), runes("="))
	assert.Equal(t, "Infinity", m.Display())

	m = send(t, m, runes("c"))
	assert.Equal(t, "0", m.Display())
}

func TestUnmappedKeysIgnored(t *testing.T) {
	m := newModel(t, theme.VariantDark)

	m = send(t, m, runes("1"), runes("x"), tea.KeyMsg{Type: tea.KeyTab}, runes("2"))
	assert.Equal(t, "12", m.Display())
}

func TestThemeToggle(t *testing.T) {
	m := newModel(t, theme.VariantToggle)
	m = send(t, m, runes("4"), runes("t"))

	assert.Equal(t, theme.ModeLight, m.widget.Theme().Mode)
	assert.Equal(t, "4", m.Display())

	d := newModel(t, theme.VariantDark)
	d = send(t, d, runes("t"))
	assert.Equal(t, theme.ModeDark, d.widget.Theme().Mode)
}

func TestQuitUnmounts(t *testing.T) {
	m := newModel(t, theme.VariantDark)
	require.Equal(t, 1, m.keyboard.Listeners())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m = next.(Model)
	assert.False(t, m.widget.Mounted())
	assert.Equal(t, 0, m.keyboard.Listeners())
	assert.Equal(t, "", m.View())
}

func TestViewRendersKeypad(t *testing.T) {
	m := newModel(t, theme.VariantToggle)
	view := m.View()

	for _, label := range []string{"Clear", "÷", "×", "=", "7", "0", "."} {
		assert.True(t, strings.Contains(view, label), "missing %q", label)
	}
	assert.Contains(t, view, "toggle theme")
}
