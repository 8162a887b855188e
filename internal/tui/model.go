// Package tui runs the calculator widget in a terminal.
package tui

import (
	"calcpad/internal/config"
	"calcpad/internal/input"
	"calcpad/internal/observability"
	"calcpad/internal/widget"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Model is the bubbletea model for one mounted widget.
type Model struct {
	widget   *widget.Widget
	keyboard *input.Keyboard
	title    string
	keys     keyMap
	help     help.Model
	styles   styles
	quitting bool
}

// New mounts a widget of the configured variant on a terminal keyboard.
func New(cfg config.Config) Model {
	w := widget.New(cfg.Variant)
	kbd := input.NewKeyboard()
	w.Mount(kbd)

	keys := defaultKeyMap()
	keys.Theme.SetEnabled(cfg.Variant.Toggleable())

	return Model{
		widget:   w,
		keyboard: kbd,
		title:    cfg.Title,
		keys:     keys,
		help:     help.New(),
		styles:   newStyles(w.Theme().Palette()),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.widget.Unmount()
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Theme):
			if m.widget.ToggleTheme() {
				m.styles = newStyles(m.widget.Theme().Palette())
			}
			return m, nil
		}

		if name := browserKey(msg); name != "" {
			res := m.keyboard.Dispatch(name)
			if !res.Handled {
				observability.Logger.Debug("unhandled key", zap.String("key", name))
			}
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render(m.title),
		m.styles.display.Render(m.widget.View().Display),
		m.styles.renderGrid(input.Layout()),
		m.styles.hint.Render(m.help.View(m.keys)),
	)
	return m.styles.app.Render(body)
}

// Display returns the text currently shown.
func (m Model) Display() string {
	return m.widget.View().Display
}
