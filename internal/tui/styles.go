package tui

import (
	"calcpad/internal/input"
	"calcpad/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	cellWidth  = 7
	cellHeight = 3
	gap        = 1
)

type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	display lipgloss.Style
	hint    lipgloss.Style
	buttons map[input.ButtonKind]lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.ButtonText)).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true)
	accent := button.Foreground(lipgloss.Color("#ffffff"))

	gridWidth := 4*cellWidth + 3*gap

	return styles{
		app: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Surface)).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Bold(true).
			Width(gridWidth).
			Align(lipgloss.Center).
			MarginBottom(1),
		display: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Background(lipgloss.Color(p.Display)).
			Width(gridWidth).
			Align(lipgloss.Right).
			Padding(1, 1).
			MarginBottom(1),
		hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			MarginTop(1),
		buttons: map[input.ButtonKind]lipgloss.Style{
			input.KindDigit:    button.Background(lipgloss.Color(p.Digit)),
			input.KindOperator: accent.Background(lipgloss.Color(p.Operator)),
			input.KindClear:    accent.Background(lipgloss.Color(p.Clear)),
			input.KindEquals:   accent.Background(lipgloss.Color(p.Equals)),
		},
	}
}

func (s styles) renderButton(b input.Button) string {
	w := b.ColSpan*cellWidth + (b.ColSpan-1)*gap
	h := b.RowSpan*cellHeight + (b.RowSpan-1)*gap
	return s.buttons[b.Kind].Width(w).Height(h).Render(b.Label)
}

// renderGrid lays out the keypad. A trailing button spanning several rows is
// drawn beside the rows it covers.
func (s styles) renderGrid(rows [][]input.Button) string {
	var out []string
	for i := 0; i < len(rows); i++ {
		row := rows[i]
		last := row[len(row)-1]

		if last.RowSpan > 1 && i+last.RowSpan <= len(rows) {
			left := []string{s.renderRow(row[:len(row)-1])}
			for _, next := range rows[i+1 : i+last.RowSpan] {
				left = append(left, s.renderRow(next))
			}
			out = append(out, lipgloss.JoinHorizontal(lipgloss.Top,
				lipgloss.JoinVertical(lipgloss.Left, spaced(left, "")...),
				" ",
				s.renderButton(last),
			))
			i += last.RowSpan - 1
			continue
		}

		out = append(out, s.renderRow(row))
	}
	return lipgloss.JoinVertical(lipgloss.Left, spaced(out, "")...)
}

func (s styles) renderRow(row []input.Button) string {
	cells := make([]string, 0, len(row))
	for _, b := range row {
		cells = append(cells, s.renderButton(b))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced(cells, " ")...)
}

// spaced interleaves sep between parts.
func spaced(parts []string, sep string) []string {
	out := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
