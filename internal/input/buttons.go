package input

import "calcpad/internal/engine"

// ClearLabel is the caption of the clear button.
const ClearLabel = "Clear"

// ButtonKind selects how a button is styled.
type ButtonKind string

const (
	KindDigit    ButtonKind = "digit"
	KindOperator ButtonKind = "operator"
	KindClear    ButtonKind = "clear"
	KindEquals   ButtonKind = "equals"
)

// Button is one cell of the keypad grid.
type Button struct {
	Label   string
	Kind    ButtonKind
	ColSpan int
	RowSpan int
}

func (b Button) Event() engine.Event {
	e, _ := FromButton(b.Label)
	return e
}

func btn(label string, kind ButtonKind) Button {
	return Button{Label: label, Kind: kind, ColSpan: 1, RowSpan: 1}
}

// Layout returns the keypad as rows of a four column grid. "=" spans the last
// two rows, so the final row only has three columns of its own.
func Layout() [][]Button {
	digit := func(l string) Button { return btn(l, KindDigit) }
	op := func(l string) Button { return btn(l, KindOperator) }

	clr := btn(ClearLabel, KindClear)
	clr.ColSpan = 2
	equals := btn("=", KindEquals)
	equals.RowSpan = 2
	zero := digit("0")
	zero.ColSpan = 2

	return [][]Button{
		{clr, op("÷"), op("×")},
		{digit("7"), digit("8"), digit("9"), op("-")},
		{digit("4"), digit("5"), digit("6"), op("+")},
		{digit("1"), digit("2"), digit("3"), equals},
		{zero, digit(".")},
	}
}

// FromButton translates a button caption into an event.
func FromButton(label string) (engine.Event, bool) {
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return engine.DigitEvent(label[0]), true
	}

	switch label {
	case ".":
		return engine.DecimalEvent, true
	case "=":
		return engine.EqualsEvent, true
	case ClearLabel:
		return engine.ClearEvent, true
	case "+", "-", "×", "÷":
		op, _ := engine.ParseOperator(label)
		return engine.OperatorEvent(op), true
	}

	return engine.Event{}, false
}
