// Package engine implements the four-function calculator state machine.
package engine

import "strings"

// State is one snapshot of the calculator. Transitions return a new State and
// never modify the receiver.
type State struct {
	display         string
	pendingOperand  float64
	hasOperand      bool
	pendingOperator Operator
	awaitingOperand bool
}

// New returns the state shown when the widget is mounted.
func New() State {
	return State{display: "0"}
}

func (s State) Display() string { return s.display }

func (s State) AwaitingOperand() bool { return s.awaitingOperand }

// PendingOperand returns the left-hand operand of an operator chain in progress.
func (s State) PendingOperand() (float64, bool) {
	return s.pendingOperand, s.hasOperand
}

// PendingOperator returns the operator waiting for its right-hand operand.
func (s State) PendingOperator() (Operator, bool) {
	return s.pendingOperator, s.pendingOperator != ""
}

// Digit enters d. A display of "0" is replaced rather than extended.
func (s State) Digit(d byte) State {
	if d < '0' || d > '9' {
		return s
	}

	if s.awaitingOperand {
		s.display = string(d)
		s.awaitingOperand = false
		return s
	}

	if s.display == "0" {
		s.display = string(d)
	} else {
		s.display += string(d)
	}
	return s
}

// DecimalPoint starts the fractional part; a second point in the same operand
// is ignored.
func (s State) DecimalPoint() State {
	if s.awaitingOperand {
		s.display = "0."
		s.awaitingOperand = false
		return s
	}

	if !strings.Contains(s.display, ".") {
		s.display += "."
	}
	return s
}

// Operator folds the current operand into the chain and selects op as the
// next pending operator. Evaluation is strictly left to right.
func (s State) Operator(op Operator) State {
	x := ParseNumber(s.display)

	switch {
	case !s.hasOperand:
		s.pendingOperand = x
		s.hasOperand = true
	case s.awaitingOperand && s.pendingOperator != "":
		// No operand entered since the last operator: only replace it.
	case s.pendingOperator != "":
		result := Apply(s.pendingOperand, x, s.pendingOperator)
		s.display = Format(result)
		s.pendingOperand = result
	}

	s.pendingOperator = op
	s.awaitingOperand = true
	return s
}

// Equals resolves the pending operation. Without one it does nothing.
func (s State) Equals() State {
	if !s.hasOperand || s.pendingOperator == "" {
		return s
	}

	result := Apply(s.pendingOperand, ParseNumber(s.display), s.pendingOperator)
	s.display = Format(result)
	s.pendingOperand = 0
	s.hasOperand = false
	s.pendingOperator = ""
	s.awaitingOperand = true
	return s
}

// Clear returns the initial state.
func (s State) Clear() State {
	return New()
}
