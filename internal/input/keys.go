// Package input maps on-screen buttons and keyboard keys onto calculator
// events.
package input

import "calcpad/internal/engine"

// Action is the result of translating a key press.
type Action struct {
	Event engine.Event
	// PreventDefault asks the host to suppress the key's default behaviour.
	PreventDefault bool
}

// FromKey translates a keyboard key name (as reported by KeyboardEvent.key)
// into an action. Unmapped keys report false.
func FromKey(key string) (Action, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return Action{Event: engine.DigitEvent(key[0])}, true
	}

	switch key {
	case ".":
		return Action{Event: engine.DecimalEvent}, true
	case "+":
		return Action{Event: engine.OperatorEvent(engine.Add)}, true
	case "-":
		return Action{Event: engine.OperatorEvent(engine.Subtract)}, true
	case "*":
		return Action{Event: engine.OperatorEvent(engine.Multiply)}, true
	case "/":
		// Browsers bind "/" to quick find.
		return Action{Event: engine.OperatorEvent(engine.Divide), PreventDefault: true}, true
	case "Enter", "=":
		return Action{Event: engine.EqualsEvent}, true
	case "Escape", "c", "C":
		return Action{Event: engine.ClearEvent}, true
	}

	return Action{}, false
}

// PreventDefaultKeys lists the keys whose default action must be suppressed.
// Pages need this up front because the decision is synchronous in the browser.
func PreventDefaultKeys() []string {
	return []string{"/"}
}
