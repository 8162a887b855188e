package calculator

import "calcpad/internal/engine"

// CalcRequest is the JSON body for binary operations (add, subtract, multiply, divide).
type CalcRequest struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// CalcResponse is the JSON response for binary operations. Display is the
// keypad rendering of the result, so division by zero comes back as
// "Infinity" or "NaN" rather than an error.
type CalcResponse struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Display   string  `json:"display"`
}

// Input sources accepted by POST /calculator/evaluate.
const (
	SourceButton = "button"
	SourceKey    = "key"
)

// EvaluateRequest is the JSON body for POST /calculator/evaluate.
type EvaluateRequest struct {
	Source string   `json:"source,omitempty"` // "button" (default) or "key"
	Inputs []string `json:"inputs"`           // button labels or key names
}

// EvaluateResponse is the JSON response for POST /calculator/evaluate.
type EvaluateResponse struct {
	Source  string          `json:"source"`
	Steps   []EvaluateStep  `json:"steps"`
	Display string          `json:"display"`
	State   engine.Snapshot `json:"state"`
}

// EvaluateStep records the display after one input.
type EvaluateStep struct {
	Input   string `json:"input"`
	Event   string `json:"event"`
	Display string `json:"display"`
}
