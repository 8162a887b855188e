package engine

// Operator is a binary operator as shown on the keypad.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "×"
	Divide   Operator = "÷"
	Equals   Operator = "="
)

// Name returns the HTTP/metric name of the operator.
func (op Operator) Name() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	case Equals:
		return "equals"
	default:
		return "unknown"
	}
}

// ParseOperator accepts a keypad symbol or an operation name.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+", "add":
		return Add, true
	case "-", "subtract":
		return Subtract, true
	case "×", "multiply":
		return Multiply, true
	case "÷", "divide":
		return Divide, true
	}
	return "", false
}

// Apply computes a op b. Division by zero is not guarded; the non-finite
// result is returned as is. Equals and unknown operators yield b.
func Apply(a, b float64, op Operator) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	default:
		return b
	}
}
