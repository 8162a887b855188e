package engine

// EventKind enumerates the logical inputs the state machine understands.
type EventKind int

const (
	EventDigit EventKind = iota + 1
	EventDecimal
	EventOperator
	EventEquals
	EventClear
)

func (k EventKind) String() string {
	switch k {
	case EventDigit:
		return "digit"
	case EventDecimal:
		return "decimal"
	case EventOperator:
		return "operator"
	case EventEquals:
		return "equals"
	case EventClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Event is a single logical input. Digit is set for EventDigit, Op for
// EventOperator.
type Event struct {
	Kind  EventKind
	Digit byte
	Op    Operator
}

func DigitEvent(d byte) Event {
	return Event{Kind: EventDigit, Digit: d}
}

func OperatorEvent(op Operator) Event {
	return Event{Kind: EventOperator, Op: op}
}

var (
	DecimalEvent = Event{Kind: EventDecimal}
	EqualsEvent  = Event{Kind: EventEquals}
	ClearEvent   = Event{Kind: EventClear}
)

// Handle applies e to s. Unknown kinds leave s unchanged.
func (s State) Handle(e Event) State {
	switch e.Kind {
	case EventDigit:
		return s.Digit(e.Digit)
	case EventDecimal:
		return s.DecimalPoint()
	case EventOperator:
		return s.Operator(e.Op)
	case EventEquals:
		return s.Equals()
	case EventClear:
		return s.Clear()
	default:
		return s
	}
}

// Snapshot is the JSON view of a State. The pending operand is formatted so
// that non-finite values survive encoding.
type Snapshot struct {
	Display         string `json:"display"`
	PendingOperand  string `json:"pending_operand,omitempty"`
	PendingOperator string `json:"pending_operator,omitempty"`
	AwaitingOperand bool   `json:"awaiting_operand"`
}

func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Display:         s.display,
		PendingOperator: string(s.pendingOperator),
		AwaitingOperand: s.awaitingOperand,
	}
	if s.hasOperand {
		snap.PendingOperand = Format(s.pendingOperand)
	}
	return snap
}
