package web

import "calcpad/internal/theme"

// Message types
const (
	// client -> server
	MessageTypeKey         = "key"
	MessageTypePress       = "press"
	MessageTypeToggleTheme = "toggle_theme"

	// server -> client
	MessageTypeState = "state"
	MessageTypeError = "error"
)

// Message is a frame on the widget WebSocket.
type Message struct {
	Type string `json:"type"`

	// For key and press
	Key   string `json:"key,omitempty"`
	Label string `json:"label,omitempty"`

	// For state
	Display        string        `json:"display,omitempty"`
	Theme          theme.Mode    `json:"theme,omitempty"`
	Variant        theme.Variant `json:"variant,omitempty"`
	Toggleable     bool          `json:"toggleable,omitempty"`
	Handled        bool          `json:"handled"`
	PreventDefault bool          `json:"prevent_default,omitempty"`

	Error string `json:"error,omitempty"`
}
