// Package theme holds the presentational variants of the calculator widget.
package theme

import "fmt"

// Variant is a presentational flavour of the widget.
type Variant string

const (
	// VariantDark is always rendered with the dark palette.
	VariantDark Variant = "dark"
	// VariantToggle starts dark and exposes a light/dark switch.
	VariantToggle Variant = "toggle"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantDark, VariantToggle:
		return v, nil
	}
	return "", fmt.Errorf("unknown theme variant %q", s)
}

// Toggleable reports whether the variant carries a theme switch.
func (v Variant) Toggleable() bool { return v == VariantToggle }

// Mode is the active colour scheme.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// State is the theme half of a widget. It is independent of calculator state.
type State struct {
	Variant Variant
	Mode    Mode
}

func New(v Variant) State {
	return State{Variant: v, Mode: ModeDark}
}

// Toggle flips the mode for toggleable variants and reports whether anything
// changed.
func (s State) Toggle() (State, bool) {
	if !s.Variant.Toggleable() {
		return s, false
	}
	if s.Mode == ModeDark {
		s.Mode = ModeLight
	} else {
		s.Mode = ModeDark
	}
	return s, true
}

func (s State) Palette() Palette { return PaletteFor(s.Mode) }
