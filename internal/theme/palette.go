package theme

// Palette lists the colours a front end needs, as hex strings.
type Palette struct {
	Background string
	Surface    string
	Display    string
	Text       string
	Muted      string
	Digit      string
	Operator   string
	Clear      string
	Equals     string
	ButtonText string
}

var (
	darkPalette = Palette{
		Background: "#111827",
		Surface:    "#1f2937",
		Display:    "#111827",
		Text:       "#ffffff",
		Muted:      "#9ca3af",
		Digit:      "#4b5563",
		Operator:   "#ea580c",
		Clear:      "#dc2626",
		Equals:     "#2563eb",
		ButtonText: "#ffffff",
	}
	lightPalette = Palette{
		Background: "#f3f4f6",
		Surface:    "#ffffff",
		Display:    "#e5e7eb",
		Text:       "#111827",
		Muted:      "#6b7280",
		Digit:      "#d1d5db",
		Operator:   "#f97316",
		Clear:      "#ef4444",
		Equals:     "#3b82f6",
		ButtonText: "#111827",
	}
)

func PaletteFor(m Mode) Palette {
	if m == ModeLight {
		return lightPalette
	}
	return darkPalette
}
