// Package widget ties calculator state, theme state and the keyboard listener
// to the lifetime of one mounted calculator.
package widget

import (
	"sync"

	"calcpad/internal/engine"
	"calcpad/internal/input"
	"calcpad/internal/observability"
	"calcpad/internal/theme"

	"go.uber.org/zap"
)

// View is what a front end needs to draw the widget.
type View struct {
	Display    string        `json:"display"`
	Variant    theme.Variant `json:"variant"`
	Theme      theme.Mode    `json:"theme"`
	Toggleable bool          `json:"toggleable"`
}

// Widget is safe for concurrent use; events are applied one at a time.
type Widget struct {
	mu     sync.Mutex
	calc   engine.State
	theme  theme.State
	detach func()
}

func New(v theme.Variant) *Widget {
	return &Widget{
		calc:  engine.New(),
		theme: theme.New(v),
	}
}

// Mount attaches the widget's key listener to kbd. A mounted widget is
// remounted onto the new keyboard. The swap happens under the widget lock, so
// a concurrent Unmount never leaves a listener behind.
func (w *Widget) Mount(kbd *input.Keyboard) {
	w.mu.Lock()
	if w.detach != nil {
		w.detach()
	}
	w.detach = kbd.Listen(w.handleKey)
	variant := w.theme.Variant
	w.mu.Unlock()

	observability.Logger.Debug("widget mounted", zap.String("variant", string(variant)))
}

// Unmount releases the key listener. It may be called repeatedly and from any
// goroutine.
func (w *Widget) Unmount() {
	w.mu.Lock()
	detach := w.detach
	w.detach = nil
	if detach != nil {
		detach()
	}
	w.mu.Unlock()

	if detach != nil {
		observability.Logger.Debug("widget unmounted")
	}
}

func (w *Widget) Mounted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.detach != nil
}

// Press handles a click on the button labelled label.
func (w *Widget) Press(label string) bool {
	e, ok := input.FromButton(label)
	if !ok {
		return false
	}
	w.apply(e)
	return true
}

// ToggleTheme flips light/dark. Calculator state is left alone.
func (w *Widget) ToggleTheme() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	next, changed := w.theme.Toggle()
	w.theme = next
	return changed
}

func (w *Widget) State() engine.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calc
}

func (w *Widget) Theme() theme.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.theme
}

func (w *Widget) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	return View{
		Display:    w.calc.Display(),
		Variant:    w.theme.Variant,
		Theme:      w.theme.Mode,
		Toggleable: w.theme.Variant.Toggleable(),
	}
}

func (w *Widget) handleKey(key string) (bool, bool) {
	action, ok := input.FromKey(key)
	if !ok {
		return false, false
	}
	w.apply(action.Event)
	return true, action.PreventDefault
}

func (w *Widget) apply(e engine.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calc = w.calc.Handle(e)
}
