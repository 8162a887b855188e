package input

import "sync"

// KeyHandler receives key presses from a Keyboard. It reports whether the key
// was consumed and whether its default action should be suppressed.
type KeyHandler func(key string) (handled, preventDefault bool)

// Result is the outcome of dispatching one key.
type Result struct {
	Handled        bool
	PreventDefault bool
}

// Keyboard is the process-wide key source a widget subscribes to while it is
// mounted.
type Keyboard struct {
	mu        sync.Mutex
	next      uint64
	listeners map[uint64]KeyHandler
}

func NewKeyboard() *Keyboard {
	return &Keyboard{listeners: make(map[uint64]KeyHandler)}
}

// Listen attaches h and returns the func that detaches it. The detach func may
// be called more than once.
func (k *Keyboard) Listen(h KeyHandler) (detach func()) {
	k.mu.Lock()
	id := k.next
	k.next++
	k.listeners[id] = h
	k.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			k.mu.Lock()
			delete(k.listeners, id)
			k.mu.Unlock()
		})
	}
}

// Listeners returns the number of attached handlers.
func (k *Keyboard) Listeners() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.listeners)
}

// Dispatch delivers key to every attached handler.
func (k *Keyboard) Dispatch(key string) Result {
	k.mu.Lock()
	handlers := make([]KeyHandler, 0, len(k.listeners))
	for _, h := range k.listeners {
		handlers = append(handlers, h)
	}
	k.mu.Unlock()

	var res Result
	for _, h := range handlers {
		handled, prevent := h(key)
		res.Handled = res.Handled || handled
		res.PreventDefault = res.PreventDefault || prevent
	}
	return res
}
