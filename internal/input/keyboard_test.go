package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardDispatchWithoutListeners(t *testing.T) {
	kbd := NewKeyboard()
	assert.Equal(t, Result{}, kbd.Dispatch("5"))
}

func TestKeyboardListenAndDetach(t *testing.T) {
	kbd := NewKeyboard()

	var got []string
	detach := kbd.Listen(func(key string) (bool, bool) {
		got = append(got, key)
		return true, key == "/"
	})
	assert.Equal(t, 1, kbd.Listeners())

	assert.Equal(t, Result{Handled: true}, kbd.Dispatch("1"))
	assert.Equal(t, Result{Handled: true, PreventDefault: true}, kbd.Dispatch("/"))

	detach()
	detach()
	assert.Equal(t, 0, kbd.Listeners())
	assert.Equal(t, Result{}, kbd.Dispatch("2"))
	assert.Equal(t, []string{"1", "/"}, got)
}

func TestKeyboardConcurrentDetach(t *testing.T) {
	kbd := NewKeyboard()
	detach := kbd.Listen(func(string) (bool, bool) { return true, false })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kbd.Dispatch("1")
			detach()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, kbd.Listeners())
}
