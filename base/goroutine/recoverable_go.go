// Package goroutine starts background work that survives its own panics.
package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/goauction/base/log"
)

// PanicEvent carries a recovered panic and the stack it was raised from.
type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type hooks struct {
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(p interface{}, stack []byte)
}

type Option func(*hooks)

func WithBeforeStart(f func()) Option {
	return func(h *hooks) {
		h.beforeStart = f
	}
}

// WithAfterEnded runs f once the goroutine finishes, panicking or not.
func WithAfterEnded(f func()) Option {
	return func(h *hooks) {
		h.afterEnded = f
	}
}

func WithAfterRecovered(f func(p interface{}, stack []byte)) Option {
	return func(h *hooks) {
		h.afterRecovered = f
	}
}

// RecoverableGo runs f in a new goroutine. The returned channel yields the
// recovered panic, or is closed when f returns normally.
func RecoverableGo(f func(), opts ...Option) <-chan *PanicEvent {
	h := &hooks{}
	for _, opt := range opts {
		opt(h)
	}

	panicChan := make(chan *PanicEvent, 1)
	go func() {
		defer func() {
			if h.afterEnded != nil {
				h.afterEnded()
			}

			p := recover()
			if p == nil {
				close(panicChan)
				return
			}

			stack := debug.Stack()
			log.Log().WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("goroutine panicked")
			if h.afterRecovered != nil {
				h.afterRecovered(p, stack)
			}
			panicChan <- &PanicEvent{Panic: p, Stack: stack}
		}()

		if h.beforeStart != nil {
			h.beforeStart()
		}
		f()
	}()
	return panicChan
}
