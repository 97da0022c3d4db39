// Package interrupt exposes a level-triggered cancellation flag that the frame
// loop polls once per frame.
package interrupt

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

type Handle struct {
	triggered atomic.Bool

	mu   sync.Mutex
	sigs chan os.Signal
	done chan struct{}
}

func New() *Handle { return &Handle{} }

// Arm starts delivering SIGINT and SIGTERM to the flag. Calling Arm on an armed
// handle is a no-op.
func (h *Handle) Arm() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sigs != nil {
		return
	}
	h.sigs = make(chan os.Signal, 1)
	h.done = make(chan struct{})
	signal.Notify(h.sigs, os.Interrupt, syscall.SIGTERM)

	go func(sigs <-chan os.Signal, done <-chan struct{}) {
		for {
			select {
			case <-sigs:
				h.triggered.Store(true)
			case <-done:
				return
			}
		}
	}(h.sigs, h.done)
}

// Disarm restores default signal handling.
func (h *Handle) Disarm() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sigs == nil {
		return
	}
	signal.Stop(h.sigs)
	close(h.done)
	h.sigs = nil
	h.done = nil
}

// Trigger raises the flag directly. Raw-mode terminals deliver Ctrl+C as a key
// rather than a signal; backends forward it here.
func (h *Handle) Trigger() { h.triggered.Store(true) }

// WasTriggered reports whether cancellation was requested since the last call.
func (h *Handle) WasTriggered() bool { return h.triggered.Swap(false) }
