// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

// Handle is the cancellation contract between the code that starts a
// render goroutine and the goroutine itself. Cancellation is
// cooperative: Cancel closes the stop channel, the goroutine notices
// between frames and closes done on its way out.
type Handle struct {
	stop chan struct{}
	done chan struct{}
}

// NewHandle returns a handle for a goroutine about to start.
func NewHandle() *Handle {
	return &Handle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Cancel requests the goroutine stop. Safe to call once; callers that
// might race use the Controller, which serializes cancellation.
func (h *Handle) Cancel() {
	close(h.stop)
}

// Stopping returns the channel the goroutine selects on between
// frames; it is closed once Cancel has been called.
func (h *Handle) Stopping() <-chan struct{} { return h.stop }

// Finish marks the goroutine as exited. The goroutine defers this.
func (h *Handle) Finish() {
	close(h.done)
}

// Done is closed once the goroutine has exited.
func (h *Handle) Done() <-chan struct{} { return h.done }
