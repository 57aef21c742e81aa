// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hearth-home/hearth/lib/clock"
)

// Controller owns the device and serializes every draw-and-swap
// against it. Render goroutines (animations and scroll loops) go
// through the controller, which tracks at most one of each kind and
// cancels them cooperatively before the next command touches the
// panel.
//
// A goroutine that ignores its stop signal is not killed — Go has no
// mechanism for that. The controller waits joinTimeout, logs the leak,
// and moves on; the leaked goroutine keeps running but can no longer
// swap frames once a new draw takes the device mutex.
type Controller struct {
	device      Device
	clk         clock.Clock
	logger      *slog.Logger
	joinTimeout time.Duration

	// drawMu serializes draw-and-swap sequences. Held only for the
	// duration of one frame, never across frame delays.
	drawMu sync.Mutex

	// mu guards the handle fields below.
	mu     sync.Mutex
	anim   *Handle
	scroll *Handle
	leaked []*Handle
}

// NewController returns a controller for device. joinTimeout bounds
// how long StopAll waits for a render goroutine to exit.
func NewController(device Device, clk clock.Clock, logger *slog.Logger, joinTimeout time.Duration) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		device:      device,
		clk:         clk,
		logger:      logger,
		joinTimeout: joinTimeout,
	}
}

// Device returns the underlying device.
func (c *Controller) Device() Device { return c.device }

// Draw builds one frame with render and swaps it onto the display.
// The whole sequence runs under the device mutex.
func (c *Controller) Draw(render func(Canvas)) error {
	c.drawMu.Lock()
	defer c.drawMu.Unlock()
	canvas := c.device.CreateCanvas()
	render(canvas)
	if err := c.device.Swap(canvas); err != nil {
		return fmt.Errorf("swapping frame: %w", err)
	}
	return nil
}

// Clear swaps an all-black frame onto the display.
func (c *Controller) Clear() error {
	return c.Draw(func(Canvas) {})
}

// StopAll cancels the animation and scroll goroutines, if any, and
// waits up to joinTimeout for each to exit. Callers invoke this before
// drawing anything new so a stale goroutine cannot overwrite the fresh
// content.
func (c *Controller) StopAll() {
	c.mu.Lock()
	anim, scroll := c.anim, c.scroll
	c.anim, c.scroll = nil, nil
	c.mu.Unlock()

	c.join("animation", anim)
	c.join("scroll", scroll)
}

func (c *Controller) join(kind string, h *Handle) {
	if h == nil {
		return
	}
	h.Cancel()
	select {
	case <-h.Done():
	case <-c.clk.After(c.joinTimeout):
		c.logger.Warn("render goroutine did not stop in time",
			"kind", kind, "timeout", c.joinTimeout)
		c.mu.Lock()
		c.leaked = append(c.leaked, h)
		c.mu.Unlock()
	}
}

// AliveRenderThreads counts render goroutines that have not exited:
// the current animation and scroll goroutines plus any previously
// leaked ones still running. Tests assert on this after cancellation.
func (c *Controller) AliveRenderThreads() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, h := range []*Handle{c.anim, c.scroll} {
		if h != nil && !handleDone(h) {
			count++
		}
	}
	remaining := c.leaked[:0]
	for _, h := range c.leaked {
		if !handleDone(h) {
			remaining = append(remaining, h)
			count++
		}
	}
	c.leaked = remaining
	return count
}

func handleDone(h *Handle) bool {
	select {
	case <-h.Done():
		return true
	default:
		return false
	}
}

// startAnimation registers h as the animation goroutine and runs run
// in the background. The caller must have called StopAll first; the
// controller holds at most one animation goroutine.
func (c *Controller) startAnimation(run func(h *Handle)) *Handle {
	h := NewHandle()
	c.mu.Lock()
	c.anim = h
	c.mu.Unlock()
	go func() {
		defer h.Finish()
		run(h)
	}()
	return h
}

// StartScrollLoop starts a goroutine that redraws the display every
// interval with render, passing a horizontal offset that advances one
// pixel leftward per tick. The offset starts at Width (content just off
// the right edge) and wraps back there once the content of textWidth
// pixels has fully left the panel.
//
// The loop draws the first frame immediately so the display never sits
// blank waiting for the first tick.
func (c *Controller) StartScrollLoop(textWidth int, interval time.Duration, render func(canvas Canvas, offset int)) *Handle {
	h := NewHandle()
	c.mu.Lock()
	c.scroll = h
	c.mu.Unlock()

	go func() {
		defer h.Finish()
		offset := Width
		for {
			err := c.Draw(func(canvas Canvas) { render(canvas, offset) })
			if err != nil {
				c.logger.Error("scroll frame failed", "error", err)
				return
			}
			if !c.waitFrame(h, interval) {
				return
			}
			offset--
			if offset < -textWidth {
				offset = Width
			}
		}
	}()
	return h
}

// waitFrame sleeps for one frame delay, returning false if the handle
// was cancelled first.
func (c *Controller) waitFrame(h *Handle, delay time.Duration) bool {
	select {
	case <-h.Stopping():
		return false
	case <-c.clk.After(delay):
		return true
	}
}
