// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"log/slog"
	"sync"
)

// MockDevice satisfies the Device contract with log lines instead of
// hardware. The daemon degrades to it when the framebuffer cannot be
// opened, so a machine without a panel still boots and serves the
// socket; tests use it to assert on swapped frames.
type MockDevice struct {
	logger *slog.Logger

	mu        sync.Mutex
	lastFrame Frame
	swapCount int
}

// NewMockDevice returns a mock device logging swaps to logger. A nil
// logger uses slog.Default().
func NewMockDevice(logger *slog.Logger) *MockDevice {
	if logger == nil {
		logger = slog.Default()
	}
	return &MockDevice{logger: logger}
}

// CreateCanvas returns a cleared in-memory canvas.
func (d *MockDevice) CreateCanvas() Canvas { return &frameCanvas{} }

// Swap records the frame and logs a one-line summary.
func (d *MockDevice) Swap(canvas Canvas) error {
	fc := canvas.(*frameCanvas)

	d.mu.Lock()
	d.lastFrame = fc.frame
	d.swapCount++
	count := d.swapCount
	d.mu.Unlock()

	d.logger.Debug("mock swap", "lit_pixels", fc.frame.LitPixels(), "swap", count)
	return nil
}

// Close is a no-op.
func (d *MockDevice) Close() error { return nil }

// LastFrame returns a copy of the most recently swapped frame.
func (d *MockDevice) LastFrame() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastFrame
}

// SwapCount returns how many frames have been swapped.
func (d *MockDevice) SwapCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.swapCount
}
