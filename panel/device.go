// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

// Width and Height are the matrix dimensions in pixels. The panel is a
// single 64×64 HUB75 module; nothing in this package supports chaining.
const (
	Width  = 64
	Height = 64
)

// Color is one RGB pixel value. The matrix has no alpha channel;
// black (the zero value) is "off".
type Color struct {
	R, G, B uint8
}

// Canvas is one off-screen frame under construction. SetPixel calls
// outside the panel bounds are ignored, so callers can draw shapes
// that run off the edge without bounds arithmetic.
type Canvas interface {
	// SetPixel colors one pixel. Out-of-bounds coordinates are
	// silently dropped.
	SetPixel(x, y int, c Color)
}

// Device is the frame-buffer contract: build a canvas, fill it, swap
// it onto the display. Implementations decide what "display" means —
// hardware, a terminal preview, or a log line.
//
// Devices do not lock. Serialization of draw-and-swap sequences is the
// Controller's job.
type Device interface {
	// CreateCanvas returns a cleared off-screen canvas.
	CreateCanvas() Canvas

	// Swap atomically replaces the displayed frame with canvas. The
	// canvas must have come from this device's CreateCanvas.
	Swap(canvas Canvas) error

	// Close releases the device. The display contents afterwards are
	// undefined.
	Close() error
}

// Frame is a complete 64×64 pixel grid, indexed [y][x]. The in-memory
// canvas accumulates into a Frame; mock and preview devices retain the
// last swapped Frame for inspection.
type Frame [Height][Width]Color

// frameCanvas is the Canvas implementation shared by the non-hardware
// devices: a plain Frame with bounds-checked writes.
type frameCanvas struct {
	frame Frame
}

func (c *frameCanvas) SetPixel(x, y int, color Color) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	c.frame[y][x] = color
}

// LitPixels counts non-black pixels, a cheap summary for logs and
// test assertions.
func (f Frame) LitPixels() int {
	count := 0
	for y := range f {
		for x := range f[y] {
			if f[y][x] != (Color{}) {
				count++
			}
		}
	}
	return count
}
