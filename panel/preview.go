// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// PreviewDevice renders frames into a terminal, two pixels per cell
// using the upper-half-block glyph: the top pixel is the foreground
// color, the bottom pixel the background. A 64×64 frame becomes a
// 64×32 character grid, which fits a normal terminal.
//
// Each swap repaints in place by moving the cursor back up, so
// animations play without scrolling the scrollback buffer.
type PreviewDevice struct {
	out      io.Writer
	renderer *lipgloss.Renderer

	mu      sync.Mutex
	painted bool
}

// upperHalfBlock shows its foreground in the cell's top half and its
// background in the bottom half.
const upperHalfBlock = "▀"

// NewPreviewDevice returns a preview device writing ANSI frames to
// out. The renderer is forced to true color: the preview is explicitly
// requested or tty-detected by the caller, and half-block rendering is
// unreadable at lower color depths.
func NewPreviewDevice(out io.Writer) *PreviewDevice {
	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(termenv.TrueColor)
	return &PreviewDevice{out: out, renderer: renderer}
}

// CreateCanvas returns a cleared in-memory canvas.
func (d *PreviewDevice) CreateCanvas() Canvas { return &frameCanvas{} }

// Swap paints the frame into the terminal, overwriting the previous
// one.
func (d *PreviewDevice) Swap(canvas Canvas) error {
	fc := canvas.(*frameCanvas)

	d.mu.Lock()
	defer d.mu.Unlock()

	var b strings.Builder
	if d.painted {
		// Move back to the top of the previous paint.
		fmt.Fprintf(&b, "\x1b[%dA", Height/2)
	}
	for y := 0; y < Height; y += 2 {
		for x := 0; x < Width; x++ {
			top := fc.frame[y][x]
			bottom := fc.frame[y+1][x]
			style := d.renderer.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom)))
			b.WriteString(style.Render(upperHalfBlock))
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(d.out, b.String()); err != nil {
		return fmt.Errorf("writing preview frame: %w", err)
	}
	d.painted = true
	return nil
}

// Close leaves the last frame in the terminal.
func (d *PreviewDevice) Close() error { return nil }

func hexColor(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
