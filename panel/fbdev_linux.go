// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// FramebufferDevice drives the matrix through a Linux framebuffer
// device. The panel's HUB75 driver exposes itself as a 64×64 fbdev
// node; writing a full frame and letting the kernel driver latch it is
// the swap.
//
// The mapping assumes 32 bits per pixel, XRGB byte order, one row per
// Width pixels. The driver we deploy against guarantees this; anything
// else fails at open time rather than producing garbled output.
type FramebufferDevice struct {
	file   *os.File
	pixels []byte
}

// bytesPerPixel is the fbdev mapping depth (XRGB8888).
const bytesPerPixel = 4

// OpenFramebuffer maps the framebuffer at path (typically /dev/fb0).
// Errors here are the hardware-init failures the daemon degrades on:
// missing device node, wrong permissions, or a node too small for a
// full frame.
func OpenFramebuffer(path string) (*FramebufferDevice, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening framebuffer %s: %w", path, err)
	}

	size := Width * Height * bytesPerPixel
	pixels, err := unix.Mmap(int(file.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("mapping framebuffer %s (%d bytes): %w", path, size, err)
	}

	return &FramebufferDevice{file: file, pixels: pixels}, nil
}

// CreateCanvas returns a cleared in-memory canvas.
func (d *FramebufferDevice) CreateCanvas() Canvas { return &frameCanvas{} }

// Swap copies the canvas into the mapped framebuffer row by row. The
// copy is the only hardware touch; the kernel driver refreshes the
// matrix from the mapping.
func (d *FramebufferDevice) Swap(canvas Canvas) error {
	fc := canvas.(*frameCanvas)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			pixel := fc.frame[y][x]
			offset := (y*Width + x) * bytesPerPixel
			d.pixels[offset+0] = pixel.B
			d.pixels[offset+1] = pixel.G
			d.pixels[offset+2] = pixel.R
			d.pixels[offset+3] = 0
		}
	}
	return nil
}

// Close unmaps and closes the framebuffer, leaving the last frame on
// the panel.
func (d *FramebufferDevice) Close() error {
	if err := unix.Munmap(d.pixels); err != nil {
		d.file.Close()
		return fmt.Errorf("unmapping framebuffer: %w", err)
	}
	return d.file.Close()
}
