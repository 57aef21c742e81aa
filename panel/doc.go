// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

// Package panel drives the 64×64 RGB LED matrix. It is organized
// around one invariant: the matrix is a single exclusive resource, and
// every draw-and-swap sequence holds the Controller's mutex so
// concurrent producers can never interleave partial frames.
//
//   - device.go: the frame-buffer device contract (create canvas, set
//     pixel, swap) plus the in-memory canvas
//   - fbdev_linux.go: the hardware device backed by a Linux
//     framebuffer; open failure degrades the daemon to mock mode
//   - mock.go: the logging device used without hardware and in tests
//   - preview.go: a terminal device rendering frames as half blocks
//   - controller.go: the execution context — the mutex, the animation
//     and scroll handles, cooperative cancellation with bounded joins
//   - draw.go: pixel primitives and glyph rendering
//   - symbols.go, animations.go, progress.go, gif.go: the static
//     symbols, named animation loops, the progress and test frames,
//     and GIF playback
package panel
