// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

// The shared palette. Layouts and symbols reference these instead of
// repeating literals.
var (
	ColorWhite  = Color{255, 255, 255}
	ColorGreen  = Color{0, 255, 0}
	ColorRed    = Color{255, 0, 0}
	ColorBlue   = Color{0, 100, 255}
	ColorYellow = Color{255, 255, 0}
	ColorOrange = Color{255, 165, 0}
	ColorPurple = Color{128, 0, 255}
	ColorGray   = Color{100, 100, 100}

	// ColorDimGray marks empty layout slots: visibly present, clearly
	// not data.
	ColorDimGray = Color{10, 10, 10}

	// ColorCheckGreen is the checkmark box background, darker than
	// ColorGreen for contrast with the white check.
	ColorCheckGreen = Color{0, 200, 0}
)
