// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import "testing"

func TestTextWidthIsFixedAdvance(t *testing.T) {
	if got := TextWidth("HEARTH"); got != 6*GlyphWidth {
		t.Fatalf("TextWidth = %d, want %d", got, 6*GlyphWidth)
	}
	if got := TextWidth(""); got != 0 {
		t.Fatalf("TextWidth of empty string = %d, want 0", got)
	}
}

func TestDrawTextStaysAboveBaseline(t *testing.T) {
	var canvas frameCanvas
	DrawText(&canvas, "A", 0, 20, ColorWhite)

	if canvas.frame.LitPixels() == 0 {
		t.Fatal("text drew nothing")
	}
	for y := 21; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if canvas.frame[y][x] != (Color{}) {
				t.Fatalf("pixel (%d,%d) lit below the baseline", x, y)
			}
		}
	}
}

func TestDrawTextCenteredIsSymmetric(t *testing.T) {
	var canvas frameCanvas
	DrawTextCentered(&canvas, "AB", Width/2, 20, ColorWhite)

	minX, maxX := Width, -1
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if canvas.frame[y][x] != (Color{}) {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	if maxX < 0 {
		t.Fatal("text drew nothing")
	}
	center := (minX + maxX) / 2
	if center < Width/2-GlyphWidth || center > Width/2+GlyphWidth {
		t.Fatalf("text center %d too far from %d", center, Width/2)
	}
}

func TestDrawCheckboxUsesBothColors(t *testing.T) {
	var canvas frameCanvas
	DrawCheckbox(&canvas, 10, 10)

	white, green := 0, 0
	for y := 10; y < 10+CheckboxSize; y++ {
		for x := 10; x < 10+CheckboxSize; x++ {
			switch canvas.frame[y][x] {
			case ColorWhite:
				white++
			case ColorCheckGreen:
				green++
			default:
				t.Fatalf("unexpected color at (%d,%d): %v", x, y, canvas.frame[y][x])
			}
		}
	}
	if white == 0 || green == 0 {
		t.Fatalf("checkbox colors white=%d green=%d, want both non-zero", white, green)
	}
}

func TestOutOfBoundsPixelsAreDropped(t *testing.T) {
	var canvas frameCanvas
	FillRect(&canvas, -10, Width+10, -10, Height+10, ColorWhite)
	if got := canvas.frame.LitPixels(); got != Width*Height {
		t.Fatalf("lit pixels = %d, want %d", got, Width*Height)
	}
}
