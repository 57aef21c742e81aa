// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FillRect fills [xStart,xEnd) × [yStart,yEnd).
func FillRect(c Canvas, xStart, xEnd, yStart, yEnd int, color Color) {
	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			c.SetPixel(x, y, color)
		}
	}
}

// OutlineRect draws the one-pixel border of [xStart,xEnd) × [yStart,yEnd).
func OutlineRect(c Canvas, xStart, xEnd, yStart, yEnd int, color Color) {
	for x := xStart; x < xEnd; x++ {
		c.SetPixel(x, yStart, color)
		c.SetPixel(x, yEnd-1, color)
	}
	for y := yStart; y < yEnd; y++ {
		c.SetPixel(xStart, y, color)
		c.SetPixel(xEnd-1, y, color)
	}
}

// DrawLine draws the line from (x0,y0) to (x1,y1) with Bresenham's
// algorithm.
func DrawLine(c Canvas, x0, y0, x1, y1 int, color Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	stepX := -1
	if x0 < x1 {
		stepX = 1
	}
	stepY := -1
	if y0 < y1 {
		stepY = 1
	}
	err := dx + dy

	for {
		c.SetPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		doubled := 2 * err
		if doubled >= dy {
			err += dy
			x0 += stepX
		}
		if doubled <= dx {
			err += dx
			y0 += stepY
		}
	}
}

// DrawCircle draws the circle outline of the given radius with the
// midpoint algorithm.
func DrawCircle(c Canvas, centerX, centerY, radius int, color Color) {
	x := radius
	y := 0
	err := 1 - radius

	for x >= y {
		c.SetPixel(centerX+x, centerY+y, color)
		c.SetPixel(centerX+y, centerY+x, color)
		c.SetPixel(centerX-y, centerY+x, color)
		c.SetPixel(centerX-x, centerY+y, color)
		c.SetPixel(centerX-x, centerY-y, color)
		c.SetPixel(centerX-y, centerY-x, color)
		c.SetPixel(centerX+y, centerY-x, color)
		c.SetPixel(centerX+x, centerY-y, color)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// face is the glyph source for all panel text. Face7x13's 7px advance
// means at most 9 characters fit across the matrix.
var face = basicfont.Face7x13

// GlyphWidth is the fixed horizontal advance of one character.
const GlyphWidth = 7

// TextWidth returns the pixel width of text in the panel font.
func TextWidth(text string) int {
	return font.MeasureString(face, text).Ceil()
}

// DrawText rasterizes text with its baseline at y and left edge at x.
// Glyph pixels are copied onto the canvas; the background stays
// untouched.
func DrawText(c Canvas, text string, x, y int, textColor Color) {
	if text == "" {
		return
	}

	width := TextWidth(text)
	bounds := image.Rect(0, 0, width, face.Height)
	mask := image.NewRGBA(bounds)
	drawer := font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(text)

	// Copy lit mask pixels onto the canvas, mapping the mask's
	// baseline (Ascent) to y.
	top := y - face.Ascent
	for my := 0; my < face.Height; my++ {
		for mx := 0; mx < width; mx++ {
			if _, _, _, alpha := mask.At(mx, my).RGBA(); alpha > 0 {
				c.SetPixel(x+mx, top+my, textColor)
			}
		}
	}
}

// DrawTextCentered draws text horizontally centered on centerX with
// its baseline at y.
func DrawTextCentered(c Canvas, text string, centerX, y int, color Color) {
	DrawText(c, text, centerX-TextWidth(text)/2, y, color)
}

// checkPattern is the 7×7 completion checkmark: 1 = white check
// pixel, 0 = green box background.
var checkPattern = [7][7]uint8{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 1, 0},
	{0, 0, 0, 0, 1, 0, 0},
	{0, 1, 0, 1, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

// CheckboxSize is the edge length of the completion checkmark box.
const CheckboxSize = 7

// DrawCheckbox draws the 7×7 white-on-green checkmark with its top
// left corner at (x, y). Layouts draw it in place of a "100" label.
func DrawCheckbox(c Canvas, x, y int) {
	for row := 0; row < CheckboxSize; row++ {
		for col := 0; col < CheckboxSize; col++ {
			if checkPattern[row][col] == 1 {
				c.SetPixel(x+col, y+row, ColorWhite)
			} else {
				c.SetPixel(x+col, y+row, ColorCheckGreen)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
