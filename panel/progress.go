// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"fmt"
	"time"
)

// Vertical progress bar geometry. The bar sits centered with the
// percentage label underneath.
const (
	barLeft   = 26
	barRight  = 38
	barTop    = 2
	barBottom = 52
)

// ShowProgress draws a vertical progress bar filled bottom-up to
// percentage, with the value printed underneath. Values outside
// [0,100] are clamped. The fill is green in the bottom third of the
// bar, yellow in the middle, red at the top.
func (c *Controller) ShowProgress(percentage float64) error {
	pct := clampPercent(percentage)
	return c.Draw(func(canvas Canvas) {
		drawProgressBar(canvas, pct)
	})
}

func drawProgressBar(canvas Canvas, pct float64) {
	OutlineRect(canvas, barLeft, barRight, barTop, barBottom, ColorWhite)

	innerTop := barTop + 1
	innerBottom := barBottom - 1
	innerHeight := innerBottom - innerTop
	filled := int(pct * float64(innerHeight) / 100)

	for row := 0; row < filled; row++ {
		y := innerBottom - 1 - row
		FillRect(canvas, barLeft+1, barRight-1, y, y+1, progressRowColor(y, innerTop, innerHeight))
	}

	DrawTextCentered(canvas, fmt.Sprintf("%d%%", int(pct)), Width/2, 63, ColorWhite)
}

// progressRowColor picks the fill color for an absolute row: green in
// the bottom third, yellow in the middle, red in the top.
func progressRowColor(y, innerTop, innerHeight int) Color {
	fromTop := y - innerTop
	switch {
	case fromTop < innerHeight/3:
		return ColorRed
	case fromTop < 2*innerHeight/3:
		return ColorYellow
	default:
		return ColorGreen
	}
}

func clampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ShowConnectedTest draws the connectivity confirmation frame: the
// word CONNECTED over the wifi fan in green, with a checkmark at the
// fan's base.
func (c *Controller) ShowConnectedTest() error {
	return c.Draw(func(canvas Canvas) {
		DrawTextCentered(canvas, "CONNECTED", Width/2, 12, ColorGreen)
		drawWifiArcs(canvas, ColorGreen)
		DrawCheckbox(canvas, 28, 54)
	})
}

// RunTestSequence starts a render goroutine that steps through full
// fills of red, green, blue, and white, then each registered symbol,
// half a second per frame, and clears the panel when done. Used from
// the command line to eyeball a freshly wired panel.
func (c *Controller) RunTestSequence() {
	frames := []func(Canvas){
		func(canvas Canvas) { FillRect(canvas, 0, Width, 0, Height, ColorRed) },
		func(canvas Canvas) { FillRect(canvas, 0, Width, 0, Height, ColorGreen) },
		func(canvas Canvas) { FillRect(canvas, 0, Width, 0, Height, ColorBlue) },
		func(canvas Canvas) { FillRect(canvas, 0, Width, 0, Height, ColorWhite) },
	}
	for _, name := range Symbols() {
		frames = append(frames, symbols[name])
	}

	c.startAnimation(func(h *Handle) {
		for _, frame := range frames {
			if err := c.Draw(frame); err != nil {
				c.logger.Error("test sequence frame failed", "error", err)
				return
			}
			if !c.waitFrame(h, 500*time.Millisecond) {
				return
			}
		}
		if err := c.Clear(); err != nil {
			c.logger.Error("test sequence clear failed", "error", err)
		}
	})
}
