// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"fmt"
	"sort"
)

// UnknownSymbolError reports a symbol name with no registered drawing.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q", e.Symbol)
}

// symbols maps canonical symbol names to their drawing functions.
var symbols = map[string]func(Canvas){
	"checkmark":  drawCheckmark,
	"error":      drawError,
	"wifi":       drawWifi,
	"wifi_error": drawWifiError,
	"tunnel":     drawTunnel,
	"hourglass":  drawHourglass,
	"dot":        drawDot,
	"all_on":     drawAllOn,
}

// symbolAliases are accepted alternative names, resolved before the
// symbols lookup.
var symbolAliases = map[string]string{
	"check":          "checkmark",
	"ok":             "checkmark",
	"cross":          "error",
	"x":              "error",
	"wifi_connected": "wifi",
	"w":              "wifi",
	"tunnel_active":  "tunnel",
	"t":              "tunnel",
	"warning":        "hourglass",
	"wait":           "hourglass",
	"point":          "dot",
	"test":           "all_on",
}

// Symbols returns the canonical symbol names, sorted.
func Symbols() []string {
	names := make([]string, 0, len(symbols))
	for name := range symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShowSymbol draws the named symbol as a static frame. Aliases resolve
// to their canonical symbol; unknown names return UnknownSymbolError.
func (c *Controller) ShowSymbol(name string) error {
	if canonical, ok := symbolAliases[name]; ok {
		name = canonical
	}
	render, ok := symbols[name]
	if !ok {
		return &UnknownSymbolError{Symbol: name}
	}
	return c.Draw(render)
}

func drawCheckmark(c Canvas) {
	DrawLine(c, 14, 34, 26, 46, ColorGreen)
	DrawLine(c, 14, 33, 26, 45, ColorGreen)
	DrawLine(c, 26, 46, 50, 18, ColorGreen)
	DrawLine(c, 26, 45, 50, 17, ColorGreen)
}

func drawError(c Canvas) {
	DrawLine(c, 16, 16, 48, 48, ColorRed)
	DrawLine(c, 17, 16, 48, 47, ColorRed)
	DrawLine(c, 48, 16, 16, 48, ColorRed)
	DrawLine(c, 47, 16, 15, 47, ColorRed)
}

// drawArc draws the top half of a circle outline, for the wifi fan.
func drawArc(c Canvas, centerX, centerY, radius int, color Color) {
	x := radius
	y := 0
	err := 1 - radius

	for x >= y {
		c.SetPixel(centerX+x, centerY-y, color)
		c.SetPixel(centerX-x, centerY-y, color)
		c.SetPixel(centerX+y, centerY-x, color)
		c.SetPixel(centerX-y, centerY-x, color)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func drawWifiArcs(c Canvas, color Color) {
	drawArc(c, 32, 48, 8, color)
	drawArc(c, 32, 48, 15, color)
	drawArc(c, 32, 48, 22, color)
	fillCircle(c, 32, 48, 3, color)
}

func drawWifi(c Canvas) {
	drawWifiArcs(c, ColorBlue)
}

func drawWifiError(c Canvas) {
	drawWifiArcs(c, ColorGray)
	DrawLine(c, 44, 10, 58, 24, ColorRed)
	DrawLine(c, 58, 10, 44, 24, ColorRed)
}

func drawTunnel(c Canvas) {
	DrawCircle(c, 32, 32, 8, ColorPurple)
	DrawCircle(c, 32, 32, 15, ColorPurple)
	DrawCircle(c, 32, 32, 22, ColorPurple)
	fillCircle(c, 32, 32, 2, ColorPurple)
}

func drawHourglass(c Canvas) {
	// Two triangles meeting at the waist.
	DrawLine(c, 20, 14, 44, 14, ColorYellow)
	DrawLine(c, 20, 14, 32, 32, ColorYellow)
	DrawLine(c, 44, 14, 32, 32, ColorYellow)
	DrawLine(c, 20, 50, 44, 50, ColorYellow)
	DrawLine(c, 20, 50, 32, 32, ColorYellow)
	DrawLine(c, 44, 50, 32, 32, ColorYellow)
}

func drawDot(c Canvas) {
	fillCircle(c, 32, 32, 3, ColorWhite)
}

func drawAllOn(c Canvas) {
	FillRect(c, 0, Width, 0, Height, ColorWhite)
}

// fillCircle fills a disc of the given radius.
func fillCircle(c Canvas, centerX, centerY, radius int, color Color) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				c.SetPixel(centerX+dx, centerY+dy, color)
			}
		}
	}
}
