// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"fmt"
	"image"
	"image/gif"
	"os"
	"time"

	xdraw "golang.org/x/image/draw"
)

// GIFAnimation is a decoded GIF, resampled to the panel size once at
// load time. Playback goroutines only copy pre-rendered frames.
type GIFAnimation struct {
	Frames []Frame
	Delays []time.Duration
}

// defaultGIFDelay stands in for the zero inter-frame delay some
// encoders write.
const defaultGIFDelay = 100 * time.Millisecond

// LoadGIF decodes and resamples the GIF at path. Frames are composed
// onto the running image in order, matching how browsers play GIFs
// whose frames are partial updates, then scaled to 64×64 with
// nearest-neighbor so pixel-art GIFs stay crisp.
func LoadGIF(path string) (*GIFAnimation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gif: %w", err)
	}
	defer file.Close()

	decoded, err := gif.DecodeAll(file)
	if err != nil {
		return nil, fmt.Errorf("decoding gif %s: %w", path, err)
	}
	if len(decoded.Image) == 0 {
		return nil, fmt.Errorf("gif %s has no frames", path)
	}

	bounds := image.Rect(0, 0, decoded.Config.Width, decoded.Config.Height)
	if bounds.Empty() {
		bounds = decoded.Image[0].Bounds()
	}
	composed := image.NewRGBA(bounds)

	anim := &GIFAnimation{
		Frames: make([]Frame, 0, len(decoded.Image)),
		Delays: make([]time.Duration, 0, len(decoded.Image)),
	}
	for i, src := range decoded.Image {
		xdraw.Draw(composed, src.Bounds(), src, src.Bounds().Min, xdraw.Over)

		scaled := image.NewRGBA(image.Rect(0, 0, Width, Height))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), composed, bounds, xdraw.Src, nil)

		var frame Frame
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				r, g, b, _ := scaled.At(x, y).RGBA()
				frame[y][x] = Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			}
		}
		anim.Frames = append(anim.Frames, frame)

		// GIF delays are hundredths of a second.
		delay := time.Duration(decoded.Delay[i]) * 10 * time.Millisecond
		if delay <= 0 {
			delay = defaultGIFDelay
		}
		anim.Delays = append(anim.Delays, delay)
	}
	return anim, nil
}

// ShowGIF starts a render goroutine playing anim. With loop the
// sequence repeats until cancelled; otherwise it plays once and leaves
// the last frame on the display. The caller must have stopped previous
// render goroutines first.
func (c *Controller) ShowGIF(anim *GIFAnimation, loop bool) {
	c.startAnimation(func(h *Handle) {
		for {
			for i, frame := range anim.Frames {
				f := frame
				if err := c.Draw(func(canvas Canvas) { copyFrame(canvas, &f) }); err != nil {
					c.logger.Error("gif frame failed", "error", err)
					return
				}
				if !c.waitFrame(h, anim.Delays[i]) {
					return
				}
			}
			if !loop {
				return
			}
		}
	})
}

func copyFrame(c Canvas, f *Frame) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if f[y][x] != (Color{}) {
				c.SetPixel(x, y, f[y][x])
			}
		}
	}
}
