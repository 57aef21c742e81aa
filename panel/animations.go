// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"fmt"
	"sort"
	"time"
)

// UnknownAnimationError reports an animation name with no registered
// frame sequence.
type UnknownAnimationError struct {
	Animation string
}

func (e *UnknownAnimationError) Error() string {
	return fmt.Sprintf("unknown animation %q", e.Animation)
}

// Animation is a named looping frame sequence with its natural frame
// delay. Callers may override the delay per invocation.
type Animation struct {
	Name       string
	FrameDelay time.Duration
	Frames     []func(Canvas)
}

var animations = map[string]Animation{
	"boot":           {Name: "boot", FrameDelay: 50 * time.Millisecond, Frames: bootFrames()},
	"wifi_searching": {Name: "wifi_searching", FrameDelay: 400 * time.Millisecond, Frames: wifiSearchingFrames()},
	"activity":       {Name: "activity", FrameDelay: 500 * time.Millisecond, Frames: activityFrames()},
	"idle":           {Name: "idle", FrameDelay: 300 * time.Millisecond, Frames: idleFrames()},
}

// Animations returns the registered animation names, sorted.
func Animations() []string {
	names := make([]string, 0, len(animations))
	for name := range animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShowAnimation starts the named animation in a render goroutine. A
// zero duration loops until cancelled; a positive duration stops the
// loop after that much time. A non-positive frameDelay uses the
// animation's own. The caller must have stopped previous render
// goroutines first.
func (c *Controller) ShowAnimation(name string, duration, frameDelay time.Duration) error {
	anim, ok := animations[name]
	if !ok {
		return &UnknownAnimationError{Animation: name}
	}
	if frameDelay <= 0 {
		frameDelay = anim.FrameDelay
	}

	c.startAnimation(func(h *Handle) {
		var deadline time.Time
		if duration > 0 {
			deadline = c.clk.Now().Add(duration)
		}
		for i := 0; ; i = (i + 1) % len(anim.Frames) {
			if err := c.Draw(anim.Frames[i]); err != nil {
				c.logger.Error("animation frame failed", "animation", name, "error", err)
				return
			}
			if !c.waitFrame(h, frameDelay) {
				return
			}
			if duration > 0 && !c.clk.Now().Before(deadline) {
				return
			}
		}
	})
	return nil
}

// bootFrames is an expanding blue ring.
func bootFrames() []func(Canvas) {
	var frames []func(Canvas)
	for radius := 2; radius <= 30; radius += 2 {
		r := radius
		frames = append(frames, func(c Canvas) {
			DrawCircle(c, 32, 32, r, ColorBlue)
		})
	}
	return frames
}

// wifiSearchingFrames grows the wifi fan one arc at a time.
func wifiSearchingFrames() []func(Canvas) {
	return []func(Canvas){
		func(c Canvas) {
			fillCircle(c, 32, 48, 3, ColorBlue)
		},
		func(c Canvas) {
			fillCircle(c, 32, 48, 3, ColorBlue)
			drawArc(c, 32, 48, 8, ColorBlue)
		},
		func(c Canvas) {
			fillCircle(c, 32, 48, 3, ColorBlue)
			drawArc(c, 32, 48, 8, ColorBlue)
			drawArc(c, 32, 48, 15, ColorBlue)
		},
		func(c Canvas) {
			drawWifiArcs(c, ColorBlue)
		},
	}
}

// activityFrames is a dot orbiting the panel center.
func activityFrames() []func(Canvas) {
	positions := [][2]int{
		{32, 12}, {46, 18}, {52, 32}, {46, 46},
		{32, 52}, {18, 46}, {12, 32}, {18, 18},
	}
	var frames []func(Canvas)
	for _, pos := range positions {
		x, y := pos[0], pos[1]
		frames = append(frames, func(c Canvas) {
			fillCircle(c, x, y, 3, ColorOrange)
		})
	}
	return frames
}

// idleFrames is a slow breathing dot.
func idleFrames() []func(Canvas) {
	var frames []func(Canvas)
	for _, radius := range []int{1, 2, 3, 2} {
		r := radius
		frames = append(frames, func(c Canvas) {
			fillCircle(c, 32, 32, r, ColorGray)
		})
	}
	return frames
}
