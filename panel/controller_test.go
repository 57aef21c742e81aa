// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/hearth-home/hearth/lib/clock"
	"github.com/hearth-home/hearth/lib/testutil"
)

func testController(t *testing.T, clk clock.Clock) (*Controller, *MockDevice) {
	t.Helper()
	device := NewMockDevice(slog.Default())
	ctrl := NewController(device, clk, slog.Default(), time.Second)
	return ctrl, device
}

func TestDrawSwapsOneFrame(t *testing.T) {
	ctrl, device := testController(t, clock.Real())

	err := ctrl.Draw(func(c Canvas) {
		c.SetPixel(0, 0, ColorWhite)
		c.SetPixel(63, 63, ColorRed)
		c.SetPixel(64, 64, ColorGreen) // out of bounds, dropped
	})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if got := device.SwapCount(); got != 1 {
		t.Fatalf("swap count = %d, want 1", got)
	}
	frame := device.LastFrame()
	if got := frame.LitPixels(); got != 2 {
		t.Fatalf("lit pixels = %d, want 2", got)
	}
	if frame[63][63] != ColorRed {
		t.Fatalf("pixel (63,63) = %v, want red", frame[63][63])
	}
}

func TestClearBlanksThePanel(t *testing.T) {
	ctrl, device := testController(t, clock.Real())

	if err := ctrl.Draw(drawAllOn); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := ctrl.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	frame := device.LastFrame()
	if got := frame.LitPixels(); got != 0 {
		t.Fatalf("lit pixels after clear = %d, want 0", got)
	}
}

func TestStopAllCancelsScrollGoroutine(t *testing.T) {
	ctrl, device := testController(t, clock.Real())

	handle := ctrl.StartScrollLoop(70, time.Millisecond, func(c Canvas, offset int) {
		c.SetPixel(0, 0, ColorWhite)
	})

	testutil.Eventually(t, 5*time.Second, func() bool {
		return device.SwapCount() >= 2
	}, "scroll loop should keep swapping frames")

	ctrl.StopAll()
	testutil.RequireClosed(t, handle.Done(), 5*time.Second, "scroll goroutine exit")

	if got := ctrl.AliveRenderThreads(); got != 0 {
		t.Fatalf("alive render threads after StopAll = %d, want 0", got)
	}
}

func TestScrollOffsetWrapsAfterContentScrollsOff(t *testing.T) {
	ctrl, _ := testController(t, clock.Real())

	const textWidth = 3
	offsets := make(chan int, 256)
	ctrl.StartScrollLoop(textWidth, time.Millisecond, func(c Canvas, offset int) {
		select {
		case offsets <- offset:
		default:
		}
	})
	defer ctrl.StopAll()

	// The offset walks Width..-textWidth then wraps back to Width.
	seenStart := false
	deadline := time.After(10 * time.Second)
	previous := Width + 1
	for {
		select {
		case offset := <-offsets:
			if offset < -textWidth || offset > Width {
				t.Fatalf("offset %d outside [%d, %d]", offset, -textWidth, Width)
			}
			if offset == Width && previous == -textWidth {
				seenStart = true
			}
			previous = offset
		case <-deadline:
			t.Fatal("offset never wrapped back to the start")
		}
		if seenStart {
			break
		}
	}
}

func TestStopAllLogsAndLeaksStuckGoroutine(t *testing.T) {
	clk := clock.Fake(time.Unix(1000, 0))
	ctrl, _ := testController(t, clk)

	release := make(chan struct{})
	ctrl.startAnimation(func(h *Handle) {
		// Ignores h.Stopping() until released: a stuck render loop.
		<-release
	})

	stopped := make(chan struct{})
	go func() {
		ctrl.StopAll()
		close(stopped)
	}()

	// StopAll is waiting on the join timeout.
	clk.BlockUntil(1)
	clk.Advance(2 * time.Second)
	testutil.RequireClosed(t, stopped, 5*time.Second, "StopAll should give up after the join timeout")

	if got := ctrl.AliveRenderThreads(); got != 1 {
		t.Fatalf("alive render threads = %d, want 1 leaked", got)
	}

	close(release)
	testutil.Eventually(t, 5*time.Second, func() bool {
		return ctrl.AliveRenderThreads() == 0
	}, "leaked goroutine should eventually exit")
}

func TestStopAllWithNothingRunningReturnsImmediately(t *testing.T) {
	ctrl, _ := testController(t, clock.Fake(time.Unix(1000, 0)))

	done := make(chan struct{})
	go func() {
		ctrl.StopAll()
		close(done)
	}()
	testutil.RequireClosed(t, done, 5*time.Second, "StopAll with no goroutines")
}

func TestShowAnimationStopsAfterDuration(t *testing.T) {
	ctrl, device := testController(t, clock.Real())

	err := ctrl.ShowAnimation("activity", 50*time.Millisecond, 5*time.Millisecond)
	if err != nil {
		t.Fatalf("ShowAnimation: %v", err)
	}

	ctrl.mu.Lock()
	handle := ctrl.anim
	ctrl.mu.Unlock()
	testutil.RequireClosed(t, handle.Done(), 5*time.Second, "duration-bounded animation exit")

	if device.SwapCount() < 2 {
		t.Fatalf("swap count = %d, want at least 2 frames", device.SwapCount())
	}
}

func TestShowAnimationUnknownNameFailsTyped(t *testing.T) {
	ctrl, device := testController(t, clock.Real())

	err := ctrl.ShowAnimation("disco", 0, 0)
	var unknownErr *UnknownAnimationError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error = %v, want UnknownAnimationError", err)
	}
	if unknownErr.Animation != "disco" {
		t.Fatalf("error animation = %q, want disco", unknownErr.Animation)
	}
	if device.SwapCount() != 0 {
		t.Fatal("unknown animation must not touch the display")
	}
}
