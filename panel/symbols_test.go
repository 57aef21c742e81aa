// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/hearth-home/hearth/lib/clock"
)

func TestShowSymbolDrawsStaticFrame(t *testing.T) {
	for _, name := range Symbols() {
		t.Run(name, func(t *testing.T) {
			ctrl, device := testController(t, clock.Real())
			if err := ctrl.ShowSymbol(name); err != nil {
				t.Fatalf("ShowSymbol(%q): %v", name, err)
			}
			if device.SwapCount() != 1 {
				t.Fatalf("swap count = %d, want 1", device.SwapCount())
			}
			frame := device.LastFrame()
			if frame.LitPixels() == 0 {
				t.Fatalf("symbol %q drew nothing", name)
			}
		})
	}
}

func TestShowSymbolResolvesAliases(t *testing.T) {
	for alias, canonical := range symbolAliases {
		t.Run(alias, func(t *testing.T) {
			aliased, aliasDevice := testController(t, clock.Real())
			direct, directDevice := testController(t, clock.Real())

			if err := aliased.ShowSymbol(alias); err != nil {
				t.Fatalf("ShowSymbol(%q): %v", alias, err)
			}
			if err := direct.ShowSymbol(canonical); err != nil {
				t.Fatalf("ShowSymbol(%q): %v", canonical, err)
			}
			if aliasDevice.LastFrame() != directDevice.LastFrame() {
				t.Fatalf("alias %q renders differently from %q", alias, canonical)
			}
		})
	}
}

func TestShowSymbolUnknownNameFailsTyped(t *testing.T) {
	ctrl, device := testController(t, clock.Real())

	err := ctrl.ShowSymbol("lasers")
	var unknownErr *UnknownSymbolError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error = %v, want UnknownSymbolError", err)
	}
	if unknownErr.Symbol != "lasers" {
		t.Fatalf("error symbol = %q, want lasers", unknownErr.Symbol)
	}
	if device.SwapCount() != 0 {
		t.Fatal("unknown symbol must not touch the display")
	}
}

func TestAllOnLightsEveryPixel(t *testing.T) {
	ctrl, device := testController(t, clock.Real())

	if err := ctrl.ShowSymbol("all_on"); err != nil {
		t.Fatalf("ShowSymbol: %v", err)
	}
	frame := device.LastFrame()
	if got := frame.LitPixels(); got != Width*Height {
		t.Fatalf("lit pixels = %d, want %d", got, Width*Height)
	}
}

func TestShowProgressClampsAndFills(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
	}{
		{"zero", 0},
		{"negative clamps to zero", -10},
		{"full", 100},
		{"overshoot clamps to full", 150},
	}

	innerPixel := func(frame Frame, fromBottom int) Color {
		return frame[barBottom-2-fromBottom][barLeft+1]
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, device := testController(t, clock.Real())
			if err := ctrl.ShowProgress(tt.percentage); err != nil {
				t.Fatalf("ShowProgress: %v", err)
			}
			frame := device.LastFrame()

			bottomLit := innerPixel(frame, 0) != (Color{})
			wantLit := tt.percentage > 0
			if bottomLit != wantLit {
				t.Fatalf("bottom fill row lit = %v, want %v", bottomLit, wantLit)
			}
			if tt.percentage >= 100 {
				if got := innerPixel(frame, 0); got != ColorGreen {
					t.Fatalf("bottom of full bar = %v, want green", got)
				}
				if got := innerPixel(frame, barBottom-barTop-3); got != ColorRed {
					t.Fatalf("top of full bar = %v, want red", got)
				}
			}
		})
	}
}

func TestShowConnectedTestDrawsConfirmation(t *testing.T) {
	ctrl, device := testController(t, clock.Real())

	if err := ctrl.ShowConnectedTest(); err != nil {
		t.Fatalf("ShowConnectedTest: %v", err)
	}
	if device.LastFrame().LitPixels() == 0 {
		t.Fatal("connected-test frame is blank")
	}
}

func TestRunTestSequenceRunsAndStops(t *testing.T) {
	ctrl := NewController(NewMockDevice(slog.Default()), clock.Real(), slog.Default(), time.Second)
	device := ctrl.Device().(*MockDevice)

	// Keep the test fast: cancel after the first few frames have shown
	// the sequence is running, then verify cancellation stops it.
	ctrl.RunTestSequence()

	deadline := time.Now().Add(5 * time.Second)
	for device.SwapCount() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if device.SwapCount() < 2 {
		t.Fatal("test sequence never advanced past the first frame")
	}
	ctrl.StopAll()
	if got := ctrl.AliveRenderThreads(); got != 0 {
		t.Fatalf("alive render threads = %d, want 0", got)
	}
}
