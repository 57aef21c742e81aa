// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import "testing"

func TestSegmentsProportionalSplit(t *testing.T) {
	// Children at [0, 40, 60] splitting a 19px fill: the 0% child is
	// omitted, the others split 40:60, and the last segment absorbs the
	// rounding so lengths sum exactly to the fill.
	segments := Segments([]float64{0, 40, 60}, 19, StoryColors)

	if len(segments) != 2 {
		t.Fatalf("segment count = %d, want 2 (0%% child omitted)", len(segments))
	}
	if segments[0].Length != 7 {
		t.Errorf("first segment length = %d, want 7", segments[0].Length)
	}
	if segments[1].Length != 12 {
		t.Errorf("second segment length = %d, want 12", segments[1].Length)
	}
	if got := segments[0].Length + segments[1].Length; got != 19 {
		t.Errorf("segment lengths sum to %d, want 19", got)
	}
	if segments[1].Offset != segments[0].Offset+segments[0].Length {
		t.Error("segments are not contiguous")
	}
}

func TestSegmentsKeepPaletteSlotsStable(t *testing.T) {
	// The 0% child consumes its palette slot without drawing, so its
	// neighbors keep their colors.
	segments := Segments([]float64{0, 40, 60}, 20, StoryColors)
	if segments[0].Color != StoryColors[1] {
		t.Errorf("first visible segment color = %v, want palette slot 1", segments[0].Color)
	}
	if segments[1].Color != StoryColors[2] {
		t.Errorf("second visible segment color = %v, want palette slot 2", segments[1].Color)
	}
}

func TestSegmentsEdgeCases(t *testing.T) {
	if got := Segments(nil, 20, StoryColors); got != nil {
		t.Errorf("no children should yield no segments, got %v", got)
	}
	if got := Segments([]float64{0, 0}, 20, StoryColors); got != nil {
		t.Errorf("all-zero children should yield no segments, got %v", got)
	}
	if got := Segments([]float64{50, 50}, 0, StoryColors); got != nil {
		t.Errorf("zero fill extent should yield no segments, got %v", got)
	}

	// One child takes the whole fill.
	segments := Segments([]float64{42}, 20, StoryColors)
	if len(segments) != 1 || segments[0].Length != 20 {
		t.Fatalf("single child segments = %v, want one 20px segment", segments)
	}
}

func TestSegmentsClampOversizedPercentages(t *testing.T) {
	// 150 clamps to 100, so the split is 100:50 not 150:50.
	segments := Segments([]float64{150, 50}, 30, StoryColors)
	if len(segments) != 2 {
		t.Fatalf("segment count = %d, want 2", len(segments))
	}
	if segments[0].Length != 20 {
		t.Errorf("first segment length = %d, want 20 (clamped 100 of 150 total)", segments[0].Length)
	}
}

func TestMean(t *testing.T) {
	if got := mean(nil); got != 0 {
		t.Errorf("mean of nothing = %v, want 0", got)
	}
	if got := mean([]float64{0, 40, 60}); got != 100.0/3 {
		t.Errorf("mean = %v, want %v", got, 100.0/3)
	}
}

func TestFillExtentClamps(t *testing.T) {
	if got := fillExtent(150, 58); got != 58 {
		t.Errorf("fill extent at 150%% = %d, want full 58", got)
	}
	if got := fillExtent(-10, 58); got != 0 {
		t.Errorf("fill extent at -10%% = %d, want 0", got)
	}
}
