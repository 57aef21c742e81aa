// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import "github.com/hearth-home/hearth/panel"

// Segment is one colored slice of a gauge fill, measured in pixels
// from the start of the fill region. Segments are recomputed on every
// render and never persisted.
type Segment struct {
	Offset int
	Length int
	Color  panel.Color
}

// Segments divides fillExtent pixels among the non-zero percentages,
// each slice proportional to its share of the total. A zero percentage
// produces no segment but still consumes its palette slot, so entries
// keep stable colors as their neighbors come and go. The last visible
// segment absorbs integer rounding so the slices sum to exactly
// fillExtent.
func Segments(percentages []float64, fillExtent int, palette []panel.Color) []Segment {
	if fillExtent <= 0 || len(percentages) == 0 {
		return nil
	}

	total := 0.0
	for _, pct := range percentages {
		total += clamp(pct)
	}
	if total == 0 {
		return nil
	}

	lastVisible := -1
	for i, pct := range percentages {
		if clamp(pct) > 0 {
			lastVisible = i
		}
	}

	var segments []Segment
	offset := 0
	for i, pct := range percentages {
		pct = clamp(pct)
		if pct == 0 {
			continue
		}
		length := int(pct / total * float64(fillExtent))
		if i == lastVisible {
			length = fillExtent - offset
		}
		if length <= 0 {
			continue
		}
		segments = append(segments, Segment{
			Offset: offset,
			Length: length,
			Color:  palette[i%len(palette)],
		})
		offset += length
	}
	return segments
}

// fillExtent converts a percentage of a pixel span to a pixel count.
func fillExtent(pct float64, span int) int {
	return int(clamp(pct) / 100 * float64(span))
}

// fillBarHorizontal fills [xStart,xStart+width) × [yStart,yEnd)
// left-to-right to pct of width.
func fillBarHorizontal(c panel.Canvas, xStart, width, yStart, yEnd int, pct float64, color panel.Color) {
	panel.FillRect(c, xStart, xStart+fillExtent(pct, width), yStart, yEnd, color)
}

// fillBarVertical fills [xStart,xEnd) × [yStart,yEnd) bottom-up to pct
// of the height.
func fillBarVertical(c panel.Canvas, xStart, xEnd, yStart, yEnd int, pct float64, color panel.Color) {
	filled := fillExtent(pct, yEnd-yStart)
	panel.FillRect(c, xStart, xEnd, yEnd-filled, yEnd, color)
}

// fillSegmentsHorizontal paints segments into a horizontal gauge whose
// fill region starts at xStart.
func fillSegmentsHorizontal(c panel.Canvas, xStart, yStart, yEnd int, segments []Segment) {
	for _, seg := range segments {
		panel.FillRect(c, xStart+seg.Offset, xStart+seg.Offset+seg.Length, yStart, yEnd, seg.Color)
	}
}

// meanSegmentFill fills a horizontal gauge whose total extent is the
// mean of the child percentages and whose slices are their
// contributions. This is the parent gauge of the user-story layout.
func meanSegmentFill(c panel.Canvas, xStart, width, yStart, yEnd int, percentages []float64, palette []panel.Color) {
	extent := fillExtent(mean(percentages), width)
	fillSegmentsHorizontal(c, xStart, yStart, yEnd, Segments(percentages, extent, palette))
}

// fixedSegmentFill fills a horizontal gauge to pct of width, sliced by
// the children's contributions. The aggregate is trusted as handed in;
// children only determine the slice proportions. With no children the
// fill is a solid run of the palette's first color.
func fixedSegmentFill(c panel.Canvas, xStart, width, yStart, yEnd int, pct float64, percentages []float64, palette []panel.Color) {
	extent := fillExtent(pct, width)
	if len(percentages) == 0 {
		panel.FillRect(c, xStart, xStart+extent, yStart, yEnd, palette[0])
		return
	}
	fillSegmentsHorizontal(c, xStart, yStart, yEnd, Segments(percentages, extent, palette))
}
