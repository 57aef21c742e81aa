// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"fmt"

	"github.com/hearth-home/hearth/panel"
)

// Row layout geometry shared by the sprint-rows and user-story
// layouts: three 21px rows, each a left label, a centered outlined
// gauge, and a right percentage.
const (
	rowHeight = 21
	rowCount  = 3

	rowLabelX = 2

	rowGaugeLeft  = 14
	rowGaugeRight = 38

	rowPctX = 40
)

// rowGeometry returns the vertical extents for row i: gauge band and
// text baseline.
func rowGeometry(i int) (gaugeTop, gaugeBottom, textBaseline int) {
	top := i * rowHeight
	gaugeTop = top + 6
	gaugeBottom = top + rowHeight - 6
	textBaseline = top + rowHeight/2 + 3
	return
}

// drawRowFrame draws the parts every populated row shares: label and
// gauge outline.
func drawRowFrame(c panel.Canvas, i int, label string) {
	gaugeTop, gaugeBottom, baseline := rowGeometry(i)
	panel.DrawText(c, label, rowLabelX, baseline, panel.ColorWhite)
	panel.OutlineRect(c, rowGaugeLeft, rowGaugeRight, gaugeTop, gaugeBottom, panel.ColorGray)
}

// drawRowValue draws the percentage on the right of row i, or the
// checkmark at 100%.
func drawRowValue(c panel.Canvas, i int, pct float64) {
	_, _, baseline := rowGeometry(i)
	if pct >= 100 {
		panel.DrawCheckbox(c, rowPctX, baseline-8)
		return
	}
	panel.DrawText(c, fmt.Sprintf("%d%%", int(pct)), rowPctX, baseline, panel.ColorWhite)
}

// drawPlaceholderRow marks an unpopulated row: label, empty outline,
// and a dim fill so the slot reads as present-but-empty rather than a
// dead region.
func drawPlaceholderRow(c panel.Canvas, i int, label string) {
	drawRowFrame(c, i, label)
	gaugeTop, gaugeBottom, _ := rowGeometry(i)
	panel.FillRect(c, rowGaugeLeft+1, rowGaugeRight-1, gaugeTop+1, gaugeBottom-1, panel.ColorDimGray)
}

// RenderSprintRows draws up to three sprints as horizontal gauge rows.
// A sprint with stories gets a segmented fill colored per story;
// otherwise the fill is solid in the row color. Rows beyond the data
// render as dim placeholders.
func RenderSprintRows(c panel.Canvas, sprints []Sprint) {
	for i := 0; i < rowCount; i++ {
		label := fmt.Sprintf("S%d", i+1)
		if i >= len(sprints) {
			drawPlaceholderRow(c, i, label)
			continue
		}
		sprint := sprints[i]
		pct := clamp(sprint.Percentage)
		gaugeTop, gaugeBottom, _ := rowGeometry(i)

		drawRowFrame(c, i, label)
		if len(sprint.Stories) > 0 {
			meanSegmentFill(c,
				rowGaugeLeft+1, rowGaugeRight-rowGaugeLeft-2,
				gaugeTop+1, gaugeBottom-1,
				storyPercentages(sprint.Stories), StoryColors)
		} else {
			fillBarHorizontal(c,
				rowGaugeLeft+1, rowGaugeRight-rowGaugeLeft-2,
				gaugeTop+1, gaugeBottom-1,
				pct, rowColors[i%len(rowColors)])
		}
		drawRowValue(c, i, pct)
	}
}

// RenderUserStory draws the user-story layout: the sprint row on top,
// then the two stories of the current window. The sprint gauge is a
// segmented fill over allStories — the complete child set — so it
// reads the same no matter which window is showing. windowStart is the
// index of window[0] within allStories and feeds the U-labels.
//
// Rows without a story in the window render as dim placeholders.
func RenderUserStory(c panel.Canvas, sprint Sprint, window []Story, windowStart int, allStories []Story) {
	if len(window) > 2 {
		window = window[:2]
	}

	sprintPct := clamp(sprint.Percentage)
	gaugeTop, gaugeBottom, _ := rowGeometry(0)
	drawRowFrame(c, 0, fmt.Sprintf("S%d", sprint.Index+1))
	if len(allStories) > 0 {
		meanSegmentFill(c,
			rowGaugeLeft+1, rowGaugeRight-rowGaugeLeft-2,
			gaugeTop+1, gaugeBottom-1,
			storyPercentages(allStories), StoryColors)
	} else {
		fillBarHorizontal(c,
			rowGaugeLeft+1, rowGaugeRight-rowGaugeLeft-2,
			gaugeTop+1, gaugeBottom-1,
			sprintPct, rowColors[0])
	}
	drawRowValue(c, 0, sprintPct)

	for i := 1; i < rowCount; i++ {
		label := fmt.Sprintf("U%d", windowStart+i)
		if i-1 >= len(window) {
			drawPlaceholderRow(c, i, label)
			continue
		}
		story := window[i-1]
		pct := clamp(story.Percentage)
		gaugeTop, gaugeBottom, _ := rowGeometry(i)

		drawRowFrame(c, i, label)
		fillBarHorizontal(c,
			rowGaugeLeft+1, rowGaugeRight-rowGaugeLeft-2,
			gaugeTop+1, gaugeBottom-1,
			pct, rowColors[i%len(rowColors)])
		drawRowValue(c, i, pct)
	}
}
