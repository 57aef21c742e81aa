// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"fmt"

	"github.com/hearth-home/hearth/panel"
)

// Single layout geometry. One full-width gauge under the project name,
// with the percentage and two counter lines below.
const (
	singleNameBaseline = 8

	singleGaugeLeft   = 2
	singleGaugeRight  = 62
	singleGaugeTop    = 12
	singleGaugeBottom = 22

	singlePctBaseline     = 32
	singleSprintBaseline  = 44
	singleStoriesBaseline = 56

	// singleCheckX/Y place the completion checkmark where the
	// percentage text would be.
	singleCheckX = 28
	singleCheckY = 26
)

// ScrollThresholdChars is the longest project name the single layout
// centers statically. Anything longer scrolls: at the panel font's
// fixed advance, more characters than this cannot fit the width.
const ScrollThresholdChars = panel.Width / panel.GlyphWidth

// NeedsScroll reports whether the single layout shows name as a
// scrolling marquee instead of a centered label.
func NeedsScroll(name string) bool {
	return len(name) > ScrollThresholdChars
}

// RenderSingle draws the single layout with the project name centered.
// Callers with a name exceeding the scroll threshold use
// RenderSingleFrame per scroll offset instead.
func RenderSingle(c panel.Canvas, project Project) {
	renderSingleBody(c, project)
	panel.DrawTextCentered(c, project.Name, panel.Width/2, singleNameBaseline, panel.ColorWhite)
}

// RenderSingleFrame draws one frame of the scrolling single layout,
// with the project name's left edge at nameX. Everything below the
// name row is identical across frames.
func RenderSingleFrame(c panel.Canvas, project Project, nameX int) {
	renderSingleBody(c, project)
	panel.DrawText(c, project.Name, nameX, singleNameBaseline, panel.ColorWhite)
}

func renderSingleBody(c panel.Canvas, project Project) {
	pct := clamp(project.Percentage)

	panel.OutlineRect(c, singleGaugeLeft, singleGaugeRight, singleGaugeTop, singleGaugeBottom, panel.ColorGray)
	fixedSegmentFill(c,
		singleGaugeLeft+1, singleGaugeRight-singleGaugeLeft-2,
		singleGaugeTop+1, singleGaugeBottom-1,
		pct, sprintPercentages(project.Sprints), SprintColors)

	if pct >= 100 {
		panel.DrawCheckbox(c, singleCheckX, singleCheckY)
	} else {
		panel.DrawTextCentered(c, fmt.Sprintf("%d%%", int(pct)), panel.Width/2, singlePctBaseline, panel.ColorWhite)
	}

	if project.TotalSprints > 0 {
		label := fmt.Sprintf("Sprint: %d", project.CurrentSprint)
		panel.DrawTextCentered(c, label, panel.Width/2, singleSprintBaseline, panel.ColorWhite)
	}
	if project.TotalStories > 0 {
		label := fmt.Sprintf("US: %d/%d", project.CompletedStories, project.TotalStories)
		panel.DrawTextCentered(c, label, panel.Width/2, singleStoriesBaseline, panel.ColorWhite)
	}
}
