// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"fmt"

	"github.com/hearth-home/hearth/panel"
)

// Column layout geometry: a 10px project bar across the top, a label
// baseline, then three vertical sprint columns down to the bottom
// edge.
const (
	columnBarHeight     = 10
	columnLabelBaseline = 16
	columnTop           = 13
	columnWidth         = panel.Width / 3

	columnCheckY = 35
	columnPctY   = 40
)

// RenderSprintColumns draws the vertical sprint view: a horizontal
// project bar with its percentage on top and up to three bottom-up
// sprint columns below. Missing sprints render as dim columns under
// their label.
func RenderSprintColumns(c panel.Canvas, projectPct float64, sprints []Sprint) {
	projectPct = clamp(projectPct)

	fillBarHorizontal(c, 0, panel.Width, 0, columnBarHeight, projectPct, colorProject)
	panel.OutlineRect(c, 0, panel.Width, 0, columnBarHeight, panel.ColorGray)
	if projectPct >= 100 {
		panel.DrawCheckbox(c, 28, 1)
	} else {
		panel.DrawTextCentered(c, fmt.Sprintf("%d%%", int(projectPct)), panel.Width/2, 7, panel.ColorWhite)
	}

	for i := 0; i < rowCount; i++ {
		left := i * columnWidth
		right := left + columnWidth
		if i == rowCount-1 {
			right = panel.Width
		}
		center := left + (right-left)/2

		if i >= len(sprints) {
			panel.FillRect(c, left, right, columnTop, panel.Height, panel.ColorDimGray)
			panel.DrawText(c, fmt.Sprintf("S%d", i+1), left+7, columnLabelBaseline, panel.ColorWhite)
			continue
		}
		panel.DrawText(c, fmt.Sprintf("S%d", i+1), left+7, columnLabelBaseline, panel.ColorWhite)

		pct := clamp(sprints[i].Percentage)
		fillBarVertical(c, left, right, columnTop, panel.Height, pct, panel.ColorGreen)
		if pct >= 100 {
			panel.DrawCheckbox(c, center-panel.CheckboxSize/2, columnCheckY)
		} else if pct > 0 {
			panel.DrawTextCentered(c, fmt.Sprintf("%d%%", int(pct)), center, columnPctY, panel.ColorWhite)
		}
	}
}
