// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import "github.com/hearth-home/hearth/panel"

// StoryColors is the segment palette for user stories inside a sprint
// gauge. A story keeps its palette slot by position, so the same story
// stays the same color as the cycling window moves.
var StoryColors = []panel.Color{
	{R: 0, G: 100, B: 255},  // blue
	{R: 255, G: 255, B: 0},  // yellow
	{R: 0, G: 255, B: 255},  // cyan
	{R: 255, G: 0, B: 255},  // magenta
	{R: 255, G: 128, B: 0},  // orange
	{R: 128, G: 255, B: 0},  // lime
	{R: 255, G: 0, B: 128},  // pink
	{R: 128, G: 0, B: 255},  // purple
}

// SprintColors is the segment palette for sprints inside the project
// gauge of the single layout.
var SprintColors = []panel.Color{
	{R: 0, G: 255, B: 0},    // green
	{R: 0, G: 200, B: 255},  // light blue
	{R: 255, G: 165, B: 0},  // orange
	{R: 255, G: 0, B: 100},  // pink
	{R: 128, G: 0, B: 255},  // purple
	{R: 255, G: 255, B: 0},  // yellow
}

// rowColors color the three gauge rows of the row layouts: sprint
// green, then blue and yellow for the story rows.
var rowColors = []panel.Color{
	{R: 0, G: 255, B: 0},
	{R: 0, G: 100, B: 255},
	{R: 255, G: 255, B: 0},
}

// colorProject fills the project bar of the column layout.
var colorProject = panel.Color{R: 0, G: 100, B: 255}
