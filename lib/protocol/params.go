// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

// ProgressRef wraps a completion percentage. Values outside [0,100]
// are accepted on the wire; the renderer clamps before any pixel math.
type ProgressRef struct {
	Percentage float64 `json:"percentage"`
}

// SprintEntry describes one sprint inside layout params.
type SprintEntry struct {
	// Name is the sprint's display name. Optional; row labels are
	// positional ("S1", "S2", ...).
	Name string `json:"name,omitempty"`

	// Index is the sprint's position within its project, used for the
	// "S<n>" label on the user-story layout. Zero-based.
	Index int `json:"index,omitempty"`

	// Progress is the sprint's aggregate completion.
	Progress ProgressRef `json:"progress"`

	// UserStories optionally carries the sprint's stories so gauges
	// can render proportional per-story segments.
	UserStories []StoryEntry `json:"user_stories,omitempty"`
}

// StoryEntry describes one user story inside layout params.
type StoryEntry struct {
	Name     string      `json:"name,omitempty"`
	Progress ProgressRef `json:"progress"`
}

// SymbolParams configures show_symbol.
type SymbolParams struct {
	// Symbol is the symbol name; see panel.ShowSymbol for the
	// vocabulary and aliases.
	Symbol string `json:"symbol"`
}

// AnimationParams configures show_animation.
type AnimationParams struct {
	// Animation is the animation name: boot, wifi_searching,
	// activity, or idle.
	Animation string `json:"animation"`

	// DurationSeconds bounds the animation's run time. Zero means loop
	// until preempted (boot defaults to 2 seconds).
	DurationSeconds float64 `json:"duration,omitempty"`

	// FrameDelaySeconds overrides the animation's per-frame delay.
	FrameDelaySeconds float64 `json:"frame_delay,omitempty"`
}

// ProgressParams configures show_progress.
type ProgressParams struct {
	Percentage float64 `json:"percentage"`
}

// SprintProgressParams configures show_sprint_progress (the vertical
// sprint view).
type SprintProgressParams struct {
	ProjectPercentage float64       `json:"project_percentage"`
	Sprints           []SprintEntry `json:"sprints"`
}

// SprintHorizontalParams configures show_sprint_horizontal. Only the
// first three sprints render; missing rows draw as dim placeholders.
type SprintHorizontalParams struct {
	Sprints []SprintEntry `json:"sprints"`
}

// SingleLayoutParams configures show_single_layout.
type SingleLayoutParams struct {
	ProjectName      string        `json:"project_name"`
	Percentage       float64       `json:"percentage"`
	CurrentSprint    int           `json:"current_sprint"`
	TotalSprints     int           `json:"total_sprints"`
	CompletedStories int           `json:"completed_stories"`
	TotalStories     int           `json:"total_stories"`
	Sprints          []SprintEntry `json:"sprints,omitempty"`
}

// UserStoryParams configures show_user_story_layout and its cycling
// variant.
type UserStoryParams struct {
	SprintData  SprintEntry  `json:"sprint_data"`
	UserStories []StoryEntry `json:"user_stories"`

	// CycleIntervalSeconds is the pair rotation interval for the
	// cycling kind. Zero selects the daemon's configured default.
	CycleIntervalSeconds float64 `json:"cycle_interval,omitempty"`
}

// GIFParams configures show_gif.
type GIFParams struct {
	// Name is the GIF's base name (no extension) inside the daemon's
	// GIF directory.
	Name string `json:"gif_name"`

	// Loop replays the GIF indefinitely. Nil defaults to true,
	// matching the CLI's behavior.
	Loop *bool `json:"loop,omitempty"`
}
