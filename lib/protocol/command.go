// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"encoding/json"
	"fmt"
)

// Kind identifies a display action. The vocabulary is closed: decoding
// any other value fails with UnknownKindError.
type Kind string

const (
	// KindShowSymbol draws a named static symbol (checkmark, error,
	// wifi, tunnel, hourglass, dot, all_on and aliases).
	KindShowSymbol Kind = "show_symbol"

	// KindShowAnimation starts a named animation loop (boot,
	// wifi_searching, activity, idle).
	KindShowAnimation Kind = "show_animation"

	// KindShowProgress draws the full-panel vertical progress bar.
	KindShowProgress Kind = "show_progress"

	// KindShowSprintProgress renders the vertical sprint view: project
	// bar on top, up to three sprint columns below.
	KindShowSprintProgress Kind = "show_sprint_progress"

	// KindShowSprintHorizontal renders up to three sprint rows, each
	// with a label, an outlined gauge, and a percentage.
	KindShowSprintHorizontal Kind = "show_sprint_horizontal"

	// KindShowSingleLayout renders one project: name, segmented gauge,
	// percentage, sprint and story counters.
	KindShowSingleLayout Kind = "show_single_layout"

	// KindShowUserStoryLayout renders a sprint row plus up to two
	// user story rows.
	KindShowUserStoryLayout Kind = "show_user_story_layout"

	// KindShowUserStoryLayoutCycling is the cycling variant: with more
	// than two stories the daemon rotates through them in pairs.
	KindShowUserStoryLayoutCycling Kind = "show_user_story_layout_cycling"

	// KindShowGIF plays a GIF from the daemon's GIF directory.
	KindShowGIF Kind = "show_gif"

	// KindStopAnimation stops whatever animation is running without
	// drawing anything new.
	KindStopAnimation Kind = "stop_animation"

	// KindClear blanks the panel.
	KindClear Kind = "clear"

	// KindTest runs the multi-step hardware diagnostic sequence.
	KindTest Kind = "test"

	// KindShowConnectedTest draws the "CONNECTED" confirmation used by
	// the connectivity self-test.
	KindShowConnectedTest Kind = "show_connected_test"

	// KindShutdown asks the daemon to drain its loops and exit.
	KindShutdown Kind = "shutdown"
)

// kinds is the closed command vocabulary.
var kinds = map[Kind]bool{
	KindShowSymbol:                 true,
	KindShowAnimation:              true,
	KindShowProgress:               true,
	KindShowSprintProgress:         true,
	KindShowSprintHorizontal:       true,
	KindShowSingleLayout:           true,
	KindShowUserStoryLayout:        true,
	KindShowUserStoryLayoutCycling: true,
	KindShowGIF:                    true,
	KindStopAnimation:              true,
	KindClear:                      true,
	KindTest:                       true,
	KindShowConnectedTest:          true,
	KindShutdown:                   true,
}

// Kinds returns the full command vocabulary. The slice is freshly
// allocated; callers may sort or modify it.
func Kinds() []Kind {
	all := make([]Kind, 0, len(kinds))
	for k := range kinds {
		all = append(all, k)
	}
	return all
}

// Valid reports whether k is part of the command vocabulary.
func (k Kind) Valid() bool { return kinds[k] }

// Priority orders commands in the daemon's queue. Higher values are
// dispatched first; ties dispatch in submission order.
type Priority int

const (
	// PriorityLow is for idle animations and routine progress updates.
	PriorityLow Priority = 0
	// PriorityMedium is for boot sequences and status symbols.
	PriorityMedium Priority = 1
	// PriorityHigh is for errors and critical status.
	PriorityHigh Priority = 2
)

// String returns the lowercase name used in logs and by the CLI.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// Valid reports whether p is one of the three defined levels.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// ParsePriority converts a CLI-facing name ("low", "medium", "high")
// to a Priority.
func ParsePriority(name string) (Priority, error) {
	switch name {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return 0, fmt.Errorf("unknown priority %q (want low, medium, or high)", name)
}

// Command is one requested display action. Immutable once built:
// produced by a client, consumed exactly once by the daemon's worker.
type Command struct {
	// Kind selects the display action.
	Kind Kind `json:"command"`

	// Priority orders the command in the daemon's queue.
	Priority Priority `json:"priority"`

	// Params carries kind-specific parameters. Decode into a typed
	// params struct with DecodeParams.
	Params map[string]any `json:"params,omitempty"`
}

// NewCommand builds a Command from a typed params struct (or nil for
// parameterless kinds). The params are round-tripped through JSON so
// the in-memory Command matches what a remote peer would decode.
func NewCommand(kind Kind, priority Priority, params any) (Command, error) {
	command := Command{Kind: kind, Priority: priority}
	if params == nil {
		return command, nil
	}
	data, err := json.Marshal(params)
	if err != nil {
		return Command{}, fmt.Errorf("marshaling %s params: %w", kind, err)
	}
	if err := json.Unmarshal(data, &command.Params); err != nil {
		return Command{}, fmt.Errorf("normalizing %s params: %w", kind, err)
	}
	return command, nil
}

// DecodeParams unmarshals the command's params map into a typed params
// struct. Unknown keys are ignored for forward compatibility.
func (c Command) DecodeParams(v any) error {
	data, err := json.Marshal(c.Params)
	if err != nil {
		return fmt.Errorf("re-encoding %s params: %w", c.Kind, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s params: %w", c.Kind, err)
	}
	return nil
}

// Response is the daemon's acceptance report. Success means the
// command entered the queue, not that it rendered.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Accepted builds the affirmative Response the daemon sends once a
// command is queued.
func Accepted() Response {
	return Response{Success: true, Message: "command queued"}
}

// Rejected builds the Response for a command that never reached the
// queue (malformed payload, unknown kind).
func Rejected(err error) Response {
	return Response{Success: false, Error: err.Error()}
}
