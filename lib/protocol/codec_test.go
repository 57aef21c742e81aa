// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"errors"
	"reflect"
	"testing"
)

// roundTripCommands builds one representative command per kind.
func roundTripCommands(t *testing.T) []Command {
	t.Helper()

	loop := true
	specs := []struct {
		kind     Kind
		priority Priority
		params   any
	}{
		{KindShowSymbol, PriorityMedium, SymbolParams{Symbol: "checkmark"}},
		{KindShowAnimation, PriorityMedium, AnimationParams{Animation: "idle", DurationSeconds: 5}},
		{KindShowProgress, PriorityLow, ProgressParams{Percentage: 42}},
		{KindShowSprintProgress, PriorityLow, SprintProgressParams{
			ProjectPercentage: 50,
			Sprints:           []SprintEntry{{Name: "Sprint 1", Progress: ProgressRef{Percentage: 75}}},
		}},
		{KindShowSprintHorizontal, PriorityLow, SprintHorizontalParams{
			Sprints: []SprintEntry{{Progress: ProgressRef{Percentage: 30}}},
		}},
		{KindShowSingleLayout, PriorityLow, SingleLayoutParams{
			ProjectName: "Hearth", Percentage: 66, CurrentSprint: 2, TotalSprints: 3,
			CompletedStories: 4, TotalStories: 9,
		}},
		{KindShowUserStoryLayout, PriorityLow, UserStoryParams{
			SprintData:  SprintEntry{Index: 1, Progress: ProgressRef{Percentage: 40}},
			UserStories: []StoryEntry{{Progress: ProgressRef{Percentage: 40}}},
		}},
		{KindShowUserStoryLayoutCycling, PriorityLow, UserStoryParams{
			SprintData:           SprintEntry{Progress: ProgressRef{Percentage: 10}},
			UserStories:          []StoryEntry{{Progress: ProgressRef{Percentage: 10}}, {Progress: ProgressRef{Percentage: 20}}, {Progress: ProgressRef{Percentage: 30}}},
			CycleIntervalSeconds: 5,
		}},
		{KindShowGIF, PriorityMedium, GIFParams{Name: "nyan", Loop: &loop}},
		{KindStopAnimation, PriorityHigh, nil},
		{KindClear, PriorityMedium, nil},
		{KindTest, PriorityMedium, nil},
		{KindShowConnectedTest, PriorityHigh, nil},
		{KindShutdown, PriorityHigh, nil},
	}

	commands := make([]Command, 0, len(specs))
	for _, spec := range specs {
		command, err := NewCommand(spec.kind, spec.priority, spec.params)
		if err != nil {
			t.Fatalf("NewCommand(%s): %v", spec.kind, err)
		}
		commands = append(commands, command)
	}
	return commands
}

func TestEncodeDecodeRoundTripEveryKind(t *testing.T) {
	commands := roundTripCommands(t)
	if len(commands) != len(kinds) {
		t.Fatalf("test covers %d kinds, vocabulary has %d", len(commands), len(kinds))
	}

	for _, original := range commands {
		data, err := EncodeCommand(original)
		if err != nil {
			t.Fatalf("EncodeCommand(%s): %v", original.Kind, err)
		}
		decoded, err := DecodeCommand(data)
		if err != nil {
			t.Fatalf("DecodeCommand(%s): %v", original.Kind, err)
		}
		if !reflect.DeepEqual(original, decoded) {
			t.Errorf("%s round trip mismatch:\n  sent %#v\n  got  %#v", original.Kind, original, decoded)
		}
	}
}

func TestDecodeUnknownKindFailsTyped(t *testing.T) {
	_, err := DecodeCommand([]byte(`{"command":"show_lasers","priority":1}`))
	var unknown *UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownKindError", err)
	}
	if unknown.Kind != "show_lasers" {
		t.Errorf("UnknownKindError.Kind = %q, want %q", unknown.Kind, "show_lasers")
	}
}

func TestDecodeInvalidPriorityFailsTyped(t *testing.T) {
	_, err := DecodeCommand([]byte(`{"command":"clear","priority":7}`))
	var invalid *InvalidPriorityError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *InvalidPriorityError", err)
	}
	if invalid.Value != 7 {
		t.Errorf("InvalidPriorityError.Value = %d, want 7", invalid.Value)
	}
}

func TestDecodeMalformedJSONFails(t *testing.T) {
	if _, err := DecodeCommand([]byte(`{"command":`)); err == nil {
		t.Fatal("DecodeCommand accepted truncated JSON")
	}
	if _, err := DecodeCommand(nil); err == nil {
		t.Fatal("DecodeCommand accepted empty payload")
	}
}

func TestDecodeParams(t *testing.T) {
	command, err := DecodeCommand([]byte(`{"command":"show_progress","priority":0,"params":{"percentage":150}}`))
	if err != nil {
		t.Fatalf("DecodeCommand: %v", err)
	}
	var params ProgressParams
	if err := command.DecodeParams(&params); err != nil {
		t.Fatalf("DecodeParams: %v", err)
	}
	// Out-of-range values survive the wire untouched; clamping is the
	// renderer's job.
	if params.Percentage != 150 {
		t.Errorf("Percentage = %v, want 150", params.Percentage)
	}
}

func TestParsePriority(t *testing.T) {
	for name, want := range map[string]Priority{
		"low": PriorityLow, "medium": PriorityMedium, "high": PriorityHigh,
	} {
		got, err := ParsePriority(name)
		if err != nil {
			t.Fatalf("ParsePriority(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParsePriority(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("ParsePriority accepted unknown name")
	}
}

func TestResponseRoundTrip(t *testing.T) {
	for _, response := range []Response{
		Accepted(),
		Rejected(errors.New("bad payload")),
	} {
		data, err := EncodeResponse(response)
		if err != nil {
			t.Fatalf("EncodeResponse: %v", err)
		}
		decoded, err := DecodeResponse(data)
		if err != nil {
			t.Fatalf("DecodeResponse: %v", err)
		}
		if decoded != response {
			t.Errorf("round trip = %#v, want %#v", decoded, response)
		}
	}
}
