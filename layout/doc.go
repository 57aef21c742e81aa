// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

// Package layout renders hierarchical progress data onto the panel.
//
// Every function here is a pure translation of a read-only model into
// SetPixel calls against a panel.Canvas: no goroutines, no device
// access, no mutation of inputs. The daemon composes these with the
// panel controller, which owns the device mutex and any scrolling or
// cycling goroutines.
//
// Three layout families exist, plus a vertical variant:
//
//   - single: one full-width project gauge with name, percentage, and
//     sprint/story counters (single.go)
//   - sprint rows: up to three horizontal sprint gauges (rows.go)
//   - user story: one sprint row over a two-story window, cycled by
//     the daemon when more than two stories exist (rows.go)
//   - sprint columns: a project bar over three vertical sprint bars
//     (vertical.go)
//
// Percentages are clamped to [0,100] before any pixel conversion.
// Aggregate values are trusted as handed in; this package never
// recomputes a parent percentage except where the gauge is defined as
// the mean of its children.
package layout
