// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

// Package protocol defines the JSON message types for the panel
// daemon's Unix socket protocol. Both cmd/hearth-ledd and
// cmd/hearth-led import this package so the wire types are defined
// once rather than mirrored.
//
// The transport is connection-per-message: a client dials the socket,
// writes one Command as a single JSON object, reads one Response, and
// closes. The Response reports only that the command was accepted into
// the daemon's queue — rendering happens later and its outcome is
// never reported back. This is a deliberate backpressure-avoidance
// choice: submitters are boot scripts, chat bots, and sync jobs that
// must not block on the display.
package protocol
