// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides small helpers shared by tests: channel
// operations with timeout safety valves and polling assertions. The
// timeouts exist only to keep a broken test from hanging the run; they
// are not part of the behavior under test.
package testutil
