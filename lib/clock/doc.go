// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts time for testability. Production code injects
// Real(); tests inject Fake() and advance time deterministically.
//
// Render loops, queue waits, and cancellation joins all take their
// timing from a Clock rather than the time package, so tests can drive
// a frame loop through dozens of iterations without sleeping.
package clock
