// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

// Package cmdqueue provides the daemon's priority command queue: many
// producer goroutines (one per accepted connection), one consumer (the
// dispatch worker).
//
// Ordering is strict priority at each pop, FIFO within a priority
// level. FIFO is enforced by a monotonic sequence number assigned at
// push — commands themselves are never compared, so two equal-priority
// commands can never collide in the ordering.
package cmdqueue
