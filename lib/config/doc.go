// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the panel daemon.
//
// Configuration comes from a single YAML file named by:
//   - the HEARTH_CONFIG environment variable, or
//   - the --config flag passed to hearth-ledd.
//
// There are no fallbacks or automatic discovery; with neither set, the
// daemon runs on Default(). This keeps configuration deterministic and
// auditable — no hidden overrides. The one exception is the socket
// path, which HEARTH_LED_SOCKET overrides so test harnesses and boot
// scripts can redirect a daemon without writing a file.
package config
