// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// parseJSONParams handles the layout subcommands that take their whole
// parameter set as one JSON document via --json.
func parseJSONParams(args []string, name string, v any) error {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	jsonArg := flags.String("json", "", "layout params: inline JSON, @file, or - for stdin")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 0 {
		return fmt.Errorf("usage: %s --json <params>", name)
	}
	return decodeJSONArg(*jsonArg, name, v)
}

// decodeJSONArg resolves a --json value: inline JSON, @file to read a
// file, or - to read stdin.
func decodeJSONArg(arg, name string, v any) error {
	if arg == "" {
		return fmt.Errorf("%s requires --json", name)
	}

	var data []byte
	switch {
	case arg == "-":
		stdin, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading params from stdin: %w", err)
		}
		data = stdin
	case strings.HasPrefix(arg, "@"):
		file, err := os.ReadFile(arg[1:])
		if err != nil {
			return fmt.Errorf("reading params file: %w", err)
		}
		data = file
	default:
		data = []byte(arg)
	}

	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("parsing %s params: %w", name, err)
	}
	return nil
}
