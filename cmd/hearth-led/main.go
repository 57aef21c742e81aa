// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

// Command hearth-led submits display commands to the panel daemon.
//
// Usage:
//
//	hearth-led [global flags] <command> [args]
//
//	hearth-led symbol checkmark
//	hearth-led --priority high symbol error
//	hearth-led animation boot --duration 2s
//	hearth-led progress 75
//	hearth-led single --json '{"project_name":"HEARTH","percentage":40}'
//	hearth-led user-story --cycling --json @sprint.json
//	hearth-led gif party --no-loop
//	hearth-led clear
//
// The daemon acknowledges queue acceptance only; rendering outcomes
// are visible in the daemon's log, not here.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/hearth-home/hearth/lib/protocol"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	global := pflag.NewFlagSet("hearth-led", pflag.ContinueOnError)
	global.SetInterspersed(false)
	socketPath := global.String("socket", envOr("HEARTH_LED_SOCKET", protocol.DefaultSocketPath), "daemon socket path")
	priorityName := global.String("priority", "medium", "command priority: low, medium, or high")
	timeout := global.Duration("timeout", protocol.DefaultTimeout, "submit timeout")
	if err := global.Parse(args); err != nil {
		return err
	}

	priority, err := protocol.ParsePriority(*priorityName)
	if err != nil {
		return err
	}

	rest := global.Args()
	if len(rest) == 0 {
		return fmt.Errorf("command required: symbol, animation, progress, sprint-progress, sprint-horizontal, single, user-story, gif, clear, stop, test, connected-test, shutdown")
	}

	command, err := buildCommand(rest[0], rest[1:], priority)
	if err != nil {
		return err
	}

	client := protocol.NewClient(*socketPath, *timeout)
	response, err := client.Submit(command)
	if err != nil {
		return err
	}
	if !response.Success {
		return fmt.Errorf("daemon rejected command: %s", response.Error)
	}
	fmt.Println(response.Message)
	return nil
}

func buildCommand(name string, args []string, priority protocol.Priority) (protocol.Command, error) {
	switch name {
	case "symbol":
		if len(args) != 1 {
			return protocol.Command{}, fmt.Errorf("usage: symbol <name>")
		}
		return protocol.NewCommand(protocol.KindShowSymbol, priority,
			protocol.SymbolParams{Symbol: args[0]})

	case "animation":
		flags := pflag.NewFlagSet("animation", pflag.ContinueOnError)
		duration := flags.Duration("duration", 0, "stop the animation after this long (0 = until preempted)")
		frameDelay := flags.Duration("frame-delay", 0, "override the per-frame delay")
		if err := flags.Parse(args); err != nil {
			return protocol.Command{}, err
		}
		if flags.NArg() != 1 {
			return protocol.Command{}, fmt.Errorf("usage: animation <name> [--duration d] [--frame-delay d]")
		}
		return protocol.NewCommand(protocol.KindShowAnimation, priority, protocol.AnimationParams{
			Animation:         flags.Arg(0),
			DurationSeconds:   duration.Seconds(),
			FrameDelaySeconds: frameDelay.Seconds(),
		})

	case "progress":
		if len(args) != 1 {
			return protocol.Command{}, fmt.Errorf("usage: progress <percentage>")
		}
		pct, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return protocol.Command{}, fmt.Errorf("invalid percentage %q: %w", args[0], err)
		}
		return protocol.NewCommand(protocol.KindShowProgress, priority,
			protocol.ProgressParams{Percentage: pct})

	case "sprint-progress":
		var params protocol.SprintProgressParams
		if err := parseJSONParams(args, "sprint-progress", &params); err != nil {
			return protocol.Command{}, err
		}
		return protocol.NewCommand(protocol.KindShowSprintProgress, priority, params)

	case "sprint-horizontal":
		var params protocol.SprintHorizontalParams
		if err := parseJSONParams(args, "sprint-horizontal", &params); err != nil {
			return protocol.Command{}, err
		}
		return protocol.NewCommand(protocol.KindShowSprintHorizontal, priority, params)

	case "single":
		var params protocol.SingleLayoutParams
		if err := parseJSONParams(args, "single", &params); err != nil {
			return protocol.Command{}, err
		}
		return protocol.NewCommand(protocol.KindShowSingleLayout, priority, params)

	case "user-story":
		flags := pflag.NewFlagSet("user-story", pflag.ContinueOnError)
		cycling := flags.Bool("cycling", false, "rotate story pairs when more than two stories")
		interval := flags.Duration("interval", 0, "pair rotation interval (0 = daemon default)")
		jsonArg := flags.String("json", "", "layout params: inline JSON, @file, or - for stdin")
		if err := flags.Parse(args); err != nil {
			return protocol.Command{}, err
		}
		var params protocol.UserStoryParams
		if err := decodeJSONArg(*jsonArg, "user-story", &params); err != nil {
			return protocol.Command{}, err
		}
		kind := protocol.KindShowUserStoryLayout
		if *cycling {
			kind = protocol.KindShowUserStoryLayoutCycling
			if *interval > 0 {
				params.CycleIntervalSeconds = interval.Seconds()
			}
		}
		return protocol.NewCommand(kind, priority, params)

	case "gif":
		flags := pflag.NewFlagSet("gif", pflag.ContinueOnError)
		noLoop := flags.Bool("no-loop", false, "play once instead of looping")
		if err := flags.Parse(args); err != nil {
			return protocol.Command{}, err
		}
		if flags.NArg() != 1 {
			return protocol.Command{}, fmt.Errorf("usage: gif <name> [--no-loop]")
		}
		loop := !*noLoop
		return protocol.NewCommand(protocol.KindShowGIF, priority,
			protocol.GIFParams{Name: flags.Arg(0), Loop: &loop})

	case "clear":
		return protocol.NewCommand(protocol.KindClear, priority, nil)
	case "stop":
		return protocol.NewCommand(protocol.KindStopAnimation, priority, nil)
	case "test":
		return protocol.NewCommand(protocol.KindTest, priority, nil)
	case "connected-test":
		return protocol.NewCommand(protocol.KindShowConnectedTest, priority, nil)
	case "shutdown":
		return protocol.NewCommand(protocol.KindShutdown, priority, nil)
	}
	return protocol.Command{}, fmt.Errorf("unknown command %q", name)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
