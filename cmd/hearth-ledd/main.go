// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

// Command hearth-ledd drives the 64×64 LED matrix panel. It listens on
// a Unix socket for JSON display commands, queues them by priority, and
// drains the queue with a single worker so commands never interleave on
// the hardware.
//
// Without a framebuffer the daemon degrades to mock mode: every command
// is accepted and logged, nothing is displayed. This keeps development
// machines and CI running the exact same daemon as the device.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/term"

	"github.com/hearth-home/hearth/lib/clock"
	"github.com/hearth-home/hearth/lib/config"
	"github.com/hearth-home/hearth/panel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		socketPath string
		mock       bool
	)
	flag.StringVar(&configPath, "config", "", "path to config file (default $HEARTH_CONFIG)")
	flag.StringVar(&socketPath, "socket", "", "listen socket path (overrides config)")
	flag.BoolVar(&mock, "mock", false, "force mock mode even when hardware is present")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if socketPath != "" {
		cfg.SocketPath = socketPath
	}
	if mock {
		cfg.Mock = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	device := openDevice(cfg, logger)
	defer device.Close()

	daemon := NewDaemon(cfg, device, clock.Real(), logger)

	listener, err := listenSocket(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.SocketPath, err)
	}
	defer listener.Close()
	defer os.Remove(cfg.SocketPath)
	logger.Info("daemon listening", "socket", cfg.SocketPath)

	// Accept connections in the background; the worker drains the queue
	// until a signal arrives or a shutdown command is executed.
	go daemon.serve(ctx, listener)
	daemon.worker(ctx)

	logger.Info("shutting down")
	daemon.stopRendering()
	return nil
}

// openDevice picks the display device: the framebuffer unless mock mode
// is forced or hardware init fails, with an optional terminal preview
// when running mock on an interactive terminal.
func openDevice(cfg config.Config, logger *slog.Logger) panel.Device {
	if !cfg.Mock {
		device, err := panel.OpenFramebuffer(cfg.FramebufferPath)
		if err == nil {
			logger.Info("framebuffer open", "path", cfg.FramebufferPath)
			return device
		}
		logger.Warn("hardware init failed, running in mock mode", "error", err)
	}

	wantPreview := cfg.Preview == "on" ||
		(cfg.Preview == "auto" && term.IsTerminal(int(os.Stdout.Fd())))
	if wantPreview {
		logger.Info("rendering frames to terminal preview")
		return panel.NewPreviewDevice(os.Stdout)
	}
	return panel.NewMockDevice(logger)
}

// listenSocket creates a unix socket listener, removing any stale
// socket file. The socket is world-writable: the daemon is a local
// display service and any process on the machine may drive it.
func listenSocket(socketPath string) (net.Listener, error) {
	socketDir := filepath.Dir(socketPath)
	if err := os.MkdirAll(socketDir, 0755); err != nil {
		return nil, fmt.Errorf("creating socket directory %s: %w", socketDir, err)
	}

	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing stale socket %s: %w", socketPath, err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, err
	}

	if err := os.Chmod(socketPath, 0666); err != nil {
		listener.Close()
		return nil, fmt.Errorf("setting socket permissions: %w", err)
	}
	return listener, nil
}
