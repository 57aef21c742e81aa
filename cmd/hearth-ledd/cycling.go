// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	"github.com/hearth-home/hearth/layout"
	"github.com/hearth-home/hearth/lib/protocol"
	"github.com/hearth-home/hearth/panel"
)

// startCycling shows the user-story layout, rotating through the
// stories in pairs. With two or fewer stories there is nothing to
// rotate: the layout renders once, statically, and no goroutine
// starts.
//
// The cycling goroutine is the one render goroutine the daemon owns
// directly rather than through the controller: its frames are full
// layout renders, and it must keep running across the controller's
// StopAll when the next command is the cycling kind itself.
func (d *Daemon) startCycling(params protocol.UserStoryParams) error {
	d.stopCycling()
	d.ctrl.StopAll()

	sprint := sprintFromEntry(params.SprintData)
	stories := storiesFromEntries(params.UserStories)

	if len(stories) <= 2 {
		return d.ctrl.Draw(func(c panel.Canvas) {
			layout.RenderUserStory(c, sprint, stories, 0, stories)
		})
	}

	interval := time.Duration(params.CycleIntervalSeconds * float64(time.Second))
	if interval <= 0 {
		interval = time.Duration(d.cfg.CycleInterval)
	}

	handle := panel.NewHandle()
	d.mu.Lock()
	d.cycling = handle
	d.mu.Unlock()

	go func() {
		defer handle.Finish()
		start := 0
		for {
			end := start + 2
			if end > len(stories) {
				end = len(stories)
			}
			window := stories[start:end]

			err := d.ctrl.Draw(func(c panel.Canvas) {
				layout.RenderUserStory(c, sprint, window, start, stories)
			})
			if err != nil {
				d.logger.Error("cycling frame failed", "error", err)
				return
			}
			d.logger.Info("cycling window", "from", start+1, "to", end, "of", len(stories))

			select {
			case <-handle.Stopping():
				return
			case <-d.clk.After(interval):
			}

			start += 2
			if start >= len(stories) {
				start = 0
			}
		}
	}()

	d.logger.Info("user story cycling started",
		"stories", len(stories), "interval", interval)
	return nil
}

// stopCycling cancels the cycling goroutine and waits for it, bounded
// by the configured join timeout. A goroutine that overruns the
// timeout is abandoned with a log line, same as the controller's
// render goroutines.
func (d *Daemon) stopCycling() {
	d.mu.Lock()
	handle := d.cycling
	d.cycling = nil
	d.mu.Unlock()

	if handle == nil {
		return
	}
	handle.Cancel()
	select {
	case <-handle.Done():
		d.logger.Info("user story cycling stopped")
	case <-d.clk.After(time.Duration(d.cfg.JoinTimeout)):
		d.logger.Warn("cycling goroutine did not stop in time",
			"timeout", time.Duration(d.cfg.JoinTimeout))
	}
}
