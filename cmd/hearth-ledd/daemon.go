// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"path/filepath"
	"sync"
	"time"

	"github.com/hearth-home/hearth/layout"
	"github.com/hearth-home/hearth/lib/clock"
	"github.com/hearth-home/hearth/lib/cmdqueue"
	"github.com/hearth-home/hearth/lib/config"
	"github.com/hearth-home/hearth/lib/protocol"
	"github.com/hearth-home/hearth/panel"
)

// connDeadline bounds one request/response cycle on a client
// connection.
const connDeadline = 10 * time.Second

// Daemon is the single process-wide coordination point: the queue fed
// by connection handlers, the panel controller owning the device, and
// the cycling goroutine for the rotating user-story layout. Everything
// is injected at construction; there are no package-level singletons.
type Daemon struct {
	cfg    config.Config
	queue  *cmdqueue.Queue
	ctrl   *panel.Controller
	clk    clock.Clock
	logger *slog.Logger

	// shutdownCh is closed when a shutdown command executes, ending the
	// worker loop.
	shutdownCh   chan struct{}
	shutdownOnce sync.Once

	// mu guards cycling and state. The worker is the only goroutine
	// that starts or stops cycling; the mutex exists for the status and
	// test paths that observe them.
	mu      sync.Mutex
	cycling *panel.Handle
	state   string
}

// NewDaemon wires a daemon around the given device. The controller and
// queue share the injected clock so tests can drive every wait.
func NewDaemon(cfg config.Config, device panel.Device, clk clock.Clock, logger *slog.Logger) *Daemon {
	return &Daemon{
		cfg:        cfg,
		queue:      cmdqueue.New(clk),
		ctrl:       panel.NewController(device, clk, logger, time.Duration(cfg.JoinTimeout)),
		clk:        clk,
		logger:     logger,
		shutdownCh: make(chan struct{}),
		state:      "idle",
	}
}

// swapState records kind as the daemon's current display state and
// returns the previous one. The state is log context only; dispatch
// never branches on it.
func (d *Daemon) swapState(state string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	previous := d.state
	d.state = state
	return previous
}

// serve accepts connections until ctx is cancelled or the listener
// closes. Each connection is one command: handlers only decode and
// enqueue, so slow rendering never blocks the accept loop.
func (d *Daemon) serve(ctx context.Context, listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			case <-d.shutdownCh:
				return
			default:
			}
			d.logger.Error("accept error", "error", err)
			continue
		}
		go d.handleConnection(conn)
	}
}

// handleConnection reads one command, queues it, and reports
// acceptance. The response states only that the command entered the
// queue; rendering happens later on the worker and its failures are
// logged, not returned.
func (d *Daemon) handleConnection(conn net.Conn) {
	defer conn.Close()
	conn.SetDeadline(d.clk.Now().Add(connDeadline))

	// The client half-closes after writing, so reading to EOF yields
	// exactly one command.
	command, err := protocol.ReadCommand(conn)
	if err != nil {
		d.logger.Error("rejecting command", "error", err)
		d.respond(conn, protocol.Rejected(err))
		return
	}

	d.queue.Push(command)
	d.logger.Info("command queued", "command", command.Kind, "priority", command.Priority)
	d.respond(conn, protocol.Accepted())
}

func (d *Daemon) respond(conn net.Conn, response protocol.Response) {
	data, err := protocol.EncodeResponse(response)
	if err != nil {
		d.logger.Error("encoding response", "error", err)
		return
	}
	if _, err := conn.Write(data); err != nil {
		d.logger.Error("writing response", "error", err)
	}
}

// worker drains the queue one command at a time until ctx is cancelled
// or a shutdown command executes. The bounded Pop keeps shutdown
// latency under the pop timeout even when the queue stays empty.
func (d *Daemon) worker(ctx context.Context) {
	d.logger.Info("command worker started")
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.shutdownCh:
			return
		default:
		}

		command, ok := d.queue.Pop(time.Duration(d.cfg.PopTimeout))
		if !ok {
			continue
		}
		d.execute(command)
	}
}

// execute runs one command. A panic in a handler is confined to that
// command: the worker logs it and moves on to the next.
func (d *Daemon) execute(command protocol.Command) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("command panicked", "command", command.Kind, "panic", r)
		}
	}()

	previous := d.swapState(string(command.Kind))
	d.logger.Info("executing command", "command", command.Kind, "previous_state", previous)

	// Preempt whatever is rendering before drawing anything new, so a
	// stale animation or cycling goroutine cannot pop over the fresh
	// content. The cycling kind does its own stop (it replaces the
	// cycling goroutine), and stop/shutdown have nothing to draw over.
	switch command.Kind {
	case protocol.KindShowUserStoryLayoutCycling, protocol.KindStopAnimation, protocol.KindShutdown:
	default:
		d.stopCycling()
		d.ctrl.StopAll()
	}

	if err := d.dispatch(command); err != nil {
		d.logger.Error("command failed", "command", command.Kind, "error", err)
	}
}

func (d *Daemon) dispatch(command protocol.Command) error {
	switch command.Kind {
	case protocol.KindShowSymbol:
		var params protocol.SymbolParams
		if err := command.DecodeParams(&params); err != nil {
			return err
		}
		return d.ctrl.ShowSymbol(params.Symbol)

	case protocol.KindShowAnimation:
		var params protocol.AnimationParams
		if err := command.DecodeParams(&params); err != nil {
			return err
		}
		duration := time.Duration(params.DurationSeconds * float64(time.Second))
		frameDelay := time.Duration(params.FrameDelaySeconds * float64(time.Second))
		if frameDelay <= 0 {
			frameDelay = time.Duration(d.cfg.FrameDelay)
		}
		return d.ctrl.ShowAnimation(params.Animation, duration, frameDelay)

	case protocol.KindShowProgress:
		var params protocol.ProgressParams
		if err := command.DecodeParams(&params); err != nil {
			return err
		}
		return d.ctrl.ShowProgress(params.Percentage)

	case protocol.KindShowSprintProgress:
		var params protocol.SprintProgressParams
		if err := command.DecodeParams(&params); err != nil {
			return err
		}
		return d.ctrl.Draw(func(c panel.Canvas) {
			layout.RenderSprintColumns(c, params.ProjectPercentage, sprintsFromEntries(params.Sprints))
		})

	case protocol.KindShowSprintHorizontal:
		var params protocol.SprintHorizontalParams
		if err := command.DecodeParams(&params); err != nil {
			return err
		}
		return d.ctrl.Draw(func(c panel.Canvas) {
			layout.RenderSprintRows(c, sprintsFromEntries(params.Sprints))
		})

	case protocol.KindShowSingleLayout:
		var params protocol.SingleLayoutParams
		if err := command.DecodeParams(&params); err != nil {
			return err
		}
		return d.showSingleLayout(params)

	case protocol.KindShowUserStoryLayout:
		var params protocol.UserStoryParams
		if err := command.DecodeParams(&params); err != nil {
			return err
		}
		sprint := sprintFromEntry(params.SprintData)
		stories := storiesFromEntries(params.UserStories)
		return d.ctrl.Draw(func(c panel.Canvas) {
			layout.RenderUserStory(c, sprint, stories, 0, stories)
		})

	case protocol.KindShowUserStoryLayoutCycling:
		var params protocol.UserStoryParams
		if err := command.DecodeParams(&params); err != nil {
			return err
		}
		return d.startCycling(params)

	case protocol.KindShowGIF:
		var params protocol.GIFParams
		if err := command.DecodeParams(&params); err != nil {
			return err
		}
		return d.showGIF(params)

	case protocol.KindStopAnimation:
		d.stopCycling()
		d.ctrl.StopAll()
		return nil

	case protocol.KindClear:
		return d.ctrl.Clear()

	case protocol.KindTest:
		d.ctrl.RunTestSequence()
		return nil

	case protocol.KindShowConnectedTest:
		return d.ctrl.ShowConnectedTest()

	case protocol.KindShutdown:
		d.shutdownOnce.Do(func() { close(d.shutdownCh) })
		return nil
	}
	return fmt.Errorf("no handler for command %q", command.Kind)
}

// showSingleLayout renders the single project view, scrolling the name
// when it exceeds the static threshold.
func (d *Daemon) showSingleLayout(params protocol.SingleLayoutParams) error {
	project := layout.Project{
		Name:             params.ProjectName,
		Percentage:       params.Percentage,
		CurrentSprint:    params.CurrentSprint,
		TotalSprints:     params.TotalSprints,
		CompletedStories: params.CompletedStories,
		TotalStories:     params.TotalStories,
		Sprints:          sprintsFromEntries(params.Sprints),
	}

	if !layout.NeedsScroll(project.Name) {
		return d.ctrl.Draw(func(c panel.Canvas) {
			layout.RenderSingle(c, project)
		})
	}

	textWidth := panel.TextWidth(project.Name)
	d.ctrl.StartScrollLoop(textWidth, time.Duration(d.cfg.ScrollInterval), func(c panel.Canvas, offset int) {
		layout.RenderSingleFrame(c, project, offset)
	})
	return nil
}

// showGIF resolves the named GIF under the configured directory and
// starts playback. The name is a bare base name; path separators are
// rejected so clients cannot escape the GIF directory.
func (d *Daemon) showGIF(params protocol.GIFParams) error {
	if params.Name == "" || params.Name != filepath.Base(params.Name) {
		return fmt.Errorf("invalid gif name %q", params.Name)
	}
	path := filepath.Join(d.cfg.GIFDir, params.Name+".gif")
	anim, err := panel.LoadGIF(path)
	if err != nil {
		return err
	}

	loop := true
	if params.Loop != nil {
		loop = *params.Loop
	}
	d.ctrl.ShowGIF(anim, loop)
	return nil
}

// stopRendering tears down every render goroutine; called once on the
// way out of the process.
func (d *Daemon) stopRendering() {
	d.stopCycling()
	d.ctrl.StopAll()
}

// aliveRenderThreads counts render goroutines still running: the
// controller's plus the cycling goroutine. Tests assert this drops to
// zero after preemption.
func (d *Daemon) aliveRenderThreads() int {
	count := d.ctrl.AliveRenderThreads()
	d.mu.Lock()
	cycling := d.cycling
	d.mu.Unlock()
	if cycling != nil {
		select {
		case <-cycling.Done():
		default:
			count++
		}
	}
	return count
}

// sprintFromEntry converts a wire sprint into the layout model.
func sprintFromEntry(entry protocol.SprintEntry) layout.Sprint {
	return layout.Sprint{
		Name:       entry.Name,
		Index:      entry.Index,
		Percentage: entry.Progress.Percentage,
		Stories:    storiesFromEntries(entry.UserStories),
	}
}

func sprintsFromEntries(entries []protocol.SprintEntry) []layout.Sprint {
	if len(entries) == 0 {
		return nil
	}
	sprints := make([]layout.Sprint, len(entries))
	for i, entry := range entries {
		sprints[i] = sprintFromEntry(entry)
	}
	return sprints
}

func storiesFromEntries(entries []protocol.StoryEntry) []layout.Story {
	if len(entries) == 0 {
		return nil
	}
	stories := make([]layout.Story, len(entries))
	for i, entry := range entries {
		stories[i] = layout.Story{Name: entry.Name, Percentage: entry.Progress.Percentage}
	}
	return stories
}
