// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package cmdqueue

import (
	"container/heap"
	"sync"
	"time"

	"github.com/hearth-home/hearth/lib/clock"
	"github.com/hearth-home/hearth/lib/protocol"
)

// Queue is a priority queue of commands, safe for many producers and
// one consumer.
type Queue struct {
	clk clock.Clock

	mu      sync.Mutex
	entries entryHeap
	nextSeq uint64

	// notify wakes a blocked Pop after a Push. Capacity 1: Pop
	// re-checks the heap on every wakeup, so coalesced signals are
	// fine with a single consumer.
	notify chan struct{}
}

// New returns an empty queue using clk for Pop timeouts.
func New(clk clock.Clock) *Queue {
	return &Queue{
		clk:    clk,
		notify: make(chan struct{}, 1),
	}
}

// Push adds a command. The sequence number assigned here is the FIFO
// tie-break for equal priorities.
func (q *Queue) Push(command protocol.Command) {
	q.mu.Lock()
	heap.Push(&q.entries, entry{
		command: command,
		seq:     q.nextSeq,
	})
	q.nextSeq++
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Pop removes and returns the highest-priority command, blocking up to
// timeout when the queue is empty. The second return is false on
// timeout. The bounded wait is what lets the daemon's worker observe
// shutdown between commands.
func (q *Queue) Pop(timeout time.Duration) (protocol.Command, bool) {
	deadline := q.clk.After(timeout)
	for {
		q.mu.Lock()
		if q.entries.Len() > 0 {
			popped := heap.Pop(&q.entries).(entry)
			q.mu.Unlock()
			return popped.command, true
		}
		q.mu.Unlock()

		select {
		case <-q.notify:
		case <-deadline:
			return protocol.Command{}, false
		}
	}
}

// Len returns the number of queued commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.entries.Len()
}

// entry pairs a command with its submission sequence number.
type entry struct {
	command protocol.Command
	seq     uint64
}

// entryHeap orders by priority descending, then sequence ascending.
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].command.Priority != h[j].command.Priority {
		return h[i].command.Priority > h[j].command.Priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	last := len(old) - 1
	popped := old[last]
	*h = old[:last]
	return popped
}
