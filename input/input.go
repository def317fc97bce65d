// Package input converts raw pointer and touch events into commands on
// a queue. Event handlers only ever enqueue; the animation loop drains
// the queue once per tick and owns the smoothed state, so each field
// has exactly one writer even on a multi-threaded host.
package input

import "sync"

// Op identifies what a command mutates.
type Op uint8

const (
	// OpSetPosition updates the target pointer position.
	OpSetPosition Op = iota
	// OpSetInfluence updates the target engagement value (0 or 1).
	OpSetInfluence
)

// Command is one queued input event.
type Command struct {
	Op   Op
	X, Y float64 // normalized position, OpSetPosition only
	V    float64 // target influence, OpSetInfluence only
}

// Queue is the handler-to-loop command channel.
type Queue struct {
	mu   sync.Mutex
	cmds []Command
}

func NewQueue() *Queue { return &Queue{} }

func (q *Queue) Push(c Command) {
	q.mu.Lock()
	q.cmds = append(q.cmds, c)
	q.mu.Unlock()
}

// Drain removes and returns all queued commands in arrival order.
func (q *Queue) Drain() []Command {
	q.mu.Lock()
	cmds := q.cmds
	q.cmds = nil
	q.mu.Unlock()
	return cmds
}

// Len reports the number of queued commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.cmds)
}
