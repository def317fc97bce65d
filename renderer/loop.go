package renderer

import (
	"ripplegrid/input"
	"ripplegrid/mathx"
	"ripplegrid/uniforms"
)

// Per-frame interpolation factors for the smoothed pointer state.
const (
	positionSmoothing  = 0.1
	influenceSmoothing = 0.05
)

// LoopState is the animation loop's run state.
type LoopState uint8

const (
	Stopped LoopState = iota
	Running
)

// Loop advances the animation: it drains the input command queue,
// smooths the pointer state toward its targets, and writes time and
// pointer uniforms into the pending set.
//
// Targets are only ever written from drained commands and the smoothed
// values are only ever written here, so each field keeps a single
// writer. Once Stop is called no further Tick has any effect: no
// uniform write can happen after teardown.
type Loop struct {
	state LoopState
	queue *input.Queue
	set   *uniforms.Set

	elapsed float64

	targetX, targetY float64
	targetInfluence  float64

	curX, curY   float64
	curInfluence float64
}

// NewLoop builds a stopped loop with the pointer targets at the
// surface center.
func NewLoop(q *input.Queue, set *uniforms.Set) *Loop {
	return &Loop{
		queue:   q,
		set:     set,
		targetX: 0.5, targetY: 0.5,
		curX: 0.5, curY: 0.5,
	}
}

func (l *Loop) Start() {
	l.state = Running
}

// Stop halts the loop. Hard guarantee: every Tick after Stop is a
// no-op, whatever was already scheduled.
func (l *Loop) Stop() {
	l.state = Stopped
}

func (l *Loop) State() LoopState { return l.state }

func (l *Loop) Running() bool { return l.state == Running }

// Tick advances the loop by dt seconds and reports whether it ran.
func (l *Loop) Tick(dt float64) bool {
	if l.state != Running {
		return false
	}

	for _, c := range l.queue.Drain() {
		switch c.Op {
		case input.OpSetPosition:
			l.targetX, l.targetY = c.X, c.Y
		case input.OpSetInfluence:
			l.targetInfluence = c.V
		}
	}

	l.curX = mathx.Lerp(l.curX, l.targetX, positionSmoothing)
	l.curY = mathx.Lerp(l.curY, l.targetY, positionSmoothing)
	l.curInfluence = mathx.Lerp(l.curInfluence, l.targetInfluence, influenceSmoothing)

	l.elapsed += dt

	l.set.SetFloat(uniforms.Time, l.elapsed)
	l.set.SetVec2(uniforms.Mouse, l.curX, l.curY)
	l.set.SetFloat(uniforms.MouseInfluence, l.curInfluence)
	return true
}

// Elapsed is the accumulated animation time in seconds.
func (l *Loop) Elapsed() float64 { return l.elapsed }

// Position is the smoothed pointer position.
func (l *Loop) Position() (float64, float64) { return l.curX, l.curY }

// Influence is the smoothed engagement value in [0,1].
func (l *Loop) Influence() float64 { return l.curInfluence }
