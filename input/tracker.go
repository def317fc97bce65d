package input

// Tracker turns surface-relative pointer/touch samples into queue
// commands. Coordinates are normalized to [0,1]² with y flipped so 0
// is the bottom edge, matching the shader's uv space.
//
// Every method is a no-op when the tracker is disabled or when the
// surface has no usable extent (a handler firing against a gone
// surface must not raise).
type Tracker struct {
	enabled bool
	queue   *Queue
}

func NewTracker(q *Queue, enabled bool) *Tracker {
	return &Tracker{enabled: enabled, queue: q}
}

// Enabled reports whether the tracker forwards events at all.
func (t *Tracker) Enabled() bool { return t.enabled }

// Normalize maps a surface-relative sample to [0,1]² pointer space.
// ok is false when the surface extent is degenerate.
func Normalize(cx, cy, w, h float64) (x, y float64, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return cx / w, 1 - cy/h, true
}

// PointerMoved records a hover sample at (cx, cy) in a surface of
// extent (w, h).
func (t *Tracker) PointerMoved(cx, cy, w, h float64) {
	if !t.enabled {
		return
	}
	x, y, ok := Normalize(cx, cy, w, h)
	if !ok {
		return
	}
	t.queue.Push(Command{Op: OpSetPosition, X: x, Y: y})
}

// PointerEntered engages the pointer influence.
func (t *Tracker) PointerEntered() {
	if !t.enabled {
		return
	}
	t.queue.Push(Command{Op: OpSetInfluence, V: 1})
}

// PointerLeft releases the pointer influence.
func (t *Tracker) PointerLeft() {
	if !t.enabled {
		return
	}
	t.queue.Push(Command{Op: OpSetInfluence, V: 0})
}

// TouchStart engages the influence and records the touch position in
// one event.
func (t *Tracker) TouchStart(cx, cy, w, h float64) {
	if !t.enabled {
		return
	}
	x, y, ok := Normalize(cx, cy, w, h)
	if !ok {
		return
	}
	t.queue.Push(Command{Op: OpSetPosition, X: x, Y: y})
	t.queue.Push(Command{Op: OpSetInfluence, V: 1})
}

// TouchMoved records a touch drag sample.
func (t *Tracker) TouchMoved(cx, cy, w, h float64) {
	t.PointerMoved(cx, cy, w, h)
}

// TouchEnd releases the influence.
func (t *Tracker) TouchEnd() {
	t.PointerLeft()
}
