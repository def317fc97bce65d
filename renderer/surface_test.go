package renderer

import (
	"testing"

	"ripplegrid/input"
	"ripplegrid/options"
	"ripplegrid/uniforms"
)

// fakeContext satisfies graphics.Context without a window or GL.
type fakeContext struct {
	winW, winH  int
	fbW, fbH    int
	now         float64
	shouldClose bool
	resize      func()
	tracker     *input.Tracker
	shutdowns   int
	detaches    int
}

func (c *fakeContext) MakeCurrent()   {}
func (c *fakeContext) DetachCurrent() { c.detaches++ }
func (c *fakeContext) Shutdown()      { c.shutdowns++ }

func (c *fakeContext) SetResizeCallback(f func())     { c.resize = f }
func (c *fakeContext) AttachTracker(t *input.Tracker) { c.tracker = t }
func (c *fakeContext) DetachTracker()                 { c.tracker = nil }

func (c *fakeContext) ShouldClose() bool { return c.shouldClose }
func (c *fakeContext) EndFrame()         {}

func (c *fakeContext) WindowSize() (int, int)      { return c.winW, c.winH }
func (c *fakeContext) FramebufferSize() (int, int) { return c.fbW, c.fbH }
func (c *fakeContext) RenderSize() (int, int)      { return c.fbW, c.fbH }

func (c *fakeContext) Time() float64 { return c.now }

// newBareSurface builds a surface without touching GL, the shape the
// lifecycle tests need.
func newBareSurface(ctx *fakeContext) *Surface {
	q := input.NewQueue()
	set := uniforms.NewGrid(options.Defaults())
	s := &Surface{
		ctx:     ctx,
		opts:    options.Defaults(),
		set:     set,
		queue:   q,
		tracker: input.NewTracker(q, true),
		loop:    NewLoop(q, set),
	}
	s.loop.Start()
	return s
}

func TestRegisterSurfaceDisplacesPrevious(t *testing.T) {
	ctx := &fakeContext{winW: 100, winH: 100, fbW: 100, fbH: 100}

	s1 := newBareSurface(ctx)
	if prev := registerSurface(ctx, s1); prev != nil {
		t.Fatalf("fresh context already had surface %v", prev)
	}

	// Remount into the same context: exactly one surface stays attached.
	s2 := newBareSurface(ctx)
	prev := registerSurface(ctx, s2)
	if prev != s1 {
		t.Fatalf("displaced = %v, want first surface", prev)
	}
	prev.Release()

	attachedMu.Lock()
	got := attached[ctx]
	attachedMu.Unlock()
	if got != s2 {
		t.Fatal("second surface is not the attached one")
	}
	if s1.loop.Running() {
		t.Fatal("displaced surface loop still running")
	}

	s2.Release()
}

func TestReleaseStopsEverything(t *testing.T) {
	ctx := &fakeContext{winW: 100, winH: 100, fbW: 100, fbH: 100}
	s := newBareSurface(ctx)
	registerSurface(ctx, s)
	ctx.AttachTracker(s.tracker)
	ctx.SetResizeCallback(s.handleResize)

	s.Release()

	if s.loop.Running() {
		t.Error("loop still running after release")
	}
	if ctx.tracker != nil {
		t.Error("tracker still attached after release")
	}
	if ctx.resize != nil {
		t.Error("resize callback still installed after release")
	}
	if ctx.detaches != 1 {
		t.Errorf("context detached %d times, want 1", ctx.detaches)
	}

	attachedMu.Lock()
	_, still := attached[ctx]
	attachedMu.Unlock()
	if still {
		t.Error("surface still registered after release")
	}

	// No scheduled tick may fire after teardown.
	if s.loop.Tick(frameDT) {
		t.Error("tick ran after release")
	}
	s.set.Apply()
	if changed := s.set.Apply(); len(changed) != 0 {
		t.Errorf("uniform writes after release: %v", changed)
	}
}

func TestReleaseTwiceIsNoOp(t *testing.T) {
	ctx := &fakeContext{winW: 100, winH: 100, fbW: 100, fbH: 100}
	s := newBareSurface(ctx)
	registerSurface(ctx, s)

	s.Release()
	s.Release()

	if ctx.detaches != 1 {
		t.Errorf("context detached %d times, want 1", ctx.detaches)
	}
}

func TestUnregisterLeavesNewerSurface(t *testing.T) {
	ctx := &fakeContext{winW: 100, winH: 100, fbW: 100, fbH: 100}
	s1 := newBareSurface(ctx)
	registerSurface(ctx, s1)
	s2 := newBareSurface(ctx)
	registerSurface(ctx, s2)

	// Releasing the stale surface must not evict the current one.
	unregisterSurface(s1)
	attachedMu.Lock()
	got := attached[ctx]
	attachedMu.Unlock()
	if got != s2 {
		t.Fatal("unregistering a displaced surface evicted the active one")
	}
	s2.Release()
}
