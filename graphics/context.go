// Package graphics defines the windowing/GL context contract the
// renderer draws against. The real implementation is glfwcontext; the
// renderer tests drive the loop through a fake.
package graphics

import "ripplegrid/input"

// Context is the rendering surface host: a window with a GL context,
// a clock, and the pointer event source.
type Context interface {
	// MakeCurrent binds the GL context to the calling goroutine.
	MakeCurrent()
	// DetachCurrent unbinds the GL context, signalling context loss to
	// anything still holding GL handles.
	DetachCurrent()
	// Shutdown destroys the underlying window. Safe to call after
	// DetachCurrent; both run unconditionally on teardown.
	Shutdown()

	ShouldClose() bool
	// EndFrame presents the frame and pumps the event queue.
	EndFrame()

	// WindowSize is the surface extent in logical pixels.
	WindowSize() (int, int)
	// FramebufferSize is the surface extent in device pixels.
	FramebufferSize() (int, int)
	// RenderSize is the framebuffer extent with the device pixel ratio
	// capped; this is the resolution the grid is rendered at.
	RenderSize() (int, int)

	// Time is a monotonic clock in seconds.
	Time() float64

	// SetResizeCallback installs f to run whenever the surface extent
	// changes. Pass nil to remove it.
	SetResizeCallback(f func())
	// AttachTracker routes pointer events into the tracker until
	// DetachTracker is called.
	AttachTracker(t *input.Tracker)
	DetachTracker()
}
