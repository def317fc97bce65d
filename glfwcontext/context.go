// Package glfwcontext implements graphics.Context over a GLFW window
// with a desktop OpenGL 4.1 core profile context.
package glfwcontext

import (
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"ripplegrid"
	"ripplegrid/graphics"
	"ripplegrid/input"
)

var _ graphics.Context = (*Context)(nil)

// maxPixelRatio caps the device pixel ratio the grid renders at.
// Fixed policy constant; displays above 2x render at 2x and scale up.
const maxPixelRatio = 2.0

// Context owns one GLFW window and forwards its pointer and resize
// events.
type Context struct {
	window  *glfw.Window
	tracker *input.Tracker
	resize  func()
}

// New creates a window with a 4.1 core context. The framebuffer keeps
// an alpha channel so the grid can composite over whatever is behind
// the window.
func New(width, height int, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, "ripplegrid", nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}

	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if c.resize != nil {
			c.resize()
		}
	})

	return c, nil
}

func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) DetachCurrent() {
	glfw.DetachCurrentContext()
}

// Shutdown destroys the window. A nil or already destroyed window is
// tolerated so teardown can always run both steps.
func (c *Context) Shutdown() {
	if c.window == nil {
		return
	}
	c.window.Destroy()
	c.window = nil
}

func (c *Context) ShouldClose() bool {
	return c.window != nil && c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) WindowSize() (int, int) {
	if c.window == nil {
		return 0, 0
	}
	return c.window.GetSize()
}

func (c *Context) FramebufferSize() (int, int) {
	if c.window == nil {
		return 0, 0
	}
	return c.window.GetFramebufferSize()
}

// RenderSize returns the framebuffer size with the pixel ratio capped
// at maxPixelRatio per axis.
func (c *Context) RenderSize() (int, int) {
	fbW, fbH := c.FramebufferSize()
	winW, winH := c.WindowSize()
	if winW > 0 && fbW > winW*maxPixelRatio {
		fbW = winW * maxPixelRatio
	}
	if winH > 0 && fbH > winH*maxPixelRatio {
		fbH = winH * maxPixelRatio
	}
	return fbW, fbH
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

func (c *Context) SetResizeCallback(f func()) {
	c.resize = f
}

// AttachTracker installs the pointer callbacks. GLFW reports touch on
// desktop as emulated cursor events, so one set of callbacks covers
// both pointer and single-touch input.
func (c *Context) AttachTracker(t *input.Tracker) {
	c.tracker = t
	if c.window == nil {
		return
	}
	c.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if c.tracker == nil {
			return
		}
		width, height := c.WindowSize()
		c.tracker.PointerMoved(xpos, ypos, float64(width), float64(height))
	})
	c.window.SetCursorEnterCallback(func(w *glfw.Window, entered bool) {
		if c.tracker == nil {
			return
		}
		if entered {
			c.tracker.PointerEntered()
		} else {
			c.tracker.PointerLeft()
		}
	})
}

// DetachTracker removes the pointer callbacks.
func (c *Context) DetachTracker() {
	c.tracker = nil
	if c.window == nil {
		return
	}
	c.window.SetCursorPosCallback(nil)
	c.window.SetCursorEnterCallback(nil)
}

// Init initializes GLFW. Must be called from the main thread before
// any context is created.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	ripplegrid.Logger().Info("glfw initialized")
	return nil
}

// Terminate shuts GLFW down. Must be called from the main thread.
func Terminate() {
	glfw.Terminate()
	ripplegrid.Logger().Info("glfw terminated")
}
