// Package renderer owns the GL surface of the grid: program and
// geometry lifecycle, the per-frame uniform flush, the animation loop
// and resize handling, and the offline record mode.
package renderer

import (
	"fmt"
	"strings"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"ripplegrid"
	"ripplegrid/graphics"
	"ripplegrid/input"
	"ripplegrid/options"
	"ripplegrid/params"
	"ripplegrid/shader"
	"ripplegrid/uniforms"
)

var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

// Surface is the live render state of one mounted grid: compiled
// programs, geometry, offscreen target and the uniform set. It exists
// from Attach to Release and nothing in it outlives the mount.
type Surface struct {
	ctx  graphics.Context
	opts *options.GridOptions

	set     *uniforms.Set
	queue   *input.Queue
	tracker *input.Tracker
	loop    *Loop

	quadVAO     uint32
	quadVBO     uint32
	gridProgram uint32
	blitProgram uint32
	locs        map[string]int32

	fbo        uint32
	fboTexture uint32
	renderW    int
	renderH    int

	released bool
}

// attached tracks the one surface bound to each context, so a remount
// into the same context always displaces the previous surface first.
var (
	attachedMu sync.Mutex
	attached   = make(map[graphics.Context]*Surface)
)

// registerSurface records s as the surface of ctx and returns whatever
// surface was attached before, if any.
func registerSurface(ctx graphics.Context, s *Surface) *Surface {
	attachedMu.Lock()
	defer attachedMu.Unlock()
	prev := attached[ctx]
	attached[ctx] = s
	return prev
}

// unregisterSurface drops s from the registry if it is still the
// surface bound to its context.
func unregisterSurface(s *Surface) {
	attachedMu.Lock()
	defer attachedMu.Unlock()
	if attached[s.ctx] == s {
		delete(attached, s.ctx)
	}
}

// Attach mounts a grid surface on ctx: compiles the programs, builds
// the fullscreen geometry and the offscreen target, declares every
// uniform, wires input and resize, and starts the loop. Attaching to a
// context that already holds a surface releases the old one first, so
// a context never carries more than one surface.
func Attach(ctx graphics.Context, opts *options.GridOptions) (*Surface, error) {
	s := &Surface{
		ctx:  ctx,
		opts: opts,
		locs: make(map[string]int32),
	}
	if prev := registerSurface(ctx, s); prev != nil {
		prev.Release()
	}

	ctx.MakeCurrent()
	if err := gl.Init(); err != nil {
		unregisterSurface(s)
		return nil, fmt.Errorf("failed to initialize GL: %w", err)
	}

	var err error
	s.gridProgram, err = newProgram(shader.VertexShader(), shader.GridFragmentShader())
	if err != nil {
		unregisterSurface(s)
		return nil, fmt.Errorf("grid program: %w", err)
	}
	s.blitProgram, err = newProgram(shader.VertexShader(), shader.BlitFragmentShader())
	if err != nil {
		gl.DeleteProgram(s.gridProgram)
		unregisterSurface(s)
		return nil, fmt.Errorf("blit program: %w", err)
	}

	gl.GenVertexArrays(1, &s.quadVAO)
	gl.GenBuffers(1, &s.quadVBO)
	gl.BindVertexArray(s.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(s.gridProgram)
	for _, name := range uniforms.GridNames {
		s.locs[name] = gl.GetUniformLocation(s.gridProgram, gl.Str(name+"\x00"))
	}

	s.set = uniforms.NewGrid(opts)
	s.queue = input.NewQueue()
	s.tracker = input.NewTracker(s.queue, *opts.MouseInteraction)
	if s.tracker.Enabled() {
		ctx.AttachTracker(s.tracker)
	}

	if err := s.createTarget(); err != nil {
		s.Release()
		return nil, err
	}
	ctx.SetResizeCallback(s.handleResize)
	s.handleResize()

	s.loop = NewLoop(s.queue, s.set)
	s.loop.Start()

	ripplegrid.Logger().Info("grid surface attached",
		"render_width", s.renderW, "render_height", s.renderH)
	return s, nil
}

// Release tears the surface down: stops the loop, detaches input and
// resize, deletes every GL object and detaches the context. It runs
// unconditionally on exit paths and calling it again is a no-op.
func (s *Surface) Release() {
	if s.released {
		return
	}
	s.released = true

	if s.loop != nil {
		s.loop.Stop()
	}
	if s.ctx != nil {
		s.ctx.SetResizeCallback(nil)
		s.ctx.DetachTracker()
	}

	if s.gridProgram != 0 {
		gl.DeleteProgram(s.gridProgram)
		s.gridProgram = 0
	}
	if s.blitProgram != 0 {
		gl.DeleteProgram(s.blitProgram)
		s.blitProgram = 0
	}
	if s.fbo != 0 {
		gl.DeleteFramebuffers(1, &s.fbo)
		s.fbo = 0
	}
	if s.fboTexture != 0 {
		gl.DeleteTextures(1, &s.fboTexture)
		s.fboTexture = 0
	}
	if s.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &s.quadVAO)
		s.quadVAO = 0
	}
	if s.quadVBO != 0 {
		gl.DeleteBuffers(1, &s.quadVBO)
		s.quadVBO = 0
	}

	if s.ctx != nil {
		s.ctx.DetachCurrent()
	}
	unregisterSurface(s)

	ripplegrid.Logger().Info("grid surface released")
}

// Loop returns the surface's animation loop.
func (s *Surface) Loop() *Loop { return s.loop }

// Uniforms returns the surface's uniform set. External parameter
// updates write here and take effect on the next frame.
func (s *Surface) Uniforms() *uniforms.Set { return s.set }

// Update pushes a changed set of construction parameters into the live
// uniform set. The new values land on the next frame; neither the
// program nor the loop restarts.
func (s *Surface) Update(o *options.GridOptions) {
	if s.released {
		return
	}
	s.opts = o

	rgb := params.DecodeHex(*o.GridColor)
	s.set.SetBool(uniforms.Rainbow, *o.Rainbow)
	s.set.SetVec3(uniforms.GridColor, rgb[0], rgb[1], rgb[2])
	s.set.SetFloat(uniforms.FadeDistance, *o.FadeDistance)
	s.set.SetFloat(uniforms.VignetteStrength, *o.VignetteStrength)
	s.set.SetFloat(uniforms.GlowIntensity, *o.GlowIntensity)
	s.set.SetFloat(uniforms.Opacity, *o.Opacity)
	s.set.SetFloat(uniforms.Rotation, *o.Rotation)
	s.set.SetBool(uniforms.MouseEnabled, *o.MouseInteraction)

	winW, _ := s.ctx.WindowSize()
	s.applyResponsive(float64(winW))
}

// createTarget builds the offscreen framebuffer the grid pass renders
// into. The target lives at the capped-DPR render resolution and is
// blitted up to the window framebuffer each frame.
func (s *Surface) createTarget() error {
	s.renderW, s.renderH = s.ctx.RenderSize()
	if s.renderW <= 0 || s.renderH <= 0 {
		s.renderW, s.renderH = 1, 1
	}

	gl.GenFramebuffers(1, &s.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, s.fbo)
	gl.GenTextures(1, &s.fboTexture)
	gl.BindTexture(gl.TEXTURE_2D, s.fboTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(s.renderW), int32(s.renderH), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, s.fboTexture, 0)
	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return fmt.Errorf("offscreen framebuffer is not complete")
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

// flushUniforms applies pending uniform writes and uploads the changed
// values to the grid program.
func (s *Surface) flushUniforms() {
	changed := s.set.Apply()
	if len(changed) == 0 {
		return
	}
	gl.UseProgram(s.gridProgram)
	for _, name := range changed {
		loc, ok := s.locs[name]
		if !ok || loc == -1 {
			continue
		}
		v, _ := s.set.Get(name)
		switch v.Kind {
		case uniforms.Float:
			gl.Uniform1f(loc, float32(v.X))
		case uniforms.Vec2:
			gl.Uniform2f(loc, float32(v.X), float32(v.Y))
		case uniforms.Vec3:
			gl.Uniform3f(loc, float32(v.X), float32(v.Y), float32(v.Z))
		case uniforms.Bool:
			var i int32
			if v.B {
				i = 1
			}
			gl.Uniform1i(loc, i)
		}
	}
}

// drawGrid renders the grid pass into the offscreen target.
func (s *Surface) drawGrid() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, s.fbo)
	gl.Viewport(0, 0, int32(s.renderW), int32(s.renderH))
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(s.gridProgram)
	gl.BindVertexArray(s.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// blit presents the offscreen target on the window framebuffer.
func (s *Surface) blit() {
	fbW, fbH := s.ctx.FramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(s.blitProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.fboTexture)
	gl.BindVertexArray(s.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Run drives the interactive loop until the window closes or the loop
// is stopped. The surface is released on the way out no matter how the
// loop exits.
func (s *Surface) Run() {
	defer s.Release()

	last := s.ctx.Time()
	for !s.ctx.ShouldClose() && s.loop.Running() {
		now := s.ctx.Time()
		dt := now - last
		last = now

		s.loop.Tick(dt)
		s.flushUniforms()
		s.drawGrid()
		s.blit()
		s.ctx.EndFrame()
	}
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(logText))
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return sh, nil
}
