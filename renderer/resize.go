package renderer

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"ripplegrid/params"
	"ripplegrid/uniforms"
)

// mobileScale derives the mobile value of each responsive parameter
// from its desktop value. Small viewports get a sparser, softer grid.
const mobileScale = 0.7

// handleResize runs once at attach and on every surface size change:
// it resizes the offscreen target to the capped-DPR render resolution,
// updates the resolution uniform, and re-resolves the responsive
// parameters against the new viewport width. Values are recomputed
// every time, never cached.
func (s *Surface) handleResize() {
	if s.released {
		return
	}

	w, h := s.ctx.RenderSize()
	if w <= 0 || h <= 0 {
		return
	}
	if w != s.renderW || h != s.renderH {
		s.renderW, s.renderH = w, h
		gl.BindTexture(gl.TEXTURE_2D, s.fboTexture)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}
	s.set.SetVec2(uniforms.Resolution, float64(w), float64(h))

	winW, _ := s.ctx.WindowSize()
	s.applyResponsive(float64(winW))
}

// applyResponsive resolves every responsive parameter for the given
// viewport width and writes the results into the uniform set.
func (s *Surface) applyResponsive(viewportWidth float64) {
	o := s.opts
	resolve := func(desktop float64) float64 {
		return params.Responsive(desktop, desktop*mobileScale, *o.Responsive, viewportWidth)
	}
	s.set.SetFloat(uniforms.GridSize, resolve(*o.GridSize))
	s.set.SetFloat(uniforms.GridThickness, resolve(*o.GridThickness))
	s.set.SetFloat(uniforms.RippleIntensity, resolve(*o.RippleIntensity))
	s.set.SetFloat(uniforms.MouseRadius, resolve(*o.MouseRadius))
}
