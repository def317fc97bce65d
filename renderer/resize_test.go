package renderer

import (
	"testing"

	"ripplegrid/options"
	"ripplegrid/uniforms"
)

func TestApplyResponsive(t *testing.T) {
	ctx := &fakeContext{winW: 500, winH: 400, fbW: 500, fbH: 400}
	s := newBareSurface(ctx)
	*s.opts.Responsive = true

	s.applyResponsive(500)
	s.set.Apply()

	wantMobile := options.DefaultGridSize * mobileScale
	if got := s.set.Float(uniforms.GridSize); got != wantMobile {
		t.Errorf("grid size below breakpoint = %v, want %v", got, wantMobile)
	}
	if got := s.set.Float(uniforms.MouseRadius); got != options.DefaultMouseRadius*mobileScale {
		t.Errorf("mouse radius below breakpoint = %v", got)
	}

	// Widening past the breakpoint restores desktop values; nothing is
	// cached between resolutions.
	s.applyResponsive(1024)
	s.set.Apply()
	if got := s.set.Float(uniforms.GridSize); got != options.DefaultGridSize {
		t.Errorf("grid size above breakpoint = %v, want %v", got, options.DefaultGridSize)
	}
}

func TestApplyResponsiveDisabled(t *testing.T) {
	ctx := &fakeContext{winW: 500, winH: 400, fbW: 500, fbH: 400}
	s := newBareSurface(ctx)

	s.applyResponsive(300)
	s.set.Apply()
	if got := s.set.Float(uniforms.GridThickness); got != options.DefaultGridThickness {
		t.Errorf("thickness with responsive off = %v, want desktop %v", got, options.DefaultGridThickness)
	}
}
