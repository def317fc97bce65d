package uniforms

import (
	"ripplegrid/options"
	"ripplegrid/params"
)

// Uniform names of the grid shader program.
const (
	Time             = "iTime"
	Resolution       = "iResolution"
	Rainbow          = "uRainbow"
	GridColor        = "uGridColor"
	RippleIntensity  = "uRippleIntensity"
	GridSize         = "uGridSize"
	GridThickness    = "uGridThickness"
	FadeDistance     = "uFadeDistance"
	VignetteStrength = "uVignetteStrength"
	GlowIntensity    = "uGlowIntensity"
	Opacity          = "uOpacity"
	Rotation         = "uRotation"
	MouseEnabled     = "uMouseEnabled"
	Mouse            = "uMouse"
	MouseInfluence   = "uMouseInfluence"
	MouseRadius      = "uMouseRadius"
)

// GridNames lists every uniform the grid program declares. All of them
// must hold a value before the first frame is drawn.
var GridNames = []string{
	Time, Resolution, Rainbow, GridColor, RippleIntensity, GridSize,
	GridThickness, FadeDistance, VignetteStrength, GlowIntensity,
	Opacity, Rotation, MouseEnabled, Mouse, MouseInfluence, MouseRadius,
}

// NewGrid builds the full uniform set for the grid program from the
// construction parameters. Resolution starts at zero and the resize
// pass overwrites it (and the responsive parameters) before the first
// frame.
func NewGrid(o *options.GridOptions) *Set {
	s := NewSet()
	rgb := params.DecodeHex(*o.GridColor)

	s.SetFloat(Time, 0)
	s.SetVec2(Resolution, 0, 0)
	s.SetBool(Rainbow, *o.Rainbow)
	s.SetVec3(GridColor, rgb[0], rgb[1], rgb[2])
	s.SetFloat(RippleIntensity, *o.RippleIntensity)
	s.SetFloat(GridSize, *o.GridSize)
	s.SetFloat(GridThickness, *o.GridThickness)
	s.SetFloat(FadeDistance, *o.FadeDistance)
	s.SetFloat(VignetteStrength, *o.VignetteStrength)
	s.SetFloat(GlowIntensity, *o.GlowIntensity)
	s.SetFloat(Opacity, *o.Opacity)
	s.SetFloat(Rotation, *o.Rotation)
	s.SetBool(MouseEnabled, *o.MouseInteraction)
	s.SetVec2(Mouse, 0.5, 0.5)
	s.SetFloat(MouseInfluence, 0)
	s.SetFloat(MouseRadius, *o.MouseRadius)

	return s
}
