package shader

import (
	"math"

	"ripplegrid/mathx"
	"ripplegrid/uniforms"
)

// State is a plain snapshot of the grid uniform values, the input to
// the software evaluation.
type State struct {
	Time             float64
	Resolution       [2]float64
	Rainbow          bool
	GridColor        [3]float64
	RippleIntensity  float64
	GridSize         float64
	GridThickness    float64
	FadeDistance     float64
	VignetteStrength float64
	GlowIntensity    float64
	Opacity          float64
	Rotation         float64
	MouseEnabled     bool
	Mouse            [2]float64
	MouseInfluence   float64
	MouseRadius      float64
}

// Snapshot captures the applied values of a grid uniform set.
func Snapshot(s *uniforms.Set) State {
	get := func(name string) uniforms.Value {
		v, _ := s.Get(name)
		return v
	}
	res := get(uniforms.Resolution)
	clr := get(uniforms.GridColor)
	mouse := get(uniforms.Mouse)
	return State{
		Time:             s.Float(uniforms.Time),
		Resolution:       [2]float64{res.X, res.Y},
		Rainbow:          s.Bool(uniforms.Rainbow),
		GridColor:        [3]float64{clr.X, clr.Y, clr.Z},
		RippleIntensity:  s.Float(uniforms.RippleIntensity),
		GridSize:         s.Float(uniforms.GridSize),
		GridThickness:    s.Float(uniforms.GridThickness),
		FadeDistance:     s.Float(uniforms.FadeDistance),
		VignetteStrength: s.Float(uniforms.VignetteStrength),
		GlowIntensity:    s.Float(uniforms.GlowIntensity),
		Opacity:          s.Float(uniforms.Opacity),
		Rotation:         s.Float(uniforms.Rotation),
		MouseEnabled:     s.Bool(uniforms.MouseEnabled),
		Mouse:            [2]float64{mouse.X, mouse.Y},
		MouseInfluence:   s.Float(uniforms.MouseInfluence),
		MouseRadius:      s.Float(uniforms.MouseRadius),
	}
}

// GridUV maps a [0,1]² surface coordinate to the centered,
// aspect-corrected, rotated space the fragment computation works in.
// The rotation branch is skipped outright when Rotation is zero, same
// as in the GLSL.
func GridUV(st State, u, v float64) (float64, float64) {
	x := u*2 - 1
	y := v*2 - 1
	if st.Resolution[1] != 0 {
		x *= st.Resolution[0] / st.Resolution[1]
	}
	if st.Rotation != 0 {
		rad := st.Rotation * math.Pi / 180
		c, s := math.Cos(rad), math.Sin(rad)
		x, y = c*x+s*y, -s*x+c*y
	}
	return x, y
}

// Eval runs the grid fragment computation for the surface coordinate
// (u, v) in [0,1]² and returns the premultiplied RGBA output. It
// mirrors the GLSL in shader.go step for step and exists so the
// temporal and geometric behavior can be verified without a GL
// context.
func Eval(st State, u, v float64) (r, g, b, a float64) {
	x, y := GridUV(st, u, v)

	dist := math.Hypot(x, y)
	wave := math.Sin(math.Pi * (st.Time - dist))
	rx := x + x*wave*st.RippleIntensity
	ry := y + y*wave*st.RippleIntensity

	if st.MouseEnabled && st.MouseInfluence > 0 {
		mx := st.Mouse[0]*2 - 1
		my := st.Mouse[1]*2 - 1
		if st.Resolution[1] != 0 {
			mx *= st.Resolution[0] / st.Resolution[1]
		}
		dx, dy := x-mx, y-my
		mouseDist := math.Hypot(dx, dy)
		influence := st.MouseInfluence * math.Exp(-mouseDist*mouseDist/(st.MouseRadius*st.MouseRadius))
		mouseWave := math.Sin(math.Pi*(st.Time*2-mouseDist*3)) * influence
		if mouseDist > 0 {
			rx += dx / mouseDist * mouseWave * st.RippleIntensity * 0.3
			ry += dy / mouseDist * mouseWave * st.RippleIntensity * 0.3
		}
	}

	bx := math.Abs(math.Sin(st.GridSize*0.5*math.Pi*rx - math.Pi/2))
	by := math.Abs(math.Sin(st.GridSize*0.5*math.Pi*ry - math.Pi/2))
	sx := mathx.SmoothStep(0, 0.5, bx)
	sy := mathx.SmoothStep(0, 0.5, by)

	var bright float64
	bright += math.Exp(-st.GridThickness * sx * (0.8 + 0.5*math.Sin(math.Pi*st.Time)))
	bright += math.Exp(-st.GridThickness * sy)
	bright += 0.5 * math.Exp(-(st.GridThickness/4)*math.Sin(sx))
	bright += 0.5 * math.Exp(-(st.GridThickness/3)*sy)

	if st.GlowIntensity > 0 {
		bright += st.GlowIntensity * math.Exp(-st.GridThickness*0.5*sx)
		bright += st.GlowIntensity * math.Exp(-st.GridThickness*0.5*sy)
	}

	radialFade := math.Exp(-2 * mathx.Clamp(math.Pow(dist, st.FadeDistance), 0, 1))
	vx, vy := u-0.5, v-0.5
	vignette := mathx.Clamp(1-math.Pow(math.Hypot(vx, vy)*2, st.VignetteStrength), 0, 1)
	fade := radialFade * vignette

	var tint [3]float64
	if st.Rainbow {
		tint[0] = x*0.5 + 0.5*math.Sin(st.Time) + 0.5
		tint[1] = y*0.5 + 0.5*math.Cos(st.Time) + 0.5
		tint[2] = math.Pow(math.Cos(st.Time), 4) + 0.5
	} else {
		tint = st.GridColor
	}

	// The GLSL accumulates the same brightness into all three channels,
	// so |color| is bright·√3.
	alpha := bright * math.Sqrt(3) * fade * st.Opacity
	r = bright * tint[0] * fade * st.Opacity
	g = bright * tint[1] * fade * st.Opacity
	b = bright * tint[2] * fade * st.Opacity
	return r, g, b, alpha
}
