package options

// GridOptions carries every construction parameter of the grid.
// Fields are pointers so cmd can bind them straight to flags and so
// callers can share one set across the renderer and the input tracker.
type GridOptions struct {
	Rainbow          *bool    // animate the tint through a time-varying palette
	GridColor        *string  // hex color string, used when Rainbow is off
	RippleIntensity  *float64 // strength of the radial ripple displacement
	GridSize         *float64 // grid line frequency
	GridThickness    *float64 // exponential falloff width of the lines
	FadeDistance     *float64 // radial fade exponent
	VignetteStrength *float64 // edge vignette exponent
	GlowIntensity    *float64 // extra low-weight line glow, 0 disables
	Opacity          *float64 // final output opacity
	Rotation         *float64 // grid rotation in degrees
	MouseInteraction *bool    // enable pointer tracking
	MouseRadius      *float64 // gaussian falloff radius of pointer influence
	Responsive       *bool    // resolve mobile values below the viewport breakpoint

	// Viewer options.
	Width  *int
	Height *int

	// Record mode options.
	Record     *bool
	Duration   *float64
	FPS        *int
	OutputFile *string
	FFMPEGPath *string
}

// Default construction parameter values.
const (
	DefaultGridColor        = "#5227ff"
	DefaultRippleIntensity  = 0.05
	DefaultGridSize         = 10.0
	DefaultGridThickness    = 15.0
	DefaultFadeDistance     = 1.5
	DefaultVignetteStrength = 2.0
	DefaultGlowIntensity    = 0.1
	DefaultOpacity          = 1.0
	DefaultRotation         = 0.0
	DefaultMouseRadius      = 1.0
)

// Defaults returns a fully populated GridOptions with the documented
// default for every construction parameter.
func Defaults() *GridOptions {
	b := func(v bool) *bool { return &v }
	f := func(v float64) *float64 { return &v }
	s := func(v string) *string { return &v }
	i := func(v int) *int { return &v }
	return &GridOptions{
		Rainbow:          b(false),
		GridColor:        s(DefaultGridColor),
		RippleIntensity:  f(DefaultRippleIntensity),
		GridSize:         f(DefaultGridSize),
		GridThickness:    f(DefaultGridThickness),
		FadeDistance:     f(DefaultFadeDistance),
		VignetteStrength: f(DefaultVignetteStrength),
		GlowIntensity:    f(DefaultGlowIntensity),
		Opacity:          f(DefaultOpacity),
		Rotation:         f(DefaultRotation),
		MouseInteraction: b(true),
		MouseRadius:      f(DefaultMouseRadius),
		Responsive:       b(false),
		Width:            i(1280),
		Height:           i(720),
		Record:           b(false),
		Duration:         f(10.0),
		FPS:              i(60),
		OutputFile:       s("output.mp4"),
		FFMPEGPath:       s(""),
	}
}
