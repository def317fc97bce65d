package params

// Breakpoint is the viewport width, in logical pixels, below which the
// mobile value of a responsive parameter applies.
const Breakpoint = 768.0

// Responsive resolves a desktop/mobile parameter pair against the
// current viewport width. With responsive mode off the desktop value
// always wins. The result must be recomputed whenever the viewport may
// have changed; nothing here caches.
func Responsive(desktop, mobile float64, responsive bool, viewportWidth float64) float64 {
	if responsive && viewportWidth < Breakpoint {
		return mobile
	}
	return desktop
}
