// Package mathx holds the small math helpers shared by the animation
// loop and the software shader evaluation.
package mathx

import "golang.org/x/exp/constraints"

// Lerp linearly interpolates from a to b by t.
func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

// Clamp limits n to [minN, maxN].
func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)
	return n
}

// SmoothStep is the GLSL smoothstep: cubic hermite of x over [edge0, edge1].
func SmoothStep[F constraints.Float](edge0, edge1, x F) F {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
