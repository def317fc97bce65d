package shader

import (
	"math"
	"strings"
	"testing"

	"ripplegrid/options"
	"ripplegrid/uniforms"
)

func defaultState() State {
	s := uniforms.NewGrid(options.Defaults())
	s.Apply()
	st := Snapshot(s)
	st.Resolution = [2]float64{1280, 720}
	st.Time = 1.25
	return st
}

func TestGridUVRotationZeroIsSkipped(t *testing.T) {
	st := defaultState()
	st.Rotation = 0

	aspect := st.Resolution[0] / st.Resolution[1]
	coords := [][2]float64{{0, 0}, {1, 1}, {0.5, 0.5}, {0.25, 0.75}, {0.123, 0.987}}
	for _, c := range coords {
		x, y := GridUV(st, c[0], c[1])
		wantX := (c[0]*2 - 1) * aspect
		wantY := c[1]*2 - 1
		// Bit-identical: the rotation step must be skipped, not be a
		// multiply by a zero-degree matrix.
		if x != wantX || y != wantY {
			t.Errorf("GridUV(%v) = (%v, %v), want (%v, %v)", c, x, y, wantX, wantY)
		}
	}
}

func TestGridUVRotation(t *testing.T) {
	st := defaultState()
	st.Resolution = [2]float64{100, 100} // square, aspect 1
	st.Rotation = 90

	// (1, 0) in centered space. The GLSL mat2(c,-s,s,c) sends (x,y) to
	// (c·x+s·y, -s·x+c·y); at 90° that is (y, -x).
	x, y := GridUV(st, 1, 0.5)
	if math.Abs(x-0) > 1e-12 || math.Abs(y-(-1)) > 1e-12 {
		t.Errorf("90° rotation of (1,0) = (%v, %v), want (0, -1)", x, y)
	}
}

func TestEvalSolidTint(t *testing.T) {
	st := defaultState()
	st.Rainbow = false
	st.GridColor = [3]float64{0.2, 0.4, 0.8}

	r, g, b, a := Eval(st, 0.4, 0.6)
	if a <= 0 {
		t.Fatalf("alpha = %v, want > 0 inside the surface", a)
	}
	// Channel ratios follow the tint exactly.
	if math.Abs(r/g-0.5) > 1e-9 || math.Abs(g/b-0.5) > 1e-9 {
		t.Errorf("tint ratios off: r=%v g=%v b=%v", r, g, b)
	}
}

func TestEvalRainbowBranch(t *testing.T) {
	st := defaultState()
	st.GridColor = [3]float64{1, 1, 1}

	st.Rainbow = false
	r0, g0, b0, _ := Eval(st, 0.3, 0.3)
	st.Rainbow = true
	r1, g1, b1, _ := Eval(st, 0.3, 0.3)

	if r0 == r1 && g0 == g1 && b0 == b1 {
		t.Error("rainbow mode produced the same output as solid white")
	}
}

func TestEvalMouseDisabledIgnoresInfluence(t *testing.T) {
	st := defaultState()
	st.Mouse = [2]float64{0.3, 0.7}

	st.MouseEnabled = false
	st.MouseInfluence = 1
	r0, g0, b0, a0 := Eval(st, 0.31, 0.69)

	st.MouseInfluence = 0
	r1, g1, b1, a1 := Eval(st, 0.31, 0.69)

	if r0 != r1 || g0 != g1 || b0 != b1 || a0 != a1 {
		t.Error("disabled mouse interaction still perturbed the output")
	}
}

func TestEvalMouseInfluencePerturbs(t *testing.T) {
	st := defaultState()
	st.MouseEnabled = true
	st.Mouse = [2]float64{0.5, 0.5}

	st.MouseInfluence = 0
	r0, _, _, _ := Eval(st, 0.52, 0.52)
	st.MouseInfluence = 1
	r1, _, _, _ := Eval(st, 0.52, 0.52)

	if r0 == r1 {
		t.Error("full influence near the pointer changed nothing")
	}
}

func TestEvalFadeBounds(t *testing.T) {
	st := defaultState()
	// Corners sit past the vignette edge; output must be fully faded.
	for _, c := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		_, _, _, a := Eval(st, c[0], c[1])
		if a != 0 {
			t.Errorf("corner %v alpha = %v, want 0", c, a)
		}
	}
}

func TestEvalGlowOnlyWhenPositive(t *testing.T) {
	st := defaultState()
	st.GlowIntensity = 0
	_, _, _, a0 := Eval(st, 0.45, 0.55)
	st.GlowIntensity = 0.1
	_, _, _, a1 := Eval(st, 0.45, 0.55)
	if a1 <= a0 {
		t.Errorf("glow did not add brightness: %v <= %v", a1, a0)
	}
}

func TestShaderSourcesDeclareGridUniforms(t *testing.T) {
	src := GridFragmentShader()
	for _, name := range uniforms.GridNames {
		if !strings.Contains(src, name) {
			t.Errorf("fragment shader missing uniform %q", name)
		}
	}
	if !strings.Contains(VertexShader(), "in_vert") {
		t.Error("vertex shader missing in_vert attribute")
	}
}
