package params

import (
	"math"
	"testing"
)

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [3]float64
	}{
		{"black", "#000000", [3]float64{0, 0, 0}},
		{"white", "#ffffff", [3]float64{1, 1, 1}},
		{"red", "#ff0000", [3]float64{1, 0, 0}},
		{"no hash", "5227ff", [3]float64{0x52 / 255.0, 0x27 / 255.0, 0xff / 255.0}},
		{"default violet", "#5227ff", [3]float64{0x52 / 255.0, 0x27 / 255.0, 0xff / 255.0}},
		{"uppercase", "#A1B2C3", [3]float64{0xa1 / 255.0, 0xb2 / 255.0, 0xc3 / 255.0}},
		{"mixed case", "#aAbBcC", [3]float64{0xaa / 255.0, 0xbb / 255.0, 0xcc / 255.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeHex(tt.in)
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Fatalf("DecodeHex(%q) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestDecodeHexMalformed(t *testing.T) {
	malformed := []string{
		"",
		"#fff",       // shorthand not accepted
		"#ffff",      // 4 digits
		"#fffffff",   // 7 digits
		"red",        // named colors not accepted
		"rgb(1,2,3)", // functional notation not accepted
		"#gggggg",    // non-hex digits
		"##ffffff",   // double hash
		" #ffffff",   // leading space
		"#ffffff\n",  // trailing newline
		"not-a-color",
	}

	for _, in := range malformed {
		if got := DecodeHex(in); got != White {
			t.Errorf("DecodeHex(%q) = %v, want white fallback", in, got)
		}
	}
}

func TestDecodeHexChannelExact(t *testing.T) {
	// Each channel must be exactly digitPairValue/255.
	got := DecodeHex("#804020")
	want := [3]float64{128.0 / 255.0, 64.0 / 255.0, 32.0 / 255.0}
	if got != want {
		t.Fatalf("DecodeHex(#804020) = %v, want %v", got, want)
	}
}
