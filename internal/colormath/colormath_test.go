package colormath

import (
	"math"
	"testing"
)

func TestParseNotations(t *testing.T) {
	cases := []struct {
		in      string
		r, g, b float64
	}{
		{"#ffffff", 1, 1, 1},
		{"#FFF", 1, 1, 1},
		{"#000000ff", 0, 0, 0},
		{"#abcd", 0.6667, 0.7333, 0.8},
		{"rgb(255, 0, 0)", 1, 0, 0},
		{"rgba(0, 255, 0, 0.5)", 0, 1, 0},
		{"rgb(100%, 50%, 0%)", 1, 0.5, 0},
		{"hsl(0, 100%, 50%)", 1, 0, 0},
		{"hsla(120, 100%, 50%, 1)", 0, 1, 0},
		{"hsl(480, 100%, 50%)", 0, 1, 0},
		{"white", 1, 1, 1},
		{"  Black ", 0, 0, 0},
	}
	for _, tc := range cases {
		c, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if math.Abs(c.R-tc.r) > 0.01 || math.Abs(c.G-tc.g) > 0.01 || math.Abs(c.B-tc.b) > 0.01 {
			t.Errorf("Parse(%q) = (%.3f, %.3f, %.3f), want (%.3f, %.3f, %.3f)",
				tc.in, c.R, c.G, c.B, tc.r, tc.g, tc.b)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "rgb(", "rgb(a,b,c)", "hsl(x, 10%, 10%)", "notacolor", "cmyk(0,0,0,0)"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestContrastRatioKnownPair(t *testing.T) {
	fg, err := Parse("#333333")
	if err != nil {
		t.Fatal(err)
	}
	bg, err := Parse("#FFFFFF")
	if err != nil {
		t.Fatal(err)
	}
	ratio := ContrastRatio(fg, bg)
	if math.Abs(ratio-12.63) > 0.05 {
		t.Errorf("ContrastRatio(#333, #FFF) = %.4f, want ~12.63", ratio)
	}
}

func TestContrastRatioBounds(t *testing.T) {
	white, _ := Parse("#ffffff")
	black, _ := Parse("#000000")
	if r := ContrastRatio(white, black); math.Abs(r-21) > 0.01 {
		t.Errorf("white/black ratio = %.4f, want 21", r)
	}
	if r := ContrastRatio(white, white); math.Abs(r-1) > 0.0001 {
		t.Errorf("white/white ratio = %.4f, want 1", r)
	}
	// Order of arguments must not matter.
	if a, b := ContrastRatio(white, black), ContrastRatio(black, white); a != b {
		t.Errorf("ratio is asymmetric: %.4f vs %.4f", a, b)
	}
}
