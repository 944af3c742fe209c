package uik

import (
	"image/color"
	"math"
	"testing"
)

func TestRGBAColor(t *testing.T) {
	tests := []struct {
		name       string
		in         RGBA
		r, g, b, a uint8
	}{
		{"white", White, 255, 255, 255, 255},
		{"black", Black, 0, 0, 0, 255},
		{"mid gray", RGB(0.5, 0.5, 0.5), 128, 128, 128, 255},
		{"steel blue", RGB(0.3, 0.5, 0.8), 77, 128, 204, 255},
		{"clamped high", RGBA{R: 1.5, G: 2, B: 1, A: 1}, 255, 255, 255, 255},
		{"clamped low", RGBA{R: -0.5, G: 0, B: 0, A: 1}, 0, 0, 0, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.in.Bytes()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("Bytes() = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
			n, ok := tt.in.Color().(color.NRGBA)
			if !ok {
				t.Fatalf("Color() returned %T, want color.NRGBA", tt.in.Color())
			}
			if n.R != tt.r || n.G != tt.g || n.B != tt.b || n.A != tt.a {
				t.Errorf("Color() = %v, want (%d,%d,%d,%d)", n, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestAnimatedColorAtZero(t *testing.T) {
	c := AnimatedColor(0)

	// sin(0)*0.5+0.5 = 0.5; sin(2)*0.5+0.5 ≈ 0.9546; sin(4)*0.5+0.5 ≈ 0.1216.
	r, g, b, a := c.Bytes()
	if r != 128 || g != 243 || b != 31 {
		t.Errorf("AnimatedColor(0) bytes = (%d,%d,%d), want (128,243,31)", r, g, b)
	}
	if a != 255 {
		t.Errorf("AnimatedColor(0) alpha = %d, want 255", a)
	}
}

func TestAnimatedColorRange(t *testing.T) {
	for _, tm := range []float64{0, 0.5, 1, math.Pi, 10, 123.456} {
		c := AnimatedColor(tm)
		for i, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Errorf("AnimatedColor(%v) channel %d = %v, out of [0,1]", tm, i, v)
			}
		}
		if c.A != 1 {
			t.Errorf("AnimatedColor(%v) alpha = %v, want 1", tm, c.A)
		}
	}
}

func TestAnimatedColorPeriodic(t *testing.T) {
	period := 2 * math.Pi
	a := AnimatedColor(1.5)
	b := AnimatedColor(1.5 + period)

	const eps = 1e-9
	if math.Abs(a.R-b.R) > eps || math.Abs(a.G-b.G) > eps || math.Abs(a.B-b.B) > eps {
		t.Errorf("AnimatedColor not periodic: %v vs %v", a, b)
	}
}
