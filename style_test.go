package ddplot

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func TestString2Color(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"gray", color.NRGBA{0x7f, 0x7f, 0x7f, 0xff}},
		{"gray20", color.NRGBA{0x33, 0x33, 0x33, 0xff}},
		{"nonsens", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
	}

	for i, tc := range tests {
		got := String2Color(tc.s)
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}
}

func TestString2PointShape(t *testing.T) {
	tests := []struct {
		s     string
		shape draw.GlyphDrawer
	}{
		{"circle", draw.CircleGlyph{}},
		{"ring", draw.RingGlyph{}},
		{"square", draw.BoxGlyph{}},
		{"cross", draw.CrossGlyph{}},
		{"nonsens", draw.CircleGlyph{}},
	}

	for i, tc := range tests {
		if got := String2PointShape(tc.s); got != tc.shape {
			t.Errorf("%d %q: got %T want %T", i, tc.s, got, tc.shape)
		}
	}
}

func TestString2Sizes(t *testing.T) {
	if got := String2PointSize("4"); got != vg.Points(4) {
		t.Errorf("size 4: got %v", got)
	}
	if got := String2PointSize("nonsens"); got != vg.Points(2) {
		t.Errorf("bad size: got %v", got)
	}
	if got := String2LineWidth("0.35"); got != vg.Points(0.35) {
		t.Errorf("width 0.35: got %v", got)
	}
	if got := String2LineWidth(""); got != vg.Points(1) {
		t.Errorf("bad width: got %v", got)
	}
}

func TestMergeStyles(t *testing.T) {
	merged := MergeStyles(
		AesMapping{"color": "red", "size": ""},
		AesMapping{"color": "blue", "size": "3", "alpha": "1"},
	)

	want := AesMapping{"color": "red", "size": "3", "alpha": "1"}
	if len(merged) != len(want) {
		t.Fatalf("got %v want %v", merged, want)
	}
	for k, v := range want {
		if merged[k] != v {
			t.Errorf("%s: got %q want %q", k, merged[k], v)
		}
	}
}

func TestString2Float(t *testing.T) {
	tests := []struct {
		s         string
		low, high float64
		want      float64
	}{
		{"0.5", 0, 1, 0.5},
		{"75%", 0, 1, 0.75},
		{"7", 0, 1, 1},
		{"-1", 0, 1, 0},
		{"nonsens", 0, 1, 0.5},
	}

	for i, tc := range tests {
		if got := String2Float(tc.s, tc.low, tc.high); got != tc.want {
			t.Errorf("%d %q: got %g want %g", i, tc.s, got, tc.want)
		}
	}
}
