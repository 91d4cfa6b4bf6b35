package ddplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// AesMapping holds fixed aesthetics as strings, e.g.
//     "color": "gray"
//     "size":  "2"
// Values are resolved to concrete gonum/plot styles at render time.
type AesMapping map[string]string

// MergeStyles combines the given mappings into one. Earlier mappings
// win; later ones only fill gaps. Empty values are ignored.
func MergeStyles(ams ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for _, am := range ams {
		for aes, val := range am {
			if val == "" {
				continue
			}
			if _, ok := merged[aes]; !ok {
				merged[aes] = val
			}
		}
	}
	return merged
}

func String2Float(s string, low, high float64) float64 {
	value, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return (low + high) / 2
	}
	if strings.HasSuffix(s, "%") {
		value /= 100
	}

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha sets the alpha of c to a. TODO: handle case if c has alpha.
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8
	a *= float64(0xff)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// -------------------------------------------------------------------------
// Points

func String2PointShape(s string) draw.GlyphDrawer {
	switch s {
	case "circle":
		return draw.CircleGlyph{}
	case "ring":
		return draw.RingGlyph{}
	case "square":
		return draw.BoxGlyph{}
	case "square-ring":
		return draw.SquareGlyph{}
	case "triangle":
		return draw.PyramidGlyph{}
	case "triangle-ring":
		return draw.TriangleGlyph{}
	case "cross":
		return draw.CrossGlyph{}
	case "plus":
		return draw.PlusGlyph{}
	}
	return draw.CircleGlyph{}
}

func String2PointSize(s string) vg.Length {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return vg.Points(2)
	}
	return vg.Points(n)
}

// -------------------------------------------------------------------------
// Lines

func String2LineWidth(s string) vg.Length {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return vg.Points(1)
	}
	return vg.Points(n)
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// -------------------------------------------------------------------------
// Style resolution

func glyphStyle(style AesMapping) draw.GlyphStyle {
	c := String2Color(style["color"])
	if a, ok := style["alpha"]; ok {
		c = SetAlpha(c, String2Float(a, 0, 1))
	}
	return draw.GlyphStyle{
		Color:  c,
		Radius: String2PointSize(style["size"]),
		Shape:  String2PointShape(style["shape"]),
	}
}

func lineStyle(style AesMapping) draw.LineStyle {
	c := String2Color(style["color"])
	if a, ok := style["alpha"]; ok {
		c = SetAlpha(c, String2Float(a, 0, 1))
	}
	return draw.LineStyle{
		Color: c,
		Width: String2LineWidth(style["size"]),
	}
}
