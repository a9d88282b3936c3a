// Package colormath parses CSS color notations and computes the WCAG
// relative-luminance contrast ratio between two colors.
package colormath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// named covers the CSS basic color keywords plus a few common extensions.
var named = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"orange":  "#ffa500",
}

// Parse converts a color string in hex, rgb()/rgba(), hsl()/hsla(), or named
// notation into a color value. Alpha components are accepted and ignored.
func Parse(s string) (colorful.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return colorful.Color{}, fmt.Errorf("empty color")
	}
	if hex, ok := named[v]; ok {
		v = hex
	}
	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(v)
	case strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba("):
		return parseRGB(v)
	case strings.HasPrefix(v, "hsl(") || strings.HasPrefix(v, "hsla("):
		return parseHSL(v)
	}
	return colorful.Color{}, fmt.Errorf("unrecognized color notation %q", s)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, a value
// in [1, 21] with the lighter color's luminance in the numerator.
func ContrastRatio(a, b colorful.Color) float64 {
	la := relativeLuminance(a)
	lb := relativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// relativeLuminance implements the WCAG luminance formula over linearized
// sRGB channels.
func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func parseHex(v string) (colorful.Color, error) {
	digits := v[1:]
	switch len(digits) {
	case 3:
		// Expand #abc to #aabbcc; go-colorful only takes the long form.
		var sb strings.Builder
		for _, r := range digits {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		digits = sb.String()
	case 4:
		var sb strings.Builder
		for _, r := range digits[:3] {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		digits = sb.String()
	case 6:
	case 8:
		digits = digits[:6]
	default:
		return colorful.Color{}, fmt.Errorf("invalid hex color %q", v)
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q", v)
	}
	return c, nil
}

func parseRGB(v string) (colorful.Color, error) {
	parts, err := funcArgs(v)
	if err != nil || len(parts) < 3 {
		return colorful.Color{}, fmt.Errorf("invalid rgb color %q", v)
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		ch[i], err = channelValue(parts[i], 255)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid rgb color %q: %w", v, err)
		}
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func parseHSL(v string) (colorful.Color, error) {
	parts, err := funcArgs(v)
	if err != nil || len(parts) < 3 {
		return colorful.Color{}, fmt.Errorf("invalid hsl color %q", v)
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(parts[0], "deg"), 64)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hsl hue %q", parts[0])
	}
	s, err := percentValue(parts[1])
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hsl saturation %q", parts[1])
	}
	l, err := percentValue(parts[2])
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hsl lightness %q", parts[2])
	}
	h = math.Mod(math.Mod(h, 360)+360, 360)
	return colorful.Hsl(h, s, l), nil
}

// funcArgs splits "fn(a, b, c)" into its comma- or space-separated argument
// list, tolerating the slash alpha syntax.
func funcArgs(v string) ([]string, error) {
	open := strings.IndexByte(v, '(')
	close := strings.LastIndexByte(v, ')')
	if open < 0 || close < open {
		return nil, fmt.Errorf("malformed function notation")
	}
	inner := v[open+1 : close]
	inner = strings.ReplaceAll(inner, "/", " ")
	inner = strings.ReplaceAll(inner, ",", " ")
	return strings.Fields(inner), nil
}

// channelValue parses a numeric or percent channel and normalizes to [0,1].
func channelValue(s string, scale float64) (float64, error) {
	if strings.HasSuffix(s, "%") {
		return percentValue(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clamp01(f / scale), nil
}

func percentValue(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	return clamp01(f / 100), nil
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
