package engo

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

var (
	colorDart    = color.RGBA{245, 245, 245, 255}
	colorBand    = color.RGBA{255, 209, 102, 255}
	colorFloor   = color.RGBA{90, 96, 120, 255}
	colorText    = color.RGBA{230, 230, 230, 255}
	colorToast   = color.RGBA{6, 214, 160, 255}
	colorBoardBG = color.RGBA{28, 30, 44, 255}
	colorHighlit = color.RGBA{255, 255, 255, 255}

	fallbackBoardColors = []color.RGBA{
		{0, 212, 255, 255},
		{255, 107, 157, 255},
		{255, 209, 102, 255},
		{131, 56, 236, 255},
	}
)

// parseHexColor reads "#rrggbb" or "#rgb"
func parseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

// boardColor picks the configured color of the i-th board, or a palette entry
func boardColor(hex string, i int) color.RGBA {
	if c, ok := parseHexColor(hex); ok {
		return c
	}
	return fallbackBoardColors[i%len(fallbackBoardColors)]
}

// withAlpha returns c at opacity, clamped to [0,1]
func withAlpha(c color.RGBA, opacity float64) color.NRGBA {
	a := math.Max(0, math.Min(1, opacity))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(255 * a))}
}
