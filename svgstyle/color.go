package svgstyle

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses an SVG color value: #rgb, #rrggbb,
// rgb(r, g, b) with numeric or percentage components, or one of the
// css named colors.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return color.NRGBA{}, fmt.Errorf("empty color")
	case s[0] == '#':
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBColor(s[4 : len(s)-1])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(hex string) (color.NRGBA, error) {
	switch len(hex) {
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color #%s", hex)
		}
		r, g, b := uint8(v>>8), uint8(v>>4&0xf), uint8(v&0xf)
		return color.NRGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, nil
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color #%s", hex)
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid color #%s", hex)
}

func parseRGBColor(args string) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return color.NRGBA{}, fmt.Errorf("invalid rgb() color %q", args)
	}
	var out [3]uint8
	for i, part := range parts {
		part = strings.TrimSpace(part)
		var v float64
		var err error
		if strings.HasSuffix(part, "%") {
			v, err = strconv.ParseFloat(strings.TrimSuffix(part, "%"), 64)
			v = v * 255 / 100
		} else {
			v, err = strconv.ParseFloat(part, 64)
		}
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid rgb() component %q", part)
		}
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		out[i] = uint8(v + 0.5)
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: 0xff}, nil
}
