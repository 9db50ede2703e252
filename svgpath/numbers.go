package svgpath

import (
	"strconv"
	"strings"
)

// ParseNumber parses a floating point value, tolerating a "px" unit
// suffix, which many tools emit in coordinate attributes.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseNumberList parses a list of numbers separated by commas or
// whitespace, as used by the "points", "viewBox" and transform
// attributes.
func ParseNumberList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	points := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		points = append(points, v)
	}
	return points, nil
}
