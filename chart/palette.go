package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultBaseColor seeds hue generation when no base color is given.
const DefaultBaseColor = "#8884d8"

// goldenAngle spreads generated hues; consecutive steps of 137.5° maximize
// perceptual distance between neighbors.
const goldenAngle = 137.5

// basePalette is the fixed, ordered set of curated series colors. Requests
// beyond its length are extended generatively.
var basePalette = []string{
	"#8884d8", "#82ca9d", "#ffc658", "#ff8042", "#0088fe",
	"#00c49f", "#ffbb28", "#a4de6c", "#d0ed57", "#8dd1e1",
	"#83a6ed", "#b085f5", "#f48fb1", "#e57373", "#4db6ac",
}

// Palette returns count ordered series colors seeded from DefaultBaseColor.
func Palette(count int) []string {
	return PaletteFrom(count, DefaultBaseColor)
}

// PaletteFrom returns count ordered series colors. The first len(basePalette)
// entries come verbatim from the curated palette; beyond that, hues rotate by
// the golden angle from the base color's hex digits read as a plain integer
// (not a colorimetric hue) and render as hsl() literals. Deterministic for a
// given count and base.
func PaletteFrom(count int, base string) []string {
	if count <= 0 {
		return []string{}
	}
	if count <= len(basePalette) {
		out := make([]string, count)
		copy(out, basePalette[:count])
		return out
	}
	out := make([]string, 0, count)
	out = append(out, basePalette...)
	baseHue := hexSeed(base)
	for i := 0; i < count-len(basePalette); i++ {
		hue := math.Mod(baseHue+goldenAngle*float64(i), 360)
		out = append(out, fmt.Sprintf("hsl(%s, 70%%, 60%%)", strconv.FormatFloat(hue, 'f', -1, 64)))
	}
	return out
}

func hexSeed(color string) float64 {
	s := strings.TrimPrefix(strings.TrimSpace(color), "#")
	n, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		n, _ = strconv.ParseInt(strings.TrimPrefix(DefaultBaseColor, "#"), 16, 64)
	}
	return float64(n)
}
