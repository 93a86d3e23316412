// Package render turns a solver record into visual output: a single PNG
// "growth image" (one row per recorded snapshot, one column per vertex)
// for 1-D graphs, or an animated GIF (one frame per recorded snapshot)
// for 2-D graphs. The PNG path draws with gg.NewContext/SetColor/Fill/
// SavePNG; the GIF path builds each frame with image/gif plus
// golang.org/x/image/draw for color-to-palette drawing.
package render

import (
	"image/color"
	"math"

	"github.com/samuelfneumann/ips/rules"
)

// Palette maps a rule set's states to display colors.
type Palette interface {
	// Color returns the display color for state.
	Color(state rules.State) color.Color
	// Colors returns the full color.Palette, ordered the same as the
	// owning RuleSet's States().
	Colors() color.Palette
}

type staticPalette struct {
	byState map[rules.State]color.Color
	colors  color.Palette
}

func (p staticPalette) Color(s rules.State) color.Color {
	if c, ok := p.byState[s]; ok {
		return c
	}
	return color.Black
}

func (p staticPalette) Colors() color.Palette { return p.colors }

func newStatic(colors map[rules.State]color.RGBA, order []rules.State) staticPalette {
	pal := make(color.Palette, 0, len(order))
	byState := make(map[rules.State]color.Color, len(order))
	for _, s := range order {
		c := colors[s]
		pal = append(pal, c)
		byState[s] = c
	}
	return staticPalette{byState: byState, colors: pal}
}

// siColors: 0 susceptible (black), 1 infected (red).
var siColors = map[rules.State]color.RGBA{
	0: {R: 0, G: 0, B: 0, A: 255},
	1: {R: 211, G: 47, B: 47, A: 255},
}

// sirColors: 0 susceptible (black), 1 infected (red), 2 removed (gray).
var sirColors = map[rules.State]color.RGBA{
	0: {R: 0, G: 0, B: 0, A: 255},
	1: {R: 180, G: 12, B: 13, A: 255},
	2: {R: 97, G: 97, B: 97, A: 255},
}

// twoSIColors: 0 neutral (black), 1 first species (red), 2 second
// species (green).
var twoSIColors = map[rules.State]color.RGBA{
	0: {R: 0, G: 0, B: 0, A: 255},
	1: {R: 180, G: 12, B: 13, A: 255},
	2: {R: 16, G: 128, B: 16, A: 255},
}

// voterTableau is matplotlib's "tableau" palette, used for Voter(K)
// with K <= 10 parties.
var voterTableau = []color.RGBA{
	{R: 4, G: 88, B: 147, A: 255},    // blue
	{R: 219, G: 97, B: 0, A: 255},    // orange
	{R: 16, G: 128, B: 16, A: 255},   // green
	{R: 180, G: 12, B: 13, A: 255},   // red
	{R: 116, G: 74, B: 156, A: 255},  // purple
	{R: 109, G: 57, B: 46, A: 255},   // brown
	{R: 193, G: 88, B: 160, A: 255},  // pink
	{R: 97, G: 97, B: 97, A: 255},    // gray
	{R: 154, G: 156, B: 7, A: 255},   // olive
	{R: 0, G: 157, B: 174, A: 255},   // cyan
}

// ForRuleSet returns the Palette matching r's concrete type. Custom rule
// sets that are not one of the four canonical families fall back to a
// grayscale ramp over their state count, the same fallback Voter(K) uses
// for K > 10.
func ForRuleSet(r rules.RuleSet) Palette {
	switch rs := r.(type) {
	case rules.SI:
		return newStatic(siColors, rs.States())
	case rules.SIR:
		return newStatic(sirColors, rs.States())
	case rules.TwoSI:
		return newStatic(twoSIColors, rs.States())
	case rules.Voter:
		return voterPalette(rs)
	default:
		return grayscalePalette(r.States())
	}
}

func voterPalette(v rules.Voter) Palette {
	states := v.States()
	if len(states) <= 10 {
		colors := make(map[rules.State]color.RGBA, len(states))
		for i, s := range states {
			colors[s] = voterTableau[i]
		}
		return newStatic(colors, states)
	}
	return grayscalePalette(states)
}

// grayscalePalette assigns brightness = floor(255 * i / len(states)) to
// the i-th state, the fallback used for party counts beyond the 10-color
// tableau.
func grayscalePalette(states []rules.State) Palette {
	colors := make(map[rules.State]color.RGBA, len(states))
	for i, s := range states {
		b := uint8(math.Floor(255 * float64(i) / float64(len(states))))
		colors[s] = color.RGBA{R: b, G: b, B: b, A: 255}
	}
	return newStatic(colors, states)
}
