package render

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/samuelfneumann/ips/rules"
)

// ErrRecordNotDivisible is returned when a record's length is not an
// exact multiple of the graph's vertex count.
var ErrRecordNotDivisible = fmt.Errorf("render: record length is not a multiple of the vertex count")

// GrowthImage renders record (a flattened sequence of N-wide snapshots,
// as produced by solver.Result.Record) as a single PNG: one column per
// vertex, one row per recorded snapshot, oldest snapshot on top. Best
// suited to 1-D graphs (lines and cycles).
//
// The per-pixel Fill loop uses the same path-then-Fill idiom as other
// gg-based rendering in this codebase, generalized from vector shapes to
// single-pixel rectangles.
func GrowthImage(record []rules.State, n int, r rules.RuleSet, path string) error {
	if n <= 0 || len(record)%n != 0 {
		return fmt.Errorf("%w: len(record)=%d, n=%d", ErrRecordNotDivisible, len(record), n)
	}
	frames := len(record) / n
	pal := ForRuleSet(r)

	dc := gg.NewContext(n, frames)
	for row := 0; row < frames; row++ {
		for col := 0; col < n; col++ {
			state := record[row*n+col]
			dc.SetColor(pal.Color(state))
			dc.DrawRectangle(float64(col), float64(row), 1, 1)
			dc.Fill()
		}
	}

	return dc.SavePNG(path)
}
