// Package chart holds the presentation-side helpers of the pipeline: a chart
// kind advisor over column classifications, a deterministic palette, and a
// number formatter.
package chart

import "github.com/chartloom/chartloom/analysis"

// Kind is a recommended visualization family.
type Kind string

const (
	Line    Kind = "line"
	Pie     Kind = "pie"
	Bar     Kind = "bar"
	Scatter Kind = "scatter"
)

// Recommend picks a chart kind from a column classification. The rule chain
// is ordered and first match wins: a time axis with any measure charts as a
// line; one label column against one measure is a pie; labels against several
// measures are grouped bars; measures alone scatter; anything else falls back
// to bars. Total over all inputs.
func Recommend(c analysis.Classification) Kind {
	switch {
	case len(c.Date) > 0 && len(c.Numeric) > 0:
		return Line
	case len(c.Categorical) == 1 && len(c.Numeric) == 1:
		return Pie
	case len(c.Categorical) > 0 && len(c.Numeric) > 1:
		return Bar
	case len(c.Numeric) >= 2:
		return Scatter
	default:
		return Bar
	}
}
