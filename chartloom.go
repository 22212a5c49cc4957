// Package chartloom turns a raw header-plus-rows grid into chart-ready typed
// records, a per-column type classification, and a recommended chart kind.
//
// The pipeline is Ingest → Classify → Coerce → Recommend. Structural problems
// (too few rows, unusable API response) fail the whole operation; cell-level
// noise never does — malformed values degrade to safe defaults so one bad
// cell cannot abort a dataset.
package chartloom

import (
	"github.com/google/uuid"

	"github.com/chartloom/chartloom/analysis"
	"github.com/chartloom/chartloom/chart"
	"github.com/chartloom/chartloom/grid"
	"github.com/chartloom/chartloom/sheets"
)

// Dataset is one prepared chart dataset. Records hold coerced values in
// original row order; Classification is computed once from a sample and never
// re-evaluated. ID keys the dataset for downstream renderers.
type Dataset struct {
	ID             uuid.UUID
	Records        []*grid.Record
	Classification analysis.Classification
	Chart          chart.Kind
}

// Prepare runs the full typing pipeline over a raw grid.
func Prepare(g grid.Grid) (*Dataset, error) {
	records, err := grid.Ingest(g)
	if err != nil {
		return nil, err
	}
	cls := analysis.Classify(records)
	return &Dataset{
		ID:             uuid.New(),
		Records:        analysis.NewCoercer(cls).Records(records),
		Classification: cls,
		Chart:          chart.Recommend(cls),
	}, nil
}

// PrepareValues validates a values API response and runs Prepare on its grid.
func PrepareValues(resp *sheets.ValuesResponse) (*Dataset, error) {
	g, err := resp.Grid()
	if err != nil {
		return nil, err
	}
	return Prepare(g)
}
