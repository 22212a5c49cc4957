package analysis

import (
	"math"

	"github.com/chartloom/chartloom/grid"
)

// Coercer converts record values to the types a Classification dictates. It
// is total: unparseable cells degrade to a safe default instead of failing,
// so one bad cell can never abort a dataset.
type Coercer struct {
	kinds map[string]ColumnKind
}

// NewCoercer builds a coercer from a classification.
func NewCoercer(c Classification) *Coercer {
	kinds := make(map[string]ColumnKind, len(c.Numeric)+len(c.Categorical)+len(c.Date)+len(c.Mixed))
	for _, h := range c.Numeric {
		kinds[h] = ColumnNumeric
	}
	for _, h := range c.Categorical {
		kinds[h] = ColumnCategorical
	}
	for _, h := range c.Date {
		kinds[h] = ColumnDate
	}
	for _, h := range c.Mixed {
		kinds[h] = ColumnMixed
	}
	return &Coercer{kinds: kinds}
}

// Record returns a new record with every value coerced to its column's kind.
// The input record is not modified. Coercion is idempotent: a second pass
// over an already-coerced record changes nothing.
func (co *Coercer) Record(rec *grid.Record) *grid.Record {
	out := grid.NewRecord(rec.Len())
	for _, f := range rec.Fields() {
		out.Set(f.Key, co.value(co.kinds[f.Key], f.Value))
	}
	return out
}

// Records coerces a record sequence, preserving order.
func (co *Coercer) Records(recs []*grid.Record) []*grid.Record {
	out := make([]*grid.Record, len(recs))
	for i, rec := range recs {
		out[i] = co.Record(rec)
	}
	return out
}

func (co *Coercer) value(kind ColumnKind, v grid.Value) grid.Value {
	switch kind {
	case ColumnNumeric:
		if f, ok := v.Number(); ok {
			// Non-finite cells take the same safe default as a
			// failed parse.
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return grid.Number(0)
			}
			return v
		}
		if f, ok := parseNumber(v.Text()); ok {
			return grid.Number(f)
		}
		return grid.Number(0)
	case ColumnDate:
		if v.Kind() != grid.KindText {
			return v
		}
		if t, ok := parseDate(v.Text()); ok {
			return grid.Text(t.Format(dateDisplayLayout))
		}
		return v
	case ColumnCategorical, ColumnMixed:
		if v.IsBlank() {
			return grid.Text("")
		}
		return grid.Text(v.String())
	default:
		// Unknown header; leave the value alone.
		return v
	}
}
