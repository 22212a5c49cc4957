// Package analysis assigns semantic column types to ingested records and
// coerces cell values to match. Typing is sample-based: a prefix of the
// record sequence is inspected once per column and the result applied to
// every row.
package analysis

import "github.com/chartloom/chartloom/grid"

// sampleSize caps how many leading records feed classification. A prefix,
// not a random sample, so the result is deterministic.
const sampleSize = 20

// Threshold ratios for the classification rules.
const (
	strongRatio = 0.7
	weakRatio   = 0.3
)

// ColumnKind is a column's semantic type.
type ColumnKind string

const (
	ColumnNumeric     ColumnKind = "numeric"
	ColumnCategorical ColumnKind = "categorical"
	ColumnDate        ColumnKind = "date"
	ColumnMixed       ColumnKind = "mixed"
)

// Classification partitions header names by column kind. Every header of the
// classified records appears in exactly one list; list order follows header
// order.
type Classification struct {
	Numeric     []string
	Categorical []string
	Date        []string
	Mixed       []string
}

// KindOf returns the kind assigned to header, or "" if the header was not
// classified.
func (c Classification) KindOf(header string) ColumnKind {
	for _, h := range c.Numeric {
		if h == header {
			return ColumnNumeric
		}
	}
	for _, h := range c.Categorical {
		if h == header {
			return ColumnCategorical
		}
	}
	for _, h := range c.Date {
		if h == header {
			return ColumnDate
		}
	}
	for _, h := range c.Mixed {
		if h == header {
			return ColumnMixed
		}
	}
	return ""
}

// Classify samples the first min(20, n) records and assigns each header of
// the first record exactly one kind. Rule order is significant and first
// match wins: a strong date majority beats a strong numeric one, and any
// middling numeric or date presence lands on mixed before falling back to
// categorical. Blank cells never count toward a ratio; a column with only
// blanks in the sample is mixed.
func Classify(records []*grid.Record) Classification {
	var c Classification
	if len(records) == 0 {
		return c
	}
	n := len(records)
	if n > sampleSize {
		n = sampleSize
	}
	sample := records[:n]

	for _, header := range records[0].Keys() {
		var vals []grid.Value
		for _, rec := range sample {
			v, ok := rec.Get(header)
			if !ok || v.IsBlank() {
				continue
			}
			vals = append(vals, v)
		}
		if len(vals) == 0 {
			c.Mixed = append(c.Mixed, header)
			continue
		}

		var dateCount, numericCount int
		for _, v := range vals {
			if _, ok := v.Number(); ok {
				numericCount++
				continue
			}
			s := v.Text()
			_, isNum := parseNumber(s)
			if isNum {
				numericCount++
			}
			// Plain numeric text is excluded from date counting so
			// numeric IDs don't classify as dates.
			if _, ok := parseDate(s); ok && !isNum {
				dateCount++
			}
		}
		dateRatio := float64(dateCount) / float64(len(vals))
		numericRatio := float64(numericCount) / float64(len(vals))

		switch {
		case dateRatio > strongRatio:
			c.Date = append(c.Date, header)
		case numericRatio > strongRatio:
			c.Numeric = append(c.Numeric, header)
		case numericRatio > weakRatio || dateRatio > weakRatio:
			c.Mixed = append(c.Mixed, header)
		default:
			c.Categorical = append(c.Categorical, header)
		}
	}
	return c
}
