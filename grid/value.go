package grid

import "strconv"

// Kind discriminates the scalar shapes a cell can carry. Upstream JSON cells
// arrive as strings or numbers; absent cells are empty.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
)

// Value is a tagged cell scalar.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Empty returns the absent-cell value.
func Empty() Value { return Value{} }

// Text wraps a text cell.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Number wraps a numeric cell.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

func (v Value) Kind() Kind { return v.kind }

// Text returns the text content for KindText values and "" otherwise.
func (v Value) Text() string {
	if v.kind == KindText {
		return v.str
	}
	return ""
}

// Number returns the numeric content and whether the value is numeric.
func (v Value) Number() (float64, bool) {
	if v.kind == KindNumber {
		return v.num, true
	}
	return 0, false
}

// IsBlank reports whether the cell is absent or empty text.
func (v Value) IsBlank() bool {
	return v.kind == KindEmpty || (v.kind == KindText && v.str == "")
}

// String renders the value as display text. Numbers use the shortest
// round-tripping decimal form.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return ""
	}
}
