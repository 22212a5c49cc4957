package grid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Grid is a raw header-plus-rows table. Row 0 is the header; remaining rows
// are data. Rows may be shorter than the header.
type Grid [][]Value

// InsufficientDataError reports a grid too small to chart: no header row, or
// a header with no data rows.
type InsufficientDataError struct {
	Rows int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need a header row and at least one data row, got %d rows", e.Rows)
}

// Ingest splits a grid into header and data rows and returns one Record per
// retained data row, in original order. Rows whose cells are all blank are
// dropped; rows shorter than the header are padded with empty text. No type
// validation happens here.
func Ingest(g Grid) ([]*Record, error) {
	if len(g) < 2 {
		return nil, &InsufficientDataError{Rows: len(g)}
	}
	header := g[0]
	records := make([]*Record, 0, len(g)-1)
	for _, row := range g[1:] {
		if blankRow(row) {
			continue
		}
		rec := NewRecord(len(header))
		for i, h := range header {
			v := Text("")
			if i < len(row) {
				v = row[i]
			}
			rec.Set(h.String(), v)
		}
		records = append(records, rec)
	}
	return records, nil
}

func blankRow(row []Value) bool {
	for _, v := range row {
		if !v.IsBlank() {
			return false
		}
	}
	return true
}

// ReadCSV parses CSV text from r into a Grid. delim selects the field
// delimiter; 0 means comma. Ragged rows are accepted and handled by Ingest.
func ReadCSV(r io.Reader, delim rune) (Grid, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if delim != 0 {
		cr.Comma = delim
	}
	var g Grid
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(g)+1, err)
		}
		row := make([]Value, len(rec))
		for i, cell := range rec {
			row[i] = Text(cell)
		}
		g = append(g, row)
	}
	return g, nil
}
