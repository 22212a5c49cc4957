// Package sheets fetches a spreadsheet values range over HTTP and validates
// the response shape before handing a grid to the typing pipeline.
package sheets

import (
	"fmt"

	"github.com/chartloom/chartloom/grid"
)

// ValuesResponse mirrors the JSON body of a values API read. A successful
// read carries Values; a failed one carries Error.
type ValuesResponse struct {
	Range          string     `json:"range,omitempty"`
	MajorDimension string     `json:"majorDimension,omitempty"`
	Values         [][]any    `json:"values,omitempty"`
	Error          *APIStatus `json:"error,omitempty"`
}

// APIStatus is the error object a values API returns on failure.
type APIStatus struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}

// UpstreamResponseError reports a structurally unusable API response: absent,
// carrying an error field, or missing a non-empty values sequence.
type UpstreamResponseError struct {
	Reason string
}

func (e *UpstreamResponseError) Error() string {
	return fmt.Sprintf("upstream response: %s", e.Reason)
}

// Grid validates the response shape and converts its values into a grid.
// Strings map to text cells, JSON numbers to numeric cells, nulls to empty
// cells, and any other scalar to its default text rendering.
func (r *ValuesResponse) Grid() (grid.Grid, error) {
	if r == nil {
		return nil, &UpstreamResponseError{Reason: "missing response"}
	}
	if r.Error != nil {
		reason := r.Error.Message
		if reason == "" {
			reason = fmt.Sprintf("api error status %d", r.Error.Code)
		}
		return nil, &UpstreamResponseError{Reason: reason}
	}
	if r.Values == nil {
		return nil, &UpstreamResponseError{Reason: "missing values"}
	}
	if len(r.Values) == 0 {
		return nil, &UpstreamResponseError{Reason: "empty values"}
	}
	g := make(grid.Grid, len(r.Values))
	for i, row := range r.Values {
		cells := make([]grid.Value, len(row))
		for j, cell := range row {
			cells[j] = cellValue(cell)
		}
		g[i] = cells
	}
	return g, nil
}

func cellValue(cell any) grid.Value {
	switch v := cell.(type) {
	case nil:
		return grid.Empty()
	case string:
		return grid.Text(v)
	case float64:
		return grid.Number(v)
	case bool:
		if v {
			return grid.Text("true")
		}
		return grid.Text("false")
	default:
		return grid.Text(fmt.Sprint(v))
	}
}
