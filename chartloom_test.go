package chartloom

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/chartloom/chartloom/chart"
	"github.com/chartloom/chartloom/grid"
	"github.com/chartloom/chartloom/sheets"
)

func TestPrepareEndToEnd(t *testing.T) {
	g := grid.Grid{
		{grid.Text("Date"), grid.Text("Revenue"), grid.Text("Region")},
		{grid.Text("2021-01-01"), grid.Text("100"), grid.Text("EMEA")},
		{grid.Text("2021-02-01"), grid.Text("120.5"), grid.Text("APAC")},
		{grid.Text(""), grid.Text(""), grid.Text("")},
		{grid.Text("2021-03-01"), grid.Text("110"), grid.Text("AMER")},
		{grid.Text("2021-04-01"), grid.Text("bad"), grid.Text("AMER")},
	}
	ds, err := Prepare(g)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if ds.ID == uuid.Nil {
		t.Fatalf("dataset id is nil")
	}
	if len(ds.Records) != 4 {
		t.Fatalf("records = %d, want 4 (blank row dropped)", len(ds.Records))
	}
	if ds.Chart != chart.Line {
		t.Fatalf("chart = %q, want line", ds.Chart)
	}
	if len(ds.Classification.Date) != 1 || ds.Classification.Date[0] != "Date" {
		t.Fatalf("date classification = %#v", ds.Classification.Date)
	}
	if len(ds.Classification.Numeric) != 1 || ds.Classification.Numeric[0] != "Revenue" {
		t.Fatalf("numeric classification = %#v", ds.Classification.Numeric)
	}

	d, _ := ds.Records[0].Get("Date")
	if d.Text() != "1/1/2021" {
		t.Fatalf("date display = %q", d.Text())
	}
	rev, _ := ds.Records[1].Get("Revenue")
	if f, ok := rev.Number(); !ok || f != 120.5 {
		t.Fatalf("revenue = %#v", rev)
	}
	// One bad cell degrades to 0 without failing the dataset.
	bad, _ := ds.Records[3].Get("Revenue")
	if f, ok := bad.Number(); !ok || f != 0 {
		t.Fatalf("bad cell = %#v, want 0", bad)
	}
}

func TestPrepareInsufficientData(t *testing.T) {
	_, err := Prepare(grid.Grid{{grid.Text("Header")}})
	var ide *grid.InsufficientDataError
	if !errors.As(err, &ide) {
		t.Fatalf("err = %v, want InsufficientDataError", err)
	}
}

func TestPrepareValues(t *testing.T) {
	resp := &sheets.ValuesResponse{Values: [][]any{
		{"Region", "Revenue"},
		{"EMEA", float64(10)},
		{"APAC", float64(20)},
	}}
	ds, err := PrepareValues(resp)
	if err != nil {
		t.Fatalf("PrepareValues: %v", err)
	}
	if ds.Chart != chart.Pie {
		t.Fatalf("chart = %q, want pie", ds.Chart)
	}
}

func TestPrepareValuesUpstreamError(t *testing.T) {
	_, err := PrepareValues(nil)
	var ue *sheets.UpstreamResponseError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UpstreamResponseError", err)
	}
	_, err = PrepareValues(&sheets.ValuesResponse{Error: &sheets.APIStatus{Message: "quota exceeded"}})
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UpstreamResponseError", err)
	}
}
