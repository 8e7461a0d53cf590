package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/secularlab/secular/internal/orbit"
	"github.com/secularlab/secular/internal/secular"
)

func testTrajectory(t *testing.T) (*secular.Solution, *secular.Trajectory) {
	t.Helper()
	bodies := []orbit.Body{
		{Name: "inner", Mass: 3e-6, A: 1.0, Ecc: 0.02},
		{Name: "outer", Mass: 3e-6, A: 1.31, Ecc: 0.04, Peri: 1.0},
	}
	sol, err := secular.New(1.0, bodies)
	if err != nil {
		t.Fatal(err)
	}
	return sol, sol.Evaluate([]float64{0, 1000, 2000})
}

func TestWriteJSON(t *testing.T) {
	sol, traj := testTrajectory(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, "pair", sol, traj); err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if data.System != "pair" {
		t.Errorf("system %q, want pair", data.System)
	}
	if len(data.Bodies) != 2 || len(data.Times) != 3 {
		t.Fatalf("expected 2 bodies × 3 times, got %d × %d", len(data.Bodies), len(data.Times))
	}
	if len(data.EccFreqs) != 2 || len(data.IncFreqs) != 2 {
		t.Errorf("expected 2 mode frequencies per system")
	}
	if len(data.Bodies[0].H) != 3 {
		t.Errorf("body series not aligned to times")
	}
}

func TestWriteCSV(t *testing.T) {
	_, traj := testTrajectory(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, traj); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 4 { // header + 3 rows
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	wantCols := 1 + 2*6
	if len(records[0]) != wantCols {
		t.Errorf("expected %d columns, got %d", wantCols, len(records[0]))
	}
	if records[0][1] != "inner_h" || records[0][7] != "outer_h" {
		t.Errorf("unexpected header layout: %v", records[0])
	}
	if records[1][0] != "0" {
		t.Errorf("first row time %q, want 0", records[1][0])
	}
}
