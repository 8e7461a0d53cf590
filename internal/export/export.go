// Package export writes evaluated secular trajectories to JSON or CSV for
// external plotting tools and for comparison against N-body integrations.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/secularlab/secular/internal/orbit"
	"github.com/secularlab/secular/internal/secular"
)

type ExportData struct {
	System      string     `json:"system"`
	CentralMass float64    `json:"central_mass"`
	EccFreqs    []float64  `json:"ecc_freqs_arcsec_yr"`
	IncFreqs    []float64  `json:"inc_freqs_arcsec_yr"`
	Times       []float64  `json:"times_yr"`
	Bodies      []BodyData `json:"bodies"`
}

type BodyData struct {
	Name string    `json:"name"`
	H    []float64 `json:"h"`
	K    []float64 `json:"k"`
	P    []float64 `json:"p"`
	Q    []float64 `json:"q"`
	Ecc  []float64 `json:"ecc"`
	Inc  []float64 `json:"inc_rad"`
}

func buildData(name string, sol *secular.Solution, traj *secular.Trajectory) ExportData {
	data := ExportData{
		System:      name,
		CentralMass: sol.Model().Central,
		EccFreqs:    arcsec(sol.EccModes().Frequencies()),
		IncFreqs:    arcsec(sol.IncModes().Frequencies()),
		Times:       traj.Times,
		Bodies:      make([]BodyData, len(traj.Bodies)),
	}
	for i, b := range traj.Bodies {
		data.Bodies[i] = BodyData{
			Name: b.Name,
			H:    b.H,
			K:    b.K,
			P:    b.P,
			Q:    b.Q,
			Ecc:  b.Ecc,
			Inc:  b.Inc,
		}
	}
	return data
}

func arcsec(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = f * orbit.RadPerYrToArcsecPerYr
	}
	return out
}

// WriteJSON writes the trajectory as indented JSON.
func WriteJSON(w io.Writer, name string, sol *secular.Solution, traj *secular.Trajectory) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildData(name, sol, traj))
}

// ExportJSON writes the trajectory as indented JSON to a file.
func ExportJSON(path, name string, sol *secular.Solution, traj *secular.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, name, sol, traj)
}

// WriteCSV writes one row per query time with h/k/p/q/e/i columns per body.
func WriteCSV(w io.Writer, traj *secular.Trajectory) error {
	cw := csv.NewWriter(w)

	header := []string{"time_yr"}
	for _, b := range traj.Bodies {
		for _, col := range []string{"h", "k", "p", "q", "ecc", "inc"} {
			header = append(header, fmt.Sprintf("%s_%s", b.Name, col))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, t := range traj.Times {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		col := 1
		for _, b := range traj.Bodies {
			for _, v := range []float64{b.H[i], b.K[i], b.P[i], b.Q[i], b.Ecc[i], b.Inc[i]} {
				row[col] = strconv.FormatFloat(v, 'g', -1, 64)
				col++
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the trajectory to a CSV file.
func ExportCSV(path string, traj *secular.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, traj)
}
