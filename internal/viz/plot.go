package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/secularlab/secular/internal/secular"
)

// Field selects which proxy or derived series to plot.
type Field int

const (
	FieldEcc Field = iota
	FieldInc
	FieldH
	FieldK
	FieldP
	FieldQ
)

// ParseField maps a CLI name to a Field.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(name) {
	case "ecc", "e":
		return FieldEcc, nil
	case "inc", "i":
		return FieldInc, nil
	case "h":
		return FieldH, nil
	case "k":
		return FieldK, nil
	case "p":
		return FieldP, nil
	case "q":
		return FieldQ, nil
	}
	return 0, fmt.Errorf("unknown field %q (want ecc, inc, h, k, p or q)", name)
}

func (f Field) String() string {
	switch f {
	case FieldEcc:
		return "eccentricity"
	case FieldInc:
		return "inclination (rad)"
	case FieldH:
		return "h = e·sin ϖ"
	case FieldK:
		return "k = e·cos ϖ"
	case FieldP:
		return "p = I·sin Ω"
	case FieldQ:
		return "q = I·cos Ω"
	}
	return "?"
}

// Series extracts the selected series from one body's history.
func Series(bs secular.BodySeries, f Field) []float64 {
	switch f {
	case FieldEcc:
		return bs.Ecc
	case FieldInc:
		return bs.Inc
	case FieldH:
		return bs.H
	case FieldK:
		return bs.K
	case FieldP:
		return bs.P
	case FieldQ:
		return bs.Q
	}
	return nil
}

// Plot renders one graph per body for the selected field.
func Plot(traj *secular.Trajectory, f Field) string {
	var sb strings.Builder
	span := 0.0
	if n := len(traj.Times); n > 0 {
		span = traj.Times[n-1] - traj.Times[0]
	}

	for _, bs := range traj.Bodies {
		caption := fmt.Sprintf("%s: %s over %.3g yr", bs.Name, f, span)
		graph := asciigraph.Plot(Series(bs, f),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		sb.WriteString(graph)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
