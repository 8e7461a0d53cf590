package secular

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Numeric tolerances for mode classification. Frequencies are in rad/yr.
const (
	// ZeroFreqTol is the magnitude below which a frequency counts as the
	// null rotation mode.
	ZeroFreqTol = 1e-9

	// DegenerateTol is the gap below which two frequencies count as
	// degenerate; eigenvector orthogonality is only guaranteed outside
	// degeneracy.
	DegenerateTol = 1e-9
)

// Mode is one secular normal mode: a frequency and the unit-norm shape
// vector giving each body's participation.
type Mode struct {
	Freq float64   // rad/yr
	Vec  []float64 // one component per body, |Vec| = 1
}

// EigenSolution is the full normal-mode decomposition of one coupling
// matrix, in a deterministic order: ascending signed frequency, ties broken
// by the first differing eigenvector component. Each vector carries the
// sign convention that its largest-magnitude component is positive (lowest
// index on ties). Near-zero frequencies are legitimate modes and are never
// dropped.
type EigenSolution struct {
	Modes []Mode
}

// DecomposeSym diagonalizes a real symmetric matrix into normal modes.
// Eigenvalues are guaranteed real; eigenvectors are unit norm and, away
// from degeneracy, pairwise orthogonal. Fails with ErrEigenFailed if the
// factorization does not converge and ErrNotFinite if the input or output
// contains NaN/Inf.
func DecomposeSym(sym mat.Symmetric) (*EigenSolution, error) {
	n := sym.SymmetricDim()

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, fmt.Errorf("%w: factorization did not converge", ErrEigenFailed)
	}

	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	modes := make([]Mode, n)
	for i := 0; i < n; i++ {
		v := make([]float64, n)
		for j := 0; j < n; j++ {
			v[j] = vecs.At(j, i)
		}
		if err := fixConvention(vals[i], v, i); err != nil {
			return nil, err
		}
		modes[i] = Mode{Freq: vals[i], Vec: v}
	}

	sortModes(modes)
	return &EigenSolution{Modes: modes}, nil
}

// decompose diagonalizes a row-scaled coupling matrix. The similarity
// transform S = W·M·W⁻¹ with the angular-momentum weights is symmetric up
// to rounding; the symmetrized average is decomposed and the eigenvectors
// are mapped back to the physical basis and renormalized.
func decompose(m *mat.Dense, weights []float64) (*EigenSolution, error) {
	n, _ := m.Dims()

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sij := weights[i] * m.At(i, j) / weights[j]
			sji := weights[j] * m.At(j, i) / weights[i]
			sym.SetSym(i, j, (sij+sji)/2)
		}
	}

	sol, err := DecomposeSym(sym)
	if err != nil {
		return nil, err
	}

	for i := range sol.Modes {
		v := sol.Modes[i].Vec
		for j := range v {
			v[j] /= weights[j]
		}
		if err := fixConvention(sol.Modes[i].Freq, v, i); err != nil {
			return nil, err
		}
	}

	// Rescaling can reorder tie-broken pairs.
	sortModes(sol.Modes)
	return sol, nil
}

// fixConvention normalizes v to unit Euclidean norm and flips its sign so
// the largest-magnitude component (lowest index on ties) is positive.
func fixConvention(freq float64, v []float64, mode int) error {
	norm := 0.0
	for _, x := range v {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return fmt.Errorf("%w: mode %d", ErrNotFinite, mode)
	}

	peak := 0
	for j := 1; j < len(v); j++ {
		if math.Abs(v[j]) > math.Abs(v[peak]) {
			peak = j
		}
	}
	scale := 1 / norm
	if v[peak] < 0 {
		scale = -scale
	}
	for j := range v {
		v[j] *= scale
	}
	return nil
}

func sortModes(modes []Mode) {
	sort.SliceStable(modes, func(a, b int) bool {
		if modes[a].Freq != modes[b].Freq {
			return modes[a].Freq < modes[b].Freq
		}
		for j := range modes[a].Vec {
			if modes[a].Vec[j] != modes[b].Vec[j] {
				return modes[a].Vec[j] < modes[b].Vec[j]
			}
		}
		return false
	})
}

// Frequencies returns the mode frequencies in rad/yr, in mode order.
func (e *EigenSolution) Frequencies() []float64 {
	f := make([]float64, len(e.Modes))
	for i, m := range e.Modes {
		f[i] = m.Freq
	}
	return f
}

// ZeroModes counts modes with |frequency| below ZeroFreqTol.
func (e *EigenSolution) ZeroModes() int {
	count := 0
	for _, m := range e.Modes {
		if math.Abs(m.Freq) < ZeroFreqTol {
			count++
		}
	}
	return count
}
