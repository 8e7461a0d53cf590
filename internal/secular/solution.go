package secular

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/secularlab/secular/internal/orbit"
)

// Amplitude is one mode's contribution fitted to the initial conditions:
// the mode enters body j's series as Vec[j]·T·sin(ω·t + Phase) for the
// sine proxy and cos for the cosine proxy.
type Amplitude struct {
	T     float64 // scale, dimensionless (eccentricity or radian units)
	Phase float64 // rad
}

// Solution is the complete secular solution for one body snapshot. It owns
// both coupling matrices, both eigendecompositions, and both amplitude
// sets, and is immutable after construction: concurrent evaluation is
// safe, and new initial conditions require a new Solution.
type Solution struct {
	model *Matrices

	ecc *EigenSolution
	inc *EigenSolution

	eccAmp []Amplitude
	incAmp []Amplitude
}

// BodyState holds the four secular proxies of one body at one time.
type BodyState struct {
	H, K float64 // eccentricity vector
	P, Q float64 // inclination vector
}

// BodySeries is one body's evaluated history aligned to Trajectory.Times.
type BodySeries struct {
	Name       string
	H, K, P, Q []float64
	Ecc, Inc   []float64 // derived moduli √(h²+k²), √(p²+q²)
}

// Trajectory is the evaluation of a Solution over a time grid.
type Trajectory struct {
	Times  []float64 // years from the reference epoch
	Bodies []BodySeries
}

// New builds the full secular solution from a snapshot of bodies orbiting
// a central mass: coupling matrices, normal modes of both, and the mode
// amplitudes that reproduce the snapshot's h/k/p/q at t = 0.
func New(central float64, bodies []orbit.Body) (*Solution, error) {
	model, err := Build(central, bodies)
	if err != nil {
		return nil, err
	}
	return Solve(model)
}

// Solve derives the eigenmodes and initial-condition amplitudes for an
// already-built model.
func Solve(model *Matrices) (*Solution, error) {
	eccSol, err := decompose(model.Ecc, model.weights)
	if err != nil {
		return nil, fmt.Errorf("eccentricity system: %w", err)
	}
	incSol, err := decompose(model.Inc, model.weights)
	if err != nil {
		return nil, fmt.Errorf("inclination system: %w", err)
	}

	n := model.N()
	h0 := make([]float64, n)
	k0 := make([]float64, n)
	p0 := make([]float64, n)
	q0 := make([]float64, n)
	for j, b := range model.Bodies {
		h0[j], k0[j] = b.EccProxies()
		p0[j], q0[j] = b.IncProxies()
	}

	eccAmp, err := fitAmplitudes(eccSol, h0, k0)
	if err != nil {
		return nil, fmt.Errorf("eccentricity system: %w", err)
	}
	incAmp, err := fitAmplitudes(incSol, p0, q0)
	if err != nil {
		return nil, fmt.Errorf("inclination system: %w", err)
	}

	return &Solution{
		model:  model,
		ecc:    eccSol,
		inc:    incSol,
		eccAmp: eccAmp,
		incAmp: incAmp,
	}, nil
}

// fitAmplitudes projects the initial sine/cosine proxies onto the
// eigenvector basis. The physical eigenvectors are not orthogonal, so the
// projection is a linear solve of V·s = sin0 and V·c = cos0; amplitude and
// phase follow from the two components per mode.
func fitAmplitudes(sol *EigenSolution, sin0, cos0 []float64) ([]Amplitude, error) {
	n := len(sin0)
	v := mat.NewDense(n, n, nil)
	for i, m := range sol.Modes {
		for j := 0; j < n; j++ {
			v.Set(j, i, m.Vec[j])
		}
	}

	var s, c mat.VecDense
	if err := s.SolveVec(v, mat.NewVecDense(n, sin0)); err != nil {
		return nil, fmt.Errorf("%w: amplitude fit: %v", ErrEigenFailed, err)
	}
	if err := c.SolveVec(v, mat.NewVecDense(n, cos0)); err != nil {
		return nil, fmt.Errorf("%w: amplitude fit: %v", ErrEigenFailed, err)
	}

	amps := make([]Amplitude, n)
	for i := range amps {
		si, ci := s.AtVec(i), c.AtVec(i)
		amps[i] = Amplitude{
			T:     math.Hypot(si, ci),
			Phase: math.Atan2(si, ci),
		}
	}
	return amps, nil
}

// Bodies returns the snapshot the solution was built from.
func (s *Solution) Bodies() []orbit.Body { return s.model.Bodies }

// Model returns the underlying coupling matrices.
func (s *Solution) Model() *Matrices { return s.model }

// EccModes returns the eccentricity-system eigendecomposition.
func (s *Solution) EccModes() *EigenSolution { return s.ecc }

// IncModes returns the inclination-system eigendecomposition.
func (s *Solution) IncModes() *EigenSolution { return s.inc }

// EccAmplitudes returns the fitted eccentricity-mode amplitudes.
func (s *Solution) EccAmplitudes() []Amplitude { return s.eccAmp }

// IncAmplitudes returns the fitted inclination-mode amplitudes.
func (s *Solution) IncAmplitudes() []Amplitude { return s.incAmp }

// At evaluates every body's proxies at a single time (years). Pure: the
// output depends only on t, never on previous queries.
func (s *Solution) At(t float64) []BodyState {
	n := s.model.N()
	out := make([]BodyState, n)

	for i, m := range s.ecc.Modes {
		a := s.eccAmp[i]
		arg := m.Freq*t + a.Phase
		sin, cos := math.Sincos(arg)
		for j := 0; j < n; j++ {
			out[j].H += m.Vec[j] * a.T * sin
			out[j].K += m.Vec[j] * a.T * cos
		}
	}
	for i, m := range s.inc.Modes {
		a := s.incAmp[i]
		arg := m.Freq*t + a.Phase
		sin, cos := math.Sincos(arg)
		for j := 0; j < n; j++ {
			out[j].P += m.Vec[j] * a.T * sin
			out[j].Q += m.Vec[j] * a.T * cos
		}
	}
	return out
}

// Evaluate computes the proxy series on an arbitrary finite time grid.
// Times need not be sorted or distinct; row i of every series depends only
// on times[i]. The grid is copied into the returned trajectory.
func (s *Solution) Evaluate(times []float64) *Trajectory {
	n := s.model.N()
	traj := &Trajectory{
		Times:  append([]float64(nil), times...),
		Bodies: make([]BodySeries, n),
	}
	for j, b := range s.model.Bodies {
		traj.Bodies[j] = BodySeries{
			Name: b.Name,
			H:    make([]float64, len(times)),
			K:    make([]float64, len(times)),
			P:    make([]float64, len(times)),
			Q:    make([]float64, len(times)),
			Ecc:  make([]float64, len(times)),
			Inc:  make([]float64, len(times)),
		}
	}

	for i, t := range times {
		states := s.At(t)
		for j, st := range states {
			bs := &traj.Bodies[j]
			bs.H[i] = st.H
			bs.K[i] = st.K
			bs.P[i] = st.P
			bs.Q[i] = st.Q
			bs.Ecc[i] = math.Hypot(st.H, st.K)
			bs.Inc[i] = math.Hypot(st.P, st.Q)
		}
	}
	return traj
}
