package secular

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/secularlab/secular/internal/laplace"
	"github.com/secularlab/secular/internal/orbit"
)

// axisTol is the relative semi-major-axis separation below which two
// orbits are treated as coincident and the model is rejected.
const axisTol = 1e-9

// Matrices holds the two linear secular systems for a set of bodies.
//
// Ecc couples the eccentricity vectors (h,k); Inc couples the inclination
// vectors (p,q). Both are N×N in rad/yr. Inc has zero row sums to rounding
// error, so one eigenvalue is zero: the free rotation of all nodes together.
// The matrices are row-scaled by each body's mean motion and are therefore
// not symmetric as stored; weights holds the angular-momentum factors
// whose similarity transform symmetrizes them.
type Matrices struct {
	Central float64 // central mass, solar masses
	Bodies  []orbit.Body

	Ecc *mat.Dense
	Inc *mat.Dense

	weights []float64
}

// Build assembles the secular coupling matrices for bodies orbiting a
// central mass (solar masses). The bodies slice is copied; the input is
// not retained.
func Build(central float64, bodies []orbit.Body) (*Matrices, error) {
	if len(bodies) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewBodies, len(bodies))
	}
	if central <= 0 {
		return nil, fmt.Errorf("%w: central mass %g", ErrInvalidBody, central)
	}
	for _, b := range bodies {
		if b.Mass <= 0 || b.A <= 0 {
			return nil, fmt.Errorf("%w: %q (m=%g, a=%g)", ErrInvalidBody, b.Name, b.Mass, b.A)
		}
	}

	n := len(bodies)
	snapshot := make([]orbit.Body, n)
	copy(snapshot, bodies)

	m := &Matrices{
		Central: central,
		Bodies:  snapshot,
		Ecc:     mat.NewDense(n, n, nil),
		Inc:     mat.NewDense(n, n, nil),
		weights: make([]float64, n),
	}

	motion := make([]float64, n)
	for j, b := range snapshot {
		motion[j] = math.Sqrt(orbit.GM * (central + b.Mass) / (b.A * b.A * b.A))
		// w_j = sqrt(Λ_j) with Λ_j = m_j·n_j·a_j², the circular-orbit
		// angular momentum. Scaling by these weights makes the
		// coupling matrices symmetric.
		m.weights[j] = b.A * math.Sqrt(b.Mass*motion[j])
	}

	for j, bj := range snapshot {
		nj := motion[j]
		var diag float64

		for k, bk := range snapshot {
			if k == j {
				continue
			}

			alpha := bj.A / bk.A
			outer := alpha < 1 // perturber k lies outside body j
			if !outer {
				alpha = 1 / alpha
			}
			if alpha >= 1-axisTol {
				return nil, fmt.Errorf("%w: %q and %q at a=%g, %g AU",
					ErrDuplicateAxis, bj.Name, bk.Name, bj.A, bk.A)
			}

			b1, b2, err := laplace.B32(alpha)
			if err != nil {
				return nil, err
			}

			// α·ᾱ is α for an interior perturber, α² for an
			// exterior one.
			f := alpha
			if outer {
				f *= alpha
			}
			c := nj / 4 * bk.Mass / (central + bj.Mass) * f

			m.Ecc.Set(j, k, -c*b2)
			m.Inc.Set(j, k, c*b1)
			diag += c * b1
		}

		m.Ecc.Set(j, j, diag)
		// Negated off-diagonal sum, keeping the zero row-sum
		// structure down at rounding level.
		m.Inc.Set(j, j, -diag)
	}

	return m, nil
}

// N returns the number of bodies in the model.
func (m *Matrices) N() int { return len(m.Bodies) }
