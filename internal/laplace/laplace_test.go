package laplace

import (
	"math"
	"testing"
)

// quadrature evaluates the defining integral directly. The integrand is
// smooth and periodic, so the trapezoid rule converges spectrally and a few
// thousand points give close to machine precision.
func quadrature(s float64, j int, alpha float64) float64 {
	const n = 4096
	sum := 0.0
	for i := 0; i <= n; i++ {
		psi := math.Pi * float64(i) / n
		f := math.Cos(float64(j)*psi) / math.Pow(1-2*alpha*math.Cos(psi)+alpha*alpha, s)
		if i == 0 || i == n {
			f /= 2
		}
		sum += f
	}
	return 2 / math.Pi * sum * math.Pi / n
}

func TestCoefficientAgainstQuadrature(t *testing.T) {
	cases := []struct {
		s     float64
		j     int
		alpha float64
	}{
		{0.5, 0, 0.4},
		{0.5, 1, 0.4},
		{1.5, 1, 0.3},
		{1.5, 1, 0.5},
		{1.5, 1, 1.0 / 1.31},
		{1.5, 2, 0.3},
		{1.5, 2, 0.5},
		{1.5, 2, 1.0 / 1.31},
	}

	for _, c := range cases {
		got, err := Coefficient(c.s, c.j, c.alpha)
		if err != nil {
			t.Fatalf("b_%g^(%d)(%g): %v", c.s, c.j, c.alpha, err)
		}
		want := quadrature(c.s, c.j, c.alpha)
		if math.Abs(got-want) > 1e-10*math.Abs(want) {
			t.Errorf("b_%g^(%d)(%g) = %.15g, quadrature gives %.15g", c.s, c.j, c.alpha, got, want)
		}
	}
}

func TestCoefficientOrdering(t *testing.T) {
	// For 0 < α < 1 the s=3/2 coefficients are positive and decrease
	// with increasing j.
	for _, alpha := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		b1, b2, err := B32(alpha)
		if err != nil {
			t.Fatalf("B32(%g): %v", alpha, err)
		}
		if b1 <= 0 || b2 <= 0 {
			t.Errorf("α=%g: coefficients must be positive, got b1=%g b2=%g", alpha, b1, b2)
		}
		if b2 >= b1 {
			t.Errorf("α=%g: expected b_{3/2}^(1) > b_{3/2}^(2), got %g <= %g", alpha, b1, b2)
		}
	}
}

func TestCoefficientSmallAlphaLimit(t *testing.T) {
	// As α → 0, b_{3/2}^(1)(α) → 3α.
	alpha := 1e-4
	b1, err := Coefficient(1.5, 1, alpha)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(b1-3*alpha) > 1e-3*3*alpha {
		t.Errorf("small-α limit: got %g, want ≈ %g", b1, 3*alpha)
	}
}

func TestCoefficientDomain(t *testing.T) {
	for _, alpha := range []float64{-0.5, 0, 1, 1.2} {
		if _, err := Coefficient(1.5, 1, alpha); err == nil {
			t.Errorf("expected error for α=%g", alpha)
		}
	}
	if _, err := Coefficient(-1, 1, 0.5); err == nil {
		t.Error("expected error for negative s")
	}
}
