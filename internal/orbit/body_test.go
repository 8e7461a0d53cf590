package orbit

import (
	"math"
	"testing"
)

func TestMeanMotionEarthlike(t *testing.T) {
	b := Body{Mass: 3e-6, A: 1.0}

	n := b.MeanMotion()
	if math.Abs(n-2*math.Pi) > 1e-4 {
		t.Errorf("expected mean motion near 2π rad/yr at 1 AU, got %f", n)
	}
	if math.Abs(b.Period()-1.0) > 1e-4 {
		t.Errorf("expected 1 yr period at 1 AU, got %f", b.Period())
	}
}

func TestMeanMotionKeplerScaling(t *testing.T) {
	inner := Body{Mass: 0, A: 1.0}
	outer := Body{Mass: 0, A: 4.0}

	ratio := inner.MeanMotion() / outer.MeanMotion()
	if math.Abs(ratio-8.0) > 1e-12 {
		t.Errorf("n ∝ a^-3/2 violated: ratio %f, want 8", ratio)
	}
}

func TestProxyRoundTrip(t *testing.T) {
	b := Body{Ecc: 0.048, Peri: 0.25, Inc: 0.022, Node: 1.75}

	h, k := b.EccProxies()
	ecc, peri := FromEccProxies(h, k)
	if math.Abs(ecc-b.Ecc) > 1e-15 {
		t.Errorf("eccentricity round trip: got %g, want %g", ecc, b.Ecc)
	}
	if math.Abs(peri-b.Peri) > 1e-15 {
		t.Errorf("pericenter round trip: got %g, want %g", peri, b.Peri)
	}

	p, q := b.IncProxies()
	inc, node := FromIncProxies(p, q)
	if math.Abs(inc-b.Inc) > 1e-15 {
		t.Errorf("inclination round trip: got %g, want %g", inc, b.Inc)
	}
	if math.Abs(node-b.Node) > 1e-15 {
		t.Errorf("node round trip: got %g, want %g", node, b.Node)
	}
}

func TestProxyCircularOrbit(t *testing.T) {
	ecc, peri := FromEccProxies(0, 0)
	if ecc != 0 || peri != 0 {
		t.Errorf("circular orbit should map to (0,0), got (%g,%g)", ecc, peri)
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
	}
	for _, c := range cases {
		got := NormalizeAngle(c.in)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("NormalizeAngle(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}
