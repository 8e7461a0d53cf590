package orbit

import "math"

const (
	// GM is the gravitational parameter of the central body in
	// AU³/(M☉·yr²). Gauss: 4π² for one solar mass.
	GM = 4 * math.Pi * math.Pi

	// RadPerYrToArcsecPerYr converts secular frequencies from rad/yr to
	// the arcsec/yr customary in secular theory tables.
	RadPerYrToArcsecPerYr = 180.0 / math.Pi * 3600.0
)

// Body is a snapshot of one orbiting body at the reference epoch.
// Immutable once handed to a model builder.
type Body struct {
	Name string

	Mass float64 // solar masses
	A    float64 // semi-major axis, AU

	Ecc  float64 // eccentricity
	Inc  float64 // inclination, rad
	Peri float64 // longitude of pericenter ϖ, rad
	Node float64 // longitude of ascending node Ω, rad
}

// MeanMotion returns n = sqrt(GM(1+m)/a³) in rad/yr, the Keplerian mean
// motion about a central body of combined mass 1+m solar masses.
func (b Body) MeanMotion() float64 {
	return math.Sqrt(GM * (1 + b.Mass) / (b.A * b.A * b.A))
}

// Period returns the orbital period in years.
func (b Body) Period() float64 {
	return 2 * math.Pi / b.MeanMotion()
}

// EccProxies returns the eccentricity-vector components (h, k).
func (b Body) EccProxies() (h, k float64) {
	return b.Ecc * math.Sin(b.Peri), b.Ecc * math.Cos(b.Peri)
}

// IncProxies returns the inclination-vector components (p, q).
func (b Body) IncProxies() (p, q float64) {
	return b.Inc * math.Sin(b.Node), b.Inc * math.Cos(b.Node)
}

// FromEccProxies recovers (e, ϖ) from the eccentricity vector. The angle
// is normalized to [0, 2π); for a circular orbit it is zero.
func FromEccProxies(h, k float64) (ecc, peri float64) {
	ecc = math.Hypot(h, k)
	if ecc == 0 {
		return 0, 0
	}
	return ecc, NormalizeAngle(math.Atan2(h, k))
}

// FromIncProxies recovers (I, Ω) from the inclination vector.
func FromIncProxies(p, q float64) (inc, node float64) {
	inc = math.Hypot(p, q)
	if inc == 0 {
		return 0, 0
	}
	return inc, NormalizeAngle(math.Atan2(p, q))
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
