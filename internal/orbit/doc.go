// Package orbit defines celestial bodies and Keplerian element helpers.
//
// Units follow solar-system convention throughout the module: masses in
// solar masses, semi-major axes in AU, angles in radians, time in years.
// With GM☉ = 4π² AU³/(M☉·yr²), a body at 1 AU has mean motion 2π rad/yr.
//
// The secular proxy variables linearize eccentricity and inclination:
//
//	h = e·sin ϖ    k = e·cos ϖ
//	p = I·sin Ω    q = I·cos Ω
//
// where ϖ is the longitude of pericenter and Ω the longitude of the
// ascending node.
package orbit
