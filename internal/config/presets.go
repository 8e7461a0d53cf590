package config

import "sort"

// Presets are built-in systems with J2000-epoch osculating elements.
var Presets = map[string]*Config{
	"giants": {
		Name:        "giants",
		CentralMass: 1.0,
		SpanYears:   2e6,
		Samples:     1024,
		Bodies: []BodyConfig{
			{Name: "jupiter", Mass: 9.5479e-4, A: 5.20260, Ecc: 0.04849, IncDeg: 1.303, PeriDeg: 14.331, NodeDeg: 100.464},
			{Name: "saturn", Mass: 2.8588e-4, A: 9.55491, Ecc: 0.05551, IncDeg: 2.489, PeriDeg: 93.057, NodeDeg: 113.666},
			{Name: "uranus", Mass: 4.3662e-5, A: 19.21845, Ecc: 0.04630, IncDeg: 0.773, PeriDeg: 173.005, NodeDeg: 74.006},
			{Name: "neptune", Mass: 5.1514e-5, A: 30.11039, Ecc: 0.00899, IncDeg: 1.770, PeriDeg: 48.123, NodeDeg: 131.784},
		},
	},
	"inner": {
		Name:        "inner",
		CentralMass: 1.0,
		SpanYears:   1e6,
		Samples:     1024,
		Bodies: []BodyConfig{
			{Name: "mercury", Mass: 1.6601e-7, A: 0.38710, Ecc: 0.20563, IncDeg: 7.005, PeriDeg: 77.456, NodeDeg: 48.331},
			{Name: "venus", Mass: 2.4478e-6, A: 0.72333, Ecc: 0.00677, IncDeg: 3.395, PeriDeg: 131.533, NodeDeg: 76.680},
			{Name: "earth", Mass: 3.0404e-6, A: 1.00000, Ecc: 0.01671, IncDeg: 0.0, PeriDeg: 102.947, NodeDeg: 348.74},
			{Name: "mars", Mass: 3.2271e-7, A: 1.52368, Ecc: 0.09340, IncDeg: 1.850, PeriDeg: 336.041, NodeDeg: 49.558},
		},
	},
	"jupsat": {
		Name:        "jupsat",
		CentralMass: 1.0,
		SpanYears:   1e5,
		Samples:     512,
		Bodies: []BodyConfig{
			{Name: "jupiter", Mass: 9.5479e-4, A: 5.20260, Ecc: 0.04849, IncDeg: 1.303, PeriDeg: 14.331, NodeDeg: 100.464},
			{Name: "saturn", Mass: 2.8588e-4, A: 9.55491, Ecc: 0.05551, IncDeg: 2.489, PeriDeg: 93.057, NodeDeg: 113.666},
		},
	},
	// Two earth-mass bodies in a tight near-coplanar pair; small and
	// quick, handy for smoke checks.
	"binary": {
		Name:        "binary",
		CentralMass: 1.0,
		SpanYears:   2e6,
		Samples:     512,
		Bodies: []BodyConfig{
			{Name: "inner", Mass: 3e-6, A: 1.0, Ecc: 0.02, IncDeg: 0.5, PeriDeg: 0, NodeDeg: 0},
			{Name: "outer", Mass: 3e-6, A: 1.31, Ecc: 0.04, IncDeg: 1.0, PeriDeg: 60, NodeDeg: 90},
		},
	},
}

// GetPreset returns the named preset, or nil.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
