package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")

	cfg := GetPreset("jupsat")
	if cfg == nil {
		t.Fatal("missing jupsat preset")
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != cfg.Name || loaded.SpanYears != cfg.SpanYears || loaded.Samples != cfg.Samples {
		t.Errorf("round trip changed header: %+v", loaded)
	}
	if len(loaded.Bodies) != len(cfg.Bodies) {
		t.Fatalf("expected %d bodies, got %d", len(cfg.Bodies), len(loaded.Bodies))
	}
	if loaded.Bodies[1].Name != "saturn" || loaded.Bodies[1].A != cfg.Bodies[1].A {
		t.Errorf("round trip changed bodies: %+v", loaded.Bodies)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.yaml")
	doc := `name: minimal
bodies:
  - {name: a, mass: 3.0e-6, a: 1.0, ecc: 0.02}
  - {name: b, mass: 3.0e-6, a: 1.31, ecc: 0.04}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	// Fields absent from the file keep their defaults.
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.CentralMass != DefaultCentralMass {
		t.Errorf("central mass %g, want default %g", loaded.CentralMass, DefaultCentralMass)
	}
	if loaded.SpanYears != DefaultSpanYears || loaded.Samples != DefaultSamples {
		t.Errorf("window %g/%d, want defaults", loaded.SpanYears, loaded.Samples)
	}
}

func TestValidate(t *testing.T) {
	bad := &Config{SpanYears: -1, Samples: 100}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative span")
	}
	bad = &Config{SpanYears: 1000, Samples: 1}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for a single sample")
	}
}

func TestToBodiesConvertsAngles(t *testing.T) {
	cfg := &Config{Bodies: []BodyConfig{
		{Name: "x", Mass: 1e-6, A: 2.0, Ecc: 0.1, IncDeg: 90, PeriDeg: 180, NodeDeg: 0},
	}}

	bodies := cfg.ToBodies()
	if math.Abs(bodies[0].Inc-math.Pi/2) > 1e-12 {
		t.Errorf("inclination %g rad, want π/2", bodies[0].Inc)
	}
	if math.Abs(bodies[0].Peri-math.Pi) > 1e-12 {
		t.Errorf("pericenter %g rad, want π", bodies[0].Peri)
	}
}

func TestTimesGrid(t *testing.T) {
	cfg := &Config{SpanYears: 100, Samples: 5}
	times := cfg.Times()

	if len(times) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(times))
	}
	if times[0] != 0 || times[4] != 100 {
		t.Errorf("grid endpoints %g..%g, want 0..100", times[0], times[4])
	}
	if times[2] != 50 {
		t.Errorf("grid midpoint %g, want 50", times[2])
	}
}

func TestPresetsComplete(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s listed but missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
		if len(cfg.Bodies) < 2 {
			t.Errorf("preset %s has %d bodies, need at least 2", name, len(cfg.Bodies))
		}
	}
}
