package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/secularlab/secular/internal/orbit"
)

const (
	DefaultCentralMass = 1.0
	DefaultSpanYears   = 500000.0
	DefaultSamples     = 512
)

// Config describes a planetary system and the evaluation window for its
// secular solution. Angles are degrees in the file and converted to
// radians by ToBodies.
type Config struct {
	Name        string       `yaml:"name"`
	CentralMass float64      `yaml:"central_mass"`
	SpanYears   float64      `yaml:"span_years"`
	Samples     int          `yaml:"samples"`
	Bodies      []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	Name    string  `yaml:"name"`
	Mass    float64 `yaml:"mass"` // solar masses
	A       float64 `yaml:"a"`    // AU
	Ecc     float64 `yaml:"ecc"`
	IncDeg  float64 `yaml:"inc_deg"`
	PeriDeg float64 `yaml:"peri_deg"` // longitude of pericenter
	NodeDeg float64 `yaml:"node_deg"` // longitude of ascending node
}

func DefaultConfig() *Config {
	return &Config{
		CentralMass: DefaultCentralMass,
		SpanYears:   DefaultSpanYears,
		Samples:     DefaultSamples,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the evaluation window; body-level validation (masses,
// axes, coupling singularities) belongs to the model builder.
func (c *Config) Validate() error {
	if c.SpanYears <= 0 {
		return fmt.Errorf("config: span_years must be positive, got %g", c.SpanYears)
	}
	if c.Samples < 2 {
		return fmt.Errorf("config: samples must be at least 2, got %d", c.Samples)
	}
	return nil
}

// ToBodies converts the configured bodies to model input, degrees to
// radians.
func (c *Config) ToBodies() []orbit.Body {
	bodies := make([]orbit.Body, len(c.Bodies))
	for i, b := range c.Bodies {
		bodies[i] = orbit.Body{
			Name: b.Name,
			Mass: b.Mass,
			A:    b.A,
			Ecc:  b.Ecc,
			Inc:  deg2rad(b.IncDeg),
			Peri: deg2rad(b.PeriDeg),
			Node: deg2rad(b.NodeDeg),
		}
	}
	return bodies
}

// Times returns the evaluation grid: Samples points evenly spaced over
// [0, SpanYears].
func (c *Config) Times() []float64 {
	times := make([]float64, c.Samples)
	step := c.SpanYears / float64(c.Samples-1)
	for i := range times {
		times[i] = float64(i) * step
	}
	return times
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
