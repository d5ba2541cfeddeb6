package optimizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Domains are the discrete value sets the search enumerates. Zero-valued
// fields in an override file keep their defaults.
type Domains struct {
	BracketCentresMM   []float64 `yaml:"bracket_centres_mm"`
	BracketThicknessMM []float64 `yaml:"bracket_thickness_mm"`
	AngleThicknessMM   []float64 `yaml:"angle_thickness_mm"`
	VerticalLegMM      []float64 `yaml:"vertical_leg_mm"`
	BoltDiameterMM     []float64 `yaml:"bolt_diameter_mm"`
	SteelBoltSizes     []string  `yaml:"steel_bolt_sizes"`
	SteelFixingMethods []string  `yaml:"steel_fixing_methods"`

	// Dim D width sub-search bounds (inverted brackets only).
	DimDMinMM  float64 `yaml:"dim_d_min_mm"`
	DimDMaxMM  float64 `yaml:"dim_d_max_mm"`
	DimDStepMM float64 `yaml:"dim_d_step_mm"`
}

// DefaultDomains returns the stocked product ranges.
func DefaultDomains() Domains {
	return Domains{
		BracketCentresMM:   []float64{200, 250, 300, 350, 400, 450, 500, 600},
		BracketThicknessMM: []float64{3, 4, 5, 6, 8},
		AngleThicknessMM:   []float64{3, 4, 5, 6, 8, 10},
		VerticalLegMM:      []float64{60, 75, 100, 125, 150, 200},
		BoltDiameterMM:     []float64{10, 12, 16},
		SteelBoltSizes:     []string{"M10", "M12"},
		SteelFixingMethods: []string{"setscrew", "boltnut"},
		DimDMinMM:          130,
		DimDMaxMM:          450,
		DimDStepMM:         5,
	}
}

// LoadDomains layers a YAML override file on top of the defaults.
func LoadDomains(path string) (Domains, error) {
	d := DefaultDomains()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Domains{}, fmt.Errorf("read domains file: %w", err)
	}
	var override Domains
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Domains{}, fmt.Errorf("parse domains file: %w", err)
	}
	merge(&d.BracketCentresMM, override.BracketCentresMM)
	merge(&d.BracketThicknessMM, override.BracketThicknessMM)
	merge(&d.AngleThicknessMM, override.AngleThicknessMM)
	merge(&d.VerticalLegMM, override.VerticalLegMM)
	merge(&d.BoltDiameterMM, override.BoltDiameterMM)
	if len(override.SteelBoltSizes) > 0 {
		d.SteelBoltSizes = override.SteelBoltSizes
	}
	if len(override.SteelFixingMethods) > 0 {
		d.SteelFixingMethods = override.SteelFixingMethods
	}
	if override.DimDMinMM > 0 {
		d.DimDMinMM = override.DimDMinMM
	}
	if override.DimDMaxMM > 0 {
		d.DimDMaxMM = override.DimDMaxMM
	}
	if override.DimDStepMM > 0 {
		d.DimDStepMM = override.DimDStepMM
	}
	return d, nil
}

func merge(dst *[]float64, src []float64) {
	if len(src) > 0 {
		*dst = src
	}
}
