// Package loads converts a masonry facade build-up into a characteristic
// line load on the support. The design engine itself takes the line load as
// an input; this tool is a convenience for callers.
package loads

import "fmt"

const gravityMS2 = 9.81

type Input struct {
	DensityKGM3       float64 `json:"density_kg_m3"`
	FacadeThicknessMM float64 `json:"facade_thickness_mm"`
	SupportedHeightM  float64 `json:"supported_height_m"`
}

type Result struct {
	CharacteristicLoadKNM float64 `json:"characteristic_load_kn_m"`
	Notes                 string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.DensityKGM3 <= 0 || in.FacadeThicknessMM <= 0 || in.SupportedHeightM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	// w = ρ t h g, kN per metre of run
	w := in.DensityKGM3 * (in.FacadeThicknessMM / 1000) * in.SupportedHeightM * gravityMS2 / 1000
	return Result{
		CharacteristicLoadKNM: w,
		Notes:                 "Characteristic self-weight line load of the supported masonry.",
	}, nil
}
