// Package extension caps a bracket height against an exclusion-zone limit
// and compensates by lengthening the angle's vertical leg one-to-one, so the
// covered height is preserved.
package extension

import (
	"fmt"

	"Corbel/internal/calc/geometry"
)

// ErrManufacturingLimit rejects a candidate whose compensated angle leg
// would exceed the pressing ceiling.
var ErrManufacturingLimit = fmt.Errorf("angle extension exceeds manufacturing limits (%v mm max leg)", geometry.MaxAngleLegMM)

type Result struct {
	LimitedHeightMM  float64 `json:"limited_height_mm"`
	ReductionMM      float64 `json:"reduction_mm"`
	AngleExtensionMM float64 `json:"angle_extension_mm"`
}

// Compensate limits originalHeight to fixingPosition + maxExtension. Any
// reduction is returned as an equal angle extension. The candidate is
// rejected, not clamped, when the extended leg would exceed the ceiling.
func Compensate(originalHeightMM, maxExtensionMM, fixingPositionMM, angleVerticalLegMM float64) (Result, error) {
	maxHeight := fixingPositionMM + maxExtensionMM
	if originalHeightMM <= maxHeight {
		return Result{LimitedHeightMM: originalHeightMM}, nil
	}
	reduction := originalHeightMM - maxHeight
	if angleVerticalLegMM+reduction > geometry.MaxAngleLegMM {
		return Result{}, fmt.Errorf("compensated leg %.1f mm: %w", angleVerticalLegMM+reduction, ErrManufacturingLimit)
	}
	return Result{
		LimitedHeightMM:  maxHeight,
		ReductionMM:      reduction,
		AngleExtensionMM: reduction,
	}, nil
}
