package checks

import (
	"math"

	"Corbel/internal/calc/geometry"
	"Corbel/internal/model"
)

// SecantModulus solves the stainless-steel stress-strain curve with the
// Ramberg-Osgood closed form: E / (1 + 0.002 (E/σ) (σ/fy)^n).
func SecantModulus(stressMPa float64) float64 {
	if stressMPa <= 0 {
		return ElasticModulusMPa
	}
	e := ElasticModulusMPa
	return e / (1 + 0.002*(e/stressMPa)*math.Pow(stressMPa/YieldStrengthMPa, RambergOsgoodN))
}

// AngleDeflection is the SLS check on the angle: tip deflection of the
// horizontal leg plus the heel deflection from heel rotation, computed with
// characteristic (unfactored) actions and the secant modulus at the working
// stress.
func AngleDeflection(p model.CandidateParameters, g model.DerivedGeometry) model.VerificationOutcome {
	vk := g.AppliedShearKN / geometry.GammaFULS   // kN characteristic
	mk := g.AppliedMomentKNM / geometry.GammaFULS // kNm characteristic

	stress := 0.0
	if g.AngleSectionModulus > 0 {
		stress = mk * 1e6 / g.AngleSectionModulus
	}
	es := SecantModulus(stress)
	iAngle := p.BracketCentresMM * math.Pow(p.AngleThicknessMM, 3) / 12

	tip, rotation, heel := 0.0, 0.0, 0.0
	if es > 0 && iAngle > 0 {
		// Cantilevered horizontal leg: δ = F b³ / (3 E I)
		tip = vk * 1000 * math.Pow(p.HorizontalLegMM, 3) / (3 * es * iAngle)
		// Heel rotation from the vertical leg: θ = M L / (E I)
		rotation = mk * 1e6 * p.VerticalLegMM / (es * iAngle)
		heel = rotation * p.HorizontalLegMM
	}
	total := tip + heel

	util := total / MaxAngleDeflectionMM * 100
	return outcome(CheckDeflection, util, util <= 100, map[string]float64{
		"working_stress_mpa":  stress,
		"secant_modulus_mpa":  es,
		"tip_deflection_mm":   tip,
		"heel_rotation_rad":   rotation,
		"heel_deflection_mm":  heel,
		"total_deflection_mm": total,
	})
}

// DropBelowSlab adds the lateral deflection of the bracket leg hanging below
// the slab soffit (or across a notch) to the vertical angle deflection. The
// effective drop is the worse of soffit drop and notch height; zero drop
// contributes nothing.
func DropBelowSlab(in model.DesignInputs, p model.CandidateParameters, g model.DerivedGeometry, verticalMM float64) model.VerificationOutcome {
	pEff := math.Max(g.DropBelowSlabMM, in.NotchHeightMM)

	lateral := 0.0
	if pEff > 0 {
		// Cantilever below the fixing: δ = V pEff³ / (3 E I)
		iBracket := g.PlateWidthMM * math.Pow(p.BracketThicknessMM, 3) / 12
		if iBracket > 0 {
			lateral = g.AppliedShearKN * 1000 * math.Pow(pEff, 3) / (3 * ElasticModulusMPa * iBracket)
		}
	}

	// Angle spanning between brackets, characteristic UDL.
	span := 0.0
	iAngle := p.BracketCentresMM * math.Pow(p.AngleThicknessMM, 3) / 12
	if iAngle > 0 {
		w := in.CharacteristicLoadKNM // kN/m == N/mm
		span = 5 * w * math.Pow(p.BracketCentresMM, 4) / (384 * ElasticModulusMPa * iAngle)
	}

	total := verticalMM + lateral + span
	util := total / MaxSystemDeflectionMM * 100
	return outcome(CheckDrop, util, util <= 100, map[string]float64{
		"effective_drop_mm":     pEff,
		"lateral_deflection_mm": lateral,
		"span_deflection_mm":    span,
		"system_deflection_mm":  total,
	})
}
