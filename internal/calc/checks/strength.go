package checks

import (
	"math"

	"Corbel/internal/calc/geometry"
	"Corbel/internal/model"
)

// MomentResistance is the ULS bending check on the bracket at the fixing.
// Lever arm L1 = eccentricity + fixing offset + angle thickness.
func MomentResistance(p model.CandidateParameters, g model.DerivedGeometry) model.VerificationOutcome {
	l1 := g.EccentricityMM + geometry.WorstCaseFixingPlayMM + p.AngleThicknessMM
	m := g.AppliedShearKN * l1 / 1000 // kNm
	mc := (g.BracketSectionModulus / 1e6) * (YieldStrengthMPa / GammaM0)

	util := math.Inf(1)
	if mc > 0 {
		util = m / mc * 100
	}
	return outcome(CheckMoment, util, util <= 100, map[string]float64{
		"lever_arm_mm":          l1,
		"applied_moment_knm":    m,
		"moment_resistance_knm": mc,
	})
}

// ShearResistance is the ULS shear check on the angle section over one
// bracket's tributary length. Vr = A * (fy/√3) / γM0.
func ShearResistance(p model.CandidateParameters, g model.DerivedGeometry) model.VerificationOutcome {
	area := p.BracketCentresMM * p.AngleThicknessMM
	vr := area * (YieldStrengthMPa / math.Sqrt(3)) / GammaM0 / 1000 // kN

	util := math.Inf(1)
	if vr > 0 {
		util = g.AppliedShearKN / vr * 100
	}
	return outcome(CheckShear, util, util <= 100, map[string]float64{
		"shear_area_mm2":      area,
		"applied_shear_kn":    g.AppliedShearKN,
		"shear_resistance_kn": vr,
	})
}

// Connection checks the bracket-to-angle bolt under simultaneous shear and
// the prying tension induced by the load eccentricity.
func Connection(p model.CandidateParameters, g model.DerivedGeometry) model.VerificationOutcome {
	aBolt := math.Pi * p.BoltDiameterMM * p.BoltDiameterMM / 4
	vRd := 0.6 * BoltUltimateMPa * aBolt / GammaM2 / 1000 // kN
	ftRd := 0.9 * BoltUltimateMPa * aBolt / GammaM2 / 1000

	fv := g.AppliedShearKN
	mConn := fv * g.EccentricityMM / 1000 // kNm at the heel
	lever := 0.8 * p.VerticalLegMM        // internal lever arm of the bolt group
	ft := 0.0
	if lever > 0 {
		ft = mConn * 1000 / lever
	}

	// EC3 table 3.4 interaction: Fv/FvRd + Ft/(1.4 FtRd) <= 1.0
	util := math.Inf(1)
	if vRd > 0 && ftRd > 0 {
		util = (fv/vRd + ft/(1.4*ftRd)) * 100
	}
	return outcome(CheckConnection, util, util <= 100, map[string]float64{
		"bolt_area_mm2":         aBolt,
		"bolt_shear_kn":         fv,
		"bolt_tension_kn":       ft,
		"shear_resistance_kn":   vRd,
		"tension_resistance_kn": ftRd,
	})
}
