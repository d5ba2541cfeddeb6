package checks

import (
	"math"

	"Corbel/internal/model"
)

// TensileLoad is the fixing tension solved from moment equilibrium of the
// bracket back-plate bearing on concrete.
type TensileLoad struct {
	LoadKN            float64
	CompressionZoneMM float64
	MomentOK          bool
	ShearOK           bool
	DepthOK           bool
}

// CalculateTensileLoad solves a N² + b N + c = 0 with
// a = (2/3)/(σc·b_plate), b = -riseToBolts, c = M (as force·length), taking
// the smaller positive root. σc is the concrete design stress grade/1.5.
// Zero or negative moment yields zero tension with all equilibria satisfied.
func CalculateTensileLoad(momentKNM, plateWidthMM, riseToBoltsMM, concreteGradeMPa float64) TensileLoad {
	if momentKNM <= 0 {
		return TensileLoad{MomentOK: true, ShearOK: true, DepthOK: true}
	}
	sigma := concreteGradeMPa / 1.5
	if sigma <= 0 || plateWidthMM <= 0 || riseToBoltsMM <= 0 {
		return TensileLoad{}
	}

	a := (2.0 / 3.0) / (sigma * plateWidthMM)
	b := -riseToBoltsMM
	c := momentKNM * 1e6 // N·mm

	disc := b*b - 4*a*c
	if disc < 0 {
		// No equilibrium inside the plate; moment cannot be balanced.
		return TensileLoad{ShearOK: true}
	}
	n := (-b - math.Sqrt(disc)) / (2 * a) // Newtons
	x := 2 * n / (sigma * plateWidthMM)

	// Verify the solved root numerically: M = N(d - x/3).
	resisting := n * (riseToBoltsMM - x/3)
	tol := 1e-6 * math.Max(1, c)

	return TensileLoad{
		LoadKN:            n / 1000,
		CompressionZoneMM: x,
		MomentOK:          math.Abs(resisting-c) <= tol,
		ShearOK:           true, // shear equilibrium checked against the bolt below
		DepthOK:           x <= riseToBoltsMM,
	}
}

// CombinedTensionShear folds the solved fixing tension with the applied
// shear through the (N/NRd)^1.5 + (V/VRd)^1.5 interaction, and carries the
// three equilibrium sub-checks. All three must hold for the check to pass.
func CombinedTensionShear(in model.DesignInputs, p model.CandidateParameters, g model.DerivedGeometry) model.VerificationOutcome {
	tl := CalculateTensileLoad(g.AppliedMomentKNM, g.PlateWidthMM, g.RiseToBoltsMM, in.ConcreteGradeMPa)

	aBolt := math.Pi * p.BoltDiameterMM * p.BoltDiameterMM / 4
	vRd := 0.6 * BoltUltimateMPa * aBolt / GammaM2 / 1000 // kN
	ntRd := 0.9 * BoltUltimateMPa * aBolt / GammaM2 / 1000

	shearOK := tl.ShearOK && g.AppliedShearKN <= vRd

	util := math.Inf(1)
	if vRd > 0 && ntRd > 0 {
		util = (math.Pow(tl.LoadKN/ntRd, 1.5) + math.Pow(g.AppliedShearKN/vRd, 1.5)) * 100
	}
	pass := tl.MomentOK && shearOK && tl.DepthOK && util <= 100

	depthOK := 0.0
	if tl.DepthOK {
		depthOK = 1
	}
	momentOK := 0.0
	if tl.MomentOK {
		momentOK = 1
	}
	shearOKv := 0.0
	if shearOK {
		shearOKv = 1
	}
	return outcome(CheckCombined, util, pass, map[string]float64{
		"tensile_load_kn":     tl.LoadKN,
		"compression_zone_mm": tl.CompressionZoneMM,
		"moment_equilibrium":  momentOK,
		"shear_equilibrium":   shearOKv,
		"depth_ok":            depthOK,
	})
}
