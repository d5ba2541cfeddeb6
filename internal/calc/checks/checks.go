// Package checks implements the structural verification chain for a bracket
// and angle candidate: moment, shear, angle deflection, drop below slab,
// bracket-to-angle connection, combined tension/shear and fixing capacity,
// run in that fixed order. Every check reports a utilization percentage;
// exactly 100 still passes.
//
// Arithmetic stays in full double precision; only final reported values are
// rounded, to 12 decimal places.
package checks

import (
	"math"

	"Corbel/internal/calc/extension"
	"Corbel/internal/calc/geometry"
	"Corbel/internal/capacity"
	"Corbel/internal/model"
)

// Material and partial-factor constants (stainless-pressed system, grade 8.8
// connection bolts).
const (
	YieldStrengthMPa  = 275.0
	ElasticModulusMPa = 200000.0
	RambergOsgoodN    = 8.0
	BoltUltimateMPa   = 800.0

	GammaM0 = 1.1  // member resistance
	GammaM2 = 1.25 // connections

	MaxAngleDeflectionMM  = 1.5 // SLS limit on the angle alone
	MaxSystemDeflectionMM = 2.0 // SLS limit on the whole system
)

// Check names, in chain order.
const (
	CheckMoment     = "moment"
	CheckShear      = "shear"
	CheckDeflection = "deflection"
	CheckDrop       = "drop-below-slab"
	CheckConnection = "connection"
	CheckCombined   = "combined-tension-shear"
	CheckFixing     = "fixing-capacity"
)

// Chain evaluates candidates against a capacity table. The table is
// read-only and the chain is safe for concurrent use.
type Chain struct {
	Table *capacity.Table
}

// Evaluate derives geometry for the candidate, applies the angle-extension
// compensator when an exclusion-zone ceiling is set, and runs all seven
// checks. A manufacturing-limit violation rejects the candidate via error;
// check failures are reported in the outcomes, not as errors.
func (c *Chain) Evaluate(in model.DesignInputs, p model.CandidateParameters) (model.CandidateEvaluation, error) {
	g := geometry.Derive(in, p)

	if in.MaxBracketExtensionMM > 0 {
		fix := p.FixingPositionMM
		if fix <= 0 {
			fix = geometry.DefaultFixingPositionMM
		}
		res, err := extension.Compensate(g.BracketHeightMM, in.MaxBracketExtensionMM, fix, p.VerticalLegMM)
		if err != nil {
			return model.CandidateEvaluation{}, err
		}
		if res.ReductionMM > 0 {
			p.VerticalLegMM += res.AngleExtensionMM
			g = geometry.Derive(in, p)
			g.BracketHeightMM = res.LimitedHeightMM
			g.BracketSectionModulus = p.BracketThicknessMM * res.LimitedHeightMM * res.LimitedHeightMM / 6
			rise := res.LimitedHeightMM - (fix + geometry.WorstCaseFixingPlayMM)
			if math.Abs(in.SupportLevelMM) > in.SlabThicknessMM-fix {
				rise = math.Min(rise, in.BottomCriticalEdgeMM)
			}
			g.RiseToBoltsMM = rise
			g.AngleExtendedByMM = res.AngleExtensionMM
		}
	}

	moment := MomentResistance(p, g)
	shear := ShearResistance(p, g)
	defl := AngleDeflection(p, g)
	drop := DropBelowSlab(in, p, g, defl.Detail["total_deflection_mm"])
	conn := Connection(p, g)
	combined := CombinedTensionShear(in, p, g)
	fixing := FixingCapacity(c.Table, in, p, g, combined.Detail["tensile_load_kn"])

	outcomes := []model.VerificationOutcome{moment, shear, defl, drop, conn, combined, fixing}
	all := true
	for _, o := range outcomes {
		if !o.Pass {
			all = false
		}
	}
	return model.CandidateEvaluation{
		Parameters:    p,
		Geometry:      g,
		Checks:        outcomes,
		AllChecksPass: all,
	}, nil
}

// round12 rounds a final reported value to 12 decimal places. Intermediate
// terms are never rounded.
func round12(v float64) float64 {
	return math.Round(v*1e12) / 1e12
}

func outcome(name string, utilization float64, pass bool, detail map[string]float64) model.VerificationOutcome {
	for k, v := range detail {
		detail[k] = round12(v)
	}
	return model.VerificationOutcome{
		Name:           name,
		UtilizationPct: round12(utilization),
		Pass:           pass,
		Detail:         detail,
	}
}
