// Package geometry holds the pure classification and dimension rules for
// masonry support brackets: bracket type by support level, admissible angle
// orientations, bracket height, rise to bolts and fixing-position bounds.
package geometry

import (
	"fmt"
	"math"

	"Corbel/internal/model"
)

// Dimensional constants shared by the whole engine.
const (
	// DefaultFixingPositionMM is the standard fixing depth below the top of
	// slab when the caller gives no override.
	DefaultFixingPositionMM = 75.0

	// MinInvertedBracketHeightMM substitutes the base height formula when an
	// inverted bracket at a small support level would imply a negative rise
	// to bolts. The figure matches the supplier's shortest inverted pressing;
	// it is not derived from the height formula itself.
	// TODO: confirm 165 with the fixing supplier's technical team.
	MinInvertedBracketHeightMM = 165.0

	// WorstCaseFixingPlayMM is the vertical slot/serration tolerance consumed
	// between the fixing point and the top bolt.
	WorstCaseFixingPlayMM = 15.0

	// DefaultPlateWidthMM is the bracket back-plate width bearing on the
	// concrete when no Dim D width applies.
	DefaultPlateWidthMM = 90.0

	// MaxAngleLegMM is the manufacturing ceiling for a pressed angle leg.
	MaxAngleLegMM = 400.0

	// GammaFULS converts characteristic masonry line load to the ultimate
	// limit state.
	GammaFULS = 1.35
)

// ClassifyBracketType selects the bracket family from the support level
// (signed SSL offset). Exactly -75 is still Standard.
func ClassifyBracketType(supportLevelMM float64) model.BracketType {
	if supportLevelMM <= -75 {
		return model.BracketStandard
	}
	return model.BracketInverted
}

// ValidAngleOrientations returns the admissible angle orientations for a
// support level. Levels falling between the published bands have no valid
// combination and yield an empty slice.
func ValidAngleOrientations(supportLevelMM float64) []model.AngleOrientation {
	both := []model.AngleOrientation{model.AngleStandard, model.AngleInverted}
	switch {
	case supportLevelMM >= 0:
		return both
	case supportLevelMM >= -50 && supportLevelMM <= -25:
		return []model.AngleOrientation{model.AngleStandard}
	case supportLevelMM >= -135 && supportLevelMM <= -75:
		return []model.AngleOrientation{model.AngleInverted}
	case supportLevelMM >= -175 && supportLevelMM <= -150:
		return both
	case supportLevelMM < -175:
		return both
	default:
		return nil
	}
}

// Admissible reports whether a (bracket type, angle orientation) pair may be
// evaluated at the given support level.
func Admissible(bt model.BracketType, ao model.AngleOrientation, supportLevelMM float64) bool {
	if ClassifyBracketType(supportLevelMM) != bt {
		return false
	}
	for _, o := range ValidAngleOrientations(supportLevelMM) {
		if o == ao {
			return true
		}
	}
	return false
}

// BracketHeight computes the bracket pressing height.
//
// Base formula: |supportLevel| - topCriticalEdge + fixingPosition. Crossed
// type/orientation pairs (standard bracket with inverted angle or the
// reverse) carry the angle's vertical leg on the bracket. An inverted
// bracket whose base height would leave a negative rise to bolts takes the
// minimum pressing height instead, before the orientation adjustment.
func BracketHeight(in model.DesignInputs, p model.CandidateParameters) float64 {
	fix := fixingPositionOf(p)
	h := math.Abs(in.SupportLevelMM) - in.TopCriticalEdgeMM + fix

	if p.BracketType == model.BracketInverted {
		if h-(fix+WorstCaseFixingPlayMM) < 0 {
			h = MinInvertedBracketHeightMM
		}
	}
	if crossed(p.BracketType, p.AngleOrientation) {
		h += p.VerticalLegMM
	}
	return h
}

func crossed(bt model.BracketType, ao model.AngleOrientation) bool {
	return (bt == model.BracketStandard && ao == model.AngleInverted) ||
		(bt == model.BracketInverted && ao == model.AngleStandard)
}

// RiseToBolts is the vertical distance available to the bolt group below the
// fixing point. When the bracket projects below the slab the rise is capped
// by the bottom critical edge.
func RiseToBolts(in model.DesignInputs, p model.CandidateParameters) float64 {
	fix := fixingPositionOf(p)
	rise := BracketHeight(in, p) - (fix + WorstCaseFixingPlayMM)
	if math.Abs(in.SupportLevelMM) > in.SlabThicknessMM-fix {
		rise = math.Min(rise, in.BottomCriticalEdgeMM)
	}
	return rise
}

func fixingPositionOf(p model.CandidateParameters) float64 {
	if p.FixingPositionMM > 0 {
		return p.FixingPositionMM
	}
	return DefaultFixingPositionMM
}

// FixingPositionToSSL converts a depth below the top of slab to a signed SSL
// offset; FixingPositionFromSSL is its inverse.
func FixingPositionToSSL(depthMM float64) float64 { return -depthMM }

func FixingPositionFromSSL(sslMM float64) float64 { return -sslMM }

// MaxFixingPosition bounds how deep a fixing may sit in the slab given the
// bottom edge distance and the perforation limit of the deck.
func MaxFixingPosition(slabMM, bottomEdgeMM, perfLimitMM float64) float64 {
	return math.Max(DefaultFixingPositionMM,
		math.Min(slabMM-bottomEdgeMM, slabMM-perfLimitMM))
}

// ValidateFixingPosition checks a caller-supplied fixing depth.
func ValidateFixingPosition(positionMM, slabMM, bottomEdgeMM float64) error {
	if positionMM <= 0 {
		return fmt.Errorf("fixing position must be positive, got %.1f", positionMM)
	}
	if positionMM > slabMM {
		return fmt.Errorf("fixing position %.1f exceeds slab thickness %.1f", positionMM, slabMM)
	}
	if slabMM-positionMM < bottomEdgeMM {
		return fmt.Errorf("fixing position %.1f leaves insufficient bottom clearance (need %.1f)", positionMM, bottomEdgeMM)
	}
	return nil
}

// OptimalFixingPosition walks the fixing deeper from the configured start in
// increments and returns the deepest depth that still keeps the rise to
// bolts at or above the configured minimum. It never fails: when no deeper
// step qualifies the start position is returned unchanged.
func OptimalFixingPosition(cfg model.FixingPositionConfig, in model.DesignInputs, p model.CandidateParameters) float64 {
	start := cfg.StartPositionMM
	if start <= 0 {
		start = DefaultFixingPositionMM
	}
	if !cfg.Optimise {
		return start
	}
	step := cfg.IncrementMM
	if step <= 0 {
		step = 5
	}
	maxPos := cfg.MaxPositionMM
	if maxPos <= 0 {
		maxPos = MaxFixingPosition(in.SlabThicknessMM, in.BottomCriticalEdgeMM, cfg.MinBottomClearanceMM)
	}
	limit := math.Min(maxPos, in.SlabThicknessMM-cfg.MinBottomClearanceMM)

	best := start
	found := false
	for pos := start; pos <= limit; pos += step {
		trial := p
		trial.FixingPositionMM = pos
		if RiseToBolts(in, trial) >= cfg.MinBracketHeightMM {
			best = pos
			found = true
		}
	}
	if !found {
		return start
	}
	return best
}

// Derive computes the full geometry record for a candidate. It applies no
// structural judgement; the verification chain consumes the result.
func Derive(in model.DesignInputs, p model.CandidateParameters) model.DerivedGeometry {
	height := BracketHeight(in, p)
	projection := in.CavityMM + p.HorizontalLegMM - p.AngleThicknessMM
	projAtFixing := projection - in.NotchDepthMM
	ecc := in.CavityMM + p.HorizontalLegMM/2

	plateWidth := DefaultPlateWidthMM
	if p.DimDWidthMM > 0 {
		plateWidth = p.DimDWidthMM
	}

	shear := in.CharacteristicLoadKNM * GammaFULS * p.BracketCentresMM / 1000
	leverArm := ecc + WorstCaseFixingPlayMM + p.AngleThicknessMM
	moment := shear * leverArm / 1000

	return model.DerivedGeometry{
		BracketHeightMM:       height,
		BracketProjectionMM:   projection,
		ProjectionAtFixingMM:  projAtFixing,
		RiseToBoltsMM:         RiseToBolts(in, p),
		EccentricityMM:        ecc,
		DropBelowSlabMM:       math.Max(0, math.Abs(in.SupportLevelMM)-in.SlabThicknessMM),
		NotchHeightMM:         in.NotchHeightMM,
		PlateWidthMM:          plateWidth,
		BracketSectionModulus: p.BracketThicknessMM * height * height / 6,
		AngleSectionModulus:   p.BracketCentresMM * p.AngleThicknessMM * p.AngleThicknessMM / 6,
		AppliedShearKN:        shear,
		AppliedMomentKNM:      moment,
	}
}

// HorizontalLeg sizes the angle's horizontal leg from the facade thickness:
// two thirds bearing plus a 10 mm shim allowance, rounded up to 5 mm.
func HorizontalLeg(facadeThicknessMM float64) float64 {
	leg := 2*facadeThicknessMM/3 + 10
	return math.Ceil(leg/5) * 5
}
