package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Corbel/internal/model"
)

func TestClassifyBracketType_Boundary(t *testing.T) {
	assert.Equal(t, model.BracketStandard, ClassifyBracketType(-75))
	assert.Equal(t, model.BracketInverted, ClassifyBracketType(-74))
	assert.Equal(t, model.BracketStandard, ClassifyBracketType(-200))
	assert.Equal(t, model.BracketInverted, ClassifyBracketType(0))
}

func TestValidAngleOrientations(t *testing.T) {
	both := []model.AngleOrientation{model.AngleStandard, model.AngleInverted}

	assert.Equal(t, both, ValidAngleOrientations(0))
	assert.Equal(t, both, ValidAngleOrientations(-150))
	assert.Equal(t, both, ValidAngleOrientations(-175))
	assert.Equal(t, both, ValidAngleOrientations(-300))
	assert.Equal(t, []model.AngleOrientation{model.AngleStandard}, ValidAngleOrientations(-25))
	assert.Equal(t, []model.AngleOrientation{model.AngleStandard}, ValidAngleOrientations(-50))
	assert.Equal(t, []model.AngleOrientation{model.AngleInverted}, ValidAngleOrientations(-100))
	assert.Equal(t, []model.AngleOrientation{model.AngleInverted}, ValidAngleOrientations(-75))

	// Levels between the published bands are inadmissible.
	assert.Empty(t, ValidAngleOrientations(-10))
	assert.Empty(t, ValidAngleOrientations(-60))
	assert.Empty(t, ValidAngleOrientations(-140))
}

func TestFixingPositionSSLRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 35, 75, 112.5, 200} {
		assert.Equal(t, x, FixingPositionFromSSL(FixingPositionToSSL(x)))
	}
}

func TestMaxFixingPosition(t *testing.T) {
	// Bound by the bottom edge distance.
	assert.Equal(t, 125.0, MaxFixingPosition(200, 75, 50))
	// Bound by the perforation limit.
	assert.Equal(t, 110.0, MaxFixingPosition(200, 50, 90))
	// Never below the default.
	assert.Equal(t, DefaultFixingPositionMM, MaxFixingPosition(120, 75, 75))
}

func TestValidateFixingPosition(t *testing.T) {
	assert.NoError(t, ValidateFixingPosition(75, 200, 75))

	err := ValidateFixingPosition(0, 200, 75)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")

	err = ValidateFixingPosition(250, 200, 75)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds slab thickness")

	err = ValidateFixingPosition(150, 200, 75)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient bottom clearance")
}

func standardInputs() model.DesignInputs {
	return model.DesignInputs{
		SlabThicknessMM:       200,
		CavityMM:              100,
		SupportLevelMM:        -100,
		CharacteristicLoadKNM: 5,
		TopCriticalEdgeMM:     75,
		BottomCriticalEdgeMM:  75,
		ConcreteGradeMPa:      30,
	}
}

func TestBracketHeight(t *testing.T) {
	in := standardInputs()
	p := model.CandidateParameters{
		BracketType:      model.BracketStandard,
		AngleOrientation: model.AngleInverted,
		VerticalLegMM:    60,
	}
	// |supportLevel| - topEdge + fixing, plus the leg for the crossed pair.
	assert.Equal(t, 160.0, BracketHeight(in, p))

	p.AngleOrientation = model.AngleStandard
	p.BracketType = model.BracketStandard
	assert.Equal(t, 100.0, BracketHeight(in, p))
}

func TestBracketHeight_InvertedMinimum(t *testing.T) {
	in := standardInputs()
	in.SupportLevelMM = -30 // shallow level, inverted bracket

	p := model.CandidateParameters{
		BracketType:      model.BracketInverted,
		AngleOrientation: model.AngleStandard,
		VerticalLegMM:    60,
	}
	// Base height of 30 would leave a negative rise to bolts; the minimum
	// pressing height applies before the crossed-pair leg is added.
	assert.Equal(t, MinInvertedBracketHeightMM+60, BracketHeight(in, p))
}

func TestRiseToBolts(t *testing.T) {
	in := standardInputs()
	p := model.CandidateParameters{
		BracketType:      model.BracketStandard,
		AngleOrientation: model.AngleInverted,
		VerticalLegMM:    60,
	}
	assert.Equal(t, 70.0, RiseToBolts(in, p))
}

func TestRiseToBolts_ClampedBelowSlab(t *testing.T) {
	in := standardInputs()
	in.SupportLevelMM = -250 // projects below the soffit

	p := model.CandidateParameters{
		BracketType:      model.BracketStandard,
		AngleOrientation: model.AngleStandard,
		VerticalLegMM:    60,
	}
	assert.Equal(t, in.BottomCriticalEdgeMM, RiseToBolts(in, p))
}

func TestOptimalFixingPosition(t *testing.T) {
	in := standardInputs()
	in.SlabThicknessMM = 250
	in.SupportLevelMM = -200
	p := model.CandidateParameters{
		BracketType:      model.BracketStandard,
		AngleOrientation: model.AngleStandard,
		VerticalLegMM:    60,
	}

	cfg := model.FixingPositionConfig{
		Optimise:             true,
		StartPositionMM:      75,
		IncrementMM:          25,
		MaxPositionMM:        150,
		MinBottomClearanceMM: 75,
		MinBracketHeightMM:   70,
	}
	// Every step keeps the rise above 70 mm, so the deepest step wins.
	assert.Equal(t, 150.0, OptimalFixingPosition(cfg, in, p))

	// Nothing qualifies: fall back to the start position, never fail.
	cfg.MinBracketHeightMM = 500
	assert.Equal(t, 75.0, OptimalFixingPosition(cfg, in, p))

	// Optimization disabled.
	cfg.Optimise = false
	assert.Equal(t, 75.0, OptimalFixingPosition(cfg, in, p))
}

func TestHorizontalLeg(t *testing.T) {
	assert.Equal(t, 90.0, HorizontalLeg(120))
	assert.Equal(t, 80.0, HorizontalLeg(102.5))
}

func TestDerive(t *testing.T) {
	in := standardInputs()
	p := model.CandidateParameters{
		BracketCentresMM:   300,
		BracketThicknessMM: 4,
		AngleThicknessMM:   8,
		VerticalLegMM:      60,
		HorizontalLegMM:    90,
		BoltDiameterMM:     12,
		BracketType:        model.BracketStandard,
		AngleOrientation:   model.AngleInverted,
	}
	g := Derive(in, p)

	assert.Equal(t, 160.0, g.BracketHeightMM)
	assert.Equal(t, 70.0, g.RiseToBoltsMM)
	assert.Equal(t, 145.0, g.EccentricityMM)
	assert.Equal(t, 182.0, g.BracketProjectionMM)
	assert.Equal(t, 0.0, g.DropBelowSlabMM)
	assert.Equal(t, DefaultPlateWidthMM, g.PlateWidthMM)
	assert.InDelta(t, 2.025, g.AppliedShearKN, 1e-12)
	assert.InDelta(t, 0.3402, g.AppliedMomentKNM, 1e-12)
}
