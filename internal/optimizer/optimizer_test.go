package optimizer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Corbel/internal/capacity"
	"Corbel/internal/model"
)

func testInputs() model.DesignInputs {
	return model.DesignInputs{
		SlabThicknessMM:       200,
		CavityMM:              100,
		SupportLevelMM:        -100,
		CharacteristicLoadKNM: 5,
		TopCriticalEdgeMM:     75,
		BottomCriticalEdgeMM:  75,
		FacadeThicknessMM:     120,
	}
}

func newTestEngine() *Engine {
	return New(capacity.DefaultTable(nil), nil)
}

func TestOptimise_FindsFeasibleDesign(t *testing.T) {
	engine := newTestEngine()
	res, err := engine.Optimise(context.Background(), testInputs(), Config{})
	require.NoError(t, err)

	require.Equal(t, model.StatusSuccess, res.Status)
	require.NotNil(t, res.Best)
	assert.True(t, res.Best.AllChecksPass)
	assert.Greater(t, res.Best.WeightKGM, 0.0)
	assert.Equal(t, res.Total, res.Checked)

	// Support level -100 admits only the standard bracket with an inverted
	// angle.
	assert.Equal(t, model.BracketStandard, res.Best.Parameters.BracketType)
	assert.Equal(t, model.AngleInverted, res.Best.Parameters.AngleOrientation)
}

func TestOptimise_BestIsLightest(t *testing.T) {
	engine := newTestEngine()
	res, err := engine.Optimise(context.Background(), testInputs(), Config{})
	require.NoError(t, err)
	require.NotNil(t, res.Best)

	prev := res.Best.WeightKGM
	for _, alt := range res.Alternatives {
		assert.True(t, alt.AllChecksPass)
		assert.GreaterOrEqual(t, alt.WeightKGM, prev)
		prev = alt.WeightKGM
	}
	assert.LessOrEqual(t, len(res.Alternatives), 5)
}

func TestOptimise_Idempotent(t *testing.T) {
	engine := newTestEngine()
	a, err := engine.Optimise(context.Background(), testInputs(), Config{})
	require.NoError(t, err)
	b, err := engine.Optimise(context.Background(), testInputs(), Config{})
	require.NoError(t, err)

	require.NotNil(t, a.Best)
	assert.Equal(t, a.Best, b.Best)
	assert.Equal(t, a.Alternatives, b.Alternatives)
}

func TestOptimise_NoFeasibleDesignIsAStatus(t *testing.T) {
	in := testInputs()
	in.CharacteristicLoadKNM = 500 // far beyond any tabulated capacity

	engine := newTestEngine()
	res, err := engine.Optimise(context.Background(), in, Config{})
	require.NoError(t, err)
	assert.Equal(t, model.StatusNoDesign, res.Status)
	assert.Nil(t, res.Best)
	assert.Empty(t, res.Alternatives)
}

func TestOptimise_CancellationIsAnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := newTestEngine()
	_, err := engine.Optimise(ctx, testInputs(), Config{})
	assert.ErrorIs(t, err, ErrTimedOut)
}

func TestOptimise_InadmissibleSupportLevel(t *testing.T) {
	in := testInputs()
	in.SupportLevelMM = -60 // between the published bands

	engine := newTestEngine()
	_, err := engine.Optimise(context.Background(), in, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid bracket/angle combination")
}

func TestOptimise_CombinationCap(t *testing.T) {
	engine := newTestEngine()
	_, err := engine.Optimise(context.Background(), testInputs(), Config{MaxCombinations: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the configured cap")
}

func TestOptimise_ProgressNeverBlocks(t *testing.T) {
	// An unbuffered channel nobody reads must not stall the search.
	prog := make(chan model.Progress)
	engine := newTestEngine()
	res, err := engine.Optimise(context.Background(), testInputs(), Config{
		Progress:         prog,
		ProgressInterval: time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, res.Status)
}

func TestOptimise_SteelSectionRestriction(t *testing.T) {
	in := testInputs()
	in.FixingRestriction = model.FixingSteelSection

	engine := newTestEngine()
	res, err := engine.Optimise(context.Background(), in, Config{})
	require.NoError(t, err)
	require.NotNil(t, res.Best)
	assert.NotEmpty(t, res.Best.Parameters.SteelBoltSize)
	assert.Empty(t, res.Best.Parameters.ChannelType)
}

func TestOptimise_PostFixRestriction(t *testing.T) {
	in := testInputs()
	in.FixingRestriction = model.FixingPostFix

	engine := newTestEngine()
	res, err := engine.Optimise(context.Background(), in, Config{})
	require.NoError(t, err)
	require.NotNil(t, res.Best)
	assert.Equal(t, "R28", res.Best.Parameters.ChannelType)
}

func TestOptimise_FixingPositionSubSearch(t *testing.T) {
	in := testInputs()
	in.SlabThicknessMM = 250
	in.FixingPosition = &model.FixingPositionConfig{
		Optimise:             true,
		StartPositionMM:      75,
		IncrementMM:          25,
		MaxPositionMM:        125,
		MinBottomClearanceMM: 75,
		MinBracketHeightMM:   50,
	}

	engine := newTestEngine()
	res, err := engine.Optimise(context.Background(), in, Config{})
	require.NoError(t, err)
	require.NotNil(t, res.Best)
	assert.Equal(t, 125.0, res.Best.Parameters.FixingPositionMM)
}

func TestWeight_MonotonicInThickness(t *testing.T) {
	p := model.CandidateParameters{
		BracketCentresMM:   300,
		BracketThicknessMM: 4,
		AngleThicknessMM:   6,
		VerticalLegMM:      60,
		HorizontalLegMM:    90,
	}
	g := model.DerivedGeometry{
		BracketHeightMM:     160,
		BracketProjectionMM: 184,
		PlateWidthMM:        90,
	}
	w1 := Weight(p, g)
	p.AngleThicknessMM = 8
	w2 := Weight(p, g)
	assert.Greater(t, w2, w1)
	assert.Greater(t, w1, 0.0)
}

func TestValidate(t *testing.T) {
	in := testInputs()
	in.SlabThicknessMM = 0
	assert.Error(t, validate(withDefaults(in)))

	in = testInputs()
	in.CharacteristicLoadKNM = 0
	assert.Error(t, validate(withDefaults(in)))

	in = testInputs()
	in.FixingPosition = &model.FixingPositionConfig{StartPositionMM: 300}
	assert.Error(t, validate(withDefaults(in)))

	assert.NoError(t, validate(withDefaults(testInputs())))
}
