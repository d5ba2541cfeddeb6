package checks

import (
	"testing"

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
		ConcreteGradeMPa:      30,
	}
}

func testCandidate() model.CandidateParameters {
	return model.CandidateParameters{
		BracketCentresMM:   300,
		BracketThicknessMM: 4,
		AngleThicknessMM:   8,
		VerticalLegMM:      60,
		HorizontalLegMM:    90,
		BoltDiameterMM:     12,
		BracketType:        model.BracketStandard,
		AngleOrientation:   model.AngleInverted,
		ChannelType:        "CPRO38",
	}
}

func TestSecantModulus(t *testing.T) {
	assert.Equal(t, ElasticModulusMPa, SecantModulus(0))
	// At yield: E / (1 + 0.002 E/fy)
	assert.InDelta(t, 81481.481481, SecantModulus(YieldStrengthMPa), 1e-5)
	// Low stress barely softens the modulus.
	assert.Greater(t, SecantModulus(50), 199000.0)
}

func TestCalculateTensileLoad_ZeroMoment(t *testing.T) {
	tl := CalculateTensileLoad(0, 90, 70, 30)
	assert.Zero(t, tl.LoadKN)
	assert.Zero(t, tl.CompressionZoneMM)
	assert.True(t, tl.MomentOK)
	assert.True(t, tl.ShearOK)
	assert.True(t, tl.DepthOK)
}

func TestCalculateTensileLoad_SmallerRoot(t *testing.T) {
	// a N² - 70 N + 3e5 = 0 with a = (2/3)/(20·90).
	tl := CalculateTensileLoad(0.3, 90, 70, 30)
	assert.InDelta(t, 4.38757, tl.LoadKN, 1e-4)
	assert.InDelta(t, 4.87508, tl.CompressionZoneMM, 1e-4)
	assert.True(t, tl.MomentOK)
	assert.True(t, tl.DepthOK)
}

func TestCalculateTensileLoad_NoEquilibrium(t *testing.T) {
	// Moment far beyond what the plate can balance: negative discriminant.
	tl := CalculateTensileLoad(50, 90, 70, 30)
	assert.False(t, tl.MomentOK)
	assert.Zero(t, tl.LoadKN)
}

func TestMomentResistance(t *testing.T) {
	p := testCandidate()
	g := model.DerivedGeometry{
		EccentricityMM:        145,
		AppliedShearKN:        2.025,
		BracketSectionModulus: 4 * 160 * 160 / 6.0,
	}
	o := MomentResistance(p, g)
	assert.True(t, o.Pass)
	// M = 2.025·168/1000, Mc = 0.0170667·250
	assert.InDelta(t, 7.97344, o.UtilizationPct, 1e-4)
	assert.InDelta(t, 168, o.Detail["lever_arm_mm"], 1e-12)
}

func TestShearResistance(t *testing.T) {
	p := testCandidate()
	g := model.DerivedGeometry{AppliedShearKN: 2.025}
	o := ShearResistance(p, g)
	assert.True(t, o.Pass)
	assert.InDelta(t, 2400, o.Detail["shear_area_mm2"], 1e-12)
	assert.InDelta(t, 346.410161514, o.Detail["shear_resistance_kn"], 1e-6)
}

func TestChain_FeasibleCandidatePassesAll(t *testing.T) {
	chain := Chain{Table: capacity.DefaultTable(nil)}
	ev, err := chain.Evaluate(testInputs(), testCandidate())
	require.NoError(t, err)

	require.Len(t, ev.Checks, 7)
	for _, c := range ev.Checks {
		assert.True(t, c.Pass, "check %s failed at %.2f%%", c.Name, c.UtilizationPct)
	}
	assert.True(t, ev.AllChecksPass)
	assert.Equal(t, 160.0, ev.Geometry.BracketHeightMM)
}

func TestChain_Deterministic(t *testing.T) {
	chain := Chain{Table: capacity.DefaultTable(nil)}
	a, err := chain.Evaluate(testInputs(), testCandidate())
	require.NoError(t, err)
	b, err := chain.Evaluate(testInputs(), testCandidate())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestChain_OverloadFails(t *testing.T) {
	in := testInputs()
	in.CharacteristicLoadKNM = 500
	chain := Chain{Table: capacity.DefaultTable(nil)}
	ev, err := chain.Evaluate(in, testCandidate())
	require.NoError(t, err)
	assert.False(t, ev.AllChecksPass)
}

func TestChain_AngleExtensionApplied(t *testing.T) {
	in := testInputs()
	in.MaxBracketExtensionMM = 60 // caps the 160 mm bracket at 75+60=135

	chain := Chain{Table: capacity.DefaultTable(nil)}
	ev, err := chain.Evaluate(in, testCandidate())
	require.NoError(t, err)

	assert.Equal(t, 135.0, ev.Geometry.BracketHeightMM)
	assert.Equal(t, 25.0, ev.Geometry.AngleExtendedByMM)
	// The leg picked up the reduction one to one.
	assert.Equal(t, 85.0, ev.Parameters.VerticalLegMM)
}

func TestFixingCapacity_DegradedLookupWarns(t *testing.T) {
	in := testInputs()
	in.SlabThicknessMM = 100 // thinner than any tabulated row

	chain := Chain{Table: capacity.DefaultTable(nil)}
	ev, err := chain.Evaluate(in, testCandidate())
	require.NoError(t, err)

	fixing := ev.Checks[6]
	assert.Equal(t, CheckFixing, fixing.Name)
	require.NotEmpty(t, fixing.Warnings)
	assert.Contains(t, fixing.Warnings[0], "degraded")
}

func TestFixingCapacity_MissingLookupFailsCheckOnly(t *testing.T) {
	p := testCandidate()
	p.ChannelType = "NOPE"
	chain := Chain{Table: capacity.DefaultTable(nil)}
	ev, err := chain.Evaluate(testInputs(), p)
	require.NoError(t, err)

	assert.False(t, ev.Checks[6].Pass)
	// Earlier checks are unaffected.
	assert.True(t, ev.Checks[0].Pass)
}

func TestFixingCapacity_SteelSection(t *testing.T) {
	p := testCandidate()
	p.ChannelType = ""
	p.SteelBoltSize = "M12"
	p.SteelFixingMethod = "boltnut"

	chain := Chain{Table: capacity.DefaultTable(nil)}
	ev, err := chain.Evaluate(testInputs(), p)
	require.NoError(t, err)
	assert.True(t, ev.Checks[6].Pass)
}
