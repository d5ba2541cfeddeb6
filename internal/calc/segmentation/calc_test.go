package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimise_ExactTiling(t *testing.T) {
	res, err := Optimise(Input{RunLengthMM: 6000, BracketCentresMM: 300})
	require.NoError(t, err)

	require.Len(t, res.Pieces, 4)
	for _, p := range res.Pieces {
		assert.Equal(t, 1500.0, p.LengthMM)
		assert.True(t, p.Standard)
		assert.Equal(t, []float64{150, 450, 750, 1050, 1350}, p.BracketOffsetsMM)
	}
	assert.Equal(t, 20, res.TotalBrackets)
	assert.Equal(t, 1, res.DistinctLengths)
}

func TestOptimise_CustomRemainder(t *testing.T) {
	res, err := Optimise(Input{RunLengthMM: 6400, BracketCentresMM: 300})
	require.NoError(t, err)

	require.Len(t, res.Pieces, 5)
	last := res.Pieces[4]
	assert.Equal(t, 400.0, last.LengthMM)
	assert.False(t, last.Standard)
	assert.Equal(t, []float64{50, 350}, last.BracketOffsetsMM)
	assert.Equal(t, 22, res.TotalBrackets)
	assert.Equal(t, 2, res.DistinctLengths)
}

func TestOptimise_ShortRemainderResplit(t *testing.T) {
	// A 100 mm stub would be unusable; the last standard piece and the stub
	// become two 800 mm customs instead.
	res, err := Optimise(Input{RunLengthMM: 6100, BracketCentresMM: 300})
	require.NoError(t, err)

	require.Len(t, res.Pieces, 5)
	assert.Equal(t, 800.0, res.Pieces[3].LengthMM)
	assert.Equal(t, 800.0, res.Pieces[4].LengthMM)
	assert.False(t, res.Pieces[3].Standard)
	assert.Equal(t, []float64{100, 400, 700}, res.Pieces[3].BracketOffsetsMM)
	assert.Equal(t, 21, res.TotalBrackets)
	assert.Equal(t, 2, res.DistinctLengths)

	total := 0.0
	for _, p := range res.Pieces {
		total += p.LengthMM
	}
	assert.Equal(t, 6100.0, total)
}

func TestOptimise_ShortRun(t *testing.T) {
	// Over 150 mm means two brackets even when one bay would do; the end
	// offsets compress to the 35 mm minimum.
	res, err := Optimise(Input{RunLengthMM: 200, BracketCentresMM: 300})
	require.NoError(t, err)

	require.Len(t, res.Pieces, 1)
	assert.False(t, res.Pieces[0].Standard)
	assert.Equal(t, []float64{35, 165}, res.Pieces[0].BracketOffsetsMM)
	assert.Equal(t, 2, res.TotalBrackets)
}

func TestOptimise_TinyRunSingleBracket(t *testing.T) {
	res, err := Optimise(Input{RunLengthMM: 140, BracketCentresMM: 300})
	require.NoError(t, err)
	assert.Equal(t, []float64{70}, res.Pieces[0].BracketOffsetsMM)
	assert.Equal(t, 1, res.TotalBrackets)
}

func TestOptimise_MaxPieceLengthCap(t *testing.T) {
	res, err := Optimise(Input{RunLengthMM: 6000, BracketCentresMM: 300, MaxPieceLengthMM: 1000})
	require.NoError(t, err)

	// The cap trims the standard piece to three whole bays.
	require.Len(t, res.Pieces, 7)
	assert.Equal(t, 900.0, res.Pieces[0].LengthMM)
	assert.True(t, res.Pieces[0].Standard)
	assert.Equal(t, 600.0, res.Pieces[6].LengthMM)
	assert.Equal(t, 20, res.TotalBrackets)
	assert.Equal(t, 2, res.DistinctLengths)
}

func TestOptimise_UnstockedCentres(t *testing.T) {
	// 275 mm centres are not stocked; five bays become the standard piece.
	res, err := Optimise(Input{RunLengthMM: 1375, BracketCentresMM: 275})
	require.NoError(t, err)

	require.Len(t, res.Pieces, 1)
	assert.Equal(t, 1375.0, res.Pieces[0].LengthMM)
	assert.True(t, res.Pieces[0].Standard)
	assert.Len(t, res.Pieces[0].BracketOffsetsMM, 5)
}

func TestOptimise_SpacingNeverExceedsCentres(t *testing.T) {
	res, err := Optimise(Input{RunLengthMM: 7321, BracketCentresMM: 450})
	require.NoError(t, err)

	for _, p := range res.Pieces {
		offs := p.BracketOffsetsMM
		require.NotEmpty(t, offs)
		assert.GreaterOrEqual(t, offs[0], MinEndOffsetMM)
		assert.GreaterOrEqual(t, p.LengthMM-offs[len(offs)-1], MinEndOffsetMM)
		for i := 1; i < len(offs); i++ {
			assert.LessOrEqual(t, offs[i]-offs[i-1], 450.0+1e-9)
		}
	}
}

func TestOptimise_InvalidInput(t *testing.T) {
	_, err := Optimise(Input{RunLengthMM: 0, BracketCentresMM: 300})
	assert.Error(t, err)

	_, err = Optimise(Input{RunLengthMM: 1000, BracketCentresMM: 0})
	assert.Error(t, err)

	_, err = Optimise(Input{RunLengthMM: 1000, BracketCentresMM: 300, MaxPieceLengthMM: 200})
	assert.Error(t, err)
}
