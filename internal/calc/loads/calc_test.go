package loads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{
		DensityKGM3:       2000,
		FacadeThicknessMM: 102.5,
		SupportedHeightM:  3,
	})
	require.NoError(t, err)
	assert.InDelta(t, 6.03315, res.CharacteristicLoadKNM, 1e-9)
	assert.NotEmpty(t, res.Notes)
}

func TestCalculate_InvalidInput(t *testing.T) {
	cases := []Input{
		{DensityKGM3: 0, FacadeThicknessMM: 102.5, SupportedHeightM: 3},
		{DensityKGM3: 2000, FacadeThicknessMM: 0, SupportedHeightM: 3},
		{DensityKGM3: 2000, FacadeThicknessMM: 102.5, SupportedHeightM: -1},
	}
	for _, in := range cases {
		_, err := Calculate(in)
		assert.Error(t, err)
	}
}
