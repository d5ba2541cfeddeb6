package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompensate_NoChange(t *testing.T) {
	res, err := Compensate(200, 150, 75, 60)
	require.NoError(t, err)
	assert.Equal(t, 200.0, res.LimitedHeightMM)
	assert.Zero(t, res.ReductionMM)
	assert.Zero(t, res.AngleExtensionMM)
}

func TestCompensate_OneToOne(t *testing.T) {
	res, err := Compensate(250, 150, 75, 60)
	require.NoError(t, err)
	assert.Equal(t, 225.0, res.LimitedHeightMM)
	assert.Equal(t, 25.0, res.ReductionMM)
	assert.Equal(t, 25.0, res.AngleExtensionMM)
}

func TestCompensate_ManufacturingLimit(t *testing.T) {
	// Reduction of 375 mm would push a 60 mm leg past the 400 mm ceiling.
	_, err := Compensate(500, 50, 75, 60)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrManufacturingLimit)
}
