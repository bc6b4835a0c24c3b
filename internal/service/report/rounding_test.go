package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/staffing-backend-go/internal/domain/report"
)

func TestRoundToSumSplitsLeftoverUnits(t *testing.T) {
	third := 1.0 / 3.0

	result, err := roundToSum([]float64{third, third, third}, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.34, 0.33, 0.33}, result)
}

func TestRoundToSumPreservesTotal(t *testing.T) {
	values := []float64{0.125, 0.255, 0.305, 0.315}

	result, err := roundToSum(values, 1, 2)
	require.NoError(t, err)

	sum := 0.0
	for _, v := range result {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestRoundToSumStaysWithinOneUnit(t *testing.T) {
	values := []float64{12.344, 7.891, 3.765}
	total := roundValue(12.344+7.891+3.765, 2)

	result, err := roundToSum(values, total, 2)
	require.NoError(t, err)

	for i, v := range result {
		assert.InDelta(t, values[i], v, 0.01+1e-9, "value %d drifted too far", i)
	}
}

func TestRoundToSumZeroPrecision(t *testing.T) {
	result, err := roundToSum([]float64{33.33, 33.33, 33.34}, 100, 0)
	require.NoError(t, err)

	sum := 0.0
	for _, v := range result {
		sum += v
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestRoundToSumRejectsInconsistentTotal(t *testing.T) {
	_, err := roundToSum([]float64{0.2, 0.2}, 1, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrInconsistentTotals)
}

func TestRoundToSumEmptyInput(t *testing.T) {
	result, err := roundToSum(nil, 0, 2)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRoundValue(t *testing.T) {
	assert.Equal(t, 2.68, roundValue(2.675, 2))
	assert.Equal(t, 0.86, roundValue(0.857142, 2))
	assert.Equal(t, 3.0, roundValue(3.0, 2))
}
