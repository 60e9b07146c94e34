package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	easing "github.com/tphakala/go-easing"
)

func TestPlotRow(t *testing.T) {
	row := []rune(plotRow(0))
	zero := indexOf(row, plotMarker)
	assert.GreaterOrEqual(t, zero, 0)

	one := indexOf([]rune(plotRow(1)), plotMarker)
	assert.Greater(t, one, zero)

	half := indexOf([]rune(plotRow(0.5)), plotMarker)
	assert.Greater(t, half, zero)
	assert.Less(t, half, one)
}

func TestPlotRow_PinsOutOfRange(t *testing.T) {
	low := []rune(plotRow(-5))
	high := []rune(plotRow(5))
	assert.Equal(t, plotMarker, low[0])
	assert.Equal(t, plotMarker, high[len(high)-1])
	assert.Len(t, low, len(high))
}

func TestPrecisionName(t *testing.T) {
	assert.Equal(t, "float64", precisionName(easing.PrecisionFloat64))
	assert.Equal(t, "float32", precisionName(easing.PrecisionFloat32))
}

func indexOf(row []rune, r rune) int {
	for i, c := range row {
		if c == r {
			return i
		}
	}
	return -1
}
