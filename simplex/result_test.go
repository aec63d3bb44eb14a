package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestUpdateDensity verifies the exponential running average.
func TestUpdateDensity(t *testing.T) {
	var avg float64
	updateDensity(&avg, 5, 10)
	assert.Equal(t, 0.5, avg, "first observation seeds the average")

	updateDensity(&avg, 10, 10)
	assert.InDelta(t, densityDecay*0.5+(1-densityDecay), avg, 1e-15)

	prev := avg
	updateDensity(&avg, 0, 0)
	assert.Equal(t, prev, avg, "zero-length observations are ignored")
}

// TestStatus_String pins the diagnostic names.
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Optimal", StatusOptimal.String())
	assert.Equal(t, "Infeasible", StatusInfeasible.String())
	assert.Equal(t, "Unbounded", StatusUnbounded.String())
	assert.Equal(t, "ObjectiveBound", StatusObjectiveBound.String())
	assert.Equal(t, "IterationLimit", StatusIterationLimit.String())
	assert.Equal(t, "TimeLimit", StatusTimeLimit.String())
	assert.Equal(t, "NumericalFailure", StatusNumericalFailure.String())
	assert.Equal(t, "NotSet", StatusNotSet.String())
}

// TestStrategy_String pins the strategy names.
func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "choose", StrategyChoose.String())
	assert.Equal(t, "dual-plain", StrategyDualPlain.String())
	assert.Equal(t, "dual-tasks", StrategyDualTasks.String())
	assert.Equal(t, "dual-multi", StrategyDualMulti.String())
	assert.Equal(t, "primal", StrategyPrimal.String())
}
