package simplex

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDefaultOptions pins the production defaults.
func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, StrategyChoose, o.Strategy)
	assert.Equal(t, WeightSteepestEdge, o.EdgeWeight)
	assert.Equal(t, DefaultIterationLimit, o.IterationLimit)
	assert.Equal(t, DefaultObjectiveBound, o.ObjectiveBound)
	assert.Equal(t, DefaultPrimalFeasTol, o.PrimalFeasTol)
	assert.Equal(t, DefaultDualFeasTol, o.DualFeasTol)
	assert.True(t, o.PerturbCosts)
	assert.True(t, o.UseWarmStart)
	assert.Equal(t, ScaleEquilibration, o.Scale)
	assert.NoError(t, o.validate())
}

// TestOptions_Validate covers each rejected field.
func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"negative iteration limit", func(o *Options) { o.IterationLimit = -1 }},
		{"negative time limit", func(o *Options) { o.TimeLimit = -time.Second }},
		{"zero primal tolerance", func(o *Options) { o.PrimalFeasTol = 0 }},
		{"NaN dual tolerance", func(o *Options) { o.DualFeasTol = math.NaN() }},
		{"NaN objective bound", func(o *Options) { o.ObjectiveBound = math.NaN() }},
		{"negative workers", func(o *Options) { o.MaxWorkers = -2 }},
		{"unknown strategy", func(o *Options) { o.Strategy = Strategy(42) }},
	}
	for _, tc := range cases {
		o := DefaultOptions()
		tc.mutate(&o)
		assert.ErrorIs(t, o.validate(), ErrBadOptions, tc.name)
	}
}

// TestOptions_Workers pins the pool sizing per strategy.
func TestOptions_Workers(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 1, o.workers(), "choose stays serial")

	o.Strategy = StrategyDualTasks
	assert.Equal(t, 2, o.workers(), "tasks uses a pair")

	o.Strategy = StrategyDualMulti
	assert.LessOrEqual(t, o.workers(), DefaultMaxWorkers, "multi is capped")
	assert.GreaterOrEqual(t, o.workers(), 1)

	o.MaxWorkers = 3
	assert.Equal(t, 3, o.workers(), "an explicit cap wins")
}

// TestOptions_RefactorInterval covers the default fallback.
func TestOptions_RefactorInterval(t *testing.T) {
	o := DefaultOptions()
	o.RefactorInterval = 0
	assert.Equal(t, DefaultRefactorInterval, o.refactorInterval())
	o.RefactorInterval = 7
	assert.Equal(t, 7, o.refactorInterval())
}
