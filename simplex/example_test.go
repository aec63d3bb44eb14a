package simplex_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsolve/lp"
	"github.com/katalvlaran/lvlsolve/simplex"
)

// ExampleSolve solves a small production-mix model:
// maximize 8x₀ + 10x₁ subject to x₀+x₁ ≤ 80 and 2x₀+4x₁ ≤ 120.
func ExampleSolve() {
	model := &lp.Lp{
		NumCol:   2,
		NumRow:   2,
		AStart:   []int{0, 2, 4},
		AIndex:   []int{0, 1, 0, 1},
		AValue:   []float64{1, 2, 1, 4},
		ColCost:  []float64{8, 10},
		ColLower: []float64{0, 0},
		ColUpper: []float64{lp.Inf, lp.Inf},
		RowLower: []float64{math.Inf(-1), math.Inf(-1)},
		RowUpper: []float64{80, 120},
		Sense:    lp.Maximize,
	}

	res, err := simplex.Solve(model, simplex.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)

		return
	}
	fmt.Printf("%s: objective %.0f at x = (%.0f, %.0f)\n",
		res.Status, res.ObjectiveValue, res.ColValue[0], res.ColValue[1])
	// Output:
	// Optimal: objective 480 at x = (60, 0)
}

// ExampleSolver_Run shows warm starting: a second run from the optimal
// basis finishes without a single pivot.
func ExampleSolver_Run() {
	model := &lp.Lp{
		NumCol:   2,
		NumRow:   1,
		AStart:   []int{0, 1, 2},
		AIndex:   []int{0, 0},
		AValue:   []float64{1, 1},
		ColCost:  []float64{1, 2},
		ColLower: []float64{0, 0},
		ColUpper: []float64{lp.Inf, lp.Inf},
		RowLower: []float64{1},
		RowUpper: []float64{3},
	}

	solver, err := simplex.NewSolver(model)
	if err != nil {
		fmt.Println("new:", err)

		return
	}
	first, _ := solver.Run(simplex.DefaultOptions())
	again, _ := solver.Run(simplex.DefaultOptions())
	fmt.Printf("cold: %s %.0f in %d iterations\n", first.Status, first.ObjectiveValue, first.IterationCount)
	fmt.Printf("warm: %s %.0f in %d iterations\n", again.Status, again.ObjectiveValue, again.IterationCount)
	// Output:
	// cold: Optimal 1 in 1 iterations
	// warm: Optimal 1 in 0 iterations
}
