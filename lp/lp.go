package lp

import "math"

// Inf is the bound value meaning "unbounded in this direction".
// Use +Inf for absent upper bounds and -Inf for absent lower bounds.
var Inf = math.Inf(1)

// ObjSense selects the optimization direction of an Lp.
type ObjSense int

const (
	// Minimize seeks the smallest objective value (default).
	Minimize ObjSense = 1

	// Maximize seeks the largest objective value.
	Maximize ObjSense = -1
)

// String returns a human-readable sense name.
func (s ObjSense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Lp is a bounded-variable linear program in general form:
//
//	optimize cᵀx + Offset  s.t.  RowLower ≤ A·x ≤ RowUpper,
//	                             ColLower ≤   x ≤ ColUpper.
//
// The constraint matrix is compressed column-major: column j occupies
// entries AStart[j] .. AStart[j+1]-1 of AIndex/AValue. AStart has
// NumCol+1 entries, the last one equal to the number of nonzeros.
//
// The zero value is an empty, valid model; callers populate the fields
// directly and should call Validate before handing the model to a solver.
type Lp struct {
	NumCol int
	NumRow int

	AStart []int
	AIndex []int
	AValue []float64

	ColCost  []float64
	ColLower []float64
	ColUpper []float64
	RowLower []float64
	RowUpper []float64

	Sense  ObjSense
	Offset float64
	Name   string
}

// NumTot returns the total variable count of the solver's unified view:
// NumCol structural columns plus NumRow logical (slack) variables.
func (l *Lp) NumTot() int { return l.NumCol + l.NumRow }

// NumNz returns the number of stored matrix nonzeros.
func (l *Lp) NumNz() int {
	if len(l.AStart) == 0 {
		return 0
	}

	return l.AStart[len(l.AStart)-1]
}

// Clone returns a deep copy of the model, slices included. Callers that
// mutate a model between solver runs can clone it first to keep the
// original intact.
func (l *Lp) Clone() *Lp {
	c := *l
	c.AStart = append([]int(nil), l.AStart...)
	c.AIndex = append([]int(nil), l.AIndex...)
	c.AValue = append([]float64(nil), l.AValue...)
	c.ColCost = append([]float64(nil), l.ColCost...)
	c.ColLower = append([]float64(nil), l.ColLower...)
	c.ColUpper = append([]float64(nil), l.ColUpper...)
	c.RowLower = append([]float64(nil), l.RowLower...)
	c.RowUpper = append([]float64(nil), l.RowUpper...)

	return &c
}

// normalizeSense maps the zero value of Sense to Minimize so that a model
// built by struct literal without an explicit sense behaves as documented.
func (l *Lp) normalizeSense() ObjSense {
	if l.Sense == Maximize {
		return Maximize
	}

	return Minimize
}

// EffectiveSense returns the optimization direction, treating the zero
// value as Minimize.
func (l *Lp) EffectiveSense() ObjSense { return l.normalizeSense() }
