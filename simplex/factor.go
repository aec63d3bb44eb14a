package simplex

import (
	stderrors "errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// factorization owns the basis matrix and its LU decomposition. It
// provides the forward/backward solves of one simplex iteration and a
// rank-one update per pivot; a full refactorization is forced after
// refactorInterval updates or on a numerical event.
//
// Two LU objects ping-pong through RankOne so an update never aliases its
// source factorization.
type factorization struct {
	view  *modelView
	stats *SimplexStats

	bmat *mat.Dense
	lu   [2]*mat.LU
	cur  int

	updates          int
	refactorInterval int
	pendingRefactor  bool
	instabilityCount int
}

// errNeedRefactor is an internal signal: the rank-one update degraded the
// factorization and the caller must factorize from scratch before using
// it again.
var errNeedRefactor = stderrors.New("simplex: factorization needs rebuild")

// instabilityBudget bounds how many forced refactorizations a solve may
// spend recovering from numerical events before giving up.
const instabilityBudget = 3

func newFactorization(view *modelView, stats *SimplexStats, interval int) *factorization {
	f := &factorization{
		view:             view,
		stats:            stats,
		refactorInterval: interval,
	}
	if view.numRow > 0 {
		f.bmat = mat.NewDense(view.numRow, view.numRow, nil)
		f.lu[0] = &mat.LU{}
		f.lu[1] = &mat.LU{}
	}

	return f
}

// factorize builds a fresh LU of the basis matrix assembled from the
// current basis. Returns ErrSingularBasis when the chosen columns are
// linearly dependent; the caller must then substitute logical variables
// and retry.
func (f *factorization) factorize(b *Basis) error {
	f.updates = 0
	f.pendingRefactor = false
	if f.view.numRow == 0 {
		f.stats.NumInvert++

		return nil
	}

	m := f.view.numRow
	col := make([]float64, m)
	basisNz := 0
	for i := 0; i < m; i++ {
		for k := range col {
			col[k] = 0
		}
		f.view.scatterColumn(b.BasicIndex[i], 1, col)
		for _, v := range col {
			if v != 0 {
				basisNz++
			}
		}
		f.bmat.SetCol(i, col)
	}

	f.lu[f.cur].Factorize(f.bmat)
	if f.singular() {
		return ErrSingularBasis
	}
	// RankOne requires its destination to be an already-factorized LU, so
	// both ping-pong slots are seeded from the same basis matrix.
	f.lu[1-f.cur].Factorize(f.bmat)

	f.stats.NumInvert++
	f.stats.LastFactoredBasisNumEl = basisNz
	f.stats.LastInvertNumEl = f.factorNonzeros()

	return nil
}

// singular reports whether the current LU is unusable.
func (f *factorization) singular() bool {
	logDet, sign := f.lu[f.cur].LogDet()

	return sign == 0 || math.IsInf(logDet, -1) || math.IsNaN(logDet)
}

// factorNonzeros counts the stored elements of the L and U factors.
func (f *factorization) factorNonzeros() int {
	m := f.view.numRow
	l := mat.NewTriDense(m, mat.Lower, nil)
	u := mat.NewTriDense(m, mat.Upper, nil)
	f.lu[f.cur].LTo(l)
	f.lu[f.cur].UTo(u)
	nz := 0
	for i := 0; i < m; i++ {
		for j := 0; j <= i; j++ {
			if l.At(i, j) != 0 {
				nz++
			}
		}
		for j := i; j < m; j++ {
			if u.At(i, j) != 0 {
				nz++
			}
		}
	}

	return nz
}

// ftran solves B·x = rhs in place.
func (f *factorization) ftran(rhs *mat.VecDense) error { return f.solve(rhs, false) }

// btran solves Bᵀ·y = rhs in place.
func (f *factorization) btran(rhs *mat.VecDense) error { return f.solve(rhs, true) }

func (f *factorization) solve(rhs *mat.VecDense, trans bool) error {
	if f.view.numRow == 0 {
		return nil
	}
	var dst mat.VecDense
	if err := f.lu[f.cur].SolveVecTo(&dst, trans, rhs); err != nil {
		// A finite mat.Condition is a warning carrying a usable solution;
		// accept it but schedule a refactorization. An infinite condition
		// means no solution was written, so it is fatal like any other
		// error from the factorization.
		var cond mat.Condition
		if !stderrors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return errNeedRefactor
		}
		f.pendingRefactor = true
	}
	rhs.CopyVec(&dst)

	return nil
}

// update incorporates the pivot that makes variable entering basic in row
// leavingRow: B ← B + (a_q − B·e_r)·e_rᵀ, a rank-one change applied to
// the factorization without rebuilding it.
func (f *factorization) update(b *Basis, leavingRow, entering int) error {
	if f.view.numRow == 0 {
		return nil
	}
	m := f.view.numRow
	diff := make([]float64, m)
	f.view.scatterColumn(entering, 1, diff)
	newCol := append([]float64(nil), diff...)
	for i := 0; i < m; i++ {
		diff[i] -= f.bmat.At(i, leavingRow)
	}
	er := mat.NewVecDense(m, nil)
	er.SetVec(leavingRow, 1)

	next := 1 - f.cur
	f.lu[next].RankOne(f.lu[f.cur], 1, mat.NewVecDense(m, diff), er)
	f.cur = next
	f.bmat.SetCol(leavingRow, newCol)

	f.updates++
	if f.updates >= f.refactorInterval {
		f.pendingRefactor = true
	}
	if f.singular() {
		f.pendingRefactor = true

		return errNeedRefactor
	}

	return nil
}

// needRefactor reports whether the next iteration must refactorize first.
func (f *factorization) needRefactor() bool { return f.pendingRefactor }

// noteInstability counts a numerical event and reports whether the retry
// budget is exhausted.
func (f *factorization) noteInstability() bool {
	f.instabilityCount++
	f.pendingRefactor = true

	return f.instabilityCount > instabilityBudget
}
