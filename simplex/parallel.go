package simplex

import "sync"

// scored is one candidate of a pricing scan. index < 0 means no
// candidate was found.
type scored struct {
	index int
	score float64
}

// noCandidate is the identity element of the pricing reduction.
var noCandidate = scored{index: -1}

// better implements the deterministic pricing order: strictly greater
// score wins, ties go to the lower index.
func (s scored) better(t scored) scored {
	if t.index < 0 {
		return s
	}
	if s.index < 0 || t.score > s.score || (t.score == s.score && t.index < s.index) {
		return t
	}

	return s
}

// bestScored scans indices [0, n) with the given score function and
// returns the candidate with the largest positive score, lowest index on
// ties. score must return a value ≤ 0 for non-candidates.
//
// With workers > 1 the range is split into contiguous chunks scanned
// concurrently; each worker reduces its chunk locally and the chunk
// winners are combined in chunk order, so the result is identical to the
// serial scan regardless of scheduling.
func bestScored(n, workers int, score func(j int) float64) scored {
	if n == 0 {
		return noCandidate
	}
	if workers <= 1 || n < 2*workers {
		return scanRange(0, n, score)
	}

	chunk := (n + workers - 1) / workers
	parts := make([]scored, workers)
	var wg sync.WaitGroup
	for k := 0; k < workers; k++ {
		lo := k * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			parts[k] = noCandidate

			continue
		}
		wg.Add(1)
		go func(k, lo, hi int) {
			defer wg.Done()
			parts[k] = scanRange(lo, hi, score)
		}(k, lo, hi)
	}
	wg.Wait()

	best := noCandidate
	for _, p := range parts {
		best = best.better(p)
	}

	return best
}

func scanRange(lo, hi int, score func(j int) float64) scored {
	best := noCandidate
	for j := lo; j < hi; j++ {
		if s := score(j); s > 0 {
			best = best.better(scored{index: j, score: s})
		}
	}

	return best
}
