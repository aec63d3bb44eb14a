// Package simplex - RNG utilities for the solver's randomized choices.
//
// All randomness in the engine (dual phase-1 shift magnitudes) flows
// through this file. Goals:
//   - Determinism: same seed ⇒ identical pivot sequences across platforms.
//   - Encapsulation: one factory; no time-based sources hidden anywhere.
//   - Concurrency: math/rand.Rand is not goroutine-safe; each solve owns
//     its own stream and the pricing workers never touch it.
package simplex

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when Options.Seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
