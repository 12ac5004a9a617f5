// Package shuffle implements the two physical shuffling models used by the
// entropy estimators, behind a single Shuffler strategy.
//
// 🚀 Models
//
//	CutStack ("haut-bas" / overhand-like):
//	  peel small packets of [minCut, maxCut] cards off the top and stack them
//	  onto a new pile, then drop the remainder on top; repeat for n rounds.
//
//	Riffle:
//	  cut near the middle (±spread·N), then interleave short runs of
//	  Binomial(maxRun, bias)+1 cards from the bottom of each half; repeat for
//	  n rounds.
//
// ✨ Contract shared by all models:
//   - Shuffle never mutates its input deck and always returns a new one.
//   - The output is a permutation of the input; a violation panics because it
//     can only come from a defect in the model itself.
//   - rounds == 0 is the identity transform.
//   - Randomness flows through an explicit Source; *math/rand.Rand satisfies
//     it, and a nil Source falls back to a fixed deterministic stream.
//
// ⚙️ Usage:
//
//	cut, err := shuffle.NewCutStack(4, 2, 8)
//	if err != nil { ... }
//	out := cut.Shuffle(d, shuffle.NewRand(42))
//
// Concurrency:
//
//	Models are immutable after construction and safe to share. A Source is
//	not; give every goroutine its own stream (see DeriveRand).
package shuffle
