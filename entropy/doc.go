// Package entropy estimates, by Monte Carlo simulation, how uncertain the
// final position of a tracked card is after a shuffle.
//
// 🚀 Estimators
//
//	Position (one card):  M = ⌊N·density⌋ trials, histogram over N positions,
//	                      H = −Σ p·ln p.
//	Joint (two cards):    M = ⌊N(N−1)·density⌋ trials, N×N histogram of
//	                      (position of label1, position of label2); the
//	                      diagonal is unreachable and stays 0.
//
// Every trial shuffles the canonical deck [1..N] afresh: trials are
// independent, never chained.
//
// ✨ Key features:
//   - Shared histogram → distribution → entropy routine over a flat outcome
//     space, used by both estimators.
//   - 0·ln 0 = 0: unseen outcomes contribute nothing, never NaN or −Inf.
//   - Configuration errors are reported before a single trial runs.
//   - Optional parallelism: WithWorkers(k) splits the trials over k
//     goroutines, each with its own derived RNG stream and private
//     histogram, merged in worker order. A fixed seed and worker count give
//     identical results run after run.
//
// ⚙️ Usage:
//
//	riffle, _ := shuffle.NewRiffle(3, 2, 0.5)
//	res, err := entropy.Position(52, riffle, 1, 200, entropy.WithSeed(7))
//	if err != nil { ... }
//	fmt.Printf("H=%.3f of max %.3f\n", res.Entropy, entropy.MaxPositionEntropy(52))
package entropy
