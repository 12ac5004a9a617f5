// Package deckentropy measures how well a shuffle mixes a deck: it runs a
// shuffling model many times and reports the Shannon entropy of where a
// known card (or pair of cards) ends up.
//
// What is inside
//
//	deck/          — Deck type: the permutation of labels 1..N every model works on
//	shuffle/       — Shuffler strategy, cut-stack and riffle models, seeded RNG streams
//	entropy/       — Position and Joint Monte Carlo estimators, Shannon entropy
//	matrix/        — dense row-major matrix holding joint histograms and distributions
//	store/         — CSV vectors and matrices ("vec" header, one value per line)
//	store/sqlite/  — SQLite persistence of series and of a per-run log
//	cmd/deckentropy — command-line sweep over the number of shuffle rounds
//
// Quick example:
//
//	riffle, _ := shuffle.NewRiffle(3, 3, 0.5)
//	res, err := entropy.Position(52, riffle, 1, 100, entropy.WithSeed(7))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("H = %.3f of %.3f nats\n", res.Entropy, entropy.MaxPositionEntropy(52))
//
// Reading the numbers
//
//   - 0 means the card's final position is certain (e.g. zero rounds).
//   - ln N is the ceiling, reached when every position is equally likely.
//   - Joint entropy tops out at ln(N(N−1)); Joint results also expose the
//     mutual information between the two cards' positions.
//
// Estimates are deterministic for a fixed seed and worker count. Raise the
// density argument to reduce sampling noise.
package deckentropy
