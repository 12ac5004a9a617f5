// Package deck defines the permutation primitive shared by shufflers and
// entropy estimators.
//
// A Deck is an ordered sequence of distinct integer labels. The canonical
// deck of size N holds the labels 1..N in ascending order, label i sitting
// at index i-1 ("card i starts at position i").
//
// ✨ Guarantees:
//   - No function in this package mutates its input; Clone always returns
//     a fresh backing array.
//   - ValidateCanonical and IsPermutationOf are the single source of truth
//     for "is this still a permutation?" checks used by shuffle and entropy.
//
// Complexity:
//
//	New, Clone, IndexOf, Equal: O(N).
//	IsPermutationOf:            O(N log N) (sorted copies).
//	ValidateCanonical:          O(N) time, O(N) extra bits.
package deck
