// Package matrix provides the dense row-major matrix that backs the 2D
// histograms and joint distributions of the entropy estimators.
//
// The package provides:
//
//   - Dense, a flat row-major buffer with bounds-checked At/Set.
//   - Element-wise kernels (Add, Scale) used to pool joint count tables
//     and to normalize counts into probabilities.
//   - Reductions (RowSums, ColSums, Total) giving marginal distributions.
//   - Flatten/Reshape, the row-major bridge to flat numeric storage.
//
// All public operations return sentinel errors instead of panicking.
package matrix
