// Package finealign implements the fine aligner: a per-cell swap loop
// that closes the residual gap left by the coarse aligner.
//
// What:
//
//   - Arrange loops until board equals goal, each iteration picking the
//     first mismatching cell in row-major order, preferring a mutually
//     useful partner cell, and swapping the pair.
//
// Why:
//
//   - Termination follows from the permutation invariant (I1): board and
//     goal share a value multiset, so whenever a mismatch exists at a,
//     some other mismatching cell holds the value goal[a] needs (it is
//     mutually useful only when it also needs a's value). Each swap fixes
//     a, so the number of mismatches strictly decreases.
//
// Complexity:
//
//   - O(W*H) iterations in the worst case, each O(W*H) to find a partner
//     plus one Swap call.
package finealign
