// Package oplog records the append-only sequence of die operations applied
// to the work board and serializes it to the answer JSON contract.
//
// What:
//
//   - CuttingInfo is one operation record: die ID, anchor (x,y), direction.
//   - Log is an append-only, ordered sequence of CuttingInfo.
//   - Answer is the wire DTO {"n": count, "ops": [...]}.
//
// Why:
//
//   - cut.Apply appends to a Log iff the mutated board is the session's
//     work board (scratch boards used for coordinate transforms never
//     log), so replaying a Log from the original start board reproduces
//     the final work board bit-for-bit (property P3).
//
// Complexity:
//
//   - Append: O(1) amortized. MarshalJSON: O(n).
package oplog
