// Package seq computes deterministic 64-bit chunks of the binary expansion
// of eight fixed mathematical constants.
//
// Each Sequence owns an append-only cache of chunks. Chunks are computed in
// doubling precision levels; a chunk, once served, is never recomputed, so
// Chunk(i) is a pure function of (constant, i) regardless of access order.
//
// All expansions use exact big.Int fixed-point arithmetic with floor
// division on non-negative operands. This makes every bit of the cache
// reproducible across platforms and implementations - there is no floating
// point anywhere in this package.
//
// INVARIANTS:
//   - The cache is append-only and never invalidated.
//   - A request past the configured precision cap fails with PrecisionError.
//     The package never substitutes a lower-quality approximation.
package seq
