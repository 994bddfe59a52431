// Package node implements the eight state-carrying units of the generator
// and the meta-operation machinery that drives their per-cycle updates.
//
// A cycle is split into two phases. Phase 1 reads the node's next sequence
// chunk without mutating anything, so a failed cycle leaves every node
// untouched (fail closed). Phase 2 folds in neighbor influence and commits
// the new state, meta-state, counter, and sequence cursor.
//
// INVARIANTS:
//   - Every meta-operation is a bijection on the full 64-bit domain.
//     A non-bijective operation would silently collapse entropy; Invert
//     exists so tests can verify this algebraically.
//   - counter and cursor only move forward (counter wraps mod 2^64).
package node
