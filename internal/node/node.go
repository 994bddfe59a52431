package node

import (
	"math/bits"

	"github.com/quillon/dagrand/internal/seq"
)

// Node is one of the eight state-carrying units of a generator. It owns
// its sequence exclusively and is mutated in place once per cycle.
//
// Mutation happens only in Phase2; Phase1 is read-only with respect to
// node state, so a cycle that fails in phase 1 leaves the node exactly as
// it was before the cycle began.
type Node struct {
	id      int
	state   uint64
	meta    uint64
	counter uint64
	cursor  uint64
	seq     *seq.Sequence

	raw uint64 // phase-1 latch, valid between Phase1 and Phase2
	out uint64 // output of the last completed cycle
}

// New creates a node with the seed-derived initial state and meta-state.
// counter and cursor start at zero.
func New(id int, state, meta uint64, s *seq.Sequence) *Node {
	return &Node{id: id, state: state, meta: meta, seq: s}
}

// ID returns the node id (0..7).
func (n *Node) ID() int { return n.id }

// State returns the current state word.
func (n *Node) State() uint64 { return n.state }

// Counter returns the current cycle counter.
func (n *Node) Counter() uint64 { return n.counter }

// Cursor returns the next sequence chunk index.
func (n *Node) Cursor() uint64 { return n.cursor }

// Out returns the output of the last completed cycle (zero before the
// first cycle completes).
func (n *Node) Out() uint64 { return n.out }

// Phase1 latches the node's next sequence chunk. It does not advance any
// node state: the cursor moves in Phase2, so a cycle aborted by another
// node's sequence failure re-reads the same chunk on retry.
func (n *Node) Phase1() error {
	raw, err := n.seq.Chunk(n.cursor)
	if err != nil {
		return err
	}
	n.raw = raw
	return nil
}

// Phase2 commits the cycle: folds the frozen prior-cycle neighbor
// influence into the latched chunk, applies the selected meta-operation,
// and advances meta-state, counter, and cursor. Returns the node's output
// for this cycle.
//
// influence must be computed from the previous cycle's finalized outputs
// only; Phase2 never reads another node's in-progress result.
func (n *Node) Phase2(influence uint64) uint64 {
	mixed := n.raw ^ influence
	op := Select(n.state, n.meta)
	n.state = Apply(op, n.state^mixed, n.state)
	n.meta = bits.RotateLeft64(n.meta, 1) ^ n.counter
	n.counter++
	n.cursor++
	n.out = n.state
	return n.state
}
