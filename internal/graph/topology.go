package graph

import (
	"crypto/sha256"
	"encoding/binary"
)

// NumNodes is the fixed node count of the influence graph.
const NumNodes = 8

// maxCandidates is the number of rank-respecting candidate edges,
// NumNodes choose 2.
const maxCandidates = NumNodes * (NumNodes - 1) / 2

// Edge is an ordered influence edge between two node ids. From always has
// the lower rank, so the active set can never close a cycle.
type Edge struct {
	From   int
	To     int
	Active bool
}

// Topology is the rank permutation plus the current active-edge set.
// Owned by a single generator; rewired only between cycles.
type Topology struct {
	order  [NumNodes]int // order[r] = node id at rank r
	rank   [NumNodes]int // rank[id] = rank of node id
	edges  []Edge        // all candidates in canonical rank order
	in     [NumNodes][]int
	maxOut int
}

// New creates a topology with the given initial rank order (order[r] is
// the node id at rank r) and out-degree cap. The active set is empty until
// the first Rewire.
func New(order [NumNodes]int, maxOut int) *Topology {
	t := &Topology{order: order, maxOut: maxOut}
	for r, id := range order {
		t.rank[id] = r
	}
	return t
}

// Order returns the node id at each rank.
func (t *Topology) Order() [NumNodes]int { return t.order }

// Rank returns the rank of node id.
func (t *Topology) Rank(id int) int { return t.rank[id] }

// Edges returns the candidate edges with their activation flags, in
// canonical rank order. The slice is owned by the topology.
func (t *Topology) Edges() []Edge { return t.edges }

// InEdges returns the node ids with an active edge into id, in canonical
// order. The slice is owned by the topology.
func (t *Topology) InEdges(id int) []int { return t.in[id] }

// Rewire recomputes the active-edge set from the current node states.
// Candidates are walked in canonical (fromRank, toRank) order; each takes
// one bit from the SHA-256 digest of the little-endian state vector, and
// activation is additionally subject to the out-degree cap.
func (t *Topology) Rewire(states [NumNodes]uint64) {
	digest := hashWords(states)

	t.edges = t.edges[:0]
	for i := range t.in {
		t.in[i] = t.in[i][:0]
	}

	var outDeg [NumNodes]int
	bit := 0
	for a := 0; a < NumNodes; a++ {
		for b := a + 1; b < NumNodes; b++ {
			u, v := t.order[a], t.order[b]
			want := digest[bit/8]>>(bit%8)&1 == 1
			bit++
			active := want && outDeg[u] < t.maxOut
			if active {
				outDeg[u]++
				t.in[v] = append(t.in[v], u)
			}
			t.edges = append(t.edges, Edge{From: u, To: v, Active: active})
		}
	}
}

// Reorder recomputes the rank permutation from the accumulated node
// counters via a Fisher-Yates shuffle seeded by their SHA-256 digest.
// Takes effect on the next Rewire; callers invoke both together at an
// epoch boundary.
func (t *Topology) Reorder(counters [NumNodes]uint64) {
	digest := hashWords(counters)

	for i := range t.order {
		t.order[i] = i
	}
	for i := NumNodes - 1; i > 0; i-- {
		j := int(digest[NumNodes-1-i]) % (i + 1)
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}
	for r, id := range t.order {
		t.rank[id] = r
	}
}

// hashWords is the fixed mixing hash over a word vector.
func hashWords(words [NumNodes]uint64) [sha256.Size]byte {
	var buf [NumNodes * 8]byte
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return sha256.Sum256(buf[:])
}
