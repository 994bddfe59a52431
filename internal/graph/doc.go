// Package graph maintains the directed acyclic influence structure over
// the eight generator nodes.
//
// Acyclicity is guaranteed by construction: a rank permutation totally
// orders the nodes, and an edge u->v is only ever admitted when
// rank(u) < rank(v). No cycle repair is needed, for any activation
// pattern and any rank permutation.
//
// Evolution is epoch-scheduled and strictly out-of-cycle: the topology a
// cycle observes was fixed before the cycle began.
package graph
