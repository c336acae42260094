// Package projection implements the projection chain (P) and projected set
// (Π) that track, for every DFS code visited during mining, the list of
// embeddings into each transaction graph.
//
// A Node is one link in a persistent, singly-linked, backward-only chain:
// it names the physical edge realizing its code step, whether that edge's
// direction agreed with the step's (v1,v2) orientation, and the previous
// node (the projection of the prior code step). Chains for sibling
// extensions structurally share their tails; nothing here ever creates a
// forward link, so there is no possibility of a reference cycle.
//
// An Arena owns every Node allocated during one mining run. Go's garbage
// collector makes the reclamation half of the design note in spec §9
// unnecessary — chain nodes referenced only by pointer are freed once
// unreachable — but the Arena is kept anyway as the single place that
// allocates nodes and counts them. The count is cumulative (nodes already
// reclaimed are still included), and no other package reads it.
package projection
