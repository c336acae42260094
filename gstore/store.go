package gstore

import "sort"

// Store holds every surviving transaction graph for one mining run, keyed by
// gid. It is built once by the driver after pruning and never mutated again.
type Store struct {
	graphs map[int]*Graph
	ids    []int // ascending
}

// NewStore builds a Store from the given graphs (order is irrelevant; Store
// sorts gids ascending internally to make iteration deterministic, per
// spec §5 "graph ids iterate in ascending numeric order").
func NewStore(graphs []*Graph) *Store {
	s := &Store{graphs: make(map[int]*Graph, len(graphs))}
	for _, g := range graphs {
		s.graphs[g.GID()] = g
		s.ids = append(s.ids, g.GID())
	}
	sort.Ints(s.ids)

	return s
}

// Graph returns the transaction graph with the given id, if it survived
// pruning.
func (s *Store) Graph(gid int) (*Graph, bool) {
	g, ok := s.graphs[gid]
	return g, ok
}

// GraphIDs returns every surviving graph id, ascending.
func (s *Store) GraphIDs() []int {
	return s.ids
}

// Len reports how many transaction graphs the store holds.
func (s *Store) Len() int {
	return len(s.ids)
}
