// Package query holds a storage-agnostic predicate tree. Builders produce it
// from request filters; repositories compile it for their backend.
package query

import "time"

// Node is one predicate in the tree.
type Node interface {
	node()
}

// And matches when every child matches.
type And []Node

// Or matches when at least one child matches.
type Or []Node

// Eq is exact equality on a field.
type Eq struct {
	Field string
	Value any
}

// Range bounds a timestamp field; a nil bound is open on that side.
type Range struct {
	Field string
	From  *time.Time
	To    *time.Time
}

// ContainsFold is a case-insensitive substring match.
type ContainsFold struct {
	Field string
	Value string
}

func (And) node()          {}
func (Or) node()           {}
func (Eq) node()           {}
func (Range) node()        {}
func (ContainsFold) node() {}

// AllOf collapses nil children and trivial nesting. It returns nil when no
// child remains.
func AllOf(nodes ...Node) Node {
	kept := compact(nodes)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return And(kept)
}

// AnyOf is the disjunctive counterpart of AllOf.
func AnyOf(nodes ...Node) Node {
	kept := compact(nodes)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return Or(kept)
}

func compact(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
