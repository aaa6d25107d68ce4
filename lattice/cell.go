// Package lattice implements a discrete-time simulation substrate: a graph
// of cells, each holding one value per generation, wired into periodic
// lattices and advanced by a pluggable local update rule.
package lattice

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Rule computes a cell's next value from the observable state reachable
// through the region at the given generation. Implementations must be pure:
// the same (region, location, generation) inputs always yield the same
// value. Tuning parameters belong in the rule value as read-only fields, not
// in hidden mutable context.
type Rule[S any] interface {
	Update(region Region[S], loc *Cell[S], gen Generation) (S, error)
}

// Cell is a graph node: a stable identity, a generation-indexed map of
// computed values, and a set of neighbor cells. State lookups and neighbor
// enumeration may proceed concurrently; a state commit takes only this
// cell's own lock, so a full-board sweep can run cell-by-cell in parallel as
// long as rules read only already-committed generations.
//
// Neighbors keep their join order. Rules that fold floats over the
// neighborhood sum in that fixed order, so identically built graphs yield
// bit-identical results run to run.
type Cell[S any] struct {
	id uuid.UUID

	stateMu sync.RWMutex
	states  map[Generation]S

	neighborMu  sync.RWMutex
	neighbors   []*Cell[S]
	neighborIDs map[uuid.UUID]struct{}
}

// NewCell creates a cell with one state entry at the given generation, an
// empty neighbor set, and a fresh identity.
func NewCell[S any](gen Generation, initial S) *Cell[S] {
	return &Cell[S]{
		id:          uuid.New(),
		states:      map[Generation]S{gen: initial},
		neighborIDs: make(map[uuid.UUID]struct{}),
	}
}

// ID returns the cell's process-unique identity.
func (c *Cell[S]) ID() string { return c.id.String() }

// Join inserts a symmetric neighbor edge between c and other. Re-joining
// already connected cells is a no-op, not an error.
func (c *Cell[S]) Join(other *Cell[S]) error {
	if other == nil {
		return fmt.Errorf("join %s: %w", c.id, ErrNilCell)
	}
	c.connect(other)
	other.connect(c)
	return nil
}

func (c *Cell[S]) connect(other *Cell[S]) {
	c.neighborMu.Lock()
	defer c.neighborMu.Unlock()
	if _, ok := c.neighborIDs[other.id]; ok {
		return
	}
	c.neighborIDs[other.id] = struct{}{}
	c.neighbors = append(c.neighbors, other)
}

// Neighbors returns a point-in-time snapshot of the neighbor set, in join
// order.
func (c *Cell[S]) Neighbors() []*Cell[S] {
	c.neighborMu.RLock()
	defer c.neighborMu.RUnlock()
	return append([]*Cell[S](nil), c.neighbors...)
}

// State returns the value stored for the generation. Absence is not an
// error: a generation that has not been computed yet reports ok == false,
// and callers fall back to their rule's own zero convention.
func (c *Cell[S]) State(gen Generation) (S, bool) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	s, ok := c.states[gen]
	return s, ok
}

// HasState reports whether a value exists for the generation.
func (c *Cell[S]) HasState(gen Generation) bool {
	_, ok := c.State(gen)
	return ok
}

// Update computes and commits the value for gen.Next(). If that entry
// already exists the call returns immediately without invoking the rule, so
// updating the same generation twice is a no-op. A rule error propagates
// unchanged and leaves the state map untouched.
func (c *Cell[S]) Update(rule Rule[S], region Region[S], gen Generation) error {
	next := gen.Next()
	if c.HasState(next) {
		return nil
	}
	state, err := rule.Update(region, c, gen)
	if err != nil {
		return fmt.Errorf("cell %s: generation %d: %w", c.id, gen, err)
	}
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	if _, ok := c.states[next]; ok {
		// A concurrent sweep worker committed first; keep its value.
		return nil
	}
	c.states[next] = state
	return nil
}
