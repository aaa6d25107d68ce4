package lattice

import (
	"errors"
	"sync"
	"testing"
)

// countingRule increments the stored value and records how often it ran.
type countingRule struct {
	mu    sync.Mutex
	calls int
}

func (r *countingRule) Update(region Region[int], loc *Cell[int], gen Generation) (int, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	v, _ := region.State(loc, gen)
	return v + 1, nil
}

var errBoom = errors.New("boom")

type failRule struct{}

func (failRule) Update(Region[int], *Cell[int], Generation) (int, error) {
	return 0, errBoom
}

func TestUpdateIdempotent(t *testing.T) {
	rule := &countingRule{}
	region := CellRegion[int]{}
	cell := NewCell(0, 7)

	if err := cell.Update(rule, region, 0); err != nil {
		t.Fatalf("first update: %v", err)
	}
	first, ok := cell.State(Generation(0).Next())
	if !ok {
		t.Fatal("no state after update")
	}

	if err := cell.Update(rule, region, 0); err != nil {
		t.Fatalf("second update: %v", err)
	}
	second, _ := cell.State(Generation(0).Next())

	if first != second {
		t.Errorf("repeated update changed value: %d != %d", first, second)
	}
	if rule.calls != 1 {
		t.Errorf("rule invoked %d times, want 1", rule.calls)
	}
}

func TestStateAbsent(t *testing.T) {
	cell := NewCell(0, 1)
	if _, ok := cell.State(5); ok {
		t.Error("uncomputed generation reported present")
	}
	if cell.HasState(5) {
		t.Error("HasState true for uncomputed generation")
	}
	if !cell.HasState(0) {
		t.Error("HasState false for seeded generation")
	}
}

func TestJoinSymmetry(t *testing.T) {
	a := NewCell(0, 1)
	b := NewCell(0, 2)

	if err := a.Join(b); err != nil {
		t.Fatalf("join: %v", err)
	}
	if !contains(a.Neighbors(), b) || !contains(b.Neighbors(), a) {
		t.Fatal("join is not symmetric")
	}

	// Re-joining in either direction must not grow the edge set.
	if err := a.Join(b); err != nil {
		t.Fatalf("re-join: %v", err)
	}
	if err := b.Join(a); err != nil {
		t.Fatalf("reverse join: %v", err)
	}
	if n := len(a.Neighbors()); n != 1 {
		t.Errorf("a has %d neighbors, want 1", n)
	}
	if n := len(b.Neighbors()); n != 1 {
		t.Errorf("b has %d neighbors, want 1", n)
	}
}

func TestJoinNil(t *testing.T) {
	a := NewCell(0, 1)
	if err := a.Join(nil); !errors.Is(err, ErrNilCell) {
		t.Errorf("join nil returned %v, want ErrNilCell", err)
	}
}

func TestUpdateRuleErrorPropagates(t *testing.T) {
	cell := NewCell(0, 1)
	err := cell.Update(failRule{}, CellRegion[int]{}, 0)
	if !errors.Is(err, errBoom) {
		t.Fatalf("update returned %v, want wrapped rule error", err)
	}
	if cell.HasState(1) {
		t.Error("failed update committed a value")
	}
}

func TestNeighborsSnapshot(t *testing.T) {
	a := NewCell(0, 1)
	b := NewCell(0, 2)
	if err := a.Join(b); err != nil {
		t.Fatalf("join: %v", err)
	}
	snap := a.Neighbors()
	c := NewCell(0, 3)
	if err := a.Join(c); err != nil {
		t.Fatalf("join: %v", err)
	}
	if len(snap) != 1 {
		t.Errorf("snapshot grew after later join: %d", len(snap))
	}
}

func TestNeighborsJoinOrder(t *testing.T) {
	a := NewCell(0, 0)
	peers := []*Cell[int]{NewCell(0, 1), NewCell(0, 2), NewCell(0, 3)}
	for _, p := range peers {
		if err := a.Join(p); err != nil {
			t.Fatalf("join: %v", err)
		}
	}
	// Re-joins must not move an existing edge.
	if err := a.Join(peers[0]); err != nil {
		t.Fatalf("re-join: %v", err)
	}

	got := a.Neighbors()
	if len(got) != len(peers) {
		t.Fatalf("got %d neighbors, want %d", len(got), len(peers))
	}
	for i, p := range peers {
		if got[i] != p {
			t.Fatalf("neighbor %d out of join order", i)
		}
	}
}

func contains(cells []*Cell[int], want *Cell[int]) bool {
	for _, c := range cells {
		if c == want {
			return true
		}
	}
	return false
}
