// Hexagonal wiring debug tool: builds a small hexagonal lattice whose cells
// carry their own coordinates, then dumps each cell's linear index and
// neighborhood so the brick packing can be eyeballed.
//
// Usage: go run ./cmd/hexdebug -size 6
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"quanta/lattice"
)

// coordCell carries its coordinates and linear index as payload, making the
// wiring inspectable from the outside.
type coordCell struct {
	R, C, Index int
}

// holdRule keeps every cell's payload unchanged across generations.
type holdRule struct{}

func (holdRule) Update(region lattice.Region[coordCell], loc *lattice.Cell[coordCell], gen lattice.Generation) (coordCell, error) {
	s, _ := region.State(loc, gen)
	return s, nil
}

func main() {
	size := flag.Int("size", 6, "Lattice extent per axis (must be even)")
	flag.Parse()

	dims := []int{*size, *size}
	torus, err := lattice.NewTorus(holdRule{}, lattice.Hexagonal, dims, 0,
		func(coords []int) coordCell {
			idx, _ := lattice.CoordsToIndex(coords, dims)
			return coordCell{R: coords[0], C: coords[1], Index: idx}
		})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for r := 0; r < dims[0]; r++ {
		for c := 0; c < dims[1]; c++ {
			cell, err := torus.At(r, c)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			s, _ := cell.State(0)

			neighbors := make([]string, 0, 6)
			for _, n := range cell.Neighbors() {
				ns, _ := n.State(0)
				neighbors = append(neighbors, fmt.Sprintf("(%d,%d)", ns.R, ns.C))
			}
			sort.Strings(neighbors)

			fmt.Printf("(%d,%d)#%d:", s.R, s.C, s.Index)
			for _, n := range neighbors {
				fmt.Printf(" %s", n)
			}
			fmt.Println()
		}
	}
}
