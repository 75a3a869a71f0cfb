package bcd_test

import (
	"fmt"

	"github.com/katalvlaran/boustro/bcd"
	"github.com/katalvlaran/boustro/polygon"
)

// ExampleDecompose decomposes a square with a centered hole and reports
// the events the sweep saw.
func ExampleDecompose() {
	outer, hole := polygon.SquareWithHole()
	sub, _ := polygon.FromRings(outer, hole)

	dec, err := bcd.Decompose(sub, 0)
	if err != nil {
		fmt.Println("decompose:", err)

		return
	}

	fmt.Printf("cells: %d\n", len(dec.Cells))
	for _, ev := range dec.Criticals {
		fmt.Printf("vertex %d: %s\n", ev.Vertex, ev.Kind)
	}
	// Output:
	// cells: 4
	// vertex 0: OPEN
	// vertex 4: SPLIT
	// vertex 6: MERGE
	// vertex 2: CLOSE
}
