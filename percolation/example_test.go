package percolation_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/percolate/percolation"
)

// ExampleGrid demonstrates a column path that percolates and a bottom-row
// site that touches the percolating cluster's row but is not full.
//
//	. . X
//	. . X
//	X . X
func ExampleGrid() {
	g, err := percolation.New(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for row := 1; row <= 3; row++ {
		_ = g.Open(row, 3)
	}
	_ = g.Open(3, 1)

	full, _ := g.IsFull(3, 3)
	fmt.Println("percolates:", g.Percolates())
	fmt.Println("(3,3) full:", full)
	full, _ = g.IsFull(3, 1)
	fmt.Println("(3,1) full:", full)
	fmt.Println("open sites:", g.NumberOfOpenSites())

	// Output:
	// percolates: true
	// (3,3) full: true
	// (3,1) full: false
	// open sites: 4
}

// ExampleGrid_Open_outOfRange shows how to tell a bad coordinate apart from
// other failures.
func ExampleGrid_Open_outOfRange() {
	g, _ := percolation.New(4)
	err := g.Open(5, 1)
	fmt.Println(errors.Is(err, percolation.ErrIndexOutOfRange))
	fmt.Println(err)
	// Output:
	// true
	// percolation: index out of range: row 5 not in [1,4]
}
