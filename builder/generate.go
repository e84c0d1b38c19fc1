package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Canned topology generators. Each returns a ready-to-Build Description
// with a fixed id scheme: plain indices "0".."n-1", grid cells "r,c".
// Arcs are one-way; callers wanting both directions can flip Mutual on
// the returned edges before building. Degenerate sizes yield the largest
// description that still makes sense (a single node, or an empty one)
// rather than an error.

// Path describes a simple path 0 -> 1 -> ... -> n-1.
func Path(n int) *Description {
	d := &Description{}
	for i := 0; i < n; i++ {
		d.Nodes = append(d.Nodes, NodeSpec{ID: strconv.Itoa(i)})
	}
	for i := 1; i < n; i++ {
		d.Edges = append(d.Edges, EdgeSpec{
			From: strconv.Itoa(i - 1),
			To:   TargetList{strconv.Itoa(i)},
		})
	}

	return d
}

// Cycle describes a directed ring over n nodes. The closing arc leads
// back to "0"; n of 1 yields a single self-loop.
func Cycle(n int) *Description {
	d := Path(n)
	if n >= 1 {
		d.Edges = append(d.Edges, EdgeSpec{
			From: strconv.Itoa(n - 1),
			To:   TargetList{"0"},
		})
	}

	return d
}

// Star describes a hub "0" with arcs out to the remaining n-1 leaves.
func Star(n int) *Description {
	d := &Description{}
	for i := 0; i < n; i++ {
		d.Nodes = append(d.Nodes, NodeSpec{ID: strconv.Itoa(i)})
	}
	targets := make(TargetList, 0, n-1)
	for i := 1; i < n; i++ {
		targets = append(targets, strconv.Itoa(i))
	}
	if len(targets) > 0 {
		d.Edges = append(d.Edges, EdgeSpec{From: "0", To: targets})
	}

	return d
}

// Complete describes arcs between every ordered pair of distinct nodes,
// n*(n-1) arcs in total.
func Complete(n int) *Description {
	d := &Description{}
	var i, j int
	for i = 0; i < n; i++ {
		d.Nodes = append(d.Nodes, NodeSpec{ID: strconv.Itoa(i)})
	}
	for i = 0; i < n; i++ {
		targets := make(TargetList, 0, n-1)
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			targets = append(targets, strconv.Itoa(j))
		}
		if len(targets) > 0 {
			d.Edges = append(d.Edges, EdgeSpec{From: strconv.Itoa(i), To: targets})
		}
	}

	return d
}

// Grid describes a rows x cols lattice with ids "r,c" and arcs to the
// right and downward neighbor of every cell.
func Grid(rows, cols int) *Description {
	d := &Description{}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d.Nodes = append(d.Nodes, NodeSpec{ID: fmt.Sprintf("%d,%d", r, c)})
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			targets := TargetList{}
			if c+1 < cols {
				targets = append(targets, fmt.Sprintf("%d,%d", r, c+1))
			}
			if r+1 < rows {
				targets = append(targets, fmt.Sprintf("%d,%d", r+1, c))
			}
			if len(targets) > 0 {
				d.Edges = append(d.Edges, EdgeSpec{
					From: fmt.Sprintf("%d,%d", r, c),
					To:   targets,
				})
			}
		}
	}

	return d
}

// RandomSparse describes n nodes where every ordered pair of distinct
// nodes carries an arc with probability p, clamped to [0,1]. The result
// is deterministic for a fixed seed.
func RandomSparse(n int, p float64, seed int64) *Description {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	d := &Description{}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		d.Nodes = append(d.Nodes, NodeSpec{ID: strconv.Itoa(i)})
	}
	for i = 0; i < n; i++ {
		targets := TargetList{}
		for j = 0; j < n; j++ {
			if j == i || rng.Float64() >= p {
				continue
			}
			targets = append(targets, strconv.Itoa(j))
		}
		if len(targets) > 0 {
			d.Edges = append(d.Edges, EdgeSpec{From: strconv.Itoa(i), To: targets})
		}
	}

	return d
}
