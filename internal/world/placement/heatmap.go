package placement

import (
	"chosenoffset.com/chorehouse/internal/world/grid"
)

// ClusterExponent is applied to an open cell's neighbor count to get its weight.
// With 2, a cell touching two rooms is four times as likely to be drawn as a cell
// touching one.
const ClusterExponent = 2

// Weight returns how many times an open cell is listed in the heat map.
// Occupied cells and cells with no neighboring room weigh nothing.
func Weight(c grid.Cell) int {
	if !c.IsOpen() {
		return 0
	}
	n := c.Neighbors()
	w := 1
	for i := 0; i < ClusterExponent; i++ {
		w *= n
	}
	return w
}

// HeatMap is a weighted multiset of open cells; each cell appears Weight times
type HeatMap []grid.Point

// BuildHeatMap scans the grid column by column and lists every open cell
// according to its weight
func BuildHeatMap(g *grid.Grid) HeatMap {
	var heat HeatMap
	g.Each(func(p grid.Point, c grid.Cell) {
		for i := Weight(c); i > 0; i-- {
			heat = append(heat, p)
		}
	})
	return heat
}

// Count returns how many entries refer to p
func (h HeatMap) Count(p grid.Point) int {
	n := 0
	for _, q := range h {
		if q == p {
			n++
		}
	}
	return n
}

// Shift moves every entry by d. Used when the grid grows left or up so entries
// keep pointing at the same cells.
func (h HeatMap) Shift(d grid.Point) {
	for i := range h {
		h[i] = h[i].Add(d)
	}
}

// Clone returns an independent copy
func (h HeatMap) Clone() HeatMap {
	if h == nil {
		return nil
	}
	out := make(HeatMap, len(h))
	copy(out, h)
	return out
}

// Quadrant is a direction a room could extend in from its anchor cell, numbered
// like the quadrants of a graph
type Quadrant int

const (
	UpRight Quadrant = iota + 1
	UpLeft
	DownLeft
	DownRight
)

func (q Quadrant) String() string {
	switch q {
	case UpRight:
		return "up-right"
	case UpLeft:
		return "up-left"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	}
	return "unknown"
}

// Quadrants returns the directions a room could grow in from c: a quadrant is
// feasible when neither of the two sides it extends through has a neighbor.
// Only DownRight is ever used for placement.
func Quadrants(c grid.Cell) []Quadrant {
	var out []Quadrant
	if !c.Has(grid.Top) && !c.Has(grid.Right) {
		out = append(out, UpRight)
	}
	if !c.Has(grid.Top) && !c.Has(grid.Left) {
		out = append(out, UpLeft)
	}
	if !c.Has(grid.Bottom) && !c.Has(grid.Left) {
		out = append(out, DownLeft)
	}
	if !c.Has(grid.Bottom) && !c.Has(grid.Right) {
		out = append(out, DownRight)
	}
	return out
}
