// Package grid implements the growable room grid. Cells are stored column-major;
// growing left or up shifts every existing address by one.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chosenoffset.com/chorehouse/room"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the allocated grid
	ErrOutOfBounds = errors.New("cell is outside the grid")
	// ErrOccupied is returned when an open-cell operation targets an occupied cell
	ErrOccupied = errors.New("cell is occupied by a room")
	// ErrInvalidSide is returned for sides other than left, right, top and bottom
	ErrInvalidSide = errors.New("invalid side")
)

// Grid is a resizable 2D array of cells
type Grid struct {
	cols   [][]Cell
	origin Point
}

// New creates a grid holding a single open cell
func New() *Grid {
	return &Grid{cols: [][]Cell{{Open()}}}
}

// Width returns the number of allocated columns
func (g *Grid) Width() int {
	return len(g.cols)
}

// Height returns the number of allocated rows
func (g *Grid) Height() int {
	return len(g.cols[0])
}

// Origin returns how far the grid has grown left (Col) and up (Row) since it
// was created. Adding it to an address taken before any growth gives the
// current address of the same cell.
func (g *Grid) Origin() Point {
	return g.origin
}

// Contains reports whether (col, row) is allocated
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.Width() && row >= 0 && row < g.Height()
}

// At returns the cell at (col, row). The bool is false when the coordinate has
// not been allocated yet.
func (g *Grid) At(col, row int) (Cell, bool) {
	if !g.Contains(col, row) {
		return Cell{}, false
	}
	return g.cols[col][row], true
}

// GrowUp prepends an open row. Every existing row index increases by one.
func (g *Grid) GrowUp() {
	for i, col := range g.cols {
		g.cols[i] = append([]Cell{Open()}, col...)
	}
	g.origin.Row++
}

// GrowDown appends an open row
func (g *Grid) GrowDown() {
	for i := range g.cols {
		g.cols[i] = append(g.cols[i], Open())
	}
}

// GrowLeft prepends an open column. Every existing column index increases by one.
func (g *Grid) GrowLeft() {
	g.cols = append([][]Cell{g.newColumn()}, g.cols...)
	g.origin.Col++
}

// GrowRight appends an open column
func (g *Grid) GrowRight() {
	g.cols = append(g.cols, g.newColumn())
}

func (g *Grid) newColumn() []Cell {
	return make([]Cell, g.Height())
}

// MarkNeighbor sets the flag on side s of the open cell at (col, row), recording
// that a room touches it from that side
func (g *Grid) MarkNeighbor(col, row int, s Side) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSide, int(s))
	}
	if !g.Contains(col, row) {
		return fmt.Errorf("mark %s neighbor at (%d, %d): %w", s, col, row, ErrOutOfBounds)
	}
	cell := &g.cols[col][row]
	if cell.occupied {
		return fmt.Errorf("mark %s neighbor at (%d, %d): %w", s, col, row, ErrOccupied)
	}
	cell.flags[s] = true
	return nil
}

// Occupy writes a room into the cell at (col, row), discarding its flags
func (g *Grid) Occupy(col, row int, id room.ID) error {
	if !g.Contains(col, row) {
		return fmt.Errorf("occupy (%d, %d): %w", col, row, ErrOutOfBounds)
	}
	g.cols[col][row] = Occupied(id)
	return nil
}

// Each calls fn for every cell, column by column
func (g *Grid) Each(fn func(p Point, c Cell)) {
	for col, cells := range g.cols {
		for row, cell := range cells {
			fn(Point{Col: col, Row: row}, cell)
		}
	}
}

// Cells returns the addresses of every cell occupied by id, column by column
func (g *Grid) Cells(id room.ID) []Point {
	var points []Point
	g.Each(func(p Point, c Cell) {
		if other, ok := c.Room(); ok && other == id {
			points = append(points, p)
		}
	})
	return points
}

// Anchor returns the top-left cell of the room's footprint
func (g *Grid) Anchor(id room.ID) (Point, bool) {
	cells := g.Cells(id)
	if len(cells) == 0 {
		return Point{}, false
	}
	anchor := cells[0]
	for _, p := range cells[1:] {
		anchor.Col = min(anchor.Col, p.Col)
		anchor.Row = min(anchor.Row, p.Row)
	}
	return anchor, true
}

// Occupancy returns the number of occupied cells
func (g *Grid) Occupancy() int {
	n := 0
	g.Each(func(_ Point, c Cell) {
		if !c.IsOpen() {
			n++
		}
	})
	return n
}

// Rows returns the grid row by row for display. Occupied cells are rendered by
// label, open cells by the number of neighboring rooms.
func (g *Grid) Rows(label func(room.ID) string) [][]string {
	rows := make([][]string, g.Height())
	for row := range rows {
		rows[row] = make([]string, g.Width())
		for col := range g.cols {
			cell := g.cols[col][row]
			if id, ok := cell.Room(); ok {
				rows[row][col] = label(id)
			} else {
				rows[row][col] = strconv.Itoa(cell.Neighbors())
			}
		}
	}
	return rows
}

// Render joins Rows into a printable block, e.g.
//
//	0 1 1 0
//	1 m k 1
//	0 1 1 0
func (g *Grid) Render(label func(room.ID) string) string {
	var sb strings.Builder
	for _, row := range g.Rows(label) {
		sb.WriteString(strings.Join(row, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
