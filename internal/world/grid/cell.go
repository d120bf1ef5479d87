package grid

import (
	"fmt"

	"chosenoffset.com/chorehouse/room"
)

// Side names one edge of an open cell. A set flag on that side means a placed
// room touches the cell from there.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Valid reports whether s is one of the four sides
func (s Side) Valid() bool {
	return s >= Left && s <= Bottom
}

// Flags holds one neighbor-present bit per side, indexed by Side
type Flags [4]bool

// Count returns how many sides have a neighboring room
func (f Flags) Count() int {
	n := 0
	for _, set := range f {
		if set {
			n++
		}
	}
	return n
}

// Cell is either occupied by a room or open with neighbor flags, never both.
// The zero value is an open cell with no neighbors.
type Cell struct {
	room     room.ID
	occupied bool
	flags    Flags
}

// Open returns an open cell with no flags set
func Open() Cell {
	return Cell{}
}

// Occupied returns a cell holding the given room
func Occupied(id room.ID) Cell {
	return Cell{room: id, occupied: true}
}

// IsOpen reports whether no room occupies the cell
func (c Cell) IsOpen() bool {
	return !c.occupied
}

// Room returns the occupying room, if any
func (c Cell) Room() (room.ID, bool) {
	return c.room, c.occupied
}

// Flags returns the neighbor flags of an open cell. Occupied cells have none.
func (c Cell) Flags() Flags {
	if c.occupied {
		return Flags{}
	}
	return c.flags
}

// Has reports whether the flag on side s is set
func (c Cell) Has(s Side) bool {
	return !c.occupied && s.Valid() && c.flags[s]
}

// Neighbors returns the number of sides touching a placed room
func (c Cell) Neighbors() int {
	return c.Flags().Count()
}

// Point addresses a cell by column and row. Column 0 is the leftmost allocated
// column and row 0 the topmost allocated row.
type Point struct {
	Col int
	Row int
}

// Add returns p shifted by d
func (p Point) Add(d Point) Point {
	return Point{Col: p.Col + d.Col, Row: p.Row + d.Row}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}
