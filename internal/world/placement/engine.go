// Package placement lays rooms out on a grid so they never overlap and always
// touch at least one room placed before them.
//
// Candidate cells come from a heat map that lists every open cell once per unit
// of weight, so cells boxed in by several rooms are drawn far more often than
// cells touching a single room. Rooms larger than one cell extend from their
// anchor toward increasing column and row only.
package placement

import (
	"fmt"
	"log"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/chorehouse/internal/world/grid"
	"chosenoffset.com/chorehouse/room"
)

// Random is the engine's only source of non-determinism. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Engine places the rooms of one arena onto one grid. Create a new engine for
// every layout; engines share nothing.
type Engine struct {
	grid   *grid.Grid
	rooms  *room.Arena
	heat   HeatMap
	rng    Random
	placed mapset.Set[room.ID]
	logger *log.Logger
}

// NewEngine creates an engine with an empty single-cell grid
func NewEngine(rooms *room.Arena, rng Random) *Engine {
	return &Engine{
		grid:   grid.New(),
		rooms:  rooms,
		rng:    rng,
		placed: mapset.New[room.ID](),
	}
}

// SetLogger enables a step-by-step trace of every placement. nil disables it.
func (e *Engine) SetLogger(logger *log.Logger) {
	e.logger = logger
}

// Grid returns the grid being built
func (e *Engine) Grid() *grid.Grid {
	return e.grid
}

// HeatMap returns a copy of the current heat map
func (e *Engine) HeatMap() HeatMap {
	return e.heat.Clone()
}

// Placed returns the number of rooms placed so far
func (e *Engine) Placed() int {
	return e.placed.Size()
}

// IsPlaced reports whether the room has been committed to the grid
func (e *Engine) IsPlaced(id room.ID) bool {
	return e.placed.Has(id)
}

// PlaceRoom finds a spot for the room and commits it. The first room goes to
// (0, 0); every later room is drawn from the heat map. On success it returns
// the anchor (top-left cell) of the room as of the end of the call.
func (e *Engine) PlaceRoom(id room.ID) (grid.Point, error) {
	r, err := e.lookup(id)
	if err != nil {
		return grid.Point{}, err
	}

	e.debugf("placing room %d %q with size %s", r.ID, r.Name, r.Size)

	var anchor grid.Point
	switch {
	case e.placed.Size() == 0 && len(e.heat) == 0:
		e.debugf("first room, using origin")
	case len(e.heat) == 0:
		return grid.Point{}, fmt.Errorf("place room %d (%s): %w", r.ID, r.Name, ErrNoCandidates)
	default:
		anchor, err = e.pickCandidate(r)
		if err != nil {
			return grid.Point{}, err
		}
	}

	return e.commit(r, anchor)
}

// PlaceRoomAt commits the room with its anchor at (col, row), skipping the heat
// map. The cell must exist and the room's footprint must not overlap any room.
func (e *Engine) PlaceRoomAt(id room.ID, col, row int) (grid.Point, error) {
	r, err := e.lookup(id)
	if err != nil {
		return grid.Point{}, err
	}

	anchor := grid.Point{Col: col, Row: row}
	if _, ok := e.grid.At(col, row); !ok {
		return grid.Point{}, fmt.Errorf("place room %d at %s: %w", r.ID, anchor, grid.ErrOutOfBounds)
	}
	if !e.footprintFree(anchor, r.Size) {
		return grid.Point{}, fmt.Errorf("place room %d at %s: %w", r.ID, anchor, ErrCellOccupied)
	}

	e.debugf("placing room %d %q with size %s at forced cell %s", r.ID, r.Name, r.Size, anchor)
	return e.commit(r, anchor)
}

func (e *Engine) lookup(id room.ID) (*room.Room, error) {
	r := e.rooms.Get(id)
	if r == nil {
		return nil, fmt.Errorf("room %d: %w", id, ErrUnknownRoom)
	}
	if e.placed.Has(id) {
		return nil, fmt.Errorf("room %d (%s): %w", id, r.Name, ErrAlreadyPlaced)
	}
	if err := r.Size.Validate(); err != nil {
		return nil, fmt.Errorf("room %d (%s): %w", id, r.Name, err)
	}
	return r, nil
}

// pickCandidate draws heat map entries without replacement until one fits
func (e *Engine) pickCandidate(r *room.Room) (grid.Point, error) {
	pool := e.heat.Clone()
	draws := 0
	for len(pool) > 0 {
		i := e.rng.Intn(len(pool))
		candidate := pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		draws++

		if e.fits(candidate, r.Size) {
			e.debugf("candidate %s: free", candidate)
			return candidate, nil
		}
		e.debugf("candidate %s: rejected", candidate)
	}
	return grid.Point{}, fmt.Errorf("place room %d (%s) after %d draws: %w", r.ID, r.Name, draws, ErrSearchExhausted)
}

// fits reports whether a room of the given size can be anchored at p
func (e *Engine) fits(p grid.Point, size room.Size) bool {
	cell, ok := e.grid.At(p.Col, p.Row)
	if !ok || !cell.IsOpen() {
		return false
	}
	if size.IsUnit() {
		return true
	}

	downRight := false
	for _, q := range Quadrants(cell) {
		if q == DownRight {
			downRight = true
			break
		}
	}
	if !downRight {
		return false
	}
	return e.footprintFree(p, size)
}

// footprintFree reports whether every cell of the down-right rectangle from p is
// open. Cells beyond the grid count as free.
func (e *Engine) footprintFree(p grid.Point, size room.Size) bool {
	for w := 0; w < size.Width; w++ {
		for h := 0; h < size.Height; h++ {
			cell, ok := e.grid.At(p.Col+w, p.Row+h)
			if ok && !cell.IsOpen() {
				return false
			}
		}
	}
	return true
}

// commit writes the room into every cell of its footprint, marks the open cells
// around it, links it with the rooms it touches and rebuilds the heat map
func (e *Engine) commit(r *room.Room, anchor grid.Point) (grid.Point, error) {
	touching := make(map[room.ID]room.Direction)

	for w := 0; w < r.Size.Width; w++ {
		for anchor.Col+w >= e.grid.Width() {
			e.grid.GrowRight()
		}
		for h := 0; h < r.Size.Height; h++ {
			p := grid.Point{Col: anchor.Col + w, Row: anchor.Row + h}
			for p.Row >= e.grid.Height() {
				e.grid.GrowDown()
			}
			if err := e.grid.Occupy(p.Col, p.Row, r.ID); err != nil {
				return grid.Point{}, fmt.Errorf("place room %d (%s): %w", r.ID, r.Name, err)
			}
			shift, err := e.markNeighbors(p, r.ID, touching)
			if err != nil {
				return grid.Point{}, fmt.Errorf("place room %d (%s): %w", r.ID, r.Name, err)
			}
			anchor = anchor.Add(shift)
		}
	}

	e.connect(r, touching)
	e.placed.Put(r.ID)
	e.heat = BuildHeatMap(e.grid)

	e.debugf("placed room %d %q at %s\n%s", r.ID, r.Name, anchor, e)
	return anchor, nil
}

// markNeighbors looks at the four cells around p, growing the grid where p sits
// on its edge. Open cells get the flag facing p; cells of other rooms are
// recorded in touching. It returns how far p moved because of left/up growth.
func (e *Engine) markNeighbors(p grid.Point, id room.ID, touching map[room.ID]room.Direction) (grid.Point, error) {
	var shift grid.Point

	// left
	if p.Col == 0 {
		e.growLeft()
		p.Col++
		shift.Col++
		if err := e.grid.MarkNeighbor(p.Col-1, p.Row, grid.Right); err != nil {
			return shift, err
		}
	} else if err := e.touch(grid.Point{Col: p.Col - 1, Row: p.Row}, grid.Right, room.West, id, touching); err != nil {
		return shift, err
	}

	// right
	if p.Col == e.grid.Width()-1 {
		e.grid.GrowRight()
		if err := e.grid.MarkNeighbor(p.Col+1, p.Row, grid.Left); err != nil {
			return shift, err
		}
	} else if err := e.touch(grid.Point{Col: p.Col + 1, Row: p.Row}, grid.Left, room.East, id, touching); err != nil {
		return shift, err
	}

	// bottom
	if p.Row == e.grid.Height()-1 {
		e.grid.GrowDown()
		if err := e.grid.MarkNeighbor(p.Col, p.Row+1, grid.Top); err != nil {
			return shift, err
		}
	} else if err := e.touch(grid.Point{Col: p.Col, Row: p.Row + 1}, grid.Top, room.South, id, touching); err != nil {
		return shift, err
	}

	// top
	if p.Row == 0 {
		e.growUp()
		p.Row++
		shift.Row++
		if err := e.grid.MarkNeighbor(p.Col, p.Row-1, grid.Bottom); err != nil {
			return shift, err
		}
	} else if err := e.touch(grid.Point{Col: p.Col, Row: p.Row - 1}, grid.Bottom, room.North, id, touching); err != nil {
		return shift, err
	}

	return shift, nil
}

// touch handles one existing neighbor cell q of a cell of room id. side is the
// flag to set on q if it is open, dir the direction of q as seen from the room.
func (e *Engine) touch(q grid.Point, side grid.Side, dir room.Direction, id room.ID, touching map[room.ID]room.Direction) error {
	cell, _ := e.grid.At(q.Col, q.Row)
	if other, ok := cell.Room(); ok {
		if other != id {
			touching[other] = dir
		}
		return nil
	}
	return e.grid.MarkNeighbor(q.Col, q.Row, side)
}

func (e *Engine) growLeft() {
	e.grid.GrowLeft()
	e.heat.Shift(grid.Point{Col: 1})
}

func (e *Engine) growUp() {
	e.grid.GrowUp()
	e.heat.Shift(grid.Point{Row: 1})
}

// connect links r with every room it touches, in both directions
func (e *Engine) connect(r *room.Room, touching map[room.ID]room.Direction) {
	ids := make([]room.ID, 0, len(touching))
	for id := range touching {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		dir := touching[id]
		neighbor := e.rooms.Get(id)
		r.Connect(id, dir)
		neighbor.Connect(r.ID, dir.Opposite())
		e.debugf("connecting %q %s of %q", neighbor.Name, dir, r.Name)
	}
}

// String renders the grid with room glyphs for occupied cells and neighbor
// counts for open cells
func (e *Engine) String() string {
	return e.grid.Render(func(id room.ID) string {
		if r := e.rooms.Get(id); r != nil {
			return r.Glyph()
		}
		return "?"
	})
}

func (e *Engine) debugf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}
