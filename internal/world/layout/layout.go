// Package layout generates complete houses: a room set drawn from a library,
// placed on a grid by the placement engine and checked for connectivity.
package layout

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/chorehouse/internal/world/grid"
	"chosenoffset.com/chorehouse/internal/world/placement"
	"chosenoffset.com/chorehouse/room"
)

// Layout is one generated house
type Layout struct {
	ID       string // Derived from Seed, so equal seeds give equal IDs
	Seed     int64  // Seed the layout was generated from
	Rooms    *room.Arena
	Engine   *placement.Engine
	Starting room.ID
	Final    room.ID
	Chores   []string // Chores in the order their rooms were created
}

// Grid returns the grid the rooms were placed on
func (l *Layout) Grid() *grid.Grid {
	return l.Engine.Grid()
}

// Room returns the room with the given ID, or nil
func (l *Layout) Room(id room.ID) *room.Room {
	return l.Rooms.Get(id)
}

// Doors returns the rooms reachable from id grouped by direction. Rooms in the
// same direction are ordered by ID.
func (l *Layout) Doors(id room.ID) map[room.Direction][]*room.Room {
	r := l.Rooms.Get(id)
	if r == nil {
		return nil
	}
	doors := make(map[room.Direction][]*room.Room)
	for dir, ids := range r.Doors() {
		for _, nb := range ids {
			doors[dir] = append(doors[dir], l.Rooms.Get(nb))
		}
	}
	return doors
}

// Reachable returns every room that can be walked to from the given room,
// including the room itself
func (l *Layout) Reachable(from room.ID) mapset.Set[room.ID] {
	visited := mapset.New[room.ID]()
	if l.Rooms.Get(from) == nil {
		return visited
	}

	queue := []room.ID{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Has(current) {
			continue
		}
		visited.Put(current)
		for _, nb := range l.Rooms.Get(current).Neighbors() {
			if !visited.Has(nb) {
				queue = append(queue, nb)
			}
		}
	}
	return visited
}

// Connected reports whether every room can be reached from the starting room
func (l *Layout) Connected() bool {
	return l.Reachable(l.Starting).Size() == l.Rooms.Len()
}

// OccupiedCells returns the number of grid cells covered by rooms
func (l *Layout) OccupiedCells() int {
	return l.Grid().Occupancy()
}

// String prints the grid followed by every room and its doors
func (l *Layout) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Layout %s (seed %d)\n\n", l.ID, l.Seed)
	sb.WriteString(l.Engine.String())
	for _, r := range l.Rooms.Rooms() {
		fmt.Fprintf(&sb, "\n%s\n", r)
		doors := l.Doors(r.ID)
		for _, dir := range room.Directions {
			rooms := doors[dir]
			if len(rooms) == 1 {
				fmt.Fprintf(&sb, "  - %s: %s\n", dir, rooms[0].Name)
				continue
			}
			for i, nb := range rooms {
				fmt.Fprintf(&sb, "  - %s: door %d: %s\n", dir, i+1, nb.Name)
			}
		}
	}
	return sb.String()
}
