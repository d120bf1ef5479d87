// Package render turns a generated layout into screen-space shapes. It holds
// no graphics state so the geometry can be checked without a window; the
// ebiten subpackage draws the result.
package render

import (
	"image/color"
	"strconv"

	"chosenoffset.com/chorehouse/internal/world/grid"
	"chosenoffset.com/chorehouse/internal/world/layout"
	"chosenoffset.com/chorehouse/room"
)

// Rect is an axis-aligned rectangle in pixels
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the pixel is inside r
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RoomShape is one placed room
type RoomShape struct {
	ID     room.ID
	Bounds Rect
	Color  color.RGBA
	Label  string
	Kind   room.Kind
}

// OpenShape is an open cell with at least one flagged side
type OpenShape struct {
	Bounds    Rect
	Neighbors int
	Label     string
}

// Door marks the shared edge between two connected rooms
type Door struct {
	From, To room.ID
	Bounds   Rect
}

// Scene is everything the viewer draws for one layout
type Scene struct {
	Width, Height int // Pixel size of the whole grid
	Rooms         []RoomShape
	Open          []OpenShape
	Doors         []Door
}

var palette = []color.RGBA{
	{0x4e, 0x79, 0xa7, 0xff},
	{0xf2, 0x8e, 0x2b, 0xff},
	{0x59, 0xa1, 0x4f, 0xff},
	{0xb0, 0x7a, 0xa1, 0xff},
	{0x76, 0xb7, 0xb2, 0xff},
	{0xed, 0xc9, 0x48, 0xff},
	{0x9c, 0x75, 0x5f, 0xff},
	{0xff, 0x9d, 0xa7, 0xff},
}

var (
	startingColor = color.RGBA{0x2e, 0x8b, 0x57, 0xff}
	finalColor    = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
)

// RoomColor returns the fill color for a room
func RoomColor(r *room.Room) color.RGBA {
	switch r.Kind {
	case room.KindStarting:
		return startingColor
	case room.KindFinal:
		return finalColor
	}
	return palette[int(r.ID)%len(palette)]
}

// BuildScene lays out a layout with square cells of cellSize pixels
func BuildScene(l *layout.Layout, cellSize int) Scene {
	g := l.Grid()
	cs := float32(cellSize)
	cellRect := func(p grid.Point) Rect {
		return Rect{X: float32(p.Col) * cs, Y: float32(p.Row) * cs, W: cs, H: cs}
	}

	scene := Scene{Width: g.Width() * cellSize, Height: g.Height() * cellSize}

	for _, r := range l.Rooms.Rooms() {
		anchor, ok := g.Anchor(r.ID)
		if !ok {
			continue
		}
		scene.Rooms = append(scene.Rooms, RoomShape{
			ID: r.ID,
			Bounds: Rect{
				X: float32(anchor.Col) * cs,
				Y: float32(anchor.Row) * cs,
				W: float32(r.Size.Width) * cs,
				H: float32(r.Size.Height) * cs,
			},
			Color: RoomColor(r),
			Label: r.Name,
			Kind:  r.Kind,
		})
	}

	g.Each(func(p grid.Point, c grid.Cell) {
		if c.IsOpen() && c.Neighbors() > 0 {
			scene.Open = append(scene.Open, OpenShape{
				Bounds:    cellRect(p),
				Neighbors: c.Neighbors(),
				Label:     strconv.Itoa(c.Neighbors()),
			})
		}
	})

	scene.Doors = findDoors(g, cs)
	return scene
}

// findDoors places one door per connected pair on the first shared edge found
// in column-major order. Only right and bottom edges are checked so each edge
// is seen once.
func findDoors(g *grid.Grid, cs float32) []Door {
	type pair struct{ a, b room.ID }
	seen := make(map[pair]bool)
	var doors []Door
	thickness := cs / 6

	g.Each(func(p grid.Point, c grid.Cell) {
		a, ok := c.Room()
		if !ok {
			return
		}
		edges := []struct {
			next grid.Point
			rect Rect
		}{
			{
				next: p.Add(grid.Point{Col: 1}),
				rect: Rect{
					X: float32(p.Col+1)*cs - thickness/2,
					Y: float32(p.Row)*cs + cs/4,
					W: thickness,
					H: cs / 2,
				},
			},
			{
				next: p.Add(grid.Point{Row: 1}),
				rect: Rect{
					X: float32(p.Col)*cs + cs/4,
					Y: float32(p.Row+1)*cs - thickness/2,
					W: cs / 2,
					H: thickness,
				},
			},
		}
		for _, e := range edges {
			other, ok := g.At(e.next.Col, e.next.Row)
			if !ok {
				continue
			}
			b, ok := other.Room()
			if !ok || b == a {
				continue
			}
			key := pair{min(a, b), max(a, b)}
			if seen[key] {
				continue
			}
			seen[key] = true
			doors = append(doors, Door{From: key.a, To: key.b, Bounds: e.rect})
		}
	})
	return doors
}
