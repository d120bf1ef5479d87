package room

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidSize is returned for footprints that are not positive rectangles
	ErrInvalidSize = errors.New("room size must have positive width and height")
	// ErrInvalidDirection is returned when a direction is not one of the four cardinals
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrInvalidKind is returned for unknown room kinds
	ErrInvalidKind = errors.New("invalid room kind")
)

// Kind marks where a room sits in the game: the start, the end, or anywhere between
type Kind int

const (
	KindNormal Kind = iota
	KindStarting
	KindFinal
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindStarting:
		return "starting"
	case KindFinal:
		return "final"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts "normal", "starting" or "final" into a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return KindNormal, nil
	case "starting":
		return KindStarting, nil
	case "final":
		return KindFinal, nil
	}
	return 0, fmt.Errorf("%w: %q (must be normal, starting or final)", ErrInvalidKind, s)
}

// Direction is a cardinal direction from one room to a neighboring room
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in display order
var Directions = [...]Direction{North, South, East, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction pointing back the other way
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// ParseDirection converts a direction name into a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north":
		return North, nil
	case "south":
		return South, nil
	case "east":
		return East, nil
	case "west":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Size is the footprint of a room in grid cells
type Size struct {
	Width  int `json:"width" validate:"gt=0"`
	Height int `json:"height" validate:"gt=0"`
}

// Validate checks that both dimensions are positive
func (s Size) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: got %s", ErrInvalidSize, s)
	}
	return nil
}

// Area returns the number of cells the footprint covers
func (s Size) Area() int {
	return s.Width * s.Height
}

// IsUnit reports whether the footprint is a single cell
func (s Size) IsUnit() bool {
	return s.Width == 1 && s.Height == 1
}

func (s Size) String() string {
	return fmt.Sprintf("(%d, %d)", s.Width, s.Height)
}

// ID identifies a room within its Arena
type ID int

// Room is a single room of the house. Connections are keyed by the neighbor's ID
// and hold the direction in which that neighbor lies.
type Room struct {
	ID          ID
	Name        string
	Size        Size
	Kind        Kind
	Chores      []string
	Connections map[ID]Direction
}

// Connect records that other lies in direction dir from this room
func (r *Room) Connect(other ID, dir Direction) {
	if r.Connections == nil {
		r.Connections = make(map[ID]Direction)
	}
	r.Connections[other] = dir
}

// Neighbors returns the IDs of all connected rooms in ascending order
func (r *Room) Neighbors() []ID {
	ids := make([]ID, 0, len(r.Connections))
	for id := range r.Connections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Doors groups connections by direction. Rooms sharing a direction are ordered by
// ID so "door 1" and "door 2" stay stable between calls.
func (r *Room) Doors() map[Direction][]ID {
	doors := make(map[Direction][]ID)
	for _, id := range r.Neighbors() {
		dir := r.Connections[id]
		doors[dir] = append(doors[dir], id)
	}
	return doors
}

// Glyph is the character used for this room in grid dumps
func (r *Room) Glyph() string {
	if r.Name == "" {
		return "?"
	}
	ch, _ := utf8.DecodeRuneInString(r.Name)
	return string(ch)
}

func (r *Room) String() string {
	var conns []string
	for _, id := range r.Neighbors() {
		conns = append(conns, fmt.Sprintf("%d:%s", id, r.Connections[id]))
	}
	return fmt.Sprintf("Room id: %d\n- name: %s\n- chores: %v\n- size: %s\n- kind: %s\n- connecting rooms: [%s]",
		r.ID, r.Name, r.Chores, r.Size, r.Kind, strings.Join(conns, " "))
}

// Arena owns every room of one layout. IDs are handed out in creation order and
// double as indices, so grid cells and connection maps can refer to rooms by ID.
type Arena struct {
	rooms []*Room
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{}
}

// New creates a room and assigns it the next ID
func (a *Arena) New(name string, size Size, kind Kind, chores ...string) (*Room, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("room name is required")
	}
	if err := size.Validate(); err != nil {
		return nil, fmt.Errorf("room %s: %w", name, err)
	}
	if kind < KindNormal || kind > KindFinal {
		return nil, fmt.Errorf("room %s: %w", name, ErrInvalidKind)
	}

	r := &Room{
		ID:          ID(len(a.rooms)),
		Name:        name,
		Size:        size,
		Kind:        kind,
		Connections: make(map[ID]Direction),
	}
	for _, chore := range chores {
		if chore != "" {
			r.Chores = append(r.Chores, chore)
		}
	}
	a.rooms = append(a.rooms, r)
	return r, nil
}

// Get returns the room with the given ID, or nil if the arena has none
func (a *Arena) Get(id ID) *Room {
	if id < 0 || int(id) >= len(a.rooms) {
		return nil
	}
	return a.rooms[id]
}

// Len returns the number of rooms in the arena
func (a *Arena) Len() int {
	return len(a.rooms)
}

// Rooms returns the rooms in ID order
func (a *Arena) Rooms() []*Room {
	out := make([]*Room, len(a.rooms))
	copy(out, a.rooms)
	return out
}
