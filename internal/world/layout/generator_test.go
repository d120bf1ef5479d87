package layout

import (
	"bytes"
	"errors"
	"log"
	"math/rand"
	"strings"
	"testing"

	"chosenoffset.com/chorehouse/internal/world/placement"
	"chosenoffset.com/chorehouse/room"
)

func TestGenerateDefaultHouse(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		gen := NewGenerator(room.DefaultLibrary(), GeneratorConfig{Seed: seed})
		l, err := gen.Generate()
		if err != nil {
			t.Fatalf("seed %d: Generate failed: %v", seed, err)
		}

		if l.Rooms.Len() != DefaultRooms {
			t.Fatalf("seed %d: expected %d rooms, got %d", seed, DefaultRooms, l.Rooms.Len())
		}
		if start := l.Room(l.Starting); start.Kind != room.KindStarting || start.Name != "man cave" {
			t.Errorf("seed %d: unexpected starting room %s (%s)", seed, start.Name, start.Kind)
		}
		if final := l.Room(l.Final); final.Kind != room.KindFinal || final.Name != "Master bedroom" {
			t.Errorf("seed %d: unexpected final room %s (%s)", seed, final.Name, final.Kind)
		}

		area := 0
		names := map[string]bool{}
		for _, r := range l.Rooms.Rooms() {
			area += r.Size.Area()
			if names[r.Name] {
				t.Errorf("seed %d: room name %q used twice", seed, r.Name)
			}
			names[r.Name] = true
			if r.Kind == room.KindNormal && len(r.Chores) != 1 {
				t.Errorf("seed %d: expected one chore in %s, got %v", seed, r.Name, r.Chores)
			}
			if r.Kind != room.KindNormal && len(r.Chores) != 0 {
				t.Errorf("seed %d: expected no chores in %s, got %v", seed, r.Name, r.Chores)
			}
		}
		if len(l.Chores) != DefaultRooms-2 {
			t.Errorf("seed %d: expected %d chores, got %d", seed, DefaultRooms-2, len(l.Chores))
		}
		if l.OccupiedCells() != area {
			t.Errorf("seed %d: expected %d occupied cells, got %d", seed, area, l.OccupiedCells())
		}
		if !l.Connected() {
			t.Errorf("seed %d: layout is not connected:\n%s", seed, l)
		}
		if l.ID == "" {
			t.Errorf("seed %d: expected layout ID", seed)
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	cfg := GeneratorConfig{NumRooms: 10, Seed: 1234}
	a, err := NewGenerator(room.DefaultLibrary(), cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := NewGenerator(room.DefaultLibrary(), cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if a.Seed != b.Seed {
		t.Errorf("Expected equal seeds, got %d and %d", a.Seed, b.Seed)
	}
	if a.Engine.String() != b.Engine.String() {
		t.Errorf("Expected identical grids:\n%s\n%s", a.Engine, b.Engine)
	}
	for i, r := range a.Rooms.Rooms() {
		other := b.Rooms.Get(r.ID)
		if other.Name != r.Name || other.Size != r.Size {
			t.Errorf("Room %d differs: %s %s vs %s %s", i, r.Name, r.Size, other.Name, other.Size)
		}
	}
	if a.ID != b.ID {
		t.Errorf("Expected equal IDs for equal seeds, got %s and %s", a.ID, b.ID)
	}

	c, err := NewGenerator(room.DefaultLibrary(), GeneratorConfig{NumRooms: 10, Seed: 4321}).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.ID == a.ID {
		t.Errorf("Expected different seeds to give different IDs, both got %s", a.ID)
	}
}

func TestGenerateRoomCount(t *testing.T) {
	tests := []struct {
		name     string
		numRooms int
		wantErr  bool
	}{
		{"too few", 2, true},
		{"minimum", 3, false},
		{"maximum", 10, false},
		{"more than the library holds", 11, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(room.DefaultLibrary(), GeneratorConfig{NumRooms: tt.numRooms, Seed: 7})
			l, err := gen.Generate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Generate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrRoomCount) {
					t.Errorf("Expected ErrRoomCount, got %v", err)
				}
				return
			}
			if l.Rooms.Len() != tt.numRooms {
				t.Errorf("Expected %d rooms, got %d", tt.numRooms, l.Rooms.Len())
			}
		})
	}
}

func TestGenerateRejectsInvalidLibrary(t *testing.T) {
	lib := room.DefaultLibrary()
	lib.Sizes = nil
	if _, err := NewGenerator(lib, GeneratorConfig{Seed: 1}).Generate(); err == nil {
		t.Error("Expected error for library without sizes")
	}
}

func TestGeneratorDefaults(t *testing.T) {
	cfg := NewGenerator(room.DefaultLibrary(), GeneratorConfig{}).Config()
	if cfg.NumRooms != DefaultRooms {
		t.Errorf("Expected %d rooms, got %d", DefaultRooms, cfg.NumRooms)
	}
	if cfg.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("Expected %d attempts, got %d", DefaultMaxAttempts, cfg.MaxAttempts)
	}
}

func TestGeneratorLogging(t *testing.T) {
	var buf bytes.Buffer
	gen := NewGenerator(room.DefaultLibrary(), GeneratorConfig{NumRooms: 4, Seed: 5})
	gen.SetLogger(log.New(&buf, "", 0))
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`created room 0 "man cave"`, "placing room 3", "generated on attempt 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log to contain %q", want)
		}
	}
}

// handmade places rooms at fixed cells:
//
//	a b
//	c
//	d
func handmade(t *testing.T) *Layout {
	t.Helper()
	arena := room.NewArena()
	for _, name := range []string{"a", "b", "c", "d"} {
		if _, err := arena.New(name, room.Size{Width: 1, Height: 1}, room.KindNormal); err != nil {
			t.Fatalf("New failed: %v", err)
		}
	}
	e := placement.NewEngine(arena, rand.New(rand.NewSource(1)))
	if _, err := e.PlaceRoom(0); err != nil {
		t.Fatalf("PlaceRoom failed: %v", err)
	}
	// a is at (1, 1)
	steps := []struct {
		id       room.ID
		col, row int
	}{
		{1, 2, 1},
		{2, 1, 2},
		{3, 1, 3},
	}
	for _, s := range steps {
		if _, err := e.PlaceRoomAt(s.id, s.col, s.row); err != nil {
			t.Fatalf("PlaceRoomAt(%d) failed: %v", s.id, err)
		}
	}
	return &Layout{ID: "test", Rooms: arena, Engine: e, Starting: 0, Final: 3}
}

func TestLayoutDoors(t *testing.T) {
	l := handmade(t)

	doors := l.Doors(0)
	if len(doors[room.East]) != 1 || doors[room.East][0].Name != "b" {
		t.Errorf("Expected b east of a, got %v", doors[room.East])
	}
	if len(doors[room.South]) != 1 || doors[room.South][0].Name != "c" {
		t.Errorf("Expected c south of a, got %v", doors[room.South])
	}
	if len(doors[room.North]) != 0 || len(doors[room.West]) != 0 {
		t.Errorf("Expected no north or west doors, got %v", doors)
	}

	back := l.Doors(3)
	if len(back[room.North]) != 1 || back[room.North][0].Name != "c" {
		t.Errorf("Expected c north of d, got %v", back[room.North])
	}
	if l.Doors(42) != nil {
		t.Error("Expected nil doors for unknown room")
	}

	out := l.String()
	if !strings.Contains(out, "east: b") || !strings.Contains(out, "north: c") {
		t.Errorf("Expected door listing in output:\n%s", out)
	}
}

func TestLayoutReachable(t *testing.T) {
	l := handmade(t)

	seen := l.Reachable(3)
	if seen.Size() != 4 {
		t.Errorf("Expected 4 reachable rooms, got %d", seen.Size())
	}
	for id := room.ID(0); id < 4; id++ {
		if !seen.Has(id) {
			t.Errorf("Expected room %d to be reachable", id)
		}
	}
	if !l.Connected() {
		t.Error("Expected layout to be connected")
	}
	if l.Reachable(99).Size() != 0 {
		t.Error("Expected nothing reachable from an unknown room")
	}

	// Cut b off from a: b is now only reachable from itself
	a, b := l.Room(0), l.Room(1)
	delete(a.Connections, b.ID)
	delete(b.Connections, a.ID)
	if l.Connected() {
		t.Error("Expected layout to be disconnected")
	}
	if l.Reachable(1).Size() != 1 {
		t.Errorf("Expected b alone, got %d rooms", l.Reachable(1).Size())
	}
}
