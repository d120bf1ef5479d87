package layout

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"chosenoffset.com/chorehouse/internal/world/placement"
	"chosenoffset.com/chorehouse/room"
)

const (
	// DefaultRooms is used when the config does not ask for a room count
	DefaultRooms = 8
	// MinRooms covers the starting room, the final room and one chore
	MinRooms = 3
	// DefaultMaxAttempts bounds how many times a failed layout is regenerated
	DefaultMaxAttempts = 5
)

var (
	// ErrRoomCount is returned when the library cannot produce the requested house
	ErrRoomCount = errors.New("invalid number of rooms")
	// ErrDisconnected is returned if a finished layout has unreachable rooms
	ErrDisconnected = errors.New("layout is not connected")
)

// GeneratorConfig holds configuration for layout generation
type GeneratorConfig struct {
	NumRooms    int   // Number of rooms including starting and final (0 = DefaultRooms)
	Seed        int64 // Random seed (0 = use current time)
	MaxAttempts int   // Attempts before giving up on fatal placement errors (0 = DefaultMaxAttempts)
}

// Generator turns a room library into placed, connected layouts
type Generator struct {
	library *room.Library
	config  GeneratorConfig
	rng     *rand.Rand
	logger  *log.Logger
}

// NewGenerator creates a new layout generator
func NewGenerator(library *room.Library, config GeneratorConfig) *Generator {
	if config.NumRooms == 0 {
		config.NumRooms = DefaultRooms
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultMaxAttempts
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		library: library,
		config:  config,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// SetLogger enables debug output for generation and placement
func (g *Generator) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// Config returns the effective configuration
func (g *Generator) Config() GeneratorConfig {
	return g.config
}

// Generate creates a new layout. Each attempt starts from a fresh arena and grid;
// an attempt that hits a fatal placement error is thrown away and the next one
// uses a new seed.
func (g *Generator) Generate() (*Layout, error) {
	if err := g.library.Validate(); err != nil {
		return nil, err
	}
	n := g.config.NumRooms
	if n < MinRooms {
		return nil, fmt.Errorf("%w: need at least %d rooms to play, got %d", ErrRoomCount, MinRooms, n)
	}
	if n > g.library.MaxRooms() {
		return nil, fmt.Errorf("%w: library %q has room for at most %d rooms, got %d",
			ErrRoomCount, g.library.Name, g.library.MaxRooms(), n)
	}

	var lastErr error
	for attempt := 1; attempt <= g.config.MaxAttempts; attempt++ {
		seed := g.rng.Int63()
		layout, err := g.generate(seed)
		if err == nil {
			g.debugf("layout %s generated on attempt %d with seed %d", layout.ID, attempt, seed)
			return layout, nil
		}
		if !placement.IsFatal(err) && !errors.Is(err, ErrDisconnected) {
			return nil, err
		}
		g.debugf("attempt %d with seed %d failed, regenerating: %v", attempt, seed, err)
		lastErr = err
	}

	return nil, fmt.Errorf("failed to generate layout after %d attempts: %w", g.config.MaxAttempts, lastErr)
}

// generate builds the rooms and places them using a single seeded source
func (g *Generator) generate(seed int64) (*Layout, error) {
	rng := rand.New(rand.NewSource(seed))

	arena, chores, err := g.makeRooms(rng)
	if err != nil {
		return nil, err
	}

	engine := placement.NewEngine(arena, rng)
	engine.SetLogger(g.logger)
	for _, r := range arena.Rooms() {
		if _, err := engine.PlaceRoom(r.ID); err != nil {
			return nil, err
		}
	}

	id, err := uuid.NewRandomFromReader(rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("layout id for seed %d: %w", seed, err)
	}

	layout := &Layout{
		ID:       id.String(),
		Seed:     seed,
		Rooms:    arena,
		Engine:   engine,
		Starting: 0,
		Final:    room.ID(arena.Len() - 1),
		Chores:   chores,
	}
	if !layout.Connected() {
		return nil, fmt.Errorf("seed %d: %w", seed, ErrDisconnected)
	}
	return layout, nil
}

// makeRooms creates the starting room, the chore rooms and the final room in
// that order. Chore rooms are drawn from the library without replacement.
func (g *Generator) makeRooms(rng *rand.Rand) (*room.Arena, []string, error) {
	arena := room.NewArena()
	pool := make([]room.ChoreRoom, len(g.library.ChoreRooms))
	copy(pool, g.library.ChoreRooms)

	var chores []string
	n := g.config.NumRooms
	for i := 0; i < n; i++ {
		size := g.library.Sizes[rng.Intn(len(g.library.Sizes))].Size()

		var (
			r   *room.Room
			err error
		)
		switch i {
		case 0:
			r, err = arena.New(g.library.StartingRoom, size, room.KindStarting)
		case n - 1:
			r, err = arena.New(g.library.FinalRoom, size, room.KindFinal)
		default:
			pick := rng.Intn(len(pool))
			chore := pool[pick]
			pool = append(pool[:pick], pool[pick+1:]...)
			r, err = arena.New(chore.Name, size, room.KindNormal, chore.Chore)
			chores = append(chores, chore.Chore)
		}
		if err != nil {
			return nil, nil, err
		}
		g.debugf("created room %d %q (%s, %s)", r.ID, r.Name, r.Kind, r.Size)
	}

	return arena, chores, nil
}

func (g *Generator) debugf(format string, args ...any) {
	if g.logger != nil {
		g.logger.Printf(format, args...)
	}
}
