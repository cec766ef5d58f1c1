package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/shadowdelve/internal/logger"
	"github.com/samdwyer/shadowdelve/internal/telemetry"
)

// Stats records what a generation run produced.
type Stats struct {
	Rooms       int
	DirectLinks int
	Corridors   int
	Attempts    int
}

// Dungeon is a generated level: the tile grid, the rooms it was built
// from and the observer's start location.
type Dungeon struct {
	ID     uuid.UUID
	Seed   int64
	Params Params
	Grid   *Grid
	Rooms  []Room
	Start  Point
	Stats  Stats

	rng *rand.Rand
	log logrus.FieldLogger
}

// NewDungeon validates p and prepares an empty dungeon. A nil log
// discards output.
func NewDungeon(p Params, seed int64, log logrus.FieldLogger) (*Dungeon, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	id := uuid.New()
	return &Dungeon{
		ID:     id,
		Seed:   seed,
		Params: p,
		Grid:   NewGrid(p.Width, p.Height),
		rng:    rand.New(rand.NewSource(seed)),
		log: logger.OrDiscard(log).WithFields(logrus.Fields{
			"component":  "world",
			"dungeon_id": id.String(),
			"seed":       seed,
		}),
	}, nil
}

// Generate validates p and builds a dungeon from seed.
func Generate(ctx context.Context, p Params, seed int64, log logrus.FieldLogger) (*Dungeon, error) {
	d, err := NewDungeon(p, seed, log)
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}
	d.Generate(ctx)
	return d, nil
}

// Generate samples rooms, connects them and picks the start location.
// Calling it again rebuilds the layout from the dungeon's RNG stream.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	p := d.Params
	d.Grid = NewGrid(p.Width, p.Height)

	// TargetRooms floors at one so grids smaller than the density
	// heuristic's unit still get a room.
	rooms, attempts := SampleRooms(d.rng, p.Width, p.Height, p.MinRoom, p.MaxRoom, p.TargetRooms(), p.attempts())
	d.Rooms = rooms
	d.log.WithFields(logrus.Fields{
		"rooms":    len(rooms),
		"target":   p.TargetRooms(),
		"attempts": attempts,
	}).Debug("rooms sampled")

	route := Connect(d.Grid, rooms)
	d.log.WithFields(logrus.Fields{
		"direct_links": route.DirectLinks,
		"corridors":    route.Corridors,
	}).Debug("rooms connected")

	d.Start = d.pickStart()
	d.Stats = Stats{
		Rooms:       len(rooms),
		DirectLinks: route.DirectLinks,
		Corridors:   route.Corridors,
		Attempts:    attempts,
	}

	regions := d.Grid.WalkableRegions()
	if regions > 1 {
		span.SetStatus(codes.Error, "disconnected layout")
		d.log.WithField("regions", regions).Warn("dungeon has more than one walkable region")
	}

	span.SetAttributes(
		attribute.String("dungeon.id", d.ID.String()),
		attribute.Int64("dungeon.seed", d.Seed),
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.direct_links", route.DirectLinks),
		attribute.Int("dungeon.corridors", route.Corridors),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	d.log.WithFields(logrus.Fields{
		"rooms":     len(rooms),
		"corridors": route.Corridors,
		"start":     d.Start.String(),
	}).Info("dungeon generated")
}

// pickStart returns the first room's centroid, or the grid centre when no
// room was placed.
func (d *Dungeon) pickStart() Point {
	if len(d.Rooms) == 0 {
		return Point{d.Grid.Width() / 2, d.Grid.Height() / 2}
	}
	return d.Rooms[0].Center()
}

// IsWalkable reports whether the given position can be walked on.
func (d *Dungeon) IsWalkable(x, y int) bool {
	return d.Grid.IsWalkable(x, y)
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// RandomPointInRoom returns a random walkable point within the specified
// room, drawn from rng. ok is false for an unknown room index.
func (d *Dungeon) RandomPointInRoom(rng *rand.Rand, roomIndex int) (p Point, ok bool) {
	if roomIndex < 0 || roomIndex >= len(d.Rooms) {
		return Point{-1, -1}, false
	}
	room := d.Rooms[roomIndex]

	for i := 0; i < 100; i++ {
		x := room.X + rng.Intn(room.Width)
		y := room.Y + rng.Intn(room.Height)
		if d.IsWalkable(x, y) {
			return Point{x, y}, true
		}
	}

	return room.Center(), true
}
