package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/shadowdelve/internal/entity"
	"github.com/samdwyer/shadowdelve/internal/gamedata"
	"github.com/samdwyer/shadowdelve/internal/logger"
	"github.com/samdwyer/shadowdelve/internal/telemetry"
	"github.com/samdwyer/shadowdelve/internal/ui"
	"github.com/samdwyer/shadowdelve/internal/world"
)

// Terminal is the screen the game draws to and reads input from.
type Terminal interface {
	ui.Canvas
	PollEvent() tcell.Event
	Sync()
	Close()
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	log      logrus.FieldLogger
	screen   Terminal
	renderer *ui.Renderer
	dungeon  *world.Dungeon
	observer *entity.Observer
	rng      *rand.Rand
	state    State
	running  bool
	moves    int
	visible  int
}

// New creates a new game instance on the terminal.
func New(cfg Config, log logrus.FieldLogger) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(cfg, log, screen, palette), nil
}

func newGame(cfg Config, log logrus.FieldLogger, screen Terminal, palette *gamedata.Palette) *Game {
	return &Game{
		cfg:      cfg,
		log:      logger.OrDiscard(log).WithField("component", "game"),
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		state:    StateExplore,
		running:  true,
	}
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.init(ctx); err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(g.dungeon, g.observer, g.status())
		g.handleInput(ctx)
	}
	return nil
}

// init generates a dungeon and places the observer at its start.
func (g *Game) init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d, err := world.Generate(ctx, g.cfg.Params(), seed, g.log)
	if err != nil {
		return err
	}
	g.dungeon = d
	g.observer = entity.NewObserver(d.Start.X, d.Start.Y, g.cfg.SightRadius)
	g.rng = rand.New(rand.NewSource(seed))
	g.moves = 0
	g.updateVisibility(ctx)

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(d.Rooms)),
		attribute.Int("observer.start_x", d.Start.X),
		attribute.Int("observer.start_y", d.Start.Y),
	)
	g.log.WithFields(logrus.Fields{
		"seed":       seed,
		"dungeon_id": d.ID.String(),
	}).Info("game started")
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// screen finalized
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'k':
			g.tryMove(ctx, 0, -1)
		case 'j':
			g.tryMove(ctx, 0, 1)
		case 'h':
			g.tryMove(ctx, -1, 0)
		case 'l':
			g.tryMove(ctx, 1, 0)
		case 'm':
			g.toggleOverview()
		case 't':
			g.teleport(ctx)
		case 'n':
			g.cfg.Seed = g.dungeon.Seed + 1
			if err := g.init(ctx); err != nil {
				g.log.WithError(err).Error("regenerate dungeon")
				g.running = false
			}
		}
	}
}

// tryMove attempts to move the observer by the given delta. Visibility is
// recomputed only when the observer actually moved.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	if g.observer.TryMove(dx, dy, g.dungeon.IsWalkable) {
		g.moves++
		g.updateVisibility(ctx)
	}
}

// teleport drops the observer on a random walkable tile of a random room.
func (g *Game) teleport(ctx context.Context) {
	if len(g.dungeon.Rooms) == 0 {
		return
	}
	p, ok := g.dungeon.RandomPointInRoom(g.rng, g.rng.Intn(len(g.dungeon.Rooms)))
	if !ok {
		return
	}
	g.observer.X, g.observer.Y = p.X, p.Y
	g.moves++
	g.updateVisibility(ctx)
}

func (g *Game) updateVisibility(ctx context.Context) {
	x, y := g.observer.Position()
	origin := world.Point{X: x, Y: y}
	visible := world.ComputeVisibility(ctx, g.dungeon.Grid, origin, g.observer.SightRadius)
	g.visible = len(visible)

	g.log.WithFields(logrus.Fields{
		"origin":  origin.String(),
		"visible": g.visible,
	}).Debug("visibility updated")
}

func (g *Game) toggleOverview() {
	if g.state == StateExplore {
		g.state = StateOverview
	} else {
		g.state = StateExplore
	}
	g.renderer.SetReveal(g.state == StateOverview)
}

func (g *Game) status() string {
	x, y := g.observer.Position()
	where := "corridor"
	if i := g.dungeon.RoomIndexAt(x, y); i >= 0 {
		where = fmt.Sprintf("room %d", i+1)
	}
	return fmt.Sprintf("seed %d | %s | %s %d,%d | sees %d | moves %d | arrows/hjkl move, t jump, m map, n new, q quit",
		g.dungeon.Seed, g.state, where, x, y, g.visible, g.moves)
}
