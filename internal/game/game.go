package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/samdwyer/rogue/internal/console"
	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/gamedata"
	"github.com/samdwyer/rogue/internal/telemetry"
	"github.com/samdwyer/rogue/internal/ui"
)

// Surface is where frames are shown and keys come from.
type Surface interface {
	// Present displays a composed frame.
	Present(f *console.Frame) error
	// PollKey blocks until one key is available.
	PollKey() console.Key
	// SetFullscreen switches the display mode.
	SetFullscreen(on bool)
}

// Game runs the render/input loop over a session.
type Game struct {
	cfg      Config
	surface  Surface
	session  *Session
	renderer *ui.Renderer
	logger   *slog.Logger
	limiter  *rate.Limiter

	con  *console.Frame // Map console
	root *console.Frame // Composed frame handed to the surface

	state      State
	fullscreen bool

	frames metric.Int64Counter
	moves  metric.Int64Counter
}

// New creates a game ready to run. A nil logger discards output.
func New(cfg Config, surface Surface, session *Session, palette gamedata.Palette, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if session == nil || session.Controlled() == nil {
		return nil, errors.New("session has no controlled entity")
	}
	if w, h := session.Map.Width(), session.Map.Height(); w != cfg.MapWidth || h != cfg.MapHeight {
		return nil, fmt.Errorf("map is %dx%d but config expects %dx%d", w, h, cfg.MapWidth, cfg.MapHeight)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	meter := telemetry.Meter("game")
	frames, err := meter.Int64Counter("game.frames",
		metric.WithDescription("Frames presented"))
	if err != nil {
		return nil, err
	}
	moves, err := meter.Int64Counter("game.moves",
		metric.WithDescription("Movement attempts by the controlled entity"))
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		surface:  surface,
		session:  session,
		renderer: ui.NewRenderer(palette),
		logger:   logger,
		limiter:  newFrameLimiter(cfg.FPS),
		con:      console.NewFrame(cfg.MapWidth, cfg.MapHeight),
		root:     console.NewFrame(cfg.ScreenWidth, cfg.ScreenHeight),
		state:    StateRunning,
		frames:   frames,
		moves:    moves,
	}, nil
}

// Run executes the main game loop until quit or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	player := g.session.Controlled()
	g.logger.Info("session started",
		"title", g.cfg.Title,
		"fps", g.cfg.FPS,
		"entities", g.session.Entities.Len(),
		"player", player.Handle.String())

	for g.state == StateRunning {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Step(ctx); err != nil {
			return err
		}
	}

	g.logger.Info("session ended", "x", player.X, "y", player.Y)
	return nil
}

// Step runs one frame: render, present, wait for a key, apply it.
func (g *Game) Step(ctx context.Context) error {
	g.con.Clear()
	g.root.Clear()

	g.renderer.Render(g.con, g.session.Map, g.session.Entities.All())
	g.root.Blit(g.con, 0, 0, g.con.Width(), g.con.Height(), 0, 0)

	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}
	if err := g.surface.Present(g.root); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	g.frames.Add(ctx, 1)

	g.dispatch(ctx, g.surface.PollKey())
	return nil
}

// dispatch applies a single key to the game.
func (g *Game) dispatch(ctx context.Context, key console.Key) {
	switch key {
	case console.KeyQuit:
		g.state = StateExiting
		g.logger.Info("quit requested")
	case console.KeyToggleFullscreen:
		g.fullscreen = !g.fullscreen
		g.surface.SetFullscreen(g.fullscreen)
		g.logger.Debug("display mode changed", "fullscreen", g.fullscreen)
	default:
		if dx, dy, ok := key.Delta(); ok {
			g.movePlayer(ctx, dx, dy)
		}
	}
}

// movePlayer attempts to move the controlled entity by the given delta.
func (g *Game) movePlayer(ctx context.Context, dx, dy int) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "player.move")
	defer span.End()

	player := g.session.Controlled()
	moved := entity.TryMove(player, dx, dy, g.session.Map)

	span.SetAttributes(
		attribute.Int("dx", dx),
		attribute.Int("dy", dy),
		attribute.Bool("moved", moved),
		attribute.Int("x", player.X),
		attribute.Int("y", player.Y),
	)
	g.moves.Add(ctx, 1, metric.WithAttributes(attribute.Bool("moved", moved)))
}

// State returns the current loop state.
func (g *Game) State() State {
	return g.state
}

// Fullscreen reports the current display mode.
func (g *Game) Fullscreen() bool {
	return g.fullscreen
}

// Session returns the simulation state.
func (g *Game) Session() *Session {
	return g.session
}
