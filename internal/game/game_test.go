package game

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/rogue/internal/console"
	"github.com/samdwyer/rogue/internal/gamedata"
)

// fakeSurface replays a fixed key sequence and records presented frames.
// Once the keys run out it reports quit.
type fakeSurface struct {
	keys        []console.Key
	presents    int
	last        *console.Frame
	fullscreen  []bool
	presentErr  error
	pollsBefore []int // presents seen at each PollKey
}

func (f *fakeSurface) Present(frame *console.Frame) error {
	if f.presentErr != nil {
		return f.presentErr
	}
	f.presents++
	f.last = frame
	return nil
}

func (f *fakeSurface) PollKey() console.Key {
	f.pollsBefore = append(f.pollsBefore, f.presents)
	if len(f.keys) == 0 {
		return console.KeyQuit
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k
}

func (f *fakeSurface) SetFullscreen(on bool) {
	f.fullscreen = append(f.fullscreen, on)
}

var testPalette = gamedata.Palette{
	DarkWall:   console.Color{R: 0, G: 0, B: 100},
	DarkGround: console.Color{R: 50, G: 50, B: 15},
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.FPS = 0
	return cfg
}

func newTestGame(t *testing.T, px, py int, keys ...console.Key) (*Game, *fakeSurface) {
	t.Helper()
	layout := gamedata.LayoutDef{
		Width:  80,
		Height: 45,
		Walls:  []gamedata.Point{{X: 30, Y: 22}, {X: 50, Y: 22}},
	}
	spawns := []gamedata.SpawnDef{
		{Name: "player", Glyph: "@", Color: "#FFFFFF", X: px, Y: py, Controlled: true},
		{Name: "npc", Glyph: "@", Color: "#FFFF00", X: 40, Y: 25},
	}
	session, err := NewSession(context.Background(), layout, spawns)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	surface := &fakeSurface{keys: keys}
	g, err := New(testConfig(), surface, session, testPalette, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g, surface
}

func playerPos(g *Game) (int, int) {
	return g.Session().Controlled().Position()
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateRunning, "running"},
		{StateExiting, "exiting"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestNewGameStartsRunning(t *testing.T) {
	g, _ := newTestGame(t, 25, 23)
	if g.State() != StateRunning {
		t.Errorf("State() = %v, want running", g.State())
	}
	if g.Fullscreen() {
		t.Error("Fullscreen() = true, want false")
	}
}

func TestRunMovementScenarios(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		keys         []console.Key
		wantX, wantY int
	}{
		{"blocked by wall", 29, 22, []console.Key{console.KeyRight}, 29, 22},
		{"open cell beside wall", 29, 23, []console.Key{console.KeyRight}, 30, 23},
		{"left map edge", 0, 0, []console.Key{console.KeyLeft}, 0, 0},
		{"repeated rejection", 29, 22, []console.Key{console.KeyRight, console.KeyRight, console.KeyRight}, 29, 22},
		{"walk a square", 10, 10, []console.Key{console.KeyUp, console.KeyRight, console.KeyDown, console.KeyLeft}, 10, 10},
		{"ignored keys", 10, 10, []console.Key{console.KeyNone, console.KeyDown}, 10, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, tt.x, tt.y, tt.keys...)
			if err := g.Run(context.Background()); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if x, y := playerPos(g); x != tt.wantX || y != tt.wantY {
				t.Errorf("player at (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestQuitStopsWithoutFurtherRenders(t *testing.T) {
	g, surface := newTestGame(t, 25, 23, console.KeyRight, console.KeyQuit, console.KeyRight)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if g.State() != StateExiting {
		t.Errorf("State() = %v, want exiting", g.State())
	}
	if surface.presents != 2 {
		t.Errorf("presents = %d, want 2", surface.presents)
	}
	if len(surface.keys) != 1 {
		t.Errorf("unread keys = %d, want 1", len(surface.keys))
	}
	if x, y := playerPos(g); x != 26 || y != 23 {
		t.Errorf("player at (%d,%d), want (26,23)", x, y)
	}
}

func TestRenderCompletesBeforeInput(t *testing.T) {
	g, surface := newTestGame(t, 25, 23, console.KeyUp, console.KeyUp)
	g.Run(context.Background())

	for i, seen := range surface.pollsBefore {
		if seen != i+1 {
			t.Errorf("poll %d saw %d presents, want %d", i, seen, i+1)
		}
	}
}

func TestToggleFullscreen(t *testing.T) {
	g, surface := newTestGame(t, 25, 23, console.KeyToggleFullscreen, console.KeyToggleFullscreen, console.KeyToggleFullscreen)
	g.Run(context.Background())

	want := []bool{true, false, true}
	if len(surface.fullscreen) != len(want) {
		t.Fatalf("SetFullscreen calls = %v, want %v", surface.fullscreen, want)
	}
	for i := range want {
		if surface.fullscreen[i] != want[i] {
			t.Errorf("SetFullscreen call %d = %v, want %v", i, surface.fullscreen[i], want[i])
		}
	}
	if !g.Fullscreen() {
		t.Error("Fullscreen() = false after three toggles")
	}
	if x, y := playerPos(g); x != 25 || y != 23 {
		t.Errorf("toggle moved player to (%d,%d)", x, y)
	}
}

func TestStepComposesFrame(t *testing.T) {
	g, surface := newTestGame(t, 25, 23, console.KeyNone)
	if err := g.Step(context.Background()); err != nil {
		t.Fatalf("Step() error = %v", err)
	}

	f := surface.last
	if f.Width() != 80 || f.Height() != 50 {
		t.Fatalf("frame size = %dx%d, want 80x50", f.Width(), f.Height())
	}

	player := f.Cell(25, 23)
	if player.Glyph != '@' || player.Fg != console.White || player.Bg != testPalette.DarkGround {
		t.Errorf("Cell(25,23) = %+v, want white '@' on ground", player)
	}
	npc := f.Cell(40, 25)
	if npc.Glyph != '@' || npc.Fg != console.Yellow {
		t.Errorf("Cell(40,25) = %+v, want yellow '@'", npc)
	}
	if got := f.Cell(30, 22).Bg; got != testPalette.DarkWall {
		t.Errorf("Cell(30,22).Bg = %+v, want dark wall", got)
	}
	if got := f.Cell(0, 47).Bg; got != console.Black {
		t.Errorf("Cell(0,47).Bg = %+v, want black below the map", got)
	}
}

func TestStepClearsPreviousFrame(t *testing.T) {
	g, surface := newTestGame(t, 25, 23, console.KeyRight, console.KeyNone)
	g.Step(context.Background())
	g.Step(context.Background())

	if got := surface.last.Cell(25, 23).Glyph; got != ' ' {
		t.Errorf("old player cell glyph = %q, want blank", got)
	}
	if got := surface.last.Cell(26, 23).Glyph; got != '@' {
		t.Errorf("new player cell glyph = %q, want '@'", got)
	}
}

func TestStepPresentError(t *testing.T) {
	g, surface := newTestGame(t, 25, 23)
	surface.presentErr = errors.New("display gone")

	if err := g.Run(context.Background()); !errors.Is(err, surface.presentErr) {
		t.Errorf("Run() error = %v, want %v", err, surface.presentErr)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	g, surface := newTestGame(t, 25, 23, console.KeyRight)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if surface.presents != 0 {
		t.Errorf("presents = %d, want 0", surface.presents)
	}
}

func TestMoveIsTraced(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	g, _ := newTestGame(t, 29, 22, console.KeyRight)
	g.Run(context.Background())

	var moves int
	for _, s := range rec.Ended() {
		if s.Name() != "player.move" {
			continue
		}
		moves++
		for _, kv := range s.Attributes() {
			if kv.Key == "moved" && kv.Value.AsBool() {
				t.Error("player.move span reports moved=true into a wall")
			}
		}
	}
	if moves != 1 {
		t.Errorf("player.move spans = %d, want 1", moves)
	}
}

func TestNewRejectsBadInputs(t *testing.T) {
	session, err := LoadSession(context.Background())
	if err != nil {
		t.Fatalf("LoadSession() error = %v", err)
	}

	bad := testConfig()
	bad.MapHeight = 60
	if _, err := New(bad, &fakeSurface{}, session, testPalette, nil); err == nil {
		t.Error("New() should reject a map console larger than the screen")
	}
	if _, err := New(testConfig(), &fakeSurface{}, nil, testPalette, nil); err == nil {
		t.Error("New() should reject a nil session")
	}
}

func TestNewRejectsMapSizeMismatch(t *testing.T) {
	session, err := LoadSession(context.Background())
	if err != nil {
		t.Fatalf("LoadSession() error = %v", err)
	}

	cfg := testConfig()
	cfg.MapWidth = 40
	if _, err := New(cfg, &fakeSurface{}, session, testPalette, nil); err == nil {
		t.Error("New() should reject a map console that differs from the session map")
	}
}

func TestRunRecordsMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	// Right bumps the wall at (30,22); Down is open.
	g, _ := newTestGame(t, 29, 22, console.KeyRight, console.KeyDown)
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	sums := map[string]metricdata.Sum[int64]{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				sums[m.Name] = sum
			}
		}
	}

	frames, ok := sums["game.frames"]
	if !ok || len(frames.DataPoints) != 1 {
		t.Fatalf("game.frames = %+v, want one data point", frames)
	}
	if got := frames.DataPoints[0].Value; got != 3 {
		t.Errorf("game.frames = %d, want 3", got)
	}

	moves, ok := sums["game.moves"]
	if !ok {
		t.Fatal("game.moves not recorded")
	}
	byMoved := map[bool]int64{}
	for _, dp := range moves.DataPoints {
		v, ok := dp.Attributes.Value("moved")
		if !ok {
			t.Fatalf("game.moves data point missing moved attribute: %+v", dp)
		}
		byMoved[v.AsBool()] += dp.Value
	}
	if byMoved[true] != 1 || byMoved[false] != 1 {
		t.Errorf("game.moves by moved = %v, want one accepted and one rejected", byMoved)
	}
}
