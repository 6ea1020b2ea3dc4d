package colors

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/rgb-guess/internal/core"
	"github.com/vovakirdan/rgb-guess/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 12345}
}

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	g.Reset(testConfig())
	return g
}

// missIndex returns an active tile that does not hold the picked color, or -1.
func missIndex(g *Game) int {
	r := g.Controller().Round()
	for i, c := range r.Colors {
		if c != r.Picked {
			return i
		}
	}
	return -1
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDHard, IDEasy} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}

func TestIDForDifficulty(t *testing.T) {
	tests := []struct {
		id string
		d  Difficulty
	}{
		{IDEasy, Easy},
		{IDHard, Hard},
	}
	for _, tt := range tests {
		if got := IDFor(tt.d); got != tt.id {
			t.Errorf("IDFor(%s) = %q, expected %q", tt.d, got, tt.id)
		}
		if got := DifficultyFor(tt.id); got != tt.d {
			t.Errorf("DifficultyFor(%q) = %s, expected %s", tt.id, got, tt.d)
		}
	}
	if DifficultyFor("unknown") != Hard {
		t.Error("unknown IDs should map to hard")
	}
}

func TestGameStartsOnHard(t *testing.T) {
	g := newTestGame(t, New())

	if g.ID() != IDHard {
		t.Errorf("ID() = %q, expected %q", g.ID(), IDHard)
	}
	if g.Board().View().Selected != Hard {
		t.Error("Hard should be selected at start")
	}
	if g.Controller().Round().Size() != 6 {
		t.Errorf("round size = %d, expected 6", g.Controller().Round().Size())
	}
	if g.State().GameOver {
		t.Error("fresh game should not be over")
	}
}

func TestEasyVariant(t *testing.T) {
	g := NewEasy()
	if g.ID() != IDEasy || g.Title() != "RGB Guess (Easy)" {
		t.Errorf("ID()/Title() = %q/%q before reset", g.ID(), g.Title())
	}

	newTestGame(t, g)
	if g.Controller().Round().Size() != 3 {
		t.Errorf("round size = %d, expected 3", g.Controller().Round().Size())
	}
}

func TestDifficultyActionsChangeID(t *testing.T) {
	g := newTestGame(t, New())

	in := core.NewInputFrame()
	in.Set(core.ActionEasy)
	g.Step(in)

	if g.ID() != IDEasy {
		t.Errorf("ID() = %q after easy, expected %q", g.ID(), IDEasy)
	}

	in.Clear()
	in.Set(core.ActionHard)
	g.Step(in)

	if g.ID() != IDHard {
		t.Errorf("ID() = %q after hard, expected %q", g.ID(), IDHard)
	}
}

func TestStepMissThenMessage(t *testing.T) {
	g := newTestGame(t, New())
	miss := missIndex(g)
	if miss < 0 {
		t.Skip("all colors equal the picked one")
	}

	in := core.NewInputFrame()
	in.SelectTile(miss)
	g.Step(in) // 100ms

	if !g.Board().View().Tiles[miss].Hidden {
		t.Fatal("missed tile should be hidden")
	}
	if msg := g.Board().View().Message; msg != "" {
		t.Errorf("message %q before the fade delay", msg)
	}

	g.Step(core.NewInputFrame()) // 200ms
	if msg := g.Board().View().Message; msg != "Try Again" {
		t.Errorf("message = %q, expected Try Again", msg)
	}
}

func TestStepWinReportsGameOver(t *testing.T) {
	g := newTestGame(t, New())
	g.Step(core.NewInputFrame())

	in := core.NewInputFrame()
	in.SelectTile(g.Controller().Round().PickedIndex)
	res := g.Step(in)

	if !res.State.GameOver {
		t.Fatal("winning click should report game over")
	}
	if res.State.Score != 6 {
		t.Errorf("Score = %d, expected 6 for a first-try win", res.State.Score)
	}

	// Restart keeps session totals and starts a fresh round
	cfg := testConfig()
	cfg.Seed = 999
	g.Reset(cfg)

	if g.State().GameOver {
		t.Error("restart should start an unsolved round")
	}
	if g.Controller().Stats().RoundsWon != 1 {
		t.Errorf("RoundsWon = %d after restart, expected 1", g.Controller().Stats().RoundsWon)
	}
}

func TestCursorAndConfirm(t *testing.T) {
	g := newTestGame(t, New())
	target := g.Controller().Round().PickedIndex

	// Walk the cursor to the target with Right presses
	for g.Cursor() != target {
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		g.Step(in)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)

	if !g.Controller().Won() {
		t.Error("confirm on the picked tile should win")
	}
}

func TestCursorWraps(t *testing.T) {
	g := newTestGame(t, NewEasy())

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if g.Cursor() != 2 {
		t.Errorf("Cursor() = %d after left from 0, expected 2", g.Cursor())
	}
}

func TestMouseClicks(t *testing.T) {
	g := newTestGame(t, New())
	target := g.Controller().Round().PickedIndex

	x, y := g.layout.tiles[target].Center()
	in := core.NewInputFrame()
	in.Click(x, y)
	g.Step(in)

	if !g.Controller().Won() {
		t.Fatal("clicking the picked tile should win")
	}

	ex, ey := g.layout.easy.Center()
	in.Clear()
	in.Click(ex, ey)
	g.Step(in)

	if g.Controller().Difficulty() != Easy || g.Controller().Won() {
		t.Error("clicking EASY should start an easy round")
	}

	rx, ry := g.layout.reset.Center()
	seq := g.Controller().Round().Seq
	in.Clear()
	in.Click(rx, ry)
	g.Step(in)

	if g.Controller().Round().Seq != seq+1 {
		t.Error("clicking the reset control should start a new round")
	}
}

func TestResizeKeepsRound(t *testing.T) {
	g := newTestGame(t, New())
	before := g.Snapshot()

	g.Resize(120, 40)
	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Errorf("Resize changed the round (-before +after):\n%s", diff)
	}

	g.Resize(10, 5)
	if !g.State().Paused {
		t.Error("tiny screen should pause")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	readout := strings.ToUpper(g.Controller().Round().Picked.String())
	if !strings.Contains(screen.Row(1), readout) {
		t.Errorf("header row %q missing readout %q", screen.Row(1), readout)
	}
	if !strings.Contains(screen.Row(barY), "HARD") || !strings.Contains(screen.Row(barY), "NEW COLORS") {
		t.Errorf("control bar = %q", screen.Row(barY))
	}

	r := g.layout.tiles[0]
	cell := screen.GetCell(r.X+r.W-1, r.Y+r.H-1)
	if !cell.Style.HasBg || cell.Style.Bg != g.Controller().Round().Colors[0] {
		t.Errorf("tile 0 corner style = %+v, expected tile color", cell.Style)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 20, 10
	g.Reset(cfg)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too small message")
	}
	if screen.Get(0, 4) != '┌' || screen.Get(19, 7) != '┘' {
		t.Errorf("message should be boxed, got:\n%s", screen.String())
	}
}

func TestRenderWinBanner(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if strings.Contains(screen.String(), "POINTS") {
		t.Fatal("banner shown before the round is won")
	}
	if !strings.Contains(screen.Row(g.layout.status-1), "──") {
		t.Errorf("rule missing above the footer, got %q", screen.Row(g.layout.status-1))
	}

	r := g.Controller().Round()
	for i, c := range r.Colors {
		if c == r.Picked {
			g.Controller().HandleTileClick(i)
			break
		}
	}
	g.Render(screen)

	if !strings.Contains(screen.String(), "+6 POINTS") {
		t.Errorf("win banner missing, got:\n%s", screen.String())
	}
}

func TestGameDeterminism(t *testing.T) {
	a := newTestGame(t, New())
	b := newTestGame(t, New())

	if diff := cmp.Diff(a.Snapshot(), b.Snapshot()); diff != "" {
		t.Errorf("same seed produced different rounds (-a +b):\n%s", diff)
	}
}

func TestBadConfigFallsBackWithDebugLog(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() {
		SetLogger(nil)
		SetConfigPath("")
	})

	g := newTestGame(t, New())

	if g.Controller().Difficulty() != Hard {
		t.Errorf("Difficulty() = %s, expected the default %s", g.Controller().Difficulty(), Hard)
	}
	if !strings.Contains(buf.String(), "using default config") {
		t.Errorf("fallback was not logged, got %q", buf.String())
	}
}
