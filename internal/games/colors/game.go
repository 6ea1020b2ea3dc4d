package colors

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rgb-guess/internal/config"
	"github.com/vovakirdan/rgb-guess/internal/core"
	"github.com/vovakirdan/rgb-guess/internal/registry"
)

// Game IDs. The ID of a running game follows its current difficulty.
const (
	IDHard = "colors"
	IDEasy = "colors_easy"
)

const (
	gridCols = 3
	minW     = 30
	minH     = 16
)

// Game adapts the controller to the game platform.
type Game struct {
	start Difficulty // Difficulty of the first round
	cfg   config.ColorsConfig
	rng   *rand.Rand
	tick  uint64

	tickDur time.Duration // Simulated time per Step

	board *Board
	ctrl  *Controller

	cursor int

	// Screen dimensions
	screenW int
	screenH int

	layout   layout
	tooSmall bool
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetLogger sets the logger used while loading config. Nil silences it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides the starting difficulty of the "colors" game.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a game that starts on the configured difficulty (Hard by default).
func New() *Game {
	return &Game{}
}

// NewEasy creates a game that starts on Easy.
func NewEasy() *Game {
	return &Game{start: Easy}
}

func init() {
	registry.Register(IDHard, func() registry.Game {
		return New()
	})
	registry.Register(IDEasy, func() registry.Game {
		return NewEasy()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDFor(g.Difficulty())
}

// IDFor returns the game ID that scores rounds played on d.
func IDFor(d Difficulty) string {
	if d == Easy {
		return IDEasy
	}
	return IDHard
}

// DifficultyFor maps a game ID back to its difficulty. Unknown IDs map to Hard.
func DifficultyFor(id string) Difficulty {
	if id == IDEasy {
		return Easy
	}
	return Hard
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.ctrl == nil && g.start == Easy {
		return "RGB Guess (Easy)"
	}
	return "RGB Guess"
}

// Difficulty returns the current difficulty, or the starting one before Reset.
func (g *Game) Difficulty() Difficulty {
	if g.ctrl != nil {
		return g.ctrl.Difficulty()
	}
	if g.start.Valid() {
		return g.start
	}
	return Hard
}

// Reset starts the game. Later calls start a new round on the same
// difficulty with a reseeded generator; session totals are kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.tickDur = cfg.TickDuration()

	if g.ctrl != nil {
		g.rng.Seed(cfg.Seed)
		g.ctrl.StartGame()
		return
	}

	g.cfg = loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.cursor = 0
	g.board = NewBoard(g.cfg.Board.Tiles)
	g.ctrl = NewController(g.board, g.rng, OptionsFromConfig(g.cfg))
	g.layout = g.computeLayout()

	start := g.start
	if !start.Valid() {
		start = FromPreset(g.cfg.Board.DefaultDifficulty)
	}
	g.ctrl.SetDifficulty(start)
}

// loadConfig reads the game config, falling back to the defaults.
func loadConfig() config.ColorsConfig {
	cfg, err := config.LoadColors(configPath)
	if err != nil {
		logger.Debug("using default config", "path", configPath, "error", err)
		cfg = config.DefaultColorsConfig()
	}
	if err := config.ApplyDifficultyPreset(&cfg, difficultyPreset); err != nil {
		logger.Debug("ignoring difficulty preset", "preset", difficultyPreset, "error", err)
	}
	return cfg
}

// Resize re-lays out the board without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minW || h < minH
	if g.board != nil {
		g.layout = g.computeLayout()
	}
}

func (g *Game) computeLayout() layout {
	return computeLayout(g.screenW, g.screenH, g.board.TileCount(), g.cfg.Labels.NewColors, g.cfg.Labels.PlayAgain)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if !g.tooSmall {
		g.handleInput(in)
	}
	g.ctrl.Advance(g.tickDur)

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionEasy):
		g.ctrl.SetDifficulty(Easy)
	case in.Has(core.ActionHard):
		g.ctrl.SetDifficulty(Hard)
	case in.Has(core.ActionNewColors):
		g.ctrl.StartGame()
	}

	g.moveCursor(in)
	if in.Has(core.ActionConfirm) {
		g.ctrl.HandleTileClick(g.cursor)
	}

	for _, i := range in.Tiles {
		g.ctrl.HandleTileClick(i)
	}
	for _, p := range in.Clicks {
		g.click(p)
	}
}

// moveCursor moves the keyboard cursor within the active tiles.
func (g *Game) moveCursor(in core.InputFrame) {
	size := g.ctrl.Round().Size()
	if size == 0 {
		return
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursor--
	case in.Has(core.ActionRight):
		g.cursor++
	case in.Has(core.ActionUp):
		g.cursor -= gridCols
	case in.Has(core.ActionDown):
		g.cursor += gridCols
	}
	g.cursor = (g.cursor%size + size) % size
}

// click routes a mouse click to a tile or a control.
func (g *Game) click(p core.Point) {
	switch hit := g.layout.hit(p); hit.kind {
	case hitTile:
		g.cursor = hit.index
		g.ctrl.HandleTileClick(hit.index)
	case hitEasy:
		g.ctrl.SetDifficulty(Easy)
	case hitHard:
		g.ctrl.SetDifficulty(Hard)
	case hitReset:
		g.ctrl.StartGame()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.ctrl.RoundPoints(),
		GameOver: g.ctrl.Won(),
		Paused:   g.tooSmall,
	}
}

// Controller returns the underlying controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Board returns the board the game draws from.
func (g *Game) Board() *Board {
	return g.board
}

// Cursor returns the keyboard cursor tile.
func (g *Game) Cursor() int {
	return g.cursor
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return TakeSnapshot(g.ctrl, g.board)
}

// Report describes the live round for score history.
func (g *Game) Report() registry.Report {
	return registry.Report{
		Difficulty: g.ctrl.Difficulty().String(),
		Picked:     g.ctrl.Round().Picked.String(),
		Misses:     g.ctrl.Misses(),
		Points:     g.ctrl.RoundPoints(),
	}
}
