package colors

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/rgb-guess/internal/config"
	"github.com/vovakirdan/rgb-guess/internal/core"
)

// Options holds the texts, colors and timing the controller writes.
type Options struct {
	Neutral   core.Color    // Header color while a round is unsolved
	FadeDelay time.Duration // Delay between fade-out and the new message
	TryAgain  string
	Correct   string
	NewColors string
	PlayAgain string
	MinPoints int
}

// OptionsFromConfig builds controller options from the game config.
func OptionsFromConfig(cfg config.ColorsConfig) Options {
	return Options{
		Neutral:   cfg.Board.HeaderColor,
		FadeDelay: cfg.Message.FadeDelay(),
		TryAgain:  cfg.Message.TryAgain,
		Correct:   cfg.Message.Correct,
		NewColors: cfg.Labels.NewColors,
		PlayAgain: cfg.Labels.PlayAgain,
		MinPoints: cfg.Scoring.MinPoints,
	}
}

// DefaultOptions returns options for the built-in config.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultColorsConfig())
}

// Outcome is the result of a tile click.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // Click on an inactive, hidden or unknown tile
	OutcomeMiss
	OutcomeWin
)

// String returns a lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeWin:
		return "win"
	default:
		return "ignored"
	}
}

// Stats are running totals across the rounds of one controller.
type Stats struct {
	RoundsStarted int `json:"roundsStarted"`
	RoundsWon     int `json:"roundsWon"`
	Misses        int `json:"misses"`
	Points        int `json:"points"`
}

// Controller runs the guessing game against a Surface.
// It is not safe for concurrent use.
type Controller struct {
	surface Surface
	rng     *rand.Rand
	opts    Options
	fader   *Fader

	difficulty Difficulty
	round      Round
	seq        uint64

	misses int
	won    bool
	points int // Points awarded for the current round

	stats Stats
}

// NewController creates a controller with Hard selected. Nothing is drawn
// until SetDifficulty or StartGame is called.
func NewController(s Surface, rng *rand.Rand, opts Options) *Controller {
	return &Controller{
		surface:    s,
		rng:        rng,
		opts:       opts,
		fader:      NewFader(opts.FadeDelay),
		difficulty: Hard,
	}
}

// SetDifficulty selects a difficulty and starts a new round.
// Unknown levels are ignored.
func (c *Controller) SetDifficulty(d Difficulty) {
	if !d.Valid() {
		return
	}
	selectTransition(d).Apply(c.surface)
	c.difficulty = d
	c.StartGame()
}

// StartGame replaces the current round with a freshly generated one.
func (c *Controller) StartGame() {
	c.seq++
	c.begin(NewRound(c.rng, c.difficulty, c.seq))
}

// begin installs r as the live round and redraws the surface.
func (c *Controller) begin(r Round) {
	c.round = r
	c.difficulty = r.Difficulty
	c.misses = 0
	c.won = false
	c.points = 0
	c.stats.RoundsStarted++

	u := startTransition(r, c.surface.TileCount(), c.opts)
	u = append(u, c.updateMessage("")...)
	u.Apply(c.surface)
	c.Advance(0)
}

// HandleTileClick judges a click on tile i.
func (c *Controller) HandleTileClick(i int) Outcome {
	if i < 0 || i >= c.surface.TileCount() || !c.round.Active(i) || c.surface.TileHidden(i) {
		return OutcomeIgnored
	}

	if c.round.Matches(c.surface.TileColor(i)) {
		c.win()
		return OutcomeWin
	}

	c.misses++
	c.stats.Misses++
	u := missTransition(i)
	u = append(u, c.updateMessage(c.opts.TryAgain)...)
	u.Apply(c.surface)
	c.Advance(0)
	return OutcomeMiss
}

// win reveals the picked color. Points are awarded once per round.
func (c *Controller) win() {
	if !c.won {
		c.won = true
		c.points = core.Max(c.opts.MinPoints, c.round.Size()-c.misses)
		c.stats.RoundsWon++
		c.stats.Points += c.points
	}

	u := winTiles(c.round)
	u = append(u, c.updateMessage(c.opts.Correct)...)
	u = append(u, winChrome(c.round, c.opts)...)
	u.Apply(c.surface)
	c.Advance(0)
}

// updateMessage schedules text and returns the immediate fade-out.
func (c *Controller) updateMessage(text string) Update {
	c.fader.Post(text)
	return fadeOut()
}

// Advance moves the controller clock by dt and applies a message that came due.
func (c *Controller) Advance(dt time.Duration) {
	if task, ok := c.fader.Advance(dt); ok {
		fadeIn(task.Text).Apply(c.surface)
	}
}

// Difficulty returns the selected difficulty.
func (c *Controller) Difficulty() Difficulty {
	return c.difficulty
}

// Round returns the live round.
func (c *Controller) Round() Round {
	return c.round
}

// Won reports whether the live round has been solved.
func (c *Controller) Won() bool {
	return c.won
}

// Misses returns the misses in the live round.
func (c *Controller) Misses() int {
	return c.misses
}

// RoundPoints returns the points awarded for the live round, 0 until it is won.
func (c *Controller) RoundPoints() int {
	return c.points
}

// Stats returns the running totals.
func (c *Controller) Stats() Stats {
	return c.stats
}

// Now returns the controller clock.
func (c *Controller) Now() time.Duration {
	return c.fader.Now()
}

// MessagePending reports whether a message write is still scheduled.
func (c *Controller) MessagePending() bool {
	return c.fader.Pending() > 0
}
