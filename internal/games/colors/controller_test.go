package colors

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/rgb-guess/internal/core"
)

const fade = 200 * time.Millisecond

func newTestController(seed int64) (*Controller, *Board) {
	b := NewBoard(6)
	c := NewController(b, rand.New(rand.NewSource(seed)), DefaultOptions())
	return c, b
}

// easyScenario is a fixed easy round: picked is the middle color.
func easyScenario() Round {
	colors := []core.Color{core.RGB(10, 20, 30), core.RGB(40, 50, 60), core.RGB(70, 80, 90)}
	return Round{Seq: 1, Difficulty: Easy, Colors: colors, Picked: colors[1], PickedIndex: 1}
}

func visibleTiles(v BoardView) int {
	n := 0
	for _, t := range v.Tiles {
		if !t.Hidden {
			n++
		}
	}
	return n
}

func TestStartGameInvariants(t *testing.T) {
	for _, d := range []Difficulty{Easy, Hard} {
		c, b := newTestController(1)
		c.SetDifficulty(d)

		for i := 0; i < 2; i++ {
			c.StartGame()
			r := c.Round()
			if r.Size() != d.Tiles() {
				t.Errorf("%s: %d colors, expected %d", d, r.Size(), d.Tiles())
			}
			if !r.Contains(r.Picked) {
				t.Errorf("%s: picked %v not among colors", d, r.Picked)
			}

			v := b.View()
			if visibleTiles(v) != d.Tiles() {
				t.Errorf("%s: %d visible tiles, expected %d", d, visibleTiles(v), d.Tiles())
			}
			for j, tile := range v.Tiles {
				if j < r.Size() && tile.Color != r.Colors[j] {
					t.Errorf("%s: tile %d = %v, expected %v", d, j, tile.Color, r.Colors[j])
				}
				if j >= r.Size() && !tile.Hidden {
					t.Errorf("%s: inactive tile %d is visible", d, j)
				}
			}
			if v.Readout != r.Picked.String() {
				t.Errorf("%s: readout %q, expected %q", d, v.Readout, r.Picked.String())
			}
			if v.Header != DefaultOptions().Neutral {
				t.Errorf("%s: header %v, expected neutral", d, v.Header)
			}
			if v.ResetLabel != "New Colors" {
				t.Errorf("%s: reset label %q", d, v.ResetLabel)
			}
			if v.Message != "" || v.MessageOpacity != 0 {
				t.Errorf("%s: message %q at %v, expected cleared", d, v.Message, v.MessageOpacity)
			}
		}
	}
}

func TestScenarioWin(t *testing.T) {
	c, b := newTestController(1)
	c.SetDifficulty(Easy)
	c.begin(easyScenario())

	if got := c.HandleTileClick(1); got != OutcomeWin {
		t.Fatalf("HandleTileClick(1) = %s, expected win", got)
	}

	picked := core.RGB(40, 50, 60)
	v := b.View()
	if v.Header != picked {
		t.Errorf("header = %v, expected %v", v.Header, picked)
	}
	for i := 0; i < 3; i++ {
		if v.Tiles[i].Color != picked || v.Tiles[i].Hidden {
			t.Errorf("tile %d = %+v, expected visible %v", i, v.Tiles[i], picked)
		}
	}
	if v.ResetLabel != "Play Again?" {
		t.Errorf("reset label = %q, expected Play Again?", v.ResetLabel)
	}
	if v.MessageOpacity != 0 {
		t.Errorf("message should fade out immediately, opacity %v", v.MessageOpacity)
	}

	c.Advance(fade)
	v = b.View()
	if v.Message != "Correct!" || v.MessageOpacity != 1 {
		t.Errorf("message = %q at %v, expected Correct! at 1", v.Message, v.MessageOpacity)
	}
}

func TestScenarioMiss(t *testing.T) {
	c, b := newTestController(1)
	c.SetDifficulty(Easy)
	c.begin(easyScenario())

	if got := c.HandleTileClick(0); got != OutcomeMiss {
		t.Fatalf("HandleTileClick(0) = %s, expected miss", got)
	}

	v := b.View()
	if !v.Tiles[0].Hidden {
		t.Error("missed tile should be hidden")
	}
	if v.ResetLabel != "New Colors" {
		t.Errorf("reset label = %q, expected New Colors", v.ResetLabel)
	}

	c.Advance(fade - time.Millisecond)
	if v := b.View(); v.Message != "" {
		t.Errorf("message %q shown before the delay", v.Message)
	}

	c.Advance(time.Millisecond)
	v = b.View()
	if v.Message != "Try Again" || v.MessageOpacity != 1 {
		t.Errorf("message = %q at %v, expected Try Again at 1", v.Message, v.MessageOpacity)
	}
	if c.Misses() != 1 || c.Won() {
		t.Errorf("Misses() = %d, Won() = %v", c.Misses(), c.Won())
	}
}

func TestWinSupersedesPendingTryAgain(t *testing.T) {
	c, b := newTestController(1)
	c.SetDifficulty(Easy)
	c.begin(easyScenario())

	c.HandleTileClick(0)
	c.Advance(50 * time.Millisecond)
	c.HandleTileClick(1)

	for i := 0; i < 40; i++ {
		c.Advance(10 * time.Millisecond)
		if msg := b.View().Message; msg == "Try Again" {
			t.Fatalf("stale Try Again shown at %v", c.Now())
		}
	}
	if msg := b.View().Message; msg != "Correct!" {
		t.Errorf("message = %q, expected Correct!", msg)
	}
}

func TestNewRoundDropsPendingMessage(t *testing.T) {
	c, b := newTestController(1)
	c.SetDifficulty(Easy)
	c.begin(easyScenario())

	c.HandleTileClick(1)
	c.StartGame()
	c.Advance(time.Second)

	v := b.View()
	if v.Message != "" || v.MessageOpacity != 0 {
		t.Errorf("message = %q at %v after new round, expected cleared", v.Message, v.MessageOpacity)
	}
	if c.MessagePending() {
		t.Error("no message should remain scheduled")
	}
}

func TestSwitchHardToEasy(t *testing.T) {
	c, b := newTestController(3)
	c.SetDifficulty(Hard)
	before := c.Round()

	if b.View().Selected != Hard {
		t.Fatalf("Selected = %s, expected hard", b.View().Selected)
	}

	c.SetDifficulty(Easy)
	after := c.Round()

	if after.Seq == before.Seq {
		t.Error("switching difficulty should start a new round")
	}
	if after.Size() != 3 {
		t.Errorf("easy round has %d colors, expected 3", after.Size())
	}
	v := b.View()
	if v.Selected != Easy {
		t.Errorf("Selected = %s, expected easy", v.Selected)
	}
	if visibleTiles(v) != 3 {
		t.Errorf("%d visible tiles, expected 3", visibleTiles(v))
	}
}

func TestIgnoredClicks(t *testing.T) {
	c, b := newTestController(1)
	c.SetDifficulty(Easy)
	c.begin(easyScenario())
	c.HandleTileClick(0)
	before := b.View()

	for _, i := range []int{-1, 0, 3, 5, 6, 100} {
		if got := c.HandleTileClick(i); got != OutcomeIgnored {
			t.Errorf("HandleTileClick(%d) = %s, expected ignored", i, got)
		}
	}
	if c.Misses() != 1 {
		t.Errorf("Misses() = %d, expected 1", c.Misses())
	}
	if diff := cmp.Diff(before, b.View()); diff != "" {
		t.Errorf("ignored clicks changed the board (-before +after):\n%s", diff)
	}
}

func TestInvalidDifficultyIsNoop(t *testing.T) {
	c, _ := newTestController(1)
	c.SetDifficulty(Hard)
	seq := c.Round().Seq

	c.SetDifficulty(Difficulty(7))
	if c.Round().Seq != seq || c.Difficulty() != Hard {
		t.Error("invalid difficulty should not start a round")
	}
}

func TestScoring(t *testing.T) {
	c, _ := newTestController(1)
	c.SetDifficulty(Hard)

	colors := make([]core.Color, 6)
	for i := range colors {
		colors[i] = core.RGB(uint8(i*40), 0, 0)
	}
	c.begin(Round{Seq: 2, Difficulty: Hard, Colors: colors, Picked: colors[5], PickedIndex: 5})

	c.HandleTileClick(0)
	c.HandleTileClick(1)
	c.HandleTileClick(5)

	if c.RoundPoints() != 4 {
		t.Errorf("RoundPoints() = %d, expected 4", c.RoundPoints())
	}

	// Every tile shows the picked color now; clicking again must not score twice
	if got := c.HandleTileClick(0); got != OutcomeWin {
		t.Errorf("click after win = %s, expected win", got)
	}

	want := Stats{RoundsStarted: 2, RoundsWon: 1, Misses: 2, Points: 4}
	if diff := cmp.Diff(want, c.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestScoringFloor(t *testing.T) {
	c, _ := newTestController(1)
	c.SetDifficulty(Easy)
	c.begin(easyScenario())

	c.HandleTileClick(0)
	c.HandleTileClick(2)
	c.HandleTileClick(1)

	if c.RoundPoints() != 1 {
		t.Errorf("RoundPoints() = %d, expected the minimum of 1", c.RoundPoints())
	}
}

func TestDuplicateColorsCompareByValue(t *testing.T) {
	c, _ := newTestController(1)
	c.SetDifficulty(Easy)

	same := core.RGB(1, 2, 3)
	c.begin(Round{Seq: 2, Difficulty: Easy, Colors: []core.Color{same, core.RGB(9, 9, 9), same}, Picked: same, PickedIndex: 2})

	if got := c.HandleTileClick(0); got != OutcomeWin {
		t.Errorf("tile with the picked color = %s, expected win", got)
	}
}

func TestZeroFadeDelayIsImmediate(t *testing.T) {
	b := NewBoard(6)
	opts := DefaultOptions()
	opts.FadeDelay = 0
	c := NewController(b, rand.New(rand.NewSource(1)), opts)
	c.SetDifficulty(Easy)
	c.begin(easyScenario())

	c.HandleTileClick(0)
	if v := b.View(); v.Message != "Try Again" || v.MessageOpacity != 1 {
		t.Errorf("message = %q at %v, expected immediate Try Again", v.Message, v.MessageOpacity)
	}
}

func TestControllerDeterminism(t *testing.T) {
	run := func() Snapshot {
		c, b := newTestController(99)
		c.SetDifficulty(Hard)
		c.HandleTileClick(2)
		c.Advance(fade)
		c.SetDifficulty(Easy)
		c.HandleTileClick(c.Round().PickedIndex)
		return TakeSnapshot(c, b)
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed produced different games (-first +second):\n%s", diff)
	}
}

func TestUpdateApplyOrder(t *testing.T) {
	b := NewBoard(6)
	Update{
		WriteMessage{Text: "one"},
		WriteMessage{Text: "two"},
		PaintTile{Index: 9, Color: core.ColorWhite},
		ShowTile{Index: 0, Visible: true},
	}.Apply(b)

	v := b.View()
	if v.Message != "two" {
		t.Errorf("Message = %q, expected the last write", v.Message)
	}
	if v.Tiles[0].Hidden {
		t.Error("tile 0 should be visible")
	}
}
