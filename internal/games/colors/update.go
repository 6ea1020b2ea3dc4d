package colors

import (
	"github.com/vovakirdan/rgb-guess/internal/core"
)

// Op is a single change to a Surface.
type Op interface {
	Apply(s Surface)
}

// Update is an ordered list of surface changes produced by one transition.
type Update []Op

// Apply performs the ops in order.
func (u Update) Apply(s Surface) {
	for _, op := range u {
		op.Apply(s)
	}
}

// PaintTile sets a tile's color.
type PaintTile struct {
	Index int
	Color core.Color
}

// Apply sets the tile color.
func (o PaintTile) Apply(s Surface) { s.SetTileColor(o.Index, o.Color) }

// ShowTile sets a tile's visibility.
type ShowTile struct {
	Index   int
	Visible bool
}

// Apply shows or hides the tile.
func (o ShowTile) Apply(s Surface) { s.SetTileHidden(o.Index, !o.Visible) }

// PaintHeader sets the header background.
type PaintHeader struct {
	Color core.Color
}

// Apply sets the header background.
func (o PaintHeader) Apply(s Surface) { s.SetHeaderColor(o.Color) }

// WriteMessage replaces the message text.
type WriteMessage struct {
	Text string
}

// Apply replaces the status message text.
func (o WriteMessage) Apply(s Surface) { s.SetMessage(o.Text) }

// FadeMessage sets the message opacity.
type FadeMessage struct {
	Opacity float64
}

// Apply sets the status message opacity.
func (o FadeMessage) Apply(s Surface) { s.SetMessageOpacity(o.Opacity) }

// WriteReadout replaces the target color readout.
type WriteReadout struct {
	Text string
}

// Apply replaces the rgb readout.
func (o WriteReadout) Apply(s Surface) { s.SetReadout(o.Text) }

// MarkDifficulty highlights the control for d and clears the other.
type MarkDifficulty struct {
	Difficulty Difficulty
}

// Apply highlights the difficulty control.
func (o MarkDifficulty) Apply(s Surface) { s.SelectDifficulty(o.Difficulty) }

// LabelReset sets the reset control label.
type LabelReset struct {
	Label string
}

// Apply relabels the reset control.
func (o LabelReset) Apply(s Surface) { s.SetResetLabel(o.Label) }

// The functions below are the pure half of the controller: they compute
// what a transition changes without touching a surface.

func selectTransition(d Difficulty) Update {
	return Update{MarkDifficulty{Difficulty: d}}
}

// startTransition lays out a fresh round over n tile slots.
func startTransition(r Round, n int, opts Options) Update {
	u := Update{
		LabelReset{Label: opts.NewColors},
		PaintHeader{Color: opts.Neutral},
		WriteReadout{Text: r.Picked.String()},
	}
	for i := 0; i < n; i++ {
		if r.Active(i) {
			u = append(u, PaintTile{Index: i, Color: r.Colors[i]}, ShowTile{Index: i, Visible: true})
		} else {
			u = append(u, ShowTile{Index: i, Visible: false})
		}
	}
	return u
}

func missTransition(i int) Update {
	return Update{ShowTile{Index: i, Visible: false}}
}

// winTiles paints every active tile with the target and reveals it.
func winTiles(r Round) Update {
	u := make(Update, 0, 2*r.Size())
	for i := 0; i < r.Size(); i++ {
		u = append(u, PaintTile{Index: i, Color: r.Picked}, ShowTile{Index: i, Visible: true})
	}
	return u
}

func winChrome(r Round, opts Options) Update {
	return Update{
		PaintHeader{Color: r.Picked},
		LabelReset{Label: opts.PlayAgain},
	}
}

// fadeOut is the immediate half of a message change.
func fadeOut() Update {
	return Update{FadeMessage{Opacity: 0}}
}

// fadeIn is the delayed half. An empty text stays invisible.
func fadeIn(text string) Update {
	u := Update{WriteMessage{Text: text}}
	if text != "" {
		u = append(u, FadeMessage{Opacity: 1})
	}
	return u
}
