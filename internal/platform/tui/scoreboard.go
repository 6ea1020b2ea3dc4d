package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rgb-guess/internal/core"
	"github.com/vovakirdan/rgb-guess/internal/games/colors"
	"github.com/vovakirdan/rgb-guess/internal/storage"
)

const (
	rankLimit    = 50 // Scores loaded per difficulty
	recentLimit  = 6  // Rounds in the recent pane
	paneMinWidth = 30 // Below two of these the ranks stack into one pane
	swatchWidth  = 4
)

var (
	paneBorder   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	focusBorder  = paneBorder.BorderForeground(lipgloss.Color("57"))
	paneTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimText      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyPaneMsg = dimText.Italic(true)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Focus key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Focus, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Focus}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Focus: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab", "easy/hard")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// rankPane is the ranked list of one difficulty.
type rankPane struct {
	difficulty colors.Difficulty
	scores     []storage.ScoreEntry
	stats      *storage.GameStats // Nil when unavailable
	table      table.Model
}

func (p rankPane) gameID() string {
	return colors.IDFor(p.difficulty)
}

// statsLine summarizes the difficulty's history.
func (p rankPane) statsLine() string {
	if p.stats == nil || p.stats.GamesCount == 0 {
		return "no rounds won"
	}
	return fmt.Sprintf("won %d  best %d  avg %.1f  misses %.1f",
		p.stats.GamesCount, p.stats.HighScore, p.stats.AvgScore, p.stats.AvgMisses)
}

// ScoreboardModel shows Easy and Hard rankings side by side above the
// most recent rounds of both.
type ScoreboardModel struct {
	store     *storage.Store
	panes     [2]rankPane // Easy, Hard
	focus     int
	recent    []storage.RoundRecord
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard focused on Hard.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		panes:  [2]rankPane{{difficulty: colors.Easy}, {difficulty: colors.Hard}},
		focus:  1,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.load()
	m.layoutTables()
	return m
}

// load reads both rankings and merges their recent rounds, newest first.
func (m *ScoreboardModel) load() {
	m.recent = nil
	for i := range m.panes {
		p := &m.panes[i]
		p.scores, p.stats = nil, nil
		if m.store == nil {
			continue
		}
		if scores, err := m.store.TopScores(p.gameID(), rankLimit); err == nil {
			p.scores = scores
		}
		if stats, err := m.store.GetGameStats(p.gameID()); err == nil {
			p.stats = stats
		}
		if rounds, err := m.store.RecentRounds(p.gameID(), recentLimit); err == nil {
			m.recent = append(m.recent, rounds...)
		}
	}

	// Both games share the rounds table, so IDs order them globally
	sort.Slice(m.recent, func(i, j int) bool { return m.recent[i].ID > m.recent[j].ID })
	if len(m.recent) > recentLimit {
		m.recent = m.recent[:recentLimit]
	}
}

// sideBySide reports whether both rankings fit next to each other.
func (m ScoreboardModel) sideBySide() bool {
	return m.width >= 2*paneMinWidth+6
}

// paneWidth is the inner width of one ranking pane.
func (m ScoreboardModel) paneWidth() int {
	w := m.width - 6
	if m.sideBySide() {
		w = (m.width - 10) / 2
	}
	return core.Max(w, 20)
}

// layoutTables rebuilds the ranking tables for the current size.
func (m *ScoreboardModel) layoutTables() {
	w := m.paneWidth()
	// Title, stats, table header, borders, the recent pane and help
	h := core.Max(m.height-recentLimit-14, 3)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	for i := range m.panes {
		p := &m.panes[i]
		p.table = table.New(
			table.WithColumns([]table.Column{
				{Title: "#", Width: 4},
				{Title: "Points", Width: 6},
				{Title: "Won", Width: core.Max(w-16, 12)},
			}),
			table.WithHeight(h),
			table.WithFocused(i == m.focus),
		)
		p.table.SetStyles(styles)
		p.table.SetRows(rankRows(p.scores))
	}
}

// rankRows builds table rows. Equal points share a rank.
func rankRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	rank := 0
	for i, s := range scores {
		if i == 0 || s.Score != scores[i-1].Score {
			rank = i + 1
		}
		rows[i] = table.Row{fmt.Sprint(rank), fmt.Sprint(s.Score), s.CreatedAt.Format("Jan 02 15:04")}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m.panes[m.focus].table.Blur()
			m.focus = 1 - m.focus
			m.panes[m.focus].table.Focus()
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.panes[m.focus].table, cmd = m.panes[m.focus].table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layoutTables()
	}
	return m, nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var ranks string
	if m.sideBySide() {
		ranks = lipgloss.JoinHorizontal(lipgloss.Top, m.renderPane(0), "  ", m.renderPane(1))
	} else {
		ranks = m.renderPane(m.focus)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleBand()+paneTitle.Render("  SCOREBOARD")),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, ranks),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderRecent()),
		dimText.Render(m.help.View(m.keys)),
	)
}

// renderPane draws one difficulty's ranking with its stats.
func (m ScoreboardModel) renderPane(i int) string {
	p := m.panes[i]
	border := paneBorder
	if i == m.focus {
		border = focusBorder
	}

	title := fmt.Sprintf("%s  %d colors", strings.ToUpper(p.difficulty.String()), p.difficulty.Tiles())
	body := p.table.View()
	if len(p.scores) == 0 {
		body = emptyPaneMsg.Render("No rounds won yet.")
	}

	return border.Width(m.paneWidth()).Render(lipgloss.JoinVertical(lipgloss.Left,
		paneTitle.Render(title),
		dimText.Render(p.statsLine()),
		body,
	))
}

// renderRecent lists the latest rounds with a swatch of each target color.
func (m ScoreboardModel) renderRecent() string {
	lines := []string{paneTitle.Render("RECENT ROUNDS")}
	if len(m.recent) == 0 {
		lines = append(lines, emptyPaneMsg.Render("Nothing played yet."))
	}
	for _, r := range m.recent {
		lines = append(lines, fmt.Sprintf("%-4s  %s  %-18s  %d %s  %+d",
			strings.ToUpper(r.Difficulty), swatch(r.Picked), r.Picked,
			r.Misses, plural(r.Misses, "miss", "misses"), r.Points))
	}

	w := m.width - 6
	if m.sideBySide() {
		w = 2*m.paneWidth() + 6
	}
	return paneBorder.Width(core.Max(w, 20)).Render(strings.Join(lines, "\n"))
}

// swatch paints a block in the stored color. Unparseable colors show as "?".
func swatch(stored string) string {
	c, err := core.ParseColor(stored)
	if err != nil {
		return dimText.Render(strings.Repeat("?", swatchWidth))
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(strings.Repeat(" ", swatchWidth))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
