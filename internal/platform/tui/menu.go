package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/rgb-guess/internal/core"
	"github.com/vovakirdan/rgb-guess/internal/games/colors"
	"github.com/vovakirdan/rgb-guess/internal/registry"
	"github.com/vovakirdan/rgb-guess/internal/storage"
)

const cardWidth = 34

var (
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(cardWidth)
	activeCard  = cardStyle.BorderForeground(lipgloss.Color("57"))
	levelStyle  = lipgloss.NewStyle().Bold(true)
	activeLevel = levelStyle.Foreground(lipgloss.Color("229"))
)

// MenuItem is one difficulty the player can start.
type MenuItem struct {
	GameID     string
	Title      string
	Difficulty colors.Difficulty
	HighScore  int
	RoundsWon  int
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered games from fewest to most colors,
// with the cursor on Hard.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title, Difficulty: colors.DifficultyFor(g.ID)}
		if store != nil {
			if stats, err := store.GetGameStats(g.ID); err == nil {
				item.HighScore = stats.HighScore
				item.RoundsWon = stats.GamesCount
			}
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Difficulty < items[j].Difficulty })

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, item := range items {
		if item.GameID == colors.IDHard {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = core.Min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// titleBand renders "RGB" with each letter in its own channel color.
func titleBand() string {
	var b strings.Builder
	for _, l := range []struct{ text, color string }{{"R", "#ff5f5f"}, {"G", "#5fff87"}, {"B", "#5f87ff"}} {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(l.color)).Render(l.text))
	}
	return b.String()
}

// previewStrip shows one swatch per tile of a round on d, hues spread
// evenly around the wheel.
func previewStrip(d colors.Difficulty) string {
	n := d.Tiles()
	cells := make([]string, n)
	for i := range cells {
		c := colorful.Hsv(float64(i)*360/float64(n), 0.65, 0.9)
		cells[i] = lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("   ")
	}
	return strings.Join(cells, " ")
}

// renderCard draws one difficulty with its preview and record.
func (m MenuModel) renderCard(i int) string {
	item := m.items[i]
	style, level := cardStyle, levelStyle
	marker := "  "
	if i == m.cursor {
		style, level = activeCard, activeLevel
		marker = "> "
	}

	record := dimText.Render("no rounds won yet")
	if item.RoundsWon > 0 {
		record = fmt.Sprintf("best %d  won %d", item.HighScore, item.RoundsWon)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		level.Render(fmt.Sprintf("%s%s  %d colors", marker, strings.ToUpper(item.Difficulty.String()), item.Difficulty.Tiles())),
		previewStrip(item.Difficulty),
		record,
	))
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	cards := make([]string, len(m.items))
	for i := range m.items {
		cards[i] = m.renderCard(i)
	}

	center := func(s string) string { return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s) }
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		center(titleBand()+lipgloss.NewStyle().Bold(true).Render("  G U E S S")),
		center(dimText.Render("Find the tile that matches the rgb() value")),
		"",
		center(lipgloss.JoinVertical(lipgloss.Left, cards...)),
		"",
		center(dimText.Render("up/down choose  enter play  tab scores  q quit")),
	)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
