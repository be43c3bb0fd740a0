// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/leaderboard/game"
)

// pageView selects what the page pane shows for a round
type pageView int

const (
	viewStandings pageView = iota
	viewTree
)

func (v pageView) String() string {
	if v == viewTree {
		return "tree"
	}
	return "standings"
}

// Focus targets, cycled with tab
const (
	focusRounds = iota
	focusPage
)

// Model represents the round browser state
type Model struct {
	ready bool

	roundsList list.Model
	page       viewport.Model

	// Data
	reports   []game.RoundReport
	pageCache *cache.Cache

	// State
	focusIndex int
	view       pageView
	status     string
	current    string // raw markdown of the page on screen

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// roundItem represents a round in the rounds list
type roundItem struct {
	report game.RoundReport
}

func (i roundItem) FilterValue() string { return fmt.Sprintf("round %d", i.report.Round) }
func (i roundItem) Title() string       { return fmt.Sprintf("Round %d", i.report.Round) }
func (i roundItem) Description() string {
	if n := len(i.report.Eliminated); n > 0 {
		return fmt.Sprintf("%s • %d left • %d out", i.report.Stage, i.report.Remaining, n)
	}
	return fmt.Sprintf("%s • %d left", i.report.Stage, i.report.Remaining)
}

// copiedMsg reports the outcome of a clipboard write
type copiedMsg struct {
	err error
}

// InitialModel creates the browser for the given rounds
func InitialModel(reports []game.RoundReport, pc *cache.Cache) Model {
	items := make([]list.Item, len(reports))
	for i, r := range reports {
		items[i] = roundItem{report: r}
	}
	roundsList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	roundsList.SetShowTitle(false)
	roundsList.SetShowHelp(false)

	page := viewport.New(0, 0)
	page.SetContent("Select a round to see its standings...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		roundsList:      roundsList,
		page:            page,
		reports:         reports,
		pageCache:       pc,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.updatePage()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case copiedMsg:
		if msg.err != nil {
			m.status = m.styles.ErrorMessage.Render("clipboard: " + msg.err.Error())
		} else {
			m.status = m.styles.SuccessMessage.Render("📋 Copied page to clipboard")
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "tab":
		if m.focusIndex == focusRounds {
			m.focusIndex = focusPage
		} else {
			m.focusIndex = focusRounds
		}
	case "d":
		if m.view == viewStandings {
			m.view = viewTree
		} else {
			m.view = viewStandings
		}
		m.updatePage()
	case "c":
		text := m.current
		return m, func() tea.Msg {
			return copiedMsg{err: clipboard.WriteAll(text)}
		}
	case "pgup":
		m.page.LineUp(m.page.Height)
	case "pgdown":
		m.page.LineDown(m.page.Height)
	case "home":
		m.page.GotoTop()
	case "end":
		m.page.GotoBottom()
	case "up", "k":
		if m.focusIndex == focusPage {
			m.page.LineUp(1)
		} else if m.roundsList.Index() > 0 {
			m.roundsList.CursorUp()
			m.updatePage()
		}
	case "down", "j":
		if m.focusIndex == focusPage {
			m.page.LineDown(1)
		} else if m.roundsList.Index() < len(m.reports)-1 {
			m.roundsList.CursorDown()
			m.updatePage()
		}
	}
	return m, nil
}

// selected returns the report under the cursor
func (m Model) selected() (game.RoundReport, bool) {
	i := m.roundsList.Index()
	if i < 0 || i >= len(m.reports) {
		return game.RoundReport{}, false
	}
	return m.reports[i], true
}

// updatePage shows the selected round in the current view, rendering it
// through glamour once and serving later visits from the cache.
func (m *Model) updatePage() {
	r, ok := m.selected()
	if !ok {
		return
	}
	m.current = pageMarkdown(r, m.view)

	key := roundPageKey(r.Round, m.view)
	if rendered := GetRoundPage(m.pageCache, key); rendered != "" {
		m.page.SetContent(rendered)
		m.page.GotoTop()
		return
	}

	rendered := m.current
	if m.glamourRenderer != nil {
		if out, err := m.glamourRenderer.Render(m.current); err == nil {
			rendered = out
		}
	}
	CacheRoundPage(m.pageCache, key, rendered)
	m.page.SetContent(rendered)
	m.page.GotoTop()
}

// pageMarkdown describes one round as markdown
func pageMarkdown(r game.RoundReport, view pageView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Round %d (%s)\n\n", r.Round, r.Stage)
	fmt.Fprintf(&sb, "**Players left:** %d\n\n", r.Remaining)

	if view == viewTree {
		sb.WriteString("## Tree by level\n\n```\n")
		sb.WriteString(r.Text)
		sb.WriteString("```\n")
		return sb.String()
	}

	if len(r.Eliminated) > 0 {
		ids := make([]string, len(r.Eliminated))
		for i, p := range r.Eliminated {
			ids[i] = fmt.Sprintf("%d (%d)", p.ID, p.Score)
		}
		fmt.Fprintf(&sb, "**Eliminated:** %s\n\n", strings.Join(ids, ", "))
	}

	sb.WriteString("## Standings\n\n| Rank | Player | Score |\n|---:|---:|---:|\n")
	for i, p := range r.Standings {
		fmt.Fprintf(&sb, "| %d | %d | %d |\n", i+1, p.ID, p.Score)
	}
	return sb.String()
}

// View renders the browser
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	listHeight := m.height - 6
	leftWidth := (m.width * 3 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	listStyle, listTitle := m.styles.BorderBlurred, " 🏁 Rounds "
	pageStyle, pageTitle := m.styles.BorderBlurred, fmt.Sprintf(" 📊 %s ", m.view)
	if m.focusIndex == focusRounds {
		listStyle, listTitle = m.styles.BorderFocused, " 🏁 Rounds (Active) "
	} else {
		pageStyle, pageTitle = m.styles.BorderFocused, fmt.Sprintf(" 📊 %s (Active) ", m.view)
	}

	listBox := listStyle.
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(listTitle),
			m.roundsList.View(),
		))

	pageBox := pageStyle.
		Width(rightWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(pageTitle),
			m.page.View(),
		))

	main := lipgloss.JoinHorizontal(lipgloss.Top, listBox, pageBox)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderHelp())
}

// updateLayout sizes the panes after a resize
func (m *Model) updateLayout() {
	listHeight := m.height - 6
	leftWidth := (m.width * 3 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.roundsList.SetSize(leftWidth-2, listHeight-2)
	m.page.Width = rightWidth - 2
	m.page.Height = listHeight - 2
}

// renderHelp renders the key help footer and the last status message
func (m Model) renderHelp() string {
	keys := []string{"tab", "↑/↓", "pgup/pgdown", "d", "c", "q"}
	descs := []string{"switch focus", "move", "scroll page", "standings/tree", "copy page", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}
	footer := strings.Join(helpEntries, " • ")
	if m.status != "" {
		footer += "   " + m.status
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(footer)
}

// runBrowseApp opens the round browser
func runBrowseApp(reports []game.RoundReport, pc *cache.Cache) error {
	model := InitialModel(reports, pc)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
