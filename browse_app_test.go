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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/leaderboard/game"
)

func testReports() []game.RoundReport {
	return []game.RoundReport{
		{
			Round: 1, Stage: game.StagePool, Remaining: 3,
			Standings: []game.Player{{ID: 2, Score: 9}, {ID: 0, Score: 4}, {ID: 1, Score: 1}},
			Text:      "| 4 |\n| 1 || 9 |\n",
		},
		{
			Round: 2, Stage: game.StageElimination, Remaining: 2,
			Eliminated: []game.Player{{ID: 1, Score: 3}},
			Standings:  []game.Player{{ID: 2, Score: 15}, {ID: 0, Score: 11}},
			Text:       "| 11 |\n| 15 |\n",
		},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func TestPageMarkdown(t *testing.T) {
	reports := testReports()

	standings := pageMarkdown(reports[1], viewStandings)
	assert.Contains(t, standings, "# Round 2 (elimination)")
	assert.Contains(t, standings, "**Eliminated:** 1 (3)")
	assert.Contains(t, standings, "| 1 | 2 | 15 |")

	tree := pageMarkdown(reports[0], viewTree)
	assert.Contains(t, tree, "```\n| 4 |\n| 1 || 9 |\n```")
	assert.NotContains(t, tree, "Standings")
}

func TestBrowserCachesPages(t *testing.T) {
	pc := NewRoundPageCache()
	m := InitialModel(testReports(), pc)

	require.NotEmpty(t, GetRoundPage(pc, roundPageKey(1, viewStandings)))
	require.Empty(t, GetRoundPage(pc, roundPageKey(2, viewStandings)))

	m = press(t, m, "down")
	require.NotEmpty(t, GetRoundPage(pc, roundPageKey(2, viewStandings)))
	require.Contains(t, m.current, "# Round 2")

	m = press(t, m, "d")
	require.Equal(t, viewTree, m.view)
	require.NotEmpty(t, GetRoundPage(pc, roundPageKey(2, viewTree)))
	require.Contains(t, m.current, "| 11 |")

	m = press(t, m, "d")
	require.Equal(t, viewStandings, m.view)
}

func TestBrowserFocus(t *testing.T) {
	m := InitialModel(testReports(), NewRoundPageCache())

	m = press(t, m, "tab", "down")
	require.Equal(t, focusPage, m.focusIndex)
	require.Equal(t, 0, m.roundsList.Index(), "arrows scroll the page while it has focus")

	m = press(t, m, "tab", "down", "down")
	require.Equal(t, 1, m.roundsList.Index(), "cursor stops at the last round")
}

func TestBrowserCopyAndQuit(t *testing.T) {
	m := InitialModel(testReports(), NewRoundPageCache())

	_, cmd := m.Update(keyMsg("c"))
	require.NotNil(t, cmd)

	next, _ := m.Update(copiedMsg{})
	require.Contains(t, next.(Model).status, "Copied")

	_, cmd = m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBrowserView(t *testing.T) {
	m := InitialModel(testReports(), NewRoundPageCache())
	require.Equal(t, "Initializing...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := next.(Model).View()
	require.True(t, strings.Contains(view, "Rounds (Active)"))
	require.Contains(t, view, "Round 1")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	require.Contains(t, next.(Model).View(), "Terminal too small")
}
