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
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/leaderboard/game"
)

// estimateRounds returns the number of rounds a tournament with cfg plays.
func estimateRounds(cfg game.Config) int {
	cut := cfg.Players - cfg.Finalists
	elimination := (cut + cfg.EliminatePerRound - 1) / cfg.EliminatePerRound
	return cfg.PoolRounds + elimination + cfg.FinalRounds
}

// playTournament runs one tournament and collects a report per round.
// progress, when not nil, receives a bar that advances with every round.
func playTournament(ctx context.Context, cfg game.Config, logger zerolog.Logger, progress io.Writer) ([]game.RoundReport, []game.Player, error) {
	g, err := game.New(cfg, game.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(estimateRounds(cfg),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("🏆 Playing rounds..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(progress, "\n✅ Tournament completed!\n")
			}),
		)
	}

	var reports []game.RoundReport
	standings, err := g.Play(ctx, func(r game.RoundReport) {
		reports = append(reports, r)
		if bar != nil {
			bar.Describe(fmt.Sprintf("🏆 Round %d (%s)", r.Round, r.Stage))
			bar.Add(1)
		}
	})
	if err != nil {
		return reports, nil, err
	}
	if bar != nil {
		bar.Finish()
	}
	return reports, standings, nil
}

// renderStandings draws the first limit players as a table. A limit of zero
// or less draws everybody.
func renderStandings(standings []game.Player, limit int) string {
	if limit <= 0 || limit > len(standings) {
		limit = len(standings)
	}
	rows := make([][]string, limit)
	for i, p := range standings[:limit] {
		rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(p.ID), strconv.Itoa(p.Score)}
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Rank", "Player", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Render()
}
