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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/leaderboard/game"
)

func TestEstimateRounds(t *testing.T) {
	testCases := []struct {
		name string
		cfg  func(*game.Config)
		want int
	}{
		{name: "defaults", cfg: func(*game.Config) {}, want: 3 + 9 + 5},
		{name: "uneven cut", cfg: func(c *game.Config) { c.Players = 95 }, want: 3 + 9 + 5},
		{name: "finalists only", cfg: func(c *game.Config) { c.Players = 10 }, want: 3 + 0 + 5},
		{name: "no pool or finals", cfg: func(c *game.Config) { c.PoolRounds, c.FinalRounds = 0, 0 }, want: 9},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := game.DefaultConfig()
			tc.cfg(&cfg)
			require.Equal(t, tc.want, estimateRounds(cfg))
		})
	}
}

func TestPlayTournament(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 7

	var progress bytes.Buffer
	reports, standings, err := playTournament(context.Background(), cfg, zerolog.Nop(), &progress)
	require.NoError(t, err)
	require.Len(t, reports, estimateRounds(cfg))
	require.Len(t, standings, cfg.Finalists)
	require.Contains(t, progress.String(), "Tournament completed")

	_, _, err = playTournament(context.Background(), cfg, zerolog.Nop(), nil)
	require.NoError(t, err)
}

func TestPlayTournamentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := playTournament(ctx, game.DefaultConfig(), zerolog.Nop(), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRenderStandings(t *testing.T) {
	standings := []game.Player{{ID: 42, Score: 90}, {ID: 7, Score: 85}, {ID: 3, Score: 12}}

	out := renderStandings(standings, 2)
	require.Contains(t, out, "Rank")
	require.Contains(t, out, "Player")
	require.Contains(t, out, "42")
	require.Contains(t, out, "85")
	require.NotContains(t, out, "12")
	require.Less(t, strings.Index(out, "42"), strings.Index(out, "85"))

	require.Contains(t, renderStandings(standings, 0), "12")
}
