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
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/leaderboard/game"
)

func TestGameFlags(t *testing.T) {
	base := defaultConfig()

	testCases := []struct {
		name    string
		args    []string
		players int
		seed    uint64
		wantErr bool
	}{
		{name: "settings only", args: nil, players: 100},
		{name: "overrides", args: []string{"--players", "40", "--seed", "3"}, players: 40, seed: 3},
		{name: "too few players", args: []string{"--players", "5"}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "play"}
			addGameFlags(cmd)
			require.NoError(t, cmd.ParseFlags(tc.args))

			cfg, err := gameFlags(cmd, &base)
			if tc.wantErr {
				require.ErrorIs(t, err, game.ErrNotEnoughPlayers)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.players, cfg.Game.Players)
			require.Equal(t, tc.seed, cfg.Game.Seed)
		})
	}
	require.Equal(t, 100, base.Game.Players, "flags must not change the loaded settings")
}
