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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), configFileName))
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), *cfg)
}

func TestLoadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	data := "game:\n  players: 40\n  seed: 7\ndisplay:\n  show_height: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := loadConfigFrom(path)
	require.NoError(t, err)
	require.Equal(t, 40, cfg.Game.Players)
	require.Equal(t, uint64(7), cfg.Game.Seed)
	require.Equal(t, 10, cfg.Game.TeamSize)
	require.Equal(t, "text", cfg.Display.Format)
	require.True(t, cfg.Display.ShowHeight)
	require.Len(t, cfg.Display.textOptions(), 1)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "broken yaml", data: "game: [players"},
		{name: "invalid game", data: "game:\n  players: 5\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), configFileName)
			require.NoError(t, os.WriteFile(path, []byte(tc.data), 0644))

			cfg, err := loadConfigFrom(path)
			require.Error(t, err)
			require.Equal(t, defaultConfig(), *cfg)
		})
	}
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	want := defaultConfig()
	want.Game.Seed = 99
	want.Display.Format = "outline"
	require.NoError(t, writeConfigFile(path, want))

	got, err := loadConfigFrom(path)
	require.NoError(t, err)
	require.Equal(t, want, *got)
}
