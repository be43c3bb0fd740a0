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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/leaderboard/avl"
	"github.com/cybrota/leaderboard/game"
)

const configFileName = ".leaderboard.yaml"

type DisplayConfig struct {
	Format      string `yaml:"format"` // text, dot or outline
	ShowHeight  bool   `yaml:"show_height"`
	ShowBalance bool   `yaml:"show_balance"`
	ShowPayload bool   `yaml:"show_payload"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

type Config struct {
	Game    game.Config   `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

func defaultConfig() Config {
	return Config{
		Game: game.DefaultConfig(),
		Display: DisplayConfig{
			Format: "text",
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// textOptions turns the display settings into tree rendering options.
func (d DisplayConfig) textOptions() []avl.TextOption {
	var opts []avl.TextOption
	if d.ShowHeight {
		opts = append(opts, avl.WithHeight())
	}
	if d.ShowBalance {
		opts = append(opts, avl.WithBalance())
	}
	if d.ShowPayload {
		opts = append(opts, avl.WithPayload())
	}
	return opts
}

// LoadConfig reads ~/.leaderboard.yaml. Missing settings keep their default
// values; when the file cannot be used the defaults are returned along with
// the reason.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig()
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	loaded := defaultConfig()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return &cfg, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	if err := loaded.Game.Validate(); err != nil {
		return &cfg, fmt.Errorf("invalid game settings in %s: %w", configPath, err)
	}

	return &loaded, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(configPath string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeConfigFile(configPath, defaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "⚠️  %v. Showing default settings.\n\n", err)
	}

	fmt.Fprintf(w, "🔧 Leaderboard Configuration Settings\n")
	fmt.Fprintf(w, "═════════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	}

	g := config.Game
	fmt.Fprintf(w, "🏆 %sTournament:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • players: %d (teams of %d, round scores 0-%d)\n", g.Players, g.TeamSize, g.MaxRoundScore)
	fmt.Fprintf(w, "  • pool_rounds: %d\n", g.PoolRounds)
	fmt.Fprintf(w, "  • eliminate_per_round: %d until %d finalists remain\n", g.EliminatePerRound, g.Finalists)
	fmt.Fprintf(w, "  • final_rounds: %d\n", g.FinalRounds)
	if g.Seed == 0 {
		fmt.Fprintf(w, "  • seed: random\n\n")
	} else {
		fmt.Fprintf(w, "  • seed: %d\n\n", g.Seed)
	}

	d := config.Display
	fmt.Fprintf(w, "🌳 %sTree display:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • format: %s\n", d.Format)
	fmt.Fprintf(w, "  • show_height: %t, show_balance: %t, show_payload: %t\n\n", d.ShowHeight, d.ShowBalance, d.ShowPayload)

	fmt.Fprintf(w, "📜 %sLogging:%s level %s, console %t\n\n", Green, Reset, config.Log.Level, config.Log.Console)
	fmt.Fprintf(w, "💡 Edit %s to change these settings.\n", configPath)
	return nil
}
