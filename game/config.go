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

package game

import (
	"errors"
	"fmt"
)

// ErrNotEnoughPlayers is returned when the roster cannot form a single team
// or is smaller than the number of finalists.
var ErrNotEnoughPlayers = errors.New("not enough players")

// Config holds tournament parameters.
type Config struct {
	Players           int    `yaml:"players"`
	TeamSize          int    `yaml:"team_size"`
	MaxRoundScore     int    `yaml:"max_round_score"`
	PoolRounds        int    `yaml:"pool_rounds"`
	EliminatePerRound int    `yaml:"eliminate_per_round"`
	Finalists         int    `yaml:"finalists"`
	FinalRounds       int    `yaml:"final_rounds"`
	Seed              uint64 `yaml:"seed"` // 0 picks a random seed
}

// DefaultConfig returns a 100 player tournament played in teams of ten.
func DefaultConfig() Config {
	return Config{
		Players:           100,
		TeamSize:          10,
		MaxRoundScore:     12,
		PoolRounds:        3,
		EliminatePerRound: 10,
		Finalists:         10,
		FinalRounds:       5,
	}
}

// Validate checks that a tournament with c can run to completion.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"players", c.Players},
		{"team_size", c.TeamSize},
		{"eliminate_per_round", c.EliminatePerRound},
		{"finalists", c.Finalists},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("invalid %s %d: must be positive", p.name, p.value)
		}
	}
	if c.MaxRoundScore < 0 {
		return fmt.Errorf("invalid max_round_score %d: must not be negative", c.MaxRoundScore)
	}
	if c.PoolRounds < 0 || c.FinalRounds < 0 {
		return fmt.Errorf("invalid round counts %d/%d: must not be negative", c.PoolRounds, c.FinalRounds)
	}
	if c.Finalists > c.Players {
		return fmt.Errorf("%w: %d finalists out of %d players", ErrNotEnoughPlayers, c.Finalists, c.Players)
	}
	if c.Finalists < c.TeamSize {
		return fmt.Errorf("%w: %d finalists cannot form a team of %d", ErrNotEnoughPlayers, c.Finalists, c.TeamSize)
	}
	return nil
}
