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
	"cmp"
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/rs/zerolog"

	"github.com/cybrota/leaderboard/avl"
)

// Player is a ranked tree entry.
type Player struct {
	ID    int
	Score int
}

// Stage names the phase of a tournament a round belongs to.
type Stage string

const (
	StagePool        Stage = "pool"
	StageElimination Stage = "elimination"
	StageFinal       Stage = "final"
)

// RoundReport describes the state of the tournament after one round.
type RoundReport struct {
	Round      int
	Stage      Stage
	Remaining  int
	Eliminated []Player
	Standings  []Player // best first
	Text       string   // level order dump of the tree after the round
}

// Game holds the players of a tournament.
type Game struct {
	cfg     Config
	players *avl.Tree[int, int]
	round   int
	rng     *rand.Rand
	log     zerolog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for round events.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithRand replaces the score generator seeded from Config.Seed.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// NewRoster returns a tree of n players with ids 0..n-1 and no score.
func NewRoster(n int) *avl.Tree[int, int] {
	roster := avl.New[int, int]()
	for id := 0; id < n; id++ {
		// integer keys are always comparable
		_ = roster.Insert(0, id)
	}
	return roster
}

// New creates a game with cfg.Players players.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	g := &Game{
		cfg:     cfg,
		players: NewRoster(cfg.Players),
		rng:     rand.New(rand.NewPCG(seed, seed>>1)),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Round returns the number of rounds played so far.
func (g *Game) Round() int {
	return g.round
}

// Remaining returns the number of players still in the game.
func (g *Game) Remaining() int {
	return g.players.Size()
}

// Players exposes the tree of players for rendering.
func (g *Game) Players() *avl.Tree[int, int] {
	return g.players
}

// GenerateScores draws the scores of one team for one round.
func (g *Game) GenerateScores() []int {
	scores := make([]int, g.cfg.TeamSize)
	for i := range scores {
		scores[i] = g.rng.IntN(g.cfg.MaxRoundScore + 1)
	}
	return scores
}

// Simulate plays one round: every complete team gets a set of scores which
// are added to the players in ranking order. With shuffle the scores are
// dealt out at random instead of by team. Players left over after forming
// teams score nothing this round.
func (g *Game) Simulate(shuffle bool) error {
	teams := g.Remaining() / g.cfg.TeamSize
	if teams == 0 {
		return fmt.Errorf("round %d: %w: %d left, teams of %d", g.round+1, ErrNotEnoughPlayers, g.Remaining(), g.cfg.TeamSize)
	}
	scores := make([]int, 0, teams*g.cfg.TeamSize)
	for range teams {
		scores = append(scores, g.GenerateScores()...)
	}
	if shuffle {
		g.rng.Shuffle(len(scores), func(i, j int) { scores[i], scores[j] = scores[j], scores[i] })
	}
	if _, err := g.players.AddValues(scores, avl.InOrder); err != nil {
		return fmt.Errorf("round %d: %w", g.round+1, err)
	}
	g.round++
	g.log.Debug().Int("round", g.round).Int("teams", teams).Bool("shuffled", shuffle).Msg("round played")
	return nil
}

// SortPlayers rebuilds the tree so that it is ordered by the new scores.
func (g *Game) SortPlayers() error {
	sorted, err := g.players.Rebuild()
	if err != nil {
		return fmt.Errorf("sorting players: %w", err)
	}
	g.players = sorted
	return nil
}

// EliminateLast removes the n lowest ranked players, lowest first.
func (g *Game) EliminateLast(n int) []Player {
	removed := g.players.DeleteSmallest(n)
	out := make([]Player, len(removed))
	for i, e := range removed {
		out[i] = Player{ID: e.Payload, Score: e.Key}
	}
	if len(out) > 0 {
		g.log.Info().Int("round", g.round).Int("eliminated", len(out)).Int("remaining", g.Remaining()).
			Int("cutoff_score", out[len(out)-1].Score).Msg("players eliminated")
	}
	return out
}

// Standings lists the players best first. Scores added since the last
// SortPlayers are taken into account; ties keep the reverse tree order.
func (g *Game) Standings() []Player {
	entries := g.players.Entries(avl.InOrder)
	standings := make([]Player, len(entries))
	for i, e := range entries {
		standings[i] = Player{ID: e.Payload, Score: e.Key}
	}
	slices.Reverse(standings)
	slices.SortStableFunc(standings, func(a, b Player) int { return cmp.Compare(b.Score, a.Score) })
	return standings
}

// Play runs a whole tournament: pool rounds with teams formed by ranking,
// elimination rounds until only the finalists are left, then the finals.
// observe, when not nil, is called after every round. Play returns the
// final standings.
func (g *Game) Play(ctx context.Context, observe func(RoundReport)) ([]Player, error) {
	report := func(stage Stage, eliminated []Player) {
		if observe == nil {
			return
		}
		observe(RoundReport{
			Round:      g.round,
			Stage:      stage,
			Remaining:  g.Remaining(),
			Eliminated: eliminated,
			Standings:  g.Standings(),
			Text:       g.players.ToText(),
		})
	}

	g.log.Info().Int("players", g.Remaining()).Msg("tournament started")
	for range g.cfg.PoolRounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := g.Simulate(false); err != nil {
			return nil, err
		}
		report(StagePool, nil)
	}
	if err := g.SortPlayers(); err != nil {
		return nil, err
	}

	for g.Remaining() > g.cfg.Finalists {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := g.Simulate(true); err != nil {
			return nil, err
		}
		if err := g.SortPlayers(); err != nil {
			return nil, err
		}
		eliminated := g.EliminateLast(min(g.cfg.EliminatePerRound, g.Remaining()-g.cfg.Finalists))
		report(StageElimination, eliminated)
	}

	for range g.cfg.FinalRounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := g.Simulate(true); err != nil {
			return nil, err
		}
		if err := g.SortPlayers(); err != nil {
			return nil, err
		}
		report(StageFinal, nil)
	}

	standings := g.Standings()
	g.log.Info().Int("rounds", g.round).Int("winner", standings[0].ID).Int("score", standings[0].Score).Msg("tournament finished")
	return standings, nil
}
