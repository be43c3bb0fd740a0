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
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	asciiLogo := `
██╗     ███████╗ █████╗ ██████╗ ███████╗██████╗ ██████╗  ██████╗  █████╗ ██████╗ ██████╗
██║     ██╔════╝██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔══██╗██╔═══██╗██╔══██╗██╔══██╗██╔══██╗
██║     █████╗  ███████║██║  ██║█████╗  ██████╔╝██████╔╝██║   ██║███████║██████╔╝██║  ██║
██║     ██╔══╝  ██╔══██║██║  ██║██╔══╝  ██╔══██╗██╔══██╗██║   ██║██╔══██║██╔══██╗██║  ██║
███████╗███████╗██║  ██║██████╔╝███████╗██║  ██║██████╔╝╚██████╔╝██║  ██║██║  ██║██████╔╝
╚══════╝╚══════╝╚═╝  ╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝
Score tournaments on a self-balancing AVL tree [Version: %s%s%s]

Copyright @ Naren Yellavula (Please give us a star ⭐ here: https://github.com/cybrota/leaderboard)

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	logger := newLogger(config.Log, os.Stderr)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to load configuration. Using default settings.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cmdPlay = &cobra.Command{
		Use:   "play",
		Short: "Play a tournament and print the final standings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Play runs pool, elimination and final rounds and prints the finalists`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gameFlags(cmd, config)
			if err != nil {
				return err
			}
			quiet, _ := cmd.Flags().GetBool("quiet")

			var progress io.Writer
			if !quiet {
				progress = os.Stderr
			}
			_, standings, err := playTournament(ctx, cfg.Game, logger, progress)
			if err != nil {
				return err
			}
			fmt.Println(renderStandings(standings, 0))
			return nil
		},
	}
	addGameFlags(cmdPlay)
	cmdPlay.Flags().BoolP("quiet", "q", false, "hide the progress bar")

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Play a tournament and browse its rounds",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse opens a terminal UI with the standings and tree of every round`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gameFlags(cmd, config)
			if err != nil {
				return err
			}
			// Log lines would tear the alternate screen
			reports, _, err := playTournament(ctx, cfg.Game, zerolog.Nop(), nil)
			if err != nil {
				return err
			}
			return runBrowseApp(reports, NewRoundPageCache())
		},
	}
	addGameFlags(cmdBrowse)

	var cmdTree = &cobra.Command{
		Use:   "tree [keys...]",
		Short: "Build a tree from keys and print it",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Tree inserts the keys in the given order and prints the result as text, DOT or an outline"),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			format := config.Display.Format
			if cmd.Flags().Changed("format") {
				format, _ = cmd.Flags().GetString("format")
			}
			opts := config.Display.textOptions()
			if details, _ := cmd.Flags().GetBool("details"); details {
				opts = detailOptions()
			}
			out, err := renderTree(keys, format, opts)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	cmdTree.Flags().StringP("format", "f", "text", "output format: text, dot or outline")
	cmdTree.Flags().Bool("details", false, "annotate nodes with height, parent, balance and index")

	var cmdScript = &cobra.Command{
		Use:   "script FILE|-",
		Short: "Run tree operations from a file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Script runs one tree operation per line. Use - to read from standard input"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return newScriptRunner(os.Stdout, config.Display.textOptions()).Run(in)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Display the current configuration from ~/.leaderboard.yaml"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(os.Stdout)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Leaderboard usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the leaderboard CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Leaderboard version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "leaderboard",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(cmdPlay, cmdBrowse, cmdTree, cmdScript, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().Int("players", 0, "number of players (default from settings)")
	cmd.Flags().Uint64("seed", 0, "score generator seed (default from settings)")
}

// gameFlags applies --players and --seed on top of the loaded settings.
func gameFlags(cmd *cobra.Command, base *Config) (Config, error) {
	cfg := *base
	if cmd.Flags().Changed("players") {
		cfg.Game.Players, _ = cmd.Flags().GetInt("players")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Game.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if err := cfg.Game.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}
