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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Leaderboard %s**

Play score tournaments on a self-balancing AVL tree and inspect every round.

Built with Go %s

# 1. Commands
* **play**: run a tournament and print the final standings
* **browse**: run a tournament and browse the rounds in a terminal UI
* **tree**: build a tree from keys and print it as text, DOT or an outline
* **script**: run tree operations from a file, one per line
* **settings**: show the configuration in ~/.leaderboard.yaml

# 2. Tournaments
* Every player starts with a score of zero
* Pool rounds: teams are formed by ranking and every player earns 0-12 points
* Elimination rounds: scores are dealt at random and the 10 lowest players leave
* Finals: the last 10 players play 5 more rounds

# 3. Scripts
Each line holds one command. Quote payloads that contain spaces.

    insert 5 "player one"
    add inorder 1 2 3
    rebuild
    smallest 2
    text

Commands: insert, delete, smallest, add, set, rebuild, size, text, dot, outline, check.

# Browse keys
* Tab switches between the rounds and the page
* d toggles standings and tree dump, c copies the page to the clipboard
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
