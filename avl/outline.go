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

package avl

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
)

// Outline renders the tree as an indented outline for terminals. Children
// are tagged L or R so a lone child shows its side.
func (t *Tree[K, P]) Outline() string {
	if t.root == nilIndex {
		return ""
	}
	return t.outline(t.root, "").String()
}

func (t *Tree[K, P]) outline(i int, side string) *tree.Tree {
	n := t.nodes[i]
	branch := tree.Root(fmt.Sprintf("%s%v", side, n.key))
	if n.left != nilIndex {
		branch.Child(t.outline(n.left, "L "))
	}
	if n.right != nilIndex {
		branch.Child(t.outline(n.right, "R "))
	}
	return branch
}
