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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToText(t *testing.T) {
	tree := buildTree(t, 2, 1, 3)
	require.Equal(t, "| 2 |\n| 1 || 3 |\n", tree.ToText())
	require.Equal(t,
		"| 2 |<h1><p-><b0><i0>\n| 1 |<h0><p0><b0><i1>| 3 |<h0><p0><b0><i2>\n",
		tree.ToText(WithHeight(), WithParent(), WithBalance(), WithIndex()))
	require.Equal(t,
		"/ 2 /<id0>\n/ 1 /<id1>/ 3 /<id2>\nHeight: 1\nNumber of nodes: 3\n",
		tree.ToText(WithSeparator("/"), WithPayload(), WithSummary()))
}

func TestToTextDuplicatesAndEmpty(t *testing.T) {
	require.Equal(t, "", New[int, int]().ToText())
	require.Equal(t, "Height: -1\nNumber of nodes: 0\n", New[int, int]().ToText(WithSummary()))

	tree := buildTree(t, 4, 4, 4, 4)
	require.Equal(t, "| 4 |\n| 4 || 4 |\n| 4 |\n", tree.ToText())
}

func TestToDiagram(t *testing.T) {
	tree := buildTree(t, 5, 3, 8, 1, 4, 7, 9, 2, 6, 0)
	out := tree.ToDiagram(WithHeight())
	require.True(t, strings.HasPrefix(strings.TrimSpace(out), "digraph"))
	require.Equal(t, tree.Size()-1, strings.Count(out, "->"))
	for _, k := range []string{"0", "5", "9"} {
		require.Contains(t, out, k)
	}

	g := New[int, int]().Diagram()
	require.NotContains(t, g.String(), "->")
}

func TestOutline(t *testing.T) {
	require.Empty(t, New[int, int]().Outline())

	tree := buildTree(t, 2, 1, 3, 4)
	out := tree.Outline()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "2", strings.TrimSpace(lines[0]))
	require.Contains(t, lines[1], "L 1")
	require.Contains(t, lines[2], "R 3")
	require.Contains(t, lines[3], "R 4")
}
