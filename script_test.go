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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/leaderboard/avl"
)

func TestScriptRunner(t *testing.T) {
	script := `
# build a small tree
insert 5 "player five"
insert 3
insert 8 eight
insert 1
insert 4
size
text
delete 3
smallest 2
add inorder 10 10
check
set preorder 1 2
rebuild
text
`
	var out bytes.Buffer
	require.NoError(t, newScriptRunner(&out, nil).Run(strings.NewReader(script)))
	require.Equal(t, strings.Join([]string{
		"5",
		"| 5 |",
		"| 3 || 8 |",
		"| 1 || 4 |",
		`deleted 3 ""`,
		"removed [1 4]",
		"add 2 values inorder",
		"ok",
		"set 2 values preorder",
		"| 1 |",
		"| 2 |",
		"",
	}, "\n"), out.String())
}

func TestScriptRunnerErrors(t *testing.T) {
	testCases := []struct {
		name   string
		script string
		errIs  error
		msg    string
	}{
		{name: "absent key", script: "insert 1\ndelete 2", errIs: avl.ErrKeyNotFound, msg: "line 2"},
		{name: "nan key", script: "insert NaN", errIs: avl.ErrIncomparableKey, msg: "line 1"},
		{name: "bad order", script: "insert 1\nadd postorder 1", errIs: avl.ErrUnknownOrder},
		{name: "arity", script: "delete", errIs: errUsage},
		{name: "unknown command", script: "rotate 1", msg: `unknown command "rotate"`},
		{name: "bad score", script: "insert five", msg: `invalid score "five"`},
		{name: "unbalanced quote", script: `insert 1 "oops`, msg: "failed to parse"},
		{name: "order broken", script: "insert 1\ninsert 2\nset inorder 9\ncheck", msg: "line 4"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := newScriptRunner(&out, nil).Run(strings.NewReader(tc.script))
			require.Error(t, err)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
			}
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestRenderTree(t *testing.T) {
	out, err := renderTree([]float64{2, 1, 3}, "text", []avl.TextOption{avl.WithPayload()})
	require.NoError(t, err)
	require.Equal(t, "| 2 |<id0>\n| 1 |<id1>| 3 |<id2>\n", out)

	out, err = renderTree([]float64{2, 1, 3}, "dot", nil)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "->"))

	out, err = renderTree([]float64{2, 1}, "outline", nil)
	require.NoError(t, err)
	require.Contains(t, out, "L 1")

	_, err = renderTree([]float64{1}, "svg", nil)
	require.Error(t, err)
}

func TestRenderTreeDetails(t *testing.T) {
	out, err := renderTree([]float64{2, 1, 3}, "text", detailOptions())
	require.NoError(t, err)
	require.Equal(t, "| 2 |<h1><p-><b0><i0>\n| 1 |<h0><p0><b0><i1>| 3 |<h0><p0><b0><i2>\nHeight: 1\nNumber of nodes: 3\n", out)
}
