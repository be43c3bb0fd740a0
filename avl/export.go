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
	"strings"

	"github.com/emicklei/dot"
)

type textOptions struct {
	sep     string
	height  bool
	parent  bool
	balance bool
	index   bool
	payload bool
	summary bool
}

// TextOption adds annotations to ToText and ToDiagram output.
type TextOption func(*textOptions)

// WithSeparator changes the "|" drawn around each key by ToText.
func WithSeparator(sep string) TextOption {
	return func(o *textOptions) { o.sep = sep }
}

// WithHeight annotates each node with its height.
func WithHeight() TextOption {
	return func(o *textOptions) { o.height = true }
}

// WithParent annotates each node with the breadth-first index of its parent.
func WithParent() TextOption {
	return func(o *textOptions) { o.parent = true }
}

// WithBalance annotates each node with its balance factor.
func WithBalance() TextOption {
	return func(o *textOptions) { o.balance = true }
}

// WithIndex annotates each node with its breadth-first index.
func WithIndex() TextOption {
	return func(o *textOptions) { o.index = true }
}

// WithPayload annotates each node with its payload.
func WithPayload() TextOption {
	return func(o *textOptions) { o.payload = true }
}

// WithSummary appends the tree height and node count to ToText output.
func WithSummary() TextOption {
	return func(o *textOptions) { o.summary = true }
}

func newTextOptions(opts []TextOption) textOptions {
	o := textOptions{sep: "|"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// annotations lists the enabled "<tag value>" parts for a node.
func (t *Tree[K, P]) annotations(o textOptions, ln levelNode) [][2]string {
	var parts [][2]string
	if o.height {
		parts = append(parts, [2]string{"h", fmt.Sprint(t.nodes[ln.slot].height)})
	}
	if o.parent {
		parent := "-"
		if ln.parent >= 0 {
			parent = fmt.Sprint(ln.parent)
		}
		parts = append(parts, [2]string{"p", parent})
	}
	if o.balance {
		parts = append(parts, [2]string{"b", fmt.Sprint(t.balanceFactor(ln.slot))})
	}
	if o.index {
		parts = append(parts, [2]string{"i", fmt.Sprint(ln.index)})
	}
	if o.payload {
		parts = append(parts, [2]string{"id", fmt.Sprint(t.nodes[ln.slot].payload)})
	}
	return parts
}

// ToText dumps the tree level by level, one line per depth:
//
//	| 5 |
//	| 3 || 8 |
func (t *Tree[K, P]) ToText(opts ...TextOption) string {
	o := newTextOptions(opts)
	var sb strings.Builder
	depth := 0
	t.levels(func(ln levelNode) {
		if ln.depth != depth {
			sb.WriteByte('\n')
			depth = ln.depth
		}
		fmt.Fprintf(&sb, "%s %v %s", o.sep, t.nodes[ln.slot].key, o.sep)
		for _, a := range t.annotations(o, ln) {
			fmt.Fprintf(&sb, "<%s%s>", a[0], a[1])
		}
	})
	if t.root != nilIndex {
		sb.WriteByte('\n')
	}
	if o.summary {
		fmt.Fprintf(&sb, "Height: %d\nNumber of nodes: %d\n", t.Height(), t.count)
	}
	return sb.String()
}

// Diagram builds a Graphviz digraph with one vertex per node, labelled with
// the key and the enabled annotations, and one edge per parent/child link.
func (t *Tree[K, P]) Diagram(opts ...TextOption) *dot.Graph {
	o := newTextOptions(opts)
	g := dot.NewGraph(dot.Directed)
	vertices := make([]dot.Node, 0, t.count)
	t.levels(func(ln levelNode) {
		lines := []string{fmt.Sprint(t.nodes[ln.slot].key)}
		for _, a := range t.annotations(o, ln) {
			lines = append(lines, a[0]+" "+a[1])
		}
		v := g.Node(fmt.Sprint(ln.index)).Label(strings.Join(lines, "\n"))
		vertices = append(vertices, v)
		if ln.parent >= 0 {
			g.Edge(vertices[ln.parent], v)
		}
	})
	return g
}

// ToDiagram renders Diagram in the DOT language.
func (t *Tree[K, P]) ToDiagram(opts ...TextOption) string {
	return t.Diagram(opts...).String()
}
