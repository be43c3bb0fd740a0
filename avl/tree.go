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

import "golang.org/x/exp/constraints"

// Score is the key type of a tree.
type Score interface {
	constraints.Integer | constraints.Float
}

// Entry is a copy of a node's key and payload.
type Entry[K Score, P any] struct {
	Key     K
	Payload P
}

// Tree holds the arena of nodes and the index of the root node.
type Tree[K Score, P any] struct {
	nodes []node[K, P]
	free  []int
	root  int
	count int
}

// New creates an empty tree.
func New[K Score, P any]() *Tree[K, P] {
	return &Tree[K, P]{root: nilIndex}
}

// Size returns the number of entries in the tree.
func (t *Tree[K, P]) Size() int {
	return t.count
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, P]) IsEmpty() bool {
	return t.root == nilIndex
}

// Height returns the height of the tree, -1 when empty.
func (t *Tree[K, P]) Height() int {
	return t.height(t.root)
}

// Min returns the entry with the smallest key.
func (t *Tree[K, P]) Min() (Entry[K, P], bool) {
	if t.root == nilIndex {
		return Entry[K, P]{}, false
	}
	i := t.root
	for t.nodes[i].left != nilIndex {
		i = t.nodes[i].left
	}
	return t.entry(i), true
}

// Max returns the entry with the largest key.
func (t *Tree[K, P]) Max() (Entry[K, P], bool) {
	if t.root == nilIndex {
		return Entry[K, P]{}, false
	}
	i := t.root
	for t.nodes[i].right != nilIndex {
		i = t.nodes[i].right
	}
	return t.entry(i), true
}

// Rebuild returns a new tree holding the same entries, inserted in order.
//
// Keys changed by AddValues or SetValues are not re-sorted in place; a
// rebuilt tree satisfies the ordering invariant again.
func (t *Tree[K, P]) Rebuild() (*Tree[K, P], error) {
	rebuilt := New[K, P]()
	rebuilt.nodes = make([]node[K, P], 0, t.count)
	var err error
	t.Walk(InOrder, func(e Entry[K, P]) bool {
		err = rebuilt.Insert(e.Key, e.Payload)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return rebuilt, nil
}

// incomparable reports whether k is outside the total order of K.
func incomparable[K Score](k K) bool {
	return k != k
}
