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

// nilIndex marks an empty child slot or an empty tree.
const nilIndex = -1

type node[K Score, P any] struct {
	key     K
	payload P
	left    int
	right   int
	height  int
}

// alloc returns a leaf slot, reusing a reclaimed one when available.
func (t *Tree[K, P]) alloc(key K, payload P) int {
	n := node[K, P]{key: key, payload: payload, left: nilIndex, right: nilIndex}
	if last := len(t.free) - 1; last >= 0 {
		i := t.free[last]
		t.free = t.free[:last]
		t.nodes[i] = n
		return i
	}
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// release returns slot i to the free list.
func (t *Tree[K, P]) release(i int) {
	t.nodes[i] = node[K, P]{left: nilIndex, right: nilIndex}
	t.free = append(t.free, i)
}

func (t *Tree[K, P]) entry(i int) Entry[K, P] {
	return Entry[K, P]{Key: t.nodes[i].key, Payload: t.nodes[i].payload}
}

func (t *Tree[K, P]) height(i int) int {
	if i == nilIndex {
		return -1
	}
	return t.nodes[i].height
}

// updateHeight assumes both children already hold correct heights.
func (t *Tree[K, P]) updateHeight(i int) {
	n := &t.nodes[i]
	n.height = 1 + max(t.height(n.left), t.height(n.right))
}

func (t *Tree[K, P]) balanceFactor(i int) int {
	if i == nilIndex {
		return 0
	}
	return t.height(t.nodes[i].right) - t.height(t.nodes[i].left)
}
