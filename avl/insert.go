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

import "fmt"

// Insert adds key with its payload. Equal keys are placed to the right of
// existing ones.
func (t *Tree[K, P]) Insert(key K, payload P) error {
	if incomparable(key) {
		return fmt.Errorf("insert %v: %w", key, ErrIncomparableKey)
	}
	t.root = t.insert(t.root, key, payload)
	t.count++
	return nil
}

// insert returns the root of the subtree at i after adding key.
//
// alloc may grow the arena, so no node pointer is held across the recursion.
func (t *Tree[K, P]) insert(i int, key K, payload P) int {
	if i == nilIndex {
		return t.alloc(key, payload)
	}

	if key < t.nodes[i].key {
		left := t.insert(t.nodes[i].left, key, payload)
		t.nodes[i].left = left
	} else {
		right := t.insert(t.nodes[i].right, key, payload)
		t.nodes[i].right = right
	}

	t.updateHeight(i)

	switch bf := t.balanceFactor(i); {
	case bf > 1:
		right := t.nodes[i].right
		if key < t.nodes[right].key {
			// Right-Left case
			t.nodes[i].right = t.rotateRight(right)
		}
		return t.rotateLeft(i)
	case bf < -1:
		left := t.nodes[i].left
		if key >= t.nodes[left].key {
			// Left-Right case
			t.nodes[i].left = t.rotateLeft(left)
		}
		return t.rotateRight(i)
	}

	return i
}
