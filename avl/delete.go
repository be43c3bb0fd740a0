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

// Delete removes the first node holding key met on the search path and
// returns its entry. Deleting an absent key leaves the tree untouched and
// reports ErrKeyNotFound.
func (t *Tree[K, P]) Delete(key K) (Entry[K, P], error) {
	if incomparable(key) {
		return Entry[K, P]{}, fmt.Errorf("delete %v: %w", key, ErrIncomparableKey)
	}
	root, removed, found := t.delete(t.root, key)
	if !found {
		return Entry[K, P]{}, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	t.root = root
	t.count--
	return removed, nil
}

// DeleteSmallest removes the n smallest entries and returns them in
// ascending order. It stops early once the tree is empty.
func (t *Tree[K, P]) DeleteSmallest(n int) []Entry[K, P] {
	removed := make([]Entry[K, P], 0, min(max(n, 0), t.count))
	for ; n > 0 && t.root != nilIndex; n-- {
		var e Entry[K, P]
		t.root, e = t.deleteMin(t.root)
		t.count--
		removed = append(removed, e)
	}
	return removed
}

func (t *Tree[K, P]) delete(i int, key K) (int, Entry[K, P], bool) {
	if i == nilIndex {
		return nilIndex, Entry[K, P]{}, false
	}

	var (
		removed Entry[K, P]
		found   bool
	)
	switch {
	case key < t.nodes[i].key:
		var left int
		left, removed, found = t.delete(t.nodes[i].left, key)
		t.nodes[i].left = left
	case key > t.nodes[i].key:
		var right int
		right, removed, found = t.delete(t.nodes[i].right, key)
		t.nodes[i].right = right
	default:
		removed, found = t.entry(i), true
		left, right := t.nodes[i].left, t.nodes[i].right
		// Case 1 and 2: no children or a single child takes the slot
		if left == nilIndex || right == nilIndex {
			child := left
			if child == nilIndex {
				child = right
			}
			t.release(i)
			return child, removed, true
		}
		// Case 3: two children, splice in the in-order successor
		var successor Entry[K, P]
		right, successor = t.deleteMin(right)
		t.nodes[i].right = right
		t.nodes[i].key = successor.Key
		t.nodes[i].payload = successor.Payload
	}

	if !found {
		return i, removed, false
	}
	t.updateHeight(i)
	return t.rebalance(i), removed, true
}

// deleteMin excises the leftmost node of the subtree at i.
func (t *Tree[K, P]) deleteMin(i int) (int, Entry[K, P]) {
	left := t.nodes[i].left
	if left == nilIndex {
		right := t.nodes[i].right
		e := t.entry(i)
		t.release(i)
		return right, e
	}
	left, e := t.deleteMin(left)
	t.nodes[i].left = left
	t.updateHeight(i)
	return t.rebalance(i), e
}

// rebalance restores the balance of i from the balance factors of i and of
// its taller child.
func (t *Tree[K, P]) rebalance(i int) int {
	switch bf := t.balanceFactor(i); {
	case bf > 1:
		right := t.nodes[i].right
		if t.balanceFactor(right) < 0 {
			t.nodes[i].right = t.rotateRight(right)
		}
		return t.rotateLeft(i)
	case bf < -1:
		left := t.nodes[i].left
		if t.balanceFactor(left) > 0 {
			t.nodes[i].left = t.rotateLeft(left)
		}
		return t.rotateRight(i)
	}
	return i
}
