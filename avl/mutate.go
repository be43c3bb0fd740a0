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

// AddValues adds values[i] to the key of the i-th node visited in order. It
// stops at whichever of the tree and values runs out first and returns the
// number of keys changed.
//
// The tree is not restructured: once keys move past their neighbours the
// ordering invariant no longer holds until Rebuild is called.
func (t *Tree[K, P]) AddValues(values []K, order Order) (int, error) {
	return t.mutate(values, order, func(old, v K) K { return old + v })
}

// SetValues overwrites keys the same way AddValues accumulates them.
func (t *Tree[K, P]) SetValues(values []K, order Order) (int, error) {
	return t.mutate(values, order, func(_, v K) K { return v })
}

// mutate computes every new key before writing any of them, so a rejected
// batch leaves the tree as it was.
func (t *Tree[K, P]) mutate(values []K, order Order, apply func(old, v K) K) (int, error) {
	if order != InOrder && order != PreOrder {
		return 0, fmt.Errorf("%w: %v", ErrUnknownOrder, order)
	}
	if len(values) == 0 {
		return 0, nil
	}

	slots := make([]int, 0, min(len(values), t.count))
	keys := make([]K, 0, cap(slots))
	var bad error
	t.visit(order, func(i int) bool {
		k := apply(t.nodes[i].key, values[len(slots)])
		if incomparable(k) {
			bad = fmt.Errorf("value %d (%v): %w", len(slots), values[len(slots)], ErrIncomparableKey)
			return false
		}
		slots = append(slots, i)
		keys = append(keys, k)
		return len(slots) < len(values)
	})
	if bad != nil {
		return 0, bad
	}

	for n, i := range slots {
		t.nodes[i].key = keys[n]
	}
	return len(slots), nil
}
