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

// Check verifies the ordering and balance invariants, the cached heights and
// the node count. It returns an error describing the first violation.
func (t *Tree[K, P]) Check() error {
	n, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.count {
		return fmt.Errorf("count %d, found %d nodes", t.count, n)
	}
	if live := len(t.nodes) - len(t.free); live != t.count {
		return fmt.Errorf("count %d, arena holds %d live slots", t.count, live)
	}
	return nil
}

// check returns the number of nodes below i whose keys lie within [lo, hi].
func (t *Tree[K, P]) check(i int, lo, hi *K) (int, error) {
	if i == nilIndex {
		return 0, nil
	}
	nd := &t.nodes[i]
	if lo != nil && nd.key < *lo {
		return 0, fmt.Errorf("node %v: key below left bound %v", nd.key, *lo)
	}
	if hi != nil && nd.key > *hi {
		return 0, fmt.Errorf("node %v: key above right bound %v", nd.key, *hi)
	}
	if want := 1 + max(t.height(nd.left), t.height(nd.right)); nd.height != want {
		return 0, fmt.Errorf("node %v: cached height %d, want %d", nd.key, nd.height, want)
	}
	if bf := t.balanceFactor(i); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("node %v: balance factor %d", nd.key, bf)
	}

	key := nd.key
	left, err := t.check(nd.left, lo, &key)
	if err != nil {
		return 0, err
	}
	right, err := t.check(nd.right, &key, hi)
	if err != nil {
		return 0, err
	}
	return 1 + left + right, nil
}
