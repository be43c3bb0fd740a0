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

// rotateLeft promotes the right child of i and returns the new subtree root.
func (t *Tree[K, P]) rotateLeft(i int) int {
	pivot := t.nodes[i].right
	if pivot == nilIndex {
		panic(fmt.Sprintf("avl: rotate left at node %d without right child", i))
	}

	t.nodes[i].right = t.nodes[pivot].left
	t.nodes[pivot].left = i

	t.updateHeight(i)
	t.updateHeight(pivot)

	return pivot
}

// rotateRight promotes the left child of i and returns the new subtree root.
func (t *Tree[K, P]) rotateRight(i int) int {
	pivot := t.nodes[i].left
	if pivot == nilIndex {
		panic(fmt.Sprintf("avl: rotate right at node %d without left child", i))
	}

	t.nodes[i].left = t.nodes[pivot].right
	t.nodes[pivot].right = i

	t.updateHeight(i)
	t.updateHeight(pivot)

	return pivot
}
