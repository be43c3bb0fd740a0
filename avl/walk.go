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
)

// Order selects a depth-first traversal order.
type Order int

const (
	InOrder Order = iota
	PreOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder accepts "inorder" and "preorder" in any case, with or without
// a dash ("in-order").
func ParseOrder(s string) (Order, error) {
	switch strings.ReplaceAll(strings.ToLower(s), "-", "") {
	case "inorder":
		return InOrder, nil
	case "preorder":
		return PreOrder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Walk calls fn for every entry in the given order until fn returns false.
// Unknown orders visit nothing.
func (t *Tree[K, P]) Walk(order Order, fn func(Entry[K, P]) bool) {
	t.visit(order, func(i int) bool {
		return fn(t.entry(i))
	})
}

// Entries returns a copy of all entries in the given order.
func (t *Tree[K, P]) Entries(order Order) []Entry[K, P] {
	entries := make([]Entry[K, P], 0, t.count)
	t.Walk(order, func(e Entry[K, P]) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// Keys returns all keys in ascending tree order.
func (t *Tree[K, P]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.visit(InOrder, func(i int) bool {
		keys = append(keys, t.nodes[i].key)
		return true
	})
	return keys
}

// visit walks arena indices with an explicit stack.
func (t *Tree[K, P]) visit(order Order, fn func(i int) bool) {
	if t.root == nilIndex {
		return
	}
	stack := make([]int, 0, t.height(t.root)+2)

	switch order {
	case InOrder:
		i := t.root
		for len(stack) > 0 || i != nilIndex {
			if i != nilIndex {
				stack = append(stack, i)
				i = t.nodes[i].left
				continue
			}
			i = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !fn(i) {
				return
			}
			i = t.nodes[i].right
		}
	case PreOrder:
		stack = append(stack, t.root)
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !fn(i) {
				return
			}
			if r := t.nodes[i].right; r != nilIndex {
				stack = append(stack, r)
			}
			if l := t.nodes[i].left; l != nilIndex {
				stack = append(stack, l)
			}
		}
	}
}

// levelNode is a node met during a breadth-first walk.
type levelNode struct {
	index  int // position in breadth-first order
	parent int // breadth-first position of the parent, -1 for the root
	depth  int
	slot   int // arena index
}

// levels walks the tree breadth first.
func (t *Tree[K, P]) levels(fn func(levelNode)) {
	if t.root == nilIndex {
		return
	}
	queue := []levelNode{{index: 0, parent: -1, slot: t.root}}
	next := 1
	for len(queue) > 0 {
		ln := queue[0]
		queue = queue[1:]
		fn(ln)
		for _, child := range [2]int{t.nodes[ln.slot].left, t.nodes[ln.slot].right} {
			if child == nilIndex {
				continue
			}
			queue = append(queue, levelNode{index: next, parent: ln.index, depth: ln.depth + 1, slot: child})
			next++
		}
	}
}
