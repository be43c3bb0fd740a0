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

import "errors"

var (
	// ErrIncomparableKey is returned for keys outside the total order (NaN).
	ErrIncomparableKey = errors.New("incomparable key")
	// ErrKeyNotFound is returned when deleting a key that is not in the tree.
	ErrKeyNotFound = errors.New("key not found")
	// ErrUnknownOrder is returned for traversal orders other than InOrder and PreOrder.
	ErrUnknownOrder = errors.New("unknown traversal order")
)
