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

// Package avl implements a score-ordered AVL tree.
//
// Nodes live in an index-addressed arena owned by the tree. Keys are numeric
// scores and may repeat; equal keys are inserted to the right. Every node
// carries an opaque payload (for instance a player id) which is never
// compared.
//
// A Tree is not safe for concurrent use.
package avl
