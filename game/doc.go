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

// Package game runs score tournaments on top of an avl tree.
//
// Players are tree entries keyed by their score, with the player id as
// payload. Every round adds fresh random scores to all players, the tree is
// rebuilt to restore its order and, during the elimination stage, the
// lowest ranked players are removed.
package game
