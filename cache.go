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

package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered round pages are only needed while the browser is open
	roundPageExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	roundPageCleanup = 5 * time.Minute
)

// NewRoundPageCache creates a cache for rendered round pages
func NewRoundPageCache() *cache.Cache {
	return cache.New(roundPageExpiration, roundPageCleanup)
}

func roundPageKey(round int, view pageView) string {
	return fmt.Sprintf("%d/%s", round, view)
}

func CacheRoundPage(c *cache.Cache, key string, page string) {
	c.Set(key, page, roundPageExpiration)
}

func GetRoundPage(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}
