// SPDX-License-Identifier: MIT
// Package: kinetic/letters
//
// cache.go - explicit memo of generated pictographs.
//
// Contract:
//   - Keyed by generator, letter, grid mode and prop type. A Cache shared
//     between generators holds each generator's results apart, since their
//     tables, builders and validators may disagree about the same letter.
//   - Safe for concurrent use. Reads take the read lock; concurrent misses
//     for one key are collapsed into a single computation.
//   - Failed computations are not stored.
//   - Stored and returned slices are private copies.
//
// Complexity:
//   - Hit: O(k) to copy k pictographs. Miss: the computation plus O(k).

package letters

import (
	"slices"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/motion"
)

type cacheKey struct {
	generator uint64
	system    PositionSystem
	letter    Letter
	mode      grid.Mode
	prop      motion.PropType
}

func (k cacheKey) String() string {
	return strconv.FormatUint(k.generator, 10) + "|" + string(k.system) + "|" +
		string(k.letter) + "|" + string(k.mode) + "|" + string(k.prop)
}

// Cache memoizes generated pictographs for the lifetime of the value.
// The zero value is not usable; call NewCache.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]Pictograph
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]Pictograph)}
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

func (c *Cache) get(k cacheKey) ([]Pictograph, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ps, ok := c.entries[k]
	if !ok {
		return nil, false
	}

	return slices.Clone(ps), true
}

func (c *Cache) put(k cacheKey, ps []Pictograph) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = slices.Clone(ps)
}

// getOrCompute returns the cached value for k, running compute on a miss.
// hit reports whether the value was already cached.
func (c *Cache) getOrCompute(k cacheKey, compute func() ([]Pictograph, error)) (ps []Pictograph, hit bool, err error) {
	if ps, ok := c.get(k); ok {
		return ps, true, nil
	}

	v, err, _ := c.group.Do(k.String(), func() (any, error) {
		// Another caller may have filled the entry before this flight began.
		if ps, ok := c.get(k); ok {
			return ps, nil
		}
		ps, err := compute()
		if err != nil {
			return nil, err
		}
		c.put(k, ps)

		return ps, nil
	})
	if err != nil {
		return nil, false, err
	}

	return slices.Clone(v.([]Pictograph)), false, nil
}
