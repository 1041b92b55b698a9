// Package cache holds ad batches per placement unit.
//
// The store is split into shards selected by hashing the unit id. Each shard
// is guarded by its own RWMutex, so lookups share the lock while replacing a
// unit's set excludes readers and writers of that shard only. Units that land
// on different shards never contend.
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"adchain/internal/core/domain"
)

// DefaultShards is the shard count used when none is given.
const DefaultShards = 16

type shard struct {
	mu   sync.RWMutex
	sets map[string]domain.CachedAdSet
}

// Store maps unit ids to their cached ad set. Sets are stored and returned by
// value and replaced as a whole.
type Store struct {
	shards []*shard
}

// NewStore returns a store with n shards, rounded up to a power of two.
func NewStore(n int) *Store {
	if n <= 0 {
		n = DefaultShards
	}
	size := 1
	for size < n {
		size <<= 1
	}
	s := &Store{shards: make([]*shard, size)}
	for i := range s.shards {
		s.shards[i] = &shard{sets: make(map[string]domain.CachedAdSet)}
	}
	return s
}

func (s *Store) shardFor(unitID string) *shard {
	return s.shards[xxhash.Sum64String(unitID)&uint64(len(s.shards)-1)]
}

// Get returns the set cached for unitID regardless of freshness.
func (s *Store) Get(unitID string) (domain.CachedAdSet, bool) {
	sh := s.shardFor(unitID)
	sh.mu.RLock()
	set, ok := sh.sets[unitID]
	sh.mu.RUnlock()
	return set, ok
}

// Put replaces the set cached for the set's unit.
func (s *Store) Put(set domain.CachedAdSet) {
	ads := make([]domain.AdRecord, len(set.Ads))
	copy(ads, set.Ads)
	set.Ads = ads
	set.HasMore = false

	sh := s.shardFor(set.UnitID)
	sh.mu.Lock()
	sh.sets[set.UnitID] = set
	sh.mu.Unlock()
}

// Delete removes the set cached for unitID.
func (s *Store) Delete(unitID string) {
	sh := s.shardFor(unitID)
	sh.mu.Lock()
	delete(sh.sets, unitID)
	sh.mu.Unlock()
}

// Clear removes every cached set.
func (s *Store) Clear() {
	for _, sh := range s.shards {
		sh.mu.Lock()
		clear(sh.sets)
		sh.mu.Unlock()
	}
}

// Len returns the number of cached units.
func (s *Store) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.sets)
		sh.mu.RUnlock()
	}
	return n
}
