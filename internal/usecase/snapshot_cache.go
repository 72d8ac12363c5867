package usecase

import (
	"context"
	"time"

	"skill-matrix/internal/domain/matrix"
)

const snapshotCacheKey = "matrix:snapshot"

// JSONCache is the slice of the redis wrapper the snapshot cache needs.
type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SnapshotCache holds the full department snapshot under a single key and is
// invalidated on every successful mutation. A nil receiver or nil cache is a
// pass-through.
type SnapshotCache struct {
	cache JSONCache
	ttl   time.Duration
}

func NewSnapshotCache(cache JSONCache, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{cache: cache, ttl: ttl}
}

func (s *SnapshotCache) Get(ctx context.Context) ([]matrix.Department, bool) {
	if s == nil || s.cache == nil {
		return nil, false
	}
	var depts []matrix.Department
	ok, err := s.cache.GetJSON(ctx, snapshotCacheKey, &depts)
	if err != nil || !ok {
		return nil, false
	}
	return depts, true
}

func (s *SnapshotCache) Set(ctx context.Context, depts []matrix.Department) {
	if s == nil || s.cache == nil {
		return
	}
	_ = s.cache.SetJSON(ctx, snapshotCacheKey, depts, s.ttl)
}

func (s *SnapshotCache) Invalidate(ctx context.Context) {
	if s == nil || s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, snapshotCacheKey)
}
