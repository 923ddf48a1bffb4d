package catalog

import (
	"context"
	"time"

	"github.com/shouni/go-material-kit/pkg/domain"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// CachedSource は内側の Source をTTL付きキャッシュで包むデコレーターです。
// 照合結果の正しさはキャッシュに依存しません（純粋な性能最適化です）。
// 同じ大分類への同時フェッチは singleflight で1回にまとめるのだ。
type CachedSource struct {
	inner Source
	cache *cache.Cache
	group singleflight.Group
}

// NewCachedSource は指定TTLの CachedSource を生成します。
func NewCachedSource(inner Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		inner: inner,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Fetch はキャッシュがあればそれを、なければ内側の Source から取得して返します。
func (s *CachedSource) Fetch(ctx context.Context, categoryType string) (domain.Materials, error) {
	if cached, found := s.cache.Get(categoryType); found {
		return cached.(domain.Materials), nil
	}

	fetched, err, _ := s.group.Do(categoryType, func() (interface{}, error) {
		mats, err := s.inner.Fetch(ctx, categoryType)
		if err != nil {
			return nil, err
		}
		s.cache.Set(categoryType, mats, cache.DefaultExpiration)
		return mats, nil
	})
	if err != nil {
		return nil, err
	}
	return fetched.(domain.Materials), nil
}
