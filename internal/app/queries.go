package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"realty_listings/internal/domain"
	"realty_listings/internal/filter"
)

// listVersionKey is bumped on every write; listing keys embed it, so a write makes every
// cached listing unreachable without enumerating keys.
const listVersionKey = "properties:version"

func propertyKey(id string) string { return "property:" + id }

func listKey(version int64, c domain.Criteria) string {
	sum := sha1.Sum([]byte(filter.Encode(c).Encode()))
	return fmt.Sprintf("properties:v%d:%s", version, hex.EncodeToString(sum[:]))
}

type QueryService struct {
	repo     domain.PropertyRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewQueryService wires the read path. c may be nil to disable caching.
func NewQueryService(r domain.PropertyRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// ListProperties runs the filter pipeline for c. An empty result is a success.
func (s *QueryService) ListProperties(ctx context.Context, c domain.Criteria) ([]domain.Property, error) {
	limit := c.Limit
	if limit <= 0 {
		limit = filter.DefaultLimit
	}
	if limit > filter.MaxLimit {
		limit = filter.MaxLimit
	}
	c.Limit = limit
	q := filter.Build(c)

	var key string
	if s.cache != nil {
		key = listKey(s.listVersion(ctx), c)
		var out []domain.Property
		if ok, err := s.cache.Get(ctx, key, &out); ok && err == nil {
			return out, nil
		} else if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("listing cache read failed")
		}
	}

	props, err := s.repo.Find(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query properties: %w", err)
	}
	if props == nil {
		props = []domain.Property{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, props, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("listing cache write failed")
		}
	}
	return props, nil
}

func (s *QueryService) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	key := propertyKey(id)
	var p domain.Property
	if s.cache != nil {
		if ok, err := s.cache.Get(ctx, key, &p); ok && err == nil {
			return p, nil
		} else if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("property cache read failed")
		}
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, p, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("property cache write failed")
		}
	}
	return p, nil
}

func (s *QueryService) listVersion(ctx context.Context) int64 {
	var v int64
	if _, err := s.cache.Get(ctx, listVersionKey, &v); err != nil {
		log.Warn().Err(err).Msg("listing cache version read failed")
	}
	return v
}
