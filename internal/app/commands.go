package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"realty_listings/internal/domain"
)

type PropertyService struct {
	repo  domain.PropertyRepository
	cache domain.Cache
	now   func() time.Time
}

// NewPropertyService wires the write path. c may be nil.
func NewPropertyService(r domain.PropertyRepository, c domain.Cache) *PropertyService {
	return &PropertyService{repo: r, cache: c, now: time.Now}
}

// Create stores a new property from a loosely-typed body.
func (s *PropertyService) Create(ctx context.Context, body map[string]any) (domain.Property, error) {
	p := domain.Property{
		ID:        uuid.NewString(),
		Images:    []string{},
		Amenities: []string{},
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	mapPropertyInput(body).Apply(&p)

	if err := s.repo.Insert(ctx, p); err != nil {
		return domain.Property{}, fmt.Errorf("insert property: %w", err)
	}
	s.invalidate(ctx, p.ID)
	return p, nil
}

// Update replaces the supplied fields of an existing property.
func (s *PropertyService) Update(ctx context.Context, id string, body map[string]any) (domain.Property, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	mapPropertyInput(body).Apply(&p)

	if err := s.repo.Replace(ctx, p); err != nil {
		return domain.Property{}, fmt.Errorf("replace property %s: %w", id, err)
	}
	s.invalidate(ctx, id)
	return p, nil
}

// invalidate drops the single-record entry and retires every cached listing.
func (s *PropertyService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Incr(ctx, listVersionKey); err != nil {
		log.Warn().Err(err).Msg("listing cache version bump failed")
	}
	if err := s.cache.Del(ctx, propertyKey(id)); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("property cache eviction failed")
	}
}
