package ndr

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/cache"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"
)

// Fetcher is the seller API surface this service needs.
type Fetcher interface {
	GetJSON(ctx context.Context, path string, out any) error
}

type Service struct {
	api      Fetcher
	cache    cache.BytesCache
	cacheTTL time.Duration
}

func New(api Fetcher, c cache.BytesCache, cacheTTL time.Duration) *Service {
	return &Service{api: api, cache: c, cacheTTL: cacheTTL}
}

// GetNDR fetches one report and reshapes it into the flat view model the
// dashboard renders. The cache is best effort: any cache failure falls
// through to the upstream fetch.
func (s *Service) GetNDR(ctx context.Context, id string) (*models.NDR, error) {
	if id == "" {
		return nil, errors.New("ndr id is required")
	}

	if s.cache != nil && s.cacheTTL > 0 {
		b, ok, err := s.cache.Get(ctx, ndrKey(id))
		if err == nil && ok {
			var n models.NDR
			if json.Unmarshal(b, &n) == nil {
				return &n, nil
			}
		}
	}

	var p ndrPayload
	if err := s.api.GetJSON(ctx, "/api/v2/seller/ndr/"+id, &p); err != nil {
		return nil, err
	}

	n := transform(p)

	if s.cache != nil && s.cacheTTL > 0 {
		b, _ := json.Marshal(n)
		_ = s.cache.Set(ctx, ndrKey(id), b, s.cacheTTL)
	}
	return &n, nil
}

// Invalidate drops the cached view model, used when the backend reports the
// record changed.
func (s *Service) Invalidate(ctx context.Context, id string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, ndrKey(id))
}

func ndrKey(id string) string {
	return fmt.Sprintf("ndr:%s:view", id)
}
