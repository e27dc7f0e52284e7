// Package seed loads the bundled demo listings.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"realty_listings/internal/domain"
)

//go:embed properties.json
var dataset []byte

type Creator interface {
	Create(ctx context.Context, body map[string]any) (domain.Property, error)
}

// Load decodes the embedded dataset. Records keep the loose shape a create request has.
func Load() ([]map[string]any, error) {
	var out []map[string]any
	if err := json.Unmarshal(dataset, &out); err != nil {
		return nil, fmt.Errorf("decode seed dataset: %w", err)
	}
	return out, nil
}

// Run creates every record through c with at most workers in flight. A failed record is
// logged and skipped; Run returns how many were created.
func Run(ctx context.Context, c Creator, records []map[string]any, workers int) (int, error) {
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg      sync.WaitGroup
		created atomic.Int64
	)

	for i, rec := range records {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return int(created.Load()), fmt.Errorf("seed interrupted: %w", err)
		}

		wg.Add(1)
		go func(i int, rec map[string]any) {
			defer wg.Done()
			defer sem.Release(1)

			p, err := c.Create(ctx, rec)
			if err != nil {
				log.Warn().Int("index", i).Err(err).Msg("seed record failed")
				return
			}
			created.Add(1)
			log.Debug().Str("id", p.ID).Str("title", p.Title).Msg("seed record ok")
		}(i, rec)
	}

	wg.Wait()
	return int(created.Load()), nil
}
