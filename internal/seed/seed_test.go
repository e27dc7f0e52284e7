package seed_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"realty_listings/internal/domain"
	"realty_listings/internal/seed"
)

type recordingCreator struct {
	mu     sync.Mutex
	titles []string
	failOn string
}

func (r *recordingCreator) Create(ctx context.Context, body map[string]any) (domain.Property, error) {
	title, _ := body["title"].(string)
	if title == r.failOn {
		return domain.Property{}, errors.New("insert failed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles = append(r.titles, title)
	return domain.Property{ID: title, Title: title}, nil
}

func TestLoad_ContainsKapilaListing(t *testing.T) {
	recs, err := seed.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, r := range recs {
		if r["title"] == "2BHK For Rent near Kapila Teertham" {
			if r["price"] != 18000.0 || r["category_type"] != "Rent" || r["city"] != "Tirupati" {
				t.Fatalf("unexpected record: %v", r)
			}
			return
		}
	}
	t.Fatal("Kapila Teertham listing missing from dataset")
}

func TestRun_CreatesAllAndSkipsFailures(t *testing.T) {
	recs, err := seed.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c := &recordingCreator{failOn: "Office Space in Anna Nagar"}

	n, err := seed.Run(context.Background(), c, recs, 3)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != len(recs)-1 || len(c.titles) != n {
		t.Fatalf("created %d of %d (recorded %d)", n, len(recs), len(c.titles))
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs := []map[string]any{{"title": "a"}, {"title": "b"}}
	if _, err := seed.Run(ctx, &recordingCreator{}, recs, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
