package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"realty_listings/internal/app"
	"realty_listings/internal/domain"
)

func TestListProperties_CacheMissThenHit(t *testing.T) {
	repo := newFakeRepo(domain.Property{ID: "a", Title: "Villa", Price: 100})
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)
	ctx := context.Background()
	c := domain.Criteria{City: "Tirupati", Limit: 10}

	out, err := q.ListProperties(ctx, c)
	if err != nil || len(out) != 1 || out[0].Title != "Villa" {
		t.Fatalf("unexpected: %+v %v", out, err)
	}

	// mutate the store behind the cache; the second read must not hit the repo
	repo.props["a"] = domain.Property{ID: "a", Title: "SHOULD NOT SEE THIS"}
	out, err = q.ListProperties(ctx, c)
	if err != nil || out[0].Title != "Villa" {
		t.Fatalf("expected cached title, got %+v %v", out, err)
	}
	if repo.finds != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.finds)
	}
}

func TestListProperties_WriteInvalidatesListings(t *testing.T) {
	repo := newFakeRepo(domain.Property{ID: "a", Title: "Villa"})
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, time.Minute)
	cmd := app.NewPropertyService(repo, cache)
	ctx := context.Background()
	c := domain.Criteria{Limit: 50}

	if _, err := q.ListProperties(ctx, c); err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.Update(ctx, "a", map[string]any{"title": "Renamed"}); err != nil {
		t.Fatal(err)
	}
	out, err := q.ListProperties(ctx, c)
	if err != nil {
		t.Fatal(err)
	}
	if repo.finds != 2 || len(out) != 1 || out[0].Title != "Renamed" {
		t.Fatalf("expected fresh read after write, finds=%d out=%+v", repo.finds, out)
	}
}

func TestListProperties_ClampsLimitAndBuildsQuery(t *testing.T) {
	repo := newFakeRepo()
	q := app.NewQueryService(repo, nil, 0)

	out, err := q.ListProperties(context.Background(), domain.Criteria{Limit: 500, MaxPrice: ptr(20000.0)})
	if err != nil {
		t.Fatal(err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
	if repo.lastLimit != 100 {
		t.Fatalf("limit = %d, want 100", repo.lastLimit)
	}
	if c, ok := repo.lastQuery.Condition(domain.FieldPrice); !ok || c.Max == nil || *c.Max != 20000 {
		t.Fatalf("price condition not forwarded: %+v", repo.lastQuery)
	}

	if _, err := q.ListProperties(context.Background(), domain.Criteria{}); err != nil {
		t.Fatal(err)
	}
	if repo.lastLimit != 50 {
		t.Fatalf("zero limit should default to 50, got %d", repo.lastLimit)
	}
}

func TestListProperties_StorageFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.findErr = errors.New("connection refused")
	q := app.NewQueryService(repo, &fakeCache{}, time.Minute)

	_, err := q.ListProperties(context.Background(), domain.Criteria{})
	if !errors.Is(err, repo.findErr) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
	if err.Error() != "query properties: connection refused" {
		t.Fatalf("error = %q", err.Error())
	}
}

func TestGetProperty_NotFound(t *testing.T) {
	q := app.NewQueryService(newFakeRepo(), &fakeCache{}, time.Minute)
	if _, err := q.GetProperty(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetProperty_Cached(t *testing.T) {
	repo := newFakeRepo(domain.Property{ID: "x", Title: "Plot"})
	q := app.NewQueryService(repo, &fakeCache{}, time.Minute)
	ctx := context.Background()

	if p, err := q.GetProperty(ctx, "x"); err != nil || p.Title != "Plot" {
		t.Fatalf("unexpected %+v %v", p, err)
	}
	delete(repo.props, "x")
	if p, err := q.GetProperty(ctx, "x"); err != nil || p.Title != "Plot" {
		t.Fatalf("expected cached record, got %+v %v", p, err)
	}
}
