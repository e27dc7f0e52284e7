//go:build integration

package mongostore_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"realty_listings/internal/domain"
	"realty_listings/internal/filter"
	"realty_listings/internal/storage/mongostore"
)

func TestRepo_Mongo_InsertFindReplace(t *testing.T) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{Repository: "mongo", Tag: "7.0"},
		func(hc *docker.HostConfig) {
			hc.AutoRemove = true
			hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
		})
	if err != nil {
		t.Fatalf("run mongo: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	uri := fmt.Sprintf("mongodb://127.0.0.1:%s", resource.GetPort("27017/tcp"))
	ctx := context.Background()

	var repo *mongostore.Repo
	if err := pool.Retry(func() error {
		var e error
		repo, e = mongostore.Open(ctx, uri, "realty_test")
		return e
	}); err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	props := []domain.Property{
		{ID: "kapila", Title: "2BHK For Rent near Kapila Teertham", City: "Tirupati", Price: 18000,
			CategoryType: "Rent", PropertyType: "Apartment", CreatedAt: time.Now()},
		{ID: "villa", Title: "Villa", City: "Chennai", Price: 500000, CategoryType: "Sale",
			VideoURL: "https://example.com/v.mp4", CreatedAt: time.Now()},
		{ID: "odd", Title: "Odd", Location: "a.b (c)", City: "Tirupati", Price: 15000,
			CategoryType: "Rental", VideoURL: "  ", CreatedAt: time.Now()},
	}
	for _, p := range props {
		if err := repo.Insert(ctx, p); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	run := func(v url.Values) []domain.Property {
		c := filter.Parse(v)
		out, err := repo.Find(ctx, filter.Build(c), c.Limit)
		if err != nil {
			t.Fatalf("find %v: %v", v, err)
		}
		return out
	}

	got := run(url.Values{"category_type": {"Rent"}, "minPrice": {"10000"}, "maxPrice": {"20000"}, "city": {"Tirupati"}})
	if len(got) != 2 {
		t.Fatalf("expected kapila and odd (Rental contains rent), got %+v", got)
	}
	if got := run(url.Values{"hasVideo": {"1"}}); len(got) != 1 || got[0].ID != "villa" {
		t.Fatalf("hasVideo: %+v", got)
	}
	if got := run(url.Values{"location": {"a.b (c"}}); len(got) != 1 || got[0].ID != "odd" {
		t.Fatalf("literal location: %+v", got)
	}
	if got := run(url.Values{"location": {"a.*"}}); len(got) != 0 {
		t.Fatalf("regex metacharacters must be literal: %+v", got)
	}

	p, err := repo.Get(ctx, "villa")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	p.Price = 450000
	if err := repo.Replace(ctx, p); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := repo.Replace(ctx, domain.Property{ID: "ghost"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Get(ctx, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
