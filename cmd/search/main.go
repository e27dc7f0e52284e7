// Command search runs a listing search against the API the way the listings grid does:
// normalize the filters, fetch, refine and sort locally, then print the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"realty_listings/internal/adapters/listingsapi"
	"realty_listings/internal/adapters/observability"
	"realty_listings/internal/refine"
	"realty_listings/internal/shared"
)

func main() {
	cfg := shared.Load()
	// stdout carries the results
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel).Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var f refine.Filters
	base := flag.String("api", cfg.ListingsAPIURL, "listings API base URL")
	timeout := flag.Duration("timeout", 20*time.Second, "request timeout")
	flag.StringVar(&f.Deal, "deal", "", "sale or rent (refined locally)")
	flag.StringVar(&f.PropertyType, "type", "", "property type, e.g. Apartment")
	flag.StringVar(&f.Location, "location", "", "location text")
	flag.StringVar(&f.Category, "category", "", "category_type, e.g. Rent")
	flag.StringVar(&f.Country, "country", "", "country")
	flag.StringVar(&f.StateName, "state", "", "state name")
	flag.StringVar(&f.City, "city", "", "city")
	flag.StringVar(&f.Bedrooms, "bedrooms", "", "exact bedroom count")
	flag.StringVar(&f.MinPrice, "min-price", "", "minimum price")
	flag.StringVar(&f.MaxPrice, "max-price", "", "maximum price")
	flag.StringVar(&f.PriceRange, "price-range", "", `price range shorthand "min-max"`)
	flag.StringVar(&f.MinSquare, "min-square", "", "minimum area")
	flag.StringVar(&f.MaxSquare, "max-square", "", "maximum area")
	flag.BoolVar(&f.HasVideo, "has-video", false, "only listings with a video")
	flag.StringVar(&f.Sort, "sort", "", "price-low, price-high or latest")
	flag.IntVar(&f.Limit, "limit", 0, "maximum results (server caps at 100)")
	flag.Parse()

	client, err := listingsapi.New(*base, cfg.ListingsAPIRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize listings client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	items, err := refine.NewSearcher(client).Search(ctx, f)
	if err != nil {
		log.Fatal().Err(err).Str("params", f.Params().Encode()).Msg("search failed")
	}
	log.Debug().Int("results", len(items)).Str("params", f.Params().Encode()).Msg("search ok")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		log.Fatal().Err(err).Msg("write results failed")
	}
}
