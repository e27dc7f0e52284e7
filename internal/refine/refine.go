// Package refine is the client side of a listing search: it turns UI filter state into
// request parameters and re-filters and sorts whatever the API returned.
package refine

import (
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"realty_listings/internal/filter"
)

// Item is one decoded listing as returned by the API.
type Item = map[string]any

const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortLatest    = "latest"
)

// minLocationLen keeps a single keystroke from wiping out the grid.
const minLocationLen = 2

// locationFields are matched by the location refinement.
var locationFields = []string{"location", "city", "stateName", "country"}

// Filters is the whole filter state of a listing grid. Numeric inputs stay as typed so they
// go through the same normalization as on the server.
type Filters struct {
	Deal         string `json:"deal,omitempty"` // sale or rent; refined locally only
	PropertyType string `json:"type,omitempty"`
	Location     string `json:"location,omitempty"`
	Category     string `json:"category_type,omitempty"`
	Country      string `json:"country,omitempty"`
	StateName    string `json:"stateName,omitempty"`
	City         string `json:"city,omitempty"`
	Bedrooms     string `json:"bedrooms,omitempty"`
	MinPrice     string `json:"minPrice,omitempty"`
	MaxPrice     string `json:"maxPrice,omitempty"`
	PriceRange   string `json:"pricerange,omitempty"`
	MinSquare    string `json:"minSquare,omitempty"`
	MaxSquare    string `json:"maxSquare,omitempty"`
	HasVideo     bool   `json:"hasVideo,omitempty"`
	Sort         string `json:"sort,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

// Params renders the request parameters for f in canonical form.
func (f Filters) Params() url.Values {
	raw := url.Values{}
	set := func(k, v string) {
		if strings.TrimSpace(v) != "" {
			raw.Set(k, v)
		}
	}
	set("type", f.PropertyType)
	set("location", f.Location)
	set("category_type", f.Category)
	set("country", f.Country)
	set("stateName", f.StateName)
	set("city", f.City)
	set("bedrooms", f.Bedrooms)
	set("minPrice", f.MinPrice)
	set("maxPrice", f.MaxPrice)
	set("pricerange", f.PriceRange)
	set("minSquare", f.MinSquare)
	set("maxSquare", f.MaxSquare)
	if f.HasVideo {
		raw.Set("hasVideo", "1")
	}
	if f.Limit > 0 {
		raw.Set("limit", strconv.Itoa(f.Limit))
	}
	return filter.Encode(filter.Parse(raw))
}

// Apply re-filters and sorts items for f. It returns a new slice; items is not modified.
func Apply(items []Item, f Filters) []Item {
	loc := strings.ToLower(strings.TrimSpace(f.Location))
	if utf8.RuneCountInString(loc) < minLocationLen {
		loc = ""
	}
	want := ParseDeal(f.Deal)

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if loc != "" && !matchesLocation(it, loc) {
			continue
		}
		// only drop what is positively the other kind of deal
		if want != DealUnknown {
			if got := Classify(it); got != DealUnknown && got != want {
				continue
			}
		}
		out = append(out, it)
	}
	sortItems(out, f.Sort)
	return out
}

func matchesLocation(it Item, needle string) bool {
	for _, k := range locationFields {
		if strings.Contains(strings.ToLower(lookupStr(it, k)), needle) {
			return true
		}
	}
	return false
}

func sortItems(items []Item, mode string) {
	switch mode {
	case SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			return priceOr(items[i], math.Inf(1)) < priceOr(items[j], math.Inf(1))
		})
	case SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return priceOr(items[i], math.Inf(-1)) > priceOr(items[j], math.Inf(-1))
		})
	case SortLatest:
		sort.SliceStable(items, func(i, j int) bool {
			ti, iok := lookupTime(items[i], "createdAt")
			tj, jok := lookupTime(items[j], "createdAt")
			if iok != jok {
				return iok
			}
			return ti.After(tj)
		})
	}
}

func priceOr(it Item, missing float64) float64 {
	if p, ok := lookupFloat(it, "price"); ok {
		return p
	}
	return missing
}
