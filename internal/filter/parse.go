// Package filter turns loosely-typed listing query parameters into domain.Criteria and
// domain.Criteria into a storage query. Nothing in here returns an error: malformed input
// degrades to "no constraint".
package filter

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"realty_listings/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Parse resolves raw query parameters into Criteria.
func Parse(v url.Values) domain.Criteria {
	c := domain.Criteria{
		Type:      strings.TrimSpace(v.Get("type")),
		Location:  strings.TrimSpace(v.Get("location")),
		Country:   strings.TrimSpace(v.Get("country")),
		StateName: strings.TrimSpace(v.Get("stateName")),
		City:      strings.TrimSpace(v.Get("city")),
		Bedrooms:  Number(v.Get("bedrooms")),
		Price:     Number(v.Get("price")),
		MinPrice:  Number(v.Get("minPrice")),
		MaxPrice:  Number(v.Get("maxPrice")),
		Square:    Number(v.Get("square")),
		MinSquare: Number(v.Get("minSquare")),
		MaxSquare: Number(v.Get("maxSquare")),
		HasVideo:  v.Get("hasVideo") == "1",
		Limit:     Limit(v.Get("limit")),
	}

	// category_type wins over its legacy alias
	if s := strings.TrimSpace(v.Get("category_type")); s != "" {
		c.Category = s
	} else {
		c.Category = strings.TrimSpace(v.Get("category"))
	}

	if blank(v.Get("minPrice")) && blank(v.Get("maxPrice")) {
		c.MinPrice, c.MaxPrice = Range(v.Get("pricerange"))
	}
	return c
}

// Number parses a numeric filter value, ignoring thousands separators. Blank, unparseable
// and non-finite input yield nil.
func Number(raw string) *float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Range parses "<min>-<max>" shorthand; either side may be missing.
func Range(raw string) (lo, hi *float64) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if s == "" {
		return nil, nil
	}
	left, right, found := strings.Cut(s, "-")
	lo = Number(left)
	if found {
		hi = Number(right)
	}
	return lo, hi
}

// Limit resolves the result cap: default 50, never above 100.
func Limit(raw string) int {
	n := Number(raw)
	if n == nil || *n < 1 {
		return DefaultLimit
	}
	if *n > MaxLimit {
		return MaxLimit
	}
	return int(*n)
}

// Encode is the canonical inverse of Parse: only resolved fields are emitted, numbers without
// separators, category under its canonical name.
func Encode(c domain.Criteria) url.Values {
	v := url.Values{}
	setStr := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	setNum := func(k string, f *float64) {
		if f != nil {
			v.Set(k, strconv.FormatFloat(*f, 'f', -1, 64))
		}
	}
	setStr("type", c.Type)
	setStr("location", c.Location)
	setStr("category_type", c.Category)
	setStr("country", c.Country)
	setStr("stateName", c.StateName)
	setStr("city", c.City)
	setNum("bedrooms", c.Bedrooms)
	setNum("price", c.Price)
	setNum("minPrice", c.MinPrice)
	setNum("maxPrice", c.MaxPrice)
	setNum("square", c.Square)
	setNum("minSquare", c.MinSquare)
	setNum("maxSquare", c.MaxSquare)
	if c.HasVideo {
		v.Set("hasVideo", "1")
	}
	if c.Limit > 0 {
		v.Set("limit", strconv.Itoa(c.Limit))
	}
	return v
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
