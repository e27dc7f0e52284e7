package filter_test

import (
	"net/url"
	"testing"

	"realty_listings/internal/filter"
)

func TestNumber_ThousandsSeparators(t *testing.T) {
	a := filter.Number("1,200,000")
	b := filter.Number("1200000")
	if a == nil || b == nil || *a != *b || *a != 1200000 {
		t.Fatalf("expected 1200000 for both, got %v and %v", a, b)
	}
}

func TestParse_NonNumericFieldsAreOmitted(t *testing.T) {
	c := filter.Parse(url.Values{
		"price":     {"cheap"},
		"bedrooms":  {"two"},
		"square":    {""},
		"minSquare": {"NaN"},
		"maxSquare": {"Infinity"},
	})
	if c.Price != nil || c.Bedrooms != nil || c.Square != nil || c.MinSquare != nil || c.MaxSquare != nil {
		t.Fatalf("expected all numeric fields absent, got %+v", c)
	}
}

func TestLimit(t *testing.T) {
	cases := map[string]int{
		"":     50,
		"abc":  50,
		"0":    50,
		"-5":   50,
		"20":   20,
		"100":  100,
		"500":  100,
		"12.7": 12,
	}
	for in, want := range cases {
		if got := filter.Limit(in); got != want {
			t.Errorf("Limit(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParse_PriceRange(t *testing.T) {
	c := filter.Parse(url.Values{"pricerange": {" 300,000 - 900,000 "}})
	if c.MinPrice == nil || *c.MinPrice != 300000 || c.MaxPrice == nil || *c.MaxPrice != 900000 {
		t.Fatalf("unexpected range: %+v", c)
	}

	c = filter.Parse(url.Values{"pricerange": {"-500000"}})
	if c.MinPrice != nil || c.MaxPrice == nil || *c.MaxPrice != 500000 {
		t.Fatalf("expected only max bound, got min=%v max=%v", c.MinPrice, c.MaxPrice)
	}

	c = filter.Parse(url.Values{"pricerange": {"1000000-"}})
	if c.MaxPrice != nil || c.MinPrice == nil || *c.MinPrice != 1000000 {
		t.Fatalf("expected only min bound, got min=%v max=%v", c.MinPrice, c.MaxPrice)
	}
}

func TestParse_PriceRangeIgnoredWhenBoundsSupplied(t *testing.T) {
	c := filter.Parse(url.Values{"pricerange": {"1-2"}, "maxPrice": {"700"}})
	if c.MinPrice != nil {
		t.Fatalf("pricerange must not fill minPrice when maxPrice is given: %v", *c.MinPrice)
	}
	if c.MaxPrice == nil || *c.MaxPrice != 700 {
		t.Fatalf("unexpected maxPrice: %v", c.MaxPrice)
	}
}

func TestParse_CategoryPrecedenceAndTrim(t *testing.T) {
	c := filter.Parse(url.Values{"category_type": {"  Rent "}, "category": {"Sale"}})
	if c.Category != "Rent" {
		t.Fatalf("category_type should win, got %q", c.Category)
	}
	c = filter.Parse(url.Values{"category": {" Commercial"}})
	if c.Category != "Commercial" {
		t.Fatalf("category alias not used, got %q", c.Category)
	}
}

func TestParse_HasVideoOnlyLiteralOne(t *testing.T) {
	for in, want := range map[string]bool{"1": true, "true": false, "yes": false, "": false, "0": false} {
		if got := filter.Parse(url.Values{"hasVideo": {in}}).HasVideo; got != want {
			t.Errorf("hasVideo=%q -> %v, want %v", in, got, want)
		}
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	in := url.Values{
		"category":   {"Rent"},
		"pricerange": {"10,000-20,000"},
		"city":       {"Tirupati"},
		"hasVideo":   {"1"},
		"bedrooms":   {"junk"},
	}
	out := filter.Encode(filter.Parse(in))
	want := "category_type=Rent&city=Tirupati&hasVideo=1&limit=50&maxPrice=20000&minPrice=10000"
	if got := out.Encode(); got != want {
		t.Fatalf("Encode = %q, want %q", got, want)
	}
	// canonical form is a fixed point
	if again := filter.Encode(filter.Parse(out)).Encode(); again != want {
		t.Fatalf("second pass = %q", again)
	}
}
