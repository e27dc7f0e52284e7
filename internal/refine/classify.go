package refine

import (
	"regexp"
	"strings"
)

type Deal string

const (
	DealUnknown Deal = ""
	DealSale    Deal = "sale"
	DealRent    Deal = "rent"
)

var (
	saleWords = regexp.MustCompile(`(?i)\b(sale|sell|buy)\b`)
	rentWords = regexp.MustCompile(`(?i)\b(rent|rental|lease|leased)\b`)

	saleFlags = []string{"forSale", "isForSale"}
	rentFlags = []string{"forRent", "isForRent"}

	// checked in order; the first field that classifies wins
	dealFields = []string{
		"type", "listingType", "status", "dealType", "category", "category_type",
		"offerType", "propertyType", "purpose",
	}
)

// ParseDeal maps free text ("Sale", "For Rent", "buy") to a Deal.
func ParseDeal(s string) Deal {
	switch {
	case saleWords.MatchString(s):
		return DealSale
	case rentWords.MatchString(s):
		return DealRent
	}
	return DealUnknown
}

// Classify decides whether a listing is for sale or for rent. Explicit flags win over text
// fields; a listing that says nothing recognizable is DealUnknown.
func Classify(it Item) Deal {
	for _, k := range saleFlags {
		if lookupBool(it, k) {
			return DealSale
		}
	}
	for _, k := range rentFlags {
		if lookupBool(it, k) {
			return DealRent
		}
	}
	for _, k := range dealFields {
		s := strings.TrimSpace(lookupStr(it, k))
		if s == "" {
			continue
		}
		if d := ParseDeal(s); d != DealUnknown {
			return d
		}
	}
	return DealUnknown
}
