package filter

import "realty_listings/internal/domain"

// Build assembles the AND-combined storage query for c. Text values are carried as literals;
// adapters are responsible for escaping them in their own pattern syntax.
func Build(c domain.Criteria) domain.Query {
	var q domain.Query
	contains := func(field, s string) {
		if s != "" {
			q.Conditions = append(q.Conditions, domain.Condition{Field: field, Op: domain.OpContains, Text: s})
		}
	}

	contains(domain.FieldPropertyType, c.Type)
	contains(domain.FieldLocation, c.Location)
	if c.Bedrooms != nil {
		q.Conditions = append(q.Conditions, domain.Condition{Field: domain.FieldBedrooms, Op: domain.OpEq, Value: *c.Bedrooms})
	}
	if cond, ok := numeric(domain.FieldPrice, c.Price, c.MinPrice, c.MaxPrice); ok {
		q.Conditions = append(q.Conditions, cond)
	}
	contains(domain.FieldCategoryType, c.Category)
	if cond, ok := numeric(domain.FieldSquare, c.Square, c.MinSquare, c.MaxSquare); ok {
		q.Conditions = append(q.Conditions, cond)
	}
	contains(domain.FieldCountry, c.Country)
	contains(domain.FieldStateName, c.StateName)
	contains(domain.FieldCity, c.City)
	if c.HasVideo {
		q.Conditions = append(q.Conditions, domain.Condition{Field: domain.FieldVideoURL, Op: domain.OpNonEmpty})
	}
	return q
}

// numeric: an exact value wins over any range; a range needs at least one bound.
func numeric(field string, exact, lo, hi *float64) (domain.Condition, bool) {
	if exact != nil {
		return domain.Condition{Field: field, Op: domain.OpEq, Value: *exact}, true
	}
	if lo == nil && hi == nil {
		return domain.Condition{}, false
	}
	return domain.Condition{Field: field, Op: domain.OpRange, Min: lo, Max: hi}, true
}
