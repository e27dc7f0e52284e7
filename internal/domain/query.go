package domain

// Criteria is the normalized, request-scoped filter bag. Empty strings and nil pointers mean
// "no constraint"; Limit is always resolved.
type Criteria struct {
	Type      string
	Location  string
	Category  string
	Country   string
	StateName string
	City      string

	Bedrooms *float64

	Price    *float64
	MinPrice *float64
	MaxPrice *float64

	Square    *float64
	MinSquare *float64
	MaxSquare *float64

	HasVideo bool
	Limit    int
}

type Op int

const (
	OpContains Op = iota // case-insensitive literal substring
	OpEq
	OpRange
	OpNonEmpty
)

func (o Op) String() string {
	switch o {
	case OpContains:
		return "contains"
	case OpEq:
		return "eq"
	case OpRange:
		return "range"
	case OpNonEmpty:
		return "nonempty"
	}
	return "unknown"
}

// Field names are the document field names of Property.
const (
	FieldPropertyType = "propertyType"
	FieldLocation     = "location"
	FieldBedrooms     = "bedrooms"
	FieldPrice        = "price"
	FieldCategoryType = "category_type"
	FieldSquare       = "square"
	FieldCountry      = "country"
	FieldStateName    = "stateName"
	FieldCity         = "city"
	FieldVideoURL     = "videoUrl"
)

type Condition struct {
	Field string
	Op    Op
	Text  string   // OpContains
	Value float64  // OpEq
	Min   *float64 // OpRange, inclusive
	Max   *float64 // OpRange, inclusive
}

// Query is an AND of its conditions.
type Query struct {
	Conditions []Condition
}

func (q Query) Condition(field string) (Condition, bool) {
	for _, c := range q.Conditions {
		if c.Field == field {
			return c, true
		}
	}
	return Condition{}, false
}
