package app

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"realty_listings/internal/domain"
)

/********** alias registry (single source of truth) **********/

// Admin forms and older clients send the same field under several names. The first alias
// carrying a usable value wins, so order matters (category_type beats category).
var propertyAliases = map[string][]string{
	"title":            {"title", "name"},
	"description":      {"description"},
	"location":         {"location", "address"},
	"country":          {"country"},
	"stateName":        {"stateName", "state_name", "state"},
	"city":             {"city"},
	"price":            {"price"},
	"bedrooms":         {"bedrooms", "beds"},
	"propertyType":     {"propertyType", "property_type"},
	"category_type":    {"category_type", "categoryType", "category"},
	"square":           {"square", "area", "sqft"},
	"rating":           {"rating"},
	"videoUrl":         {"videoUrl", "video_url", "video"},
	"brochureUrl":      {"brochureUrl", "brochure_url", "brochure"},
	"brochureFileName": {"brochureFileName", "brochure_file_name"},
	"images":           {"images", "photos"},
	"amenities":        {"amenities", "facilities"},
}

/********** tiny helpers **********/

// stringField returns the first non-blank alias value, trimmed. A key that is present but
// blank yields a pointer to "" so callers can clear a field; absent keys yield nil.
func stringField(m map[string]any, key string) *string {
	present := false
	for _, k := range propertyAliases[key] {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		present = true
		var s string
		switch t := v.(type) {
		case string:
			s = t
		case float64:
			s = strconv.FormatFloat(t, 'f', -1, 64)
		case json.Number:
			s = t.String()
		case bool:
			s = strconv.FormatBool(t)
		default:
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return &s
		}
	}
	if present {
		empty := ""
		return &empty
	}
	return nil
}

// numberField: number from several aliases (float64/int/json.Number/string like "1,200").
// Unparseable, non-finite and negative values are dropped.
func numberField(m map[string]any, key string) *float64 {
	for _, k := range propertyAliases[key] {
		var f float64
		switch v := m[k].(type) {
		case float64:
			f = v
		case int:
			f = float64(v)
		case int64:
			f = float64(v)
		case json.Number:
			x, err := v.Float64()
			if err != nil {
				continue
			}
			f = x
		case string:
			s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
			if s == "" {
				continue
			}
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				continue
			}
			f = x
		default:
			continue
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			continue
		}
		return &f
	}
	return nil
}

// sliceField accepts []any of strings or {url/src/name} objects, or a comma-separated string.
func sliceField(m map[string]any, key string) []string {
	for _, k := range propertyAliases[key] {
		switch raw := m[k].(type) {
		case []any:
			out := make([]string, 0, len(raw))
			for _, it := range raw {
				switch t := it.(type) {
				case string:
					if s := strings.TrimSpace(t); s != "" {
						out = append(out, s)
					}
				case map[string]any:
					for _, f := range []string{"url", "src", "name"} {
						if s, ok := t[f].(string); ok && strings.TrimSpace(s) != "" {
							out = append(out, strings.TrimSpace(s))
							break
						}
					}
				}
			}
			return out
		case []string:
			return append([]string{}, raw...)
		case string:
			out := []string{}
			for _, part := range strings.Split(raw, ",") {
				if s := strings.TrimSpace(part); s != "" {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return nil
}

/********** request body mapper **********/

// mapPropertyInput coerces a loosely-typed create/update body. Nothing is rejected:
// values that cannot be used are simply not part of the patch.
func mapPropertyInput(body map[string]any) domain.PropertyPatch {
	p := domain.PropertyPatch{
		Title:            stringField(body, "title"),
		Location:         stringField(body, "location"),
		Country:          stringField(body, "country"),
		StateName:        stringField(body, "stateName"),
		City:             stringField(body, "city"),
		PropertyType:     stringField(body, "propertyType"),
		CategoryType:     stringField(body, "category_type"),
		VideoURL:         stringField(body, "videoUrl"),
		BrochureURL:      stringField(body, "brochureUrl"),
		BrochureFileName: stringField(body, "brochureFileName"),
		Price:            numberField(body, "price"),
		Square:           numberField(body, "square"),
		Images:           sliceField(body, "images"),
		Amenities:        sliceField(body, "amenities"),
	}

	// description keeps its formatting
	if d, ok := body["description"].(string); ok {
		p.Description = &d
	}

	// bedrooms is an INT column; larger values would wrap negative
	if f := numberField(body, "bedrooms"); f != nil && *f <= math.MaxInt32 {
		n := int(*f)
		p.Bedrooms = &n
	}
	if f := numberField(body, "rating"); f != nil {
		r := math.Min(*f, 5)
		p.Rating = &r
	}
	return p
}
