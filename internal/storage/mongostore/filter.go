package mongostore

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"realty_listings/internal/domain"
)

var blankPattern = primitive.Regex{Pattern: `^\s*$`}

// toFilter renders q as a bson filter. Free text is quoted so user input can never act as a
// regular expression.
func toFilter(q domain.Query) (bson.M, error) {
	f := bson.M{}
	for _, c := range q.Conditions {
		switch c.Op {
		case domain.OpContains:
			f[c.Field] = primitive.Regex{Pattern: regexp.QuoteMeta(c.Text), Options: "i"}
		case domain.OpEq:
			f[c.Field] = c.Value
		case domain.OpRange:
			r := bson.M{}
			if c.Min != nil {
				r["$gte"] = *c.Min
			}
			if c.Max != nil {
				r["$lte"] = *c.Max
			}
			if len(r) > 0 {
				f[c.Field] = r
			}
		case domain.OpNonEmpty:
			f[c.Field] = bson.M{"$exists": true, "$ne": nil, "$not": blankPattern}
		default:
			return nil, fmt.Errorf("mongostore: unsupported op %s on %q", c.Op, c.Field)
		}
	}
	return f, nil
}
