package sqlstore

import (
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// unicodeLower is registered on every modernc connection; SQLite's built-in LOWER only folds
// ASCII, so "ÉVORA" would never match "évora".
const unicodeLower = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(unicodeLower, 1,
		func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			switch v := args[0].(type) {
			case string:
				return strings.ToLower(v), nil
			case []byte:
				return strings.ToLower(string(v)), nil
			default:
				return v, nil
			}
		})
}

// lowerFunc returns the Unicode-aware lower-casing function of the backend. MySQL's LOWER
// already folds utf8mb4 text.
func lowerFunc(backend string) string {
	if backend == "sqlite" {
		return unicodeLower
	}
	return "LOWER"
}
