package sqlstore

import (
	"fmt"
	"strings"

	"realty_listings/internal/domain"
)

// likeEscape is accepted by both MySQL and SQLite; backslash is not portable between them.
const likeEscape = '!'

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern turns free text into a lower-cased literal LIKE pattern.
func containsPattern(s string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(s)) + "%"
}

// whereClause renders q as " WHERE ..." (or "") plus its positional args. lower names the
// SQL function that lower-cases a column the same way strings.ToLower does.
func whereClause(q domain.Query, lower string) (string, []any, error) {
	var parts []string
	var args []any
	for _, c := range q.Conditions {
		col, ok := fieldColumns[c.Field]
		if !ok {
			return "", nil, fmt.Errorf("sqlstore: unknown field %q", c.Field)
		}
		switch c.Op {
		case domain.OpContains:
			parts = append(parts, fmt.Sprintf("%s(%s) LIKE ? ESCAPE '%c'", lower, col, likeEscape))
			args = append(args, containsPattern(c.Text))
		case domain.OpEq:
			parts = append(parts, col+" = ?")
			args = append(args, c.Value)
		case domain.OpRange:
			if c.Min != nil {
				parts = append(parts, col+" >= ?")
				args = append(args, *c.Min)
			}
			if c.Max != nil {
				parts = append(parts, col+" <= ?")
				args = append(args, *c.Max)
			}
		case domain.OpNonEmpty:
			parts = append(parts, fmt.Sprintf("(%s IS NOT NULL AND TRIM(%s) <> '')", col, col))
		default:
			return "", nil, fmt.Errorf("sqlstore: unsupported op %s on %q", c.Op, c.Field)
		}
	}
	if len(parts) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(parts, " AND "), args, nil
}
