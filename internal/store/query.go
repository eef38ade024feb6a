package store

import (
	"fmt"
	"strings"

	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created_at"
	orderByPrice   = "price"
	orderByTitle   = "title"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created_at DESC, id",
	orderByPrice:   "price ASC NULLS LAST, id",
	orderByTitle:   "lower(title) ASC, id",
}

const defaultOrderBy = "created_at DESC, id"

const baseItemsSelect = `SELECT id, user_id, title, price, COALESCE(currency, ''), COALESCE(url, ''),
	COALESCE(store_name, ''), COALESCE(domain, ''), created_at, updated_at
FROM items`

const countItemsSelect = "SELECT COUNT(*) FROM items"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an item query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters. Items are always scoped to UserID.
func (q *ItemQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	conditions := []string{"user_id = $1"}
	args = []any{q.UserID}
	paramIdx := 2

	if q.Domain != nil {
		conditions = append(conditions, fmt.Sprintf("domain = $%d", paramIdx))
		args = append(args, domain.NormalizeDomain(*q.Domain))
		paramIdx++
	}

	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", paramIdx))
		args = append(args, "%"+escapeLike(strings.TrimSpace(*q.Search))+"%")
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.EffectiveLimit()
	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseItemsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countItemsSelect + whereClause

	return dataSQL, countSQL, args
}

// EffectiveLimit returns Limit clamped to the allowed page size.
func (q *ItemQuery) EffectiveLimit() int {
	switch {
	case q.Limit <= 0:
		return defaultLimit
	case q.Limit > maxLimit:
		return maxLimit
	default:
		return q.Limit
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
