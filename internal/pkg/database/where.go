package database

import "strings"

// Where accumulates optional filter clauses for a statement. Clauses are
// joined with AND in the order they were added.
type Where struct {
	clauses []string
	params  []interface{}
}

func (w *Where) Add(clause string, params ...interface{}) *Where {
	w.clauses = append(w.clauses, clause)
	w.params = append(w.params, params...)
	return w
}

// Eq adds "column = ?" unless value is empty.
func (w *Where) Eq(column, value string) *Where {
	if value == "" {
		return w
	}
	return w.Add(column+" = ?", value)
}

// Search adds a case-insensitive substring match over columns.
func (w *Where) Search(term string, columns ...string) *Where {
	if term == "" || len(columns) == 0 {
		return w
	}
	pattern := "%" + term + "%"
	parts := make([]string, len(columns))
	params := make([]interface{}, len(columns))
	for i, c := range columns {
		parts[i] = "LOWER(" + c + ") LIKE LOWER(?)"
		params[i] = pattern
	}
	return w.Add("("+strings.Join(parts, " OR ")+")", params...)
}

func (w *Where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func (w *Where) Params() []interface{} {
	return append([]interface{}(nil), w.params...)
}

// Paginate appends LIMIT/OFFSET to query when limit is positive.
func Paginate(query string, params []interface{}, limit, offset int) (string, []interface{}) {
	if limit <= 0 {
		return query, params
	}
	return query + " LIMIT ? OFFSET ?", append(params, limit, offset)
}
