package sqlconfig

import (
	"fmt"
	"strings"
)

// updateSet is one column assignment in a partial update. Column names come
// from fixed per-table allow-lists, never from request input; only values are
// bound as parameters.
type updateSet struct {
	column string
	value  interface{}
}

// buildUpdate renders "UPDATE <table> SET col = $n, ... WHERE id = $n
// RETURNING <returning>" with positional parameters for every set value
// followed by the id.
func buildUpdate(table string, sets []updateSet, id int64, returning string) (string, []interface{}, error) {
	if len(sets) == 0 {
		return "", nil, ErrNoFields
	}

	assignments := make([]string, len(sets))
	args := make([]interface{}, 0, len(sets)+1)
	for i, set := range sets {
		args = append(args, set.value)
		assignments[i] = fmt.Sprintf("%s = $%d", set.column, len(args))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(assignments, ", "), len(args), returning)

	return query, args, nil
}
