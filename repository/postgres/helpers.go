package postgres

import (
	"fmt"
	"strings"

	"github.com/taskhive/backend/repository"
)

var taskColumns = map[string]string{
	repository.FieldID:          "id",
	repository.FieldName:        "name",
	repository.FieldDescription: "description",
	repository.FieldStatus:      "status",
	repository.FieldPriority:    "priority",
	repository.FieldProjectID:   "project_id",
	repository.FieldDueDate:     "due_date",
}

var projectColumns = map[string]string{
	repository.FieldID:          "id",
	repository.FieldName:        "name",
	repository.FieldDescription: "description",
}

// buildWhere compiles a clause list into a parameterized WHERE fragment.
// Returns an empty string when no clause survives, so zero criteria matches
// everything. Field names outside the column whitelist are dropped.
func buildWhere(clauses []repository.Clause, columns map[string]string) (string, []any) {
	var (
		conds []string
		args  []any
	)

	for _, cl := range clauses {
		switch cl.Op {
		case repository.OpEqual:
			col, ok := columns[cl.Fields[0]]
			if !ok {
				continue
			}
			args = append(args, cl.Value)
			conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))

		case repository.OpContains:
			col, ok := columns[cl.Fields[0]]
			if !ok {
				continue
			}
			args = append(args, "%"+fmt.Sprint(cl.Value)+"%")
			conds = append(conds, fmt.Sprintf("%s ILIKE $%d", col, len(args)))

		case repository.OpContainsAny:
			args = append(args, "%"+fmt.Sprint(cl.Value)+"%")
			n := len(args)
			var parts []string
			for _, field := range cl.Fields {
				col, ok := columns[field]
				if !ok {
					continue
				}
				parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, n))
			}
			if len(parts) == 0 {
				args = args[:n-1]
				continue
			}
			conds = append(conds, "("+strings.Join(parts, " OR ")+")")

		case repository.OpOnOrAfter:
			col, ok := columns[cl.Fields[0]]
			if !ok {
				continue
			}
			args = append(args, cl.Value)
			conds = append(conds, fmt.Sprintf("%s >= $%d", col, len(args)))

		case repository.OpOnOrBefore:
			col, ok := columns[cl.Fields[0]]
			if !ok {
				continue
			}
			args = append(args, cl.Value)
			conds = append(conds, fmt.Sprintf("%s <= $%d", col, len(args)))
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderBy translates a normalized page request into an ORDER BY fragment.
// Unknown sort fields fall back to id ascending.
func orderBy(page repository.PageRequest, columns map[string]string) string {
	col, ok := columns[page.SortField]
	if !ok {
		return " ORDER BY id ASC"
	}
	dir := "ASC"
	if page.SortDir == repository.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}
