package repository

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/nextgencars/backend/internal/domain/query"
)

// column maps a predicate field to SQL. When via is set the condition is
// evaluated inside it, which is how fields of related tables are reached.
type column struct {
	expr string
	via  string
}

type fieldMap map[string]column

// compilePredicate renders n as a WHERE fragment with ? placeholders.
func compilePredicate(n query.Node, fields fieldMap) (string, []any, error) {
	var (
		b    strings.Builder
		args []any
	)
	if err := writeNode(&b, &args, n, fields); err != nil {
		return "", nil, err
	}
	return b.String(), args, nil
}

func writeNode(b *strings.Builder, args *[]any, n query.Node, fields fieldMap) error {
	switch v := n.(type) {
	case query.And:
		return writeGroup(b, args, []query.Node(v), " AND ", "TRUE", fields)
	case query.Or:
		return writeGroup(b, args, []query.Node(v), " OR ", "FALSE", fields)
	case query.Eq:
		return writeLeaf(b, args, v.Field, fields, func(col string) (string, []any) {
			return col + " = ?", []any{plainValue(v.Value)}
		})
	case query.Range:
		return writeLeaf(b, args, v.Field, fields, func(col string) (string, []any) {
			switch {
			case v.From != nil && v.To != nil:
				return "(" + col + " >= ? AND " + col + " <= ?)", []any{*v.From, *v.To}
			case v.From != nil:
				return col + " >= ?", []any{*v.From}
			case v.To != nil:
				return col + " <= ?", []any{*v.To}
			}
			return col + " IS NOT NULL", nil
		})
	case query.ContainsFold:
		return writeLeaf(b, args, v.Field, fields, func(col string) (string, []any) {
			return col + " ILIKE ?", []any{"%" + escapeLike(v.Value) + "%"}
		})
	case nil:
		b.WriteString("TRUE")
		return nil
	}
	return fmt.Errorf("unsupported predicate node %T", n)
}

func writeGroup(b *strings.Builder, args *[]any, nodes []query.Node, sep, empty string, fields fieldMap) error {
	if len(nodes) == 0 {
		b.WriteString(empty)
		return nil
	}
	b.WriteByte('(')
	for i, child := range nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		if err := writeNode(b, args, child, fields); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}

func writeLeaf(b *strings.Builder, args *[]any, field string, fields fieldMap, render func(col string) (string, []any)) error {
	col, ok := fields[field]
	if !ok {
		return fmt.Errorf("unknown predicate field %q", field)
	}
	cond, vals := render(col.expr)
	if col.via != "" {
		cond = fmt.Sprintf(col.via, cond)
	}
	b.WriteString(cond)
	*args = append(*args, vals...)
	return nil
}

// plainValue unwraps named string and integer types (workorder.Status and
// friends) so every driver receives a primitive.
func plainValue(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	}
	return v
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user text match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
