// Package querybuilder renders the small set of postgres statements the
// repositories need, numbering $n placeholders in the order values are bound.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// writer accumulates SQL text and its bound arguments.
type writer struct {
	sql  strings.Builder
	args []any
}

func (w *writer) write(parts ...string) {
	for _, p := range parts {
		w.sql.WriteString(p)
	}
}

func (w *writer) bind(value any) {
	w.args = append(w.args, value)
	w.sql.WriteString("$")
	w.sql.WriteString(strconv.Itoa(len(w.args)))
}

func (w *writer) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.write(" WHERE ")
		} else {
			w.write(" AND ")
		}
		c.render(w)
	}
}

func (w *writer) result() (string, []any, error) {
	return w.sql.String(), w.args, nil
}

type Condition interface {
	render(w *writer)
}

type comparison struct {
	column string
	op     string
	value  any
}

func (c comparison) render(w *writer) {
	w.write(c.column, " ", c.op, " ")
	w.bind(c.value)
}

func Eq(column string, value any) Condition {
	return comparison{column: column, op: "=", value: value}
}

func Neq(column string, value any) Condition {
	return comparison{column: column, op: "<>", value: value}
}

type membership struct {
	column string
	values []any
}

// In matches any of values; an empty set matches nothing.
func In(column string, values []any) Condition {
	return membership{column: column, values: values}
}

func (c membership) render(w *writer) {
	if len(c.values) == 0 {
		w.write("FALSE")
		return
	}
	w.write(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.write(", ")
		}
		w.bind(v)
	}
	w.write(")")
}

type expression struct {
	text string
	args []any
}

// Expr embeds raw SQL, binding each ? to the next arg.
func Expr(text string, args ...any) Condition {
	return expression{text: text, args: args}
}

func (e expression) render(w *writer) {
	next := 0
	for i := 0; i < len(e.text); i++ {
		if e.text[i] == '?' && next < len(e.args) {
			w.bind(e.args[next])
			next++
			continue
		}
		w.sql.WriteByte(e.text[i])
	}
}

type group struct {
	conditions []Condition
}

// Or matches when any of conditions holds; an empty group matches nothing.
func Or(conditions ...Condition) Condition {
	return group{conditions: conditions}
}

func (g group) render(w *writer) {
	if len(g.conditions) == 0 {
		w.write("FALSE")
		return
	}
	w.write("(")
	for i, c := range g.conditions {
		if i > 0 {
			w.write(" OR ")
		}
		c.render(w)
	}
	w.write(")")
}

type SelectBuilder struct {
	columns []string
	table   string
	filters []Condition
	order   []string
	limit   int
	lock    bool
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.filters = append(b.filters, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(columns ...string) *SelectBuilder {
	b.order = append(b.order, columns...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

// ForUpdate locks the selected rows until the surrounding transaction ends.
func (b *SelectBuilder) ForUpdate() *SelectBuilder {
	b.lock = true
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var w writer
	w.write("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	w.where(b.filters)
	if len(b.order) > 0 {
		w.write(" ORDER BY ", strings.Join(b.order, ", "))
	}
	if b.limit > 0 {
		w.write(" LIMIT ", strconv.Itoa(b.limit))
	}
	if b.lock {
		w.write(" FOR UPDATE")
	}
	return w.result()
}

type InsertBuilder struct {
	table   string
	columns []string
	values  []any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.values = append([]any(nil), values...)
	return b
}

// Suffix appends a trailing clause such as ON CONFLICT or RETURNING.
func (b *InsertBuilder) Suffix(clause string) *InsertBuilder {
	b.suffix = strings.TrimSpace(clause)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.values) != len(b.columns) {
		return "", nil, fmt.Errorf("insert has %d values for %d columns", len(b.values), len(b.columns))
	}

	var w writer
	w.write("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES (")
	for i, v := range b.values {
		if i > 0 {
			w.write(", ")
		}
		w.bind(v)
	}
	w.write(")")
	if b.suffix != "" {
		w.write(" ", b.suffix)
	}
	return w.result()
}

type assignment struct {
	column string
	value  any
	raw    string
}

type UpdateBuilder struct {
	table   string
	sets    []assignment
	filters []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

// SetExpr assigns a raw SQL expression, e.g. NOW() or a column sum.
func (b *UpdateBuilder) SetExpr(column, expr string) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, raw: expr})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.filters = append(b.filters, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	var w writer
	w.write("UPDATE ", b.table, " SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.write(", ")
		}
		w.write(s.column, " = ")
		if s.raw != "" {
			w.write(s.raw)
			continue
		}
		w.bind(s.value)
	}
	w.where(b.filters)
	return w.result()
}

type DeleteBuilder struct {
	table   string
	filters []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.filters = append(b.filters, conditions...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.filters) == 0 {
		return "", nil, fmt.Errorf("delete without where is not allowed")
	}

	var w writer
	w.write("DELETE FROM ", b.table)
	w.where(b.filters)
	return w.result()
}
