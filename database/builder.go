package database

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// WhereClause represents a WHERE condition.
type WhereClause struct {
	Column   string
	Operator string
	Value    any
	IsRaw    bool
	RawSQL   string
	RawArgs  []any
}

// OrderClause represents an ORDER BY clause.
type OrderClause struct {
	Column    string
	Direction string // "ASC" or "DESC"
}

// RelationClause names a bun relation to preload, with optional modifiers
// applied to the relation subquery (ordering, column selection).
type RelationClause struct {
	Name  string
	Apply []func(*bun.SelectQuery) *bun.SelectQuery
}

// OrderDirection represents sort direction.
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// QueryBuilder provides a fluent, type-safe API for building database queries.
type QueryBuilder[T any] struct {
	db        *DB
	tableName string

	wheres    []*WhereClause
	orders    []*OrderClause
	limitVal  *int
	offsetVal *int

	// Relations to preload
	relations []*RelationClause

	// Timeout
	timeout time.Duration
}

// Query creates a new QueryBuilder instance.
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:        db,
		wheres:    []*WhereClause{},
		orders:    []*OrderClause{},
		relations: []*RelationClause{},
	}
}

// Table sets the table name explicitly.
func (q *QueryBuilder[T]) Table(name string) *QueryBuilder[T] {
	q.tableName = name
	return q
}

// Where adds a simple WHERE condition (column = value).
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "=",
		Value:    value,
	})
	return q
}

// WhereOp adds a WHERE condition with a custom operator.
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: operator,
		Value:    value,
	})
	return q
}

// WhereIn adds a WHERE IN condition.
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		IsRaw:   true,
		RawSQL:  column + " IN (?)",
		RawArgs: []any{bun.In(values)},
	})
	return q
}

// WhereNull adds a WHERE IS NULL condition.
func (q *QueryBuilder[T]) WhereNull(column string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IS NULL",
	})
	return q
}

// WhereNotNull adds a WHERE IS NOT NULL condition.
func (q *QueryBuilder[T]) WhereNotNull(column string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IS NOT NULL",
	})
	return q
}

// WhereRaw adds a raw WHERE condition.
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		IsRaw:   true,
		RawSQL:  sql,
		RawArgs: args,
	})
	return q
}

// OrderBy adds an ORDER BY clause.
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &OrderClause{
		Column:    column,
		Direction: string(direction),
	})
	return q
}

// Limit sets the LIMIT clause.
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause.
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// Relation specifies a bun relation to preload. Optional apply funcs modify
// the relation subquery, e.g. to order a has-many relation.
func (q *QueryBuilder[T]) Relation(relation string, apply ...func(*bun.SelectQuery) *bun.SelectQuery) *QueryBuilder[T] {
	q.relations = append(q.relations, &RelationClause{Name: relation, Apply: apply})
	return q
}

// Timeout sets a timeout for the query.
func (q *QueryBuilder[T]) Timeout(duration time.Duration) *QueryBuilder[T] {
	q.timeout = duration
	return q
}

// buildSelect assembles a bun SelectQuery over the given model destination.
func (q *QueryBuilder[T]) buildSelect(dest any) *bun.SelectQuery {
	query := q.db.NewSelect().Model(dest)

	if q.tableName != "" {
		query = query.ModelTableExpr(q.tableName)
	}

	query = applyWheres(query, q.wheres)

	for _, relation := range q.relations {
		query = query.Relation(relation.Name, relation.Apply...)
	}

	for _, order := range q.orders {
		query = query.OrderExpr("? ?", bun.Ident(order.Column), bun.Safe(order.Direction))
	}

	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}

// whereApplier is satisfied by bun's select, update and delete queries.
type whereApplier[Q any] interface {
	Where(query string, args ...any) Q
}

func applyWheres[Q whereApplier[Q]](query Q, wheres []*WhereClause) Q {
	for _, where := range wheres {
		if where.IsRaw {
			query = query.Where(where.RawSQL, where.RawArgs...)
			continue
		}

		if where.Operator == "IS NULL" || where.Operator == "IS NOT NULL" {
			query = query.Where(fmt.Sprintf("? %s", where.Operator), bun.Ident(where.Column))
			continue
		}

		query = query.Where(fmt.Sprintf("? %s ?", where.Operator), bun.Ident(where.Column), where.Value)
	}
	return query
}
