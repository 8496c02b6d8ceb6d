package database

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Transaction executes a function within a database transaction. The whole
// sequence commits or rolls back as one unit.
func Transaction(db *DB, ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	if db == nil {
		return fmt.Errorf("database instance not initialized")
	}
	return db.RunInTx(ctx, nil, fn)
}

// Pagination represents pagination parameters
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// PaginationResult wraps paginated data with metadata
type PaginationResult[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Paginate applies pagination to a query builder and returns results with metadata
func Paginate[T any](q *QueryBuilder[T], ctx context.Context, page, pageSize int) (*PaginationResult[T], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100 // Max page size
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	offset := (page - 1) * pageSize

	data, err := q.Limit(pageSize).Offset(offset).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get paginated data: %w", err)
	}

	return &PaginationResult[T]{
		Data: data,
		Pagination: Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	}, nil
}

// FindByID is a helper to find a record by ID
func FindByID[T any](db *DB, ctx context.Context, id any) (*T, error) {
	return Query[T](db).Where("id", id).First(ctx)
}

// DeleteByID is a helper to delete a record by ID
func DeleteByID[T any](db *DB, ctx context.Context, id any) (int, error) {
	return Query[T](db).Where("id", id).Delete(ctx)
}

// BulkUpsert performs INSERT ... ON CONFLICT (conflictColumns) DO UPDATE for a
// batch of rows in a single statement.
func BulkUpsert[T any](db *DB, ctx context.Context, data []T, conflictColumns string, updateColumns ...string) ([]T, error) {
	start := time.Now()

	if len(data) == 0 {
		return data, nil
	}

	query := db.NewInsert().
		Model(&data).
		On(fmt.Sprintf("CONFLICT (%s) DO UPDATE", conflictColumns))

	for _, col := range updateColumns {
		query = query.Set("? = EXCLUDED.?", bun.Ident(col), bun.Ident(col))
	}

	err := WithRetry(ctx, func() error {
		_, err := query.Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute bulk upsert: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}
