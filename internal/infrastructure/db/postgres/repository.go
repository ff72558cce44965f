package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/geoyouth/league-api/internal/core/domain"
)

// RowScanner abstracts *sql.Row / *sql.Rows for entity scan functions.
type RowScanner interface {
	Scan(dest ...any) error
}

// Mapper binds one entity type to its table: identity column, the set of
// mutable columns, scan/values marshalling and the update policy.
//
// Coalesce selects the per-entity update semantics: false means full-replace
// (every column written from the request, absent -> NULL); true means a
// coalescing partial update (absent field keeps the stored value).
//
// UpdateColumns/UpdateValues narrow the column set an update writes. When
// nil, updates write Columns/Values. News uses this: publish_date is set on
// insert but never touched by an update.
type Mapper[T any] struct {
	Table         string
	IDColumn      string
	Columns       []string
	Scan          func(row RowScanner) (*T, error)
	Values        func(e *T) []any
	UpdateColumns []string
	UpdateValues  func(e *T) []any
	Coalesce      bool
}

// Repository is the generic CRUD implementation shared by all league
// resources. One instance per entity, parameterized by its Mapper.
type Repository[T any] struct {
	db *sql.DB
	m  Mapper[T]

	selectCols string
}

func NewRepository[T any](db *sql.DB, m Mapper[T]) *Repository[T] {
	cols := append([]string{m.IDColumn}, m.Columns...)
	return &Repository[T]{
		db:         db,
		m:          m,
		selectCols: strings.Join(cols, ", "),
	}
}

// List returns all rows in storage-native order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", r.selectCols, r.m.Table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.m.Table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		e, err := r.m.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.m.Table, err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Get looks up a single row by primary key.
func (r *Repository[T]) Get(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", r.selectCols, r.m.Table, r.m.IDColumn)
	e, err := r.m.Scan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", r.m.Table, err)
	}
	return e, nil
}

// Create inserts a row and returns it with the generated identity.
func (r *Repository[T]) Create(ctx context.Context, e *T) (*T, error) {
	placeholders := make([]string, len(r.m.Columns))
	for i := range r.m.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.m.Table,
		strings.Join(r.m.Columns, ", "),
		strings.Join(placeholders, ", "),
		r.selectCols,
	)

	created, err := r.m.Scan(r.db.QueryRowContext(ctx, query, r.m.Values(e)...))
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", r.m.Table, err)
	}
	return created, nil
}

// Update writes the mutable columns of the row with the given id and returns
// the updated row, or domain.ErrNotFound when no row matches. The write is
// full-replace or coalescing depending on the mapper policy.
func (r *Repository[T]) Update(ctx context.Context, id int64, e *T) (*T, error) {
	cols := r.m.UpdateColumns
	values := r.m.UpdateValues
	if cols == nil {
		cols = r.m.Columns
		values = r.m.Values
	}

	assigns := make([]string, len(cols))
	for i, col := range cols {
		if r.m.Coalesce {
			assigns[i] = fmt.Sprintf("%s = COALESCE($%d, %s)", col, i+1, col)
		} else {
			assigns[i] = fmt.Sprintf("%s = $%d", col, i+1)
		}
	}
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		r.m.Table,
		strings.Join(assigns, ", "),
		r.m.IDColumn,
		len(cols)+1,
		r.selectCols,
	)

	args := append(values(e), id)
	updated, err := r.m.Scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", r.m.Table, err)
	}
	return updated, nil
}

// Delete removes the row with the given id, returning domain.ErrNotFound
// when it does not exist. Deleting an already-deleted id is a clean miss,
// not an error.
func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 RETURNING %s", r.m.Table, r.m.IDColumn, r.m.IDColumn)
	var deleted int64
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete %s: %w", r.m.Table, err)
	}
	return nil
}
