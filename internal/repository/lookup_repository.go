// This file defines LookupRepo, a generic repository for the flat
// lookup-style tables (the four pricing tables, the stone ledger and the
// machinery register).  Those families share an identical CRUD shape —
// auto-increment id, a handful of scalar columns, list-all ordered by id —
// so one parameterized implementation replaces six hand-written ones.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// LookupRepo performs CRUD against a single flat table.  Table, IDColumn,
// Columns and OrderBy are fixed at construction; values travel as
// positional slices matching Columns.
type LookupRepo struct {
	db       *sql.DB
	table    string
	idColumn string
	columns  []string
	orderBy  string
}

// NewLookupRepo builds a repository for one flat table.  orderBy is a raw
// ORDER BY expression such as "id DESC".  All identifiers come from
// compile-time entity specs, never from request input, so interpolating
// them into SQL text is safe.
func NewLookupRepo(db *sql.DB, table, idColumn string, columns []string, orderBy string) *LookupRepo {
	return &LookupRepo{db: db, table: table, idColumn: idColumn, columns: columns, orderBy: orderBy}
}

// List returns all rows as column-name-keyed maps, preserving the JSON
// shape the clients have always consumed.
func (r *LookupRepo) List(ctx context.Context) ([]map[string]any, error) {
	q := fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s",
		r.idColumn, strings.Join(r.columns, ", "), r.table, r.orderBy)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []map[string]any{}
	for rows.Next() {
		var id uint64
		vals := make([]any, len(r.columns))
		dest := make([]any, 0, len(r.columns)+1)
		dest = append(dest, &id)
		for i := range vals {
			dest = append(dest, &vals[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		m := map[string]any{r.idColumn: id}
		for i, col := range r.columns {
			m[col] = normalizeValue(vals[i])
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetByID fetches one row as a map or returns ErrNotFound.
func (r *LookupRepo) GetByID(ctx context.Context, id uint64) (map[string]any, error) {
	q := fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s = ?",
		r.idColumn, strings.Join(r.columns, ", "), r.table, r.idColumn)
	var rowID uint64
	vals := make([]any, len(r.columns))
	dest := make([]any, 0, len(r.columns)+1)
	dest = append(dest, &rowID)
	for i := range vals {
		dest = append(dest, &vals[i])
	}
	if err := r.db.QueryRowContext(ctx, q, id).Scan(dest...); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	m := map[string]any{r.idColumn: rowID}
	for i, col := range r.columns {
		m[col] = normalizeValue(vals[i])
	}
	return m, nil
}

// Create inserts one row; values must align with the configured columns.
func (r *LookupRepo) Create(ctx context.Context, values []any) (uint64, error) {
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.table, strings.Join(r.columns, ", "), placeholders(len(r.columns)))
	res, err := r.db.ExecContext(ctx, q, values...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update replaces every configured column of one row, returning
// ErrNotFound when the id matches nothing.
func (r *LookupRepo) Update(ctx context.Context, id uint64, values []any) error {
	sets := make([]string, len(r.columns))
	for i, col := range r.columns {
		sets[i] = col + " = ?"
	}
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		r.table, strings.Join(sets, ", "), r.idColumn)
	args := append(append([]any{}, values...), id)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one row or returns ErrNotFound.
func (r *LookupRepo) Delete(ctx context.Context, id uint64) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", r.table, r.idColumn)
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// normalizeValue converts driver byte slices to strings so the maps
// marshal as JSON text rather than base64.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
