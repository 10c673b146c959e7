package postgres

import (
	"context"
	"database/sql"
	"errors"

	"healthlog/internal/domain"
)

// GetOrCreateMethod resolves a method name to its id, inserting the entry on
// first use. The unique constraint on methods.name makes the operation
// converge under concurrent calls: a lost insert race falls through to the
// winner's row.
func (d *DB) GetOrCreateMethod(ctx context.Context, name string) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx, "SELECT id FROM methods WHERE name = $1", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, storageErr("get method by name", err)
	}

	err = d.sql.QueryRowContext(ctx,
		"INSERT INTO methods (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING RETURNING id",
		name, domain.DefaultMethodDescription,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		// Concurrent call inserted the row first.
		if err := d.sql.QueryRowContext(ctx, "SELECT id FROM methods WHERE name = $1", name).Scan(&id); err != nil {
			return 0, storageErr("get method by name", err)
		}
		return id, nil
	}
	if err != nil {
		return 0, storageErr("create method", err)
	}
	return id, nil
}

// ListMethods returns all catalog entries.
func (d *DB) ListMethods(ctx context.Context) ([]domain.Method, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT id, name, COALESCE(description, '') FROM methods ORDER BY id")
	if err != nil {
		return nil, storageErr("list methods", err)
	}
	defer rows.Close()

	var out []domain.Method
	for rows.Next() {
		var m domain.Method
		if err := rows.Scan(&m.ID, &m.Name, &m.Description); err != nil {
			return nil, storageErr("list methods", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list methods", err)
	}
	return out, nil
}

// CreateMethod inserts a catalog entry and returns its id.
func (d *DB) CreateMethod(ctx context.Context, name, description string) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO methods (name, description) VALUES ($1, $2) RETURNING id",
		name, description,
	).Scan(&id)
	if err != nil {
		return 0, storageErr("create method", err)
	}
	return id, nil
}

// DeleteMethod removes a catalog entry. The RESTRICT constraints on the
// measurement tables block the delete while any row still references the
// method; that violation surfaces as domain.ErrMethodInUse.
func (d *DB) DeleteMethod(ctx context.Context, id int64) error {
	if _, err := d.sql.ExecContext(ctx, "DELETE FROM methods WHERE id = $1", id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrMethodInUse
		}
		return storageErr("delete method", err)
	}
	return nil
}
