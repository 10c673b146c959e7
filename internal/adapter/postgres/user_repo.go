// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"healthlog/internal/domain"
)

// GetByEmail retrieves a user by email, or nil if no such user exists.
func (d *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	var age sql.NullInt64
	var height sql.NullFloat64
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, email, name, password_hash, age, height FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &age, &height)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get user by email", err)
	}
	if age.Valid {
		v := int(age.Int64)
		u.Age = &v
	}
	if height.Valid {
		v := height.Float64
		u.Height = &v
	}
	return &u, nil
}

// CreateUser inserts a new account. The unique constraint on email is the
// duplicate check; a violation surfaces as domain.ErrDuplicateEmail.
func (d *DB) CreateUser(ctx context.Context, email, name, passwordHash string, age *int, height *float64) (*domain.User, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO users (email, name, password_hash, age, height) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		email, name, passwordHash, nullableInt(age), nullableFloat(height),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, storageErr("create user", err)
	}
	return &domain.User{ID: id, Email: email, Name: name, PasswordHash: passwordHash, Age: age, Height: height}, nil
}

// DeleteUser removes a user. The ON DELETE CASCADE constraints remove the
// user's rows from weights, heartbeats and steps in the same statement.
func (d *DB) DeleteUser(ctx context.Context, id int64) error {
	if _, err := d.sql.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id); err != nil {
		return storageErr("delete user", err)
	}
	return nil
}

// ListUsers returns all accounts.
func (d *DB) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, email, name, password_hash, age, height FROM users ORDER BY id")
	if err != nil {
		return nil, storageErr("list users", err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		var age sql.NullInt64
		var height sql.NullFloat64
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &age, &height); err != nil {
			return nil, storageErr("list users", err)
		}
		if age.Valid {
			v := int(age.Int64)
			u.Age = &v
		}
		if height.Valid {
			v := height.Float64
			u.Height = &v
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list users", err)
	}
	return out, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullableFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
