package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"healthlog/internal/domain"
)

// kindTables maps each measurement kind to its table. Table identifiers
// cannot be bound as query parameters, so every identifier that reaches the
// SQL text comes from this fixed map, never from caller input.
var kindTables = map[domain.Kind]string{
	domain.KindWeight:    "weights",
	domain.KindHeartbeat: "heartbeats",
	domain.KindSteps:     "steps",
}

func tableFor(kind domain.Kind) (string, error) {
	table, ok := kindTables[kind]
	if !ok {
		return "", domain.ErrUnknownKind
	}
	return table, nil
}

// AddMeasurement inserts one measurement row into the table selected by kind.
func (d *DB) AddMeasurement(ctx context.Context, kind domain.Kind, date string, value float64, methodID *int64, userID int64) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	var id int64
	query := fmt.Sprintf("INSERT INTO %s (date, value, method_id, user_id) VALUES ($1, $2, $3, $4) RETURNING id", table)
	err = d.sql.QueryRowContext(ctx, query, date, value, nullableID(methodID), userID).Scan(&id)
	if err != nil {
		return 0, storageErr("add "+string(kind)+" measurement", err)
	}
	return id, nil
}

// ListMeasurements returns all of a user's rows of one kind, left-joined with
// the method catalog and ordered by date.
func (d *DB) ListMeasurements(ctx context.Context, kind domain.Kind, userID int64) ([]domain.Measurement, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(
		`SELECT t.id, t.date::text, t.value, t.method_id, m.name, m.description
		FROM %s t
		LEFT JOIN methods m ON t.method_id = m.id
		WHERE t.user_id = $1
		ORDER BY t.date`, table)

	rows, err := d.sql.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, storageErr("list "+string(kind)+" measurements", err)
	}
	defer rows.Close()

	var out []domain.Measurement
	for rows.Next() {
		var e domain.Measurement
		var methodID sql.NullInt64
		var methodName, methodDesc sql.NullString
		if err := rows.Scan(&e.ID, &e.Date, &e.Value, &methodID, &methodName, &methodDesc); err != nil {
			return nil, storageErr("list "+string(kind)+" measurements", err)
		}
		e.Kind = kind
		e.UserID = userID
		if methodID.Valid {
			e.MethodID = &methodID.Int64
		}
		if methodName.Valid {
			e.MethodName = &methodName.String
		}
		if methodDesc.Valid {
			e.MethodDescription = &methodDesc.String
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list "+string(kind)+" measurements", err)
	}
	return out, nil
}

// DeleteMeasurement removes one row by id. Deleting an id that does not
// exist is not an error.
func (d *DB) DeleteMeasurement(ctx context.Context, kind domain.Kind, id int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	if _, err := d.sql.ExecContext(ctx, query, id); err != nil {
		return storageErr("delete "+string(kind)+" measurement", err)
	}
	return nil
}

func nullableID(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
