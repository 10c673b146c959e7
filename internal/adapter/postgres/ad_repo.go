package postgres

import (
	"context"

	"healthlog/internal/domain"
)

// ListAds returns the full ad inventory.
func (d *DB) ListAds(ctx context.Context) ([]domain.Ad, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT id, image_link, target_link, counter FROM adds ORDER BY id")
	if err != nil {
		return nil, storageErr("list ads", err)
	}
	defer rows.Close()

	var out []domain.Ad
	for rows.Next() {
		var a domain.Ad
		if err := rows.Scan(&a.ID, &a.ImageLink, &a.TargetLink, &a.Counter); err != nil {
			return nil, storageErr("list ads", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list ads", err)
	}
	return out, nil
}

// CreateAd inserts a new ad with a zero click counter.
func (d *DB) CreateAd(ctx context.Context, imageLink, targetLink string) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO adds (image_link, target_link) VALUES ($1, $2) RETURNING id",
		imageLink, targetLink,
	).Scan(&id)
	if err != nil {
		return 0, storageErr("create ad", err)
	}
	return id, nil
}

// DeleteAd removes an ad by id.
func (d *DB) DeleteAd(ctx context.Context, id int64) error {
	if _, err := d.sql.ExecContext(ctx, "DELETE FROM adds WHERE id = $1", id); err != nil {
		return storageErr("delete ad", err)
	}
	return nil
}

// IncrementAdClicks bumps the click counter for one ad.
func (d *DB) IncrementAdClicks(ctx context.Context, id int64) error {
	if _, err := d.sql.ExecContext(ctx, "UPDATE adds SET counter = counter + 1 WHERE id = $1", id); err != nil {
		return storageErr("increment ad clicks", err)
	}
	return nil
}
