// Package storage archives the normalized catalog in PostgreSQL for the
// marketplace back office. The in-memory catalog engine never reads from
// here; the archive is a downstream copy of the current snapshot.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"realty-catalog/internal/catalog"
	"realty-catalog/internal/common/logger"

	"github.com/lib/pq"
)

const createTableStmt = `
CREATE TABLE IF NOT EXISTS listings (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	price           BIGINT NOT NULL,
	price_formatted TEXT NOT NULL,
	location        TEXT NOT NULL,
	images          TEXT[] NOT NULL DEFAULT '{}',
	property_url    TEXT NOT NULL,
	agent_name      TEXT NOT NULL,
	category        TEXT NOT NULL,
	listing_type    TEXT NOT NULL,
	bedrooms        INT,
	bathrooms       INT,
	land_size       TEXT,
	loaded_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const upsertStmt = `
INSERT INTO listings (
	id, title, price, price_formatted, location, images, property_url,
	agent_name, category, listing_type, bedrooms, bathrooms, land_size, loaded_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title,
	price = EXCLUDED.price,
	price_formatted = EXCLUDED.price_formatted,
	location = EXCLUDED.location,
	images = EXCLUDED.images,
	property_url = EXCLUDED.property_url,
	agent_name = EXCLUDED.agent_name,
	category = EXCLUDED.category,
	listing_type = EXCLUDED.listing_type,
	bedrooms = EXCLUDED.bedrooms,
	bathrooms = EXCLUDED.bathrooms,
	land_size = EXCLUDED.land_size,
	loaded_at = now()`

const selectByIDStmt = `
SELECT id, title, price, price_formatted, location, images, property_url,
	agent_name, category, listing_type, bedrooms, bathrooms, land_size
FROM listings WHERE id = $1`

// ListingRepository persists catalog snapshots.
type ListingRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewListingRepository(db *sql.DB, log logger.Logger) *ListingRepository {
	return &ListingRepository{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "listing-repository"}),
	}
}

// Init creates the listings table if it does not exist.
func (r *ListingRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableStmt); err != nil {
		return fmt.Errorf("create listings table: %w", err)
	}
	return nil
}

// ReplaceCatalog archives a full snapshot in one transaction: rows missing
// from the snapshot are removed, the rest upserted.
func (r *ListingRepository) ReplaceCatalog(ctx context.Context, listings []catalog.Listing) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer tx.Rollback()

	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM listings WHERE NOT (id = ANY($1))`, pq.Array(ids)); err != nil {
		return fmt.Errorf("prune stale listings: %w", err)
	}

	for _, l := range listings {
		_, err := tx.ExecContext(ctx, upsertStmt,
			l.ID, l.Title, l.Price, l.PriceFormatted, l.Location,
			pq.Array(l.Images), l.PropertyURL, l.AgentName,
			string(l.Category), string(l.ListingType),
			nullableInt(l.Bedrooms), nullableInt(l.Bathrooms), nullableStr(l.LandSize),
		)
		if err != nil {
			return fmt.Errorf("upsert listing %s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive tx: %w", err)
	}

	r.logger.Info("catalog archived", map[string]interface{}{"listings": len(listings)})
	return nil
}

// GetByID reads one archived listing. Returns sql.ErrNoRows when absent.
func (r *ListingRepository) GetByID(ctx context.Context, id string) (catalog.Listing, error) {
	var (
		l         catalog.Listing
		images    pq.StringArray
		bedrooms  sql.NullInt64
		bathrooms sql.NullInt64
		landSize  sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectByIDStmt, id).Scan(
		&l.ID, &l.Title, &l.Price, &l.PriceFormatted, &l.Location, &images,
		&l.PropertyURL, &l.AgentName, &l.Category, &l.ListingType,
		&bedrooms, &bathrooms, &landSize,
	)
	if err != nil {
		return catalog.Listing{}, err
	}

	l.Images = []string(images)
	if bedrooms.Valid {
		v := int(bedrooms.Int64)
		l.Bedrooms = &v
	}
	if bathrooms.Valid {
		v := int(bathrooms.Int64)
		l.Bathrooms = &v
	}
	l.LandSize = landSize.String
	return l, nil
}

// Count reports the number of archived listings.
func (r *ListingRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM listings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
