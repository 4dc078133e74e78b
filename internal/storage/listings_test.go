package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"realty-catalog/internal/catalog"
	"realty-catalog/internal/common/logger"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*ListingRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewListingRepository(db, logger.NewNoOpLogger()), mock
}

func sampleListing() catalog.Listing {
	bedrooms := 4
	return catalog.Listing{
		ID:             "house-sale-2201",
		Title:          "4 Bedroom House in Karen",
		Price:          85000000,
		PriceFormatted: "KSh 85,000,000",
		Location:       "Karen, Nairobi",
		Images:         []string{"https://img.example.co.ke/a.jpg"},
		PropertyURL:    "https://example.co.ke/4-bedroom-house-karen-2201",
		AgentName:      "Pam Golding Kenya",
		Category:       catalog.CategoryHouse,
		ListingType:    catalog.ListingTypeSale,
		Bedrooms:       &bedrooms,
	}
}

func TestListingRepository_Init(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS listings").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Init(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_ReplaceCatalog(t *testing.T) {
	repo, mock := newTestRepository(t)
	listing := sampleListing()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM listings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO listings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceCatalog(context.Background(), []catalog.Listing{listing}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_ReplaceCatalog_RollsBackOnError(t *testing.T) {
	repo, mock := newTestRepository(t)
	listing := sampleListing()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM listings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO listings").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.ReplaceCatalog(context.Background(), []catalog.Listing{listing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert listing house-sale-2201")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_GetByID(t *testing.T) {
	repo, mock := newTestRepository(t)

	rows := sqlmock.NewRows([]string{
		"id", "title", "price", "price_formatted", "location", "images",
		"property_url", "agent_name", "category", "listing_type",
		"bedrooms", "bathrooms", "land_size",
	}).AddRow(
		"house-sale-2201", "4 Bedroom House in Karen", 85000000, "KSh 85,000,000",
		"Karen, Nairobi", `{https://img.example.co.ke/a.jpg}`,
		"https://example.co.ke/4-bedroom-house-karen-2201", "Pam Golding Kenya",
		"house", "sale", 4, nil, nil,
	)
	mock.ExpectQuery("SELECT id, title, price").
		WithArgs("house-sale-2201").
		WillReturnRows(rows)

	l, err := repo.GetByID(context.Background(), "house-sale-2201")
	require.NoError(t, err)
	assert.Equal(t, "4 Bedroom House in Karen", l.Title)
	assert.Equal(t, []string{"https://img.example.co.ke/a.jpg"}, l.Images)
	require.NotNil(t, l.Bedrooms)
	assert.Equal(t, 4, *l.Bedrooms)
	assert.Nil(t, l.Bathrooms)
	assert.Empty(t, l.LandSize)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT id, title, price").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_Count(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(16))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
