package datasets

import (
	"testing"

	"realty-catalog/internal/catalog"
	"realty-catalog/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BundledDatasets(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)
	require.Len(t, ds, 3)

	assert.Equal(t, catalog.CategoryLand, ds[0].Category)
	assert.Equal(t, catalog.ListingTypeSale, ds[0].ListingType)
	assert.Equal(t, catalog.CategoryHouse, ds[1].Category)
	assert.Equal(t, catalog.ListingTypeSale, ds[1].ListingType)
	assert.Equal(t, catalog.CategoryHouse, ds[2].Category)
	assert.Equal(t, catalog.ListingTypeRent, ds[2].ListingType)

	for _, d := range ds {
		assert.NotEmpty(t, d.Records)
	}
}

func TestLoad_DerivedIDsAreUnique(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	loader := catalog.NewLoader(catalog.NewPriceFormatter("en-KE", "KSh"), logger.NewNoOpLogger())
	listings := loader.Load(ds...)

	seen := make(map[string]struct{}, len(listings))
	for _, l := range listings {
		_, dup := seen[l.ID]
		assert.False(t, dup, "duplicate id %s", l.ID)
		seen[l.ID] = struct{}{}
	}
}

func TestLoad_Deterministic(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "valid minimal record",
			doc:  `[{"title":"Plot","property_url":"plots/plot-1","price":"1,000,000","location":"Kitengela"}]`,
		},
		{
			name:    "missing required field",
			doc:     `[{"title":"Plot","price":"1,000,000","location":"Kitengela"}]`,
			wantErr: true,
		},
		{
			name:    "unknown field rejected",
			doc:     `[{"title":"Plot","property_url":"p-1","price":"1","location":"X","rating":5}]`,
			wantErr: true,
		},
		{
			name:    "zero bedrooms rejected",
			doc:     `[{"title":"Plot","property_url":"p-1","price":"1","location":"X","bedrooms":0}]`,
			wantErr: true,
		},
		{
			name:    "not an array",
			doc:     `{"title":"Plot"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument([]byte(tt.doc))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
