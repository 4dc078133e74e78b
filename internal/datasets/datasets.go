// Package datasets bundles the raw listing collections the marketplace
// currently sources its catalog from, one file per category/listing-type
// pair.
package datasets

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"realty-catalog/internal/catalog"
	apperrors "realty-catalog/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed land-sale.json house-sale.json house-rent.json
var files embed.FS

// sources fixes the catalog concatenation order: land-sale, house-sale,
// house-rent.
var sources = []struct {
	file        string
	category    catalog.Category
	listingType catalog.ListingType
}{
	{"land-sale.json", catalog.CategoryLand, catalog.ListingTypeSale},
	{"house-sale.json", catalog.CategoryHouse, catalog.ListingTypeSale},
	{"house-rent.json", catalog.CategoryHouse, catalog.ListingTypeRent},
}

// Load validates and decodes every bundled dataset. A document that fails
// schema validation rejects the whole load; the loader downstream handles
// per-record problems.
func Load() ([]catalog.Dataset, error) {
	out := make([]catalog.Dataset, 0, len(sources))
	for _, src := range sources {
		data, err := files.ReadFile(src.file)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeDatasetInvalid,
				fmt.Sprintf("read dataset %s", src.file))
		}

		if err := ValidateDocument(data); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeDatasetInvalid,
				fmt.Sprintf("dataset %s failed schema validation", src.file))
		}

		var records []catalog.RawListing
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeDatasetInvalid,
				fmt.Sprintf("decode dataset %s", src.file))
		}

		out = append(out, catalog.Dataset{
			Category:    src.category,
			ListingType: src.listingType,
			Records:     records,
		})
	}
	return out, nil
}

// ValidateDocument checks a raw dataset document against the listing schema.
func ValidateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(rawListingSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid dataset document: %s", strings.Join(msgs, "; "))
	}
	return nil
}
