package datasets

// rawListingSchema validates the shape of a bundled dataset document before
// normalization. Per-record field problems (bad prices, missing agents) are
// tolerated downstream; this only rejects documents that are not arrays of
// listing-shaped objects.
const rawListingSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["title", "property_url", "price", "location"],
		"properties": {
			"title":        {"type": "string", "minLength": 1},
			"property_url": {"type": "string", "minLength": 1},
			"images":       {"type": "string"},
			"price":        {"type": "string"},
			"location":     {"type": "string"},
			"agent_name":   {"type": "string"},
			"bedrooms":     {"type": "integer", "minimum": 1},
			"bathrooms":    {"type": "integer", "minimum": 1},
			"land_size":    {"type": "string"}
		},
		"additionalProperties": false
	}
}`
