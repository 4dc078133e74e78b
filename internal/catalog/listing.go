package catalog

// Category is the property kind of a listing.
type Category string

const (
	CategoryHouse Category = "house"
	CategoryLand  Category = "land"
)

// ListingType is the commercial intent of a listing.
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// PrivateSellerName is substituted when a raw record carries no agent name.
const PrivateSellerName = "Private Seller"

// RawListing is one record of a bundled source dataset. The source data is
// inconsistent: prices arrive as localized strings, images as one
// comma-separated string, and several fields may be absent entirely.
type RawListing struct {
	Title       string `json:"title"`
	PropertyURL string `json:"property_url"`
	Images      string `json:"images"`
	Price       string `json:"price"`
	Location    string `json:"location"`
	AgentName   string `json:"agent_name,omitempty"`
	Bedrooms    *int   `json:"bedrooms,omitempty"`
	Bathrooms   *int   `json:"bathrooms,omitempty"`
	LandSize    string `json:"land_size,omitempty"`
}

// Listing is a normalized property record. Values are immutable once the
// loader has produced them; a catalog refresh builds a new slice instead of
// mutating listings in place.
type Listing struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Price          int         `json:"price"`
	PriceFormatted string      `json:"priceFormatted"`
	Location       string      `json:"location"`
	Images         []string    `json:"images"`
	PropertyURL    string      `json:"propertyUrl"`
	AgentName      string      `json:"agentName"`
	Category       Category    `json:"category"`
	ListingType    ListingType `json:"listingType"`
	Bedrooms       *int        `json:"bedrooms,omitempty"`
	Bathrooms      *int        `json:"bathrooms,omitempty"`
	LandSize       string      `json:"landSize,omitempty"`
}

// Dataset groups the raw records of one source collection. Category and
// listing type are fixed per dataset, never inferred per record.
type Dataset struct {
	Category    Category
	ListingType ListingType
	Records     []RawListing
}
