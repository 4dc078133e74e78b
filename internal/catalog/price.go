package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// rentSuffix is appended after numeric formatting for rent listings. The
// numeric formatter itself never encodes the per-month semantics.
const rentSuffix = "/month"

// PriceFormatter renders integer prices as display strings using a
// locale-aware printer. Currency symbol and locale come from configuration;
// the marketplace defaults to Kenyan-shilling formatting.
type PriceFormatter struct {
	symbol  string
	printer *message.Printer
}

// NewPriceFormatter builds a formatter for the given BCP 47 locale tag and
// currency symbol. An unparseable tag falls back to English grouping.
func NewPriceFormatter(locale, symbol string) *PriceFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &PriceFormatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// Format renders price with thousands grouping, prefixed by the currency
// symbol. Rent listings get the "/month" suffix as a separate append step.
func (f *PriceFormatter) Format(price int, listingType ListingType) string {
	s := f.printer.Sprintf("%s %d", f.symbol, price)
	if listingType == ListingTypeRent {
		s += rentSuffix
	}
	return s
}
