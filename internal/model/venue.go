package model

import "strings"

// VenueMetadata describes one of the fixed trading venues.
type VenueMetadata struct {
	Code        string
	DisplayName string
	Color       string
	Focus       string
}

// VenueOrder is the canonical display order for the five venues.
var VenueOrder = []string{"xyz", "flx", "vntl", "hyna", "km"}

var venueRegistry = map[string]VenueMetadata{
	"xyz":  {Code: "xyz", DisplayName: "XYZ", Color: "cyan", Focus: "Stocks/Commodities/FX"},
	"flx":  {Code: "flx", DisplayName: "FLX", Color: "yellow", Focus: "Stocks/XMR/Commodities"},
	"vntl": {Code: "vntl", DisplayName: "VNTL", Color: "blue", Focus: "Pre-IPO/Indices"},
	"hyna": {Code: "hyna", DisplayName: "HYNA", Color: "magenta", Focus: "Crypto/Memes"},
	"km":   {Code: "km", DisplayName: "KM", Color: "green", Focus: "US Indices"},
}

// LookupVenue returns metadata for a venue code (case-insensitive).
// Unknown codes get a plain white placeholder so display code never
// has to special-case them.
func LookupVenue(code string) (VenueMetadata, bool) {
	if meta, ok := venueRegistry[strings.ToLower(code)]; ok {
		return meta, true
	}
	return VenueMetadata{
		Code:        strings.ToLower(code),
		DisplayName: strings.ToUpper(code),
		Color:       "white",
		Focus:       "Unknown",
	}, false
}

// KnownVenue reports whether code is one of the five registry codes.
func KnownVenue(code string) bool {
	_, ok := venueRegistry[strings.ToLower(code)]
	return ok
}

// Venues returns the registry entries in canonical order.
func Venues() []VenueMetadata {
	out := make([]VenueMetadata, 0, len(VenueOrder))
	for _, code := range VenueOrder {
		out = append(out, venueRegistry[code])
	}
	return out
}

// Symbol is a venue-qualified instrument identifier. Its canonical wire
// form is "venue:ticker" with a lowercase venue code.
type Symbol struct {
	Venue  string
	Ticker string
}

// ParseSymbol splits a composite key on the first colon only. Keys
// without a colon or without a ticker are unrecognized; callers filter
// them out rather than treating them as errors.
func ParseSymbol(key string) (Symbol, bool) {
	i := strings.Index(key, ":")
	if i < 0 {
		return Symbol{}, false
	}
	sym := Symbol{Venue: strings.ToLower(key[:i]), Ticker: key[i+1:]}
	if sym.Ticker == "" {
		return Symbol{}, false
	}
	return sym, true
}

// Key returns the canonical wire form.
func (s Symbol) Key() string {
	return s.Venue + ":" + s.Ticker
}
