package models

import (
	"strings"
	"time"
)

// ImageURLSeparator joins image URLs into a single flat column value.
// Splitting on it recovers the original URL list in display order.
const ImageURLSeparator = " | "

// Listing is the normalized record for one property listing. Both harvesters
// produce the same shape so downstream consumers see a uniform table.
//
// Optional fields are pointers: a value that was absent or failed to parse is
// nil, never a zero default. Latitude/Longitude only come from the listing
// API; Address and DealType only from rendered search-result cards.
type Listing struct {
	Domain        string
	ID            *string
	Code          *string
	Title         *string
	Description   *string
	Type          *string
	DealType      *string
	Exclusivity   *string
	Neighborhood  *string
	City          *string
	Address       *string
	Bedrooms      *int
	Bathrooms     *int
	ParkingSpaces *int
	PrivateAreaM2 *float64
	Price         *float64
	Latitude      *float64
	Longitude     *float64
	ImageURLs     *string
	PropertyURL   *string
	ScrapedAt     time.Time
}

// JoinImageURLs flattens an ordered list of image URLs into a single string
// field. Empty entries are dropped; nil is returned when nothing remains.
func JoinImageURLs(urls []string) *string {
	kept := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			kept = append(kept, u)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	joined := strings.Join(kept, ImageURLSeparator)
	return &joined
}

// SplitImageURLs recovers the URL list from a joined ImageURLs field.
func SplitImageURLs(joined *string) []string {
	if joined == nil || *joined == "" {
		return nil
	}
	return strings.Split(*joined, ImageURLSeparator)
}

// InsightReport holds the summary computed over the aggregated dataset.
type InsightReport struct {
	TotalRecords    int
	PricedRecords   int
	AveragePrice    float64
	MinPrice        float64
	MaxPrice        float64
	MostExpensive   *Listing
	RecordsByDomain map[string]int
}
