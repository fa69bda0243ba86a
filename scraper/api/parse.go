package api

import (
	"time"

	"imoveis-scraper/models"
	"imoveis-scraper/utils"
)

// parseItem maps one raw listing object onto the normalized record. Every
// nested lookup tolerates absent keys, null values, and unexpected shapes:
// a malformed field degrades to nil, it never fails the record.
func parseItem(domain string, raw map[string]any) *models.Listing {
	rec := &models.Listing{
		Domain:        domain,
		ID:            utils.DigString(raw, "id"),
		Code:          utils.DigString(raw, "code"),
		Title:         utils.DigString(raw, "title"),
		Description:   utils.DigString(raw, "description"),
		Type:          utils.DigString(raw, "type"),
		Exclusivity:   utils.DigString(raw, "exclusivity"),
		Neighborhood:  utils.DigString(raw, "address", "neighborhood"),
		City:          utils.DigString(raw, "address", "city"),
		Bedrooms:      utils.DigInt(raw, "bedrooms"),
		Bathrooms:     utils.DigInt(raw, "bathrooms"),
		ParkingSpaces: utils.DigInt(raw, "garage"),
		PrivateAreaM2: utils.DigFloat(raw, "privateArea", "value"),
		Latitude:      utils.DigFloat(raw, "address", "coordinate", "latitude"),
		Longitude:     utils.DigFloat(raw, "address", "coordinate", "longitude"),
		Price:         parsePrice(raw),
		ImageURLs:     models.JoinImageURLs(imageSources(raw)),
		ScrapedAt:     time.Now(),
	}

	if path := utils.DigString(raw, "url"); path != nil {
		full := "https://www." + domain + *path
		rec.PropertyURL = &full
	}

	return rec
}

// parsePrice reads contracts[0].price.value, an integer count of minor
// currency units, and converts it to a decimal amount.
func parsePrice(raw map[string]any) *float64 {
	contracts := utils.DigSlice(raw, "contracts")
	if len(contracts) == 0 {
		return nil
	}
	first, ok := contracts[0].(map[string]any)
	if !ok {
		return nil
	}
	cents := utils.DigFloat(first, "price", "value")
	if cents == nil {
		return nil
	}
	price := *cents / 100
	return &price
}

// imageSources collects every non-empty image src in display order.
func imageSources(raw map[string]any) []string {
	var srcs []string
	for _, entry := range utils.DigSlice(raw, "images") {
		img, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if src := utils.DigString(img, "src"); src != nil {
			srcs = append(srcs, *src)
		}
	}
	return srcs
}
