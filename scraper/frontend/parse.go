package frontend

import (
	"fmt"
	"strconv"
	"strings"

	"imoveis-scraper/models"
)

var priceReplacer = strings.NewReplacer("R$", "", ".", "", ",", ".")

// ParsePrice converts a Brazilian-formatted price text such as
// "R$ 1.234.567,89" into its decimal value: currency symbol and thousands
// separators stripped, decimal comma turned into a period.
func ParsePrice(text string) (float64, error) {
	clean := strings.TrimSpace(priceReplacer.Replace(text))
	if clean == "" {
		return 0, fmt.Errorf("price text %q has no numeric value", text)
	}
	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("price text %q: %w", text, err)
	}
	return value, nil
}

// characteristicRules classifies the short tokens in a card's
// characteristics line ("3 quartos", "120 m²", ...) by keyword substring.
// New site quirks are handled by adding a rule, not by restructuring.
var characteristicRules = []struct {
	keyword string
	apply   func(rec *models.Listing, token string)
}{
	{"m²", func(rec *models.Listing, token string) { rec.PrivateAreaM2 = leadingArea(token) }},
	{"quarto", func(rec *models.Listing, token string) { rec.Bedrooms = leadingInt(token) }},
	{"banheiro", func(rec *models.Listing, token string) { rec.Bathrooms = leadingInt(token) }},
	{"vaga", func(rec *models.Listing, token string) { rec.ParkingSpaces = leadingInt(token) }},
}

// classifyCharacteristic applies the first matching rule to the token and
// reports whether any rule matched. Keyword matching is case-insensitive.
func classifyCharacteristic(token string, rec *models.Listing) bool {
	lower := strings.ToLower(token)
	for _, rule := range characteristicRules {
		if strings.Contains(lower, rule.keyword) {
			rule.apply(rec, token)
			return true
		}
	}
	return false
}

// leadingInt extracts the leading numeral of a token ("3 quartos" -> 3).
func leadingInt(token string) *int {
	fields := strings.Fields(token)
	if len(fields) == 0 {
		return nil
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil
	}
	return &n
}

// leadingArea extracts the leading numeral of an area token ("120 m²" ->
// 120.0), tolerating Brazilian thousands/decimal separators and a glued
// unit ("120m²").
func leadingArea(token string) *float64 {
	fields := strings.Fields(token)
	if len(fields) == 0 {
		return nil
	}
	clean := strings.NewReplacer("m²", "", ".", "", ",", ".").Replace(fields[0])
	if clean == "" {
		return nil
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil
	}
	return &v
}
