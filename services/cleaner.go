package services

import (
	"strings"
	"unicode"

	"imoveis-scraper/models"
	"imoveis-scraper/utils"
)

// Cleaner normalizes harvested records before persistence: whitespace is
// collapsed in the free-text fields and records pointing at the same
// property URL are deduplicated. Records are never dropped for missing or
// unparseable values; filtering belongs to the consumer.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean returns the normalized, deduplicated record list.
func (c *Cleaner) Clean(records []*models.Listing) []*models.Listing {
	seen := make(map[string]struct{})
	result := make([]*models.Listing, 0, len(records))

	for _, r := range records {
		r.Title = normaliseText(r.Title)
		r.Description = normaliseText(r.Description)
		r.Neighborhood = normaliseText(r.Neighborhood)
		r.City = normaliseText(r.City)
		r.Address = normaliseText(r.Address)
		r.DealType = normaliseText(r.DealType)

		if r.PropertyURL != nil {
			if _, dup := seen[*r.PropertyURL]; dup {
				c.logger.Debug("[cleaner] Duplicate URL skipped: %s", *r.PropertyURL)
				continue
			}
			seen[*r.PropertyURL] = struct{}{}
		}

		result = append(result, r)
	}

	c.logger.Info("[cleaner] Normalized %d → %d records (dropped %d duplicates)",
		len(records), len(result), len(records)-len(result))
	return result
}

// normaliseText strips leading/trailing whitespace and collapses internal
// whitespace; a value that becomes empty is absent.
func normaliseText(v *string) *string {
	if v == nil {
		return nil
	}
	fields := strings.FieldsFunc(*v, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	s := strings.Join(fields, " ")
	if s == "" {
		return nil
	}
	return &s
}
