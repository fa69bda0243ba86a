package storage

import "imoveis-scraper/models"

// RecordWriter is the interface any persistence backend must satisfy. A call
// replaces the previously stored dataset; harvesting is stateless across
// runs.
type RecordWriter interface {
	WriteAll(records []*models.Listing) error
}
