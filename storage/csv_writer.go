package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"imoveis-scraper/models"
)

var csvHeader = []string{
	"domain", "id", "code", "title", "description", "type", "deal_type",
	"exclusivity", "neighborhood", "city", "address", "bedrooms", "bathrooms",
	"parking_spaces", "private_area_m2", "price", "latitude", "longitude",
	"image_urls", "property_url", "scraped_at",
}

// CSVWriter persists the aggregated records to a CSV file. The write is
// atomic: rows go to a temp file in the target directory which is renamed
// over the destination only after a clean flush, so a failed run never
// leaves a partial or corrupt file behind.
type CSVWriter struct {
	path string
}

// NewCSVWriter prepares a writer for the given path, creating intermediate
// directories.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}
	return &CSVWriter{path: path}, nil
}

// WriteAll replaces the output file with the given records.
func (c *CSVWriter) WriteAll(records []*models.Listing) error {
	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".properties-*.csv")
	if err != nil {
		return fmt.Errorf("csv: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(csvHeader); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(recordRow(r)); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("csv: flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("csv: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("csv: replace %q: %w", c.path, err)
	}
	return nil
}

// recordRow renders one record; nil fields become empty cells.
func recordRow(r *models.Listing) []string {
	return []string{
		r.Domain,
		strCell(r.ID),
		strCell(r.Code),
		strCell(r.Title),
		strCell(r.Description),
		strCell(r.Type),
		strCell(r.DealType),
		strCell(r.Exclusivity),
		strCell(r.Neighborhood),
		strCell(r.City),
		strCell(r.Address),
		intCell(r.Bedrooms),
		intCell(r.Bathrooms),
		intCell(r.ParkingSpaces),
		floatCell(r.PrivateAreaM2),
		floatCell(r.Price),
		floatCell(r.Latitude),
		floatCell(r.Longitude),
		strCell(r.ImageURLs),
		strCell(r.PropertyURL),
		r.ScrapedAt.Format(time.RFC3339),
	}
}

func strCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
