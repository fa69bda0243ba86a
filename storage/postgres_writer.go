package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"imoveis-scraper/models"
)

// PostgresWriter persists the aggregated records to PostgreSQL. Each run
// replaces the previous dataset wholesale.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS properties (
			row_id          SERIAL PRIMARY KEY,
			domain          VARCHAR(255) NOT NULL,
			listing_id      TEXT,
			code            TEXT,
			title           TEXT,
			description     TEXT,
			type            TEXT,
			deal_type       TEXT,
			exclusivity     TEXT,
			neighborhood    TEXT,
			city            TEXT,
			address         TEXT,
			bedrooms        INT,
			bathrooms       INT,
			parking_spaces  INT,
			private_area_m2 NUMERIC(10,2),
			price           NUMERIC(14,2),
			latitude        DOUBLE PRECISION,
			longitude       DOUBLE PRECISION,
			image_urls      TEXT,
			property_url    TEXT,
			scraped_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_properties_domain       ON properties(domain);
		CREATE INDEX IF NOT EXISTS idx_properties_price        ON properties(price);
		CREATE INDEX IF NOT EXISTS idx_properties_neighborhood ON properties(neighborhood);
	`)
	return err
}

// Clear deletes all stored records.
func (pw *PostgresWriter) Clear() error {
	if _, err := pw.db.Exec("DELETE FROM properties"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// WriteAll replaces the stored dataset with the given records.
func (pw *PostgresWriter) WriteAll(records []*models.Listing) error {
	if len(records) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := pw.insertBatch(records[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.Listing) error {
	const cols = 20
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, r := range batch {
		base := idx * cols
		placeholders := make([]string, cols)
		for i := range placeholders {
			placeholders[i] = fmt.Sprintf("$%d", base+i+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			r.Domain, r.ID, r.Code, r.Title, r.Description, r.Type, r.DealType,
			r.Exclusivity, r.Neighborhood, r.City, r.Address, r.Bedrooms,
			r.Bathrooms, r.ParkingSpaces, r.PrivateAreaM2, r.Price,
			r.Latitude, r.Longitude, r.ImageURLs, r.PropertyURL)
	}

	query := fmt.Sprintf(`
		INSERT INTO properties (
			domain, listing_id, code, title, description, type, deal_type,
			exclusivity, neighborhood, city, address, bedrooms, bathrooms,
			parking_spaces, private_area_m2, price, latitude, longitude,
			image_urls, property_url
		)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	if _, err := pw.db.Exec(query, valueArgs...); err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

// FetchAll retrieves all stored records — used by the insight service.
func (pw *PostgresWriter) FetchAll() ([]*models.Listing, error) {
	rows, err := pw.db.Query(`
		SELECT domain, listing_id, code, title, description, type, deal_type,
		       exclusivity, neighborhood, city, address, bedrooms, bathrooms,
		       parking_spaces, private_area_m2, price, latitude, longitude,
		       image_urls, property_url, scraped_at
		FROM properties
		ORDER BY row_id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var records []*models.Listing
	for rows.Next() {
		r := &models.Listing{}
		if err := rows.Scan(
			&r.Domain, &r.ID, &r.Code, &r.Title, &r.Description, &r.Type,
			&r.DealType, &r.Exclusivity, &r.Neighborhood, &r.City, &r.Address,
			&r.Bedrooms, &r.Bathrooms, &r.ParkingSpaces, &r.PrivateAreaM2,
			&r.Price, &r.Latitude, &r.Longitude, &r.ImageURLs, &r.PropertyURL,
			&r.ScrapedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
