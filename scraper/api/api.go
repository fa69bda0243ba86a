package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"

	"imoveis-scraper/config"
	"imoveis-scraper/models"
	"imoveis-scraper/utils"
)

const (
	listPath = "/api/frontend/real-estate-data/property/list"
	// pageSize is the fixed offset step of the shared listing endpoint.
	pageSize = 8
)

// Scraper harvests the complete listing set a domain exposes through its
// offset-paginated listing API.
type Scraper struct {
	cfg    *config.Config
	logger *utils.Logger

	// parent collector; every page request runs on a clone so handlers
	// never leak between requests while limits and headers are shared.
	collector *colly.Collector

	// fetch is swappable for tests.
	fetch func(domain string, offset int) ([]map[string]any, error)
}

// New creates a ready-to-use API Scraper.
func New(cfg *config.Config, logger *utils.Logger) (*Scraper, error) {
	c := colly.NewCollector(colly.AllowURLRevisit())
	c.SetRequestTimeout(time.Duration(cfg.RequestTimeoutSec) * time.Second)

	err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		RandomDelay: time.Duration(cfg.RateLimitMs) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("api: set limit rule: %w", err)
	}

	extensions.RandomUserAgent(c)
	extensions.Referer(c)

	s := &Scraper{
		cfg:       cfg,
		logger:    logger,
		collector: c,
	}
	s.fetch = s.fetchPage
	return s, nil
}

// Harvest walks the domain's listing endpoint from offset 0 until the API
// returns an empty page (normal completion) or a page fetch fails. On
// failure the records gathered so far are returned together with the error —
// a broken domain never discards its partial results.
func (s *Scraper) Harvest(domain string) ([]*models.Listing, error) {
	if strings.TrimSpace(domain) == "" {
		return nil, fmt.Errorf("api: domain name is empty")
	}

	var records []*models.Listing
	offset := 0

	for page := 1; ; page++ {
		s.logger.Debug("[api] %s — fetching page %d (offset %d)", domain, page, offset)

		items, err := s.fetch(domain, offset)
		if err != nil {
			return records, fmt.Errorf("api: %s offset %d: %w", domain, offset, err)
		}
		if len(items) == 0 {
			s.logger.Info("[api] %s — no more items, harvest complete (%d records)",
				domain, len(records))
			return records, nil
		}

		for _, raw := range items {
			records = append(records, parseItem(domain, raw))
		}
		offset += pageSize
	}
}

// fetchPage requests one page of listings. A nil error with an empty slice
// means the pagination is exhausted; an error means the request, the status,
// or the response body was bad.
func (s *Scraper) fetchPage(domain string, offset int) ([]map[string]any, error) {
	target := fmt.Sprintf("https://www.%s%s?offset=%d", domain, listPath, offset)

	var items []map[string]any
	var fetchErr error
	decoded := false

	c := s.collector.Clone()
	c.OnResponse(func(r *colly.Response) {
		items, fetchErr = s.decodeItemsPage(domain, r.Body)
		decoded = fetchErr == nil
	})
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = fmt.Errorf("request failed: %w", err)
	})

	if err := c.Visit(target); err != nil {
		return nil, fmt.Errorf("visit %s: %w", target, err)
	}
	c.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	if !decoded {
		return nil, fmt.Errorf("no response received for %s", target)
	}
	return items, nil
}

// decodeItemsPage extracts the items array from one response body. A body
// without an items array is a failed fetch, but one malformed entry inside
// the array only costs that entry; its well-formed siblings survive the
// page.
func (s *Scraper) decodeItemsPage(domain string, body []byte) ([]map[string]any, error) {
	var payload struct {
		Items []any `json:"items"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if payload.Items == nil {
		return nil, fmt.Errorf("response has no items array")
	}

	items := make([]map[string]any, 0, len(payload.Items))
	for i, entry := range payload.Items {
		item, ok := entry.(map[string]any)
		if !ok {
			s.logger.Warn("[api] %s — skipping malformed item at index %d (%T)", domain, i, entry)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
