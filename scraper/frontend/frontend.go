package frontend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"imoveis-scraper/config"
	"imoveis-scraper/models"
	"imoveis-scraper/utils"
)

const (
	cardSelector = `[itemtype="https://schema.org/Apartment"]`
	nextLabel    = "Próximo"
)

// Scraper drives a headless browser through each domain's rendered
// search-results UI: force the lazy-loaded page to render fully, extract
// every visible listing card, click through to the next page until the
// pagination control runs out.
type Scraper struct {
	cfg    *config.Config
	logger *utils.Logger
	retry  *utils.Backoff
	seen   *utils.URLSet
	query  string
}

// New creates a ready-to-use browser Scraper. The search query string is
// built once from the configured filters and reused for every domain.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:    cfg,
		logger: logger,
		retry: &utils.Backoff{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			MaxDelay:    30 * time.Second,
			Logger:      logger,
		},
		seen:  utils.NewURLSet(),
		query: BuildQuery(cfg.SearchFilters()),
	}
}

// Run harvests every configured frontend domain through one shared browser
// session. The browser process is released on every exit path via the
// deferred cancels. A failed domain contributes zero records and never
// aborts the batch.
func (s *Scraper) Run() []*models.Listing {
	s.logger.Info("[frontend] Starting browser harvest — %d domains, query: %s",
		len(s.cfg.FrontendDomains), s.query)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), allocatorOptions(s.cfg)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	var all []*models.Listing
	for _, domain := range s.cfg.FrontendDomains {
		records, err := s.Harvest(browserCtx, domain)
		if err != nil {
			s.logger.Error("[frontend] %s — harvest failed: %v — keeping %d records",
				domain, err, len(records))
		} else {
			s.logger.Info("[frontend] %s — harvest complete, %d records", domain, len(records))
		}
		all = append(all, records...)
	}

	s.logger.Info("[frontend] Browser harvest done — total records: %d", len(all))
	return all
}

// Harvest collects every listing card the domain's search UI exposes for the
// configured filters. Partial results survive a mid-run failure.
func (s *Scraper) Harvest(browserCtx context.Context, domain string) ([]*models.Listing, error) {
	if strings.TrimSpace(domain) == "" {
		return nil, fmt.Errorf("frontend: domain name is empty")
	}

	// own tab per domain so one domain's state never bleeds into the next
	ctx, cancel := chromedp.NewContext(browserCtx)
	defer cancel()

	startURL := fmt.Sprintf("https://www.%s/venda?%s", domain, s.query)
	err := s.retry.Do("open-"+domain, func() error {
		navCtx, cancelNav := context.WithTimeout(ctx, 60*time.Second)
		defer cancelNav()
		return chromedp.Run(navCtx,
			chromedp.Navigate(startURL),
			chromedp.Sleep(3*time.Second),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("frontend: open %s: %w", startURL, err)
	}

	var records []*models.Listing
	for page := 1; page <= s.cfg.MaxPages; page++ {
		s.forceFullRender(ctx, domain)

		cards, err := s.collectCards(ctx)
		if err != nil {
			return records, fmt.Errorf("frontend: %s page %d: collect cards: %w", domain, page, err)
		}
		s.logger.Debug("[frontend] %s — page %d: %d cards", domain, page, len(cards))

		for _, html := range cards {
			rec, err := s.extractCard(domain, html)
			if err != nil {
				s.logger.Warn("[frontend] %s — skipping card: %v", domain, err)
				continue
			}
			if rec.PropertyURL != nil && !s.seen.Add(*rec.PropertyURL) {
				continue
			}
			records = append(records, rec)
		}

		more, err := s.nextPage(ctx)
		if err != nil {
			return records, fmt.Errorf("frontend: %s page %d: paginate: %w", domain, page, err)
		}
		if !more {
			break
		}
	}

	return records, nil
}

// forceFullRender scrolls to the bottom until the document height stops
// growing, so lazy-loaded cards exist in the DOM, then returns to the top.
// The round bound keeps the loop finite on pages that never settle.
func (s *Scraper) forceFullRender(ctx context.Context, domain string) {
	_, stable, err := utils.WaitStable(s.cfg.MaxScrollRounds, 2*time.Second, func() (int64, error) {
		var height int64
		err := chromedp.Run(ctx,
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
			chromedp.Evaluate(`document.body.scrollHeight`, &height),
		)
		return height, err
	})
	if err != nil {
		s.logger.Warn("[frontend] %s — scroll probe failed: %v", domain, err)
		return
	}
	if !stable {
		s.logger.Warn("[frontend] %s — page still growing after %d scroll rounds, extracting anyway",
			domain, s.cfg.MaxScrollRounds)
	}

	if err := chromedp.Run(ctx,
		chromedp.Evaluate(`window.scrollTo(0, 0)`, nil),
		chromedp.Sleep(time.Second),
	); err != nil {
		s.logger.Warn("[frontend] %s — scroll to top failed: %v", domain, err)
	}
}

// collectCards returns the rendered HTML of every listing card on the page.
func (s *Scraper) collectCards(ctx context.Context) ([]string, error) {
	var cards []string
	err := chromedp.Run(ctx, chromedp.Evaluate(
		fmt.Sprintf(`Array.from(document.querySelectorAll('%s')).map(function(el) { return el.outerHTML; })`,
			cardSelector),
		&cards,
	))
	return cards, err
}

// nextPage clicks the "Próximo" pagination control and reports whether a new
// page was reached. A missing or disabled control, or a click that leaves
// the URL unchanged, means the last page and is not an error.
func (s *Scraper) nextPage(ctx context.Context) (bool, error) {
	var oldURL string
	if err := chromedp.Run(ctx, chromedp.Location(&oldURL)); err != nil {
		return false, err
	}

	js := fmt.Sprintf(`(function() {
		var labels = document.querySelectorAll('[class^="building-card-pages_labelText__"]');
		for (var i = 0; i < labels.length; i++) {
			if (labels[i].textContent.trim() !== %q) continue;
			var control = labels[i].closest('button') || labels[i];
			if (control.disabled) return false;
			control.scrollIntoView({block: 'center'});
			control.click();
			return true;
		}
		return false;
	})()`, nextLabel)

	var clicked bool
	if err := chromedp.Run(ctx, chromedp.Evaluate(js, &clicked)); err != nil {
		return false, err
	}
	if !clicked {
		return false, nil
	}

	changed, err := utils.PollUntil(10, 500*time.Millisecond, func() (bool, error) {
		var current string
		if err := chromedp.Run(ctx, chromedp.Location(&current)); err != nil {
			return false, err
		}
		return current != oldURL, nil
	})
	if err != nil {
		return false, err
	}
	if !changed {
		// the control was clickable but the URL stayed put: last page
		return false, nil
	}

	// let the new page settle before the next render pass
	if err := chromedp.Run(ctx, chromedp.Sleep(2*time.Second)); err != nil {
		return false, err
	}
	return true, nil
}
