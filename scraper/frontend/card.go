package frontend

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"imoveis-scraper/models"
)

// The sites build their markup from CSS-module classes whose generated
// suffixes change between deployments; only the prefix is stable. These
// selectors are a versioned contract with the target sites and will need
// updating when the sites redesign.
const (
	classNeighborhood    = "vertical-property-card_neighborhood__"
	classFullAddress     = "vertical-property-card_fullAddress__"
	classTypeOfAgreement = "contracts_typeOfAgreement__"
	classPriceNumber     = "contracts_priceNumber__"
	classExclusivity     = "carousel-card_exclusivity__"
	classCodeBadge       = "card-buttons_code__"
	classCharacteristics = "vertical-property-card_characteristics__"

	codeBadgePrefix = "Cód."
)

func classPrefix(prefix string) string {
	return fmt.Sprintf(`[class^=%q]`, prefix)
}

// extractCard parses one rendered listing card into a normalized record.
// The listing code is the only required field — it derives the id and the
// listing URL; a card without it is skipped by the caller. Every other field
// degrades to nil when its element is missing or unparseable.
func (s *Scraper) extractCard(domain, html string) (*models.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse card html: %w", err)
	}

	badge := elementText(doc, classCodeBadge)
	if badge == nil {
		return nil, fmt.Errorf("card has no code badge")
	}
	id := strings.TrimSpace(strings.TrimPrefix(*badge, codeBadgePrefix))
	if id == "" {
		return nil, fmt.Errorf("card code badge is empty")
	}

	link := fmt.Sprintf("https://www.%s/imovel/%s", domain, id)
	exclusivity := "Não"
	if doc.Find(classPrefix(classExclusivity)).Length() > 0 {
		exclusivity = "Sim"
	}

	rec := &models.Listing{
		Domain:       domain,
		ID:           &id,
		Neighborhood: elementText(doc, classNeighborhood),
		Address:      elementText(doc, classFullAddress),
		DealType:     elementText(doc, classTypeOfAgreement),
		Exclusivity:  &exclusivity,
		PropertyURL:  &link,
		ScrapedAt:    time.Now(),
	}

	if priceText := elementText(doc, classPriceNumber); priceText != nil {
		price, err := ParsePrice(*priceText)
		if err != nil {
			s.logger.Warn("[frontend] %s — unparseable price %q: %v", domain, *priceText, err)
		} else {
			rec.Price = &price
		}
	}

	doc.Find(classPrefix(classCharacteristics)).First().Find("span").Each(func(_ int, sel *goquery.Selection) {
		token := strings.TrimSpace(sel.Text())
		if token == "" {
			return
		}
		if !classifyCharacteristic(token, rec) {
			s.logger.Debug("[frontend] %s — unknown characteristic %q", domain, token)
		}
	})

	return rec, nil
}

// elementText returns the trimmed text of the first element whose class
// starts with prefix, or nil when no such element exists.
func elementText(doc *goquery.Document, prefix string) *string {
	sel := doc.Find(classPrefix(prefix)).First()
	if sel.Length() == 0 {
		return nil
	}
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return nil
	}
	return &text
}
