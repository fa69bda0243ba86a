package frontend

import (
	"testing"

	"imoveis-scraper/config"
	"imoveis-scraper/utils"
)

func newTestScraper() *Scraper {
	return New(&config.Config{MaxRetries: 1}, utils.NewLogger(false))
}

const sampleCard = `<div itemtype="https://schema.org/Apartment">
  <div class="vertical-property-card_neighborhood__a1b2c">Centro</div>
  <div class="vertical-property-card_fullAddress__d3e4f">Rua Marechal Floriano, 1250</div>
  <span class="contracts_typeOfAgreement__g5h6i">Venda</span>
  <span class="contracts_priceNumber__j7k8l">R$ 450.000,00</span>
  <div class="carousel-card_exclusivity__m9n0o">Exclusividade</div>
  <div class="vertical-property-card_characteristics__p1q2r">
    <span>3 quartos</span>
    <span>2 banheiros</span>
    <span>120 m²</span>
    <span>2 vagas</span>
    <span>piscina</span>
  </div>
  <span class="card-buttons_code__s3t4u">Cód. 8421</span>
</div>`

func TestExtractCard(t *testing.T) {
	s := newTestScraper()

	rec, err := s.extractCard("example.com.br", sampleCard)
	if err != nil {
		t.Fatalf("extractCard: %v", err)
	}

	if rec.Domain != "example.com.br" {
		t.Errorf("domain = %q", rec.Domain)
	}
	if rec.ID == nil || *rec.ID != "8421" {
		t.Errorf("id = %v; want 8421", rec.ID)
	}
	if rec.PropertyURL == nil || *rec.PropertyURL != "https://www.example.com.br/imovel/8421" {
		t.Errorf("property URL = %v", rec.PropertyURL)
	}
	if rec.Neighborhood == nil || *rec.Neighborhood != "Centro" {
		t.Errorf("neighborhood = %v; want Centro", rec.Neighborhood)
	}
	if rec.Address == nil || *rec.Address != "Rua Marechal Floriano, 1250" {
		t.Errorf("address = %v", rec.Address)
	}
	if rec.DealType == nil || *rec.DealType != "Venda" {
		t.Errorf("deal type = %v; want Venda", rec.DealType)
	}
	if rec.Price == nil || *rec.Price != 450000.0 {
		t.Errorf("price = %v; want 450000.0", rec.Price)
	}
	if rec.Exclusivity == nil || *rec.Exclusivity != "Sim" {
		t.Errorf("exclusivity = %v; want Sim", rec.Exclusivity)
	}
	if rec.Bedrooms == nil || *rec.Bedrooms != 3 {
		t.Errorf("bedrooms = %v; want 3", rec.Bedrooms)
	}
	if rec.Bathrooms == nil || *rec.Bathrooms != 2 {
		t.Errorf("bathrooms = %v; want 2", rec.Bathrooms)
	}
	if rec.PrivateAreaM2 == nil || *rec.PrivateAreaM2 != 120.0 {
		t.Errorf("area = %v; want 120.0", rec.PrivateAreaM2)
	}
	if rec.ParkingSpaces == nil || *rec.ParkingSpaces != 2 {
		t.Errorf("parking = %v; want 2", rec.ParkingSpaces)
	}
}

func TestExtractCardNoExclusivityMarker(t *testing.T) {
	s := newTestScraper()
	card := `<div itemtype="https://schema.org/Apartment">
	  <span class="card-buttons_code__x1y2z">Cód. 15</span>
	</div>`

	rec, err := s.extractCard("example.com.br", card)
	if err != nil {
		t.Fatalf("extractCard: %v", err)
	}
	if rec.Exclusivity == nil || *rec.Exclusivity != "Não" {
		t.Errorf("exclusivity = %v; want Não when the marker is absent", rec.Exclusivity)
	}
}

func TestExtractCardMissingOptionalFields(t *testing.T) {
	s := newTestScraper()
	card := `<div itemtype="https://schema.org/Apartment">
	  <span class="card-buttons_code__x1y2z">Cód. 42</span>
	</div>`

	rec, err := s.extractCard("example.com.br", card)
	if err != nil {
		t.Fatalf("extractCard: %v", err)
	}
	if rec.Neighborhood != nil || rec.Address != nil || rec.Price != nil ||
		rec.Bedrooms != nil || rec.Bathrooms != nil || rec.ParkingSpaces != nil ||
		rec.PrivateAreaM2 != nil {
		t.Error("missing card elements must degrade to nil fields")
	}
}

func TestExtractCardMissingCode(t *testing.T) {
	s := newTestScraper()
	card := `<div itemtype="https://schema.org/Apartment">
	  <div class="vertical-property-card_neighborhood__a1b2c">Centro</div>
	</div>`

	if _, err := s.extractCard("example.com.br", card); err == nil {
		t.Error("expected an error for a card without a code badge")
	}
}

func TestExtractCardUnparseablePrice(t *testing.T) {
	s := newTestScraper()
	card := `<div itemtype="https://schema.org/Apartment">
	  <span class="contracts_priceNumber__j7k8l">Sob consulta</span>
	  <span class="card-buttons_code__s3t4u">Cód. 77</span>
	</div>`

	rec, err := s.extractCard("example.com.br", card)
	if err != nil {
		t.Fatalf("extractCard: %v", err)
	}
	if rec.Price != nil {
		t.Errorf("price = %v; want nil for unparseable text", *rec.Price)
	}
}
