package frontend

import (
	"testing"

	"imoveis-scraper/models"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"R$ 1.234.567,89", 1234567.89},
		{"R$ 450.000,00", 450000.0},
		{"R$ 980,50", 980.50},
		{"350000", 350000},
	}

	for _, tt := range tests {
		got, err := ParsePrice(tt.raw)
		if err != nil {
			t.Errorf("ParsePrice(%q) returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePrice(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParsePriceInvalid(t *testing.T) {
	for _, raw := range []string{"", "R$ ", "Consulte"} {
		if got, err := ParsePrice(raw); err == nil {
			t.Errorf("ParsePrice(%q) = %v; want error", raw, got)
		}
	}
}

func TestClassifyCharacteristics(t *testing.T) {
	rec := &models.Listing{}
	tokens := []string{"3 quartos", "120 m²", "2 vagas"}

	for _, token := range tokens {
		if !classifyCharacteristic(token, rec) {
			t.Errorf("token %q not classified", token)
		}
	}

	if rec.Bedrooms == nil || *rec.Bedrooms != 3 {
		t.Errorf("bedrooms = %v; want 3", rec.Bedrooms)
	}
	if rec.PrivateAreaM2 == nil || *rec.PrivateAreaM2 != 120.0 {
		t.Errorf("area = %v; want 120.0", rec.PrivateAreaM2)
	}
	if rec.ParkingSpaces == nil || *rec.ParkingSpaces != 2 {
		t.Errorf("parking = %v; want 2", rec.ParkingSpaces)
	}
	if rec.Bathrooms != nil {
		t.Errorf("bathrooms = %d; want nil", *rec.Bathrooms)
	}
}

func TestClassifyCharacteristicCaseAndUnknown(t *testing.T) {
	rec := &models.Listing{}

	if !classifyCharacteristic("2 Banheiros", rec) {
		t.Error("keyword match should be case-insensitive")
	}
	if rec.Bathrooms == nil || *rec.Bathrooms != 2 {
		t.Errorf("bathrooms = %v; want 2", rec.Bathrooms)
	}

	if classifyCharacteristic("piscina", rec) {
		t.Error("unknown token must not match any rule")
	}
}

func TestClassifyCharacteristicBadNumeral(t *testing.T) {
	rec := &models.Listing{}

	if !classifyCharacteristic("vários quartos", rec) {
		t.Error("token with keyword should still match")
	}
	if rec.Bedrooms != nil {
		t.Errorf("bedrooms = %d; want nil for non-numeric count", *rec.Bedrooms)
	}
}
