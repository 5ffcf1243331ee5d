package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/example/annex7/internal/models"
)

func TestReference(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"plain reference", "REF-001", "REF-001", false},
		{"trimmed", "  REF-001  ", "REF-001", false},
		{"slashes and underscores", "EXP/2025_01", "EXP/2025_01", false},
		{"empty", "", "", true},
		{"too long", strings.Repeat("A", ReferenceMaxLength+1), "", true},
		{"illegal characters", "REF#001", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reference(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Reference(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Reference(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestPostcode(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"EC1A 1BB", false},
		{"M1 1AE", false},
		{"CF103AT", false},
		{"", false}, // optional
		{"12345", true},
		{"NOT A POSTCODE", true},
	}

	for _, tt := range tests {
		_, err := Postcode("Postcode", tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Postcode(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestEmailAndPhone(t *testing.T) {
	if _, err := Email("Email", "ops@example.com"); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	if _, err := Email("Email", "not-an-email"); err == nil {
		t.Error("invalid email accepted")
	}
	if _, err := Phone("Phone", "+44 20 7946 0958"); err != nil {
		t.Errorf("valid phone rejected: %v", err)
	}
	if _, err := Phone("Phone", "abc"); err == nil {
		t.Error("invalid phone accepted")
	}
	if _, err := Fax("Fax", ""); err != nil {
		t.Error("empty fax should be allowed")
	}
}

func TestCountry_CanonicalisesCase(t *testing.T) {
	countries := []string{"France", "Belgium", "Netherlands"}

	got, err := Country("Country", "fRaNce", countries)
	if err != nil {
		t.Fatalf("Country() error = %v", err)
	}
	if got != "France" {
		t.Errorf("Country() = %q, want canonical %q", got, "France")
	}

	if _, err := Country("Country", "Atlantis", countries); err == nil {
		t.Error("unknown country accepted")
	}
	if _, err := Country("Country", "", countries); err == nil {
		t.Error("empty country accepted")
	}
}

func TestEWCCode(t *testing.T) {
	codes := []models.CodeEntry{{Code: "010101"}, {Code: "200139"}}

	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{"010101", "010101", false},
		{"01 01 01", "010101", false},
		{"010101*", "010101", false},
		{"999999", "", true},
		{"01-01-01", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := EWCCode("EwcCodes", tt.value, codes)
		if (err != nil) != tt.wantErr {
			t.Errorf("EWCCode(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("EWCCode(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDatePlausible(t *testing.T) {
	today := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date models.CollectionDate
		want bool
	}{
		{"today", models.CollectionDate{Day: 15, Month: 6, Year: 2025}, true},
		{"future", models.CollectionDate{Day: 1, Month: 7, Year: 2025}, true},
		{"yesterday", models.CollectionDate{Day: 14, Month: 6, Year: 2025}, false},
		{"nonexistent date", models.CollectionDate{Day: 31, Month: 2, Year: 2026}, false},
		{"month out of range", models.CollectionDate{Day: 1, Month: 13, Year: 2026}, false},
		{"zero day", models.CollectionDate{Day: 0, Month: 6, Year: 2026}, false},
		{"leap day on a leap year", models.CollectionDate{Day: 29, Month: 2, Year: 2028}, true},
		{"leap day on a common year", models.CollectionDate{Day: 29, Month: 2, Year: 2026}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DatePlausible(tt.date, today); got != tt.want {
				t.Errorf("DatePlausible(%+v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		unit    models.QuantityUnit
		want    float64
		wantErr bool
	}{
		{"bulk tonnes", "12.5", models.UnitTonne, 12.5, false},
		{"bulk has no upper bound", "5000", models.UnitCubicMetre, 5000, false},
		{"small under the limit", "24.9", models.UnitKilogram, 24.9, false},
		{"small at the limit", "25", models.UnitLitre, 25, false},
		{"small over the limit", "25.1", models.UnitKilogram, 0, true},
		{"zero", "0", models.UnitTonne, 0, true},
		{"negative", "-1", models.UnitTonne, 0, true},
		{"not a number", "twelve", models.UnitTonne, 0, true},
		{"empty", "", models.UnitTonne, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quantity("Quantity", tt.raw, tt.unit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Quantity(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Quantity(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestYesNoAndEstimateFlag(t *testing.T) {
	if v, err := YesNo("Laboratory", " Yes "); err != nil || !v {
		t.Errorf("YesNo(Yes) = %v, %v", v, err)
	}
	if v, err := YesNo("Laboratory", "no"); err != nil || v {
		t.Errorf("YesNo(no) = %v, %v", v, err)
	}
	if _, err := YesNo("Laboratory", "maybe"); err == nil {
		t.Error("YesNo should reject unknown input")
	}

	if v, err := EstimateFlag("Estimated", "Estimate"); err != nil || !v {
		t.Errorf("EstimateFlag(Estimate) = %v, %v", v, err)
	}
	if v, err := EstimateFlag("Estimated", "actual"); err != nil || v {
		t.Errorf("EstimateFlag(actual) = %v, %v", v, err)
	}
	if _, err := EstimateFlag("Estimated", ""); err == nil {
		t.Error("EstimateFlag should reject empty input")
	}
}

func TestTransportMeans(t *testing.T) {
	tests := []struct {
		value   string
		want    models.TransportMeans
		wantErr bool
	}{
		{"Road", models.TransportRoad, false},
		{"SEA", models.TransportSea, false},
		{"inland waterways", models.TransportInlandWater, false},
		{"InlandWaterways", models.TransportInlandWater, false},
		{"teleport", "", true},
	}

	for _, tt := range tests {
		got, err := TransportMeans("MeansOfTransport", tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("TransportMeans(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("TransportMeans(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestSplitMulti(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"France;Belgium", []string{"France", "Belgium"}},
		{" France ; Belgium ;", []string{"France", "Belgium"}},
		{";;", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := SplitMulti(tt.value)
		if len(got) != len(tt.want) {
			t.Errorf("SplitMulti(%q) = %v, want %v", tt.value, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitMulti(%q)[%d] = %q, want %q", tt.value, i, got[i], tt.want[i])
			}
		}
	}
}
