package validation

import (
	"testing"
	"time"

	"github.com/example/annex7/internal/models"
)

func testSnapshot() models.RefSnapshot {
	return models.RefSnapshot{
		WasteCodes: map[models.WasteCodeType][]models.CodeEntry{
			models.WasteCodeBaselAnnexIX: {{Code: "B1010"}, {Code: "B1030"}},
			models.WasteCodeOECD:         {{Code: "GB040"}},
		},
		EWCCodes:        []models.CodeEntry{{Code: "010101"}, {Code: "200139"}},
		Countries:       []string{"France", "Belgium", "Germany"},
		CountriesWithUK: []string{"United Kingdom", "France", "Belgium", "Germany"},
		RecoveryCodes:   []models.CodeEntry{{Code: "R1"}, {Code: "R4"}},
		DisposalCodes:   []models.CodeEntry{{Code: "D1"}, {Code: "D10"}},
	}
}

func TestWasteDescriptionSection(t *testing.T) {
	ref := testSnapshot()

	tests := []struct {
		name     string
		section  models.WasteDescriptionSection
		wantErrs int
	}{
		{
			name:    "not started carries no payload",
			section: models.WasteDescriptionSection{Status: models.StatusNotStarted},
		},
		{
			name: "complete bulk section",
			section: models.WasteDescriptionSection{
				Status:      models.StatusComplete,
				WasteCode:   &models.WasteCode{Type: models.WasteCodeBaselAnnexIX, Code: "B1010"},
				EWCCodes:    []string{"010101"},
				Description: "metal scrap",
			},
		},
		{
			name: "complete small section without code",
			section: models.WasteDescriptionSection{
				Status:      models.StatusComplete,
				WasteCode:   &models.WasteCode{Type: models.WasteCodeNotApplicable},
				EWCCodes:    []string{"010101"},
				Description: "lab sample",
			},
		},
		{
			name: "small section carrying a code",
			section: models.WasteDescriptionSection{
				Status:      models.StatusComplete,
				WasteCode:   &models.WasteCode{Type: models.WasteCodeNotApplicable, Code: "B1010"},
				EWCCodes:    []string{"010101"},
				Description: "lab sample",
			},
			wantErrs: 1,
		},
		{
			name: "unknown bulk code",
			section: models.WasteDescriptionSection{
				Status:      models.StatusComplete,
				WasteCode:   &models.WasteCode{Type: models.WasteCodeBaselAnnexIX, Code: "B9999"},
				EWCCodes:    []string{"010101"},
				Description: "metal scrap",
			},
			wantErrs: 1,
		},
		{
			name: "complete without classification or codes",
			section: models.WasteDescriptionSection{
				Status:      models.StatusComplete,
				Description: "metal scrap",
			},
			wantErrs: 2,
		},
		{
			name: "started validates only provided fields",
			section: models.WasteDescriptionSection{
				Status:   models.StatusStarted,
				EWCCodes: []string{"010101"},
			},
		},
		{
			name: "too many EWC codes",
			section: models.WasteDescriptionSection{
				Status:      models.StatusComplete,
				WasteCode:   &models.WasteCode{Type: models.WasteCodeBaselAnnexIX, Code: "B1010"},
				EWCCodes:    []string{"010101", "200139", "010101", "200139", "010101", "200139"},
				Description: "metal scrap",
			},
			wantErrs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := WasteDescriptionSection(tt.section, ref)
			if len(errs) != tt.wantErrs {
				t.Errorf("got %d errors %v, want %d", len(errs), errs, tt.wantErrs)
			}
		})
	}
}

func TestWasteQuantitySection(t *testing.T) {
	tests := []struct {
		name     string
		section  models.WasteQuantitySection
		wantErrs int
	}{
		{
			name:    "no payload",
			section: models.WasteQuantitySection{Status: models.StatusCannotStart},
		},
		{
			name: "valid bulk quantity",
			section: models.WasteQuantitySection{
				Status: models.StatusComplete,
				Value:  &models.WasteQuantity{Unit: models.UnitTonne, Amount: 10},
			},
		},
		{
			name: "small quantity over limit",
			section: models.WasteQuantitySection{
				Status: models.StatusComplete,
				Value:  &models.WasteQuantity{Unit: models.UnitKilogram, Amount: 26},
			},
			wantErrs: 1,
		},
		{
			name: "unknown unit",
			section: models.WasteQuantitySection{
				Status: models.StatusComplete,
				Value:  &models.WasteQuantity{Unit: "Bushel", Amount: 1},
			},
			wantErrs: 1,
		},
		{
			name: "zero amount",
			section: models.WasteQuantitySection{
				Status: models.StatusStarted,
				Value:  &models.WasteQuantity{Unit: models.UnitTonne, Amount: 0},
			},
			wantErrs: 1,
		},
		{
			name:     "complete without a value",
			section:  models.WasteQuantitySection{Status: models.StatusComplete},
			wantErrs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := WasteQuantitySection(tt.section)
			if len(errs) != tt.wantErrs {
				t.Errorf("got %d errors %v, want %d", len(errs), errs, tt.wantErrs)
			}
		})
	}
}

func validContact(prefix string) models.Contact {
	return models.Contact{
		OrganisationName: prefix + " Ltd",
		FullName:         "Jo Field",
		Email:            "jo@example.com",
		Phone:            "+44 20 7946 0958",
	}
}

func TestExporterDetailSection(t *testing.T) {
	complete := models.ExporterDetailSection{
		Status: models.StatusComplete,
		Address: models.Address{
			AddressLine1: "1 Quay Street",
			TownOrCity:   "Hull",
			Postcode:     "HU1 1AA",
			Country:      "England",
		},
		Contact: validContact("Exports"),
	}
	if errs := ExporterDetailSection(complete); len(errs) != 0 {
		t.Errorf("valid complete section rejected: %v", errs)
	}

	missing := models.ExporterDetailSection{Status: models.StatusComplete}
	if errs := ExporterDetailSection(missing); len(errs) == 0 {
		t.Error("empty complete section should fail")
	}

	started := models.ExporterDetailSection{
		Status:  models.StatusStarted,
		Address: models.Address{AddressLine1: "1 Quay Street"},
	}
	if errs := ExporterDetailSection(started); len(errs) != 0 {
		t.Errorf("partial started section rejected: %v", errs)
	}

	badPostcode := started
	badPostcode.Address.Postcode = "XYZ"
	if errs := ExporterDetailSection(badPostcode); len(errs) != 1 {
		t.Errorf("bad postcode should fail even when started: %v", errs)
	}
}

func TestCollectionDateSection(t *testing.T) {
	today := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	ok := models.CollectionDateSection{
		Status: models.StatusComplete,
		Value:  &models.CollectionDate{Day: 1, Month: 7, Year: 2025},
	}
	if errs := CollectionDateSection(ok, today); len(errs) != 0 {
		t.Errorf("future date rejected: %v", errs)
	}

	past := models.CollectionDateSection{
		Status: models.StatusComplete,
		Value:  &models.CollectionDate{Day: 1, Month: 5, Year: 2025},
	}
	if errs := CollectionDateSection(past, today); len(errs) != 1 {
		t.Errorf("past date should fail: %v", errs)
	}

	empty := models.CollectionDateSection{Status: models.StatusComplete}
	if errs := CollectionDateSection(empty, today); len(errs) != 1 {
		t.Errorf("complete without a date should fail: %v", errs)
	}
}

func TestCarriersSection(t *testing.T) {
	countries := testSnapshot().CountriesWithUK

	carrier := models.Carrier{
		ID:      "c-1",
		Address: "2 Dock Road",
		Country: "France",
		Contact: validContact("Haulage"),
		Means:   models.TransportRoad,
	}

	valid := models.CarriersSection{
		Status:    models.StatusComplete,
		Transport: true,
		Values:    []models.Carrier{carrier},
	}
	if errs := CarriersSection(valid, countries); len(errs) != 0 {
		t.Errorf("valid section rejected: %v", errs)
	}

	noMeans := valid
	noMeans.Values = []models.Carrier{{
		ID: "c-1", Address: "2 Dock Road", Country: "France", Contact: validContact("Haulage"),
	}}
	if errs := CarriersSection(noMeans, countries); len(errs) != 1 {
		t.Errorf("missing transport means should fail a complete section: %v", errs)
	}

	smallWithMeans := models.CarriersSection{
		Status:    models.StatusComplete,
		Transport: false,
		Values:    []models.Carrier{carrier},
	}
	if errs := CarriersSection(smallWithMeans, countries); len(errs) != 1 {
		t.Errorf("transport details on small waste should fail: %v", errs)
	}

	emptyComplete := models.CarriersSection{Status: models.StatusComplete, Transport: true}
	if errs := CarriersSection(emptyComplete, countries); len(errs) != 1 {
		t.Errorf("complete with no carriers should fail: %v", errs)
	}
}

func TestExitLocationSection(t *testing.T) {
	provided := models.ExitLocationSection{
		Status:   models.StatusComplete,
		Provided: true,
		Value:    "Port of Dover",
	}
	if errs := ExitLocationSection(provided); len(errs) != 0 {
		t.Errorf("valid section rejected: %v", errs)
	}

	notProvided := models.ExitLocationSection{Status: models.StatusComplete}
	if errs := ExitLocationSection(notProvided); len(errs) != 0 {
		t.Errorf("not-provided section should be fine: %v", errs)
	}

	contradiction := models.ExitLocationSection{
		Status: models.StatusComplete,
		Value:  "Dover",
	}
	if errs := ExitLocationSection(contradiction); len(errs) != 1 {
		t.Errorf("value without provided flag should fail: %v", errs)
	}

	providedEmpty := models.ExitLocationSection{Status: models.StatusComplete, Provided: true}
	if errs := ExitLocationSection(providedEmpty); len(errs) != 1 {
		t.Errorf("provided with no value should fail when complete: %v", errs)
	}
}

func TestTransitCountriesSection(t *testing.T) {
	countries := testSnapshot().Countries

	ok := models.TransitCountriesSection{
		Status: models.StatusComplete,
		Values: []string{"France", "Belgium"},
	}
	if errs := TransitCountriesSection(ok, countries); len(errs) != 0 {
		t.Errorf("valid section rejected: %v", errs)
	}

	duplicate := models.TransitCountriesSection{
		Status: models.StatusComplete,
		Values: []string{"France", "france"},
	}
	if errs := TransitCountriesSection(duplicate, countries); len(errs) != 1 {
		t.Errorf("case-insensitive duplicate should fail: %v", errs)
	}

	unknown := models.TransitCountriesSection{
		Status: models.StatusComplete,
		Values: []string{"Atlantis"},
	}
	if errs := TransitCountriesSection(unknown, countries); len(errs) != 1 {
		t.Errorf("unknown country should fail: %v", errs)
	}
}

func TestFacility(t *testing.T) {
	ref := testSnapshot()

	recovery := models.RecoveryFacility{
		ID:           "f-1",
		Type:         models.FacilityRecoveryFacility,
		Name:         "Recycle SA",
		Address:      "3 Rue des Usines",
		Country:      "France",
		Contact:      validContact("Recycle"),
		RecoveryCode: "R4",
	}
	if errs := Facility(recovery, true, ref); len(errs) != 0 {
		t.Errorf("valid recovery facility rejected: %v", errs)
	}

	lab := models.RecoveryFacility{
		ID:           "f-2",
		Type:         models.FacilityLaboratory,
		Name:         "Lab GmbH",
		Address:      "4 Labstrasse",
		Country:      "Germany",
		Contact:      validContact("Lab"),
		DisposalCode: "D10",
	}
	if errs := Facility(lab, true, ref); len(errs) != 0 {
		t.Errorf("valid laboratory rejected: %v", errs)
	}

	labWithRecovery := lab
	labWithRecovery.RecoveryCode = "R1"
	if errs := Facility(labWithRecovery, true, ref); len(errs) != 1 {
		t.Errorf("laboratory with a recovery code should fail: %v", errs)
	}

	recoveryWithDisposal := recovery
	recoveryWithDisposal.DisposalCode = "D1"
	if errs := Facility(recoveryWithDisposal, true, ref); len(errs) != 1 {
		t.Errorf("recovery facility with a disposal code should fail: %v", errs)
	}

	partial := models.RecoveryFacility{Type: models.FacilityRecoveryFacility, Name: "Recycle SA"}
	if errs := Facility(partial, false, ref); len(errs) != 0 {
		t.Errorf("partial incomplete facility rejected: %v", errs)
	}
}
