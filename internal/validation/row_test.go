package validation

import (
	"testing"
	"time"

	"github.com/example/annex7/internal/models"
)

var rowToday = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// validRow returns a bulk row that passes every validator.
func validRow() models.BulkRow {
	return models.BulkRow{
		Reference: "REF-001",

		BaselAnnexIXCode: "B1010",
		EWCCodes:         "010101;200139",
		WasteDescription: "baled aluminium scrap",

		QuantityTonnes:            "12.5",
		EstimatedOrActualQuantity: "Actual",

		ExporterOrganisationName:   "Export Co Ltd",
		ExporterAddressLine1:       "1 Quay Street",
		ExporterTownOrCity:         "Hull",
		ExporterCountry:            "England",
		ExporterPostcode:           "HU1 1AA",
		ExporterContactFullName:    "Jo Field",
		ExporterContactPhoneNumber: "+44 20 7946 0958",
		ExporterEmailAddress:       "jo@example.com",

		ImporterOrganisationName:   "Import SARL",
		ImporterAddress:            "12 Rue du Port, Calais",
		ImporterCountry:            "France",
		ImporterContactFullName:    "Marie Port",
		ImporterContactPhoneNumber: "+33 1 23 45 67 89",
		ImporterEmailAddress:       "marie@example.fr",

		CollectionDate:                  "01/07/2025",
		EstimatedOrActualCollectionDate: "Estimate",

		Carriers: [models.MaxCarriers]models.BulkRowCarrier{
			{
				OrganisationName:   "Haulage Ltd",
				Address:            "2 Dock Road, Hull",
				Country:            "United Kingdom",
				ContactFullName:    "Sam Driver",
				ContactPhoneNumber: "+44 20 7946 0000",
				EmailAddress:       "sam@example.com",
				MeansOfTransport:   "Road",
			},
		},

		CollectionOrganisationName:   "Export Co Ltd",
		CollectionAddressLine1:       "Unit 5, Dock Estate",
		CollectionTownOrCity:         "Hull",
		CollectionCountry:            "England",
		CollectionPostcode:           "HU1 1AB",
		CollectionContactFullName:    "Jo Field",
		CollectionContactPhoneNumber: "+44 20 7946 0958",
		CollectionEmailAddress:       "jo@example.com",

		WhereWasteLeavesUK: "Port of Hull",
		TransitCountries:   "Belgium",
	}
}

func TestRow_ValidRowProducesTypedDeclaration(t *testing.T) {
	data, errs, combo := Row(validRow(), testSnapshot(), rowToday)

	if len(errs) != 0 || len(combo) != 0 {
		t.Fatalf("valid row rejected: %v %v", errs, combo)
	}
	if data.Reference != "REF-001" {
		t.Errorf("reference = %q", data.Reference)
	}
	if data.WasteDescription.WasteCode.Type != models.WasteCodeBaselAnnexIX ||
		data.WasteDescription.WasteCode.Code != "B1010" {
		t.Errorf("waste code = %+v", data.WasteDescription.WasteCode)
	}
	if len(data.WasteDescription.EWCCodes) != 2 {
		t.Errorf("EWC codes = %v", data.WasteDescription.EWCCodes)
	}
	if data.WasteQuantity.Unit != models.UnitTonne || data.WasteQuantity.Amount != 12.5 {
		t.Errorf("quantity = %+v", data.WasteQuantity)
	}
	if data.WasteQuantity.Estimate {
		t.Error("quantity flagged as estimate")
	}
	if !data.CollectionDate.Estimate {
		t.Error("collection date should be an estimate")
	}
	if data.CollectionDate.Day != 1 || data.CollectionDate.Month != 7 || data.CollectionDate.Year != 2025 {
		t.Errorf("collection date = %+v", data.CollectionDate)
	}
	if len(data.Carriers) != 1 || data.Carriers[0].Means != models.TransportRoad {
		t.Errorf("carriers = %+v", data.Carriers)
	}
	if !data.UKExitLocation.Provided || data.UKExitLocation.Value != "Port of Hull" {
		t.Errorf("exit location = %+v", data.UKExitLocation)
	}
	if len(data.TransitCountries) != 1 || data.TransitCountries[0] != "Belgium" {
		t.Errorf("transit countries = %v", data.TransitCountries)
	}
}

func TestRow_LaboratoryRow(t *testing.T) {
	row := validRow()
	row.BaselAnnexIXCode = ""
	row.Laboratory = "Yes"
	row.QuantityTonnes = ""
	row.QuantityKilograms = "20"
	row.Carriers[0].MeansOfTransport = ""

	data, errs, combo := Row(row, testSnapshot(), rowToday)

	if len(errs) != 0 || len(combo) != 0 {
		t.Fatalf("laboratory row rejected: %v %v", errs, combo)
	}
	if data.WasteDescription.WasteCode.Type != models.WasteCodeNotApplicable {
		t.Errorf("waste code = %+v", data.WasteDescription.WasteCode)
	}
	if data.WasteQuantity.Unit != models.UnitKilogram {
		t.Errorf("unit = %v", data.WasteQuantity.Unit)
	}
	if data.Carriers[0].Means != "" {
		t.Errorf("laboratory carriers should carry no transport means: %+v", data.Carriers[0])
	}
}

func TestRow_AccumulatesErrorsAcrossGroups(t *testing.T) {
	row := validRow()
	row.Reference = ""                    // reference group
	row.EWCCodes = ""                     // waste group
	row.QuantityTonnes = "not-a-number"   // quantity group
	row.ImporterCountry = "Atlantis"      // importer group
	row.CollectionDate = "31/02/2026"     // date group
	row.ExporterEmailAddress = "not-mail" // exporter group

	_, errs, combo := Row(row, testSnapshot(), rowToday)

	if len(errs) < 6 {
		t.Errorf("expected at least 6 accumulated errors, got %d: %v", len(errs), errs)
	}
	if combo != nil {
		t.Errorf("cross checks should not run on a row with field errors: %v", combo)
	}
}

func TestRow_ClassificationColumnsAreExclusive(t *testing.T) {
	row := validRow()
	row.OECDCode = "GB040"

	_, errs, _ := Row(row, testSnapshot(), rowToday)

	found := false
	for _, e := range errs {
		if e.Field == "WasteCode" {
			found = true
		}
	}
	if !found {
		t.Errorf("two classification columns should produce a WasteCode error: %v", errs)
	}
}

func TestRow_LaboratoryFlagAndCodeConflict(t *testing.T) {
	row := validRow()
	row.Laboratory = "Yes"

	_, errs, _ := Row(row, testSnapshot(), rowToday)
	if len(errs) == 0 {
		t.Error("laboratory flag plus waste code should be rejected")
	}
}

func TestRow_ExactlyOneAmountColumn(t *testing.T) {
	row := validRow()
	row.QuantityKilograms = "5"

	_, errs, _ := Row(row, testSnapshot(), rowToday)
	if len(errs) == 0 {
		t.Error("two amount columns should be rejected")
	}

	row = validRow()
	row.QuantityTonnes = ""
	_, errs, _ = Row(row, testSnapshot(), rowToday)
	if len(errs) == 0 {
		t.Error("no amount column should be rejected")
	}
}

func TestRow_CrossChecksRunOnlyWhenFieldsClean(t *testing.T) {
	// Bulk classification with a small-waste unit: every field validates,
	// the combination does not.
	row := validRow()
	row.QuantityTonnes = ""
	row.QuantityKilograms = "20"

	_, errs, combo := Row(row, testSnapshot(), rowToday)

	if len(errs) != 0 {
		t.Fatalf("unexpected field errors: %v", errs)
	}
	if len(combo) != 1 {
		t.Fatalf("expected one combination error, got %v", combo)
	}
}

func TestRow_ImporterCountryInTransitChain(t *testing.T) {
	row := validRow()
	row.TransitCountries = "Belgium;France"

	_, errs, combo := Row(row, testSnapshot(), rowToday)

	if len(errs) != 0 {
		t.Fatalf("unexpected field errors: %v", errs)
	}
	if len(combo) != 1 {
		t.Fatalf("expected one combination error, got %v", combo)
	}
}

func TestRow_MissingCarrier(t *testing.T) {
	row := validRow()
	row.Carriers = [models.MaxCarriers]models.BulkRowCarrier{}

	_, errs, _ := Row(row, testSnapshot(), rowToday)
	if len(errs) == 0 {
		t.Error("a row with no carriers should be rejected")
	}
}

func TestRow_TransitCountryDeduplication(t *testing.T) {
	row := validRow()
	row.TransitCountries = "Belgium;belgium"

	_, errs, _ := Row(row, testSnapshot(), rowToday)
	if len(errs) != 1 {
		t.Errorf("case-insensitive duplicate transit country should fail once: %v", errs)
	}
}
