package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/annex7/internal/models"
)

// HeaderRowCount is the number of non-data rows at the top of an uploaded
// file. Reported row numbers are offset by it so they match what the user
// sees in their spreadsheet.
const HeaderRowCount = 2

// Row runs every field-group validator on one bulk row, accumulating all
// field errors, then - only when every group validated - the cross-section
// validators. It returns either a fully typed declaration or the complete
// set of violations for the row.
func Row(row models.BulkRow, ref models.RefSnapshot, today time.Time) (models.DeclarationData, []models.FieldError, []models.CombinationError) {
	var errs []models.FieldError
	collect := func(es []models.FieldError) {
		errs = append(errs, es...)
	}

	reference, es := rowReference(row)
	collect(es)
	waste, es := rowWasteDescription(row, ref)
	collect(es)
	quantity, es := rowQuantity(row)
	collect(es)
	exporter, es := rowExporter(row)
	collect(es)
	importer, es := rowImporter(row, ref.Countries)
	collect(es)
	date, es := rowCollectionDate(row, today)
	collect(es)
	carriers, es := rowCarriers(row, ref.CountriesWithUK)
	collect(es)
	collection, es := rowCollectionDetail(row)
	collect(es)
	exit, es := rowExitLocation(row)
	collect(es)
	transit, es := rowTransitCountries(row, ref.Countries)
	collect(es)

	if len(errs) > 0 {
		return models.DeclarationData{}, errs, nil
	}

	var combo []models.CombinationError
	if ce := CrossWasteQuantity(waste, quantity); ce != nil {
		combo = append(combo, *ce)
	}
	if ce := CrossImporterTransit(importer, transit); ce != nil {
		combo = append(combo, *ce)
	}
	if len(combo) > 0 {
		return models.DeclarationData{}, nil, combo
	}

	return models.DeclarationData{
		Reference:        reference,
		WasteDescription: waste,
		WasteQuantity:    quantity,
		ExporterDetail:   exporter,
		ImporterDetail:   importer,
		CollectionDate:   date,
		Carriers:         carriers,
		CollectionDetail: collection,
		UKExitLocation:   exit,
		TransitCountries: transit,
	}, nil, nil
}

func rowReference(row models.BulkRow) (string, []models.FieldError) {
	ref, err := Reference(row.Reference)
	if err != nil {
		return "", []models.FieldError{*err}
	}
	return ref, nil
}

func rowWasteDescription(row models.BulkRow, ref models.RefSnapshot) (models.WasteDescription, []models.FieldError) {
	var errs []models.FieldError
	var out models.WasteDescription

	type codeColumn struct {
		field string
		value string
		kind  models.WasteCodeType
	}
	columns := []codeColumn{
		{"BaselAnnexIXCode", row.BaselAnnexIXCode, models.WasteCodeBaselAnnexIX},
		{"OecdCode", row.OECDCode, models.WasteCodeOECD},
		{"AnnexIIIACode", row.AnnexIIIACode, models.WasteCodeAnnexIIIA},
		{"AnnexIIIBCode", row.AnnexIIIBCode, models.WasteCodeAnnexIIIB},
	}

	var provided []codeColumn
	for _, c := range columns {
		if strings.TrimSpace(c.value) != "" {
			provided = append(provided, c)
		}
	}

	laboratory := strings.TrimSpace(row.Laboratory) != ""

	switch {
	case len(provided) > 1:
		errs = append(errs, *fieldErr("WasteCode", "enter a code in only one classification column"))
	case len(provided) == 1 && laboratory:
		errs = append(errs, *fieldErr("WasteCode", "a laboratory row cannot also carry a waste code"))
	case len(provided) == 0 && !laboratory:
		errs = append(errs, *fieldErr("WasteCode", "enter a waste code or mark the row as laboratory waste"))
	case laboratory:
		if _, err := YesNo("Laboratory", row.Laboratory); err != nil {
			errs = append(errs, *err)
		} else {
			out.WasteCode = models.WasteCode{Type: models.WasteCodeNotApplicable}
		}
	default:
		c := provided[0]
		code, err := CodeInList(c.field, c.value, ref.WasteCodes[c.kind])
		if err != nil {
			errs = append(errs, *err)
		} else {
			out.WasteCode = models.WasteCode{Type: c.kind, Code: code}
		}
	}

	codes := SplitMulti(row.EWCCodes)
	if len(codes) == 0 {
		errs = append(errs, *fieldErr("EwcCodes", "enter at least one EWC code"))
	}
	if len(codes) > MaxEWCCodes {
		errs = append(errs, *fieldErr("EwcCodes", fmt.Sprintf("you can only enter up to %d EWC codes", MaxEWCCodes)))
	}
	for _, c := range codes {
		code, err := EWCCode("EwcCodes", c, ref.EWCCodes)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		out.EWCCodes = append(out.EWCCodes, code)
	}

	if v := strings.TrimSpace(row.NationalCode); v != "" {
		value, err := FreeText("NationalCode", v, ReferenceMaxLength)
		if err != nil {
			errs = append(errs, *err)
		} else {
			out.NationalCode = models.OptionalString{Provided: true, Value: value}
		}
	}

	desc, err := FreeText("WasteDescription", row.WasteDescription, DescriptionMaxLength)
	if err != nil {
		errs = append(errs, *err)
	}
	out.Description = desc

	return out, errs
}

func rowQuantity(row models.BulkRow) (models.WasteQuantity, []models.FieldError) {
	var errs []models.FieldError
	var out models.WasteQuantity

	type amountColumn struct {
		field string
		value string
		unit  models.QuantityUnit
	}
	columns := []amountColumn{
		{"QuantityTonnes", row.QuantityTonnes, models.UnitTonne},
		{"QuantityCubicMetres", row.QuantityCubicMetres, models.UnitCubicMetre},
		{"QuantityKilograms", row.QuantityKilograms, models.UnitKilogram},
		{"QuantityLitres", row.QuantityLitres, models.UnitLitre},
	}

	var provided []amountColumn
	for _, c := range columns {
		if strings.TrimSpace(c.value) != "" {
			provided = append(provided, c)
		}
	}

	switch len(provided) {
	case 0:
		errs = append(errs, *fieldErr("WasteQuantity", "enter a quantity in one of the amount columns"))
	case 1:
		amount, err := Quantity(provided[0].field, provided[0].value, provided[0].unit)
		if err != nil {
			errs = append(errs, *err)
		} else {
			out.Unit = provided[0].unit
			out.Amount = amount
		}
	default:
		errs = append(errs, *fieldErr("WasteQuantity", "enter a quantity in only one amount column"))
	}

	estimate, err := EstimateFlag("EstimatedOrActualQuantity", row.EstimatedOrActualQuantity)
	if err != nil {
		errs = append(errs, *err)
	}
	out.Estimate = estimate

	return out, errs
}

func rowExporter(row models.BulkRow) (models.ExporterDetail, []models.FieldError) {
	var errs []models.FieldError
	out := models.ExporterDetail{
		Address: models.Address{
			AddressLine1: strings.TrimSpace(row.ExporterAddressLine1),
			AddressLine2: strings.TrimSpace(row.ExporterAddressLine2),
			TownOrCity:   strings.TrimSpace(row.ExporterTownOrCity),
			Postcode:     strings.TrimSpace(row.ExporterPostcode),
			Country:      strings.TrimSpace(row.ExporterCountry),
		},
		Contact: models.Contact{
			OrganisationName: strings.TrimSpace(row.ExporterOrganisationName),
			FullName:         strings.TrimSpace(row.ExporterContactFullName),
			Email:            strings.TrimSpace(row.ExporterEmailAddress),
			Phone:            strings.TrimSpace(row.ExporterContactPhoneNumber),
			Fax:              strings.TrimSpace(row.ExporterFaxNumber),
		},
	}
	errs = append(errs, ukAddressErrors("Exporter", out.Address, true)...)
	errs = append(errs, contactErrors("Exporter", out.Contact, true)...)
	return out, errs
}

func rowImporter(row models.BulkRow, countries []string) (models.ImporterDetail, []models.FieldError) {
	var errs []models.FieldError
	var out models.ImporterDetail

	address, err := FreeText("ImporterAddress", row.ImporterAddress, FreeTextMaxLength)
	if err != nil {
		errs = append(errs, *err)
	}
	out.Address = address

	country, err := Country("ImporterCountry", row.ImporterCountry, countries)
	if err != nil {
		errs = append(errs, *err)
	}
	out.Country = country

	out.Contact = models.Contact{
		OrganisationName: strings.TrimSpace(row.ImporterOrganisationName),
		FullName:         strings.TrimSpace(row.ImporterContactFullName),
		Email:            strings.TrimSpace(row.ImporterEmailAddress),
		Phone:            strings.TrimSpace(row.ImporterContactPhoneNumber),
		Fax:              strings.TrimSpace(row.ImporterFaxNumber),
	}
	errs = append(errs, contactErrors("Importer", out.Contact, true)...)
	return out, errs
}

func rowCollectionDate(row models.BulkRow, today time.Time) (models.CollectionDate, []models.FieldError) {
	var errs []models.FieldError
	var out models.CollectionDate

	raw := strings.TrimSpace(row.CollectionDate)
	parsed := false
	for _, layout := range []string{"02/01/2006", "2/1/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			out.Day, out.Month, out.Year = t.Day(), int(t.Month()), t.Year()
			parsed = true
			break
		}
	}
	if !parsed {
		errs = append(errs, *fieldErr("WasteCollectionDate", "enter the collection date as DD/MM/YYYY"))
	} else if !DatePlausible(out, today) {
		errs = append(errs, *fieldErr("WasteCollectionDate", "the collection date cannot be in the past"))
	}

	estimate, err := EstimateFlag("EstimatedOrActualCollectionDate", row.EstimatedOrActualCollectionDate)
	if err != nil {
		errs = append(errs, *err)
	}
	out.Estimate = estimate

	return out, errs
}

// rowCarriers validates the up-to-five carrier blocks. Transport details
// are required only when the row's classification columns indicate bulk
// waste; the requirement is derived from the raw columns so this validator
// stays independent of the waste-description validator.
func rowCarriers(row models.BulkRow, countries []string) ([]models.Carrier, []models.FieldError) {
	var errs []models.FieldError
	var out []models.Carrier

	transport := rowRequiresTransport(row)

	for i, block := range row.Carriers {
		if block.Empty() {
			continue
		}
		prefix := fmt.Sprintf("Carrier%d", i+1)
		carrier := models.Carrier{
			Address: strings.TrimSpace(block.Address),
			Country: strings.TrimSpace(block.Country),
			Contact: models.Contact{
				OrganisationName: strings.TrimSpace(block.OrganisationName),
				FullName:         strings.TrimSpace(block.ContactFullName),
				Email:            strings.TrimSpace(block.EmailAddress),
				Phone:            strings.TrimSpace(block.ContactPhoneNumber),
				Fax:              strings.TrimSpace(block.FaxNumber),
			},
		}

		if _, err := FreeText(prefix+"Address", carrier.Address, FreeTextMaxLength); err != nil {
			errs = append(errs, *err)
		}
		country, err := Country(prefix+"Country", carrier.Country, countries)
		if err != nil {
			errs = append(errs, *err)
		} else {
			carrier.Country = country
		}
		errs = append(errs, contactErrors(prefix, carrier.Contact, true)...)

		if transport {
			means, err := TransportMeans(prefix+"MeansOfTransport", block.MeansOfTransport)
			if err != nil {
				errs = append(errs, *err)
			} else {
				carrier.Means = means
			}
			carrier.MeansDetails = strings.TrimSpace(block.MeansOfTransportDetails)
			if carrier.MeansDetails != "" {
				if _, err := FreeText(prefix+"MeansOfTransportDetails", carrier.MeansDetails, FreeTextMaxLength); err != nil {
					errs = append(errs, *err)
				}
			}
		} else if strings.TrimSpace(block.MeansOfTransport) != "" {
			errs = append(errs, *fieldErr(prefix+"MeansOfTransport", "small waste carriers do not record transport details"))
		}

		out = append(out, carrier)
	}

	if len(out) == 0 {
		errs = append(errs, *fieldErr("Carriers", "enter at least one carrier"))
	}

	return out, errs
}

// rowRequiresTransport mirrors the cascade rule's transport derivation on
// raw row columns: an absent or laboratory classification means no carrier
// transport is required.
func rowRequiresTransport(row models.BulkRow) bool {
	if strings.TrimSpace(row.Laboratory) != "" {
		return false
	}
	return strings.TrimSpace(row.BaselAnnexIXCode) != "" ||
		strings.TrimSpace(row.OECDCode) != "" ||
		strings.TrimSpace(row.AnnexIIIACode) != "" ||
		strings.TrimSpace(row.AnnexIIIBCode) != ""
}

func rowCollectionDetail(row models.BulkRow) (models.CollectionDetail, []models.FieldError) {
	var errs []models.FieldError
	out := models.CollectionDetail{
		Address: models.Address{
			AddressLine1: strings.TrimSpace(row.CollectionAddressLine1),
			AddressLine2: strings.TrimSpace(row.CollectionAddressLine2),
			TownOrCity:   strings.TrimSpace(row.CollectionTownOrCity),
			Postcode:     strings.TrimSpace(row.CollectionPostcode),
			Country:      strings.TrimSpace(row.CollectionCountry),
		},
		Contact: models.Contact{
			OrganisationName: strings.TrimSpace(row.CollectionOrganisationName),
			FullName:         strings.TrimSpace(row.CollectionContactFullName),
			Email:            strings.TrimSpace(row.CollectionEmailAddress),
			Phone:            strings.TrimSpace(row.CollectionContactPhoneNumber),
			Fax:              strings.TrimSpace(row.CollectionFaxNumber),
		},
	}
	errs = append(errs, ukAddressErrors("Collection", out.Address, true)...)
	errs = append(errs, contactErrors("Collection", out.Contact, true)...)
	return out, errs
}

func rowExitLocation(row models.BulkRow) (models.ExitLocation, []models.FieldError) {
	value := strings.TrimSpace(row.WhereWasteLeavesUK)
	if value == "" {
		return models.ExitLocation{Provided: false}, nil
	}
	if len(value) > DescriptionMaxLength {
		return models.ExitLocation{}, []models.FieldError{
			*fieldErr("WhereWasteLeavesUk", fmt.Sprintf("value must be %d characters or less", DescriptionMaxLength)),
		}
	}
	return models.ExitLocation{Provided: true, Value: value}, nil
}

func rowTransitCountries(row models.BulkRow, countries []string) ([]string, []models.FieldError) {
	var errs []models.FieldError
	var out []string
	seen := make(map[string]bool)
	for _, c := range SplitMulti(row.TransitCountries) {
		canonical, err := Country("TransitCountries", c, countries)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		if seen[canonical] {
			errs = append(errs, *fieldErr("TransitCountries", fmt.Sprintf("%s appears more than once", canonical)))
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	return out, errs
}
