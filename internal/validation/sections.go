package validation

import (
	"fmt"
	"time"

	"github.com/example/annex7/internal/models"
)

// Section validators check an incoming section payload against its own
// format rules. A Started section validates only the fields it provides; a
// Complete section requires every field. All violations are returned, not
// just the first.

// WasteDescriptionSection validates a proposed waste-description section.
func WasteDescriptionSection(s models.WasteDescriptionSection, ref models.RefSnapshot) []models.FieldError {
	var errs []models.FieldError
	if !s.Status.HasPayload() {
		return nil
	}

	complete := s.Status == models.StatusComplete

	if s.WasteCode == nil {
		if complete {
			errs = append(errs, *fieldErr("WasteCode", "choose a waste classification"))
		}
	} else if !s.WasteCode.IsSmall() {
		if _, err := CodeInList("WasteCode", s.WasteCode.Code, ref.WasteCodes[s.WasteCode.Type]); err != nil {
			errs = append(errs, *err)
		}
	} else if s.WasteCode.Code != "" {
		errs = append(errs, *fieldErr("WasteCode", "small waste does not carry a waste code"))
	}

	if len(s.EWCCodes) > MaxEWCCodes {
		errs = append(errs, *fieldErr("EwcCodes", fmt.Sprintf("you can only enter up to %d EWC codes", MaxEWCCodes)))
	}
	for _, code := range s.EWCCodes {
		if _, err := EWCCode("EwcCodes", code, ref.EWCCodes); err != nil {
			errs = append(errs, *err)
		}
	}
	if complete && len(s.EWCCodes) == 0 {
		errs = append(errs, *fieldErr("EwcCodes", "enter at least one EWC code"))
	}

	if s.NationalCode.Provided {
		if _, err := FreeText("NationalCode", s.NationalCode.Value, ReferenceMaxLength); err != nil {
			errs = append(errs, *err)
		}
	}

	if s.Description != "" || complete {
		if _, err := FreeText("WasteDescription", s.Description, DescriptionMaxLength); err != nil {
			errs = append(errs, *err)
		}
	}

	return errs
}

// WasteQuantitySection validates a proposed quantity section.
func WasteQuantitySection(s models.WasteQuantitySection) []models.FieldError {
	var errs []models.FieldError
	if !s.Status.HasPayload() {
		return nil
	}

	if s.Value == nil {
		if s.Status == models.StatusComplete {
			errs = append(errs, *fieldErr("WasteQuantity", "enter a quantity"))
		}
		return errs
	}

	switch s.Value.Unit {
	case models.UnitTonne, models.UnitCubicMetre, models.UnitKilogram, models.UnitLitre:
	default:
		errs = append(errs, *fieldErr("WasteQuantity", fmt.Sprintf("%q is not a valid unit", s.Value.Unit)))
		return errs
	}

	if s.Value.Amount <= 0 {
		errs = append(errs, *fieldErr("WasteQuantity", "the amount must be greater than 0"))
	} else if !s.Value.Unit.BulkUnit() && s.Value.Amount > SmallWasteLimitKg {
		errs = append(errs, *fieldErr("WasteQuantity", fmt.Sprintf("small waste cannot exceed %d", SmallWasteLimitKg)))
	}

	return errs
}

// ExporterDetailSection validates a proposed exporter section.
func ExporterDetailSection(s models.ExporterDetailSection) []models.FieldError {
	if !s.Status.HasPayload() {
		return nil
	}
	complete := s.Status == models.StatusComplete
	var errs []models.FieldError
	errs = append(errs, ukAddressErrors("Exporter", s.Address, complete)...)
	errs = append(errs, contactErrors("Exporter", s.Contact, complete)...)
	return errs
}

// ImporterDetailSection validates a proposed importer section.
func ImporterDetailSection(s models.ImporterDetailSection, countries []string) []models.FieldError {
	if !s.Status.HasPayload() {
		return nil
	}
	complete := s.Status == models.StatusComplete
	var errs []models.FieldError

	if s.Address != "" || complete {
		if _, err := FreeText("ImporterAddress", s.Address, FreeTextMaxLength); err != nil {
			errs = append(errs, *err)
		}
	}
	if s.Country != "" || complete {
		if _, err := Country("ImporterCountry", s.Country, countries); err != nil {
			errs = append(errs, *err)
		}
	}
	errs = append(errs, contactErrors("Importer", s.Contact, complete)...)
	return errs
}

// CollectionDateSection validates a proposed collection-date section.
func CollectionDateSection(s models.CollectionDateSection, today time.Time) []models.FieldError {
	if !s.Status.HasPayload() {
		return nil
	}
	if s.Value == nil {
		if s.Status == models.StatusComplete {
			return []models.FieldError{*fieldErr("CollectionDate", "enter a collection date")}
		}
		return nil
	}
	if !DatePlausible(*s.Value, today) {
		return []models.FieldError{*fieldErr("CollectionDate", "enter a real date that is not in the past")}
	}
	return nil
}

// CarriersSection validates a proposed carriers section.
func CarriersSection(s models.CarriersSection, countries []string) []models.FieldError {
	if !s.Status.HasPayload() {
		return nil
	}
	var errs []models.FieldError
	if len(s.Values) > models.MaxCarriers {
		errs = append(errs, *fieldErr("Carriers", fmt.Sprintf("you can only enter up to %d carriers", models.MaxCarriers)))
	}
	complete := s.Status == models.StatusComplete
	for i, c := range s.Values {
		prefix := fmt.Sprintf("Carrier%d", i+1)
		if c.Address != "" || complete {
			if _, err := FreeText(prefix+"Address", c.Address, FreeTextMaxLength); err != nil {
				errs = append(errs, *err)
			}
		}
		if c.Country != "" || complete {
			if _, err := Country(prefix+"Country", c.Country, countries); err != nil {
				errs = append(errs, *err)
			}
		}
		errs = append(errs, contactErrors(prefix, c.Contact, complete)...)
		if s.Transport {
			if c.Means == "" && complete {
				errs = append(errs, *fieldErr(prefix+"MeansOfTransport", "choose a means of transport"))
			}
		} else if c.Means != "" {
			errs = append(errs, *fieldErr(prefix+"MeansOfTransport", "small waste carriers do not record transport details"))
		}
	}
	if complete && len(s.Values) == 0 {
		errs = append(errs, *fieldErr("Carriers", "enter at least one carrier"))
	}
	return errs
}

// CollectionDetailSection validates a proposed collection-detail section.
func CollectionDetailSection(s models.CollectionDetailSection) []models.FieldError {
	if !s.Status.HasPayload() {
		return nil
	}
	complete := s.Status == models.StatusComplete
	var errs []models.FieldError
	errs = append(errs, ukAddressErrors("Collection", s.Address, complete)...)
	errs = append(errs, contactErrors("Collection", s.Contact, complete)...)
	return errs
}

// ExitLocationSection validates a proposed UK exit location section.
func ExitLocationSection(s models.ExitLocationSection) []models.FieldError {
	if !s.Status.HasPayload() {
		return nil
	}
	if !s.Provided {
		if s.Value != "" {
			return []models.FieldError{*fieldErr("UkExitLocation", "a location cannot be entered when none is provided")}
		}
		return nil
	}
	if s.Value != "" || s.Status == models.StatusComplete {
		if _, err := FreeText("UkExitLocation", s.Value, DescriptionMaxLength); err != nil {
			return []models.FieldError{*err}
		}
	}
	return nil
}

// TransitCountriesSection validates a proposed transit-countries section.
func TransitCountriesSection(s models.TransitCountriesSection, countries []string) []models.FieldError {
	if !s.Status.HasPayload() {
		return nil
	}
	var errs []models.FieldError
	seen := make(map[string]bool)
	for _, c := range s.Values {
		canonical, err := Country("TransitCountries", c, countries)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		if seen[canonical] {
			errs = append(errs, *fieldErr("TransitCountries", fmt.Sprintf("%s appears more than once", canonical)))
		}
		seen[canonical] = true
	}
	return errs
}

// RecoveryFacilitiesSection validates a proposed treatment-site section.
// Completion is a property of the whole list: every stored entry must
// validate, not just the one most recently written.
func RecoveryFacilitiesSection(s models.RecoveryFacilitySection, ref models.RefSnapshot) []models.FieldError {
	if !s.Status.HasPayload() {
		return nil
	}
	complete := s.Status == models.StatusComplete
	var errs []models.FieldError
	for _, f := range s.Values {
		errs = append(errs, Facility(f, complete, ref)...)
	}
	if complete && len(s.Values) == 0 {
		errs = append(errs, *fieldErr("RecoveryFacility", "enter at least one treatment site"))
	}
	return errs
}

// Facility validates one treatment-site entry.
func Facility(f models.RecoveryFacility, complete bool, ref models.RefSnapshot) []models.FieldError {
	var errs []models.FieldError
	prefix := string(f.Type)
	if f.Name != "" || complete {
		if _, err := FreeText(prefix+"Name", f.Name, FreeTextMaxLength); err != nil {
			errs = append(errs, *err)
		}
	}
	if f.Address != "" || complete {
		if _, err := FreeText(prefix+"Address", f.Address, FreeTextMaxLength); err != nil {
			errs = append(errs, *err)
		}
	}
	if f.Country != "" || complete {
		if _, err := Country(prefix+"Country", f.Country, ref.Countries); err != nil {
			errs = append(errs, *err)
		}
	}
	errs = append(errs, contactErrors(prefix, f.Contact, complete)...)

	switch f.Type {
	case models.FacilityLaboratory:
		if f.DisposalCode != "" || complete {
			if _, err := CodeInList(prefix+"DisposalCode", f.DisposalCode, ref.DisposalCodes); err != nil {
				errs = append(errs, *err)
			}
		}
		if f.RecoveryCode != "" {
			errs = append(errs, *fieldErr(prefix+"RecoveryCode", "laboratories carry a disposal code, not a recovery code"))
		}
	default:
		if f.RecoveryCode != "" || complete {
			if _, err := CodeInList(prefix+"RecoveryCode", f.RecoveryCode, ref.RecoveryCodes); err != nil {
				errs = append(errs, *err)
			}
		}
		if f.DisposalCode != "" {
			errs = append(errs, *fieldErr(prefix+"DisposalCode", "only laboratories carry a disposal code"))
		}
	}
	return errs
}

func ukAddressErrors(prefix string, a models.Address, complete bool) []models.FieldError {
	var errs []models.FieldError
	if a.AddressLine1 != "" || complete {
		if _, err := FreeText(prefix+"AddressLine1", a.AddressLine1, FreeTextMaxLength); err != nil {
			errs = append(errs, *err)
		}
	}
	if a.TownOrCity != "" || complete {
		if _, err := FreeText(prefix+"TownOrCity", a.TownOrCity, FreeTextMaxLength); err != nil {
			errs = append(errs, *err)
		}
	}
	if _, err := Postcode(prefix+"Postcode", a.Postcode); err != nil {
		errs = append(errs, *err)
	}
	if a.Country != "" || complete {
		if _, err := FreeText(prefix+"Country", a.Country, FreeTextMaxLength); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}

func contactErrors(prefix string, c models.Contact, complete bool) []models.FieldError {
	var errs []models.FieldError
	if c.OrganisationName != "" || complete {
		if _, err := FreeText(prefix+"OrganisationName", c.OrganisationName, FreeTextMaxLength); err != nil {
			errs = append(errs, *err)
		}
	}
	if c.FullName != "" || complete {
		if _, err := FreeText(prefix+"ContactFullName", c.FullName, FreeTextMaxLength); err != nil {
			errs = append(errs, *err)
		}
	}
	if c.Email != "" || complete {
		if _, err := Email(prefix+"EmailAddress", c.Email); err != nil {
			errs = append(errs, *err)
		}
	}
	if c.Phone != "" || complete {
		if _, err := Phone(prefix+"PhoneNumber", c.Phone); err != nil {
			errs = append(errs, *err)
		}
	}
	if _, err := Fax(prefix+"FaxNumber", c.Fax); err != nil {
		errs = append(errs, *err)
	}
	return errs
}
