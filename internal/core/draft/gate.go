package draft

import "github.com/example/annex7/internal/models"

// RecomputeGates re-derives the confirmation and declaration statuses from
// the content sections. Called after every section write, before persisting.
//
// Confirmation is reachable (NotStarted) only when every content section is
// Complete; declaration is reachable only once confirmation is Complete. A
// content section moving away from Complete therefore wipes both on the very
// next save.
func RecomputeGates(d models.Draft) models.Draft {
	if !d.ContentComplete() {
		d.Confirmation = models.ConfirmationSection{Status: models.StatusCannotStart}
		d.Declaration = models.DeclarationSection{Status: models.StatusCannotStart}
		return d
	}

	if d.Confirmation.Status == models.StatusCannotStart {
		d.Confirmation = models.ConfirmationSection{Status: models.StatusNotStarted}
	}

	if d.Confirmation.Status != models.StatusComplete {
		d.Declaration = models.DeclarationSection{Status: models.StatusCannotStart}
	} else if d.Declaration.Status == models.StatusCannotStart {
		d.Declaration = models.DeclarationSection{Status: models.StatusNotStarted}
	}

	return d
}

// ResetGates wipes confirmation and declaration before re-deriving them.
// Content-section writes go through here: even an edit that keeps every
// section Complete invalidates a previously given confirmation, so the gate
// reopens at NotStarted rather than surviving as Complete.
func ResetGates(d models.Draft) models.Draft {
	d.Confirmation = models.ConfirmationSection{Status: models.StatusCannotStart}
	d.Declaration = models.DeclarationSection{Status: models.StatusCannotStart}
	return RecomputeGates(d)
}

// TransportRequired derives the carriers section's transport flag from the
// committed classification. Bulk waste travels with carriers; small waste is
// exempt. An uncommitted classification defaults to no transport.
func TransportRequired(code *models.WasteCode) bool {
	return code != nil && !code.IsSmall()
}

// QuantityUnitCompatible checks the stored classification against a
// quantity's unit. Re-applied every time quantity is written, not only on
// cascade, because the same value may be re-submitted after the
// classification changed.
func QuantityUnitCompatible(code *models.WasteCode, q models.WasteQuantity) *models.CombinationError {
	if code == nil {
		return nil
	}
	if code.IsSmall() && q.Unit.BulkUnit() {
		return &models.CombinationError{
			Fields:  []string{"WasteDescription", "WasteQuantity"},
			Message: "small waste must be measured in kilograms or litres",
		}
	}
	if !code.IsSmall() && !q.Unit.BulkUnit() {
		return &models.CombinationError{
			Fields:  []string{"WasteDescription", "WasteQuantity"},
			Message: "bulk waste must be measured in tonnes or cubic metres",
		}
	}
	return nil
}

// ImporterTransitCompatible checks that the importer's country does not also
// appear in the transit-country list.
func ImporterTransitCompatible(importerCountry string, transit []string) *models.CombinationError {
	for _, c := range transit {
		if c == importerCountry {
			return &models.CombinationError{
				Fields:  []string{"ImporterDetail", "TransitCountries"},
				Message: "the importer country cannot also be a transit country",
			}
		}
	}
	return nil
}
