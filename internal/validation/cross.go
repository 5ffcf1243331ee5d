package validation

import "github.com/example/annex7/internal/models"

// Cross-section validators run only after every field group on a row has
// validated independently. Each reports the two field groups in conflict.

// CrossWasteQuantity checks unit and category compatibility between the
// waste description and the quantity, including the laboratory rule: a
// NotApplicable (laboratory) classification implies small-waste units.
func CrossWasteQuantity(waste models.WasteDescription, quantity models.WasteQuantity) *models.CombinationError {
	small := waste.WasteCode.IsSmall()
	if small && quantity.Unit.BulkUnit() {
		return &models.CombinationError{
			Fields:  []string{"WasteDescription", "WasteQuantity"},
			Message: "laboratory waste must be measured in kilograms or litres",
		}
	}
	if !small && !quantity.Unit.BulkUnit() {
		return &models.CombinationError{
			Fields:  []string{"WasteDescription", "WasteQuantity"},
			Message: "bulk waste must be measured in tonnes or cubic metres",
		}
	}
	return nil
}

// CrossImporterTransit checks that the importer's country does not also
// appear in the transit chain.
func CrossImporterTransit(importer models.ImporterDetail, transit []string) *models.CombinationError {
	for _, c := range transit {
		if c == importer.Country {
			return &models.CombinationError{
				Fields:  []string{"ImporterDetail", "TransitCountries"},
				Message: "the importer country cannot also be a transit country",
			}
		}
	}
	return nil
}
