package cascade

import "github.com/example/annex7/internal/models"

// Related bundles the sections a waste-code cascade may touch. Values are
// passed and returned by value; callers keep the originals untouched.
type Related struct {
	Quantity   models.WasteQuantitySection
	Carriers   models.CarriersSection
	Facilities models.RecoveryFacilitySection
}

// Apply runs the cascade for the given change kind and returns the new
// dependent sections.
func Apply(kind ChangeKind, related Related) Related {
	switch kind {
	case ChangeBulkToSmall:
		return reset(related, false)
	case ChangeSmallToBulk, ChangeBulkDifferentType:
		return reset(related, true)
	case ChangeBulkSameType:
		return downgrade(related)
	default:
		return related
	}
}

// reset clears the dependent sections back to NotStarted. Transport records
// whether the new classification requires carrier transport.
func reset(related Related, transport bool) Related {
	related.Quantity = models.WasteQuantitySection{Status: models.StatusNotStarted}
	related.Carriers = models.CarriersSection{
		Status:    models.StatusNotStarted,
		Transport: transport,
	}
	related.Facilities = models.RecoveryFacilitySection{Status: models.StatusNotStarted}
	return related
}

// downgrade preserves payloads but drops Complete sections to Started so
// their content must be re-confirmed against the new code.
func downgrade(related Related) Related {
	if related.Quantity.Status == models.StatusComplete {
		related.Quantity.Status = models.StatusStarted
	}
	if related.Carriers.Status == models.StatusComplete {
		related.Carriers.Status = models.StatusStarted
	}
	if related.Facilities.Status == models.StatusComplete {
		related.Facilities.Status = models.StatusStarted
	}
	return related
}

// ClearBulkFields removes the bulk-only carry fields from a waste
// description. Used on a bulk-to-small change when the section itself is
// still Started: the EWC codes, national code and description were entered
// for a bulk classification and would be carried over stale.
func ClearBulkFields(section models.WasteDescriptionSection) models.WasteDescriptionSection {
	section.EWCCodes = nil
	section.NationalCode = models.OptionalString{}
	section.Description = ""
	return section
}

// OpenQuantity makes the quantity section reachable. Quantity cannot remain
// gated once any waste classification exists.
func OpenQuantity(quantity models.WasteQuantitySection) models.WasteQuantitySection {
	if quantity.Status == models.StatusCannotStart {
		return models.WasteQuantitySection{Status: models.StatusNotStarted}
	}
	return quantity
}

// OpenFacilities makes the recovery-facility section reachable once a
// classification is committed.
func OpenFacilities(facilities models.RecoveryFacilitySection) models.RecoveryFacilitySection {
	if facilities.Status == models.StatusCannotStart {
		return models.RecoveryFacilitySection{Status: models.StatusNotStarted}
	}
	return facilities
}
