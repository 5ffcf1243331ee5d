package draft

import (
	"time"

	"github.com/example/annex7/internal/models"
)

// New returns the initial state of a draft declaration. Every section starts
// NotStarted except the gated ones: recovery facilities wait for a waste
// classification, confirmation and declaration wait for full completeness.
// The reference must already have passed format validation.
func New(id, accountID, reference string, now time.Time) models.Draft {
	ref := models.CustomerReferenceSection{Status: models.StatusNotStarted}
	if reference != "" {
		ref = models.CustomerReferenceSection{
			Status: models.StatusComplete,
			Value:  reference,
		}
	}

	return models.Draft{
		ID:                     id,
		AccountID:              accountID,
		Reference:              ref,
		WasteDescription:       models.WasteDescriptionSection{Status: models.StatusNotStarted},
		WasteQuantity:          models.WasteQuantitySection{Status: models.StatusCannotStart},
		ExporterDetail:         models.ExporterDetailSection{Status: models.StatusNotStarted},
		ImporterDetail:         models.ImporterDetailSection{Status: models.StatusNotStarted},
		CollectionDate:         models.CollectionDateSection{Status: models.StatusNotStarted},
		Carriers:               models.CarriersSection{Status: models.StatusNotStarted},
		CollectionDetail:       models.CollectionDetailSection{Status: models.StatusNotStarted},
		UKExitLocation:         models.ExitLocationSection{Status: models.StatusNotStarted},
		TransitCountries:       models.TransitCountriesSection{Status: models.StatusNotStarted},
		RecoveryFacilityDetail: models.RecoveryFacilitySection{Status: models.StatusCannotStart},
		Confirmation:           models.ConfirmationSection{Status: models.StatusCannotStart},
		Declaration:            models.DeclarationSection{Status: models.StatusCannotStart},
		State: models.LifecycleState{
			Status:    models.LifecycleInProgress,
			Timestamp: now,
		},
	}
}
