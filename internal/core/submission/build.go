package submission

import (
	"time"

	"github.com/example/annex7/internal/models"
)

// FinalState determines the lifecycle state a finalised declaration lands
// in: SubmittedWithActuals only when both the collection date and the
// quantity are actual values rather than estimates.
func FinalState(dateEstimate, quantityEstimate bool, now time.Time) models.LifecycleState {
	status := models.LifecycleSubmittedWithActuals
	if dateEstimate || quantityEstimate {
		status = models.LifecycleSubmittedWithEstimates
	}
	return models.LifecycleState{Status: status, Timestamp: now}
}

// Build constructs the immutable submission projection from a draft. It
// returns ok=false unless every content section plus the declaration is
// Complete and the computed lifecycle state is a submitted one; the caller
// then leaves the draft untouched and editable.
func Build(d models.Draft, state models.LifecycleState) (models.Submission, bool) {
	if !d.ContentComplete() || d.Declaration.Status != models.StatusComplete {
		return models.Submission{}, false
	}
	if !state.Status.Submitted() {
		return models.Submission{}, false
	}

	return models.Submission{
		ID:        d.ID,
		AccountID: d.AccountID,
		Reference: d.Reference.Value,
		WasteDescription: models.WasteDescription{
			WasteCode:    *d.WasteDescription.WasteCode,
			EWCCodes:     d.WasteDescription.EWCCodes,
			NationalCode: d.WasteDescription.NationalCode,
			Description:  d.WasteDescription.Description,
		},
		WasteQuantity: *d.WasteQuantity.Value,
		ExporterDetail: models.ExporterDetail{
			Address: d.ExporterDetail.Address,
			Contact: d.ExporterDetail.Contact,
		},
		ImporterDetail: models.ImporterDetail{
			Address: d.ImporterDetail.Address,
			Country: d.ImporterDetail.Country,
			Contact: d.ImporterDetail.Contact,
		},
		CollectionDate: *d.CollectionDate.Value,
		Carriers:       d.Carriers.Values,
		CollectionDetail: models.CollectionDetail{
			Address: d.CollectionDetail.Address,
			Contact: d.CollectionDetail.Contact,
		},
		UKExitLocation: models.ExitLocation{
			Provided: d.UKExitLocation.Provided,
			Value:    d.UKExitLocation.Value,
		},
		TransitCountries: d.TransitCountries.Values,
		Facilities:       d.RecoveryFacilityDetail.Values,
		Declaration:      *d.Declaration.Values,
		State:            state,
	}, true
}
