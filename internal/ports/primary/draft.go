// Package primary defines the primary ports (driving interfaces) for the
// application: the services the CLI and any other caller consume.
package primary

import (
	"context"

	"github.com/example/annex7/internal/models"
)

// RecordRequest identifies one record by id and owner. Every operation
// carries the owner; identity and ownership mismatches both surface as
// not-found.
type RecordRequest struct {
	ID        string
	AccountID string
}

// CreateDraftRequest opens a new draft declaration.
type CreateDraftRequest struct {
	AccountID string
	Reference string
}

// CreateDraftResponse carries the new draft, or the reference's format
// errors when nothing was created.
type CreateDraftResponse struct {
	Draft  *models.Draft
	Errors []models.FieldError
}

// SetResponse is the outcome of every section setter. Validation errors
// travel here as data, never as Go errors; a non-nil error from a setter
// means not-found or an internal failure.
type SetResponse struct {
	Errors            []models.FieldError
	CombinationErrors []models.CombinationError
}

// OK reports whether the write was accepted and persisted.
func (r SetResponse) OK() bool {
	return len(r.Errors) == 0 && len(r.CombinationErrors) == 0
}

// ListDraftsRequest pages through an account's drafts.
type ListDraftsRequest struct {
	AccountID string
	Order     string
	PageSize  int
	PageToken string
}

// ListDraftsResponse is one page of drafts.
type ListDraftsResponse struct {
	Drafts    []models.Draft
	NextToken string
	Total     int
}

// CancelDraftRequest cancels a draft with a recorded reason.
type CancelDraftRequest struct {
	ID        string
	AccountID string
	Type      models.CancellationType
	Reason    string
}

// CreateCarrierResponse returns the generated identity of a new carrier.
type CreateCarrierResponse struct {
	CarrierID string
}

// SetCarrierRequest updates one carrier in place by its generated id.
type SetCarrierRequest struct {
	ID        string
	AccountID string
	Carrier   models.Carrier
	// Complete marks the carriers section Complete once this write lands;
	// otherwise the section stays Started.
	Complete bool
}

// CreateFacilityRequest appends an empty treatment site of the given type.
type CreateFacilityRequest struct {
	ID        string
	AccountID string
	Type      models.FacilityType
}

// CreateFacilityResponse returns the generated identity of a new site.
type CreateFacilityResponse struct {
	FacilityID string
}

// SetFacilityRequest updates one treatment site in place.
type SetFacilityRequest struct {
	ID        string
	AccountID string
	Facility  models.RecoveryFacility
	Complete  bool
}

// DraftService is the draft workflow engine: one get/set pair per section
// plus sub-item operations for carriers and treatment sites. Every setter
// follows the same contract: validate, load, cascade, cross-validate,
// recompute gates, persist the whole document once.
type DraftService interface {
	CreateDraft(ctx context.Context, req CreateDraftRequest) (*CreateDraftResponse, error)
	GetDraft(ctx context.Context, req RecordRequest) (*models.Draft, error)
	ListDrafts(ctx context.Context, req ListDraftsRequest) (*ListDraftsResponse, error)
	CancelDraft(ctx context.Context, req CancelDraftRequest) error
	DeleteDraft(ctx context.Context, req RecordRequest) error

	GetReference(ctx context.Context, req RecordRequest) (models.CustomerReferenceSection, error)
	SetReference(ctx context.Context, req RecordRequest, value string) (*SetResponse, error)

	GetWasteDescription(ctx context.Context, req RecordRequest) (models.WasteDescriptionSection, error)
	SetWasteDescription(ctx context.Context, req RecordRequest, value models.WasteDescriptionSection) (*SetResponse, error)

	GetWasteQuantity(ctx context.Context, req RecordRequest) (models.WasteQuantitySection, error)
	SetWasteQuantity(ctx context.Context, req RecordRequest, value models.WasteQuantitySection) (*SetResponse, error)

	GetExporterDetail(ctx context.Context, req RecordRequest) (models.ExporterDetailSection, error)
	SetExporterDetail(ctx context.Context, req RecordRequest, value models.ExporterDetailSection) (*SetResponse, error)

	GetImporterDetail(ctx context.Context, req RecordRequest) (models.ImporterDetailSection, error)
	SetImporterDetail(ctx context.Context, req RecordRequest, value models.ImporterDetailSection) (*SetResponse, error)

	GetCollectionDate(ctx context.Context, req RecordRequest) (models.CollectionDateSection, error)
	SetCollectionDate(ctx context.Context, req RecordRequest, value models.CollectionDateSection) (*SetResponse, error)

	GetCarriers(ctx context.Context, req RecordRequest) (models.CarriersSection, error)
	CreateCarrier(ctx context.Context, req RecordRequest) (*CreateCarrierResponse, error)
	SetCarrier(ctx context.Context, req SetCarrierRequest) (*SetResponse, error)
	DeleteCarrier(ctx context.Context, req RecordRequest, carrierID string) error

	GetCollectionDetail(ctx context.Context, req RecordRequest) (models.CollectionDetailSection, error)
	SetCollectionDetail(ctx context.Context, req RecordRequest, value models.CollectionDetailSection) (*SetResponse, error)

	GetExitLocation(ctx context.Context, req RecordRequest) (models.ExitLocationSection, error)
	SetExitLocation(ctx context.Context, req RecordRequest, value models.ExitLocationSection) (*SetResponse, error)

	GetTransitCountries(ctx context.Context, req RecordRequest) (models.TransitCountriesSection, error)
	SetTransitCountries(ctx context.Context, req RecordRequest, values []string) (*SetResponse, error)

	GetRecoveryFacilities(ctx context.Context, req RecordRequest) (models.RecoveryFacilitySection, error)
	CreateRecoveryFacility(ctx context.Context, req CreateFacilityRequest) (*CreateFacilityResponse, error)
	SetRecoveryFacility(ctx context.Context, req SetFacilityRequest) (*SetResponse, error)
	DeleteRecoveryFacility(ctx context.Context, req RecordRequest, facilityID string) error

	GetConfirmation(ctx context.Context, req RecordRequest) (models.ConfirmationSection, error)
	SetConfirmation(ctx context.Context, req RecordRequest, confirmed bool) (*SetResponse, error)

	GetDeclaration(ctx context.Context, req RecordRequest) (models.DeclarationSection, error)
	// SetDeclaration signs the declaration. A successful write finalises
	// the draft: the submission projection is created and the draft is
	// deleted in the same logical operation.
	SetDeclaration(ctx context.Context, req RecordRequest) (*SetResponse, error)
}
