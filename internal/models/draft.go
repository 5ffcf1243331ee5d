package models

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a record does not exist, is owned by another
// account, or its lifecycle state hides it from reads.
var ErrNotFound = errors.New("record not found")

// QuantityUnit is the unit a waste quantity is expressed in. Bulk waste uses
// tonnes or cubic metres; small waste uses kilograms or litres.
type QuantityUnit string

const (
	UnitTonne      QuantityUnit = "Tonne"
	UnitCubicMetre QuantityUnit = "CubicMetre"
	UnitKilogram   QuantityUnit = "Kilogram"
	UnitLitre      QuantityUnit = "Litre"
)

// BulkUnit reports whether the unit belongs to the bulk-waste pair.
func (u QuantityUnit) BulkUnit() bool {
	return u == UnitTonne || u == UnitCubicMetre
}

// WasteQuantity is the amount of waste being exported.
type WasteQuantity struct {
	Estimate bool         `json:"estimate"`
	Unit     QuantityUnit `json:"unit"`
	Amount   float64      `json:"amount"`
}

// WasteQuantitySection wraps the quantity with its completeness status.
type WasteQuantitySection struct {
	Status SectionStatus  `json:"status"`
	Value  *WasteQuantity `json:"value,omitempty"`
}

// Quantity returns the payload, failing fast unless the section is Complete.
func (s WasteQuantitySection) Quantity() (WasteQuantity, error) {
	if err := requireComplete("wasteQuantity", s.Status); err != nil {
		return WasteQuantity{}, err
	}
	return *s.Value, nil
}

// CustomerReferenceSection holds the exporter's own reference for the
// declaration.
type CustomerReferenceSection struct {
	Status SectionStatus `json:"status"`
	Value  string        `json:"value,omitempty"`
}

// ExporterDetailSection identifies the exporter.
type ExporterDetailSection struct {
	Status  SectionStatus `json:"status"`
	Address Address       `json:"address,omitempty"`
	Contact Contact       `json:"contact,omitempty"`
}

// ImporterDetailSection identifies the importer. Importer addresses are free
// text because overseas formats vary.
type ImporterDetailSection struct {
	Status  SectionStatus `json:"status"`
	Address string        `json:"address,omitempty"`
	Country string        `json:"country,omitempty"`
	Contact Contact       `json:"contact,omitempty"`
}

// CollectionDate is the day waste collection starts. Stored as parts, not
// time.Time, because the user supplies a calendar date with no timezone.
type CollectionDate struct {
	Estimate bool `json:"estimate"`
	Day      int  `json:"day"`
	Month    int  `json:"month"`
	Year     int  `json:"year"`
}

// CollectionDateSection wraps the collection date with its status.
type CollectionDateSection struct {
	Status SectionStatus   `json:"status"`
	Value  *CollectionDate `json:"value,omitempty"`
}

// TransportMeans is how a carrier moves the waste.
type TransportMeans string

const (
	TransportRoad        TransportMeans = "Road"
	TransportRail        TransportMeans = "Rail"
	TransportSea         TransportMeans = "Sea"
	TransportAir         TransportMeans = "Air"
	TransportInlandWater TransportMeans = "InlandWaterways"
)

// Carrier is one waste carrier on the journey. ID is generated at creation.
type Carrier struct {
	ID           string         `json:"id"`
	Address      string         `json:"address,omitempty"`
	Country      string         `json:"country,omitempty"`
	Contact      Contact        `json:"contact,omitempty"`
	Means        TransportMeans `json:"meansOfTransport,omitempty"`
	MeansDetails string         `json:"meansOfTransportDetails,omitempty"`
}

// MaxCarriers caps the number of carriers on one declaration.
const MaxCarriers = 5

// CarriersSection is the ordered carrier list. Transport records whether the
// current classification requires carrier transport at all; it is kept in
// sync with the waste-description section by the workflow engine.
type CarriersSection struct {
	Status    SectionStatus `json:"status"`
	Transport bool          `json:"transport"`
	Values    []Carrier     `json:"values,omitempty"`
}

// CollectionDetailSection is where the waste is collected from.
type CollectionDetailSection struct {
	Status  SectionStatus `json:"status"`
	Address Address       `json:"address,omitempty"`
	Contact Contact       `json:"contact,omitempty"`
}

// ExitLocationSection is the location the waste leaves the UK, if provided.
type ExitLocationSection struct {
	Status   SectionStatus `json:"status"`
	Provided bool          `json:"provided"`
	Value    string        `json:"value,omitempty"`
}

// TransitCountriesSection lists the countries the waste travels through.
type TransitCountriesSection struct {
	Status SectionStatus `json:"status"`
	Values []string      `json:"values,omitempty"`
}

// ConfirmationSection records that the user checked their answers. Its
// status is gated on every content section being Complete.
type ConfirmationSection struct {
	Status    SectionStatus `json:"status"`
	Confirmed bool          `json:"confirmation,omitempty"`
}

// DeclarationValues is the metadata stamped when the declaration is signed.
type DeclarationValues struct {
	DeclarationTimestamp time.Time `json:"declarationTimestamp"`
	TransactionID        string    `json:"transactionId"`
}

// DeclarationSection is the final signing step, gated on confirmation.
type DeclarationSection struct {
	Status SectionStatus      `json:"status"`
	Values *DeclarationValues `json:"values,omitempty"`
}

// LifecycleStatus is the record lifecycle state of a draft or submission.
type LifecycleStatus string

const (
	LifecycleInProgress             LifecycleStatus = "InProgress"
	LifecycleCancelled              LifecycleStatus = "Cancelled"
	LifecycleDeleted                LifecycleStatus = "Deleted"
	LifecycleSubmittedWithActuals   LifecycleStatus = "SubmittedWithActuals"
	LifecycleSubmittedWithEstimates LifecycleStatus = "SubmittedWithEstimates"
	LifecycleUpdatedWithActuals     LifecycleStatus = "UpdatedWithActuals"
)

// Submitted reports whether the status is one of the three submitted or
// updated states.
func (s LifecycleStatus) Submitted() bool {
	return s == LifecycleSubmittedWithActuals ||
		s == LifecycleSubmittedWithEstimates ||
		s == LifecycleUpdatedWithActuals
}

// Hidden reports whether records in this state read as not-found.
func (s LifecycleStatus) Hidden() bool {
	return s == LifecycleCancelled || s == LifecycleDeleted
}

// CancellationType records why a draft was cancelled.
type CancellationType string

const (
	CancelChangeOfRecovery  CancellationType = "ChangeOfRecoveryFacilityOrLaboratory"
	CancelNoLongerExporting CancellationType = "NoLongerExportingWaste"
	CancelOther             CancellationType = "Other"
)

// LifecycleState is the lifecycle status with its timestamp and, for
// cancelled drafts, the reason.
type LifecycleState struct {
	Status       LifecycleStatus  `json:"status"`
	Timestamp    time.Time        `json:"timestamp"`
	Cancellation CancellationType `json:"cancellationType,omitempty"`
	CancelReason string           `json:"cancellationReason,omitempty"`
}

// Draft is a declaration in progress, edited section by section. It is
// always read and written as a whole document.
type Draft struct {
	ID                     string                   `json:"id"`
	AccountID              string                   `json:"accountId"`
	Reference              CustomerReferenceSection `json:"reference"`
	WasteDescription       WasteDescriptionSection  `json:"wasteDescription"`
	WasteQuantity          WasteQuantitySection     `json:"wasteQuantity"`
	ExporterDetail         ExporterDetailSection    `json:"exporterDetail"`
	ImporterDetail         ImporterDetailSection    `json:"importerDetail"`
	CollectionDate         CollectionDateSection    `json:"collectionDate"`
	Carriers               CarriersSection          `json:"carriers"`
	CollectionDetail       CollectionDetailSection  `json:"collectionDetail"`
	UKExitLocation         ExitLocationSection      `json:"ukExitLocation"`
	TransitCountries       TransitCountriesSection  `json:"transitCountries"`
	RecoveryFacilityDetail RecoveryFacilitySection  `json:"recoveryFacilityDetail"`
	Confirmation           ConfirmationSection      `json:"submissionConfirmation"`
	Declaration            DeclarationSection       `json:"submissionDeclaration"`
	State                  LifecycleState           `json:"submissionState"`
}

// ContentStatuses returns the statuses of the content sections in a fixed
// order. The confirmation gate is defined over this set.
func (d Draft) ContentStatuses() []SectionStatus {
	return []SectionStatus{
		d.Reference.Status,
		d.WasteDescription.Status,
		d.WasteQuantity.Status,
		d.ExporterDetail.Status,
		d.ImporterDetail.Status,
		d.CollectionDate.Status,
		d.Carriers.Status,
		d.CollectionDetail.Status,
		d.UKExitLocation.Status,
		d.TransitCountries.Status,
		d.RecoveryFacilityDetail.Status,
	}
}

// ContentComplete reports whether every content section is Complete.
func (d Draft) ContentComplete() bool {
	for _, s := range d.ContentStatuses() {
		if s != StatusComplete {
			return false
		}
	}
	return true
}
