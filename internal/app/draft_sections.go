package app

import (
	"context"
	"fmt"

	"github.com/example/annex7/internal/core/cascade"
	coredraft "github.com/example/annex7/internal/core/draft"
	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/primary"
	"github.com/example/annex7/internal/validation"
)

// GetReference returns the customer-reference section.
func (s *DraftServiceImpl) GetReference(ctx context.Context, req primary.RecordRequest) (models.CustomerReferenceSection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.CustomerReferenceSection{}, err
	}
	return d.Reference, nil
}

// SetReference sets the exporter's own reference for the declaration.
func (s *DraftServiceImpl) SetReference(ctx context.Context, req primary.RecordRequest, value string) (*primary.SetResponse, error) {
	reference, ferr := validation.Reference(value)
	if ferr != nil {
		return &primary.SetResponse{Errors: []models.FieldError{*ferr}}, nil
	}

	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}
	d.Reference = models.CustomerReferenceSection{
		Status: models.StatusComplete,
		Value:  reference,
	}
	return s.persistContent(ctx, d)
}

// GetWasteDescription returns the waste-description section.
func (s *DraftServiceImpl) GetWasteDescription(ctx context.Context, req primary.RecordRequest) (models.WasteDescriptionSection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.WasteDescriptionSection{}, err
	}
	return d.WasteDescription, nil
}

// SetWasteDescription writes the waste classification. This is the only
// setter that triggers the cascade rules: dependent sections are reset,
// downgraded or preserved according to how the classification changed.
func (s *DraftServiceImpl) SetWasteDescription(ctx context.Context, req primary.RecordRequest, value models.WasteDescriptionSection) (*primary.SetResponse, error) {
	ref, err := s.wasteSnapshot(ctx, value)
	if err != nil {
		return nil, err
	}
	if errs := validation.WasteDescriptionSection(value, ref); len(errs) > 0 {
		return &primary.SetResponse{Errors: errs}, nil
	}

	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}

	oldCode := d.WasteDescription.CommittedWasteCode()
	newCode := value.CommittedWasteCode()

	kind := cascade.Classify(oldCode, newCode)
	related := cascade.Apply(kind, cascade.Related{
		Quantity:   d.WasteQuantity,
		Carriers:   d.Carriers,
		Facilities: d.RecoveryFacilityDetail,
	})

	// Bulk-only carry fields are stale on a bulk-to-small change while the
	// section is still Started.
	if kind == cascade.ChangeBulkToSmall && value.Status == models.StatusStarted {
		value = cascade.ClearBulkFields(value)
	}

	d.WasteQuantity = related.Quantity
	d.Carriers = related.Carriers
	d.RecoveryFacilityDetail = related.Facilities
	d.WasteDescription = value

	// Quantity cannot remain gated once any classification work exists.
	if value.Status != models.StatusNotStarted {
		d.WasteQuantity = cascade.OpenQuantity(d.WasteQuantity)
	}
	// Facilities open once a classification is committed, and carrier
	// transport always mirrors the committed classification.
	if newCode != nil {
		d.RecoveryFacilityDetail = cascade.OpenFacilities(d.RecoveryFacilityDetail)
		d.Carriers.Transport = coredraft.TransportRequired(newCode)
	}

	return s.persistContent(ctx, d)
}

// GetWasteQuantity returns the quantity section.
func (s *DraftServiceImpl) GetWasteQuantity(ctx context.Context, req primary.RecordRequest) (models.WasteQuantitySection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.WasteQuantitySection{}, err
	}
	return d.WasteQuantity, nil
}

// SetWasteQuantity writes the quantity. Unit compatibility against the
// stored classification is re-checked on every write, not only on cascade,
// because the same value may be re-submitted after the classification
// changed.
func (s *DraftServiceImpl) SetWasteQuantity(ctx context.Context, req primary.RecordRequest, value models.WasteQuantitySection) (*primary.SetResponse, error) {
	if errs := validation.WasteQuantitySection(value); len(errs) > 0 {
		return &primary.SetResponse{Errors: errs}, nil
	}

	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}
	if d.WasteQuantity.Status == models.StatusCannotStart {
		return &primary.SetResponse{Errors: []models.FieldError{{
			Field:   "WasteQuantity",
			Message: "choose a waste classification before entering a quantity",
		}}}, nil
	}
	if value.Value != nil {
		if ce := coredraft.QuantityUnitCompatible(d.WasteDescription.CommittedWasteCode(), *value.Value); ce != nil {
			return &primary.SetResponse{CombinationErrors: []models.CombinationError{*ce}}, nil
		}
	}

	d.WasteQuantity = value
	return s.persistContent(ctx, d)
}

// GetExporterDetail returns the exporter section.
func (s *DraftServiceImpl) GetExporterDetail(ctx context.Context, req primary.RecordRequest) (models.ExporterDetailSection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.ExporterDetailSection{}, err
	}
	return d.ExporterDetail, nil
}

// SetExporterDetail writes the exporter section.
func (s *DraftServiceImpl) SetExporterDetail(ctx context.Context, req primary.RecordRequest, value models.ExporterDetailSection) (*primary.SetResponse, error) {
	if errs := validation.ExporterDetailSection(value); len(errs) > 0 {
		return &primary.SetResponse{Errors: errs}, nil
	}
	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}
	d.ExporterDetail = value
	return s.persistContent(ctx, d)
}

// GetImporterDetail returns the importer section.
func (s *DraftServiceImpl) GetImporterDetail(ctx context.Context, req primary.RecordRequest) (models.ImporterDetailSection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.ImporterDetailSection{}, err
	}
	return d.ImporterDetail, nil
}

// SetImporterDetail writes the importer. The importer's country must not
// already appear in the stored transit-country list.
func (s *DraftServiceImpl) SetImporterDetail(ctx context.Context, req primary.RecordRequest, value models.ImporterDetailSection) (*primary.SetResponse, error) {
	countries, err := s.refData.Countries(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}
	if errs := validation.ImporterDetailSection(value, countries); len(errs) > 0 {
		return &primary.SetResponse{Errors: errs}, nil
	}

	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}
	if value.Country != "" && d.TransitCountries.Status.HasPayload() {
		if ce := coredraft.ImporterTransitCompatible(value.Country, d.TransitCountries.Values); ce != nil {
			return &primary.SetResponse{CombinationErrors: []models.CombinationError{*ce}}, nil
		}
	}

	d.ImporterDetail = value
	return s.persistContent(ctx, d)
}

// GetCollectionDate returns the collection-date section.
func (s *DraftServiceImpl) GetCollectionDate(ctx context.Context, req primary.RecordRequest) (models.CollectionDateSection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.CollectionDateSection{}, err
	}
	return d.CollectionDate, nil
}

// SetCollectionDate writes the collection date.
func (s *DraftServiceImpl) SetCollectionDate(ctx context.Context, req primary.RecordRequest, value models.CollectionDateSection) (*primary.SetResponse, error) {
	if errs := validation.CollectionDateSection(value, s.now()); len(errs) > 0 {
		return &primary.SetResponse{Errors: errs}, nil
	}
	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}
	d.CollectionDate = value
	return s.persistContent(ctx, d)
}

// GetCollectionDetail returns the collection-detail section.
func (s *DraftServiceImpl) GetCollectionDetail(ctx context.Context, req primary.RecordRequest) (models.CollectionDetailSection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.CollectionDetailSection{}, err
	}
	return d.CollectionDetail, nil
}

// SetCollectionDetail writes the collection-detail section.
func (s *DraftServiceImpl) SetCollectionDetail(ctx context.Context, req primary.RecordRequest, value models.CollectionDetailSection) (*primary.SetResponse, error) {
	if errs := validation.CollectionDetailSection(value); len(errs) > 0 {
		return &primary.SetResponse{Errors: errs}, nil
	}
	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}
	d.CollectionDetail = value
	return s.persistContent(ctx, d)
}

// GetExitLocation returns the UK exit location section.
func (s *DraftServiceImpl) GetExitLocation(ctx context.Context, req primary.RecordRequest) (models.ExitLocationSection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.ExitLocationSection{}, err
	}
	return d.UKExitLocation, nil
}

// SetExitLocation writes the UK exit location section.
func (s *DraftServiceImpl) SetExitLocation(ctx context.Context, req primary.RecordRequest, value models.ExitLocationSection) (*primary.SetResponse, error) {
	if errs := validation.ExitLocationSection(value); len(errs) > 0 {
		return &primary.SetResponse{Errors: errs}, nil
	}
	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}
	d.UKExitLocation = value
	return s.persistContent(ctx, d)
}

// GetTransitCountries returns the transit-countries section.
func (s *DraftServiceImpl) GetTransitCountries(ctx context.Context, req primary.RecordRequest) (models.TransitCountriesSection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.TransitCountriesSection{}, err
	}
	return d.TransitCountries, nil
}

// SetTransitCountries writes the transit-country list. An empty list is a
// complete answer (no transit countries). The stored importer country must
// not appear in the list.
func (s *DraftServiceImpl) SetTransitCountries(ctx context.Context, req primary.RecordRequest, values []string) (*primary.SetResponse, error) {
	countries, err := s.refData.Countries(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}
	section := models.TransitCountriesSection{
		Status: models.StatusComplete,
		Values: values,
	}
	if errs := validation.TransitCountriesSection(section, countries); len(errs) > 0 {
		return &primary.SetResponse{Errors: errs}, nil
	}

	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}
	if d.ImporterDetail.Status.HasPayload() && d.ImporterDetail.Country != "" {
		if ce := coredraft.ImporterTransitCompatible(d.ImporterDetail.Country, values); ce != nil {
			return &primary.SetResponse{CombinationErrors: []models.CombinationError{*ce}}, nil
		}
	}

	d.TransitCountries = section
	return s.persistContent(ctx, d)
}
