package app

import (
	"context"
	"fmt"

	coredraft "github.com/example/annex7/internal/core/draft"
	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/primary"
	"github.com/example/annex7/internal/validation"
)

// GetCarriers returns the carriers section.
func (s *DraftServiceImpl) GetCarriers(ctx context.Context, req primary.RecordRequest) (models.CarriersSection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.CarriersSection{}, err
	}
	return d.Carriers, nil
}

// CreateCarrier appends an empty carrier with a generated identity.
// Exceeding the cardinality cap is a rejected request; the stored list is
// never touched.
func (s *DraftServiceImpl) CreateCarrier(ctx context.Context, req primary.RecordRequest) (*primary.CreateCarrierResponse, error) {
	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}
	if result := coredraft.CanAddCarrier(len(d.Carriers.Values)); !result.Allowed {
		return nil, result.Error()
	}

	carrier := models.Carrier{ID: s.newID()}
	d.Carriers.Status = models.StatusStarted
	d.Carriers.Transport = coredraft.TransportRequired(d.WasteDescription.CommittedWasteCode())
	d.Carriers.Values = append(d.Carriers.Values, carrier)

	if _, err := s.persistContent(ctx, d); err != nil {
		return nil, err
	}
	return &primary.CreateCarrierResponse{CarrierID: carrier.ID}, nil
}

// SetCarrier updates one carrier in place by its generated id.
func (s *DraftServiceImpl) SetCarrier(ctx context.Context, req primary.SetCarrierRequest) (*primary.SetResponse, error) {
	countries, err := s.refData.Countries(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}

	d, err := s.loadEditable(ctx, primary.RecordRequest{ID: req.ID, AccountID: req.AccountID})
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, c := range d.Carriers.Values {
		if c.ID == req.Carrier.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, models.ErrNotFound
	}

	// Transport requirement always mirrors the stored classification when
	// the carrier section is touched.
	transport := coredraft.TransportRequired(d.WasteDescription.CommittedWasteCode())

	status := models.StatusStarted
	if req.Complete {
		status = models.StatusComplete
	}

	proposed := d.Carriers
	proposed.Status = status
	proposed.Transport = transport
	proposed.Values = make([]models.Carrier, len(d.Carriers.Values))
	copy(proposed.Values, d.Carriers.Values)
	proposed.Values[idx] = req.Carrier

	if errs := validation.CarriersSection(proposed, countries); len(errs) > 0 {
		return &primary.SetResponse{Errors: errs}, nil
	}

	d.Carriers = proposed
	return s.persistContent(ctx, d)
}

// DeleteCarrier removes one carrier. An emptied section drops back to
// NotStarted.
func (s *DraftServiceImpl) DeleteCarrier(ctx context.Context, req primary.RecordRequest, carrierID string) error {
	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return err
	}

	values := d.Carriers.Values[:0:0]
	found := false
	for _, c := range d.Carriers.Values {
		if c.ID == carrierID {
			found = true
			continue
		}
		values = append(values, c)
	}
	if !found {
		return models.ErrNotFound
	}

	d.Carriers.Values = values
	d.Carriers.Transport = coredraft.TransportRequired(d.WasteDescription.CommittedWasteCode())
	if len(values) == 0 {
		d.Carriers.Status = models.StatusNotStarted
	} else {
		d.Carriers.Status = models.StatusStarted
	}

	_, err = s.persistContent(ctx, d)
	return err
}
