package app

import (
	"context"
	"fmt"

	coredraft "github.com/example/annex7/internal/core/draft"
	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/primary"
	"github.com/example/annex7/internal/validation"
)

// GetRecoveryFacilities returns the treatment-site section.
func (s *DraftServiceImpl) GetRecoveryFacilities(ctx context.Context, req primary.RecordRequest) (models.RecoveryFacilitySection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.RecoveryFacilitySection{}, err
	}
	return d.RecoveryFacilityDetail, nil
}

// CreateRecoveryFacility appends an empty treatment site of the given type
// with a generated identity. The section must be reachable (a waste
// classification committed) and the type must fit the classification and
// the cardinality limits.
func (s *DraftServiceImpl) CreateRecoveryFacility(ctx context.Context, req primary.CreateFacilityRequest) (*primary.CreateFacilityResponse, error) {
	d, err := s.loadEditable(ctx, primary.RecordRequest{ID: req.ID, AccountID: req.AccountID})
	if err != nil {
		return nil, err
	}
	if d.RecoveryFacilityDetail.Status == models.StatusCannotStart {
		return nil, fmt.Errorf("waste classification must be chosen before adding treatment sites")
	}
	code := d.WasteDescription.CommittedWasteCode()
	if result := coredraft.FacilityTypeAllowed(code, req.Type); !result.Allowed {
		return nil, result.Error()
	}
	if result := coredraft.CanAddFacility(d.RecoveryFacilityDetail, req.Type); !result.Allowed {
		return nil, result.Error()
	}

	facility := models.RecoveryFacility{ID: s.newID(), Type: req.Type}
	d.RecoveryFacilityDetail.Status = models.StatusStarted
	d.RecoveryFacilityDetail.Values = append(d.RecoveryFacilityDetail.Values, facility)

	if _, err := s.persistContent(ctx, d); err != nil {
		return nil, err
	}
	return &primary.CreateFacilityResponse{FacilityID: facility.ID}, nil
}

// SetRecoveryFacility updates one treatment site in place. Marking the
// section Complete requires every stored site to validate, not just the
// one being written.
func (s *DraftServiceImpl) SetRecoveryFacility(ctx context.Context, req primary.SetFacilityRequest) (*primary.SetResponse, error) {
	ref, err := s.facilitySnapshot(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.loadEditable(ctx, primary.RecordRequest{ID: req.ID, AccountID: req.AccountID})
	if err != nil {
		return nil, err
	}
	code := d.WasteDescription.CommittedWasteCode()
	if result := coredraft.FacilityTypeAllowed(code, req.Facility.Type); !result.Allowed {
		return nil, result.Error()
	}

	idx := -1
	for i, f := range d.RecoveryFacilityDetail.Values {
		if f.ID == req.Facility.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, models.ErrNotFound
	}

	status := models.StatusStarted
	if req.Complete {
		status = models.StatusComplete
	}

	proposed := d.RecoveryFacilityDetail
	proposed.Status = status
	proposed.Values = make([]models.RecoveryFacility, len(d.RecoveryFacilityDetail.Values))
	copy(proposed.Values, d.RecoveryFacilityDetail.Values)
	proposed.Values[idx] = req.Facility

	if errs := validation.RecoveryFacilitiesSection(proposed, ref); len(errs) > 0 {
		return &primary.SetResponse{Errors: errs}, nil
	}

	d.RecoveryFacilityDetail = proposed
	return s.persistContent(ctx, d)
}

// DeleteRecoveryFacility removes one treatment site. An emptied section
// drops back to NotStarted.
func (s *DraftServiceImpl) DeleteRecoveryFacility(ctx context.Context, req primary.RecordRequest, facilityID string) error {
	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return err
	}

	values := d.RecoveryFacilityDetail.Values[:0:0]
	found := false
	for _, f := range d.RecoveryFacilityDetail.Values {
		if f.ID == facilityID {
			found = true
			continue
		}
		values = append(values, f)
	}
	if !found {
		return models.ErrNotFound
	}

	d.RecoveryFacilityDetail.Values = values
	if len(values) == 0 {
		d.RecoveryFacilityDetail.Status = models.StatusNotStarted
	} else {
		d.RecoveryFacilityDetail.Status = models.StatusStarted
	}

	_, err = s.persistContent(ctx, d)
	return err
}

// facilitySnapshot fetches the lists a treatment-site write validates
// against.
func (s *DraftServiceImpl) facilitySnapshot(ctx context.Context) (models.RefSnapshot, error) {
	countries, err := s.refData.Countries(ctx, true)
	if err != nil {
		return models.RefSnapshot{}, fmt.Errorf("failed to fetch countries: %w", err)
	}
	recovery, err := s.refData.RecoveryCodes(ctx)
	if err != nil {
		return models.RefSnapshot{}, fmt.Errorf("failed to fetch recovery codes: %w", err)
	}
	disposal, err := s.refData.DisposalCodes(ctx)
	if err != nil {
		return models.RefSnapshot{}, fmt.Errorf("failed to fetch disposal codes: %w", err)
	}
	return models.RefSnapshot{
		Countries:     countries,
		RecoveryCodes: recovery,
		DisposalCodes: disposal,
	}, nil
}
