// Package app contains the application services: the imperative shell that
// loads records, runs the pure core rules, and persists the results. Every
// section write is a single read-modify-write of the whole draft document
// with no locking, version check or retry; under contention the later write
// wins.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	coredraft "github.com/example/annex7/internal/core/draft"
	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/primary"
	"github.com/example/annex7/internal/ports/secondary"
	"github.com/example/annex7/internal/validation"
)

// DraftServiceImpl implements the DraftService interface.
type DraftServiceImpl struct {
	drafts      secondary.DraftRepository
	submissions secondary.SubmissionRepository
	refData     secondary.ReferenceDataProvider

	// Injected so tests control time and identity generation.
	now   func() time.Time
	newID func() string
}

// NewDraftService creates a DraftService with injected dependencies.
func NewDraftService(
	drafts secondary.DraftRepository,
	submissions secondary.SubmissionRepository,
	refData secondary.ReferenceDataProvider,
) *DraftServiceImpl {
	return &DraftServiceImpl{
		drafts:      drafts,
		submissions: submissions,
		refData:     refData,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// CreateDraft opens a new draft declaration for the account.
func (s *DraftServiceImpl) CreateDraft(ctx context.Context, req primary.CreateDraftRequest) (*primary.CreateDraftResponse, error) {
	reference := req.Reference
	if reference != "" {
		value, ferr := validation.Reference(reference)
		if ferr != nil {
			return &primary.CreateDraftResponse{Errors: []models.FieldError{*ferr}}, nil
		}
		reference = value
	}

	d := coredraft.New(s.newID(), req.AccountID, reference, s.now())
	if err := s.drafts.Create(ctx, &d); err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return &primary.CreateDraftResponse{Draft: &d}, nil
}

// GetDraft retrieves a draft. Cancelled and deleted drafts read as
// not-found.
func (s *DraftServiceImpl) GetDraft(ctx context.Context, req primary.RecordRequest) (*models.Draft, error) {
	return s.load(ctx, req)
}

// ListDrafts pages through the account's visible drafts.
func (s *DraftServiceImpl) ListDrafts(ctx context.Context, req primary.ListDraftsRequest) (*primary.ListDraftsResponse, error) {
	page, err := s.drafts.List(ctx, req.AccountID, secondary.ListQuery{
		Order:     secondary.SortOrder(req.Order),
		PageSize:  req.PageSize,
		PageToken: req.PageToken,
		States:    []models.LifecycleStatus{models.LifecycleInProgress},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return &primary.ListDraftsResponse{
		Drafts:    page.Drafts,
		NextToken: page.NextToken,
		Total:     page.Total,
	}, nil
}

// CancelDraft marks the draft Cancelled with the recorded reason. The draft
// is hidden from reads afterwards but its record survives.
func (s *DraftServiceImpl) CancelDraft(ctx context.Context, req primary.CancelDraftRequest) error {
	d, err := s.load(ctx, primary.RecordRequest{ID: req.ID, AccountID: req.AccountID})
	if err != nil {
		return err
	}
	if result := coredraft.CanEdit(d.State); !result.Allowed {
		return result.Error()
	}
	d.State = models.LifecycleState{
		Status:       models.LifecycleCancelled,
		Timestamp:    s.now(),
		Cancellation: req.Type,
		CancelReason: req.Reason,
	}
	if err := s.drafts.Save(ctx, d); err != nil {
		return fmt.Errorf("failed to cancel draft: %w", err)
	}
	return nil
}

// DeleteDraft marks the draft Deleted. The record is retained but hidden.
func (s *DraftServiceImpl) DeleteDraft(ctx context.Context, req primary.RecordRequest) error {
	d, err := s.load(ctx, req)
	if err != nil {
		return err
	}
	if result := coredraft.CanEdit(d.State); !result.Allowed {
		return result.Error()
	}
	d.State = models.LifecycleState{
		Status:    models.LifecycleDeleted,
		Timestamp: s.now(),
	}
	if err := s.drafts.Save(ctx, d); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// load fetches a draft and applies the lifecycle visibility rule.
func (s *DraftServiceImpl) load(ctx context.Context, req primary.RecordRequest) (*models.Draft, error) {
	d, err := s.drafts.Get(ctx, req.ID, req.AccountID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	if d.State.Status.Hidden() {
		return nil, models.ErrNotFound
	}
	return d, nil
}

// loadEditable fetches a draft and requires it to accept writes.
func (s *DraftServiceImpl) loadEditable(ctx context.Context, req primary.RecordRequest) (*models.Draft, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	if result := coredraft.CanEdit(d.State); !result.Allowed {
		return nil, result.Error()
	}
	return d, nil
}

// wasteSnapshot fetches the reference-data lists a waste-description write
// validates against. Fetched once per call; the snapshot is immutable for
// the call's duration.
func (s *DraftServiceImpl) wasteSnapshot(ctx context.Context, value models.WasteDescriptionSection) (models.RefSnapshot, error) {
	snapshot := models.RefSnapshot{
		WasteCodes: make(map[models.WasteCodeType][]models.CodeEntry),
	}

	if code := value.WasteCode; code != nil && !code.IsSmall() {
		entries, err := s.refData.WasteCodes(ctx, code.Type)
		if err != nil {
			return models.RefSnapshot{}, fmt.Errorf("failed to fetch waste codes: %w", err)
		}
		snapshot.WasteCodes[code.Type] = entries
	}

	ewc, err := s.refData.EWCCodes(ctx)
	if err != nil {
		return models.RefSnapshot{}, fmt.Errorf("failed to fetch EWC codes: %w", err)
	}
	snapshot.EWCCodes = ewc
	return snapshot, nil
}

// persistContent stamps the lifecycle timestamp, forces re-confirmation and
// writes the whole document. Shared by every content-section setter.
func (s *DraftServiceImpl) persistContent(ctx context.Context, d *models.Draft) (*primary.SetResponse, error) {
	updated := coredraft.ResetGates(*d)
	updated.State.Timestamp = s.now()
	if err := s.drafts.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return &primary.SetResponse{}, nil
}
