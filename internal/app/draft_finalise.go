package app

import (
	"context"
	"fmt"

	coredraft "github.com/example/annex7/internal/core/draft"
	coresubmission "github.com/example/annex7/internal/core/submission"
	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/primary"
	"github.com/example/annex7/internal/validation"
)

// GetConfirmation returns the review-confirmation gate section.
func (s *DraftServiceImpl) GetConfirmation(ctx context.Context, req primary.RecordRequest) (models.ConfirmationSection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.ConfirmationSection{}, err
	}
	return d.Confirmation, nil
}

// SetConfirmation records that the account holder has reviewed the draft.
// The gate only opens once every content section is Complete.
func (s *DraftServiceImpl) SetConfirmation(ctx context.Context, req primary.RecordRequest, confirmed bool) (*primary.SetResponse, error) {
	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}
	if d.Confirmation.Status == models.StatusCannotStart {
		return &primary.SetResponse{Errors: []models.FieldError{{
			Field:   "confirmation",
			Message: "complete all sections before confirming",
		}}}, nil
	}

	if confirmed {
		d.Confirmation = models.ConfirmationSection{Status: models.StatusComplete, Confirmed: true}
	} else {
		d.Confirmation = models.ConfirmationSection{Status: models.StatusNotStarted}
	}
	updated := coredraft.RecomputeGates(*d)
	updated.State.Timestamp = s.now()
	if err := s.drafts.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return &primary.SetResponse{}, nil
}

// GetDeclaration returns the declaration section.
func (s *DraftServiceImpl) GetDeclaration(ctx context.Context, req primary.RecordRequest) (models.DeclarationSection, error) {
	d, err := s.load(ctx, req)
	if err != nil {
		return models.DeclarationSection{}, err
	}
	return d.Declaration, nil
}

// SetDeclaration signs the declaration and finalises the draft: a
// transaction id and timestamp are stamped, the immutable submission is
// written, and the draft is removed. If the planned collection date has
// slipped into the past the date section is reopened instead and the draft
// stays in progress.
func (s *DraftServiceImpl) SetDeclaration(ctx context.Context, req primary.RecordRequest) (*primary.SetResponse, error) {
	d, err := s.loadEditable(ctx, req)
	if err != nil {
		return nil, err
	}
	if d.Declaration.Status == models.StatusCannotStart {
		return &primary.SetResponse{Errors: []models.FieldError{{
			Field:   "declaration",
			Message: "confirm the declaration details before signing",
		}}}, nil
	}

	now := s.now()

	if d.CollectionDate.Value == nil || !validation.DatePlausible(*d.CollectionDate.Value, now) {
		// Stale date: reopen the section, close the gates again and keep
		// the draft editable.
		d.CollectionDate = models.CollectionDateSection{Status: models.StatusNotStarted}
		if _, err := s.persistContent(ctx, d); err != nil {
			return nil, err
		}
		return &primary.SetResponse{Errors: []models.FieldError{{
			Field:   "collectionDate",
			Message: "the collection date must be today or later",
		}}}, nil
	}

	quantity, err := d.WasteQuantity.Quantity()
	if err != nil {
		return nil, err
	}

	d.Declaration = models.DeclarationSection{
		Status: models.StatusComplete,
		Values: &models.DeclarationValues{
			DeclarationTimestamp: now,
			TransactionID:        coresubmission.TransactionID(now, d.ID),
		},
	}

	state := coresubmission.FinalState(d.CollectionDate.Value.Estimate, quantity.Estimate, now)
	sub, ok := coresubmission.Build(*d, state)
	if !ok {
		return nil, fmt.Errorf("draft %s is not ready to submit", d.ID)
	}

	if err := s.submissions.Create(ctx, &sub); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	if err := s.drafts.Delete(ctx, d.ID, d.AccountID); err != nil {
		return nil, fmt.Errorf("failed to remove finalised draft: %w", err)
	}
	return &primary.SetResponse{}, nil
}
