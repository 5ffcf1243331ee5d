package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/primary"
	"github.com/example/annex7/internal/ports/secondary"
)

// SubmissionServiceImpl implements the SubmissionService interface.
// Submissions are immutable once created, so the service is read-only.
type SubmissionServiceImpl struct {
	submissions secondary.SubmissionRepository
}

// NewSubmissionService creates a SubmissionService with injected
// dependencies.
func NewSubmissionService(submissions secondary.SubmissionRepository) *SubmissionServiceImpl {
	return &SubmissionServiceImpl{submissions: submissions}
}

// GetSubmission retrieves one finalised declaration.
func (s *SubmissionServiceImpl) GetSubmission(ctx context.Context, req primary.RecordRequest) (*models.Submission, error) {
	sub, err := s.submissions.Get(ctx, req.ID, req.AccountID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if sub.State.Status.Hidden() {
		return nil, models.ErrNotFound
	}
	return sub, nil
}

// ListSubmissions pages through the account's finalised declarations.
func (s *SubmissionServiceImpl) ListSubmissions(ctx context.Context, req primary.ListSubmissionsRequest) (*primary.ListSubmissionsResponse, error) {
	page, err := s.submissions.List(ctx, req.AccountID, secondary.ListQuery{
		Order:     secondary.SortOrder(req.Order),
		PageSize:  req.PageSize,
		PageToken: req.PageToken,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return &primary.ListSubmissionsResponse{
		Submissions: page.Submissions,
		NextToken:   page.NextToken,
		Total:       page.Total,
	}, nil
}
