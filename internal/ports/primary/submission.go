package primary

import (
	"context"

	"github.com/example/annex7/internal/models"
)

// ListSubmissionsRequest pages through an account's finalised declarations.
type ListSubmissionsRequest struct {
	AccountID string
	Order     string
	PageSize  int
	PageToken string
}

// ListSubmissionsResponse is one page of submissions.
type ListSubmissionsResponse struct {
	Submissions []models.Submission
	NextToken   string
	Total       int
}

// SubmissionService reads finalised declarations. Submissions are immutable;
// there are no write operations beyond the finalisation step on DraftService.
type SubmissionService interface {
	GetSubmission(ctx context.Context, req RecordRequest) (*models.Submission, error)
	ListSubmissions(ctx context.Context, req ListSubmissionsRequest) (*ListSubmissionsResponse, error)
}
