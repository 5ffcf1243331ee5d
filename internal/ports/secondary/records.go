// Package secondary defines the secondary ports (driven adapters) for the
// application: the record store and the reference-data provider.
package secondary

import (
	"context"

	"github.com/example/annex7/internal/models"
)

// SortOrder orders listings by last update time.
type SortOrder string

const (
	OrderAscending  SortOrder = "ASC"
	OrderDescending SortOrder = "DESC"
)

// ListQuery carries paging and filtering options for record listings.
type ListQuery struct {
	Order     SortOrder
	PageSize  int
	PageToken string
	// States filters by lifecycle status. Empty means every non-hidden state.
	States []models.LifecycleStatus
}

// DraftPage is one page of a draft listing.
type DraftPage struct {
	Drafts    []models.Draft
	NextToken string
	Total     int
}

// DraftRepository is the record store for in-progress declarations. Records
// are read and written whole; the store gives last-write-wins,
// read-your-writes consistency per record and no multi-record transactions.
type DraftRepository interface {
	// Create persists a new draft.
	Create(ctx context.Context, draft *models.Draft) error

	// Get retrieves a draft by id and owner. Missing records and ownership
	// mismatches both return models.ErrNotFound.
	Get(ctx context.Context, id, accountID string) (*models.Draft, error)

	// Save overwrites the whole draft document.
	Save(ctx context.Context, draft *models.Draft) error

	// Delete removes the draft record.
	Delete(ctx context.Context, id, accountID string) error

	// List retrieves the owner's drafts with paging.
	List(ctx context.Context, accountID string, query ListQuery) (*DraftPage, error)
}

// SubmissionPage is one page of a submission listing.
type SubmissionPage struct {
	Submissions []models.Submission
	NextToken   string
	Total       int
}

// SubmissionRepository is the record store for finalised declarations.
// Submissions are created once and never updated.
type SubmissionRepository interface {
	// Create persists a finalised submission.
	Create(ctx context.Context, submission *models.Submission) error

	// Get retrieves a submission by id and owner.
	Get(ctx context.Context, id, accountID string) (*models.Submission, error)

	// List retrieves the owner's submissions with paging.
	List(ctx context.Context, accountID string, query ListQuery) (*SubmissionPage, error)
}
