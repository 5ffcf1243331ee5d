package primary

import (
	"context"

	"github.com/example/annex7/internal/models"
)

// ValidateBatchRequest validates one tabular upload for an account.
type ValidateBatchRequest struct {
	AccountID string
	Rows      []models.BulkRow
}

// BatchResult is the all-or-nothing outcome of a batch validation: either
// every row produced a typed declaration, or only the per-row error reports
// for the rows that failed are surfaced.
type BatchResult struct {
	Valid        bool
	Declarations []models.DeclarationData
	Reports      []models.RowReport
}

// BatchService validates tabular uploads row by row, preserving input order.
type BatchService interface {
	ValidateBatch(ctx context.Context, req ValidateBatchRequest) (*BatchResult, error)
}
