package secondary

import (
	"context"

	"github.com/example/annex7/internal/models"
)

// ReferenceDataProvider supplies the code lists declarations validate
// against. Every list is an immutable snapshot for the duration of one call
// or batch; no freshness guarantee beyond that is made.
type ReferenceDataProvider interface {
	// WasteCodes returns the waste-code entries for one bulk category.
	WasteCodes(ctx context.Context, category models.WasteCodeType) ([]models.CodeEntry, error)

	// EWCCodes returns the European Waste Catalogue entries.
	EWCCodes(ctx context.Context) ([]models.CodeEntry, error)

	// Countries returns the country list, with or without the United
	// Kingdom depending on includeUK.
	Countries(ctx context.Context, includeUK bool) ([]string, error)

	// RecoveryCodes returns the permitted recovery operation codes.
	RecoveryCodes(ctx context.Context) ([]models.CodeEntry, error)

	// DisposalCodes returns the permitted disposal operation codes.
	DisposalCodes(ctx context.Context) ([]models.CodeEntry, error)
}
