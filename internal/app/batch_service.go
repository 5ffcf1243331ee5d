package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/primary"
	"github.com/example/annex7/internal/ports/secondary"
	"github.com/example/annex7/internal/validation"
)

// batchWorkers bounds the row-validation fan-out.
const batchWorkers = 8

// BatchServiceImpl implements the BatchService interface. Rows validate
// independently against one reference-data snapshot taken at the start of
// the batch, so a mid-batch code-list change cannot split the outcome.
type BatchServiceImpl struct {
	refData secondary.ReferenceDataProvider

	now   func() time.Time
	newID func() string
}

// NewBatchService creates a BatchService with injected dependencies.
func NewBatchService(refData secondary.ReferenceDataProvider) *BatchServiceImpl {
	return &BatchServiceImpl{
		refData: refData,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// ValidateBatch validates every row of a tabular upload. The result is
// all-or-nothing: one failing row discards every declaration and only the
// failing rows' reports are returned. Row numbers count from the first data
// row after the header rows, preserving input order.
func (s *BatchServiceImpl) ValidateBatch(ctx context.Context, req primary.ValidateBatchRequest) (*primary.BatchResult, error) {
	ref, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	declarations := make([]models.DeclarationData, len(req.Rows))
	reports := make([]*models.RowReport, len(req.Rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, row := range req.Rows {
		i, row := i, row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, fieldErrs, comboErrs := validation.Row(row, ref, today)
			if len(fieldErrs) > 0 || len(comboErrs) > 0 {
				reports[i] = &models.RowReport{
					RowNumber:         i + 1 + validation.HeaderRowCount,
					FieldErrors:       fieldErrs,
					CombinationErrors: comboErrs,
				}
				return nil
			}
			for j := range data.Carriers {
				data.Carriers[j].ID = s.newID()
			}
			declarations[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var failed []models.RowReport
	for _, r := range reports {
		if r != nil {
			failed = append(failed, *r)
		}
	}
	if len(failed) > 0 {
		return &primary.BatchResult{Valid: false, Reports: failed}, nil
	}
	return &primary.BatchResult{Valid: true, Declarations: declarations}, nil
}

// snapshot fetches every code list a row can validate against.
func (s *BatchServiceImpl) snapshot(ctx context.Context) (models.RefSnapshot, error) {
	ref := models.RefSnapshot{
		WasteCodes: make(map[models.WasteCodeType][]models.CodeEntry),
	}
	for _, category := range []models.WasteCodeType{
		models.WasteCodeBaselAnnexIX,
		models.WasteCodeOECD,
		models.WasteCodeAnnexIIIA,
		models.WasteCodeAnnexIIIB,
	} {
		entries, err := s.refData.WasteCodes(ctx, category)
		if err != nil {
			return models.RefSnapshot{}, fmt.Errorf("failed to fetch %s codes: %w", category, err)
		}
		ref.WasteCodes[category] = entries
	}

	var err error
	if ref.EWCCodes, err = s.refData.EWCCodes(ctx); err != nil {
		return models.RefSnapshot{}, fmt.Errorf("failed to fetch EWC codes: %w", err)
	}
	if ref.Countries, err = s.refData.Countries(ctx, false); err != nil {
		return models.RefSnapshot{}, fmt.Errorf("failed to fetch countries: %w", err)
	}
	if ref.CountriesWithUK, err = s.refData.Countries(ctx, true); err != nil {
		return models.RefSnapshot{}, fmt.Errorf("failed to fetch countries: %w", err)
	}
	if ref.RecoveryCodes, err = s.refData.RecoveryCodes(ctx); err != nil {
		return models.RefSnapshot{}, fmt.Errorf("failed to fetch recovery codes: %w", err)
	}
	if ref.DisposalCodes, err = s.refData.DisposalCodes(ctx); err != nil {
		return models.RefSnapshot{}, fmt.Errorf("failed to fetch disposal codes: %w", err)
	}
	return ref, nil
}
