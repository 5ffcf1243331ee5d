// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/primary"
)

// DraftAdapter is a thin adapter that translates CLI operations to DraftService calls.
// It depends only on the DraftService interface, enabling easy testing with mocks.
type DraftAdapter struct {
	service primary.DraftService
	out     io.Writer
}

// NewDraftAdapter creates a new DraftAdapter with the given service.
func NewDraftAdapter(service primary.DraftService, out io.Writer) *DraftAdapter {
	return &DraftAdapter{
		service: service,
		out:     out,
	}
}

// Create opens a new draft declaration.
func (a *DraftAdapter) Create(ctx context.Context, accountID, reference string) error {
	resp, err := a.service.CreateDraft(ctx, primary.CreateDraftRequest{
		AccountID: accountID,
		Reference: reference,
	})
	if err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		printFieldErrors(a.out, resp.Errors)
		return fmt.Errorf("reference rejected")
	}

	fmt.Fprintf(a.out, "✓ Created draft %s\n", resp.Draft.ID)
	return nil
}

// List lists the account's in-progress drafts.
func (a *DraftAdapter) List(ctx context.Context, accountID string, pageSize int, pageToken string) error {
	resp, err := a.service.ListDrafts(ctx, primary.ListDraftsRequest{
		AccountID: accountID,
		PageSize:  pageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return fmt.Errorf("failed to list drafts: %w", err)
	}

	if len(resp.Drafts) == 0 {
		fmt.Fprintln(a.out, "No drafts found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-38s %-22s %s\n", "ID", "REFERENCE", "UPDATED")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────")
	for _, d := range resp.Drafts {
		fmt.Fprintf(a.out, "%-38s %-22s %s\n",
			d.ID, d.Reference.Value, d.State.Timestamp.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(a.out, "\n%d of %d draft(s)", len(resp.Drafts), resp.Total)
	if resp.NextToken != "" {
		fmt.Fprintf(a.out, " — next page token: %s", resp.NextToken)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays a draft's section statuses.
func (a *DraftAdapter) Show(ctx context.Context, accountID, draftID string) error {
	d, err := a.service.GetDraft(ctx, primary.RecordRequest{ID: draftID, AccountID: accountID})
	if err != nil {
		return fmt.Errorf("failed to get draft: %w", err)
	}

	fmt.Fprintf(a.out, "\nDraft:   %s\n", d.ID)
	if d.Reference.Value != "" {
		fmt.Fprintf(a.out, "Reference: %s\n", d.Reference.Value)
	}
	fmt.Fprintf(a.out, "Updated: %s\n\n", d.State.Timestamp.Format("2006-01-02 15:04"))

	sections := []struct {
		name   string
		status models.SectionStatus
	}{
		{"Your reference", d.Reference.Status},
		{"Waste description", d.WasteDescription.Status},
		{"Waste quantity", d.WasteQuantity.Status},
		{"Exporter details", d.ExporterDetail.Status},
		{"Importer details", d.ImporterDetail.Status},
		{"Collection date", d.CollectionDate.Status},
		{"Waste carriers", d.Carriers.Status},
		{"Collection details", d.CollectionDetail.Status},
		{"Location waste leaves the UK", d.UKExitLocation.Status},
		{"Countries waste travels through", d.TransitCountries.Status},
		{"Treatment sites", d.RecoveryFacilityDetail.Status},
		{"Check your report", d.Confirmation.Status},
		{"Sign declaration", d.Declaration.Status},
	}
	for _, s := range sections {
		fmt.Fprintf(a.out, "  %-34s %s\n", s.name, statusLabel(s.status))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Cancel cancels a draft with a typed reason.
func (a *DraftAdapter) Cancel(ctx context.Context, accountID, draftID string, cancelType models.CancellationType, reason string) error {
	err := a.service.CancelDraft(ctx, primary.CancelDraftRequest{
		ID:        draftID,
		AccountID: accountID,
		Type:      cancelType,
		Reason:    reason,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Draft %s cancelled\n", draftID)
	return nil
}

// Delete soft-deletes a draft.
func (a *DraftAdapter) Delete(ctx context.Context, accountID, draftID string) error {
	err := a.service.DeleteDraft(ctx, primary.RecordRequest{ID: draftID, AccountID: accountID})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Draft %s deleted\n", draftID)
	return nil
}

// SetReference updates the draft's customer reference.
func (a *DraftAdapter) SetReference(ctx context.Context, accountID, draftID, reference string) error {
	resp, err := a.service.SetReference(ctx, primary.RecordRequest{ID: draftID, AccountID: accountID}, reference)
	if err != nil {
		return err
	}
	if !resp.OK() {
		printFieldErrors(a.out, resp.Errors)
		return fmt.Errorf("reference rejected")
	}

	fmt.Fprintf(a.out, "✓ Reference updated\n")
	return nil
}

// Confirm records the review confirmation.
func (a *DraftAdapter) Confirm(ctx context.Context, accountID, draftID string) error {
	resp, err := a.service.SetConfirmation(ctx, primary.RecordRequest{ID: draftID, AccountID: accountID}, true)
	if err != nil {
		return err
	}
	if !resp.OK() {
		printFieldErrors(a.out, resp.Errors)
		return fmt.Errorf("confirmation rejected")
	}

	fmt.Fprintf(a.out, "✓ Draft %s confirmed\n", draftID)
	return nil
}

// Declare signs the declaration, finalising the draft into a submission.
func (a *DraftAdapter) Declare(ctx context.Context, accountID, draftID string) error {
	resp, err := a.service.SetDeclaration(ctx, primary.RecordRequest{ID: draftID, AccountID: accountID})
	if err != nil {
		return err
	}
	if !resp.OK() {
		printFieldErrors(a.out, resp.Errors)
		return fmt.Errorf("declaration rejected")
	}

	fmt.Fprintf(a.out, "✓ Draft %s submitted\n", draftID)
	return nil
}

// statusLabel renders a section status with the usual colouring.
func statusLabel(s models.SectionStatus) string {
	switch s {
	case models.StatusComplete:
		return color.New(color.FgHiGreen).Sprint("[complete]")
	case models.StatusStarted:
		return color.New(color.FgHiYellow).Sprint("[started]")
	case models.StatusCannotStart:
		return color.New(color.FgHiBlack).Sprint("[cannot start yet]")
	default:
		return color.New(color.FgWhite).Sprint("[not started]")
	}
}

// printFieldErrors writes validation failures one per line.
func printFieldErrors(out io.Writer, errs []models.FieldError) {
	for _, e := range errs {
		fmt.Fprintf(out, "%s %s: %s\n", color.New(color.FgRed).Sprint("✗"), e.Field, e.Message)
	}
}

// printCombinationErrors writes cross-field failures one per line.
func printCombinationErrors(out io.Writer, errs []models.CombinationError) {
	for _, e := range errs {
		fmt.Fprintf(out, "%s %v: %s\n", color.New(color.FgRed).Sprint("✗"), e.Fields, e.Message)
	}
}
