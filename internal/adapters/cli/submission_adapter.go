package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/annex7/internal/ports/primary"
)

// SubmissionAdapter is a thin adapter that translates CLI operations to
// SubmissionService calls.
type SubmissionAdapter struct {
	service primary.SubmissionService
	out     io.Writer
}

// NewSubmissionAdapter creates a new SubmissionAdapter with the given service.
func NewSubmissionAdapter(service primary.SubmissionService, out io.Writer) *SubmissionAdapter {
	return &SubmissionAdapter{
		service: service,
		out:     out,
	}
}

// List lists the account's finalised submissions.
func (a *SubmissionAdapter) List(ctx context.Context, accountID string, pageSize int, pageToken string) error {
	resp, err := a.service.ListSubmissions(ctx, primary.ListSubmissionsRequest{
		AccountID: accountID,
		PageSize:  pageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}

	if len(resp.Submissions) == 0 {
		fmt.Fprintln(a.out, "No submissions found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-15s %-22s %-28s %s\n", "TRANSACTION", "REFERENCE", "STATE", "DECLARED")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────")
	for _, s := range resp.Submissions {
		fmt.Fprintf(a.out, "%-15s %-22s %-28s %s\n",
			s.Declaration.TransactionID, s.Reference, s.State.Status,
			s.Declaration.DeclarationTimestamp.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(a.out, "\n%d of %d submission(s)", len(resp.Submissions), resp.Total)
	if resp.NextToken != "" {
		fmt.Fprintf(a.out, " — next page token: %s", resp.NextToken)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays one finalised submission.
func (a *SubmissionAdapter) Show(ctx context.Context, accountID, submissionID string) error {
	s, err := a.service.GetSubmission(ctx, primary.RecordRequest{ID: submissionID, AccountID: accountID})
	if err != nil {
		return fmt.Errorf("failed to get submission: %w", err)
	}

	fmt.Fprintf(a.out, "\nSubmission:  %s\n", s.ID)
	fmt.Fprintf(a.out, "Transaction: %s\n", s.Declaration.TransactionID)
	if s.Reference != "" {
		fmt.Fprintf(a.out, "Reference:   %s\n", s.Reference)
	}
	fmt.Fprintf(a.out, "State:       %s\n", s.State.Status)
	fmt.Fprintf(a.out, "Declared:    %s\n\n", s.Declaration.DeclarationTimestamp.Format("2006-01-02 15:04"))

	fmt.Fprintf(a.out, "Waste:       %s %s\n", s.WasteDescription.WasteCode.Type, s.WasteDescription.WasteCode.Code)
	fmt.Fprintf(a.out, "EWC codes:   %s\n", strings.Join(s.WasteDescription.EWCCodes, "; "))
	fmt.Fprintf(a.out, "Quantity:    %.2f %s", s.WasteQuantity.Amount, s.WasteQuantity.Unit)
	if s.WasteQuantity.Estimate {
		fmt.Fprint(a.out, " (estimated)")
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Collection:  %02d/%02d/%04d", s.CollectionDate.Day, s.CollectionDate.Month, s.CollectionDate.Year)
	if s.CollectionDate.Estimate {
		fmt.Fprint(a.out, " (estimated)")
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Importer:    %s, %s\n", s.ImporterDetail.Contact.OrganisationName, s.ImporterDetail.Country)

	if len(s.Carriers) > 0 {
		fmt.Fprintln(a.out, "Carriers:")
		for _, c := range s.Carriers {
			fmt.Fprintf(a.out, "  - %s (%s)\n", c.Contact.OrganisationName, c.Means)
		}
	}
	if len(s.Facilities) > 0 {
		fmt.Fprintln(a.out, "Treatment sites:")
		for _, f := range s.Facilities {
			fmt.Fprintf(a.out, "  - %s: %s, %s\n", f.Type, f.Name, f.Country)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}
