package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/primary"
	"github.com/example/annex7/internal/validation"
)

// batchColumnCount is the fixed width of an upload row: the leading columns
// through the collection date, five carrier blocks of nine columns, and the
// trailing collection, exit and transit columns.
const batchColumnCount = 33 + 9*models.MaxCarriers + 12

// BatchAdapter is a thin adapter that reads tabular uploads and translates
// them to BatchService calls.
type BatchAdapter struct {
	service primary.BatchService
	out     io.Writer
}

// NewBatchAdapter creates a new BatchAdapter with the given service.
func NewBatchAdapter(service primary.BatchService, out io.Writer) *BatchAdapter {
	return &BatchAdapter{
		service: service,
		out:     out,
	}
}

// Validate parses a CSV upload from r and validates it as one batch.
// The first rows are instruction headers and are skipped.
func (a *BatchAdapter) Validate(ctx context.Context, accountID string, r io.Reader) error {
	rows, err := ReadRows(r)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data rows in upload")
	}

	result, err := a.service.ValidateBatch(ctx, primary.ValidateBatchRequest{
		AccountID: accountID,
		Rows:      rows,
	})
	if err != nil {
		return err
	}

	if !result.Valid {
		for _, report := range result.Reports {
			fmt.Fprintf(a.out, "\n%s row %d:\n", color.New(color.FgRed).Sprint("✗"), report.RowNumber)
			printFieldErrors(a.out, report.FieldErrors)
			printCombinationErrors(a.out, report.CombinationErrors)
		}
		fmt.Fprintf(a.out, "\n%d of %d row(s) failed; nothing was accepted\n", len(result.Reports), len(rows))
		return fmt.Errorf("batch rejected")
	}

	fmt.Fprintf(a.out, "✓ %d row(s) valid\n", len(result.Declarations))
	return nil
}

// ReadRows parses CSV records into loosely-typed rows, skipping the
// instruction header rows.
func ReadRows(r io.Reader) ([]models.BulkRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) <= validation.HeaderRowCount {
		return nil, nil
	}

	var rows []models.BulkRow
	for i, record := range records[validation.HeaderRowCount:] {
		if len(record) != batchColumnCount {
			return nil, fmt.Errorf("row %d has %d columns, expected %d",
				i+1+validation.HeaderRowCount, len(record), batchColumnCount)
		}
		rows = append(rows, mapRecord(record))
	}
	return rows, nil
}

// mapRecord maps one fixed-width CSV record onto the row struct. Column
// order matches the published upload template.
func mapRecord(rec []string) models.BulkRow {
	row := models.BulkRow{
		Reference: rec[0],

		BaselAnnexIXCode: rec[1],
		OECDCode:         rec[2],
		AnnexIIIACode:    rec[3],
		AnnexIIIBCode:    rec[4],
		Laboratory:       rec[5],
		EWCCodes:         rec[6],
		NationalCode:     rec[7],
		WasteDescription: rec[8],

		QuantityTonnes:            rec[9],
		QuantityCubicMetres:       rec[10],
		QuantityKilograms:         rec[11],
		QuantityLitres:            rec[12],
		EstimatedOrActualQuantity: rec[13],

		ExporterOrganisationName:   rec[14],
		ExporterAddressLine1:       rec[15],
		ExporterAddressLine2:       rec[16],
		ExporterTownOrCity:         rec[17],
		ExporterCountry:            rec[18],
		ExporterPostcode:           rec[19],
		ExporterContactFullName:    rec[20],
		ExporterContactPhoneNumber: rec[21],
		ExporterFaxNumber:          rec[22],
		ExporterEmailAddress:       rec[23],

		ImporterOrganisationName:   rec[24],
		ImporterAddress:            rec[25],
		ImporterCountry:            rec[26],
		ImporterContactFullName:    rec[27],
		ImporterContactPhoneNumber: rec[28],
		ImporterFaxNumber:          rec[29],
		ImporterEmailAddress:       rec[30],

		CollectionDate:                  rec[31],
		EstimatedOrActualCollectionDate: rec[32],
	}

	col := 33
	for i := 0; i < models.MaxCarriers; i++ {
		row.Carriers[i] = models.BulkRowCarrier{
			OrganisationName:        rec[col],
			Address:                 rec[col+1],
			Country:                 rec[col+2],
			ContactFullName:         rec[col+3],
			ContactPhoneNumber:      rec[col+4],
			FaxNumber:               rec[col+5],
			EmailAddress:            rec[col+6],
			MeansOfTransport:        rec[col+7],
			MeansOfTransportDetails: rec[col+8],
		}
		col += 9
	}

	row.CollectionOrganisationName = rec[col]
	row.CollectionAddressLine1 = rec[col+1]
	row.CollectionAddressLine2 = rec[col+2]
	row.CollectionTownOrCity = rec[col+3]
	row.CollectionCountry = rec[col+4]
	row.CollectionPostcode = rec[col+5]
	row.CollectionContactFullName = rec[col+6]
	row.CollectionContactPhoneNumber = rec[col+7]
	row.CollectionFaxNumber = rec[col+8]
	row.CollectionEmailAddress = rec[col+9]
	row.WhereWasteLeavesUK = rec[col+10]
	row.TransitCountries = rec[col+11]

	return row
}
