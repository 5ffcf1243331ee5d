// Package sqlite_test contains integration tests for the SQLite record
// stores. All setup goes through db.GetSchemaSQL() so the tests always run
// against the authoritative schema.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/annex7/internal/db"
	"github.com/example/annex7/internal/models"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})
	return testDB
}

// testDraft returns a minimal in-progress draft for store tests.
func testDraft(id, accountID string, updated time.Time) *models.Draft {
	return &models.Draft{
		ID:        id,
		AccountID: accountID,
		Reference: models.CustomerReferenceSection{
			Status: models.StatusComplete,
			Value:  "REF-" + id,
		},
		WasteDescription:       models.WasteDescriptionSection{Status: models.StatusNotStarted},
		WasteQuantity:          models.WasteQuantitySection{Status: models.StatusCannotStart},
		RecoveryFacilityDetail: models.RecoveryFacilitySection{Status: models.StatusCannotStart},
		Confirmation:           models.ConfirmationSection{Status: models.StatusCannotStart},
		Declaration:            models.DeclarationSection{Status: models.StatusCannotStart},
		State: models.LifecycleState{
			Status:    models.LifecycleInProgress,
			Timestamp: updated,
		},
	}
}

// testSubmission returns a minimal finalised submission for store tests.
func testSubmission(id, accountID string, declared time.Time) *models.Submission {
	return &models.Submission{
		ID:        id,
		AccountID: accountID,
		Reference: "REF-" + id,
		WasteDescription: models.WasteDescription{
			WasteCode:   models.WasteCode{Type: models.WasteCodeBaselAnnexIX, Code: "B1010"},
			EWCCodes:    []string{"010101"},
			Description: "baled aluminium scrap",
		},
		WasteQuantity: models.WasteQuantity{Unit: models.UnitTonne, Amount: 12.5},
		Declaration: models.DeclarationValues{
			DeclarationTimestamp: declared,
			TransactionID:        "2506_" + id,
		},
		State: models.LifecycleState{
			Status:    models.LifecycleSubmittedWithActuals,
			Timestamp: declared,
		},
	}
}
