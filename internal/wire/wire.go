// Package wire provides dependency injection for the annex7 application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/annex7/internal/adapters/cli"
	"github.com/example/annex7/internal/adapters/refdata"
	"github.com/example/annex7/internal/adapters/sqlite"
	"github.com/example/annex7/internal/app"
	"github.com/example/annex7/internal/db"
	"github.com/example/annex7/internal/ports/primary"
)

var (
	draftService      primary.DraftService
	submissionService primary.SubmissionService
	batchService      primary.BatchService
	once              sync.Once
)

// DraftService returns the singleton DraftService instance.
func DraftService() primary.DraftService {
	once.Do(initServices)
	return draftService
}

// SubmissionService returns the singleton SubmissionService instance.
func SubmissionService() primary.SubmissionService {
	once.Do(initServices)
	return submissionService
}

// BatchService returns the singleton BatchService instance.
func BatchService() primary.BatchService {
	once.Do(initServices)
	return batchService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	draftRepo := sqlite.NewDraftRepository(database)
	submissionRepo := sqlite.NewSubmissionRepository(database)
	refProvider := refdata.NewProvider()

	// Services (primary ports implementation)
	draftService = app.NewDraftService(draftRepo, submissionRepo, refProvider)
	submissionService = app.NewSubmissionService(submissionRepo)
	batchService = app.NewBatchService(refProvider)
}

// DraftAdapter returns a new DraftAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func DraftAdapter() *cliadapter.DraftAdapter {
	return DraftAdapterWithOutput(os.Stdout)
}

// DraftAdapterWithOutput returns a new DraftAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func DraftAdapterWithOutput(out io.Writer) *cliadapter.DraftAdapter {
	once.Do(initServices)
	return cliadapter.NewDraftAdapter(draftService, out)
}

// SubmissionAdapter returns a new SubmissionAdapter writing to stdout.
func SubmissionAdapter() *cliadapter.SubmissionAdapter {
	return SubmissionAdapterWithOutput(os.Stdout)
}

// SubmissionAdapterWithOutput returns a new SubmissionAdapter writing to the given output.
func SubmissionAdapterWithOutput(out io.Writer) *cliadapter.SubmissionAdapter {
	once.Do(initServices)
	return cliadapter.NewSubmissionAdapter(submissionService, out)
}

// BatchAdapter returns a new BatchAdapter writing to stdout.
func BatchAdapter() *cliadapter.BatchAdapter {
	return BatchAdapterWithOutput(os.Stdout)
}

// BatchAdapterWithOutput returns a new BatchAdapter writing to the given output.
func BatchAdapterWithOutput(out io.Writer) *cliadapter.BatchAdapter {
	once.Do(initServices)
	return cliadapter.NewBatchAdapter(batchService, out)
}
