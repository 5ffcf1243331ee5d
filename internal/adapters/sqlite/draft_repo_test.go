package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/annex7/internal/adapters/sqlite"
	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/secondary"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestDraftRepository_CreateAndGet(t *testing.T) {
	repo := sqlite.NewDraftRepository(setupTestDB(t))
	ctx := context.Background()

	draft := testDraft("d-1", "acc-1", baseTime)
	if err := repo.Create(ctx, draft); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.Get(ctx, "d-1", "acc-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Reference.Value != "REF-d-1" {
		t.Errorf("reference = %q, want REF-d-1", got.Reference.Value)
	}
	if got.WasteQuantity.Status != models.StatusCannotStart {
		t.Errorf("quantity status = %v, want CannotStart", got.WasteQuantity.Status)
	}
	if got.State.Status != models.LifecycleInProgress {
		t.Errorf("state = %v, want InProgress", got.State.Status)
	}
}

func TestDraftRepository_CreateRequiresIdentity(t *testing.T) {
	repo := sqlite.NewDraftRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testDraft("", "acc-1", baseTime)); err == nil {
		t.Error("expected error for missing id")
	}
	if err := repo.Create(ctx, testDraft("d-1", "", baseTime)); err == nil {
		t.Error("expected error for missing account id")
	}
}

func TestDraftRepository_GetWrongOwner(t *testing.T) {
	repo := sqlite.NewDraftRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testDraft("d-1", "acc-1", baseTime)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := repo.Get(ctx, "d-1", "acc-2"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get with wrong owner: error = %v, want ErrNotFound", err)
	}
	if _, err := repo.Get(ctx, "missing", "acc-1"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get missing record: error = %v, want ErrNotFound", err)
	}
}

func TestDraftRepository_Save(t *testing.T) {
	repo := sqlite.NewDraftRepository(setupTestDB(t))
	ctx := context.Background()

	draft := testDraft("d-1", "acc-1", baseTime)
	if err := repo.Create(ctx, draft); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	draft.Reference.Value = "CHANGED"
	draft.State.Timestamp = baseTime.Add(time.Hour)
	if err := repo.Save(ctx, draft); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Get(ctx, "d-1", "acc-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Reference.Value != "CHANGED" {
		t.Errorf("reference = %q after save", got.Reference.Value)
	}
}

func TestDraftRepository_SaveUnknownRecord(t *testing.T) {
	repo := sqlite.NewDraftRepository(setupTestDB(t))
	ctx := context.Background()

	err := repo.Save(ctx, testDraft("ghost", "acc-1", baseTime))
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Save unknown record: error = %v, want ErrNotFound", err)
	}
}

func TestDraftRepository_Delete(t *testing.T) {
	repo := sqlite.NewDraftRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testDraft("d-1", "acc-1", baseTime)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Delete(ctx, "d-1", "acc-2"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Delete with wrong owner: error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "d-1", "acc-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.Get(ctx, "d-1", "acc-1"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get after delete: error = %v, want ErrNotFound", err)
	}
}

func seedDrafts(t *testing.T, repo *sqlite.DraftRepository, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		d := testDraft(string(rune('a'+i)), "acc-1", baseTime.Add(time.Duration(i)*time.Minute))
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create #%d failed: %v", i, err)
		}
	}
}

func TestDraftRepository_ListOrdering(t *testing.T) {
	repo := sqlite.NewDraftRepository(setupTestDB(t))
	seedDrafts(t, repo, 3)

	page, err := repo.List(context.Background(), "acc-1", secondary.ListQuery{
		Order: secondary.OrderAscending,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 3 || len(page.Drafts) != 3 {
		t.Fatalf("got %d/%d drafts, want 3/3", len(page.Drafts), page.Total)
	}
	if page.Drafts[0].ID != "a" || page.Drafts[2].ID != "c" {
		t.Errorf("ascending order broken: %s..%s", page.Drafts[0].ID, page.Drafts[2].ID)
	}

	page, err = repo.List(context.Background(), "acc-1", secondary.ListQuery{
		Order: secondary.OrderDescending,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Drafts[0].ID != "c" {
		t.Errorf("descending order broken: first = %s", page.Drafts[0].ID)
	}
}

func TestDraftRepository_ListPaging(t *testing.T) {
	repo := sqlite.NewDraftRepository(setupTestDB(t))
	seedDrafts(t, repo, 5)
	ctx := context.Background()

	query := secondary.ListQuery{Order: secondary.OrderAscending, PageSize: 2}
	page, err := repo.List(ctx, "acc-1", query)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Drafts) != 2 || page.NextToken == "" {
		t.Fatalf("first page = %d drafts, token %q", len(page.Drafts), page.NextToken)
	}

	var seen []string
	for _, d := range page.Drafts {
		seen = append(seen, d.ID)
	}
	for page.NextToken != "" {
		query.PageToken = page.NextToken
		page, err = repo.List(ctx, "acc-1", query)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		for _, d := range page.Drafts {
			seen = append(seen, d.ID)
		}
	}
	if len(seen) != 5 {
		t.Errorf("paged through %d drafts, want 5: %v", len(seen), seen)
	}
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		if seen[i] != id {
			t.Errorf("seen[%d] = %s, want %s", i, seen[i], id)
		}
	}
}

func TestDraftRepository_ListBadTokenReadsFirstPage(t *testing.T) {
	repo := sqlite.NewDraftRepository(setupTestDB(t))
	seedDrafts(t, repo, 2)

	page, err := repo.List(context.Background(), "acc-1", secondary.ListQuery{
		Order:     secondary.OrderAscending,
		PageSize:  1,
		PageToken: "garbage",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Drafts) != 1 || page.Drafts[0].ID != "a" {
		t.Errorf("bad token should read the first page, got %+v", page.Drafts)
	}
}

func TestDraftRepository_ListStateFilter(t *testing.T) {
	repo := sqlite.NewDraftRepository(setupTestDB(t))
	ctx := context.Background()

	active := testDraft("d-1", "acc-1", baseTime)
	if err := repo.Create(ctx, active); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	cancelled := testDraft("d-2", "acc-1", baseTime.Add(time.Minute))
	cancelled.State.Status = models.LifecycleCancelled
	if err := repo.Create(ctx, cancelled); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	page, err := repo.List(ctx, "acc-1", secondary.ListQuery{
		States: []models.LifecycleStatus{models.LifecycleInProgress},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 1 || len(page.Drafts) != 1 || page.Drafts[0].ID != "d-1" {
		t.Errorf("state filter broken: %+v", page.Drafts)
	}
}

func TestDraftRepository_ListScopedToAccount(t *testing.T) {
	repo := sqlite.NewDraftRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testDraft("d-1", "acc-1", baseTime)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	other := testDraft("d-2", "acc-2", baseTime)
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	page, err := repo.List(ctx, "acc-1", secondary.ListQuery{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 1 || page.Drafts[0].ID != "d-1" {
		t.Errorf("listing leaked across accounts: %+v", page.Drafts)
	}
}
