// Package sqlite contains SQLite implementations of repository interfaces.
// Records are stored as whole JSON documents with the columns the queries
// filter and sort on lifted out alongside.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/secondary"
)

// DraftRepository implements secondary.DraftRepository with SQLite.
type DraftRepository struct {
	db *sql.DB
}

// NewDraftRepository creates a new SQLite draft repository.
func NewDraftRepository(db *sql.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Create persists a new draft.
// The draft must have ID and AccountID pre-populated by the service layer.
func (r *DraftRepository) Create(ctx context.Context, draft *models.Draft) error {
	if draft.ID == "" {
		return fmt.Errorf("draft ID must be pre-populated by service layer")
	}
	if draft.AccountID == "" {
		return fmt.Errorf("draft AccountID must be pre-populated by service layer")
	}

	doc, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO drafts (id, account_id, state, updated_at, document) VALUES (?, ?, ?, ?, ?)",
		draft.ID, draft.AccountID, string(draft.State.Status), draft.State.Timestamp, string(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}

	return nil
}

// Get retrieves a draft by id and owner. Missing records and ownership
// mismatches both read as models.ErrNotFound.
func (r *DraftRepository) Get(ctx context.Context, id, accountID string) (*models.Draft, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		"SELECT document FROM drafts WHERE id = ? AND account_id = ?",
		id, accountID,
	).Scan(&doc)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	draft := &models.Draft{}
	if err := json.Unmarshal([]byte(doc), draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return draft, nil
}

// Save overwrites the whole draft document. The later of two concurrent
// writes wins.
func (r *DraftRepository) Save(ctx context.Context, draft *models.Draft) error {
	doc, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE drafts SET state = ?, updated_at = ?, document = ? WHERE id = ? AND account_id = ?",
		string(draft.State.Status), draft.State.Timestamp, string(doc), draft.ID, draft.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	if rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes the draft record.
func (r *DraftRepository) Delete(ctx context.Context, id, accountID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM drafts WHERE id = ? AND account_id = ?",
		id, accountID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// List retrieves the owner's drafts with paging, newest first by default.
func (r *DraftRepository) List(ctx context.Context, accountID string, query secondary.ListQuery) (*secondary.DraftPage, error) {
	where := "WHERE account_id = ?"
	args := []any{accountID}

	if len(query.States) > 0 {
		placeholders := make([]string, len(query.States))
		for i, state := range query.States {
			placeholders[i] = "?"
			args = append(args, string(state))
		}
		where += " AND state IN (" + strings.Join(placeholders, ", ") + ")"
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM drafts "+where, args...,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count drafts: %w", err)
	}

	order := "DESC"
	if query.Order == secondary.OrderAscending {
		order = "ASC"
	}

	limit := query.PageSize
	if limit <= 0 {
		limit = total
	}
	offset := decodePageToken(query.PageToken)

	sqlQuery := fmt.Sprintf(
		"SELECT document FROM drafts %s ORDER BY updated_at %s LIMIT ? OFFSET ?",
		where, order,
	)
	rows, err := r.db.QueryContext(ctx, sqlQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []models.Draft
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		var draft models.Draft
		if err := json.Unmarshal([]byte(doc), &draft); err != nil {
			return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
		}
		drafts = append(drafts, draft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	return &secondary.DraftPage{
		Drafts:    drafts,
		NextToken: nextPageToken(offset, len(drafts), total),
		Total:     total,
	}, nil
}

// decodePageToken turns a page token back into a row offset. Bad tokens
// read as the first page.
func decodePageToken(token string) int {
	if token == "" {
		return 0
	}
	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// nextPageToken returns the token for the page after this one, or empty
// when the listing is exhausted.
func nextPageToken(offset, returned, total int) string {
	next := offset + returned
	if returned == 0 || next >= total {
		return ""
	}
	return strconv.Itoa(next)
}
