package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/example/annex7/internal/models"
	"github.com/example/annex7/internal/ports/secondary"
)

// SubmissionRepository implements secondary.SubmissionRepository with
// SQLite. Submissions are written once at finalisation and never updated.
type SubmissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a new SQLite submission repository.
func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create persists a finalised submission.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if submission.ID == "" {
		return fmt.Errorf("submission ID must be pre-populated by service layer")
	}
	if submission.Declaration.TransactionID == "" {
		return fmt.Errorf("submission transaction ID must be pre-populated by service layer")
	}

	doc, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO submissions (id, account_id, transaction_id, state, updated_at, document) VALUES (?, ?, ?, ?, ?, ?)",
		submission.ID, submission.AccountID, submission.Declaration.TransactionID,
		string(submission.State.Status), submission.State.Timestamp, string(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}

	return nil
}

// Get retrieves a submission by id and owner.
func (r *SubmissionRepository) Get(ctx context.Context, id, accountID string) (*models.Submission, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		"SELECT document FROM submissions WHERE id = ? AND account_id = ?",
		id, accountID,
	).Scan(&doc)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	submission := &models.Submission{}
	if err := json.Unmarshal([]byte(doc), submission); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}
	return submission, nil
}

// List retrieves the owner's submissions with paging, newest first by
// default.
func (r *SubmissionRepository) List(ctx context.Context, accountID string, query secondary.ListQuery) (*secondary.SubmissionPage, error) {
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
		"SELECT COUNT(*) FROM submissions "+where, args...,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
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
		"SELECT document FROM submissions %s ORDER BY updated_at %s LIMIT ? OFFSET ?",
		where, order,
	)
	rows, err := r.db.QueryContext(ctx, sqlQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		var submission models.Submission
		if err := json.Unmarshal([]byte(doc), &submission); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
		}
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return &secondary.SubmissionPage{
		Submissions: submissions,
		NextToken:   nextPageToken(offset, len(submissions), total),
		Total:       total,
	}, nil
}
