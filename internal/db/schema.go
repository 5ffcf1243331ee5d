package db

// SchemaSQL is the complete schema for fresh installs.
//
// Draft and submission records are stored as whole JSON documents with the
// columns the repositories filter and sort on lifted out. All tests use
// this schema via GetSchemaSQL() so repository code and schema cannot
// drift apart silently.
const SchemaSQL = `
-- In-progress draft declarations
CREATE TABLE IF NOT EXISTS drafts (
	id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	state TEXT NOT NULL,
	updated_at DATETIME NOT NULL,
	document TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_drafts_account ON drafts(account_id, updated_at);

-- Finalised declarations (immutable once written)
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	transaction_id TEXT NOT NULL,
	state TEXT NOT NULL,
	updated_at DATETIME NOT NULL,
	document TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submissions_account ON submissions(account_id, updated_at);
`

// GetSchemaSQL returns the schema for tests to build fresh databases from.
func GetSchemaSQL() string {
	return SchemaSQL
}
