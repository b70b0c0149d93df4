package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: buckets must be created before its child tables due to
// foreign key constraints.
const schema = `
CREATE TABLE IF NOT EXISTS buckets (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    currency TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS participants (
    bucket_id TEXT NOT NULL,
    uid TEXT NOT NULL,
    email TEXT NOT NULL,
    display_name TEXT,
    added_at INTEGER NOT NULL,
    PRIMARY KEY (bucket_id, uid),
    FOREIGN KEY (bucket_id) REFERENCES buckets(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    bucket_id TEXT NOT NULL,
    title TEXT NOT NULL,
    amount REAL NOT NULL,
    paid_by TEXT NOT NULL,
    split_type TEXT NOT NULL,
    notes TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (bucket_id) REFERENCES buckets(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS expense_splits (
    expense_id TEXT NOT NULL,
    uid TEXT NOT NULL,
    percentage REAL NOT NULL,
    PRIMARY KEY (expense_id, uid),
    FOREIGN KEY (expense_id) REFERENCES expenses(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS credits (
    id TEXT PRIMARY KEY,
    bucket_id TEXT NOT NULL,
    title TEXT NOT NULL,
    amount REAL NOT NULL,
    received_by TEXT NOT NULL,
    split_type TEXT NOT NULL,
    notes TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (bucket_id) REFERENCES buckets(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS credit_splits (
    credit_id TEXT NOT NULL,
    uid TEXT NOT NULL,
    percentage REAL NOT NULL,
    PRIMARY KEY (credit_id, uid),
    FOREIGN KEY (credit_id) REFERENCES credits(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_participants_bucket_id ON participants(bucket_id);
CREATE INDEX IF NOT EXISTS idx_expenses_bucket_id ON expenses(bucket_id);
CREATE INDEX IF NOT EXISTS idx_expense_splits_expense_id ON expense_splits(expense_id);
CREATE INDEX IF NOT EXISTS idx_credits_bucket_id ON credits(bucket_id);
CREATE INDEX IF NOT EXISTS idx_credit_splits_credit_id ON credit_splits(credit_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
