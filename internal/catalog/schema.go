package catalog

// schemaVersion1 is the first and current catalog schema.
const schemaVersion1 = 1

// schema1 is the catalog DDL. Sequences are stored with their payload as
// a JSON blob plus the columns the list views need.
var schema1 = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS sequences (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	word       TEXT NOT NULL,
	cap_type   TEXT NOT NULL,
	slice_size TEXT NOT NULL,
	length     INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	payload    BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sequences_cap_type ON sequences(cap_type);
CREATE INDEX IF NOT EXISTS idx_sequences_word ON sequences(word);
`
