package sqlite

const schemaSQL = `
CREATE TABLE IF NOT EXISTS contacts (
	position INTEGER PRIMARY KEY,
	id       INTEGER NOT NULL UNIQUE,
	name     TEXT    NOT NULL,
	record   TEXT    NOT NULL
);
`

const (
	deleteAllSQL = `DELETE FROM contacts`
	insertSQL    = `INSERT INTO contacts (position, id, name, record) VALUES (?, ?, ?, ?)`
	selectAllSQL = `SELECT record FROM contacts ORDER BY position`
	countSQL     = `SELECT COUNT(*) FROM contacts`
)
