// SPDX-License-Identifier: MIT

package catalog

// schemaDDL creates the single descriptors table. Lengths are snapshots of
// the caller's dimension variables taken at Put time; NULL means the
// descriptor carried no reference on that axis.
const schemaDDL = `CREATE TABLE IF NOT EXISTS descriptors (
    entry_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    tag TEXT NOT NULL,
    length_y INTEGER,
    length_x INTEGER,
    fingerprint TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

const (
	upsertEntry = `INSERT INTO descriptors (entry_id, name, tag, length_y, length_x, fingerprint, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    tag = excluded.tag,
    length_y = excluded.length_y,
    length_x = excluded.length_x,
    fingerprint = excluded.fingerprint`

	selectEntry = `SELECT entry_id, name, tag, length_y, length_x, fingerprint, created_at
FROM descriptors WHERE name = ?`

	selectEntries = `SELECT entry_id, name, tag, length_y, length_x, fingerprint, created_at
FROM descriptors ORDER BY name`

	deleteEntry = `DELETE FROM descriptors WHERE name = ?`
)
