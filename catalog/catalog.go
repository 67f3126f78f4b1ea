// SPDX-License-Identifier: MIT

// Package catalog stores named type descriptors in SQLite and checks
// incoming descriptors against them before a copy or load.
//
// A catalog entry records a parameter name, the canonical descriptor tag,
// snapshots of its dimension lengths, a uuid and a blake3 fingerprint.
// Check compares a live descriptor with the stored one using
// datatype.Descriptor.Equal, or Matches under WithLooseMatching.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/lvtype/datatype"
)

// Catalog is a SQLite-backed descriptor store. It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
	log    *slog.Logger
	loose  bool
}

// Open opens (creating if needed) the catalog database at path.
// path may be ":memory:" for a process-local catalog.
func Open(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	o := gatherOptions(opts)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(DefaultMaxOpenConns)

	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: init schema: %w", err)
	}

	o.logger.Debug("catalog opened", "path", path, "loose", o.loose)

	return &Catalog{db: db, log: o.logger, loose: o.loose}, nil
}

// Close releases the database. Further calls return ErrClosed.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.closed = true

	return c.db.Close()
}

// Put validates d and stores it under name, replacing any previous entry of
// that name (the entry ID and creation time of a replaced entry are kept).
// The current values of d's length references are snapshotted.
func (c *Catalog) Put(ctx context.Context, name string, d datatype.Descriptor) (Entry, error) {
	if name == "" {
		return Entry{}, ErrEmptyName
	}
	if err := d.Validate(); err != nil {
		return Entry{}, fmt.Errorf("catalog: put %q: %w", name, err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return Entry{}, ErrClosed
	}

	tag := d.String()
	ly, lx := snapshot(d.LengthY()), snapshot(d.LengthX())
	fp := Fingerprint(tag, ly, lx)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := c.db.ExecContext(ctx, upsertEntry,
		uuid.NewString(), name, tag, nullIndex(ly), nullIndex(lx), fp, now)
	if err != nil {
		return Entry{}, fmt.Errorf("catalog: put %q: %w", name, err)
	}
	c.log.Debug("descriptor stored", "name", name, "tag", tag, "fingerprint", fp)

	return c.get(ctx, name)
}

// Get returns the entry stored under name.
// Errors: ErrNotFound, ErrClosed.
func (c *Catalog) Get(ctx context.Context, name string) (Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return Entry{}, ErrClosed
	}

	return c.get(ctx, name)
}

func (c *Catalog) get(ctx context.Context, name string) (Entry, error) {
	e, err := scanEntry(c.db.QueryRowContext(ctx, selectEntry, name))
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("catalog: get %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("catalog: get %q: %w", name, err)
	}

	return e, nil
}

// List returns every entry ordered by name.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, ErrClosed
	}

	rows, err := c.db.QueryContext(ctx, selectEntries)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("catalog: list: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}

	return out, nil
}

// Delete removes the entry stored under name.
// Errors: ErrNotFound, ErrClosed.
func (c *Catalog) Delete(ctx context.Context, name string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}

	res, err := c.db.ExecContext(ctx, deleteEntry, name)
	if err != nil {
		return fmt.Errorf("catalog: delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("catalog: delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("catalog: delete %q: %w", name, ErrNotFound)
	}
	c.log.Debug("descriptor deleted", "name", name)

	return nil
}

// Check compares d with the descriptor stored under name.
// Errors: ErrNotFound, ErrIncompatible (message carries both tags), ErrClosed.
func (c *Catalog) Check(ctx context.Context, name string, d datatype.Descriptor) error {
	e, err := c.Get(ctx, name)
	if err != nil {
		return err
	}
	stored, err := e.Descriptor()
	if err != nil {
		return fmt.Errorf("catalog: check %q: %w", name, err)
	}

	ok := stored.Equal(d)
	if c.loose {
		ok = stored.Matches(d)
	}
	if !ok {
		c.log.Warn("descriptor mismatch", "name", name, "stored", describe(stored), "got", describe(d))
		return fmt.Errorf("catalog: check %q: stored %s, got %s: %w",
			name, describe(stored), describe(d), ErrIncompatible)
	}

	return nil
}

// describe renders a descriptor with its current lengths, e.g.
// "matrix<float64>[3x4]" or "vector<int8>[-x7]".
func describe(d datatype.Descriptor) string {
	if d.Arity() == 0 {
		return d.String()
	}
	return fmt.Sprintf("%s[%sx%s]", d, lengthText(d.LengthY()), lengthText(d.LengthX()))
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(r rowScanner) (Entry, error) {
	var (
		e       Entry
		ly, lx  sql.NullInt32
		created string
	)
	if err := r.Scan(&e.ID, &e.Name, &e.Tag, &ly, &lx, &e.Fingerprint, &created); err != nil {
		return Entry{}, err
	}
	if ly.Valid {
		v := ly.Int32
		e.LengthY = &v
	}
	if lx.Valid {
		v := lx.Int32
		e.LengthX = &v
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Entry{}, fmt.Errorf("created_at %q: %w", created, err)
	}
	e.CreatedAt = t

	return e, nil
}

func nullIndex(ref *datatype.Index) sql.NullInt32 {
	if ref == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *ref, Valid: true}
}
