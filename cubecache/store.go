// Package cubecache provides SQLite-backed persistence for shape-sets.
package cubecache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/polycube/cube"
	"github.com/katalvlaran/polycube/enumerate"
)

// schema holds one row per canonical key plus a per-size manifest. The
// complete flag flips only inside the Save transaction, after every key
// row of that size is written.
const schema = `
CREATE TABLE IF NOT EXISTS shapes (
	size INTEGER NOT NULL,
	key  BLOB    NOT NULL,
	PRIMARY KEY (size, key)
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS sizes (
	size     INTEGER PRIMARY KEY,
	count    INTEGER NOT NULL,
	complete INTEGER NOT NULL DEFAULT 0
);
`

// Store is a SQLite-backed enumerate.Store.
type Store struct {
	db   *sql.DB
	path string
}

var _ enumerate.Store = (*Store)(nil)

// DefaultPath returns the default database location under the user's home
// directory, creating the parent directory if needed.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cubecache: resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".polycube")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cubecache: create cache directory: %w", err)
	}

	return filepath.Join(dir, "shapes.db"), nil
}

// Open opens (or creates) the cache database at path and bootstraps the
// schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cubecache: create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cubecache: open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("cubecache: enable WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cubecache: apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (st *Store) Path() string { return st.path }

// Close releases the database handle.
func (st *Store) Close() error { return st.db.Close() }

// Load returns the shape-set for size n and true when that size is marked
// complete; otherwise (nil, false). Every loaded key is verified before
// the set is handed out: it must decode to a face-connected shape of
// exactly n cells and already be in canonical form. A database modified
// behind the store's back surfaces an error, never a poisoned set.
func (st *Store) Load(n int) (cube.Set, bool, error) {
	var count int
	err := st.db.QueryRow(
		"SELECT count FROM sizes WHERE size = ? AND complete = 1", n,
	).Scan(&count)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cubecache: read size manifest: %w", err)
	}

	rows, err := st.db.Query("SELECT key FROM shapes WHERE size = ?", n)
	if err != nil {
		return nil, false, fmt.Errorf("cubecache: read shapes: %w", err)
	}
	defer rows.Close()

	set := make(cube.Set, count)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, false, fmt.Errorf("cubecache: scan shape row: %w", err)
		}
		k := cube.Key(raw)
		s, err := cube.Decode(k)
		if err != nil {
			return nil, false, fmt.Errorf("cubecache: stored key for size %d: %w", n, err)
		}
		if len(s) != n {
			return nil, false, fmt.Errorf("cubecache: stored key for size %d decodes to %d cells: %w",
				n, len(s), cube.ErrBadKey)
		}
		if err := cube.Validate(s); err != nil {
			return nil, false, fmt.Errorf("cubecache: stored key for size %d: %w", n, err)
		}
		if cube.Canonicalize(s) != k {
			return nil, false, fmt.Errorf("cubecache: stored key for size %d is not canonical: %w",
				n, cube.ErrBadKey)
		}
		set.Add(k)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("cubecache: read shapes: %w", err)
	}
	if set.Len() != count {
		return nil, false, fmt.Errorf("cubecache: size %d holds %d keys, manifest says %d: %w",
			n, set.Len(), count, cube.ErrBadKey)
	}

	return set, true, nil
}

// Save persists the complete shape-set for size n in one transaction,
// replacing any prior rows for that size. The completeness flag is
// written last, so a crash mid-save leaves the size absent, not partial.
func (st *Store) Save(n int, set cube.Set) error {
	tx, err := st.db.Begin()
	if err != nil {
		return fmt.Errorf("cubecache: begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM shapes WHERE size = ?", n); err != nil {
		return fmt.Errorf("cubecache: clear size %d: %w", n, err)
	}

	ins, err := tx.Prepare("INSERT INTO shapes (size, key) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("cubecache: prepare insert: %w", err)
	}
	defer ins.Close()

	for _, k := range set.Keys() {
		if _, err := ins.Exec(n, []byte(k)); err != nil {
			return fmt.Errorf("cubecache: insert shape for size %d: %w", n, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO sizes (size, count, complete) VALUES (?, ?, 1) "+
			"ON CONFLICT(size) DO UPDATE SET count = excluded.count, complete = 1",
		n, set.Len(),
	); err != nil {
		return fmt.Errorf("cubecache: mark size %d complete: %w", n, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cubecache: commit save: %w", err)
	}

	return nil
}
