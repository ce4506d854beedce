// Package image persists named linx values in a SQLite database, so a
// runtime's globals can be saved and restored across processes.
package image

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/linx-lang/linx/vm"
	"github.com/linx-lang/linx/vm/codec"
	"github.com/tliron/commonlog"
	_ "modernc.org/sqlite"
)

// ErrNotFound indicates the requested value doesn't exist in the image.
var ErrNotFound = errors.New("image: value not found")

var log = commonlog.GetLogger("linx.image")

// Image is a SQLite-backed store of named values.
type Image struct {
	db   *sql.DB
	path string
}

// Entry describes a stored value without decoding it.
type Entry struct {
	Name    string
	Runtime string
	SavedAt time.Time
	Size    int
}

// Open opens or creates the image at path.
func Open(path string) (*Image, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS globals (
		name     TEXT PRIMARY KEY,
		data     BLOB NOT NULL,
		runtime  TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return &Image{db: db, path: path}, nil
}

// Path returns the database path the image was opened with.
func (img *Image) Path() string { return img.path }

// Close closes the database connection.
func (img *Image) Close() error {
	if img.db != nil {
		return img.db.Close()
	}
	return nil
}

// Put stores v under name, replacing any previous value. runtimeID records
// which runtime produced the value.
func (img *Image) Put(name string, v vm.Value, runtimeID string) error {
	data, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	_, err = img.db.Exec(
		"INSERT OR REPLACE INTO globals (name, data, runtime, saved_at) VALUES (?, ?, ?, ?)",
		name, data, runtimeID, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	return nil
}

// Get loads the value stored under name.
func (img *Image) Get(name string) (vm.Value, error) {
	var data []byte
	err := img.db.QueryRow("SELECT data FROM globals WHERE name = ?", name).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vm.NilValue(), fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return vm.NilValue(), fmt.Errorf("querying %s: %w", name, err)
	}
	v, err := codec.Unmarshal(data)
	if err != nil {
		return vm.NilValue(), fmt.Errorf("decoding %s: %w", name, err)
	}
	return v, nil
}

// Delete removes name from the image. Deleting a missing name is not an
// error.
func (img *Image) Delete(name string) error {
	if _, err := img.db.Exec("DELETE FROM globals WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting %s: %w", name, err)
	}
	return nil
}

// Entries lists stored values ordered by name.
func (img *Image) Entries() ([]Entry, error) {
	rows, err := img.db.Query("SELECT name, runtime, saved_at, length(data) FROM globals ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing image: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var savedAt int64
		if err := rows.Scan(&e.Name, &e.Runtime, &savedAt, &e.Size); err != nil {
			return nil, fmt.Errorf("scanning image row: %w", err)
		}
		e.SavedAt = time.Unix(0, savedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Names lists stored value names in order.
func (img *Image) Names() ([]string, error) {
	entries, err := img.Entries()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// SaveRuntime stores every global of rt in a single transaction. Globals
// holding functions, directly or nested, cannot be encoded and are skipped.
// It returns the number of globals saved.
func (img *Image) SaveRuntime(rt *vm.Runtime) (int, error) {
	tx, err := img.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning save: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UnixNano()
	saved := 0
	for _, name := range rt.GlobalNames() {
		v, _ := rt.LookupGlobal(name)
		data, err := codec.Marshal(v)
		if errors.Is(err, codec.ErrFunction) {
			log.Debugf("skipping global %s: holds a function", name)
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("encoding %s: %w", name, err)
		}
		_, err = tx.Exec(
			"INSERT OR REPLACE INTO globals (name, data, runtime, saved_at) VALUES (?, ?, ?, ?)",
			name, data, rt.ID, now,
		)
		if err != nil {
			return 0, fmt.Errorf("saving %s: %w", name, err)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing save: %w", err)
	}
	log.Infof("saved %d globals of runtime %s to %s", saved, rt.Name, img.path)
	return saved, nil
}

// LoadRuntime assigns every stored value to the global of the same name in
// rt. All values are decoded before any global is assigned, so on error rt
// is left unchanged. It returns the number of globals loaded.
func (img *Image) LoadRuntime(rt *vm.Runtime) (int, error) {
	names, err := img.Names()
	if err != nil {
		return 0, err
	}
	values := make([]vm.Value, len(names))
	for i, name := range names {
		if values[i], err = img.Get(name); err != nil {
			return 0, err
		}
	}
	for i, name := range names {
		rt.SetGlobal(name, values[i])
	}
	log.Infof("loaded %d globals into runtime %s from %s", len(names), rt.Name, img.path)
	return len(names), nil
}
