package sqldb

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"
)

// RawSQLStore holds raw SQL statements keyed by name, loaded once at startup
// from an embedded `sql` directory.
type RawSQLStore struct {
	stmts map[string]string
}

func NewRawStore() *RawSQLStore {
	return &RawSQLStore{stmts: make(map[string]string)}
}

func (s *RawSQLStore) Set(key string, rawStmt string) {
	s.stmts[key] = rawStmt
}

func (s *RawSQLStore) Get(key string) (string, bool) {
	stmt, exists := s.stmts[key]
	return stmt, exists
}

// MustGet panics on a missing statement key. Statement keys are static,
// so a miss is a programming error caught by any test touching the store.
func (s *RawSQLStore) MustGet(key string) string {
	stmt, exists := s.stmts[key]
	if !exists {
		panic(fmt.Sprintf("sqldb: raw statement %q not loaded", key))
	}
	return stmt
}

// LoadFromFS fills the store from `<dir>/*.sql` files in fsys.
// Statement key = filename without extension. A `.<dbtype>` file
// (e.g. talks_insert.pgsql) overrides the standard `.sql` one for that
// dialect; standard files get their `?` placeholders rewritten for the
// dialect's prefix.
func (s *RawSQLStore) LoadFromFS(fsys fs.FS, dir string, dbType string, prefix byte) error {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read embedded %q dir: %w", dir, err)
	}
	cnt := 0
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		filename := f.Name()
		ext := strings.TrimPrefix(path.Ext(filename), ".")
		name := strings.TrimSuffix(filename, "."+ext)
		data, err := fs.ReadFile(fsys, path.Join(dir, filename))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filename, err)
		}
		switch ext {
		case dbType:
			// exact matching file extension -> use it as-is for dialects
			s.Set(name, string(data))
			cnt++
		case "sql":
			if _, exists := s.Get(name); !exists {
				s.Set(name, ReplaceStaticPlaceholders(string(data), prefix))
				cnt++
			}
		}
	}
	log.Printf("[INFO][%s] %d sql raw stmts loaded", dbType, cnt)
	return nil
}
