package sqldb

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFSRewritesPlaceholders(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/incident_select.sql": {Data: []byte("SELECT * FROM incidents WHERE id = ?")},
	}
	store := NewRawStore()
	require.NoError(t, store.LoadFromFS(fsys, "sql", "pgsql", '$'))
	assert.Equal(t, "SELECT * FROM incidents WHERE id = $1", store.MustGet("incident_select"))
}

func TestLoadFromFSDialectOverride(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/talk_insert.sql":   {Data: []byte("INSERT INTO talks (number) VALUES (?)")},
		"sql/talk_insert.pgsql": {Data: []byte("INSERT INTO talks (number) VALUES ($1) RETURNING id")},
	}
	store := NewRawStore()
	require.NoError(t, store.LoadFromFS(fsys, "sql", "pgsql", '$'))
	assert.Equal(t, "INSERT INTO talks (number) VALUES ($1) RETURNING id", store.MustGet("talk_insert"))

	// other dialects ignore the pgsql file
	store = NewRawStore()
	require.NoError(t, store.LoadFromFS(fsys, "sql", "mysql", '?'))
	assert.Equal(t, "INSERT INTO talks (number) VALUES (?)", store.MustGet("talk_insert"))
}

func TestMustGetPanicsOnMissingKey(t *testing.T) {
	store := NewRawStore()
	assert.Panics(t, func() { store.MustGet("nope") })
}
