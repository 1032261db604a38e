package orm

import (
	"encoding/json/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type crewMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (m *crewMember) GetID() int64 { return m.ID }

func TestCollectionMarshalsAsOrderedArray(t *testing.T) {
	coll := NewOrderedCollection[*crewMember, int64]([]*crewMember{
		{ID: 3, Name: "Cara"},
		{ID: 1, Name: "Ade"},
		{ID: 2, Name: "Ben"},
	})

	raw, err := json.Marshal(coll)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":3,"name":"Cara"},{"id":1,"name":"Ade"},{"id":2,"name":"Ben"}]`,
		string(raw))
}

func TestNilCollectionMarshalsAsNull(t *testing.T) {
	var coll *Collection[*crewMember, int64]
	raw, err := coll.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}
