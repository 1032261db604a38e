package nullable

import (
	"encoding/json/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitetools/ops-core/forms"
)

func TestBoolTriStateRoundTrip(t *testing.T) {
	cases := []struct {
		in   forms.TriState
		json string
	}{
		{forms.Yes, "true"},
		{forms.No, "false"},
		{forms.Unanswered, "null"},
	}
	for _, c := range cases {
		b := FromTriState(c.in)
		assert.Equal(t, c.in, b.TriState())

		raw, err := json.Marshal(&b)
		require.NoError(t, err)
		assert.Equal(t, c.json, string(raw))

		var back Bool
		require.NoError(t, json.Unmarshal(raw, &back))
		assert.Equal(t, c.in, back.TriState())
	}
}

func TestBoolScanNullIsUnanswered(t *testing.T) {
	var b Bool
	require.NoError(t, b.Scan(nil))
	assert.Equal(t, forms.Unanswered, b.TriState())
	assert.True(t, b.IsNil())
}
