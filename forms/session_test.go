package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textSchema(t *testing.T, names ...string) *Schema {
	t.Helper()
	fields := make([]Field, 0, len(names))
	steps := make([]Step, 0, len(names))
	for i, name := range names {
		fields = append(fields, Field{Name: name, Kind: KindText, Label: "Location"})
		steps = append(steps, Step{
			Index:  i + 1,
			Fields: []string{name},
			Checks: []Check{{Field: name}},
		})
	}
	schema, err := NewSchema("locations", fields, steps)
	require.NoError(t, err)
	return schema
}

func TestNewSessionStartsAtStepOne(t *testing.T) {
	s := NewSession(textSchema(t, "loc1", "loc2", "loc3"))
	assert.Equal(t, 1, s.Current())
	assert.False(t, s.IsComplete())
}

func TestAdvanceIdempotentOnFailure(t *testing.T) {
	s := NewSession(textSchema(t, "loc1", "loc2"))
	first := s.Advance()
	second := s.Advance()
	assert.False(t, first.OK)
	assert.Equal(t, first.Reason, second.Reason)
	assert.Equal(t, 1, s.Current())
}

func TestRetreatFloorsAtStepOne(t *testing.T) {
	s := NewSession(textSchema(t, "loc1", "loc2"))
	s.Retreat()
	s.Retreat()
	assert.Equal(t, 1, s.Current())
}

func TestAdvanceThroughFourLocations(t *testing.T) {
	s := NewSession(textSchema(t, "loc1", "loc2", "loc3", "loc4"))
	for _, name := range []string{"loc1", "loc2", "loc3"} {
		require.NoError(t, s.SetText(name, "west stairwell"))
	}
	for i := 0; i < 3; i++ {
		res := s.Advance()
		require.True(t, res.OK, res.Reason)
	}
	require.Equal(t, 4, s.Current())

	// loc4 unset: the fourth advance fails in place
	res := s.Advance()
	assert.False(t, res.OK)
	assert.Equal(t, "Location is required", res.Reason)
	assert.Equal(t, 4, s.Current())
}

func TestAdvancePastFinalStepRejected(t *testing.T) {
	s := NewSession(textSchema(t, "loc1"))
	require.NoError(t, s.SetText("loc1", "yard"))
	res := s.Advance()
	assert.False(t, res.OK)
	assert.Equal(t, "already at final step", res.Reason)
	assert.Equal(t, 1, s.Current())
	assert.True(t, s.IsComplete())
}

func catalogSchema(t *testing.T, kind FieldKind) *Schema {
	t.Helper()
	schema, err := NewSchema("causes",
		[]Field{{
			Name:    "cause",
			Kind:    kind,
			Label:   "Basic Cause",
			Catalog: []string{"Asphyxiation", "Collision", "Fire"},
		}},
		[]Step{{Index: 1, Fields: []string{"cause"}, Checks: []Check{{Field: "cause"}}}},
	)
	require.NoError(t, err)
	return schema
}

func TestSingleSelectToggleOff(t *testing.T) {
	s := NewSession(catalogSchema(t, KindOption))
	require.NoError(t, s.Toggle("cause", "Fire"))
	assert.Equal(t, []string{"Fire"}, s.Answers().Selected("cause"))

	// reselect clears, does not duplicate
	require.NoError(t, s.Toggle("cause", "Fire"))
	assert.Empty(t, s.Answers().Selected("cause"))

	// selecting another value replaces
	require.NoError(t, s.Toggle("cause", "Fire"))
	require.NoError(t, s.Toggle("cause", "Collision"))
	assert.Equal(t, []string{"Collision"}, s.Answers().Selected("cause"))
}

func TestAtLeastOneSelectedRevertsOnDeselect(t *testing.T) {
	s := NewSession(catalogSchema(t, KindOptionSet))
	assert.False(t, s.Advance().OK)

	require.NoError(t, s.Toggle("cause", "Collision"))
	assert.True(t, s.IsComplete())

	require.NoError(t, s.Toggle("cause", "Collision"))
	res := s.Advance()
	assert.False(t, res.OK)
	assert.Equal(t, "Select at least one option for Basic Cause", res.Reason)
}

func TestSubmitExportsEveryDeclaredField(t *testing.T) {
	schema, err := NewSchema("mixed",
		[]Field{
			{Name: "site", Kind: KindText, Label: "Site"},
			{Name: "happened_on", Kind: KindDate, Label: "Date"},
			{Name: "confirmed", Kind: KindFlag, Label: "Declaration"},
			{Name: "injured", Kind: KindTriState, Label: "Injury"},
			{Name: "hazards", Kind: KindOptionSet, Label: "Hazards", Catalog: []string{"Noise", "Dust"}},
		},
		[]Step{
			{Index: 1, Fields: []string{"site", "happened_on"}, Checks: []Check{{Field: "site"}, {Field: "happened_on"}}},
			{Index: 2, Fields: []string{"confirmed", "injured", "hazards"}, Checks: []Check{{Field: "injured"}}},
		},
	)
	require.NoError(t, err)

	s := NewSession(schema)
	require.NoError(t, s.SetText("site", "Dockside"))
	require.NoError(t, s.SetText("happened_on", "2026-08-14"))
	require.True(t, s.Advance().OK)
	require.NoError(t, s.SetTri("injured", No))

	answers, res := s.Submit()
	require.True(t, res.OK, res.Reason)
	assert.Len(t, answers, 5)
	assert.Equal(t, "Dockside", answers["site"])
	assert.Equal(t, No, answers["injured"])
	assert.Equal(t, false, answers["confirmed"]) // unset flag still exported
	assert.Equal(t, []string{}, answers["hazards"])
}

func TestSubmitBeforeFinalStepRejected(t *testing.T) {
	s := NewSession(textSchema(t, "loc1", "loc2"))
	_, res := s.Submit()
	assert.False(t, res.OK)
}

func TestDateShapeChecked(t *testing.T) {
	schema, err := NewSchema("dated",
		[]Field{{Name: "happened_on", Kind: KindDate, Label: "Incident Date"}},
		[]Step{{Index: 1, Fields: []string{"happened_on"}, Checks: []Check{{Field: "happened_on"}}}},
	)
	require.NoError(t, err)

	s := NewSession(schema)
	require.NoError(t, s.SetText("happened_on", "14/08/2026"))
	res := s.Advance()
	assert.False(t, res.OK)
	assert.Equal(t, "Incident Date must be a valid date", res.Reason)
}

func TestUnknownFieldRejected(t *testing.T) {
	s := NewSession(textSchema(t, "loc1"))
	err := s.SetText("loc9", "nope")
	assert.ErrorIs(t, err, ErrUnknownField)

	err = s.SetFlag("loc1", true)
	assert.ErrorIs(t, err, ErrFieldKind)
}
