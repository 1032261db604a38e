package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitetools/ops-core/forms"
)

func completeIncidentSession(t *testing.T) *forms.Session {
	t.Helper()
	s := forms.NewSession(IncidentSchema())
	require.NoError(t, s.SetText("number", "INC-2026-0042"))
	require.NoError(t, s.Toggle("reportType", ReportTypeNearMiss))
	require.NoError(t, s.SetText("occurredOn", "2026-03-14"))
	require.NoError(t, s.SetText("site", "Riverside plot 3"))
	require.NoError(t, s.SetText("locationDetail", "West stairwell"))
	require.NoError(t, s.SetText("description", "Scaffold board slipped."))
	require.NoError(t, s.Toggle("basicCauses", "Collision"))
	require.NoError(t, s.Toggle("basicCauses", "Fall from height"))
	require.NoError(t, s.Toggle("hazardSources", "Scaffolding"))
	require.NoError(t, s.Toggle("rootCauses", "Time pressure"))
	require.NoError(t, s.SetText("correctiveActions", "Re-brief the scaffold crew."))
	for i := 0; i < 6; i++ {
		res := s.Advance()
		require.True(t, res.OK, res.Reason)
	}
	return s
}

func TestIncidentWizardLocationMessage(t *testing.T) {
	s := forms.NewSession(IncidentSchema())
	require.NoError(t, s.SetText("number", "INC-1"))
	require.NoError(t, s.Toggle("reportType", ReportTypeIncident))
	require.NoError(t, s.SetText("occurredOn", "2026-03-14"))
	require.True(t, s.Advance().OK)

	require.NoError(t, s.SetText("site", "Riverside plot 3"))
	res := s.Advance()
	assert.False(t, res.OK)
	assert.Equal(t, "Location is required", res.Reason)
}

func TestIncidentWizardRejectsMalformedDate(t *testing.T) {
	s := forms.NewSession(IncidentSchema())
	require.NoError(t, s.SetText("number", "INC-1"))
	require.NoError(t, s.Toggle("reportType", ReportTypeIncident))
	require.NoError(t, s.SetText("occurredOn", "14/03/2026"))
	res := s.Advance()
	assert.False(t, res.OK)
	assert.Equal(t, "Date of occurrence must be a valid date", res.Reason)
}

func TestIncidentWizardCauseStepsNeedASelection(t *testing.T) {
	s := forms.NewSession(IncidentSchema())
	require.NoError(t, s.SetText("number", "INC-1"))
	require.NoError(t, s.Toggle("reportType", ReportTypeIncident))
	require.NoError(t, s.SetText("occurredOn", "2026-03-14"))
	require.NoError(t, s.SetText("site", "Riverside plot 3"))
	require.NoError(t, s.SetText("locationDetail", "West stairwell"))
	require.NoError(t, s.SetText("description", "Scaffold board slipped."))
	for i := 0; i < 3; i++ {
		require.True(t, s.Advance().OK)
	}

	res := s.Advance()
	assert.False(t, res.OK)
	assert.Equal(t, "Select at least one option for Basic causes", res.Reason)

	require.NoError(t, s.Toggle("basicCauses", "Collision"))
	assert.True(t, s.Advance().OK)
}

func TestIncidentWizardRejectsOffCatalogCause(t *testing.T) {
	s := forms.NewSession(IncidentSchema())
	assert.Error(t, s.Toggle("basicCauses", "Bad weather karma"))
}

func TestIncidentFromAnswers(t *testing.T) {
	s := completeIncidentSession(t)
	_, res := s.Submit()
	require.True(t, res.OK, res.Reason)

	r, err := IncidentFromAnswers(s, 1, "u-100", "Pat Mason")
	require.NoError(t, err)
	assert.Equal(t, "INC-2026-0042", r.Number)
	assert.Equal(t, ReportTypeNearMiss, r.ReportType)
	assert.True(t, r.IsNearMiss())
	assert.Equal(t, "2026-03-14", r.OccurredOn.Format("2006-01-02"))
	assert.Equal(t, StringList{"Collision", "Fall from height"}, r.BasicCauses)
	assert.Equal(t, "Pat Mason", r.AuthorName)
	assert.False(t, r.InjuredPerson.Valid) // nothing entered -> NULL
	assert.Equal(t, "Re-brief the scaffold crew.", r.CorrectiveActions.String)
}

func TestDSEFromAnswersKeepsUnansweredNull(t *testing.T) {
	s := forms.NewSession(DSESchema())
	require.NoError(t, s.SetText("number", "DSE-2026-0007"))
	require.NoError(t, s.SetText("employeeName", "Chris Webb"))
	require.NoError(t, s.SetText("assessedOn", "2026-02-02"))
	require.NoError(t, s.SetTri("screenReadable", forms.Yes))
	require.NoError(t, s.SetTri("keyboardComfortable", forms.No))
	require.NoError(t, s.SetTri("chairAdjustable", forms.Yes))
	require.NoError(t, s.SetTri("deskSpaceAdequate", forms.Yes))
	require.NoError(t, s.SetTri("lightingAdequate", forms.Yes))
	require.NoError(t, s.SetTri("breaksTaken", forms.No))
	for i := 0; i < 3; i++ {
		res := s.Advance()
		require.True(t, res.OK, res.Reason)
	}
	_, res := s.Submit()
	require.True(t, res.OK, res.Reason)

	d, err := DSEFromAnswers(s, 1, "u-100")
	require.NoError(t, err)
	assert.Equal(t, forms.Yes, d.ScreenReadable.TriState())
	assert.Equal(t, forms.No, d.KeyboardComfortable.TriState())
	assert.False(t, d.Notes.Valid)
}

func TestIncidentApplyRevisionKeepsIdentity(t *testing.T) {
	s := completeIncidentSession(t)
	_, res := s.Submit()
	require.True(t, res.OK, res.Reason)
	revision, err := IncidentFromAnswers(s, 1, "u-100", "Pat Mason")
	require.NoError(t, err)

	filed := &IncidentReport{
		ID:          42,
		Number:      "INC-2026-0001",
		ReportType:  ReportTypeIncident,
		OrgID:       9,
		AuthorID:    "u-007",
		AuthorName:  "Original Author",
		OccurredOn:  time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Site:        "Old site",
		Description: "Old description.",
		CreatedAt:   time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC),
	}
	filed.ApplyRevision(revision)

	// identity stays as filed
	assert.Equal(t, int64(42), filed.ID)
	assert.Equal(t, "INC-2026-0001", filed.Number)
	assert.Equal(t, ReportTypeIncident, filed.ReportType)
	assert.Equal(t, int64(9), filed.OrgID)
	assert.Equal(t, "u-007", filed.AuthorID)
	assert.Equal(t, "Original Author", filed.AuthorName)
	assert.Equal(t, "2026-01-02", filed.OccurredOn.Format("2006-01-02"))

	// content follows the revision
	assert.Equal(t, "Riverside plot 3", filed.Site)
	assert.Equal(t, "Scaffold board slipped.", filed.Description)
	assert.Equal(t, StringList{"Collision", "Fall from height"}, filed.BasicCauses)
	assert.Equal(t, "Re-brief the scaffold crew.", filed.CorrectiveActions.String)
}
