package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitetools/ops-core/nullable"
	"github.com/sitetools/ops-core/orm"
)

func testOrg() *OrganizationProfile {
	return &OrganizationProfile{
		ID:            1,
		Name:          "Granite Build Ltd",
		AddressLine1:  nullable.NewString("14 Quarry Lane"),
		City:          nullable.NewString("Leeds"),
		Postcode:      nullable.NewString("LS1 4AB"),
		Phone:         nullable.NewString("0113 555 0101"),
		VATNumber:     nullable.NewString("GB123456789"),
		CompanyNumber: nullable.NewString("09876543"),
	}
}

func testIncident() *IncidentReport {
	return &IncidentReport{
		ID:             7,
		Number:         "INC-2026-0042",
		ReportType:     ReportTypeIncident,
		OrgID:          1,
		AuthorID:       "u-100",
		AuthorName:     "Pat Mason",
		OccurredOn:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Site:           "Riverside plot 3",
		LocationDetail: "West stairwell, second landing",
		Description:    "Scaffold board slipped while being repositioned.",
		BasicCauses:    StringList{"Collision"},
		HazardSources:  StringList{"Working at height"},
		RootCauses:     StringList{"Inadequate planning"},
	}
}

func TestIncidentDocumentOutputIsRepeatable(t *testing.T) {
	doc, err := BuildIncidentDocument(testIncident(), testOrg(), nil)
	require.NoError(t, err)

	first, err := doc.ProduceBytes()
	require.NoError(t, err)
	second, err := doc.ProduceBytes()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, len(first) > 0)
	assert.Equal(t, "%PDF", string(first[:4]))
}

func TestIncidentDocumentTitleByType(t *testing.T) {
	r := testIncident()
	doc, err := BuildIncidentDocument(r, testOrg(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Accident / Incident Report", doc.Title)
	assert.Equal(t, "Incident", doc.Record.Rows[1].Value)

	r.ReportType = ReportTypeNearMiss
	doc, err = BuildIncidentDocument(r, testOrg(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Near Miss Report", doc.Title)
	assert.Equal(t, "Near Miss", doc.Record.Rows[1].Value)
}

func TestIncidentDocumentRequiresLocation(t *testing.T) {
	r := testIncident()
	r.LocationDetail = ""
	_, err := BuildIncidentDocument(r, testOrg(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "location missing")
}

func TestIncidentDocumentRequiresOrgName(t *testing.T) {
	org := testOrg()
	org.Name = ""
	_, err := BuildIncidentDocument(testIncident(), org, nil)
	require.Error(t, err)
}

func TestIncidentDocumentSurvivesUndecodableLogo(t *testing.T) {
	doc, err := BuildIncidentDocument(testIncident(), testOrg(), []byte("not an image"))
	require.NoError(t, err)

	raw, err := doc.ProduceBytes()
	require.NoError(t, err)
	assert.True(t, len(raw) > 0)
}

func TestIncidentDocumentOmitsInjurySectionWhenEmpty(t *testing.T) {
	doc, err := BuildIncidentDocument(testIncident(), testOrg(), nil)
	require.NoError(t, err)
	for _, sec := range doc.Sections {
		assert.NotEqual(t, "Injury", sec.Title)
	}

	r := testIncident()
	r.InjuredPerson = nullable.NewString("Sam Carter")
	r.InjuryDetail = nullable.NewString("Bruised forearm")
	doc, err = BuildIncidentDocument(r, testOrg(), nil)
	require.NoError(t, err)
	found := false
	for _, sec := range doc.Sections {
		if sec.Title == "Injury" {
			found = true
			assert.Equal(t, "Sam Carter", sec.Rows[0].Value)
		}
	}
	assert.True(t, found)
}

func TestIncidentDocumentFooterRegistrationLine(t *testing.T) {
	doc, err := BuildIncidentDocument(testIncident(), testOrg(), nil)
	require.NoError(t, err)
	assert.Equal(t, "VAT No. GB123456789 | Company No. 09876543", doc.FooterLeft)
}

func TestDSEDocumentAnswerGrid(t *testing.T) {
	d := &DSEAssessment{
		Number:              "DSE-2026-0007",
		OrgID:               1,
		AuthorID:            "u-100",
		EmployeeName:        "Chris Webb",
		AssessedOn:          time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		ScreenReadable:      nullable.NewBool(true),
		KeyboardComfortable: nullable.NewBool(false),
		// ChairAdjustable left unanswered
		DeskSpaceAdequate: nullable.NewBool(true),
		LightingAdequate:  nullable.NewBool(true),
		BreaksTaken:       nullable.NewBool(false),
	}
	doc, err := BuildDSEDocument(d, testOrg(), nil)
	require.NoError(t, err)

	rows := doc.Sections[0].Rows
	require.Len(t, rows, 6)
	assert.Equal(t, "Yes", rows[0].Value)
	assert.Equal(t, "No", rows[1].Value)
	assert.Equal(t, "-", rows[2].Value) // unanswered prints as a dash
	assert.Equal(t, "Is the chair adjustable and stable?", rows[2].Label)
}

func TestDSEDocumentRequiresEmployeeName(t *testing.T) {
	d := &DSEAssessment{
		Number:     "DSE-2026-0008",
		AssessedOn: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
	}
	_, err := BuildDSEDocument(d, testOrg(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee name missing")
}

func TestToolboxTalkDocumentAttendanceOrder(t *testing.T) {
	attendees := []*Attendee{
		{ID: 3, Name: "Alex Reed", SignedOn: nullable.NewTime(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))},
		{ID: 1, Name: "Bea Long"},
		{ID: 2, Name: "Casey Mills", SignedOn: nullable.NewTime(time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC))},
	}
	talk := &ToolboxTalk{
		Number:        "TBT-2026-0015",
		OrgID:         1,
		Topic:         "Ladder inspection",
		PresenterName: "Pat Mason",
		HeldOn:        time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Attendees:     orm.NewOrderedCollection[*Attendee, int64](attendees),
	}
	doc, err := BuildToolboxTalkDocument(talk, testOrg(), nil)
	require.NoError(t, err)

	var table = doc.Sections[len(doc.Sections)-1].Table
	require.NotNil(t, table)
	require.Len(t, table.Rows, 3)
	// insertion order, not id order
	assert.Equal(t, []string{"Alex Reed", "01 Apr 2026", "Yes"}, table.Rows[0])
	assert.Equal(t, []string{"Bea Long", "", "No"}, table.Rows[1])
	assert.Equal(t, []string{"Casey Mills", "02 Apr 2026", "Yes"}, table.Rows[2])
}

func TestDocumentFilename(t *testing.T) {
	assert.Equal(t, "INC-2026-0042.pdf", DocumentFilename("INC-2026-0042"))
}
