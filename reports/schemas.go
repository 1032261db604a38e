package reports

import (
	"fmt"
	"time"

	"github.com/sitetools/ops-core/forms"
	"github.com/sitetools/ops-core/nullable"
)

const dateLayout = "2006-01-02"

// Fixed cause/hazard catalogs for the incident wizard. Catalog order is
// the render order of the option toggles.
var (
	BasicCauseCatalog = []string{
		"Asphyxiation",
		"Collision",
		"Fire",
		"Fall from height",
		"Manual handling",
		"Electrical contact",
		"Slip or trip",
		"Struck by object",
	}
	HazardSourceCatalog = []string{
		"Plant and machinery",
		"Hand tools",
		"Scaffolding",
		"Excavation",
		"Hazardous substances",
		"Vehicles on site",
		"Housekeeping",
		"Weather conditions",
	}
	RootCauseCatalog = []string{
		"Inadequate training",
		"Inadequate supervision",
		"Defective equipment",
		"Missing or unclear procedure",
		"PPE not worn",
		"Time pressure",
		"Poor communication",
	}
)

// IncidentSchema - the incident / near-miss reporting wizard.
// Cause steps require at least one selection each.
func IncidentSchema() *forms.Schema {
	schema, err := forms.NewSchema("incident",
		[]forms.Field{
			{Name: "number", Kind: forms.KindText, Label: "Report number"},
			{Name: "reportType", Kind: forms.KindOption, Label: "Report type",
				Catalog: []string{ReportTypeIncident, ReportTypeNearMiss}},
			{Name: "occurredOn", Kind: forms.KindDate, Label: "Date of occurrence"},
			{Name: "site", Kind: forms.KindText, Label: "Site"},
			{Name: "locationDetail", Kind: forms.KindText, Label: "Location"},
			{Name: "description", Kind: forms.KindText, Label: "Description"},
			{Name: "injuredPerson", Kind: forms.KindText, Label: "Injured person"},
			{Name: "injuryDetail", Kind: forms.KindText, Label: "Injury details"},
			{Name: "basicCauses", Kind: forms.KindOptionSet, Label: "Basic causes",
				Catalog: BasicCauseCatalog},
			{Name: "hazardSources", Kind: forms.KindOptionSet, Label: "Hazard sources",
				Catalog: HazardSourceCatalog},
			{Name: "rootCauses", Kind: forms.KindOptionSet, Label: "Root causes",
				Catalog: RootCauseCatalog},
			{Name: "correctiveActions", Kind: forms.KindText, Label: "Corrective actions"},
		},
		[]forms.Step{
			{Index: 1, Title: "Report details",
				Fields: []string{"number", "reportType", "occurredOn"},
				Checks: []forms.Check{
					{Field: "number"},
					{Field: "reportType"},
					{Field: "occurredOn"},
				}},
			{Index: 2, Title: "Location",
				Fields: []string{"site", "locationDetail"},
				Checks: []forms.Check{
					{Field: "site"},
					{Field: "locationDetail", Message: "Location is required"},
				}},
			{Index: 3, Title: "What happened",
				Fields: []string{"description", "injuredPerson", "injuryDetail"},
				Checks: []forms.Check{
					{Field: "description"},
				}},
			{Index: 4, Title: "Basic causes",
				Fields: []string{"basicCauses"},
				Checks: []forms.Check{
					{Field: "basicCauses"},
				}},
			{Index: 5, Title: "Hazard sources",
				Fields: []string{"hazardSources"},
				Checks: []forms.Check{
					{Field: "hazardSources"},
				}},
			{Index: 6, Title: "Root causes",
				Fields: []string{"rootCauses"},
				Checks: []forms.Check{
					{Field: "rootCauses"},
				}},
			{Index: 7, Title: "Corrective actions",
				Fields: []string{"correctiveActions"},
				Checks: []forms.Check{
					{Field: "correctiveActions"},
				}},
		})
	if err != nil {
		panic(err) // static schema, construction cannot fail
	}
	return schema
}

// DSESchema - the display screen equipment self-assessment wizard.
func DSESchema() *forms.Schema {
	schema, err := forms.NewSchema("dse",
		[]forms.Field{
			{Name: "number", Kind: forms.KindText, Label: "Assessment number"},
			{Name: "employeeName", Kind: forms.KindText, Label: "Employee name"},
			{Name: "assessedOn", Kind: forms.KindDate, Label: "Assessment date"},
			{Name: "screenReadable", Kind: forms.KindTriState, Label: "Screen readable"},
			{Name: "keyboardComfortable", Kind: forms.KindTriState, Label: "Keyboard comfortable"},
			{Name: "chairAdjustable", Kind: forms.KindTriState, Label: "Chair adjustable"},
			{Name: "deskSpaceAdequate", Kind: forms.KindTriState, Label: "Desk space adequate"},
			{Name: "lightingAdequate", Kind: forms.KindTriState, Label: "Lighting adequate"},
			{Name: "breaksTaken", Kind: forms.KindTriState, Label: "Regular breaks taken"},
			{Name: "notes", Kind: forms.KindText, Label: "Notes"},
		},
		[]forms.Step{
			{Index: 1, Title: "Who is being assessed",
				Fields: []string{"number", "employeeName", "assessedOn"},
				Checks: []forms.Check{
					{Field: "number"},
					{Field: "employeeName"},
					{Field: "assessedOn"},
				}},
			{Index: 2, Title: "Screen and input",
				Fields: []string{"screenReadable", "keyboardComfortable"},
				Checks: []forms.Check{
					{Field: "screenReadable"},
					{Field: "keyboardComfortable"},
				}},
			{Index: 3, Title: "Workstation",
				Fields: []string{"chairAdjustable", "deskSpaceAdequate", "lightingAdequate"},
				Checks: []forms.Check{
					{Field: "chairAdjustable"},
					{Field: "deskSpaceAdequate"},
					{Field: "lightingAdequate"},
				}},
			{Index: 4, Title: "Working habits",
				Fields: []string{"breaksTaken", "notes"},
				Checks: []forms.Check{
					{Field: "breaksTaken"},
				}},
		})
	if err != nil {
		panic(err)
	}
	return schema
}

// IncidentFromAnswers maps a submitted incident wizard session onto a
// record ready to persist. The session's Submit has already validated
// presence and date shape.
func IncidentFromAnswers(s *forms.Session, orgID int64, authorID, authorName string) (*IncidentReport, error) {
	answers := s.Answers()
	occurredOn, err := time.Parse(dateLayout, answers.Text("occurredOn"))
	if err != nil {
		return nil, fmt.Errorf("date of occurrence: %w", err)
	}
	reportType := ReportTypeIncident
	if sel := answers.Selected("reportType"); len(sel) == 1 {
		reportType = sel[0]
	}
	r := &IncidentReport{
		Number:            answers.Text("number"),
		ReportType:        reportType,
		OrgID:             orgID,
		AuthorID:          authorID,
		AuthorName:        authorName,
		OccurredOn:        occurredOn,
		Site:              answers.Text("site"),
		LocationDetail:    answers.Text("locationDetail"),
		Description:       answers.Text("description"),
		BasicCauses:       answers.Selected("basicCauses"),
		HazardSources:     answers.Selected("hazardSources"),
		RootCauses:        answers.Selected("rootCauses"),
		CorrectiveActions: nullable.NewString(answers.Text("correctiveActions")),
	}
	if v := answers.Text("injuredPerson"); v != "" {
		r.InjuredPerson = nullable.NewString(v)
	}
	if v := answers.Text("injuryDetail"); v != "" {
		r.InjuryDetail = nullable.NewString(v)
	}
	return r, nil
}

// DSEFromAnswers maps a submitted DSE wizard session onto a record.
func DSEFromAnswers(s *forms.Session, orgID int64, authorID string) (*DSEAssessment, error) {
	answers := s.Answers()
	assessedOn, err := time.Parse(dateLayout, answers.Text("assessedOn"))
	if err != nil {
		return nil, fmt.Errorf("assessment date: %w", err)
	}
	d := &DSEAssessment{
		Number:              answers.Text("number"),
		OrgID:               orgID,
		AuthorID:            authorID,
		EmployeeName:        answers.Text("employeeName"),
		AssessedOn:          assessedOn,
		ScreenReadable:      nullable.FromTriState(answers.Tri("screenReadable")),
		KeyboardComfortable: nullable.FromTriState(answers.Tri("keyboardComfortable")),
		ChairAdjustable:     nullable.FromTriState(answers.Tri("chairAdjustable")),
		DeskSpaceAdequate:   nullable.FromTriState(answers.Tri("deskSpaceAdequate")),
		LightingAdequate:    nullable.FromTriState(answers.Tri("lightingAdequate")),
		BreaksTaken:         nullable.FromTriState(answers.Tri("breaksTaken")),
	}
	if v := answers.Text("notes"); v != "" {
		d.Notes = nullable.NewString(v)
	}
	return d, nil
}
