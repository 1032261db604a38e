package reports

import (
	"fmt"
	"strings"

	"github.com/sitetools/ops-core/forms"
	"github.com/sitetools/ops-core/pdfs"
)

const printDateLayout = "02 Jan 2006"

// Document builders map persisted records onto the printable document
// model. A missing required field fails the build before any output
// exists; logo bytes are optional and passed through as-is.

func orgMetaBlock(org *OrganizationProfile) pdfs.MetaBlock {
	rows := []pdfs.LabelRow{{Label: "Name", Value: org.Name}}
	if lines := org.AddressLines(); len(lines) > 0 {
		rows = append(rows, pdfs.LabelRow{Label: "Address", Value: strings.Join(lines, ", ")})
	}
	if org.Phone.Valid && org.Phone.String != "" {
		rows = append(rows, pdfs.LabelRow{Label: "Phone", Value: org.Phone.String})
	}
	if org.Email.Valid && org.Email.String != "" {
		rows = append(rows, pdfs.LabelRow{Label: "Email", Value: org.Email.String})
	}
	return pdfs.MetaBlock{Title: "Organization", Rows: rows}
}

// BuildIncidentDocument renders an incident / near-miss record. The
// title varies by report subtype.
func BuildIncidentDocument(r *IncidentReport, org *OrganizationProfile, logo []byte) (*pdfs.Document, error) {
	switch {
	case org == nil || org.Name == "":
		return nil, fmt.Errorf("incident document: organization name missing")
	case r.Number == "":
		return nil, fmt.Errorf("incident document: report number missing")
	case r.OccurredOn.IsZero():
		return nil, fmt.Errorf("incident document: date of occurrence missing")
	case r.Site == "" || r.LocationDetail == "":
		return nil, fmt.Errorf("incident document: location missing")
	case r.Description == "":
		return nil, fmt.Errorf("incident document: description missing")
	}

	title := "Accident / Incident Report"
	typeLabel := "Incident"
	if r.IsNearMiss() {
		title = "Near Miss Report"
		typeLabel = "Near Miss"
	}

	doc := &pdfs.Document{
		Title: title,
		Org:   orgMetaBlock(org),
		Record: pdfs.MetaBlock{
			Title: "Report",
			Rows: []pdfs.LabelRow{
				{Label: "Report No", Value: r.Number},
				{Label: "Type", Value: typeLabel},
				{Label: "Date", Value: r.OccurredOn.Format(printDateLayout)},
				{Label: "Reported by", Value: r.AuthorName},
			},
		},
		FooterLeft: org.RegistrationLine(),
		Logo:       logo,
	}

	doc.Sections = append(doc.Sections, pdfs.Section{
		Title: "Location",
		Rows: []pdfs.LabelRow{
			{Label: "Site", Value: r.Site},
			{Label: "Location", Value: r.LocationDetail},
		},
	})
	doc.Sections = append(doc.Sections, pdfs.Section{
		Title: "Description of events",
		Text:  r.Description,
	})
	if r.InjuredPerson.Valid || r.InjuryDetail.Valid {
		doc.Sections = append(doc.Sections, pdfs.Section{
			Title: "Injury",
			Rows: []pdfs.LabelRow{
				{Label: "Injured person", Value: r.InjuredPerson.ForceValue()},
				{Label: "Injury details", Value: r.InjuryDetail.ForceValue()},
			},
		})
	}
	doc.Sections = append(doc.Sections, pdfs.Section{
		Title: "Causal classification",
		Rows: []pdfs.LabelRow{
			{Label: "Basic causes", Value: strings.Join(r.BasicCauses, ", ")},
			{Label: "Hazard sources", Value: strings.Join(r.HazardSources, ", ")},
			{Label: "Root causes", Value: strings.Join(r.RootCauses, ", ")},
		},
	})
	doc.Sections = append(doc.Sections, pdfs.Section{
		Title: "Corrective actions",
		Text:  r.CorrectiveActions.ForceValue(),
	})
	return doc, nil
}

// BuildDSEDocument renders a DSE self-assessment as a Yes/No grid.
// Unanswered questions print as a dash rather than being dropped.
func BuildDSEDocument(d *DSEAssessment, org *OrganizationProfile, logo []byte) (*pdfs.Document, error) {
	switch {
	case org == nil || org.Name == "":
		return nil, fmt.Errorf("dse document: organization name missing")
	case d.Number == "":
		return nil, fmt.Errorf("dse document: assessment number missing")
	case d.EmployeeName == "":
		return nil, fmt.Errorf("dse document: employee name missing")
	case d.AssessedOn.IsZero():
		return nil, fmt.Errorf("dse document: assessment date missing")
	}

	answerRows := make([]pdfs.LabelRow, 0, 6)
	for _, qa := range d.QuestionAnswers() {
		answerRows = append(answerRows, pdfs.LabelRow{
			Label: qa.Label,
			Value: triStateAnswerLabel(qa.Answer),
		})
	}

	doc := &pdfs.Document{
		Title: "DSE Workstation Self-Assessment",
		Org:   orgMetaBlock(org),
		Record: pdfs.MetaBlock{
			Title: "Assessment",
			Rows: []pdfs.LabelRow{
				{Label: "Assessment No", Value: d.Number},
				{Label: "Employee", Value: d.EmployeeName},
				{Label: "Date", Value: d.AssessedOn.Format(printDateLayout)},
			},
		},
		Sections: []pdfs.Section{
			{Title: "Assessment answers", Rows: answerRows},
		},
		FooterLeft: org.RegistrationLine(),
		Logo:       logo,
	}
	if d.Notes.Valid && d.Notes.String != "" {
		doc.Sections = append(doc.Sections, pdfs.Section{
			Title: "Notes",
			Text:  d.Notes.String,
		})
	}
	return doc, nil
}

func triStateAnswerLabel(t forms.TriState) string {
	switch t {
	case forms.Yes:
		return "Yes"
	case forms.No:
		return "No"
	default:
		return "-"
	}
}

// BuildToolboxTalkDocument renders a talk with its signature table.
// Attendee rows keep the stored order.
func BuildToolboxTalkDocument(t *ToolboxTalk, org *OrganizationProfile, logo []byte) (*pdfs.Document, error) {
	switch {
	case org == nil || org.Name == "":
		return nil, fmt.Errorf("toolbox talk document: organization name missing")
	case t.Number == "":
		return nil, fmt.Errorf("toolbox talk document: talk number missing")
	case t.Topic == "":
		return nil, fmt.Errorf("toolbox talk document: topic missing")
	case t.HeldOn.IsZero():
		return nil, fmt.Errorf("toolbox talk document: date missing")
	}

	doc := &pdfs.Document{
		Title: "Toolbox Talk Record",
		Org:   orgMetaBlock(org),
		Record: pdfs.MetaBlock{
			Title: "Talk",
			Rows: []pdfs.LabelRow{
				{Label: "Talk No", Value: t.Number},
				{Label: "Topic", Value: t.Topic},
				{Label: "Date", Value: t.HeldOn.Format(printDateLayout)},
				{Label: "Presenter", Value: t.PresenterName},
			},
		},
		FooterLeft: org.RegistrationLine(),
		Logo:       logo,
	}
	if t.Summary.Valid && t.Summary.String != "" {
		doc.Sections = append(doc.Sections, pdfs.Section{
			Title: "Summary",
			Text:  t.Summary.String,
		})
	}

	table := &pdfs.Table{
		Columns: []string{"Name", "Date signed", "Signed"},
		Widths:  []float64{0.5, 0.3, 0.2},
	}
	if t.Attendees != nil {
		for _, a := range t.Attendees.Items() {
			table.Rows = append(table.Rows, attendeeRow(a))
		}
	}
	doc.Sections = append(doc.Sections, pdfs.Section{
		Title: "Attendance",
		Table: table,
	})
	return doc, nil
}

func attendeeRow(a *Attendee) []string {
	signedOn := ""
	signed := "No"
	if a.SignedOn.Valid {
		signedOn = a.SignedOn.Time.Format(printDateLayout)
		signed = "Yes"
	}
	return []string{a.Name, signedOn, signed}
}

// DocumentFilename - download name derived from the record's
// human-readable identifier.
func DocumentFilename(number string) string {
	return number + ".pdf"
}
