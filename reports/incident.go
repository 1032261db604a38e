package reports

import (
	"database/sql/driver"
	"encoding/json/v2"
	"fmt"
	"time"

	"github.com/sitetools/ops-core/nullable"
)

const (
	ReportTypeIncident = "incident"
	ReportTypeNearMiss = "nearMiss"
)

// StringList - categorical multi-selections (basic causes, hazard
// sources, root causes) stored as a JSON array in a text column.
type StringList []string

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// IncidentReport - a persisted incident or near-miss submission.
// ReportType discriminates the two document title variants.
type IncidentReport struct {
	ID                int64           `json:"id"`
	Number            string          `json:"number"` // human-readable identifier, unique per org
	ReportType        string          `json:"report_type"`
	OrgID             int64           `json:"org_id"`
	AuthorID          string          `json:"author_id"`
	AuthorName        string          `json:"author_name"`
	OccurredOn        time.Time       `json:"occurred_on"`
	Site              string          `json:"site"`
	LocationDetail    string          `json:"location_detail"`
	Description       string          `json:"description"`
	InjuredPerson     nullable.String `json:"injured_person"`
	InjuryDetail      nullable.String `json:"injury_detail"`
	BasicCauses       StringList      `json:"basic_causes"`
	HazardSources     StringList      `json:"hazard_sources"`
	RootCauses        StringList      `json:"root_causes"`
	CorrectiveActions nullable.String `json:"corrective_actions"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (r *IncidentReport) GetID() int64 {
	return r.ID
}

func (r *IncidentReport) TargetFields() []any {
	return []any{
		&r.ID, &r.Number, &r.ReportType, &r.OrgID,
		&r.AuthorID, &r.AuthorName, &r.OccurredOn,
		&r.Site, &r.LocationDetail, &r.Description,
		&r.InjuredPerson, &r.InjuryDetail,
		&r.BasicCauses, &r.HazardSources, &r.RootCauses,
		&r.CorrectiveActions, &r.CreatedAt,
	}
}

// ApplyRevision copies the editable fields from a replayed submission
// onto an existing report. Identity fields (number, type, author and
// date of occurrence) stay as filed.
func (r *IncidentReport) ApplyRevision(from *IncidentReport) {
	r.Site = from.Site
	r.LocationDetail = from.LocationDetail
	r.Description = from.Description
	r.InjuredPerson = from.InjuredPerson
	r.InjuryDetail = from.InjuryDetail
	r.BasicCauses = from.BasicCauses
	r.HazardSources = from.HazardSources
	r.RootCauses = from.RootCauses
	r.CorrectiveActions = from.CorrectiveActions
}

func (r *IncidentReport) IsNearMiss() bool {
	return r.ReportType == ReportTypeNearMiss
}
