package reports

import (
	"time"

	"github.com/sitetools/ops-core/nullable"
)

const (
	ProjectStatusLead     = "lead"
	ProjectStatusActive   = "active"
	ProjectStatusComplete = "complete"
)

// Project - a job or sales lead tracked per organization.
type Project struct {
	ID         int64           `json:"id"`
	OrgID      int64           `json:"org_id"`
	Name       string          `json:"name"`
	ClientName nullable.String `json:"client_name"`
	Site       nullable.String `json:"site"`
	Status     string          `json:"status"`
	StartedOn  nullable.Time   `json:"started_on"`
	Notes      nullable.String `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (p *Project) GetID() int64 {
	return p.ID
}

func (p *Project) TargetFields() []any {
	return []any{
		&p.ID, &p.OrgID, &p.Name, &p.ClientName,
		&p.Site, &p.Status, &p.StartedOn, &p.Notes, &p.CreatedAt,
	}
}
