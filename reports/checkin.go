package reports

import (
	"time"

	"github.com/sitetools/ops-core/nullable"
)

// SiteCheckin - one person's presence window on a site. Open until
// CheckedOutAt is set.
type SiteCheckin struct {
	ID           int64         `json:"id"`
	OrgID        int64         `json:"org_id"`
	UserID       string        `json:"user_id"`
	UserName     string        `json:"user_name"`
	Site         string        `json:"site"`
	CheckedInAt  time.Time     `json:"checked_in_at"`
	CheckedOutAt nullable.Time `json:"checked_out_at"`
}

func (c *SiteCheckin) GetID() int64 {
	return c.ID
}

func (c *SiteCheckin) TargetFields() []any {
	return []any{
		&c.ID, &c.OrgID, &c.UserID, &c.UserName,
		&c.Site, &c.CheckedInAt, &c.CheckedOutAt,
	}
}
