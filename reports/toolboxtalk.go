package reports

import (
	"time"

	"github.com/sitetools/ops-core/nullable"
	"github.com/sitetools/ops-core/orm"
)

// ToolboxTalk - a recorded safety briefing with a signed attendance list.
type ToolboxTalk struct {
	ID            int64           `json:"id"`
	Number        string          `json:"number"`
	OrgID         int64           `json:"org_id"`
	Topic         string          `json:"topic"`
	PresenterName string          `json:"presenter_name"`
	HeldOn        time.Time       `json:"held_on"`
	Summary       nullable.String `json:"summary"`
	CreatedAt     time.Time       `json:"created_at"`

	// [Relation] HasMany, loaded separately, insertion-ordered
	Attendees *orm.Collection[*Attendee, int64] `json:"attendees,omitzero"`
}

func (t *ToolboxTalk) GetID() int64 {
	return t.ID
}

func (t *ToolboxTalk) TargetFields() []any {
	return []any{
		&t.ID, &t.Number, &t.OrgID, &t.Topic,
		&t.PresenterName, &t.HeldOn, &t.Summary, &t.CreatedAt,
	}
}

type Attendee struct {
	ID       int64         `json:"id"`
	TalkID   int64         `json:"talk_id"`
	Name     string        `json:"name"`
	SignedOn nullable.Time `json:"signed_on"`
}

func (a *Attendee) GetID() int64 {
	return a.ID
}

func (a *Attendee) TargetFields() []any {
	return []any{&a.ID, &a.TalkID, &a.Name, &a.SignedOn}
}
