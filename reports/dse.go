package reports

import (
	"time"

	"github.com/sitetools/ops-core/forms"
	"github.com/sitetools/ops-core/nullable"
)

// DSEAssessment - display screen equipment self-assessment. Every
// question is yes/no/unanswered; unanswered maps to NULL in storage.
type DSEAssessment struct {
	ID           int64     `json:"id"`
	Number       string    `json:"number"`
	OrgID        int64     `json:"org_id"`
	AuthorID     string    `json:"author_id"`
	EmployeeName string    `json:"employee_name"`
	AssessedOn   time.Time `json:"assessed_on"`

	ScreenReadable      nullable.Bool `json:"screen_readable"`
	KeyboardComfortable nullable.Bool `json:"keyboard_comfortable"`
	ChairAdjustable     nullable.Bool `json:"chair_adjustable"`
	DeskSpaceAdequate   nullable.Bool `json:"desk_space_adequate"`
	LightingAdequate    nullable.Bool `json:"lighting_adequate"`
	BreaksTaken         nullable.Bool `json:"breaks_taken"`

	Notes     nullable.String `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
}

func (d *DSEAssessment) GetID() int64 {
	return d.ID
}

func (d *DSEAssessment) TargetFields() []any {
	return []any{
		&d.ID, &d.Number, &d.OrgID, &d.AuthorID,
		&d.EmployeeName, &d.AssessedOn,
		&d.ScreenReadable, &d.KeyboardComfortable, &d.ChairAdjustable,
		&d.DeskSpaceAdequate, &d.LightingAdequate, &d.BreaksTaken,
		&d.Notes, &d.CreatedAt,
	}
}

// QuestionAnswer - one assessment question resolved to its label and
// explicit tri-state answer, in questionnaire order.
type QuestionAnswer struct {
	Label  string
	Answer forms.TriState
}

func (d *DSEAssessment) QuestionAnswers() []QuestionAnswer {
	return []QuestionAnswer{
		{"Is the screen image clear and readable?", d.ScreenReadable.TriState()},
		{"Is the keyboard comfortable to use?", d.KeyboardComfortable.TriState()},
		{"Is the chair adjustable and stable?", d.ChairAdjustable.TriState()},
		{"Is there adequate desk space?", d.DeskSpaceAdequate.TriState()},
		{"Is the lighting adequate, without glare?", d.LightingAdequate.TriState()},
		{"Are regular breaks taken away from the screen?", d.BreaksTaken.TriState()},
	}
}
