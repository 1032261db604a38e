package reports

import (
	"encoding/json/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitetools/ops-core/nullable"
	"github.com/sitetools/ops-core/orm"
)

func TestToolboxTalkJSONCarriesAttendeesInOrder(t *testing.T) {
	heldOn := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	talk := &ToolboxTalk{
		ID:            7,
		Number:        "TBT-0007",
		OrgID:         1,
		Topic:         "Working at height",
		PresenterName: "Dana Cole",
		HeldOn:        heldOn,
		Attendees: orm.NewOrderedCollection[*Attendee, int64]([]*Attendee{
			{ID: 3, TalkID: 7, Name: "Alex Reed", SignedOn: nullable.NewTime(heldOn)},
			{ID: 1, TalkID: 7, Name: "Bea Long"},
		}),
	}

	raw, err := json.Marshal(talk)
	require.NoError(t, err)

	var decoded struct {
		Number    string `json:"number"`
		Attendees []struct {
			ID       int64  `json:"id"`
			Name     string `json:"name"`
			SignedOn any    `json:"signed_on"`
		} `json:"attendees"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "TBT-0007", decoded.Number)
	require.Len(t, decoded.Attendees, 2)
	assert.Equal(t, int64(3), decoded.Attendees[0].ID) // insertion order, not id order
	assert.Equal(t, "Alex Reed", decoded.Attendees[0].Name)
	assert.NotNil(t, decoded.Attendees[0].SignedOn)
	assert.Equal(t, "Bea Long", decoded.Attendees[1].Name)
	assert.Nil(t, decoded.Attendees[1].SignedOn)
}

func TestToolboxTalkJSONOmitsUnloadedAttendees(t *testing.T) {
	talk := &ToolboxTalk{ID: 9, Number: "TBT-0009", Topic: "Manual handling"}
	raw, err := json.Marshal(talk)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"attendees"`)
}
