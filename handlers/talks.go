package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/sitetools/ops-core/nullable"
	"github.com/sitetools/ops-core/reports"
	"github.com/sitetools/ops-core/requests"
	"github.com/sitetools/ops-core/responses"
)

type talkPayload struct {
	OrgID         int64             `json:"org_id"`
	Number        string            `json:"number"`
	Topic         string            `json:"topic"`
	PresenterName string            `json:"presenter_name"`
	HeldOn        string            `json:"held_on"` // YYYY-MM-DD
	Summary       string            `json:"summary"`
	Attendees     []attendeePayload `json:"attendees"`
}

type attendeePayload struct {
	Name     string `json:"name"`
	SignedOn string `json:"signed_on"` // YYYY-MM-DD, empty = not signed
}

// CreateToolboxTalk records a talk with its attendance list, preserving
// attendee order.
func (h *Set) CreateToolboxTalk(w http.ResponseWriter, r *http.Request) {
	var payload talkPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	switch {
	case payload.Number == "":
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, "Talk number is required")
		return
	case payload.Topic == "":
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, "Topic is required")
		return
	}
	heldOn, err := time.Parse("2006-01-02", payload.HeldOn)
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, "Date must be a valid date")
		return
	}

	presenter := payload.PresenterName
	if presenter == "" {
		// pre-fill from the logged-in user
		presenter = currentUser(r).DisplayName
	}
	talk := &reports.ToolboxTalk{
		Number:        payload.Number,
		OrgID:         payload.OrgID,
		Topic:         payload.Topic,
		PresenterName: presenter,
		HeldOn:        heldOn,
	}
	if payload.Summary != "" {
		talk.Summary = nullable.NewString(payload.Summary)
	}
	attendees := make([]*reports.Attendee, 0, len(payload.Attendees))
	for _, a := range payload.Attendees {
		attendee := &reports.Attendee{Name: a.Name}
		if a.SignedOn != "" {
			signedOn, err := time.Parse("2006-01-02", a.SignedOn)
			if err != nil {
				responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, "Signed date must be a valid date")
				return
			}
			attendee.SignedOn = nullable.NewTime(signedOn)
		}
		attendees = append(attendees, attendee)
	}

	lockKey := "talk:" + talk.Number
	if !h.submitLocks.Acquire(lockKey) {
		responses.WriteSimpleErrorJSON(w, http.StatusConflict, "this talk is already being submitted")
		return
	}
	defer h.submitLocks.Release(lockKey)

	if err = h.Store.CreateToolboxTalk(r.Context(), talk, attendees); err != nil {
		if errors.Is(err, reports.ErrDuplicateNumber) {
			responses.WriteSimpleErrorJSON(w, http.StatusConflict, err.Error())
			return
		}
		log.Printf("[ERROR] talk create: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to save the talk")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusCreated, talk)
}

func (h *Set) ListToolboxTalks(w http.ResponseWriter, r *http.Request) {
	orgID, err := requests.PathID(r, "orgID")
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	talks, err := h.Store.ToolboxTalksForOrg(r.Context(), orgID)
	if err != nil {
		log.Printf("[ERROR] talk list: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to load talks")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, talks.Items())
}

func (h *Set) RenderToolboxTalkDocument(w http.ResponseWriter, r *http.Request) {
	id, err := requests.PathID(r, "id")
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	talk, err := h.Store.ToolboxTalk(r.Context(), id)
	if err != nil {
		if errors.Is(err, reports.ErrNotFound) {
			responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "talk not found")
			return
		}
		log.Printf("[ERROR] talk load: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to load the talk")
		return
	}
	org, err := h.Store.Organization(r.Context(), talk.OrgID)
	if err != nil {
		log.Printf("[ERROR] organization load: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to load organization")
		return
	}
	doc, err := reports.BuildToolboxTalkDocument(talk, org, h.fetchLogo(r, org))
	if err != nil {
		log.Printf("[ERROR] talk document: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, "could not generate document")
		return
	}
	raw, err := doc.ProduceBytes()
	if err != nil {
		log.Printf("[ERROR] talk document: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "could not generate document")
		return
	}
	responses.WritePDFBytesWithFilename(w, reports.DocumentFilename(talk.Number), raw)
}
