package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/sitetools/ops-core/reports"
	"github.com/sitetools/ops-core/requests"
	"github.com/sitetools/ops-core/responses"
)

type submitPayload struct {
	OrgID   int64          `json:"org_id"`
	Answers map[string]any `json:"answers"`
}

// CreateIncident replays the incident wizard over the submitted answers
// and persists the resulting record.
func (h *Set) CreateIncident(w http.ResponseWriter, r *http.Request) {
	var payload submitPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	sess, res := replayWizard(reports.IncidentSchema(), payload.Answers)
	if !res.OK {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, res.Reason)
		return
	}
	if _, res = sess.Submit(); !res.OK {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, res.Reason)
		return
	}
	user := currentUser(r)
	record, err := reports.IncidentFromAnswers(sess, payload.OrgID, user.IDStr, user.DisplayName)
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	lockKey := "incident:" + record.Number
	if !h.submitLocks.Acquire(lockKey) {
		responses.WriteSimpleErrorJSON(w, http.StatusConflict, "this report is already being submitted")
		return
	}
	defer h.submitLocks.Release(lockKey)

	if err = h.Store.CreateIncident(r.Context(), record); err != nil {
		if errors.Is(err, reports.ErrDuplicateNumber) {
			responses.WriteSimpleErrorJSON(w, http.StatusConflict, err.Error())
			return
		}
		log.Printf("[ERROR] incident create: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to save the report")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusCreated, record)
}

// ListIncidents - the current user's reports, most recent first.
func (h *Set) ListIncidents(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.IncidentsForUser(r.Context(), currentUser(r).IDStr)
	if err != nil {
		log.Printf("[ERROR] incident list: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to load reports")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, items)
}

func (h *Set) GetIncident(w http.ResponseWriter, r *http.Request) {
	record, ok := h.loadIncident(w, r)
	if !ok {
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, record)
}

// UpdateIncident replays the wizard over the edited answers and saves
// the revision. The report number, type and occurrence date stay as
// filed; only the author or an admin may revise.
func (h *Set) UpdateIncident(w http.ResponseWriter, r *http.Request) {
	record, ok := h.loadIncident(w, r)
	if !ok {
		return
	}
	var payload submitPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	sess, res := replayWizard(reports.IncidentSchema(), payload.Answers)
	if !res.OK {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, res.Reason)
		return
	}
	if _, res = sess.Submit(); !res.OK {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, res.Reason)
		return
	}
	revision, err := reports.IncidentFromAnswers(sess, record.OrgID, record.AuthorID, record.AuthorName)
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	record.ApplyRevision(revision)
	if err = h.Store.UpdateIncident(r.Context(), record); err != nil {
		log.Printf("[ERROR] incident update: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to save the report")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, record)
}

func (h *Set) DeleteIncident(w http.ResponseWriter, r *http.Request) {
	record, ok := h.loadIncident(w, r)
	if !ok {
		return
	}
	if err := h.Store.DeleteIncident(r.Context(), record.ID); err != nil {
		log.Printf("[ERROR] incident delete: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to delete the report")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, responses.Message{Type: "ok", Message: "deleted"})
}

// RenderIncidentDocument streams the printable PDF for one report.
func (h *Set) RenderIncidentDocument(w http.ResponseWriter, r *http.Request) {
	record, ok := h.loadIncident(w, r)
	if !ok {
		return
	}
	org, err := h.Store.Organization(r.Context(), record.OrgID)
	if err != nil {
		log.Printf("[ERROR] organization load: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to load organization")
		return
	}
	doc, err := reports.BuildIncidentDocument(record, org, h.fetchLogo(r, org))
	if err != nil {
		log.Printf("[ERROR] incident document: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, "could not generate document")
		return
	}
	raw, err := doc.ProduceBytes()
	if err != nil {
		log.Printf("[ERROR] incident document: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "could not generate document")
		return
	}
	responses.WritePDFBytesWithFilename(w, reports.DocumentFilename(record.Number), raw)
}

// loadIncident fetches the record in the path, enforcing that only its
// author (or an admin) can touch it.
func (h *Set) loadIncident(w http.ResponseWriter, r *http.Request) (*reports.IncidentReport, bool) {
	id, err := requests.PathID(r, "id")
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	record, err := h.Store.Incident(r.Context(), id)
	if err != nil {
		if errors.Is(err, reports.ErrNotFound) {
			responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "report not found")
			return nil, false
		}
		log.Printf("[ERROR] incident load: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to load the report")
		return nil, false
	}
	user := currentUser(r)
	if record.AuthorID != user.IDStr && !user.IsAdmin() {
		responses.WriteSimpleErrorJSON(w, http.StatusForbidden, "not your report")
		return nil, false
	}
	return record, true
}

// fetchLogo pulls the org logo from storage. Failures degrade to a
// logo-less document.
func (h *Set) fetchLogo(r *http.Request, org *reports.OrganizationProfile) []byte {
	if !org.LogoObject.Valid || org.LogoObject.String == "" {
		return nil
	}
	logo, err := h.Storage.Download(r.Context(), BucketLogos, org.LogoObject.String)
	if err != nil {
		log.Printf("[WARN] logo fetch failed, rendering without: %v", err)
		return nil
	}
	return logo
}
