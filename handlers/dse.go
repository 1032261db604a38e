package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/sitetools/ops-core/reports"
	"github.com/sitetools/ops-core/requests"
	"github.com/sitetools/ops-core/responses"
)

// CreateDSE replays the DSE wizard and persists the assessment.
func (h *Set) CreateDSE(w http.ResponseWriter, r *http.Request) {
	var payload submitPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	sess, res := replayWizard(reports.DSESchema(), payload.Answers)
	if !res.OK {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, res.Reason)
		return
	}
	if _, res = sess.Submit(); !res.OK {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, res.Reason)
		return
	}
	record, err := reports.DSEFromAnswers(sess, payload.OrgID, currentUser(r).IDStr)
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	lockKey := "dse:" + record.Number
	if !h.submitLocks.Acquire(lockKey) {
		responses.WriteSimpleErrorJSON(w, http.StatusConflict, "this assessment is already being submitted")
		return
	}
	defer h.submitLocks.Release(lockKey)

	if err = h.Store.CreateDSE(r.Context(), record); err != nil {
		if errors.Is(err, reports.ErrDuplicateNumber) {
			responses.WriteSimpleErrorJSON(w, http.StatusConflict, err.Error())
			return
		}
		log.Printf("[ERROR] dse create: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to save the assessment")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusCreated, record)
}

func (h *Set) ListDSEs(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.DSEsForUser(r.Context(), currentUser(r).IDStr)
	if err != nil {
		log.Printf("[ERROR] dse list: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to load assessments")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, items)
}

func (h *Set) RenderDSEDocument(w http.ResponseWriter, r *http.Request) {
	id, err := requests.PathID(r, "id")
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	record, err := h.Store.DSE(r.Context(), id)
	if err != nil {
		if errors.Is(err, reports.ErrNotFound) {
			responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "assessment not found")
			return
		}
		log.Printf("[ERROR] dse load: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to load the assessment")
		return
	}
	user := currentUser(r)
	if record.AuthorID != user.IDStr && !user.IsAdmin() {
		responses.WriteSimpleErrorJSON(w, http.StatusForbidden, "not your assessment")
		return
	}
	org, err := h.Store.Organization(r.Context(), record.OrgID)
	if err != nil {
		log.Printf("[ERROR] organization load: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to load organization")
		return
	}
	doc, err := reports.BuildDSEDocument(record, org, h.fetchLogo(r, org))
	if err != nil {
		log.Printf("[ERROR] dse document: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, "could not generate document")
		return
	}
	raw, err := doc.ProduceBytes()
	if err != nil {
		log.Printf("[ERROR] dse document: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "could not generate document")
		return
	}
	responses.WritePDFBytesWithFilename(w, reports.DocumentFilename(record.Number), raw)
}
