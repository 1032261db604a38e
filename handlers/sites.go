package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/sitetools/ops-core/nullable"
	"github.com/sitetools/ops-core/reports"
	"github.com/sitetools/ops-core/requests"
	"github.com/sitetools/ops-core/responses"
)

type checkinPayload struct {
	OrgID int64  `json:"org_id"`
	Site  string `json:"site"`
}

// CheckIn opens a presence window for the current user on a site.
func (h *Set) CheckIn(w http.ResponseWriter, r *http.Request) {
	var payload checkinPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Site == "" {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, "Site is required")
		return
	}
	user := currentUser(r)
	checkin := &reports.SiteCheckin{
		OrgID:    payload.OrgID,
		UserID:   user.IDStr,
		UserName: user.DisplayName,
		Site:     payload.Site,
	}
	if err := h.Store.CheckIn(r.Context(), checkin); err != nil {
		log.Printf("[ERROR] checkin: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to check in")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusCreated, checkin)
}

func (h *Set) CheckOut(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.CheckOut(r.Context(), currentUser(r).IDStr); err != nil {
		log.Printf("[ERROR] checkout: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to check out")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, responses.Message{Type: "ok", Message: "checked out"})
}

// OpenCheckins - everyone currently on site for an org. Admin view.
func (h *Set) OpenCheckins(w http.ResponseWriter, r *http.Request) {
	orgID, err := requests.PathID(r, "orgID")
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.Store.OpenCheckins(r.Context(), orgID)
	if err != nil {
		log.Printf("[ERROR] open checkins: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to load check-ins")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, items)
}

type projectPayload struct {
	OrgID      int64  `json:"org_id"`
	Name       string `json:"name"`
	ClientName string `json:"client_name"`
	Site       string `json:"site"`
	Status     string `json:"status"`
	StartedOn  string `json:"started_on"` // YYYY-MM-DD
	Notes      string `json:"notes"`
}

func (h *Set) CreateProject(w http.ResponseWriter, r *http.Request) {
	var payload projectPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Name == "" {
		responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, "Project name is required")
		return
	}
	status := payload.Status
	if status == "" {
		status = reports.ProjectStatusLead
	}
	project := &reports.Project{
		OrgID:  payload.OrgID,
		Name:   payload.Name,
		Status: status,
	}
	if payload.ClientName != "" {
		project.ClientName = nullable.NewString(payload.ClientName)
	}
	if payload.Site != "" {
		project.Site = nullable.NewString(payload.Site)
	}
	if payload.Notes != "" {
		project.Notes = nullable.NewString(payload.Notes)
	}
	if payload.StartedOn != "" {
		startedOn, err := time.Parse("2006-01-02", payload.StartedOn)
		if err != nil {
			responses.WriteSimpleErrorJSON(w, http.StatusUnprocessableEntity, "Start date must be a valid date")
			return
		}
		project.StartedOn = nullable.NewTime(startedOn)
	}
	if err := h.Store.CreateProject(r.Context(), project); err != nil {
		log.Printf("[ERROR] project create: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to save the project")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusCreated, project)
}

func (h *Set) ListProjects(w http.ResponseWriter, r *http.Request) {
	orgID, err := requests.PathID(r, "orgID")
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.Store.ProjectsForOrg(r.Context(), orgID)
	if err != nil {
		log.Printf("[ERROR] project list: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to load projects")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, items)
}
