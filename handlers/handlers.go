package handlers

import (
	"encoding/json/v2"
	"net/http"

	"github.com/sitetools/ops-core/apis/authsvc"
	"github.com/sitetools/ops-core/locks/keyonlylocks"
	"github.com/sitetools/ops-core/reports"
	"github.com/sitetools/ops-core/requests"
	"github.com/sitetools/ops-core/responses"
	"github.com/sitetools/ops-core/schedjobs"
	"github.com/sitetools/ops-core/storages"
	"github.com/sitetools/ops-core/web/session"
)

// Logical bucket ids, resolved to provider buckets by storages.Conf.
const (
	BucketLogos     = "logos"
	BucketDocuments = "documents"
)

// Set - all HTTP handlers of the app and their shared collaborators.
type Set struct {
	Store     *reports.Store
	Storage   storages.Store
	Scheduler *schedjobs.Scheduler
	Sessions  *session.Manager
	Auth      *authsvc.Client

	// guards against double-submit of the same report number
	submitLocks keyonlylocks.KeyLocks
}

func NewSet(
	store *reports.Store,
	storage storages.Store,
	scheduler *schedjobs.Scheduler,
	sessions *session.Manager,
	auth *authsvc.Client,
) *Set {
	return &Set{
		Store:     store,
		Storage:   storage,
		Scheduler: scheduler,
		Sessions:  sessions,
		Auth:      auth,
	}
}

// decodeBody unmarshals the JSON request body into v, writing the error
// response itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if !requests.HasBody(r) {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "request body required")
		return false
	}
	if err := json.UnmarshalRead(r.Body, v); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
