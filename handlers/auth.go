package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/sitetools/ops-core/requests"
	"github.com/sitetools/ops-core/responses"
	"github.com/sitetools/ops-core/web/login"
)

type loginPayload struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
}

// Login resolves the presented token against the auth service and opens
// a web session. An id_token verifies locally; an access token costs an
// upstream round trip.
func (h *Set) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	user, err := h.resolveLogin(r, payload)
	if err != nil {
		log.Printf("[WARN] login rejected from %s: %v", requests.GetClientIP(r), err)
		responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "login failed")
		return
	}
	if err = h.Sessions.CreateWebSession(r.Context(), w, user); err != nil {
		log.Printf("[ERROR] web session create: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "login failed")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, user)
}

func (h *Set) resolveLogin(r *http.Request, payload loginPayload) (*login.UserInfo, error) {
	if payload.IDToken != "" {
		return h.Auth.UserFromIDToken(payload.IDToken)
	}
	if payload.AccessToken != "" {
		return h.Auth.GetCurrentUser(r.Context(), payload.AccessToken)
	}
	return nil, errors.New("no credential presented")
}

func (h *Set) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.DestroyWebSession(r.Context(), w, r)
	responses.EncodeWriteJSON(w, http.StatusOK, responses.Message{Type: "ok", Message: "logged out"})
}

// Me - the logged-in user's profile, used to pre-fill presenter and
// author fields.
func (h *Set) Me(w http.ResponseWriter, r *http.Request) {
	responses.EncodeWriteJSON(w, http.StatusOK, currentUser(r))
}
