package handlers

import (
	"net/http"

	"github.com/sitetools/ops-core/responses"
	"github.com/sitetools/ops-core/routing"
	"github.com/sitetools/ops-core/web/login"
	"github.com/sitetools/ops-core/web/session"
)

// RequireLogin resolves the session cookie to a user and stores it in
// the request context. Unauthenticated requests get 401.
func (h *Set) RequireLogin() routing.HandlerWrapper {
	return routing.WrapperFunc(func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := h.Sessions.UserFromCookie(r.Context(), r)
			if !ok {
				responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "login required")
				return
			}
			inner.ServeHTTP(w, r.WithContext(session.WithUser(r.Context(), user)))
		})
	})
}

// RequireAdmin gates privileged routes on the auth service's role claim.
// Must be applied inside RequireLogin.
func (h *Set) RequireAdmin() routing.HandlerWrapper {
	return routing.WrapperFunc(func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := session.UserFromContext(r.Context())
			if !ok || !user.IsAdmin() {
				responses.WriteSimpleErrorJSON(w, http.StatusForbidden, "admin role required")
				return
			}
			inner.ServeHTTP(w, r)
		})
	})
}

func currentUser(r *http.Request) *login.UserInfo {
	user, _ := session.UserFromContext(r.Context())
	return user
}
