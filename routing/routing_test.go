package routing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagWrapper(t *testing.T, header string, tag string) HandlerWrapper {
	t.Helper()
	return WrapperFunc(func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(header, tag)
			inner.ServeHTTP(w, r)
		})
	})
}

func TestGroupPrefixComposition(t *testing.T) {
	router := &BaseRouter{ServeMux: http.NewServeMux()}
	router.Group("/api/", func(api *RouteGroup) {
		api.HandleFunc("GET me", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		api.Group("admin/", func(admin *RouteGroup) {
			admin.HandleFunc("GET projects", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})

	for _, path := range []string{"/api/me", "/api/admin/projects"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	// wrong method falls through to ServeMux's 405
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/me", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestWrapperOrderGroupBeforeRoute(t *testing.T) {
	router := &BaseRouter{ServeMux: http.NewServeMux()}
	router.Group("/api/", func(api *RouteGroup) {
		api.HandleFunc("GET ping", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Chain", "handler")
		}, tagWrapper(t, "X-Chain", "route"))
	}, tagWrapper(t, "X-Chain", "group"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.Equal(t, []string{"group", "route", "handler"}, rec.Header().Values("X-Chain"))
}

func TestRecoverWrapperTurnsPanicInto500(t *testing.T) {
	handler := RecoverWrapper(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}
