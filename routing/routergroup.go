package routing

import (
	"log"
	"net/http"
	"strings"
)

// RouteGroup - routes sharing a path prefix and a middleware chain.
// Groups nest; a subgroup inherits the parent's prefix and wrappers.
type RouteGroup struct {
	Router
	Prefix          string
	HandlerWrappers []HandlerWrapper
}

var _ Router = (*RouteGroup)(nil)

// Handle registers "METHOD subpath" under the group's prefix. Wrapper
// order: group wrappers run outermost-first, then the route's own
// wrappers, then the handler.
func (g *RouteGroup) Handle(subpattern string, handler http.Handler, handlerWrappers ...HandlerWrapper) {
	var fullPattern string
	parts := strings.SplitN(subpattern, " ", 2)
	if len(parts) == 2 {
		// "<method> <subpath>" -> "<method> <prefix><subpath>"
		fullPattern = parts[0] + " " + g.Prefix + parts[1]
	} else {
		fullPattern = g.Prefix + subpattern
	}

	if strings.Contains(fullPattern, "//") {
		log.Fatalf("[ERROR] can't register route pattern %s", fullPattern)
	}

	wrapped := handler
	for i := len(handlerWrappers) - 1; i >= 0; i-- {
		wrapped = handlerWrappers[i].Wrap(wrapped)
	}
	for i := len(g.HandlerWrappers) - 1; i >= 0; i-- {
		wrapped = g.HandlerWrappers[i].Wrap(wrapped)
	}
	g.Router.Handle(fullPattern, wrapped)
}

func (g *RouteGroup) HandleFunc(subpattern string, handleFunc func(http.ResponseWriter, *http.Request), handlerWrappers ...HandlerWrapper) {
	g.Handle(subpattern, http.HandlerFunc(handleFunc), handlerWrappers...)
}

// Group makes a subgroup:
//
//	router.Group("/api/", func(api *RouteGroup) {
//	  api.Handle("POST login", loginHandler)           // "POST /api/login"
//
//	  api.Group("admin/", func(admin *RouteGroup) {
//	    admin.Handle("GET projects", projectsHandler)  // "GET /api/admin/projects"
//	  }, requireAdmin)
//	})
func (g *RouteGroup) Group(subPrefix string, batch func(*RouteGroup), handlerWrappers ...HandlerWrapper) *RouteGroup {
	subg := &RouteGroup{
		Router:          g.Router,
		Prefix:          g.Prefix + subPrefix,
		HandlerWrappers: append(g.HandlerWrappers, handlerWrappers...),
	}
	batch(subg)
	return subg
}
