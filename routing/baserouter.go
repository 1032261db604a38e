package routing

import "net/http"

// BaseRouter - the root router over a plain http.ServeMux. Handlers are
// registered directly or through prefix groups.
type BaseRouter struct {
	*http.ServeMux
}

var _ Router = (*BaseRouter)(nil)

func (r *BaseRouter) Handle(pattern string, handler http.Handler, handlerWrappers ...HandlerWrapper) {
	wrapped := handler
	for i := len(handlerWrappers) - 1; i >= 0; i-- {
		wrapped = handlerWrappers[i].Wrap(wrapped)
	}
	r.ServeMux.Handle(pattern, wrapped)
}

func (r *BaseRouter) HandleFunc(pattern string, handleFunc func(http.ResponseWriter, *http.Request), handlerWrappers ...HandlerWrapper) {
	r.Handle(pattern, http.HandlerFunc(handleFunc), handlerWrappers...)
}

// Group registers a batch of routes under a shared prefix and middleware
// set.
func (r *BaseRouter) Group(prefix string, batch func(*RouteGroup), handlerWrappers ...HandlerWrapper) *RouteGroup {
	g := &RouteGroup{
		Router:          r,
		Prefix:          prefix,
		HandlerWrappers: handlerWrappers,
	}
	batch(g)
	return g
}
