package routing

import "net/http"

// Router - the registration surface shared by BaseRouter and RouteGroup.
// Patterns follow the http.ServeMux "METHOD /path" form.
type Router interface {
	ServeHTTP(w http.ResponseWriter, r *http.Request)
	Handle(pattern string, handler http.Handler, handlerWrappers ...HandlerWrapper)
	HandleFunc(pattern string, handleFunc func(http.ResponseWriter, *http.Request), handlerWrappers ...HandlerWrapper)
}
