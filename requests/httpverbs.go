package requests

import "net/http"

// HasBody - whether the request method is expected to carry a decodable
// body. GET/HEAD/OPTIONS payloads are ignored.
func HasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	default:
		return true
	}
}
