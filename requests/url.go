package requests

import (
	"fmt"
	"net/http"
	"strconv"
)

// PathID parses the named path value as a positive int64 id.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s in path", name)
	}
	return id, nil
}

func FullURL(req *http.Request) string {
	scheme := ""
	if req.TLS != nil {
		scheme = "https"
	} else {
		scheme = req.Header.Get("X-Forwarded-Proto")
		if scheme == "" {
			scheme = "http"
		}
	}
	return fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.RequestURI())
}
